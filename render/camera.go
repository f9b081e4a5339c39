package render

import (
	"github.com/lixenwraith/steer/core"
	"github.com/lixenwraith/steer/vmath"
)

// StatusRows is reserved at the bottom of the screen for the status line
const StatusRows = 1

// Camera maps world coordinates (origin at center, y up) to terminal cells (origin top-left, y down)
// The play area is stretched to fill the viewport; x and y scale independently
type Camera struct {
	Width, Height int // Viewport in cells, status line excluded
	Bounds        core.Bounds
}

// NewCamera fits bounds into a screen of w x h cells
func NewCamera(w, h int, bounds core.Bounds) Camera {
	return Camera{
		Width:  max(w, 1),
		Height: max(h-StatusRows, 1),
		Bounds: bounds,
	}
}

func (c Camera) scale() (sx, sy float32) {
	return float32(c.Width) / (2 * c.Bounds.HalfWidth), float32(c.Height) / (2 * c.Bounds.HalfHeight)
}

// ToCell returns the cell containing p and whether it lies in the viewport
func (c Camera) ToCell(p vmath.Vec2) (x, y int, ok bool) {
	fx := (p.X + c.Bounds.HalfWidth) * float32(c.Width) / (2 * c.Bounds.HalfWidth)
	fy := (c.Bounds.HalfHeight - p.Y) * float32(c.Height) / (2 * c.Bounds.HalfHeight)
	x, y = int(fx), int(fy)
	// Inclusive far edges land on the last cell
	if x == c.Width && fx <= float32(c.Width) {
		x--
	}
	if y == c.Height && fy <= float32(c.Height) {
		y--
	}
	ok = fx >= 0 && fy >= 0 && x < c.Width && y < c.Height
	return x, y, ok
}

// ToWorld returns the world position of the center of cell (x, y)
func (c Camera) ToWorld(x, y int) vmath.Vec2 {
	sx, sy := c.scale()
	return vmath.V2(
		(float32(x)+0.5)/sx-c.Bounds.HalfWidth,
		c.Bounds.HalfHeight-(float32(y)+0.5)/sy,
	)
}

// CellSize returns the world extent of one cell
func (c Camera) CellSize() vmath.Vec2 {
	sx, sy := c.scale()
	return vmath.V2(1/sx, 1/sy)
}
