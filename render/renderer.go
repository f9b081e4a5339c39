package render

import (
	"fmt"
	"math"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/steer/core"
	"github.com/lixenwraith/steer/event"
	"github.com/lixenwraith/steer/scene"
	"github.com/lixenwraith/steer/steering"
	"github.com/lixenwraith/steer/vmath"
)

// ringSamples is the number of points used to outline large markers
const ringSamples = 48

// shipGlyphs are ordered clockwise from facing +Y in 45° steps
var shipGlyphs = [8]rune{'↑', '↗', '→', '↘', '↓', '↙', '←', '↖'}

// Frame is everything drawn in one pass
type Frame struct {
	Agent     core.Agent
	Cursor    vmath.Vec2
	Behavior  steering.Behavior
	Markers   []scene.Marker
	Offset    vmath.Vec2
	HasOffset bool
	Ticks     uint64
	Catches   uint64
	Paused    bool
	Debug     bool
}

// Renderer draws frames onto a tcell screen
type Renderer struct {
	screen tcell.Screen
	bounds core.Bounds
	camera Camera
}

// NewRenderer creates a renderer sized to the screen's current dimensions
func NewRenderer(screen tcell.Screen, bounds core.Bounds) *Renderer {
	r := &Renderer{screen: screen, bounds: bounds}
	r.Resize()
	return r
}

// Resize refits the camera after a terminal resize
func (r *Renderer) Resize() {
	w, h := r.screen.Size()
	r.camera = NewCamera(w, h, r.bounds)
}

// Camera returns the active world-to-cell mapping
func (r *Renderer) Camera() Camera {
	return r.camera
}

// Draw renders the frame and shows it
func (r *Renderer) Draw(f Frame) {
	bg := tcell.StyleDefault.Background(RgbBackground)
	r.screen.SetStyle(bg)
	r.screen.Clear()

	r.drawPath(f.Markers, bg)
	for _, m := range f.Markers {
		r.drawMarker(m, bg)
	}
	if f.Debug && f.HasOffset {
		r.plot(f.Offset, '×', bg.Foreground(RgbOffset))
	}
	r.plot(f.Cursor, '+', bg.Foreground(RgbCursor).Bold(true))
	r.plot(f.Agent.Position, ShipGlyph(f.Agent.Orientation), bg.Foreground(RgbShip).Bold(true))
	r.drawStatus(f)

	r.screen.Show()
}

// ShipGlyph picks the arrow closest to the facing angle (0 = +Y, counter-clockwise positive)
func ShipGlyph(orientation float32) rune {
	step := math.Round(-float64(orientation) / (math.Pi / 4))
	idx := ((int(step) % 8) + 8) % 8
	return shipGlyphs[idx]
}

func (r *Renderer) plot(p vmath.Vec2, ch rune, style tcell.Style) {
	if x, y, ok := r.camera.ToCell(p); ok {
		r.screen.SetContent(x, y, ch, nil, style)
	}
}

// drawMarker outlines markers larger than a cell, otherwise plots a single glyph
func (r *Renderer) drawMarker(m scene.Marker, bg tcell.Style) {
	ch, color := markerStyle(m.Kind)
	style := bg.Foreground(color)

	cell := r.camera.CellSize()
	if m.Kind == event.MarkerWanderCircle && m.Radius > max(cell.X, cell.Y) {
		for i := 0; i < ringSamples; i++ {
			theta := float32(i) * vmath.TwoPi / ringSamples
			r.plot(m.Position.Add(vmath.FromPolar(m.Radius, theta)), ch, style)
		}
		return
	}
	r.plot(m.Position, ch, style)
}

// drawPath connects path markers in spawn order into a closed loop
func (r *Renderer) drawPath(markers []scene.Marker, bg tcell.Style) {
	var pts []vmath.Vec2
	for _, m := range markers {
		if m.Kind == event.MarkerPathPoint {
			pts = append(pts, m.Position)
		}
	}
	if len(pts) < 2 {
		return
	}
	style := bg.Foreground(RgbPath)
	for i := range pts {
		r.line(pts[i], pts[(i+1)%len(pts)], style)
	}
}

// line rasterizes a segment in cell space (Bresenham)
func (r *Renderer) line(a, b vmath.Vec2, style tcell.Style) {
	x0, y0, _ := r.camera.ToCell(a)
	x1, y1, _ := r.camera.ToCell(b)
	dx, dy := abs(x1-x0), -abs(y1-y0)
	sx, sy := sign(x1-x0), sign(y1-y0)
	err := dx + dy
	for {
		if x0 >= 0 && y0 >= 0 && x0 < r.camera.Width && y0 < r.camera.Height {
			r.screen.SetContent(x0, y0, '·', nil, style)
		}
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
}

func (r *Renderer) drawStatus(f Frame) {
	_, h := r.screen.Size()
	y := h - StatusRows
	if y < 0 {
		return
	}

	badge := fmt.Sprintf(" %d %s ", int(f.Behavior)+1, f.Behavior)
	bgColor, ok := behaviorBg[f.Behavior]
	if !ok {
		bgColor = RgbCursor
	}
	x := r.text(0, y, badge, tcell.StyleDefault.Background(bgColor).Foreground(RgbStatusText))

	if f.Paused {
		x = r.text(x, y, " PAUSED ", tcell.StyleDefault.Background(RgbPausedBg).Foreground(RgbStatusText))
	}

	speed := f.Agent.Velocity.Length()
	info := fmt.Sprintf(" v=%5.1f/%3.0f  θ=%+5.2f  ticks=%d  catches=%d  [1-7] behavior  p pause  d debug  q quit",
		speed, f.Agent.MaxLinearSpeed, f.Agent.Orientation, f.Ticks, f.Catches)
	r.text(x, y, info, tcell.StyleDefault.Background(RgbBackground).Foreground(RgbCursor))
}

// text writes s starting at x and returns the column after it, clipped to the screen
func (r *Renderer) text(x, y int, s string, style tcell.Style) int {
	w, _ := r.screen.Size()
	for _, ch := range s {
		if x >= w {
			break
		}
		r.screen.SetContent(x, y, ch, nil, style)
		x++
	}
	return x
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func sign(v int) int {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	default:
		return 0
	}
}
