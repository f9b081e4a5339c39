package core

import (
	"fmt"
	"strings"

	"github.com/lixenwraith/steer/vmath"
)

// EdgeMode selects how bodies leaving the play area are handled
type EdgeMode uint8

const (
	// EdgeWrap teleports a body crossing an edge to the opposite edge
	EdgeWrap EdgeMode = iota
	// EdgeClamp stops a body at the boundary and zeroes the outward velocity component
	EdgeClamp
)

func (m EdgeMode) String() string {
	switch m {
	case EdgeWrap:
		return "wrap"
	case EdgeClamp:
		return "clamp"
	default:
		return fmt.Sprintf("EdgeMode(%d)", m)
	}
}

// ParseEdgeMode resolves a config string, case-insensitive
func ParseEdgeMode(s string) (EdgeMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "wrap", "":
		return EdgeWrap, nil
	case "clamp", "stop":
		return EdgeClamp, nil
	default:
		return EdgeWrap, fmt.Errorf("unknown edge mode %q", s)
	}
}

// Bounds is the centered play area [-HalfWidth, HalfWidth] x [-HalfHeight, HalfHeight]
type Bounds struct {
	HalfWidth, HalfHeight float32
	Mode                  EdgeMode
}

// Contains reports whether p lies inside the area, edges inclusive
func (b Bounds) Contains(p vmath.Vec2) bool {
	return p.X >= -b.HalfWidth && p.X <= b.HalfWidth &&
		p.Y >= -b.HalfHeight && p.Y <= b.HalfHeight
}
