package vmath

import (
	"fmt"
	"math"
)

// Vec2 is a float32 2D vector in world units
// World origin is screen center, Y points up
type Vec2 struct {
	X, Y float32
}

// V2 is shorthand for Vec2{x, y}
func V2(x, y float32) Vec2 {
	return Vec2{X: x, Y: y}
}

func (v Vec2) String() string {
	return fmt.Sprintf("(%.2f, %.2f)", v.X, v.Y)
}

func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{v.X + o.X, v.Y + o.Y}
}

func (v Vec2) Sub(o Vec2) Vec2 {
	return Vec2{v.X - o.X, v.Y - o.Y}
}

func (v Vec2) Scale(s float32) Vec2 {
	return Vec2{v.X * s, v.Y * s}
}

func (v Vec2) Negate() Vec2 {
	return Vec2{-v.X, -v.Y}
}

// Dot returns x1*x2 + y1*y2
func (v Vec2) Dot(o Vec2) float32 {
	return v.X*o.X + v.Y*o.Y
}

// LengthSq returns squared magnitude without sqrt
func (v Vec2) LengthSq() float32 {
	return v.X*v.X + v.Y*v.Y
}

// Length returns Euclidean magnitude
func (v Vec2) Length() float32 {
	return float32(math.Hypot(float64(v.X), float64(v.Y)))
}

// Distance returns Euclidean distance between two points
func (v Vec2) Distance(o Vec2) float32 {
	return v.Sub(o).Length()
}

func (v Vec2) IsZero() bool {
	return v.X == 0 && v.Y == 0
}

// Normalize returns unit vector, zero-safe
func (v Vec2) Normalize() Vec2 {
	mag := v.Length()
	if mag == 0 {
		return Vec2{}
	}
	inv := 1 / mag
	return Vec2{v.X * inv, v.Y * inv}
}

// SetMagnitude returns v normalized and scaled to length scale
// Zero input yields the zero vector instead of NaN
func SetMagnitude(v Vec2, scale float32) Vec2 {
	return v.Normalize().Scale(scale)
}

// ClampMagnitude limits vector to maxMag while preserving direction
func ClampMagnitude(v Vec2, maxMag float32) Vec2 {
	magSq := v.LengthSq()
	if magSq <= maxMag*maxMag || magSq == 0 {
		return v
	}
	return SetMagnitude(v, maxMag)
}

// FromPolar converts polar coordinates to a cartesian offset
func FromPolar(radius, theta float32) Vec2 {
	sin, cos := math.Sincos(float64(theta))
	return Vec2{radius * float32(cos), radius * float32(sin)}
}

// NormalPoint returns the foot of the perpendicular from p onto the infinite line through a and b
// A degenerate line (a == b) returns a
func NormalPoint(p, a, b Vec2) Vec2 {
	ap := p.Sub(a)
	ab := b.Sub(a).Normalize()
	return a.Add(ab.Scale(ap.Dot(ab)))
}

// Constrain clamps val to [low, high]
func Constrain(val, low, high float32) float32 {
	if val > high {
		val = high
	}
	if val < low {
		val = low
	}
	return val
}

// AdjustMagnitude remaps length from [inStart, inStop] to [outStart, outStop] proportionally,
// then clamps into the output range regardless of its orientation
// A zero-width input range maps everything to outStart
func AdjustMagnitude(length, inStart, inStop, outStart, outStop float32) float32 {
	if inStop == inStart {
		return outStart
	}
	v := (length-inStart)/(inStop-inStart)*(outStop-outStart) + outStart
	if outStart < outStop {
		return Constrain(v, outStart, outStop)
	}
	return Constrain(v, outStop, outStart)
}
