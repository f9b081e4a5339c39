package vmath

import "math"

const (
	Pi    = float32(math.Pi)
	TwoPi = 2 * Pi
	// HeadingOffset aligns atan2 angles with the ship's forward axis (+Y in model space)
	HeadingOffset = -Pi / 2
)

// WrapAngle normalizes a radian angle into (-π, π]
func WrapAngle(a float32) float32 {
	r := float32(math.Remainder(float64(a), 2*math.Pi))
	if r <= -Pi {
		r += TwoPi
	}
	return r
}

// Heading returns the facing angle of a direction of travel
// atan2(y, x) rotated by -90° to match the ship mesh which points along +Y
// Zero vector returns the offset alone; callers that care skip zero velocity
func Heading(v Vec2) float32 {
	return WrapAngle(float32(math.Atan2(float64(v.Y), float64(v.X))) + HeadingOffset)
}

// SlerpAngle interpolates from toward to along the shortest arc
// t is clamped to [0, 1]; t = 1 lands exactly on to
func SlerpAngle(from, to, t float32) float32 {
	t = Constrain(t, 0, 1)
	diff := WrapAngle(to - from)
	return WrapAngle(from + diff*t)
}
