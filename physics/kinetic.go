package physics

import (
	"github.com/lixenwraith/steer/core"
	"github.com/lixenwraith/steer/vmath"
)

// Integrate performs constant-velocity integration: p = p + v*dt
func Integrate(k *core.Kinetic, dt float32) {
	k.Position = k.Position.Add(k.Velocity.Scale(dt))
}

// ApplyImpulse adds velocity delta
func ApplyImpulse(k *core.Kinetic, impulse vmath.Vec2) {
	k.Velocity = k.Velocity.Add(impulse)
}

// ApplyEdges keeps a body inside bounds according to the bounds' edge mode
// Returns true if the body touched or crossed an edge
func ApplyEdges(k *core.Kinetic, b core.Bounds) bool {
	switch b.Mode {
	case core.EdgeClamp:
		cx := clampAxis(&k.Position.X, &k.Velocity.X, b.HalfWidth)
		cy := clampAxis(&k.Position.Y, &k.Velocity.Y, b.HalfHeight)
		return cx || cy
	default:
		wx := wrapAxis(&k.Position.X, b.HalfWidth)
		wy := wrapAxis(&k.Position.Y, b.HalfHeight)
		return wx || wy
	}
}

// BounceEdges is ApplyEdges for unsteered bodies: clamp mode reflects the outward
// velocity component instead of zeroing it, so the body keeps moving
func BounceEdges(k *core.Kinetic, b core.Bounds) bool {
	if b.Mode != core.EdgeClamp {
		return ApplyEdges(k, b)
	}
	bx := bounceAxis(&k.Position.X, &k.Velocity.X, b.HalfWidth)
	by := bounceAxis(&k.Position.Y, &k.Velocity.Y, b.HalfHeight)
	return bx || by
}

// wrapAxis teleports to the opposite edge when past half extent
func wrapAxis(pos *float32, half float32) bool {
	if *pos > half {
		*pos = -half
		return true
	}
	if *pos < -half {
		*pos = half
		return true
	}
	return false
}

// clampAxis pins position to the edge and kills the outward velocity component
func clampAxis(pos, vel *float32, half float32) bool {
	if *pos > half {
		*pos = half
		if *vel > 0 {
			*vel = 0
		}
		return true
	}
	if *pos < -half {
		*pos = -half
		if *vel < 0 {
			*vel = 0
		}
		return true
	}
	return false
}

// bounceAxis pins position to the edge and flips an outward velocity component
func bounceAxis(pos, vel *float32, half float32) bool {
	if *pos > half {
		*pos = half
		if *vel > 0 {
			*vel = -*vel
		}
		return true
	}
	if *pos < -half {
		*pos = -half
		if *vel < 0 {
			*vel = -*vel
		}
		return true
	}
	return false
}
