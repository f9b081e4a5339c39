package steering

import "github.com/lixenwraith/steer/vmath"

// Seek returns the steering force that turns velocity toward target at full maxSpeed
// steer = setMagnitude(target - position, maxSpeed) - velocity
// A target coinciding with position yields zero force, leaving velocity unchanged
func Seek(target, velocity vmath.Vec2, maxSpeed float32, position vmath.Vec2) vmath.Vec2 {
	desired := target.Sub(position)
	if desired.IsZero() {
		return vmath.Vec2{}
	}
	return vmath.SetMagnitude(desired, maxSpeed).Sub(velocity)
}

// Flee is Seek negated: steer directly away from target
// Magnitude is speed-capped like Seek, not scaled by proximity
func Flee(target, velocity vmath.Vec2, maxSpeed float32, position vmath.Vec2) vmath.Vec2 {
	return Seek(target, velocity, maxSpeed, position).Negate()
}
