package steering

import "github.com/lixenwraith/steer/vmath"

// Intercept predicts where a moving target will be: distanceAhead along its velocity
// A stationary target is its own intercept
func Intercept(targetPos, targetVel vmath.Vec2, distanceAhead float32) vmath.Vec2 {
	return targetPos.Add(vmath.SetMagnitude(targetVel, distanceAhead))
}

// Pursue seeks the target's intercept point rather than its current position
// Returns the steering force and the intercept point
func Pursue(targetPos, targetVel, velocity vmath.Vec2, maxSpeed float32, position vmath.Vec2, p *Profile) (steer, intercept vmath.Vec2) {
	intercept = Intercept(targetPos, targetVel, p.PursueDistance)
	return Seek(intercept, velocity, maxSpeed, position), intercept
}

// Evade flees the target's intercept point
func Evade(targetPos, targetVel, velocity vmath.Vec2, maxSpeed float32, position vmath.Vec2, p *Profile) (steer, intercept vmath.Vec2) {
	intercept = Intercept(targetPos, targetVel, p.PursueDistance)
	return Flee(intercept, velocity, maxSpeed, position), intercept
}
