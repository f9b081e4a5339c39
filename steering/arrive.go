package steering

import "github.com/lixenwraith/steer/vmath"

// Arrive seeks target but tapers desired speed inside the arrival radius
// Reaching the target commands zero speed, so the steer brakes the agent to rest
func Arrive(target, velocity vmath.Vec2, maxSpeed float32, position vmath.Vec2, p *Profile) vmath.Vec2 {
	desired := target.Sub(position)
	speed := ArriveSpeed(desired.Length(), maxSpeed, p)
	return vmath.SetMagnitude(desired, speed).Sub(velocity)
}

// ArriveSpeed returns the desired speed Arrive commands at distance d
// Inside the radius d is remapped from [0, maxSpeed] to [0, ArrivalSpeedCeiling]
func ArriveSpeed(d, maxSpeed float32, p *Profile) float32 {
	if d < p.ArrivalRadius {
		return vmath.AdjustMagnitude(d, 0, maxSpeed, 0, p.ArrivalSpeedCeiling)
	}
	return maxSpeed
}
