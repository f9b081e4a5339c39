package steering

import "github.com/lixenwraith/steer/vmath"

// Rand is the random source behaviors draw from
// *math/rand/v2.Rand satisfies it; inject a seeded source for determinism
type Rand interface {
	Float32() float32
}

// WanderState carries the drifting wander angle between ticks
type WanderState struct {
	Theta float32
}

// WanderResult is one tick of Wander
type WanderResult struct {
	Steer  vmath.Vec2
	Circle vmath.Vec2 // Wander circle center ahead of the agent
	Target vmath.Vec2 // Point on the circle being sought
}

// Wander seeks a point on a circle projected ahead of the agent, then drifts theta
// by U[-jitter, jitter). Incremental drift gives smooth curving motion instead of noise
func Wander(s *WanderState, velocity, position vmath.Vec2, maxSpeed float32, p *Profile, rng Rand) WanderResult {
	circle := position.Add(vmath.SetMagnitude(velocity, p.WanderDistance))
	theta := s.Theta + vmath.Heading(velocity)
	target := circle.Add(vmath.FromPolar(p.WanderRadius, theta))

	s.Theta += Jitter(rng, p.WanderJitter)

	return WanderResult{
		Steer:  Seek(target, velocity, maxSpeed, position),
		Circle: circle,
		Target: target,
	}
}

// Jitter draws uniformly from [-bound, bound)
func Jitter(rng Rand, bound float32) float32 {
	return (rng.Float32()*2 - 1) * bound
}
