package physics

import (
	"github.com/lixenwraith/steer/core"
	"github.com/lixenwraith/steer/vmath"
)

// CapSpeed limits the velocity magnitude to maxSpeed
// Returns true if velocity was clamped
func CapSpeed(k *core.Kinetic, maxSpeed float32) bool {
	if k.Velocity.LengthSq() <= maxSpeed*maxSpeed {
		return false
	}
	k.Velocity = vmath.ClampMagnitude(k.Velocity, maxSpeed)
	return true
}
