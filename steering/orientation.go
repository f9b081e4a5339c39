package steering

import (
	"github.com/lixenwraith/steer/core"
	"github.com/lixenwraith/steer/vmath"
)

// Orient turns the agent toward its direction of travel
// The slerp fraction is maxAngularSpeed * dt so turn rate is independent of steering force
// Zero velocity has no heading and leaves orientation unchanged
func Orient(a *core.Agent, dt float32) {
	if a.Velocity.IsZero() {
		return
	}
	a.Orientation = vmath.SlerpAngle(a.Orientation, vmath.Heading(a.Velocity), a.MaxAngularSpeed*dt)
}
