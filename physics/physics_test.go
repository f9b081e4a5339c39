package physics

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/lixenwraith/steer/core"
	"github.com/lixenwraith/steer/vmath"
)

func TestIntegrate(t *testing.T) {
	k := core.Kinetic{Position: vmath.V2(1, 2), Velocity: vmath.V2(10, -20)}
	Integrate(&k, 0.5)
	assert.Equal(t, vmath.V2(6, -8), k.Position)
	assert.Equal(t, vmath.V2(10, -20), k.Velocity)
}

func TestApplyEdges_Wrap(t *testing.T) {
	b := core.Bounds{HalfWidth: 400, HalfHeight: 300, Mode: core.EdgeWrap}

	k := core.Kinetic{Position: vmath.V2(401, -301), Velocity: vmath.V2(5, -5)}
	assert.True(t, ApplyEdges(&k, b))
	assert.Equal(t, vmath.V2(-400, 300), k.Position)
	assert.Equal(t, vmath.V2(5, -5), k.Velocity, "wrap keeps velocity")

	k = core.Kinetic{Position: vmath.V2(10, 10)}
	assert.False(t, ApplyEdges(&k, b))
	assert.Equal(t, vmath.V2(10, 10), k.Position)
}

func TestApplyEdges_Clamp(t *testing.T) {
	b := core.Bounds{HalfWidth: 400, HalfHeight: 300, Mode: core.EdgeClamp}

	k := core.Kinetic{Position: vmath.V2(-450, 320), Velocity: vmath.V2(-30, 40)}
	assert.True(t, ApplyEdges(&k, b))
	assert.Equal(t, vmath.V2(-400, 300), k.Position)
	assert.Equal(t, vmath.Vec2{}, k.Velocity)

	// Inward velocity survives the clamp
	k = core.Kinetic{Position: vmath.V2(410, 0), Velocity: vmath.V2(-30, 7)}
	ApplyEdges(&k, b)
	assert.Equal(t, vmath.V2(-30, 7), k.Velocity)
}

func TestBounceEdges(t *testing.T) {
	b := core.Bounds{HalfWidth: 400, HalfHeight: 300, Mode: core.EdgeClamp}

	k := core.Kinetic{Position: vmath.V2(-450, 320), Velocity: vmath.V2(-30, 40)}
	assert.True(t, BounceEdges(&k, b))
	assert.Equal(t, vmath.V2(-400, 300), k.Position)
	assert.Equal(t, vmath.V2(30, -40), k.Velocity, "outward components reflect")

	k = core.Kinetic{Position: vmath.V2(410, 0), Velocity: vmath.V2(-30, 7)}
	BounceEdges(&k, b)
	assert.Equal(t, vmath.V2(-30, 7), k.Velocity, "inward velocity is kept")

	b.Mode = core.EdgeWrap
	k = core.Kinetic{Position: vmath.V2(401, 0), Velocity: vmath.V2(5, 0)}
	assert.True(t, BounceEdges(&k, b))
	assert.Equal(t, vmath.V2(-400, 0), k.Position)
	assert.Equal(t, vmath.V2(5, 0), k.Velocity)
}

func TestCapSpeed(t *testing.T) {
	k := core.Kinetic{Velocity: vmath.V2(300, 400)}
	assert.True(t, CapSpeed(&k, 250))
	assert.InDelta(t, 250, k.Velocity.Length(), 1e-3)

	k = core.Kinetic{Velocity: vmath.V2(3, 4)}
	assert.False(t, CapSpeed(&k, 250))
}

func TestOverlaps(t *testing.T) {
	a := Circle{Center: vmath.V2(0, 0), Radius: 10}
	assert.True(t, Overlaps(a, Circle{Center: vmath.V2(25, 0), Radius: 15}))
	assert.False(t, Overlaps(a, Circle{Center: vmath.V2(26, 0), Radius: 15}))
}

func TestContactTracker(t *testing.T) {
	c := NewContactTracker()
	assert.True(t, c.Update(7, true), "first overlap starts contact")
	assert.False(t, c.Update(7, true), "sustained overlap is not a new start")
	assert.False(t, c.Update(7, false))
	assert.True(t, c.Update(7, true), "re-entry starts again")

	c.Forget(7)
	assert.True(t, c.Update(7, true))
}

func TestApplyImpulse(t *testing.T) {
	k := core.Kinetic{Velocity: vmath.V2(1, 2)}
	ApplyImpulse(&k, vmath.V2(-3, 0.5))
	assert.Equal(t, vmath.V2(-2, 2.5), k.Velocity)
}
