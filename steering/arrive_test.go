package steering

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/lixenwraith/steer/vmath"
)

func TestArrive_OutsideRadiusMatchesSeek(t *testing.T) {
	p := DefaultProfile()
	target, vel, pos := vmath.V2(200, 0), vmath.V2(3, 9), vmath.Vec2{}
	assertVec(t, Seek(target, vel, 250, pos), Arrive(target, vel, 250, pos, &p), 1e-4)
}

func TestArrive_TapersInsideRadius(t *testing.T) {
	p := DefaultProfile()

	// 50 units away: 50/250 of the ceiling
	got := Arrive(vmath.V2(50, 0), vmath.Vec2{}, 250, vmath.Vec2{}, &p)
	assertVec(t, vmath.V2(20, 0), got, 1e-4)
}

func TestArrive_SpeedVanishesNearTarget(t *testing.T) {
	p := DefaultProfile()

	prev := ArriveSpeed(p.ArrivalRadius-0.001, 250, &p)
	for d := p.ArrivalRadius - 1; d >= 0; d -= 1 {
		speed := ArriveSpeed(d, 250, &p)
		assert.LessOrEqual(t, speed, prev, "monotone approach d=%v", d)
		prev = speed
	}
	assert.Equal(t, float32(0), ArriveSpeed(0, 250, &p))
	assert.InDelta(t, 0, ArriveSpeed(0.01, 250, &p), 1e-2)
}

func TestArrive_AtTargetBrakes(t *testing.T) {
	p := DefaultProfile()
	vel := vmath.V2(12, -7)
	pos := vmath.V2(4, 4)
	got := Arrive(pos, vel, 250, pos, &p)
	assert.Equal(t, vel.Negate(), got)
}
