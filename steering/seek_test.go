package steering

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/lixenwraith/steer/vmath"
)

func assertVec(t *testing.T, want, got vmath.Vec2, delta float64) {
	t.Helper()
	assert.InDelta(t, want.X, got.X, delta, "x")
	assert.InDelta(t, want.Y, got.Y, delta, "y")
}

func TestSeek_KnownValues(t *testing.T) {
	velocity := vmath.V2(180, -123)
	position := vmath.V2(14, 18)

	tests := []struct {
		name     string
		target   vmath.Vec2
		maxSpeed float32
		want     vmath.Vec2
	}{
		{"near target", vmath.V2(10, -12), 14, vmath.V2(-181.8503, 109.12281)},
		{"far target", vmath.V2(-102, 130), 14, vmath.V2(-190.07162, 132.72432)},
		{"slow cap", vmath.V2(10, -12), 2, vmath.V2(-180.26433, 121.01755)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assertVec(t, tt.want, Seek(tt.target, velocity, tt.maxSpeed, position), 1e-3)
		})
	}
}

func TestSeek_TargetAtPosition(t *testing.T) {
	p := vmath.V2(5, 5)
	got := Seek(p, vmath.V2(30, -4), 250, p)
	assert.Equal(t, vmath.Vec2{}, got)
}

func TestSeek_FromRestPointsAtTarget(t *testing.T) {
	got := Seek(vmath.V2(100, 0), vmath.Vec2{}, 250, vmath.Vec2{})
	assertVec(t, vmath.V2(250, 0), got, 1e-4)
}

func TestFlee_IsNegatedSeek(t *testing.T) {
	target, vel, pos := vmath.V2(-102, 130), vmath.V2(180, -123), vmath.V2(14, 18)
	seek := Seek(target, vel, 14, pos)
	flee := Flee(target, vel, 14, pos)
	assert.Equal(t, seek.Negate(), flee)
}

func TestFlee_SpeedCappedNotProximityScaled(t *testing.T) {
	near := Flee(vmath.V2(1, 0), vmath.Vec2{}, 250, vmath.Vec2{})
	far := Flee(vmath.V2(300, 0), vmath.Vec2{}, 250, vmath.Vec2{})
	assert.InDelta(t, near.Length(), far.Length(), 1e-3)
	assert.Less(t, near.X, float32(0))
}
