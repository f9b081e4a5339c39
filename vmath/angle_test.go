package vmath

import (
	"math"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// angleDelta returns the smallest absolute difference between two angles
func angleDelta(a, b float64) float64 {
	return math.Abs(math.Remainder(a-b, 2*math.Pi))
}

func TestHeading_RangeAndOffset(t *testing.T) {
	rng := rand.New(rand.NewPCG(5, 6))
	for i := 0; i < 500; i++ {
		v := V2(rng.Float32()*20-10, rng.Float32()*20-10)
		if v.IsZero() {
			continue
		}
		h := Heading(v)
		require.Greater(t, h, -Pi)
		require.LessOrEqual(t, h, Pi)

		want := math.Atan2(float64(v.Y), float64(v.X)) - math.Pi/2
		assert.Less(t, angleDelta(float64(h), want), 1e-5)
	}
}

func TestHeading_Cardinal(t *testing.T) {
	// Travelling +Y is the ship's forward axis
	assert.InDelta(t, 0, Heading(V2(0, 1)), 1e-6)
	assert.InDelta(t, -math.Pi/2, Heading(V2(1, 0)), 1e-6)
	assert.InDelta(t, math.Pi/2, Heading(V2(-1, 0)), 1e-6)
	assert.InDelta(t, math.Pi, math.Abs(float64(Heading(V2(0, -1)))), 1e-6)
}

func TestWrapAngle(t *testing.T) {
	assert.InDelta(t, 0, WrapAngle(TwoPi), 1e-6)
	assert.InDelta(t, math.Pi/2, WrapAngle(-3*Pi/2), 1e-6)
	assert.InDelta(t, math.Pi, WrapAngle(-Pi), 1e-6)
}

func TestSlerpAngle(t *testing.T) {
	assert.InDelta(t, 0.5, SlerpAngle(0, 1, 0.5), 1e-6)
	assert.InDelta(t, 1, SlerpAngle(0, 1, 3), 1e-6)
	assert.InDelta(t, 0, SlerpAngle(0, 1, -1), 1e-6)

	// Shortest arc crosses the ±π seam instead of sweeping through zero
	got := SlerpAngle(Pi-0.1, -Pi+0.1, 0.5)
	assert.Less(t, angleDelta(float64(got), math.Pi), 1e-5)
}
