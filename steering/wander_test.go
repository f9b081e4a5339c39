package steering

import (
	"math"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/steer/parameter"
	"github.com/lixenwraith/steer/vmath"
)

// fixedRand returns a constant draw
type fixedRand float32

func (f fixedRand) Float32() float32 { return float32(f) }

func TestWander_ThetaDriftBounded(t *testing.T) {
	p := DefaultProfile()
	rng := rand.New(rand.NewPCG(42, 7))
	s := WanderState{Theta: parameter.WanderInitialTheta}

	vel, pos := vmath.V2(0, 100), vmath.Vec2{}
	for i := 0; i < 1000; i++ {
		before := s.Theta
		Wander(&s, vel, pos, 250, &p, rng)
		require.LessOrEqual(t, math.Abs(float64(s.Theta-before)), 0.3+1e-4)
	}
}

func TestWander_Geometry(t *testing.T) {
	p := DefaultProfile()
	s := WanderState{Theta: 0}

	// Moving +Y: heading 0, circle 100 ahead, theta 0 puts the target at +X of the circle
	res := Wander(&s, vmath.V2(0, 50), vmath.Vec2{}, 250, &p, fixedRand(0.5))

	assertVec(t, vmath.V2(0, 100), res.Circle, 1e-3)
	assertVec(t, vmath.V2(50, 100), res.Target, 1e-3)
	assertVec(t, Seek(res.Target, vmath.V2(0, 50), 250, vmath.Vec2{}), res.Steer, 1e-4)

	// Draw of 0.5 is the midpoint of the jitter interval
	assert.InDelta(t, 0, s.Theta, 1e-6)
}

func TestWander_DeterministicUnderSeed(t *testing.T) {
	p := DefaultProfile()
	run := func() []vmath.Vec2 {
		rng := rand.New(rand.NewPCG(9, 9))
		s := WanderState{Theta: parameter.WanderInitialTheta}
		out := make([]vmath.Vec2, 0, 20)
		for i := 0; i < 20; i++ {
			out = append(out, Wander(&s, vmath.V2(10, 10), vmath.Vec2{}, 250, &p, rng).Steer)
		}
		return out
	}
	assert.Equal(t, run(), run())
}

func TestWander_ZeroVelocityNoNaN(t *testing.T) {
	p := DefaultProfile()
	s := WanderState{}
	res := Wander(&s, vmath.Vec2{}, vmath.V2(3, 3), 250, &p, fixedRand(0))
	assert.False(t, math.IsNaN(float64(res.Steer.X)))
	assert.False(t, math.IsNaN(float64(res.Steer.Y)))
}

func TestJitterRange(t *testing.T) {
	assert.InDelta(t, -0.3, Jitter(fixedRand(0), 0.3), 1e-6)
	assert.InDelta(t, 0, Jitter(fixedRand(0.5), 0.3), 1e-6)
}
