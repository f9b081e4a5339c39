package steering

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/steer/vmath"
)

func TestPathFollow_OnVertexNoSteer(t *testing.T) {
	p := DefaultProfile()
	path := DefaultPath()

	for _, vertex := range path.Points {
		res := PathFollow(&path, vmath.Vec2{}, vertex, 250, &p)
		assert.LessOrEqual(t, res.Distance, path.Radius)
		assert.False(t, res.Steering)
		assert.Equal(t, vmath.Vec2{}, res.Steer)
	}
}

func TestPathFollow_InsideToleranceNoSteer(t *testing.T) {
	p := DefaultProfile()
	path := DefaultPath()

	// Just above the bottom edge, moving along it
	res := PathFollow(&path, vmath.V2(100, 0), vmath.V2(0, -150), 250, &p)
	assert.InDelta(t, 10, res.Distance, 1e-3)
	assert.False(t, res.Steering)
}

func TestPathFollow_SteersBackOntoPath(t *testing.T) {
	p := DefaultProfile()
	path := DefaultPath()

	// Far inside the loop, moving +X parallel to the bottom edge
	pos, vel := vmath.V2(0, -100), vmath.V2(100, 0)
	res := PathFollow(&path, vel, pos, 250, &p)

	require.True(t, res.Steering)
	assertVec(t, vmath.V2(15, -100), res.Future, 1e-4)
	assert.InDelta(t, 60, res.Distance, 1e-3)
	// Normal on the bottom edge (15,-160) advanced 15 along +X
	assertVec(t, vmath.V2(30, -160), res.Target, 1e-3)
	assertVec(t, Seek(res.Target, vel, 250, pos), res.Steer, 1e-4)
}

func TestPathFollow_CornerUsesNextSegment(t *testing.T) {
	p := DefaultProfile()
	path := Path{
		Points: []vmath.Vec2{vmath.V2(0, 0), vmath.V2(100, 0), vmath.V2(100, 100), vmath.V2(0, 100)},
		Radius: 5,
	}

	// Past the bottom-right corner: bottom edge normal falls beyond b
	pos, vel := vmath.V2(130, -30), vmath.V2(0, 0)
	res := PathFollow(&path, vel, pos, 250, &p)

	require.True(t, res.Steering)
	// Corner (100,0) wins at distance ~42.4, direction from the right edge (+Y)
	assertVec(t, vmath.V2(100, 15), res.Target, 1e-3)
}

func TestPathFollow_DegeneratePath(t *testing.T) {
	p := DefaultProfile()
	path := Path{Points: []vmath.Vec2{vmath.V2(1, 1)}, Radius: 10}
	res := PathFollow(&path, vmath.V2(1, 0), vmath.Vec2{}, 250, &p)
	assert.False(t, res.Steering)
	assert.Equal(t, vmath.Vec2{}, res.Steer)
}
