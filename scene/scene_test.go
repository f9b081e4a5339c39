package scene

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/steer/core"
	"github.com/lixenwraith/steer/event"
	"github.com/lixenwraith/steer/vmath"
)

func TestStore_SetGetRemove(t *testing.T) {
	s := NewStore[int]()
	s.Set(3, 30)
	s.Set(1, 10)
	s.Set(3, 33)

	v, ok := s.Get(3)
	require.True(t, ok)
	assert.Equal(t, 33, v)
	assert.Equal(t, 2, s.Len())

	var order []int
	s.Each(func(_ core.EntityID, v int) { order = append(order, v) })
	assert.Equal(t, []int{33, 10}, order, "insertion order kept across replace")

	assert.True(t, s.Remove(3))
	assert.False(t, s.Remove(3))
	assert.False(t, s.Has(3))

	assert.True(t, s.Update(1, func(v *int) { *v++ }))
	v, _ = s.Get(1)
	assert.Equal(t, 11, v)
	assert.False(t, s.Update(9, func(*int) {}))

	s.Clear()
	assert.Zero(t, s.Len())
}

func TestScene_ApplyLifecycle(t *testing.T) {
	sc := New(nil)
	rejected := sc.Apply([]event.Command{
		event.Spawn(2, event.MarkerPursueTarget, vmath.V2(0, 0), 15),
		event.Spawn(3, event.MarkerPursueOffset, vmath.V2(0, 0), 5),
		event.Move(2, event.MarkerPursueTarget, vmath.V2(10, 20)),
	})
	assert.Zero(t, rejected)
	assert.Equal(t, 2, sc.Len())

	m, ok := sc.ByKind(event.MarkerPursueTarget)
	require.True(t, ok)
	assert.Equal(t, vmath.V2(10, 20), m.Position)
	assert.Equal(t, float32(15), m.Radius)

	rejected = sc.Apply([]event.Command{
		event.Despawn(2, event.MarkerPursueTarget),
		event.Despawn(2, event.MarkerPursueTarget),
		event.Move(9, event.MarkerPathPoint, vmath.V2(1, 1)),
		event.Spawn(3, event.MarkerPursueOffset, vmath.V2(0, 0), 5),
	})
	assert.Equal(t, 3, rejected)
	assert.Equal(t, 1, sc.Len())

	_, ok = sc.Marker(2)
	assert.False(t, ok)
}

func TestScene_MarkersSnapshot(t *testing.T) {
	sc := New(nil)
	sc.Apply([]event.Command{
		event.Spawn(5, event.MarkerPathPoint, vmath.V2(1, 1), 10),
		event.Spawn(4, event.MarkerPathPoint, vmath.V2(2, 2), 10),
	})
	ms := sc.Markers()
	require.Len(t, ms, 2)
	assert.Equal(t, vmath.V2(1, 1), ms[0].Position)

	assert.True(t, sc.Remove(5))
	sc.Reset()
	assert.Zero(t, sc.Len())
}
