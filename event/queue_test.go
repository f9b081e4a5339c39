package event

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/steer/parameter"
	"github.com/lixenwraith/steer/steering"
	"github.com/lixenwraith/steer/vmath"
)

func TestQueue_FIFO(t *testing.T) {
	q := NewQueue()
	assert.Nil(t, q.Consume())

	q.Push(InputEvent{Type: InputCursor, Cursor: vmath.V2(1, 2)})
	q.Push(InputEvent{Type: InputSelect, Behavior: steering.BehaviorWander})
	q.Push(InputEvent{Type: InputQuit})
	assert.Equal(t, 3, q.Len())

	got := q.Consume()
	require.Len(t, got, 3)
	assert.Equal(t, InputCursor, got[0].Type)
	assert.Equal(t, vmath.V2(1, 2), got[0].Cursor)
	assert.Equal(t, steering.BehaviorWander, got[1].Behavior)
	assert.Equal(t, InputQuit, got[2].Type)

	assert.Zero(t, q.Len())
	assert.Nil(t, q.Consume())
}

func TestQueue_OverflowKeepsNewest(t *testing.T) {
	q := NewQueue()
	total := parameter.InputQueueSize + 10
	for i := 0; i < total; i++ {
		q.Push(InputEvent{Type: InputResize, Width: i})
	}
	assert.Equal(t, parameter.InputQueueSize, q.Len())

	got := q.Consume()
	require.Len(t, got, parameter.InputQueueSize)
	assert.Equal(t, 10, got[0].Width)
	assert.Equal(t, total-1, got[len(got)-1].Width)
}

func TestQueue_ConcurrentProducers(t *testing.T) {
	q := NewQueue()
	const producers, each = 4, 50

	var wg sync.WaitGroup
	for p := 0; p < producers; p++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < each; i++ {
				q.Push(InputEvent{Type: InputToggleDebug})
			}
		}()
	}
	wg.Wait()

	assert.Len(t, q.Consume(), producers*each)
}

func TestCollisionInvolves(t *testing.T) {
	c := Collision{A: 1, B: 5}
	assert.True(t, c.Involves(1, 5))
	assert.True(t, c.Involves(5, 1))
	assert.False(t, c.Involves(1, 6))
}

func TestCommandConstructors(t *testing.T) {
	s := Spawn(3, MarkerPathPoint, vmath.V2(1, 1), 10)
	assert.Equal(t, OpSpawn, s.Op)
	assert.Equal(t, "path-point", s.Marker.String())

	d := Despawn(3, MarkerPathPoint)
	assert.Equal(t, OpDespawn, d.Op)
	assert.Equal(t, "despawn", d.Op.String())

	m := Move(4, MarkerPursueOffset, vmath.V2(2, 2))
	assert.Equal(t, vmath.V2(2, 2), m.Position)
}
