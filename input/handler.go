package input

import (
	"context"
	"sync/atomic"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/steer/event"
	"github.com/lixenwraith/steer/render"
)

// Handler translates tcell events into queued input events
// Runs on the polling goroutine; the camera is swapped atomically by the render loop
type Handler struct {
	queue  *event.Queue
	keys   *KeyTable
	camera atomic.Pointer[render.Camera]
}

// NewHandler creates a handler pushing into q
func NewHandler(q *event.Queue, keys *KeyTable, cam render.Camera) *Handler {
	if keys == nil {
		keys = DefaultKeyTable()
	}
	h := &Handler{queue: q, keys: keys}
	h.SetCamera(cam)
	return h
}

// SetCamera updates the cell-to-world mapping after a resize
func (h *Handler) SetCamera(cam render.Camera) {
	h.camera.Store(&cam)
}

// Handle queues the event's translation and reports whether it was a quit request
func (h *Handler) Handle(ev tcell.Event) (quit bool) {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		entry, ok := h.keys.Lookup(ev)
		if !ok {
			return false
		}
		h.queue.Push(event.InputEvent{Type: entry.Type, Behavior: entry.Behavior})
		return entry.Type == event.InputQuit

	case *tcell.EventMouse:
		x, y := ev.Position()
		cam := h.camera.Load()
		if x < 0 || y < 0 || x >= cam.Width || y >= cam.Height {
			return false
		}
		h.queue.Push(event.InputEvent{Type: event.InputCursor, Cursor: cam.ToWorld(x, y)})

	case *tcell.EventResize:
		w, hgt := ev.Size()
		h.queue.Push(event.InputEvent{Type: event.InputResize, Width: w, Height: hgt})
	}
	return false
}

// Poll reads screen events until ctx is done, the screen is finalized, or a quit key arrives
func (h *Handler) Poll(ctx context.Context, screen tcell.Screen) {
	for {
		ev := screen.PollEvent()
		if ev == nil {
			return
		}
		if h.Handle(ev) {
			return
		}
		select {
		case <-ctx.Done():
			return
		default:
		}
	}
}
