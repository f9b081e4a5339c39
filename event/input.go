package event

import (
	"github.com/lixenwraith/steer/steering"
	"github.com/lixenwraith/steer/vmath"
)

// InputType represents the kind of input event
type InputType uint8

const (
	// InputCursor carries a new cursor world position | Payload: Cursor
	InputCursor InputType = iota
	// InputSelect requests a behavior switch | Payload: Behavior
	InputSelect
	// InputToggleDebug flips debug marker display | Payload: none
	InputToggleDebug
	// InputResize reports a new screen size in cells | Payload: Width, Height
	InputResize
	// InputPause toggles simulation time | Payload: none
	InputPause
	// InputQuit requests shutdown | Payload: none
	InputQuit
)

// InputEvent is produced by the input poller and consumed once per tick
type InputEvent struct {
	Type          InputType
	Cursor        vmath.Vec2
	Behavior      steering.Behavior
	Width, Height int
}
