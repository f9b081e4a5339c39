package fsm

import "time"

// StateID is a unique identifier for a node
type StateID int

const StateNone StateID = 0

// Phase selects which lifecycle list an action is attached to
type Phase uint8

const (
	PhaseEnter Phase = iota
	PhaseUpdate
	PhaseExit
)

// Machine is a flat finite state machine with exactly one active state
// T is the context type passed to actions (e.g., *engine.World)
type Machine[T any] struct {
	// Graph data, immutable after setup
	nodes map[StateID]*Node[T]

	// InitialStateID is entered by Init and Reset
	InitialStateID StateID

	// Runtime state
	activeStateID StateID
	timeInState   time.Duration
	transitions   uint64

	// Dependency injection
	actionReg map[string]ActionFunc[T]
}

// Node represents a state
type Node[T any] struct {
	ID   StateID
	Name string

	// Lifecycle actions, run in insertion order
	OnEnter  []Action[T]
	OnUpdate []Action[T]
	OnExit   []Action[T]
}

// Action represents a side-effect
type Action[T any] struct {
	Name string
	Func ActionFunc[T]
	Args any // Pre-compiled payload handed to Func
}

// ActionFunc executes a side effect
type ActionFunc[T any] func(ctx T, args any)
