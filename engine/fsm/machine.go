package fsm

import (
	"fmt"
	"time"
)

// NewMachine creates a new FSM instance
func NewMachine[T any]() *Machine[T] {
	return &Machine[T]{
		nodes:     make(map[StateID]*Node[T]),
		actionReg: make(map[string]ActionFunc[T]),
	}
}

// RegisterAction adds a side-effect function to the registry
func (m *Machine[T]) RegisterAction(name string, fn ActionFunc[T]) {
	m.actionReg[name] = fn
}

// Init enters the initial state, running its OnEnter actions
func (m *Machine[T]) Init(ctx T) error {
	if m.activeStateID != StateNone {
		return fmt.Errorf("FSM already initialized in state %d", m.activeStateID)
	}
	node, ok := m.nodes[m.InitialStateID]
	if !ok {
		return fmt.Errorf("initial state ID %d not found", m.InitialStateID)
	}

	m.activeStateID = node.ID
	m.timeInState = 0
	runActions(ctx, node.OnEnter)
	return nil
}

// Update advances time in state and runs the active state's OnUpdate actions
func (m *Machine[T]) Update(ctx T, dt time.Duration) {
	if m.activeStateID == StateNone {
		return
	}
	m.timeInState += dt
	runActions(ctx, m.nodes[m.activeStateID].OnUpdate)
}

// Transition exits the active state and enters targetID
// Self-transition is a no-op; the active ID is switched between exit and enter actions
// so enter actions observe the new state
func (m *Machine[T]) Transition(ctx T, targetID StateID) error {
	target, ok := m.nodes[targetID]
	if !ok {
		return fmt.Errorf("transition to unknown state ID %d", targetID)
	}
	if m.activeStateID == targetID {
		return nil
	}

	if current, ok := m.nodes[m.activeStateID]; ok {
		runActions(ctx, current.OnExit)
	}

	m.activeStateID = targetID
	m.timeInState = 0
	m.transitions++

	runActions(ctx, target.OnEnter)
	return nil
}

// Shutdown exits the active state and leaves the machine uninitialized
// Safe to call repeatedly
func (m *Machine[T]) Shutdown(ctx T) {
	if current, ok := m.nodes[m.activeStateID]; ok {
		runActions(ctx, current.OnExit)
	}
	m.activeStateID = StateNone
	m.timeInState = 0
}

// Reset returns the FSM to its initial state
func (m *Machine[T]) Reset(ctx T) error {
	m.Shutdown(ctx)
	return m.Init(ctx)
}

// ActiveState returns the active StateID, StateNone before Init
func (m *Machine[T]) ActiveState() StateID {
	return m.activeStateID
}

// StateName returns the node name for id, empty if unknown
func (m *Machine[T]) StateName(id StateID) string {
	if node, ok := m.nodes[id]; ok {
		return node.Name
	}
	return ""
}

// TimeInState returns time accumulated by Update since the last transition
func (m *Machine[T]) TimeInState() time.Duration {
	return m.timeInState
}

// Transitions returns the number of state changes since creation
func (m *Machine[T]) Transitions() uint64 {
	return m.transitions
}

func runActions[T any](ctx T, actions []Action[T]) {
	for _, action := range actions {
		action.Func(ctx, action.Args)
	}
}
