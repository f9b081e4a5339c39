package fsm

import "fmt"

// AddState adds a node to the machine
func (m *Machine[T]) AddState(id StateID, name string) *Node[T] {
	node := &Node[T]{
		ID:       id,
		Name:     name,
		OnEnter:  make([]Action[T], 0),
		OnUpdate: make([]Action[T], 0),
		OnExit:   make([]Action[T], 0),
	}
	m.nodes[id] = node
	return node
}

// AddAction attaches a registered action to a state's lifecycle phase
func (m *Machine[T]) AddAction(id StateID, phase Phase, name string, args any) error {
	node, ok := m.nodes[id]
	if !ok {
		return fmt.Errorf("state %d not found", id)
	}
	fn, ok := m.actionReg[name]
	if !ok {
		return fmt.Errorf("action %q not registered", name)
	}

	action := Action[T]{Name: name, Func: fn, Args: args}
	switch phase {
	case PhaseEnter:
		node.OnEnter = append(node.OnEnter, action)
	case PhaseUpdate:
		node.OnUpdate = append(node.OnUpdate, action)
	case PhaseExit:
		node.OnExit = append(node.OnExit, action)
	default:
		return fmt.Errorf("unknown phase %d", phase)
	}
	return nil
}
