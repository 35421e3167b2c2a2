package fsm

import "fmt"

// AddState adds a node to the machine manually
func (m *Machine[T]) AddState(id StateID, name string) *Node[T] {
	node := &Node[T]{
		ID:   id,
		Name: name,
	}
	m.nodes[id] = node
	m.nameToID[name] = id
	return node
}

// AddTransition appends a transition to a node
func (m *Machine[T]) AddTransition(sourceID StateID, t Transition[T]) error {
	node, ok := m.nodes[sourceID]
	if !ok {
		return fmt.Errorf("%w: source %d", ErrUnknownState, sourceID)
	}
	if _, ok := m.nodes[t.TargetID]; !ok {
		return fmt.Errorf("%w: target %d", ErrUnknownState, t.TargetID)
	}
	node.Transitions = append(node.Transitions, t)
	return nil
}
