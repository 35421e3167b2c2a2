package fsm

import "time"

// StateID is a unique identifier for a node
type StateID int

const StateNone StateID = 0

// Trigger names an external request that may cause a transition (e.g. "pause")
type Trigger string

// Machine is a flat finite state machine driven by named triggers
// T is the context type passed to actions and guards (e.g. *engine.Simulation)
type Machine[T any] struct {
	// Graph data (immutable after load)
	nodes     map[StateID]*Node[T]
	nameToID  map[string]StateID
	InitialID StateID

	// Runtime state
	activeID    StateID
	timeInState time.Duration
	transitions uint64

	// Dependency injection
	guardReg  map[string]GuardFunc[T]
	actionReg map[string]ActionFunc[T]
}

// Node represents a single state
type Node[T any] struct {
	ID   StateID
	Name string

	OnEnter []ActionFunc[T]
	OnExit  []ActionFunc[T]

	// Transitions in evaluation order; first matching trigger with a passing guard wins
	Transitions []Transition[T]
}

// Transition defines a link between states
type Transition[T any] struct {
	Trigger  Trigger
	TargetID StateID
	Guard    GuardFunc[T] // nil = always true
}

// GuardFunc returns true if the transition should occur
type GuardFunc[T any] func(ctx T) bool

// ActionFunc executes a side effect on enter or exit
type ActionFunc[T any] func(ctx T)
