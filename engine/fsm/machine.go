package fsm

import (
	"errors"
	"fmt"
	"time"
)

var (
	ErrUnknownState  = errors.New("unknown state")
	ErrUnknownAction = errors.New("unknown action")
	ErrUnknownGuard  = errors.New("unknown guard")
	ErrInvalidConfig = errors.New("invalid FSM config")
)

// NewMachine creates an empty FSM; register actions and guards, then LoadConfig
func NewMachine[T any]() *Machine[T] {
	return &Machine[T]{
		nodes:     make(map[StateID]*Node[T]),
		nameToID:  make(map[string]StateID),
		guardReg:  make(map[string]GuardFunc[T]),
		actionReg: make(map[string]ActionFunc[T]),
	}
}

// RegisterGuard adds a predicate to the registry
func (m *Machine[T]) RegisterGuard(name string, fn GuardFunc[T]) {
	m.guardReg[name] = fn
}

// RegisterAction adds a side effect to the registry
func (m *Machine[T]) RegisterAction(name string, fn ActionFunc[T]) {
	m.actionReg[name] = fn
}

// Init enters the initial state, running its OnEnter actions
func (m *Machine[T]) Init(ctx T) error {
	node, ok := m.nodes[m.InitialID]
	if !ok {
		return fmt.Errorf("%w: initial %d", ErrUnknownState, m.InitialID)
	}
	m.activeID = node.ID
	m.timeInState = 0
	for _, action := range node.OnEnter {
		action(ctx)
	}
	return nil
}

// Fire routes a trigger through the active state's transitions
// Returns false when no transition matches; unmatched triggers are no-ops
func (m *Machine[T]) Fire(ctx T, trigger Trigger) bool {
	node, ok := m.nodes[m.activeID]
	if !ok {
		return false
	}
	for _, trans := range node.Transitions {
		if trans.Trigger != trigger {
			continue
		}
		if trans.Guard != nil && !trans.Guard(ctx) {
			continue
		}
		m.transition(ctx, node, trans.TargetID)
		return true
	}
	return false
}

// transition exits the current node and enters target
// Self-transitions run exit and enter actions again
func (m *Machine[T]) transition(ctx T, from *Node[T], targetID StateID) {
	target := m.nodes[targetID]
	for _, action := range from.OnExit {
		action(ctx)
	}
	m.activeID = targetID
	m.timeInState = 0
	m.transitions++
	for _, action := range target.OnEnter {
		action(ctx)
	}
}

// Update accumulates time spent in the active state
func (m *Machine[T]) Update(dt time.Duration) {
	if m.activeID != StateNone {
		m.timeInState += dt
	}
}

// Current returns the active state ID
func (m *Machine[T]) Current() StateID {
	return m.activeID
}

// CurrentName returns the active state name, empty before Init
func (m *Machine[T]) CurrentName() string {
	if node, ok := m.nodes[m.activeID]; ok {
		return node.Name
	}
	return ""
}

// StateID resolves a state name; StateNone if unknown
func (m *Machine[T]) StateID(name string) StateID {
	return m.nameToID[name]
}

// Is reports whether the named state is active
func (m *Machine[T]) Is(name string) bool {
	id, ok := m.nameToID[name]
	return ok && id == m.activeID
}

// TimeInState returns time elapsed in the active state
func (m *Machine[T]) TimeInState() time.Duration {
	return m.timeInState
}

// Transitions returns the number of completed transitions
func (m *Machine[T]) Transitions() uint64 {
	return m.transitions
}

// Can reports whether trigger would match a transition from the active state, ignoring guards
func (m *Machine[T]) Can(trigger Trigger) bool {
	node, ok := m.nodes[m.activeID]
	if !ok {
		return false
	}
	for _, trans := range node.Transitions {
		if trans.Trigger == trigger {
			return true
		}
	}
	return false
}
