package fsm

import (
	"fmt"
	"sort"

	"github.com/BurntSushi/toml"
)

// LoadConfig parses a TOML graph and replaces the machine's nodes
// All state, action and guard references are validated; registries must be populated first
func (m *Machine[T]) LoadConfig(data []byte) error {
	var config RootConfig
	md, err := toml.Decode(string(data), &config)
	if err != nil {
		return fmt.Errorf("failed to decode FSM config: %w", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return fmt.Errorf("%w: unknown key %q", ErrInvalidConfig, undecoded[0].String())
	}
	if len(config.States) == 0 {
		return fmt.Errorf("%w: no states", ErrInvalidConfig)
	}

	m.nodes = make(map[StateID]*Node[T])
	m.nameToID = make(map[string]StateID)
	m.activeID = StateNone

	// Sorted names give deterministic IDs starting at 1
	names := make([]string, 0, len(config.States))
	for name := range config.States {
		names = append(names, name)
	}
	sort.Strings(names)
	for i, name := range names {
		m.AddState(StateID(i+1), name)
	}

	for _, name := range names {
		cfg := config.States[name]
		if cfg == nil {
			cfg = &StateConfig{}
		}
		node := m.nodes[m.nameToID[name]]

		if node.OnEnter, err = m.compileActions(cfg.OnEnter); err != nil {
			return fmt.Errorf("state '%s' on_enter: %w", name, err)
		}
		if node.OnExit, err = m.compileActions(cfg.OnExit); err != nil {
			return fmt.Errorf("state '%s' on_exit: %w", name, err)
		}

		for _, tc := range cfg.Transitions {
			targetID, ok := m.nameToID[tc.Target]
			if !ok {
				return fmt.Errorf("state '%s': %w: target '%s'", name, ErrUnknownState, tc.Target)
			}
			if tc.Trigger == "" {
				return fmt.Errorf("state '%s': %w: empty trigger", name, ErrInvalidConfig)
			}
			var guard GuardFunc[T]
			if tc.Guard != "" {
				g, ok := m.guardReg[tc.Guard]
				if !ok {
					return fmt.Errorf("state '%s': %w: guard '%s'", name, ErrUnknownGuard, tc.Guard)
				}
				guard = g
			}
			node.Transitions = append(node.Transitions, Transition[T]{
				Trigger:  Trigger(tc.Trigger),
				TargetID: targetID,
				Guard:    guard,
			})
		}
	}

	initialID, ok := m.nameToID[config.InitialState]
	if !ok {
		return fmt.Errorf("%w: initial state '%s'", ErrUnknownState, config.InitialState)
	}
	m.InitialID = initialID
	return nil
}

func (m *Machine[T]) compileActions(names []string) ([]ActionFunc[T], error) {
	if len(names) == 0 {
		return nil, nil
	}
	actions := make([]ActionFunc[T], 0, len(names))
	for _, name := range names {
		fn, ok := m.actionReg[name]
		if !ok {
			return nil, fmt.Errorf("%w: '%s'", ErrUnknownAction, name)
		}
		actions = append(actions, fn)
	}
	return actions, nil
}
