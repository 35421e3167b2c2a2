package input

import (
	"github.com/gdamore/tcell/v2"
)

// Machine translates terminal events into Intents
type Machine struct {
	keyTable *KeyTable
	width    int
}

// NewMachine creates a machine with the given bindings; nil uses DefaultKeyTable
func NewMachine(kt *KeyTable) *Machine {
	if kt == nil {
		kt = DefaultKeyTable()
	}
	return &Machine{keyTable: kt}
}

// SetWidth records the screen width used to normalize pointer positions
func (m *Machine) SetWidth(width int) {
	m.width = width
}

// Process parses a terminal event and returns an Intent
// Returns nil for events with no binding
func (m *Machine) Process(ev tcell.Event) *Intent {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return m.processKey(ev)
	case *tcell.EventMouse:
		return m.processMouse(ev)
	case *tcell.EventResize:
		m.width, _ = ev.Size()
		return &Intent{Type: IntentResize, Width: m.width}
	}
	return nil
}

func (m *Machine) processKey(ev *tcell.EventKey) *Intent {
	if ev.Key() == tcell.KeyRune {
		if t, ok := m.keyTable.Runes[ev.Rune()]; ok {
			return &Intent{Type: t}
		}
		return nil
	}
	if t, ok := m.keyTable.Keys[ev.Key()]; ok {
		return &Intent{Type: t}
	}
	return nil
}

// processMouse reports pointer motion; buttons are not bound
func (m *Machine) processMouse(ev *tcell.EventMouse) *Intent {
	if m.width <= 0 {
		return nil
	}
	x, _ := ev.Position()
	return &Intent{Type: IntentPointer, X: x, Width: m.width}
}
