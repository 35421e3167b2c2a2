package input

import (
	"errors"
	"testing"

	"github.com/gdamore/tcell/v2"
)

func TestMachineDefaultBindings(t *testing.T) {
	m := NewMachine(nil)
	tests := []struct {
		name string
		ev   tcell.Event
		want IntentType
	}{
		{"left arrow", tcell.NewEventKey(tcell.KeyLeft, 0, tcell.ModNone), IntentNudgeLeft},
		{"right arrow", tcell.NewEventKey(tcell.KeyRight, 0, tcell.ModNone), IntentNudgeRight},
		{"space", tcell.NewEventKey(tcell.KeyRune, ' ', tcell.ModNone), IntentJump},
		{"escape", tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone), IntentTogglePause},
		{"p", tcell.NewEventKey(tcell.KeyRune, 'p', tcell.ModNone), IntentTogglePause},
		{"enter", tcell.NewEventKey(tcell.KeyEnter, 0, tcell.ModNone), IntentRestart},
		{"h", tcell.NewEventKey(tcell.KeyRune, 'h', tcell.ModNone), IntentToggleHand},
		{"q", tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModNone), IntentQuit},
		{"ctrl+c", tcell.NewEventKey(tcell.KeyCtrlC, 0, tcell.ModCtrl), IntentQuit},
	}
	for _, tt := range tests {
		intent := m.Process(tt.ev)
		if intent == nil {
			t.Errorf("%s: expected %v, got nil", tt.name, tt.want)
			continue
		}
		if intent.Type != tt.want {
			t.Errorf("%s: expected %v, got %v", tt.name, tt.want, intent.Type)
		}
	}

	if intent := m.Process(tcell.NewEventKey(tcell.KeyRune, 'z', tcell.ModNone)); intent != nil {
		t.Errorf("Expected unbound rune to yield nil, got %v", intent.Type)
	}
}

func TestMachinePointerNeedsWidth(t *testing.T) {
	m := NewMachine(nil)
	if intent := m.Process(tcell.NewEventMouse(10, 5, tcell.ButtonNone, tcell.ModNone)); intent != nil {
		t.Error("Expected pointer ignored before the first resize")
	}

	resize := m.Process(tcell.NewEventResize(80, 24))
	if resize == nil || resize.Type != IntentResize || resize.Width != 80 {
		t.Fatalf("Expected resize intent with width 80, got %+v", resize)
	}

	intent := m.Process(tcell.NewEventMouse(60, 5, tcell.ButtonNone, tcell.ModNone))
	if intent == nil || intent.Type != IntentPointer || intent.X != 60 || intent.Width != 80 {
		t.Errorf("Unexpected pointer intent %+v", intent)
	}
}

func TestLoadKeyConfigOverrides(t *testing.T) {
	override, err := LoadKeyConfig(map[string]string{
		"j":     "nudge_left",
		"space": "none",
		"Left":  "jump",
		"x":     "Quit",
	})
	if err != nil {
		t.Fatalf("LoadKeyConfig failed: %v", err)
	}

	kt := MergeKeyTable(DefaultKeyTable(), override)
	if kt.Runes['j'] != IntentNudgeLeft {
		t.Error("Expected j bound to nudge_left")
	}
	if _, ok := kt.Runes[' ']; ok {
		t.Error("Expected space unbound")
	}
	if kt.Keys[tcell.KeyLeft] != IntentJump {
		t.Error("Expected left arrow rebound to jump")
	}
	if kt.Runes['x'] != IntentQuit {
		t.Error("Expected action names to be case-insensitive")
	}
	if DefaultKeyTable().Runes[' '] != IntentJump {
		t.Error("Expected merge to leave the base table untouched")
	}
}

func TestLoadKeyConfigRejectsUnknown(t *testing.T) {
	tests := []map[string]string{
		{"j": "teleport"},
		{"ctrl+shift+zz": "jump"},
		{"j": "pointer"},
	}
	for _, bindings := range tests {
		if _, err := LoadKeyConfig(bindings); !errors.Is(err, ErrUnknownBinding) {
			t.Errorf("%v: expected ErrUnknownBinding, got %v", bindings, err)
		}
	}
}
