package input

import (
	"maps"

	"github.com/gdamore/tcell/v2"
)

// KeyTable maps keys to intents
type KeyTable struct {
	// Special keys (Ctrl+*, arrows, function keys)
	Keys map[tcell.Key]IntentType

	// Printable rune bindings
	Runes map[rune]IntentType
}

// DefaultKeyTable returns the default key bindings
func DefaultKeyTable() *KeyTable {
	return &KeyTable{
		Keys: map[tcell.Key]IntentType{
			tcell.KeyCtrlC:  IntentQuit,
			tcell.KeyEscape: IntentTogglePause,
			tcell.KeyEnter:  IntentRestart,
			tcell.KeyLeft:   IntentNudgeLeft,
			tcell.KeyRight:  IntentNudgeRight,
			tcell.KeyUp:     IntentJump,
			tcell.KeyF12:    IntentToggleDebug,
		},
		Runes: map[rune]IntentType{
			'q': IntentQuit,
			'p': IntentTogglePause,
			'h': IntentToggleHand,
			'm': IntentToggleMute,
			'a': IntentNudgeLeft,
			'd': IntentNudgeRight,
			'w': IntentJump,
			' ': IntentJump,
		},
	}
}

// Clone returns a deep copy
func (kt *KeyTable) Clone() *KeyTable {
	return &KeyTable{
		Keys:  maps.Clone(kt.Keys),
		Runes: maps.Clone(kt.Runes),
	}
}

// keyNames resolves config key names to special keys
var keyNames = map[string]tcell.Key{
	"left":      tcell.KeyLeft,
	"right":     tcell.KeyRight,
	"up":        tcell.KeyUp,
	"down":      tcell.KeyDown,
	"enter":     tcell.KeyEnter,
	"esc":       tcell.KeyEscape,
	"escape":    tcell.KeyEscape,
	"tab":       tcell.KeyTab,
	"backspace": tcell.KeyBackspace2,
	"home":      tcell.KeyHome,
	"end":       tcell.KeyEnd,
	"pgup":      tcell.KeyPgUp,
	"pgdn":      tcell.KeyPgDn,
	"f1":        tcell.KeyF1,
	"f2":        tcell.KeyF2,
	"f10":       tcell.KeyF10,
	"f12":       tcell.KeyF12,
	"ctrl+c":    tcell.KeyCtrlC,
	"ctrl+q":    tcell.KeyCtrlQ,
	"ctrl+r":    tcell.KeyCtrlR,
	"ctrl+p":    tcell.KeyCtrlP,
}
