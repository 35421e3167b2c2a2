package input

// IntentType discriminates semantic actions
type IntentType uint8

const (
	IntentNone IntentType = iota

	// System-level intents
	IntentQuit        // q, Ctrl+C
	IntentResize      // Terminal resize event
	IntentToggleMute  // m
	IntentToggleDebug // F12

	// Session control
	IntentTogglePause // Esc, p
	IntentRestart     // Enter
	IntentToggleHand  // h

	// Steering
	IntentNudgeLeft  // Left arrow, a
	IntentNudgeRight // Right arrow, d
	IntentJump       // Space, Up arrow, w

	// Mouse
	IntentPointer // Mouse motion; X and Width carry the cell position
)

var intentNames = map[IntentType]string{
	IntentNone:        "none",
	IntentQuit:        "quit",
	IntentResize:      "resize",
	IntentToggleMute:  "toggle_mute",
	IntentToggleDebug: "toggle_debug",
	IntentTogglePause: "toggle_pause",
	IntentRestart:     "restart",
	IntentToggleHand:  "toggle_hand",
	IntentNudgeLeft:   "nudge_left",
	IntentNudgeRight:  "nudge_right",
	IntentJump:        "jump",
	IntentPointer:     "pointer",
}

func (t IntentType) String() string {
	if name, ok := intentNames[t]; ok {
		return name
	}
	return "unknown"
}

// Intent represents a parsed semantic action
// Pure data struct with no engine dependencies
type Intent struct {
	Type  IntentType
	X     int // Pointer column
	Width int // Screen width at the time of the event
}
