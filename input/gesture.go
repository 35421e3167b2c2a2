package input

import "strings"

// Gesture is a classified hand pose reported by the tracking bridge
// Classification itself happens outside this process; only the label arrives
type Gesture uint8

const (
	GestureNone Gesture = iota
	GestureClosedFist
	GesturePointingUp
	GestureThumbUp
	GestureThumbDown
	GestureOpenPalm
	GestureVictory
	GestureILoveYou
)

var gestureLabels = map[string]Gesture{
	"none":        GestureNone,
	"closed_fist": GestureClosedFist,
	"pointing_up": GesturePointingUp,
	"thumb_up":    GestureThumbUp,
	"thumb_down":  GestureThumbDown,
	"open_palm":   GestureOpenPalm,
	"victory":     GestureVictory,
	"iloveyou":    GestureILoveYou,
	"i_love_you":  GestureILoveYou,
}

// ParseGesture maps a classifier label such as "Closed_Fist" to a Gesture
// Matching ignores case and treats spaces as underscores; unknown labels are GestureNone
func ParseGesture(label string) Gesture {
	key := strings.ToLower(strings.ReplaceAll(strings.TrimSpace(label), " ", "_"))
	return gestureLabels[key]
}

func (g Gesture) String() string {
	switch g {
	case GestureClosedFist:
		return "Closed_Fist"
	case GesturePointingUp:
		return "Pointing_Up"
	case GestureThumbUp:
		return "Thumb_Up"
	case GestureThumbDown:
		return "Thumb_Down"
	case GestureOpenPalm:
		return "Open_Palm"
	case GestureVictory:
		return "Victory"
	case GestureILoveYou:
		return "ILoveYou"
	}
	return "None"
}

// GestureAction is what a gesture asks the session to do
type GestureAction uint8

const (
	GestureActionNone GestureAction = iota
	GestureActionJump
	GestureActionResume
	GestureActionPause
)

// Action returns the session action bound to the gesture
func (g Gesture) Action() GestureAction {
	switch g {
	case GestureClosedFist, GesturePointingUp:
		return GestureActionJump
	case GestureThumbUp:
		return GestureActionResume
	case GestureOpenPalm:
		return GestureActionPause
	}
	return GestureActionNone
}
