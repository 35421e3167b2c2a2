package input

// actionRegistry maps canonical action names to intents
// Used by the keymap loader to resolve config action strings to bindings
var actionRegistry map[string]IntentType

func init() {
	actionRegistry = make(map[string]IntentType, len(intentNames))
	for t, name := range intentNames {
		// Resize and pointer come from the terminal, never from a key
		if t == IntentResize || t == IntentPointer {
			continue
		}
		actionRegistry[name] = t
	}
}

// ActionIntent looks up an action by canonical name; "none" unbinds a key
func ActionIntent(name string) (IntentType, bool) {
	t, ok := actionRegistry[name]
	return t, ok
}

// ActionNames returns every bindable action name
func ActionNames() []string {
	names := make([]string, 0, len(actionRegistry))
	for name := range actionRegistry {
		names = append(names, name)
	}
	return names
}
