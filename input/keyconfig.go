package input

import (
	"errors"
	"fmt"
	"strings"

	"github.com/gdamore/tcell/v2"
)

// ErrUnknownBinding is returned for unknown key or action names
var ErrUnknownBinding = errors.New("unknown binding")

// Rune aliases for keys that can't be bare single-char config keys
var runeAliases = map[string]rune{
	"space": ' ',
}

// LoadKeyConfig parses key name → action name pairs into a sparse override KeyTable
// Keys are special key names ("left", "ctrl+c"), rune aliases ("space") or single characters
func LoadKeyConfig(bindings map[string]string) (*KeyTable, error) {
	kt := &KeyTable{
		Keys:  make(map[tcell.Key]IntentType),
		Runes: make(map[rune]IntentType),
	}

	for keyStr, actionName := range bindings {
		intent, err := resolveAction(actionName)
		if err != nil {
			return nil, fmt.Errorf("key %q: %w", keyStr, err)
		}

		if k, ok := keyNames[strings.ToLower(keyStr)]; ok {
			kt.Keys[k] = intent
			continue
		}

		r, err := resolveRune(keyStr)
		if err != nil {
			return nil, fmt.Errorf("key %q: %w", keyStr, err)
		}
		kt.Runes[r] = intent
	}

	return kt, nil
}

// resolveRune converts a config key string to a rune
// Accepts single characters and named aliases
func resolveRune(s string) (rune, error) {
	if r, ok := runeAliases[strings.ToLower(s)]; ok {
		return r, nil
	}
	runes := []rune(s)
	if len(runes) == 1 {
		return runes[0], nil
	}
	return 0, fmt.Errorf("%w: key %q (expected key name, single character or alias)", ErrUnknownBinding, s)
}

// resolveAction converts an action name to an intent; "none" yields IntentNone
func resolveAction(name string) (IntentType, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	t, ok := ActionIntent(name)
	if !ok {
		return IntentNone, fmt.Errorf("%w: action %q", ErrUnknownBinding, name)
	}
	return t, nil
}

// MergeKeyTable returns a new KeyTable with base values overridden by override
// Override entries bound to IntentNone delete the key from the result
func MergeKeyTable(base, override *KeyTable) *KeyTable {
	result := base.Clone()
	if override == nil {
		return result
	}

	for k, v := range override.Keys {
		if v == IntentNone {
			delete(result.Keys, k)
		} else {
			result.Keys[k] = v
		}
	}
	for r, v := range override.Runes {
		if v == IntentNone {
			delete(result.Runes, r)
		} else {
			result.Runes[r] = v
		}
	}
	return result
}
