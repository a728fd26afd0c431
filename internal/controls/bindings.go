package controls

import (
	"fmt"
	"sort"
	"strings"
)

// Bindings maps key names to actions. Key names are compared
// case-insensitively, so "Left Shift" and "left shift" are the same key.
type Bindings struct {
	keys map[string]Action
}

// DefaultKeys is the stock layout, keyed by action.
var DefaultKeys = map[Action]string{
	ActionForward:      "W",
	ActionBackward:     "S",
	ActionStrafeLeft:   "A",
	ActionStrafeRight:  "D",
	ActionAscend:       "Space",
	ActionDescend:      "Left Shift",
	ActionYawLeft:      "Q",
	ActionYawRight:     "E",
	ActionPitchUp:      "I",
	ActionPitchDown:    "K",
	ActionRollLeft:     "J",
	ActionRollRight:    "L",
	ActionCameraOrigin: "1",
	ActionCameraFollow: "2",
	ActionCameraToggle: "C",
	ActionScreenshot:   "P",
	ActionDumpState:    "F3",
	ActionQuit:         "Escape",
}

// DefaultBindings returns the stock layout.
func DefaultBindings() *Bindings {
	b := &Bindings{keys: make(map[string]Action, len(DefaultKeys))}
	for a, key := range DefaultKeys {
		b.keys[normalizeKey(key)] = a
	}
	return b
}

// NewBindings starts from the stock layout and applies overrides given as
// action name -> key name. An override replaces the action's default key.
// A key may serve only one action: claiming a key that another action
// still holds is an error, so swaps must override both actions.
func NewBindings(overrides map[string]string) (*Bindings, error) {
	b := DefaultBindings()

	// Sorted so errors name the same actions every run.
	names := make([]string, 0, len(overrides))
	for name := range overrides {
		names = append(names, name)
	}
	sort.Strings(names)

	actions := make([]Action, len(names))
	for i, name := range names {
		a, err := ParseAction(name)
		if err != nil {
			return nil, err
		}
		if normalizeKey(overrides[name]) == "" {
			return nil, fmt.Errorf("action %s: empty key name", name)
		}
		actions[i] = a
		b.unbind(a)
	}

	for i, name := range names {
		key := normalizeKey(overrides[name])
		if other, taken := b.keys[key]; taken {
			return nil, fmt.Errorf("action %s: key %q is already bound to %s", name, overrides[name], other)
		}
		b.keys[key] = actions[i]
	}
	return b, nil
}

// Lookup returns the action bound to a key, or ActionNone.
func (b *Bindings) Lookup(key string) Action {
	return b.keys[normalizeKey(key)]
}

// KeyFor returns the key bound to an action, or "" if unbound.
func (b *Bindings) KeyFor(a Action) string {
	for key, bound := range b.keys {
		if bound == a {
			return key
		}
	}
	return ""
}

func (b *Bindings) unbind(a Action) {
	for key, bound := range b.keys {
		if bound == a {
			delete(b.keys, key)
		}
	}
}

func normalizeKey(key string) string {
	return strings.ToLower(strings.TrimSpace(key))
}
