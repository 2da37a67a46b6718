package input

import (
	"fmt"
	"strings"
)

// Action is a game action a key can be bound to.
type Action string

const (
	ActionLeft    Action = "left"
	ActionRight   Action = "right"
	ActionForward Action = "forward"
	ActionBack    Action = "back"
	ActionJump    Action = "jump"
)

var actions = []Action{ActionLeft, ActionRight, ActionForward, ActionBack, ActionJump}

// Bindings maps each action to the key codes that trigger it. Key codes use
// DOM KeyboardEvent.code names ("ArrowLeft", "Space", "KeyW").
type Bindings map[Action][]string

func DefaultBindings() Bindings {
	return Bindings{
		ActionLeft:    {"ArrowLeft"},
		ActionRight:   {"ArrowRight"},
		ActionForward: {"ArrowUp"},
		ActionBack:    {"ArrowDown"},
		ActionJump:    {"Space"},
	}
}

// ParseBindings validates a name-keyed binding table. Actions missing from raw
// keep their default keys.
func ParseBindings(raw map[string][]string) (Bindings, error) {
	b := DefaultBindings()
	for name, codes := range raw {
		a := Action(strings.ToLower(strings.TrimSpace(name)))
		if !a.valid() {
			return nil, fmt.Errorf("input: unknown action %q", name)
		}
		cleaned := make([]string, 0, len(codes))
		for _, code := range codes {
			code = strings.TrimSpace(code)
			if code == "" {
				continue
			}
			cleaned = append(cleaned, code)
		}
		if len(cleaned) == 0 {
			return nil, fmt.Errorf("input: action %q has no keys", name)
		}
		b[a] = cleaned
	}
	return b, nil
}

func (a Action) valid() bool {
	for _, known := range actions {
		if a == known {
			return true
		}
	}
	return false
}

// keySet returns every bound key code.
func (b Bindings) keySet() map[string]struct{} {
	set := make(map[string]struct{})
	for _, codes := range b {
		for _, code := range codes {
			set[code] = struct{}{}
		}
	}
	return set
}
