// Package input tracks which bound keys are held and turns that into a
// per-frame snapshot of game controls.
package input

import "github.com/milk9111/platformer3d/world"

// State is the held/released mapping for bound keys. Press and Release may be
// called any number of times between frames; the frame reads the result once
// through Snapshot.
type State struct {
	bindings Bindings
	bound    map[string]struct{}
	held     map[string]bool
}

func NewState(b Bindings) *State {
	if b == nil {
		b = DefaultBindings()
	}
	return &State{
		bindings: b,
		bound:    b.keySet(),
		held:     make(map[string]bool),
	}
}

// Press marks code as held. Unbound keys are ignored.
func (s *State) Press(code string) {
	if _, ok := s.bound[code]; !ok {
		return
	}
	s.held[code] = true
}

// Release marks code as released. Unbound keys are ignored.
func (s *State) Release(code string) {
	if _, ok := s.bound[code]; !ok {
		return
	}
	s.held[code] = false
}

// Held reports whether code is currently down.
func (s *State) Held(code string) bool {
	return s.held[code]
}

// ReleaseAll clears every held key, e.g. after the window loses focus.
func (s *State) ReleaseAll() {
	for code := range s.held {
		s.held[code] = false
	}
}

// Snapshot resolves the held keys into controls. An action is active when any
// of its keys is held.
func (s *State) Snapshot() world.Controls {
	return world.Controls{
		Left:    s.active(ActionLeft),
		Right:   s.active(ActionRight),
		Forward: s.active(ActionForward),
		Back:    s.active(ActionBack),
		Jump:    s.active(ActionJump),
	}
}

func (s *State) active(a Action) bool {
	for _, code := range s.bindings[a] {
		if s.held[code] {
			return true
		}
	}
	return false
}
