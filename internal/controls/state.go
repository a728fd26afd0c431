package controls

import "github.com/Faultbox/heliscene/pkg/math"

// State is the per-session input table. Input handlers write it,
// the composer only reads it.
type State struct {
	held      [actionCount]bool
	triggered [actionCount]bool

	mouseDown  bool
	dragOrigin math.Vec2
}

// NewState creates an empty input table.
func NewState() *State {
	return &State{}
}

// SetAction records a press or release of an action.
// Held actions follow the key level. Trigger actions latch only on the
// released->pressed transition, so key repeat does not fire them again.
func (s *State) SetAction(a Action, pressed bool) {
	if !a.Valid() {
		return
	}
	if a.Kind() == KindTrigger && pressed && !s.held[a] {
		s.triggered[a] = true
	}
	s.held[a] = pressed
}

// Held reports whether the action is currently down.
func (s *State) Held(a Action) bool {
	if !a.Valid() {
		return false
	}
	return s.held[a]
}

// Axis returns +1 if only positive is held, -1 if only negative is held
// and 0 otherwise.
func (s *State) Axis(positive, negative Action) int {
	v := 0
	if s.Held(positive) {
		v++
	}
	if s.Held(negative) {
		v--
	}
	return v
}

// AnyHeld reports whether any held-kind action is down.
func (s *State) AnyHeld() bool {
	for a := ActionForward; a < actionCount; a++ {
		if a.Kind() == KindHeld && s.held[a] {
			return true
		}
	}
	return false
}

// TakeTrigger reports whether a trigger action fired since the last call
// and clears it.
func (s *State) TakeTrigger(a Action) bool {
	if !a.Valid() || !s.triggered[a] {
		return false
	}
	s.triggered[a] = false
	return true
}

// PressButton starts a drag at the given cursor position.
func (s *State) PressButton(x, y float32) {
	s.mouseDown = true
	s.dragOrigin = math.Vec2{X: x, Y: y}
}

// ReleaseButton ends the current drag.
func (s *State) ReleaseButton() {
	s.mouseDown = false
}

// ButtonDown reports whether a drag is in progress.
func (s *State) ButtonDown() bool {
	return s.mouseDown
}

// Drag returns origin - (x, y) and moves the origin to (x, y).
// ok is false when no button is held; the origin is left untouched.
func (s *State) Drag(x, y float32) (delta math.Vec2, ok bool) {
	if !s.mouseDown {
		return math.Vec2{}, false
	}
	cur := math.Vec2{X: x, Y: y}
	delta = s.dragOrigin.Sub(cur)
	s.dragOrigin = cur
	return delta, true
}

// Reset releases every action and drops pending triggers.
func (s *State) Reset() {
	*s = State{}
}
