// Package controls tracks which logical actions the user is requesting.
package controls

import "fmt"

// Action is a logical input action, independent of the key it is bound to.
type Action int

const (
	ActionNone Action = iota

	// Held actions drive continuous movement while the key is down.
	ActionForward
	ActionBackward
	ActionStrafeLeft
	ActionStrafeRight
	ActionAscend
	ActionDescend
	ActionYawLeft
	ActionYawRight
	ActionPitchUp
	ActionPitchDown
	ActionRollLeft
	ActionRollRight

	// Trigger actions fire once per press.
	ActionCameraOrigin
	ActionCameraFollow
	ActionCameraToggle
	ActionScreenshot
	ActionDumpState
	ActionQuit

	actionCount
)

// Kind distinguishes level-triggered from edge-triggered actions.
type Kind int

const (
	KindHeld Kind = iota
	KindTrigger
)

var actionNames = [actionCount]string{
	ActionNone:         "none",
	ActionForward:      "forward",
	ActionBackward:     "backward",
	ActionStrafeLeft:   "strafe_left",
	ActionStrafeRight:  "strafe_right",
	ActionAscend:       "ascend",
	ActionDescend:      "descend",
	ActionYawLeft:      "yaw_left",
	ActionYawRight:     "yaw_right",
	ActionPitchUp:      "pitch_up",
	ActionPitchDown:    "pitch_down",
	ActionRollLeft:     "roll_left",
	ActionRollRight:    "roll_right",
	ActionCameraOrigin: "camera_origin",
	ActionCameraFollow: "camera_follow",
	ActionCameraToggle: "camera_toggle",
	ActionScreenshot:   "screenshot",
	ActionDumpState:    "dump_state",
	ActionQuit:         "quit",
}

// String returns the action's config name.
func (a Action) String() string {
	if !a.Valid() {
		return fmt.Sprintf("action(%d)", int(a))
	}
	return actionNames[a]
}

// Valid reports whether a is a recognized action other than ActionNone.
func (a Action) Valid() bool {
	return a > ActionNone && a < actionCount
}

// Kind returns whether the action is held or triggered.
func (a Action) Kind() Kind {
	if a >= ActionCameraOrigin {
		return KindTrigger
	}
	return KindHeld
}

// ParseAction returns the action with the given config name.
func ParseAction(name string) (Action, error) {
	for a := ActionForward; a < actionCount; a++ {
		if actionNames[a] == name {
			return a, nil
		}
	}
	return ActionNone, fmt.Errorf("unknown action %q", name)
}

// Actions returns every recognized action in declaration order.
func Actions() []Action {
	out := make([]Action, 0, actionCount-1)
	for a := ActionForward; a < actionCount; a++ {
		out = append(out, a)
	}
	return out
}
