// Package input polls SDL2 events and turns them into viewer events.
package input

import (
	"github.com/veandco/go-sdl2/sdl"
)

// EventType identifies an input event.
type EventType int

const (
	EventNone EventType = iota
	EventQuit
	EventWindowResize
	EventFocusLost
	EventKeyDown
	EventKeyUp
	EventMouseMove
	EventMouseDown
	EventMouseUp
	EventMouseWheel
)

// Event represents a processed input event.
type Event struct {
	Type EventType

	// Keyboard
	Key     sdl.Scancode
	KeyName string // SDL scancode name, e.g. "W", "Left Shift", "Escape"
	Repeat  bool

	// Window
	Width  int
	Height int

	// Mouse
	MouseX float32
	MouseY float32
	Button uint8
	WheelY float32
}

// Input handles all input processing.
type Input struct {
	events []Event
}

// New creates a new input handler.
func New() *Input {
	return &Input{
		events: make([]Event, 0, 16),
	}
}

// Update polls SDL events and converts them to viewer events.
// Returns true if the window was asked to close.
func (i *Input) Update() bool {
	i.events = i.events[:0]
	quit := false

	for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
		switch e := event.(type) {
		case *sdl.QuitEvent:
			i.events = append(i.events, Event{Type: EventQuit})
			quit = true

		case *sdl.WindowEvent:
			switch e.Event {
			case sdl.WINDOWEVENT_RESIZED, sdl.WINDOWEVENT_SIZE_CHANGED:
				i.events = append(i.events, Event{
					Type:   EventWindowResize,
					Width:  int(e.Data1),
					Height: int(e.Data2),
				})
			case sdl.WINDOWEVENT_FOCUS_LOST:
				i.events = append(i.events, Event{Type: EventFocusLost})
			}

		case *sdl.KeyboardEvent:
			ev := Event{
				Key:     e.Keysym.Scancode,
				KeyName: sdl.GetScancodeName(e.Keysym.Scancode),
				Repeat:  e.Repeat != 0,
			}
			switch e.Type {
			case sdl.KEYDOWN:
				ev.Type = EventKeyDown
			case sdl.KEYUP:
				ev.Type = EventKeyUp
			default:
				continue
			}
			i.events = append(i.events, ev)

		case *sdl.MouseMotionEvent:
			i.events = append(i.events, Event{
				Type:   EventMouseMove,
				MouseX: float32(e.X),
				MouseY: float32(e.Y),
			})

		case *sdl.MouseButtonEvent:
			ev := Event{
				MouseX: float32(e.X),
				MouseY: float32(e.Y),
				Button: e.Button,
			}
			switch e.Type {
			case sdl.MOUSEBUTTONDOWN:
				ev.Type = EventMouseDown
			case sdl.MOUSEBUTTONUP:
				ev.Type = EventMouseUp
			default:
				continue
			}
			i.events = append(i.events, ev)

		case *sdl.MouseWheelEvent:
			y := float32(e.Y)
			if e.Direction == sdl.MOUSEWHEEL_FLIPPED {
				y = -y
			}
			i.events = append(i.events, Event{
				Type:   EventMouseWheel,
				WheelY: y,
			})
		}
	}

	return quit
}

// Events returns the events from the last Update.
func (i *Input) Events() []Event {
	return i.events
}

// ButtonLeft is the mouse button that drives camera orbit.
const ButtonLeft = sdl.BUTTON_LEFT
