// Package input defines window and pointer events and dispatches them to
// subscribed listeners.
package input

// EventType identifies an event.
type EventType int

const (
	EventNone EventType = iota
	EventQuit
	EventWindowResize
	EventWindowShown
	EventWindowHidden
	EventKeyDown
	EventKeyUp
	EventMouseMove
	EventMouseDown
	EventMouseUp
	EventMouseWheel
)

var eventNames = [...]string{
	EventNone:         "none",
	EventQuit:         "quit",
	EventWindowResize: "resize",
	EventWindowShown:  "shown",
	EventWindowHidden: "hidden",
	EventKeyDown:      "keydown",
	EventKeyUp:        "keyup",
	EventMouseMove:    "mousemove",
	EventMouseDown:    "mousedown",
	EventMouseUp:      "mouseup",
	EventMouseWheel:   "wheel",
}

func (t EventType) String() string {
	if t < 0 || int(t) >= len(eventNames) {
		return "unknown"
	}
	return eventNames[t]
}

// Key is a platform-independent key code.
type Key int

const (
	KeyUnknown Key = iota
	KeyEscape
	KeyF11
	KeyF12
)

// Event is a processed window or input event. Mouse coordinates are in
// window (logical) pixels.
type Event struct {
	Type   EventType
	Key    Key
	Width  int
	Height int
	MouseX float32
	MouseY float32
	Button uint8
	Wheel  float32
}
