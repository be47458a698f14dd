// Package input defines the window-system independent input events the
// demos consume.
package input

import "fmt"

// EventType classifies an Event.
type EventType int

const (
	EventNone EventType = iota
	EventQuit
	EventWindowResize
	// EventChar carries a typed character, already shifted ('N' vs 'n').
	EventChar
	// EventKeyDown carries a non-character key such as a function key.
	EventKeyDown
	EventKeyUp
	EventMouseMove
	EventMouseDown
	EventMouseUp
)

var eventNames = [...]string{"none", "quit", "resize", "char", "keydown", "keyup", "mousemove", "mousedown", "mouseup"}

func (t EventType) String() string {
	if t < 0 || int(t) >= len(eventNames) {
		return fmt.Sprintf("EventType(%d)", int(t))
	}
	return eventNames[t]
}

// Key is a non-character key.
type Key int

const (
	KeyUnknown Key = iota
	KeyEscape
	KeyF1
	KeyF2
	KeyF3
	KeyF4
	KeyF5
	KeyF6
	KeyF7
	KeyF8
	KeyF9
	KeyF10
	KeyF11
	KeyF12
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyPageUp
	KeyPageDown
	KeyDelete
)

// Button is a mouse button.
type Button uint8

const (
	ButtonLeft   Button = 1
	ButtonMiddle Button = 2
	ButtonRight  Button = 3
)

// Event represents a processed input event. MouseX and MouseY are window
// coordinates with the origin at the top-left corner; character and key
// events carry the last known pointer position.
type Event struct {
	Type   EventType
	Key    Key
	Char   rune
	Width  int
	Height int
	MouseX int
	MouseY int
	Button Button
}

// Char returns a character event at the given pointer position.
func Char(c rune, x, y int) Event {
	return Event{Type: EventChar, Char: c, MouseX: x, MouseY: y}
}

// Press returns a key press event.
func Press(k Key) Event {
	return Event{Type: EventKeyDown, Key: k}
}

// MouseUp returns a button release event.
func MouseUp(b Button, x, y int) Event {
	return Event{Type: EventMouseUp, Button: b, MouseX: x, MouseY: y}
}

// Resize returns a window resize event.
func Resize(width, height int) Event {
	return Event{Type: EventWindowResize, Width: width, Height: height}
}

// IsQuit reports whether the event asks the application to stop: a window
// close or the escape key.
func (e Event) IsQuit() bool {
	return e.Type == EventQuit || (e.Type == EventKeyDown && e.Key == KeyEscape)
}
