// Package sdlinput translates SDL2 events into input events.
package sdlinput

import (
	"unicode/utf8"

	"github.com/veandco/go-sdl2/sdl"

	"github.com/Faultbox/scenekit/internal/engine/input"
)

var keys = map[sdl.Scancode]input.Key{
	sdl.SCANCODE_ESCAPE:   input.KeyEscape,
	sdl.SCANCODE_F1:       input.KeyF1,
	sdl.SCANCODE_F2:       input.KeyF2,
	sdl.SCANCODE_F3:       input.KeyF3,
	sdl.SCANCODE_F4:       input.KeyF4,
	sdl.SCANCODE_F5:       input.KeyF5,
	sdl.SCANCODE_F6:       input.KeyF6,
	sdl.SCANCODE_F7:       input.KeyF7,
	sdl.SCANCODE_F8:       input.KeyF8,
	sdl.SCANCODE_F9:       input.KeyF9,
	sdl.SCANCODE_F10:      input.KeyF10,
	sdl.SCANCODE_F11:      input.KeyF11,
	sdl.SCANCODE_F12:      input.KeyF12,
	sdl.SCANCODE_UP:       input.KeyUp,
	sdl.SCANCODE_DOWN:     input.KeyDown,
	sdl.SCANCODE_LEFT:     input.KeyLeft,
	sdl.SCANCODE_RIGHT:    input.KeyRight,
	sdl.SCANCODE_PAGEUP:   input.KeyPageUp,
	sdl.SCANCODE_PAGEDOWN: input.KeyPageDown,
	sdl.SCANCODE_DELETE:   input.KeyDelete,
}

// Input handles all input processing.
type Input struct {
	events []input.Event
	mouseX int
	mouseY int
}

// New creates a new input handler and enables text input so that typed
// characters arrive already shifted.
func New() *Input {
	sdl.StartTextInput()
	return &Input{
		events: make([]input.Event, 0, 16),
	}
}

// Update polls SDL events and converts them to input events.
// Returns true if a quit was requested.
func (i *Input) Update() bool {
	i.events = i.events[:0]
	quit := false

	for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
		switch e := event.(type) {
		case *sdl.QuitEvent:
			i.events = append(i.events, input.Event{Type: input.EventQuit})
			quit = true

		case *sdl.WindowEvent:
			if e.Event == sdl.WINDOWEVENT_RESIZED || e.Event == sdl.WINDOWEVENT_SIZE_CHANGED {
				i.events = append(i.events, input.Resize(int(e.Data1), int(e.Data2)))
			}

		case *sdl.TextInputEvent:
			text := e.GetText()
			if r, _ := utf8.DecodeRuneInString(text); r != utf8.RuneError {
				i.events = append(i.events, input.Char(r, i.mouseX, i.mouseY))
			}

		case *sdl.KeyboardEvent:
			k, ok := keys[e.Keysym.Scancode]
			if !ok {
				continue
			}
			ev := input.Event{Type: input.EventKeyDown, Key: k, MouseX: i.mouseX, MouseY: i.mouseY}
			if e.Type == sdl.KEYUP {
				ev.Type = input.EventKeyUp
			}
			i.events = append(i.events, ev)
			if k == input.KeyEscape && e.Type == sdl.KEYDOWN {
				quit = true
			}

		case *sdl.MouseMotionEvent:
			i.mouseX, i.mouseY = int(e.X), int(e.Y)
			i.events = append(i.events, input.Event{
				Type:   input.EventMouseMove,
				MouseX: i.mouseX,
				MouseY: i.mouseY,
			})

		case *sdl.MouseButtonEvent:
			i.mouseX, i.mouseY = int(e.X), int(e.Y)
			ev := input.Event{
				Type:   input.EventMouseDown,
				MouseX: i.mouseX,
				MouseY: i.mouseY,
				Button: input.Button(e.Button),
			}
			if e.Type == sdl.MOUSEBUTTONUP {
				ev.Type = input.EventMouseUp
			}
			i.events = append(i.events, ev)
		}
	}

	return quit
}

// Events returns the events from the last Update.
func (i *Input) Events() []input.Event {
	return i.events
}

// Close stops text input.
func (i *Input) Close() {
	sdl.StopTextInput()
}
