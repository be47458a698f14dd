package editor

import (
	"go.uber.org/zap"

	"github.com/Faultbox/scenekit/internal/engine/input"
)

var (
	globalHelp = []string{
		"d: design mode",
		"s: selection mode",
		"a: animation mode",
		"r, F5: reset",
		"ESC: quit",
	}
	designHelp = []string{
		"left click, 1: add a point, every three make a triangle",
		"right click, 3, c: clear pending points",
		"u: remove the last point",
		"k: remove all triangles",
	}
	selectionHelp = []string{
		"left click, 1: select the triangle under the pointer",
		"middle click, 2: move the selection and retexture it",
		"right click, 3: move the selection keeping its texture",
		"e: remove the selection",
		"b: toggle the background",
	}
	animationHelp = []string{
		"m: start or stop",
		"p: one step",
		"b: toggle the background",
	}
)

func (e *Editor) help(mode string, lines []string) {
	for _, l := range append(lines, globalHelp...) {
		e.log.Info(l, zap.String("mode", mode))
	}
}

// designState builds triangles from clicked points.
type designState struct{ e *Editor }

func (s *designState) Name() string { return "design" }

func (s *designState) Enter() error {
	s.e.log.Info("design mode")
	return nil
}

func (s *designState) Exit() error { return nil }

func (s *designState) HandleEvent(ev input.Event) bool {
	e := s.e
	switch ev.Type {
	case input.EventMouseUp:
		switch ev.Button {
		case input.ButtonLeft:
			e.addPoint(e.mouse)
		case input.ButtonRight:
			e.points = nil
		default:
			return false
		}
		return true
	case input.EventChar:
		switch ev.Char {
		case 'h':
			e.help(s.Name(), designHelp)
			return false
		case '1':
			e.addPoint(e.mouse)
		case '2':
			return false
		case '3', 'c':
			e.points = nil
		case 'u':
			e.popPoint()
		case 'k':
			e.triangles = nil
		default:
			return false
		}
		return true
	}
	return false
}

func (s *designState) Step() bool { return false }

// selectionState picks and moves triangles.
type selectionState struct{ e *Editor }

func (s *selectionState) Name() string { return "selection" }

func (s *selectionState) Enter() error {
	s.e.log.Info("selection mode")
	return nil
}

// Exit drops the selection so every triangle is drawn in its normal color.
func (s *selectionState) Exit() error {
	s.e.selected.Clear()
	return nil
}

func (s *selectionState) act(button input.Button) bool {
	e := s.e
	switch button {
	case input.ButtonLeft:
		e.selectAt(e.mouse)
	case input.ButtonMiddle:
		e.moveSelected(e.mouse, true)
	case input.ButtonRight:
		e.moveSelected(e.mouse, false)
	default:
		return false
	}
	return true
}

func (s *selectionState) HandleEvent(ev input.Event) bool {
	e := s.e
	switch ev.Type {
	case input.EventMouseUp:
		return s.act(ev.Button)
	case input.EventChar:
		switch ev.Char {
		case 'h':
			e.help(s.Name(), selectionHelp)
			return false
		case '1':
			return s.act(input.ButtonLeft)
		case '2':
			return s.act(input.ButtonMiddle)
		case '3':
			return s.act(input.ButtonRight)
		case 'e':
			e.removeSelected()
		case 'b':
			e.toggleBackground()
		default:
			return false
		}
		return true
	}
	return false
}

func (s *selectionState) Step() bool { return false }

// animationState moves the triangles on the step timer.
type animationState struct{ e *Editor }

func (s *animationState) Name() string { return "animation" }

// Enter starts the animation.
func (s *animationState) Enter() error {
	s.e.log.Info("animation mode")
	s.e.setRunning(true)
	return nil
}

func (s *animationState) Exit() error {
	s.e.setRunning(false)
	return nil
}

func (s *animationState) HandleEvent(ev input.Event) bool {
	e := s.e
	if ev.Type != input.EventChar {
		return false
	}
	switch ev.Char {
	case 'h':
		e.help(s.Name(), animationHelp)
		return false
	case 'm':
		e.setRunning(!e.running)
		e.log.Info("animation", zap.Bool("running", e.running))
	case 'p':
		if e.running {
			return false
		}
		e.advance()
	case 'b':
		e.toggleBackground()
	default:
		return false
	}
	return true
}

// Step advances one tick and re-arms the timer while running.
func (s *animationState) Step() bool {
	e := s.e
	if !e.running {
		return false
	}
	e.advance()
	e.ctx.ArmTimer()
	return true
}
