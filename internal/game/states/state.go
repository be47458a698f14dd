// Package states implements mode management for interactive demos.
package states

import (
	"github.com/Faultbox/scenekit/internal/engine/input"
)

// State is one interaction mode.
type State interface {
	// Name identifies the state in logs.
	Name() string

	// Enter is called when entering this state.
	Enter() error

	// Exit is called when leaving this state.
	Exit() error

	// HandleEvent processes an input event and reports whether a redraw
	// is needed.
	HandleEvent(ev input.Event) bool

	// Step is called on every timer tick and reports whether a redraw is
	// needed.
	Step() bool
}

// Manager manages state transitions.
type Manager struct {
	current State
	next    State
}

// NewManager creates a new state manager.
func NewManager() *Manager {
	return &Manager{}
}

// Current returns the current state.
func (m *Manager) Current() State {
	return m.current
}

// Is reports whether s is the current state.
func (m *Manager) Is(s State) bool {
	return m.current == s
}

// Change schedules a state change. It takes effect on the next Update.
func (m *Manager) Change(next State) {
	m.next = next
}

// Pending reports whether a change is scheduled.
func (m *Manager) Pending() bool {
	return m.next != nil
}

// Update applies a scheduled change: the current state exits, then the
// next state enters. Changing to the current state exits and re-enters it.
func (m *Manager) Update() error {
	if m.next == nil {
		return nil
	}
	if m.current != nil {
		if err := m.current.Exit(); err != nil {
			m.next = nil
			return err
		}
	}
	m.current = m.next
	m.next = nil
	return m.current.Enter()
}

// HandleEvent forwards ev to the current state and applies any change the
// state scheduled while handling it.
func (m *Manager) HandleEvent(ev input.Event) (bool, error) {
	if m.current == nil {
		return false, m.Update()
	}
	redraw := m.current.HandleEvent(ev)
	if m.next != nil {
		return true, m.Update()
	}
	return redraw, nil
}

// Step forwards a timer tick to the current state.
func (m *Manager) Step() bool {
	if m.current == nil {
		return false
	}
	return m.current.Step()
}
