package states

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Faultbox/scenekit/internal/engine/input"
)

type recordingState struct {
	name    string
	log     *[]string
	exitErr error
	onEvent func(ev input.Event) bool
	steps   int
}

func (s *recordingState) Name() string { return s.name }

func (s *recordingState) Enter() error {
	*s.log = append(*s.log, "enter "+s.name)
	return nil
}

func (s *recordingState) Exit() error {
	*s.log = append(*s.log, "exit "+s.name)
	return s.exitErr
}

func (s *recordingState) HandleEvent(ev input.Event) bool {
	if s.onEvent != nil {
		return s.onEvent(ev)
	}
	return false
}

func (s *recordingState) Step() bool {
	s.steps++
	return true
}

func TestChangeIsDeferredUntilUpdate(t *testing.T) {
	var log []string
	a := &recordingState{name: "a", log: &log}
	b := &recordingState{name: "b", log: &log}

	m := NewManager()
	m.Change(a)
	assert.Nil(t, m.Current())
	assert.True(t, m.Pending())

	require.NoError(t, m.Update())
	assert.True(t, m.Is(a))

	m.Change(b)
	assert.True(t, m.Is(a))
	require.NoError(t, m.Update())
	assert.True(t, m.Is(b))
	assert.Equal(t, []string{"enter a", "exit a", "enter b"}, log)
}

func TestHandleEventAppliesScheduledChange(t *testing.T) {
	var log []string
	m := NewManager()
	b := &recordingState{name: "b", log: &log}
	a := &recordingState{name: "a", log: &log, onEvent: func(input.Event) bool {
		m.Change(b)
		return false
	}}

	m.Change(a)
	require.NoError(t, m.Update())

	redraw, err := m.HandleEvent(input.Char('x', 0, 0))
	require.NoError(t, err)
	assert.True(t, redraw)
	assert.True(t, m.Is(b))
}

func TestExitErrorKeepsCurrent(t *testing.T) {
	var log []string
	boom := errors.New("boom")
	a := &recordingState{name: "a", log: &log, exitErr: boom}
	b := &recordingState{name: "b", log: &log}

	m := NewManager()
	m.Change(a)
	require.NoError(t, m.Update())

	m.Change(b)
	assert.ErrorIs(t, m.Update(), boom)
	assert.True(t, m.Is(a))
	assert.False(t, m.Pending())
}

func TestStepForwardsToCurrent(t *testing.T) {
	var log []string
	a := &recordingState{name: "a", log: &log}

	m := NewManager()
	assert.False(t, m.Step())

	m.Change(a)
	require.NoError(t, m.Update())
	assert.True(t, m.Step())
	assert.Equal(t, 1, a.steps)
}
