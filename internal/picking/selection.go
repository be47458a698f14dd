package picking

import (
	"github.com/Faultbox/scenekit/pkg/math"
)

// Selectable is an object that can be hit tested and highlighted.
type Selectable interface {
	Inside(p math.Vec2) bool
	SetColor(c math.Color)
}

// Selection tracks at most one selected item and its highlight.
// Items are compared by identity, so T is normally a pointer type.
type Selection[T Selectable] struct {
	Normal    math.Color
	Highlight math.Color

	selected T
	has      bool
}

// NewSelection creates an empty selection using the given colors.
func NewSelection[T Selectable](normal, highlight math.Color) *Selection[T] {
	return &Selection[T]{Normal: normal, Highlight: highlight}
}

// SelectAt clears the current selection and selects the first candidate,
// in order, that contains p. It reports whether something was selected.
func (s *Selection[T]) SelectAt(p math.Vec2, candidates []T) bool {
	s.Clear()
	for _, c := range candidates {
		if c.Inside(p) {
			s.selected = c
			s.has = true
			c.SetColor(s.Highlight)
			return true
		}
	}
	return false
}

// Clear restores the selected item's color and empties the selection.
func (s *Selection[T]) Clear() {
	if s.has {
		s.selected.SetColor(s.Normal)
	}
	var zero T
	s.selected = zero
	s.has = false
}

// Selected returns the selected item, if any.
func (s *Selection[T]) Selected() (T, bool) {
	return s.selected, s.has
}

// Release forgets item without touching its color when it is the current
// selection. Call it before the item is removed.
func (s *Selection[T]) Release(item T) {
	if s.has && any(s.selected) == any(item) {
		var zero T
		s.selected = zero
		s.has = false
	}
}
