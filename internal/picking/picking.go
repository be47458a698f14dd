// Package picking provides 2D hit testing and single-object selection.
package picking

import (
	"github.com/Faultbox/scenekit/pkg/math"
)

// TriangleTest holds the edge vectors of a triangle for repeated
// point-in-triangle queries.
type TriangleTest struct {
	origin math.Vec2
	ab, ac math.Vec2
	abPerp math.Vec2 // left perpendicular of ab
	acPerp math.Vec2 // right perpendicular of ac
}

// NewTriangleTest prepares a hit test for triangle (a, b, c).
func NewTriangleTest(a, b, c math.Vec2) TriangleTest {
	ab := b.Sub(a)
	ac := c.Sub(a)
	return TriangleTest{
		origin: a,
		ab:     ab,
		ac:     ac,
		abPerp: ab.LeftPerpendicular(),
		acPerp: ac.RightPerpendicular(),
	}
}

// Translate moves the triangle by offset. Edge vectors do not change.
func (t *TriangleTest) Translate(offset math.Vec2) {
	t.origin = t.origin.Add(offset)
}

// Contains reports whether p lies inside the triangle or on its boundary.
// p is written as origin + s*ab + u*ac; it is inside when s >= 0, u >= 0
// and s+u <= 1. A degenerate triangle contains nothing, since the divisions
// produce NaN or infinities.
func (t TriangleTest) Contains(p math.Vec2) bool {
	ap := p.Sub(t.origin)
	s := ap.Dot(t.acPerp) / t.ab.Dot(t.acPerp)
	u := ap.Dot(t.abPerp) / t.ac.Dot(t.abPerp)
	return s >= 0 && u >= 0 && s+u <= 1
}

// PointInTriangle reports whether p lies inside triangle (a, b, c).
func PointInTriangle(p, a, b, c math.Vec2) bool {
	return NewTriangleTest(a, b, c).Contains(p)
}

// Viewport describes where the projection is mapped in the window.
type Viewport struct {
	Left, Bottom  float32
	Width, Height float32
}

// WindowToProjection converts window pixel coordinates (origin top-left)
// into projection coordinates (origin bottom-left of the viewport).
func WindowToProjection(x, y int, vp Viewport) math.Vec2 {
	return math.Vec2{
		X: float32(x) - vp.Left,
		Y: (vp.Height - 1 - float32(y)) - vp.Bottom,
	}
}
