package shape

import (
	"github.com/Faultbox/scenekit/internal/picking"
	"github.com/Faultbox/scenekit/pkg/math"
)

// Triangle is a movable triangle with a velocity in pixels per step.
type Triangle struct {
	base
	velocity math.Vec2
	hit      picking.TriangleTest
}

// NewTriangle creates a triangle from three vertices and their texture
// coordinates. The center is the centroid.
func NewTriangle(p1, p2, p3, t1, t2, t3 math.Vec2) *Triangle {
	const third = float32(1) / 3
	return &Triangle{
		base: base{
			center: p1.Scale(third).Add(p2.Scale(third)).Add(p3.Scale(third)),
			points: []PointInfo{{t1, p1}, {t2, p2}, {t3, p3}},
			color:  math.White,
		},
		hit: picking.NewTriangleTest(p1, p2, p3),
	}
}

// Velocity returns the displacement applied per animation step.
func (t *Triangle) Velocity() math.Vec2 { return t.velocity }

// SetVelocity sets the displacement applied per animation step.
func (t *Triangle) SetVelocity(v math.Vec2) { t.velocity = v }

// Inside reports whether p lies in the triangle, edges included.
func (t *Triangle) Inside(p math.Vec2) bool { return t.hit.Contains(p) }

// Move translates the triangle.
func (t *Triangle) Move(offset math.Vec2) {
	t.move(offset)
	t.hit.Translate(offset)
}

// SetPosition moves the triangle so its centroid is at center.
func (t *Triangle) SetPosition(center math.Vec2) { t.Move(center.Sub(t.center)) }

// OrientCCW returns the three points in counter-clockwise order. When p2
// lies left of the edge p0->p1 they are returned unchanged, otherwise p1
// and p2 swap.
func OrientCCW(p0, p1, p2 math.Vec2) (math.Vec2, math.Vec2, math.Vec2) {
	if p1.Sub(p0).LeftPerpendicular().Dot(p2.Sub(p0)) > 0 {
		return p0, p1, p2
	}
	return p0, p2, p1
}
