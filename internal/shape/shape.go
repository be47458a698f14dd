// Package shape provides the 2D figures of the triangle editor.
package shape

import (
	"github.com/Faultbox/scenekit/pkg/math"
)

// PointInfo is a figure vertex with its texture coordinate.
type PointInfo struct {
	TexCoord math.Vec2
	Vertex   math.Vec2
}

// Figure is a closed 2D polygon with a center, a color and per-vertex
// texture coordinates.
type Figure interface {
	Center() math.Vec2
	Points() []PointInfo
	Color() math.Color
	SetColor(c math.Color)
	SetTexCoord(i int, uv math.Vec2)
	Move(offset math.Vec2)
	SetPosition(center math.Vec2)
	Inside(p math.Vec2) bool
}

// base holds the state shared by all figures.
type base struct {
	center math.Vec2
	points []PointInfo
	color  math.Color
}

// Center returns the figure center.
func (b *base) Center() math.Vec2 { return b.center }

// Points returns the figure vertices. The slice must not be modified.
func (b *base) Points() []PointInfo { return b.points }

// Color returns the figure color.
func (b *base) Color() math.Color { return b.color }

// SetColor sets the figure color.
func (b *base) SetColor(c math.Color) { b.color = c }

// SetTexCoord sets the texture coordinate of vertex i. Out of range
// indices are ignored.
func (b *base) SetTexCoord(i int, uv math.Vec2) {
	if i >= 0 && i < len(b.points) {
		b.points[i].TexCoord = uv
	}
}

func (b *base) move(offset math.Vec2) {
	b.center = b.center.Add(offset)
	for i := range b.points {
		b.points[i].Vertex = b.points[i].Vertex.Add(offset)
	}
}

// Rectangle is an axis-aligned figure. Its vertices are bottom-left,
// bottom-right, top-right and top-left, with texture coordinates covering
// the unit square.
type Rectangle struct {
	base
}

// NewRectangle creates a rectangle from its edges.
func NewRectangle(left, bottom, right, top float32) *Rectangle {
	return &Rectangle{base{
		center: math.Vec2{X: (left + right) / 2, Y: (bottom + top) / 2},
		points: []PointInfo{
			{math.Vec2{X: 0, Y: 0}, math.Vec2{X: left, Y: bottom}},
			{math.Vec2{X: 1, Y: 0}, math.Vec2{X: right, Y: bottom}},
			{math.Vec2{X: 1, Y: 1}, math.Vec2{X: right, Y: top}},
			{math.Vec2{X: 0, Y: 1}, math.Vec2{X: left, Y: top}},
		},
		color: math.White,
	}}
}

func (r *Rectangle) Left() float32   { return r.points[0].Vertex.X }
func (r *Rectangle) Bottom() float32 { return r.points[0].Vertex.Y }
func (r *Rectangle) Right() float32  { return r.points[2].Vertex.X }
func (r *Rectangle) Top() float32    { return r.points[2].Vertex.Y }

// Inside reports whether p lies in the rectangle, edges included.
func (r *Rectangle) Inside(p math.Vec2) bool {
	return r.Left() <= p.X && p.X <= r.Right() &&
		r.Bottom() <= p.Y && p.Y <= r.Top()
}

// Move translates the rectangle.
func (r *Rectangle) Move(offset math.Vec2) { r.move(offset) }

// SetPosition moves the rectangle so its center is at center.
func (r *Rectangle) SetPosition(center math.Vec2) { r.move(center.Sub(r.center)) }
