package scene

import (
	"github.com/Faultbox/scenekit/internal/mesh"
	"github.com/Faultbox/scenekit/internal/shape"
	"github.com/Faultbox/scenekit/pkg/math"
)

// Geometry is what a node draws. The set of implementations is closed:
// Group, Mesh, Rectangle and Triangle. A nil Geometry behaves as Group.
type Geometry interface {
	geometry()
}

// Group draws nothing; it only carries a transform for its children.
type Group struct{}

// Mesh draws a shared mesh in a solid color.
type Mesh struct {
	Mesh  *mesh.Mesh
	Color math.Color
}

// FigureStyle controls how a 2D figure is drawn.
type FigureStyle struct {
	// Texture is a renderer texture handle; 0 draws the figure filled with
	// its own color.
	Texture uint32
	// Border outlines the figure in its color.
	Border bool
	// Center marks the figure center with a point.
	Center bool
	// Hidden skips the fill and draws only the border and center.
	Hidden bool
}

// Rectangle draws an axis-aligned 2D figure.
type Rectangle struct {
	Figure *shape.Rectangle
	Style  FigureStyle
}

// Triangle draws a 2D triangle.
type Triangle struct {
	Figure *shape.Triangle
	Style  FigureStyle
}

func (Group) geometry()     {}
func (Mesh) geometry()      {}
func (Rectangle) geometry() {}
func (Triangle) geometry()  {}

// figureOf returns the 2D figure behind g, if any.
func figureOf(g Geometry) (shape.Figure, bool) {
	switch g := g.(type) {
	case Rectangle:
		return g.Figure, g.Figure != nil
	case Triangle:
		return g.Figure, g.Figure != nil
	default:
		return nil, false
	}
}
