// Package mesh provides polygonal meshes with per-face normals.
package mesh

import (
	"github.com/Faultbox/scenekit/pkg/math"
)

// Face is a polygon referencing mesh vertices by index.
// Indices are ordered counter-clockwise when seen from the front.
type Face struct {
	Indices []uint32
	Normal  math.Vec3
}

// Mesh is a list of vertex positions and the faces built over them.
// Meshes are shared between scene nodes and must not be mutated while
// a scene references them.
type Mesh struct {
	Vertices []math.Vec3
	Faces    []Face
	Color    math.Color

	// Lines draws every face as a closed line loop instead of a filled polygon.
	Lines bool

	// Emission is added to the lit color, so a mesh can glow.
	Emission math.Color
	// Texture is a renderer texture handle wrapped spherically around the
	// mesh; 0 draws Color.
	Texture uint32
}

// Vertex is a flat-shaded vertex ready for GPU upload.
type Vertex struct {
	Position [3]float32
	Normal   [3]float32
}

// Bounds holds an axis-aligned bounding box.
type Bounds struct {
	Min [3]float32
	Max [3]float32
}

// Center returns the middle point of the box.
func (b Bounds) Center() math.Vec3 {
	return math.Point(
		(b.Min[0]+b.Max[0])/2,
		(b.Min[1]+b.Max[1])/2,
		(b.Min[2]+b.Max[2])/2,
	)
}

// Size returns the extent of the box along each axis.
func (b Bounds) Size() [3]float32 {
	return [3]float32{b.Max[0] - b.Min[0], b.Max[1] - b.Min[1], b.Max[2] - b.Min[2]}
}
