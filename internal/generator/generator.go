// Package generator builds meshes procedurally: surfaces of revolution swept
// from an outline profile, boxes, spheres and rings.
package generator

import (
	"errors"
	"fmt"

	"github.com/chewxy/math32"

	"github.com/Faultbox/scenekit/internal/mesh"
	"github.com/Faultbox/scenekit/pkg/math"
)

// ErrSlices is returned when a revolution has fewer than three slices.
var ErrSlices = errors.New("revolution needs at least 3 slices")

// Revolve sweeps the outline around the Y axis in slices equal steps.
//
// Vertices are stored slice-major: vertex (i, j) is outline point j rotated
// by i steps, at index i*len(outline)+j. Each pair of neighbouring slices is
// joined by quads (i,j+1),(i,j),(i+1,j),(i+1,j+1), the last slice wrapping to
// the first. With fillHoles, two extra faces close the surface: the first
// outline point of every slice in reverse order, and the last outline point
// of every slice in forward order.
func Revolve(outline Outline, slices int, fillHoles bool) (*mesh.Mesh, error) {
	if slices < 3 {
		return nil, fmt.Errorf("%d slices: %w", slices, ErrSlices)
	}
	if len(outline) < 2 {
		return nil, fmt.Errorf("%d points: %w", len(outline), ErrOutline)
	}

	size := uint32(len(outline))
	step := 2 * math32.Pi / float32(slices)

	vertices := make([]math.Vec3, 0, slices*len(outline))
	loops := make([][]uint32, 0, slices*(len(outline)-1)+2)

	for i := 0; i < slices; i++ {
		rot := math.RotateY(float32(i) * step)
		for _, p := range outline {
			vertices = append(vertices, rot.TransformPoint(p))
		}

		left := uint32(i) * size
		right := uint32((i+1)%slices) * size
		for j := uint32(0); j < size-1; j++ {
			loops = append(loops, []uint32{left + j + 1, left + j, right + j, right + j + 1})
		}
	}

	if fillHoles {
		down := make([]uint32, slices)
		up := make([]uint32, slices)
		for i := 0; i < slices; i++ {
			down[slices-1-i] = uint32(i) * size
			up[i] = uint32(i)*size + size - 1
		}
		loops = append(loops, down, up)
	}

	return mesh.New(vertices, loops)
}

// Box returns an axis-aligned cube centred on the origin with six outward
// facing quads.
func Box(length float32) *mesh.Mesh {
	h := length / 2
	vertices := []math.Vec3{
		math.Point(-h, h, h),
		math.Point(-h, -h, h),
		math.Point(h, -h, h),
		math.Point(h, h, h),
		math.Point(-h, h, -h),
		math.Point(-h, -h, -h),
		math.Point(h, -h, -h),
		math.Point(h, h, -h),
	}
	loops := [][]uint32{
		{0, 1, 2, 3}, // front
		{7, 6, 5, 4}, // back
		{3, 2, 6, 7}, // right
		{4, 5, 1, 0}, // left
		{0, 3, 7, 4}, // top
		{1, 5, 6, 2}, // bottom
	}
	return mustMesh(vertices, loops)
}

// SphereOutline returns a half circle from the south to the north pole,
// in stacks segments.
func SphereOutline(radius float32, stacks int) Outline {
	out := make(Outline, stacks+1)
	for k := 0; k <= stacks; k++ {
		a := -math32.Pi/2 + math32.Pi*float32(k)/float32(stacks)
		s, c := math32.Sincos(a)
		x := radius * c
		if k == 0 || k == stacks {
			x = 0
		}
		out[k] = math.Point(x, radius*s, 0)
	}
	return out
}

// Sphere returns a sphere built by revolving a half circle.
func Sphere(radius float32, slices, stacks int) (*mesh.Mesh, error) {
	if stacks < 2 {
		return nil, fmt.Errorf("sphere with %d stacks: %w", stacks, ErrOutline)
	}
	return Revolve(SphereOutline(radius, stacks), slices, false)
}

// Ring returns a circle of the given radius in the XZ plane, drawn as a
// line loop.
func Ring(radius float32, segments int) (*mesh.Mesh, error) {
	if segments < 3 {
		return nil, fmt.Errorf("ring with %d segments: %w", segments, ErrSlices)
	}
	vertices := make([]math.Vec3, segments)
	loop := make([]uint32, segments)
	for i := 0; i < segments; i++ {
		s, c := math32.Sincos(2 * math32.Pi * float32(i) / float32(segments))
		vertices[i] = math.Point(radius*c, 0, -radius*s)
		loop[i] = uint32(i)
	}
	m, err := mesh.New(vertices, [][]uint32{loop})
	if err != nil {
		return nil, err
	}
	m.Lines = true
	return m, nil
}

// Satellite returns a small probe: two square pyramids joined at their apex
// with a panel through the apex, spanning [-1,1] on every axis.
func Satellite() *mesh.Mesh {
	side := []math.Vec3{
		math.Point(0, 0, 0),
		math.Point(1, 1, -1),
		math.Point(-1, 1, -1),
		math.Point(1, -1, -1),
		math.Point(-1, -1, -1),
		math.Point(-1, 1, 0),
		math.Point(1, 1, 0),
		math.Point(1, -1, 0),
		math.Point(-1, -1, 0),
	}
	sideLoops := [][]uint32{
		{0, 1, 2},
		{0, 3, 1},
		{0, 4, 3},
		{0, 2, 4},
		{2, 1, 3, 4},
		{5, 6, 7, 8},
	}

	// The second side is the first turned half a revolution about Y.
	turn := math.RotateY(math32.Pi)
	n := uint32(len(side))
	vertices := make([]math.Vec3, 0, 2*len(side))
	vertices = append(vertices, side...)
	for _, v := range side {
		vertices = append(vertices, turn.TransformPoint(v))
	}
	loops := make([][]uint32, 0, 2*len(sideLoops))
	loops = append(loops, sideLoops...)
	for _, l := range sideLoops {
		shifted := make([]uint32, len(l))
		for i, idx := range l {
			shifted[i] = idx + n
		}
		loops = append(loops, shifted)
	}

	return mustMesh(vertices, loops)
}

// mustMesh builds a mesh from fixed tables and panics if they are malformed.
func mustMesh(vertices []math.Vec3, loops [][]uint32) *mesh.Mesh {
	m, err := mesh.New(vertices, loops)
	if err != nil {
		panic(fmt.Sprintf("generator: %v", err))
	}
	return m
}
