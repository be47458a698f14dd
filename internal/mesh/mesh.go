package mesh

import (
	"errors"
	"fmt"

	"github.com/chewxy/math32"

	"github.com/Faultbox/scenekit/pkg/math"
)

// ErrFaceIndex is returned when a face references a vertex that does not exist.
var ErrFaceIndex = errors.New("face index out of range")

// New creates a mesh from vertices and face index loops and computes
// its normals. The mesh color defaults to white.
func New(vertices []math.Vec3, loops [][]uint32) (*Mesh, error) {
	m := &Mesh{
		Vertices: vertices,
		Faces:    make([]Face, len(loops)),
		Color:    math.White,
	}
	for i, loop := range loops {
		m.Faces[i].Indices = loop
	}
	if err := m.Validate(); err != nil {
		return nil, err
	}
	m.CalculateNormals()
	return m, nil
}

// NewellNormal computes the unit normal of a polygon with Newell's method.
// Every vertex is paired with the next one, wrapping at the end. A face with
// zero area yields NaN components.
func NewellNormal(vertices []math.Vec3, loop []uint32) math.Vec3 {
	var n math.Vec3
	for i := range loop {
		cur := vertices[loop[i]]
		nxt := vertices[loop[(i+1)%len(loop)]]
		n.X += (cur.Y - nxt.Y) * (cur.Z + nxt.Z)
		n.Y += (cur.Z - nxt.Z) * (cur.X + nxt.X)
		n.Z += (cur.X - nxt.X) * (cur.Y + nxt.Y)
	}
	return n.Normalize()
}

// CalculateNormals recomputes the normal of every face.
func (m *Mesh) CalculateNormals() {
	for i := range m.Faces {
		m.Faces[i].Normal = NewellNormal(m.Vertices, m.Faces[i].Indices)
	}
}

// Validate checks that every face index references an existing vertex.
func (m *Mesh) Validate() error {
	for fi, f := range m.Faces {
		for _, idx := range f.Indices {
			if int(idx) >= len(m.Vertices) {
				return fmt.Errorf("face %d: vertex %d of %d: %w", fi, idx, len(m.Vertices), ErrFaceIndex)
			}
		}
	}
	return nil
}

// Degenerate reports whether the face has no usable normal, as for a
// zero-area cap or a two-point line.
func (f Face) Degenerate() bool {
	n := f.Normal
	return math32.IsNaN(n.X) || math32.IsNaN(n.Y) || math32.IsNaN(n.Z)
}

// SetColor sets the default draw color.
func (m *Mesh) SetColor(c math.Color) {
	m.Color = c
}

// Triangulate fans every face into triangles. Vertices are duplicated per
// face so each one carries its face normal. Faces with fewer than three
// indices or a degenerate normal are skipped.
func (m *Mesh) Triangulate() ([]Vertex, []uint32) {
	var vertices []Vertex
	var indices []uint32

	for _, f := range m.Faces {
		if len(f.Indices) < 3 || f.Degenerate() {
			continue
		}
		base := uint32(len(vertices))
		normal := f.Normal.XYZ()
		for _, idx := range f.Indices {
			vertices = append(vertices, Vertex{
				Position: m.Vertices[idx].XYZ(),
				Normal:   normal,
			})
		}
		for k := 1; k < len(f.Indices)-1; k++ {
			indices = append(indices, base, base+uint32(k), base+uint32(k+1))
		}
	}
	return vertices, indices
}

// LineSegments returns every face outline as pairs of vertices suitable
// for GL_LINES. Degenerate faces get a zero normal.
func (m *Mesh) LineSegments() []Vertex {
	var out []Vertex
	for _, f := range m.Faces {
		var normal [3]float32
		if !f.Degenerate() {
			normal = f.Normal.XYZ()
		}
		for i := range f.Indices {
			a := m.Vertices[f.Indices[i]]
			b := m.Vertices[f.Indices[(i+1)%len(f.Indices)]]
			out = append(out,
				Vertex{Position: a.XYZ(), Normal: normal},
				Vertex{Position: b.XYZ(), Normal: normal},
			)
		}
	}
	return out
}

// Bounds returns the bounding box of all vertices.
func (m *Mesh) Bounds() Bounds {
	b := Bounds{
		Min: [3]float32{1e10, 1e10, 1e10},
		Max: [3]float32{-1e10, -1e10, -1e10},
	}
	for _, v := range m.Vertices {
		updateBounds(&b, v.XYZ())
	}
	return b
}

func updateBounds(b *Bounds, p [3]float32) {
	for i := 0; i < 3; i++ {
		if p[i] < b.Min[i] {
			b.Min[i] = p[i]
		}
		if p[i] > b.Max[i] {
			b.Max[i] = p[i]
		}
	}
}
