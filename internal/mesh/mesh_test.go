package mesh

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Faultbox/scenekit/pkg/math"
)

func unitSquare() []math.Vec3 {
	return []math.Vec3{
		math.Point(0, 0, 0),
		math.Point(1, 0, 0),
		math.Point(1, 1, 0),
		math.Point(0, 1, 0),
	}
}

func TestNewellNormalCounterClockwise(t *testing.T) {
	n := NewellNormal(unitSquare(), []uint32{0, 1, 2, 3})

	assert.InDelta(t, 0, n.X, 1e-6)
	assert.InDelta(t, 0, n.Y, 1e-6)
	assert.InDelta(t, 1, n.Z, 1e-6)
	assert.True(t, n.IsDirection())
}

func TestNewellNormalClockwiseFlips(t *testing.T) {
	n := NewellNormal(unitSquare(), []uint32{3, 2, 1, 0})
	assert.InDelta(t, -1, n.Z, 1e-6)
}

func TestNewellNormalNonPlanarIsUnit(t *testing.T) {
	verts := []math.Vec3{
		math.Point(0, 0, 0),
		math.Point(2, 0, 0.3),
		math.Point(2, 2, -0.2),
		math.Point(0, 2, 0.1),
	}
	n := NewellNormal(verts, []uint32{0, 1, 2, 3})
	assert.InDelta(t, 1, n.Length(), 1e-5)
	assert.Greater(t, n.Z, float32(0.9))
}

func TestNewComputesNormals(t *testing.T) {
	m, err := New(unitSquare(), [][]uint32{{0, 1, 2, 3}})
	require.NoError(t, err)
	require.Len(t, m.Faces, 1)
	assert.InDelta(t, 1, m.Faces[0].Normal.Z, 1e-6)
	assert.Equal(t, math.White, m.Color)
}

func TestValidateRejectsBadIndex(t *testing.T) {
	_, err := New(unitSquare(), [][]uint32{{0, 1, 4}})
	require.ErrorIs(t, err, ErrFaceIndex)
}

func TestTriangulateFan(t *testing.T) {
	m, err := New(unitSquare(), [][]uint32{{0, 1, 2, 3}, {0, 1}})
	require.NoError(t, err)

	verts, idx := m.Triangulate()

	// The two-index face is skipped.
	require.Len(t, verts, 4)
	assert.Equal(t, []uint32{0, 1, 2, 0, 2, 3}, idx)
	for _, v := range verts {
		assert.InDelta(t, 1, v.Normal[2], 1e-6)
	}
}

func TestLineSegmentsCloseLoop(t *testing.T) {
	m := &Mesh{
		Vertices: unitSquare(),
		Faces:    []Face{{Indices: []uint32{0, 1, 2, 3}}},
		Lines:    true,
	}
	segs := m.LineSegments()
	require.Len(t, segs, 8)
	assert.Equal(t, [3]float32{0, 1, 0}, segs[6].Position)
	assert.Equal(t, [3]float32{0, 0, 0}, segs[7].Position)
}

func TestTriangulateSkipsZeroAreaFace(t *testing.T) {
	vertices := append(unitSquare(), math.Point(0.5, 0.5, 0))
	// The second face collapses onto one point.
	m, err := New(vertices, [][]uint32{{0, 1, 2, 3}, {4, 4, 4, 4}})
	require.NoError(t, err)
	require.True(t, m.Faces[1].Degenerate())
	require.False(t, m.Faces[0].Degenerate())

	verts, idx := m.Triangulate()
	require.Len(t, verts, 4)
	assert.Equal(t, []uint32{0, 1, 2, 0, 2, 3}, idx)
}

func TestLineSegmentsOfTwoPointLine(t *testing.T) {
	m, err := New([]math.Vec3{math.Point(0, 0, 0), math.Point(0, 0, 5)}, [][]uint32{{0, 1}})
	require.NoError(t, err)
	require.True(t, m.Faces[0].Degenerate())

	segs := m.LineSegments()
	require.Len(t, segs, 4)
	assert.Equal(t, [3]float32{0, 0, 5}, segs[1].Position)
	for _, v := range segs {
		assert.Equal(t, [3]float32{}, v.Normal)
	}
}

func TestBounds(t *testing.T) {
	m := &Mesh{Vertices: []math.Vec3{math.Point(-1, 2, 3), math.Point(4, -5, 6)}}
	b := m.Bounds()

	assert.Equal(t, [3]float32{-1, -5, 3}, b.Min)
	assert.Equal(t, [3]float32{4, 2, 6}, b.Max)
	assert.Equal(t, [3]float32{5, 7, 3}, b.Size())
	assert.Equal(t, math.Point(1.5, -1.5, 4.5), b.Center())
}
