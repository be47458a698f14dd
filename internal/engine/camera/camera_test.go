package camera

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Faultbox/scenekit/pkg/math"
)

func assertVec(t *testing.T, want, got math.Vec3) {
	t.Helper()
	assert.InDelta(t, want.X, got.X, 1e-3, "x")
	assert.InDelta(t, want.Y, got.Y, 1e-3, "y")
	assert.InDelta(t, want.Z, got.Z, 1e-3, "z")
}

func axisCamera() *Camera {
	return New(math.Point(0, 0, 100), math.Point(0, 0, 0), math.Direction(0, 1, 0))
}

func TestMoveForwardKeepsView(t *testing.T) {
	c := axisCamera()
	c.MoveForward(10)

	assertVec(t, math.Point(0, 0, 90), c.Eye)
	assertVec(t, math.Point(0, 0, -10), c.Look)
	assert.True(t, c.Eye.IsPoint())

	c.MoveBackward(10)
	assertVec(t, math.Point(0, 0, 100), c.Eye)
}

func TestMoveLeftRight(t *testing.T) {
	c := axisCamera()
	// Looking down -Z with +Y up, left is -X.
	c.MoveLeft(10)
	assertVec(t, math.Point(-10, 0, 100), c.Eye)

	c.MoveRight(20)
	assertVec(t, math.Point(10, 0, 100), c.Eye)
	assertVec(t, math.Point(10, 0, 0), c.Look)
}

func TestMoveUpDown(t *testing.T) {
	c := axisCamera()
	c.MoveUp(5)
	assertVec(t, math.Point(0, 5, 100), c.Eye)
	c.MoveDown(15)
	assertVec(t, math.Point(0, -10, 0), c.Look)
}

func TestRotateTurnsAboutUp(t *testing.T) {
	c := axisCamera()
	c.RotateLeft(90)

	// View (0,0,-100) turned 90 degrees about +Y points to -X.
	assertVec(t, math.Point(-100, 0, 100), c.Look)
	assertVec(t, math.Point(0, 0, 100), c.Eye)

	c.RotateRight(90)
	assertVec(t, math.Point(0, 0, 0), c.Look)
}

func TestPresets(t *testing.T) {
	ps := Presets(100)
	assert.Len(t, ps, 4)

	c := axisCamera()
	ps[0].Apply(c)
	assertVec(t, math.Point(100, 100, 100), c.Eye)

	m := c.ViewMatrix()
	assert.True(t, m.IsAffine())
	// The eye maps to the view-space origin.
	assertVec(t, math.Point(0, 0, 0), m.TransformPoint(c.Eye))
}
