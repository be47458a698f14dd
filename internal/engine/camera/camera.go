// Package camera provides a free-moving eye/look/up camera.
package camera

import (
	"github.com/Faultbox/scenekit/pkg/math"
)

// Camera looks from Eye towards Look with Up as the vertical direction.
// Moves shift Eye and Look together; rotations turn Look around Eye.
type Camera struct {
	Eye  math.Vec3
	Look math.Vec3
	Up   math.Vec3
}

// New creates a camera.
func New(eye, look, up math.Vec3) *Camera {
	return &Camera{Eye: eye, Look: look, Up: up}
}

// Set replaces the camera placement.
func (c *Camera) Set(eye, look, up math.Vec3) {
	c.Eye, c.Look, c.Up = eye, look, up
}

// View returns the direction from Eye to Look.
func (c *Camera) View() math.Vec3 {
	return c.Look.Sub(c.Eye)
}

func (c *Camera) translate(dir math.Vec3) {
	c.Eye = c.Eye.Add(dir)
	c.Look = c.Look.Add(dir)
}

// moveN moves along the view direction.
func (c *Camera) moveN(d float32) {
	c.translate(c.View().Normalize().Scale(d))
}

// moveU moves along Up x View, to the camera's left.
func (c *Camera) moveU(d float32) {
	side := c.Up.Normalize().Cross(c.View().Normalize()).Normalize()
	c.translate(side.Scale(d))
}

// moveV moves along Up.
func (c *Camera) moveV(d float32) {
	c.translate(c.Up.Normalize().Scale(d))
}

// rotate turns the view direction by deg degrees about Up.
func (c *Camera) rotate(deg float32) {
	q := math.QuatFromAxisAngle(c.Up, math.DegToRad(deg))
	view := q.RotateVec3(c.View())
	c.Look = c.Eye.Add(view)
}

func (c *Camera) MoveForward(d float32)  { c.moveN(d) }
func (c *Camera) MoveBackward(d float32) { c.moveN(-d) }
func (c *Camera) MoveLeft(d float32)     { c.moveU(d) }
func (c *Camera) MoveRight(d float32)    { c.moveU(-d) }
func (c *Camera) MoveUp(d float32)       { c.moveV(d) }
func (c *Camera) MoveDown(d float32)     { c.moveV(-d) }

// RotateLeft turns the view counter-clockwise about Up by deg degrees.
func (c *Camera) RotateLeft(deg float32) { c.rotate(deg) }

// RotateRight turns the view clockwise about Up by deg degrees.
func (c *Camera) RotateRight(deg float32) { c.rotate(-deg) }

// ViewMatrix returns the view matrix for this camera.
func (c *Camera) ViewMatrix() math.Mat4 {
	return math.LookAt(c.Eye, c.Look, c.Up)
}

// Preset is a named camera placement.
type Preset struct {
	Name string
	Eye  math.Vec3
	Look math.Vec3
	Up   math.Vec3
}

// Apply moves c to the preset.
func (p Preset) Apply(c *Camera) {
	c.Set(p.Eye, p.Look, p.Up)
}

// Standard presets at the given distance from the origin: a diagonal view
// and views down each axis.
func Presets(distance float32) []Preset {
	origin := math.Point(0, 0, 0)
	return []Preset{
		{"initial", math.Point(distance, distance, distance), origin, math.Direction(0, 1, 0)},
		{"x", math.Point(distance, 0, 0), origin, math.Direction(0, 1, 0)},
		{"y", math.Point(0, distance, 0), origin, math.Direction(0, 0, -1)},
		{"z", math.Point(0, 0, distance), origin, math.Direction(0, 1, 0)},
	}
}
