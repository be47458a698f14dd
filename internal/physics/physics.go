// Package physics moves bodies by their velocity and bounces them off the
// edges of a rectangular area.
package physics

import (
	"math/rand/v2"

	"github.com/Faultbox/scenekit/pkg/math"
)

// Bounds is the area bodies live in, from (0,0) to (Width,Height).
// A coordinate is outside when it is < 0 or >= the size.
type Bounds struct {
	Width, Height float32
}

// Region classifies a point against Bounds.
type Region int

const (
	Inside Region = iota
	Left
	Right
	Bottom
	Top
	Corner
)

func (r Region) String() string {
	switch r {
	case Inside:
		return "inside"
	case Left:
		return "left"
	case Right:
		return "right"
	case Bottom:
		return "bottom"
	case Top:
		return "top"
	case Corner:
		return "corner"
	default:
		return "unknown"
	}
}

// Edge normals pointing back into the area.
var (
	normalLeft   = math.Vec2{X: 1, Y: 0}
	normalRight  = math.Vec2{X: -1, Y: 0}
	normalBottom = math.Vec2{X: 0, Y: 1}
	normalTop    = math.Vec2{X: 0, Y: -1}
)

// Body is anything with a center that moves by a velocity.
type Body interface {
	Center() math.Vec2
	Velocity() math.Vec2
	SetVelocity(v math.Vec2)
	Move(offset math.Vec2)
}

// Classify reports where p lies relative to b.
func (b Bounds) Classify(p math.Vec2) Region {
	outX := p.X < 0 || p.X >= b.Width
	outY := p.Y < 0 || p.Y >= b.Height
	switch {
	case outX && outY:
		return Corner
	case outX && p.X < 0:
		return Left
	case outX:
		return Right
	case p.Y < 0:
		return Bottom
	case outY:
		return Top
	default:
		return Inside
	}
}

// Bounce returns the velocity after leaving through region r.
// In a corner both components flip; on an edge the velocity is reflected
// about the edge normal.
func Bounce(v math.Vec2, r Region) math.Vec2 {
	switch r {
	case Corner:
		return v.Neg()
	case Left:
		return v.Reflect(normalLeft)
	case Right:
		return v.Reflect(normalRight)
	case Bottom:
		return v.Reflect(normalBottom)
	case Top:
		return v.Reflect(normalTop)
	default:
		return v
	}
}

// Step moves body by its velocity. When the new center is outside b the
// velocity is bounced; the body is not pushed back inside, so it returns on
// the next step. The region of the new center is returned.
func Step(body Body, b Bounds) Region {
	body.Move(body.Velocity())
	r := b.Classify(body.Center())
	if r != Inside {
		body.SetVelocity(Bounce(body.Velocity(), r))
	}
	return r
}

// StepAll advances every body one step.
func StepAll[T Body](bodies []T, b Bounds) {
	for _, body := range bodies {
		Step(body, b)
	}
}

// RandomVelocity returns a vector whose length is a whole number in
// [0, maxLength) pointing in a whole-degree direction.
func RandomVelocity(rng *rand.Rand, maxLength int) math.Vec2 {
	if maxLength <= 0 {
		return math.Vec2{}
	}
	length := float32(rng.IntN(maxLength))
	angle := float32(rng.IntN(360))
	return math.Vec2{X: length}.Rotate(angle)
}
