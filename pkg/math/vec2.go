// Package math provides math types and functions for scene and figure geometry.
package math

import "github.com/chewxy/math32"

// Vec2 is a 2D vector.
type Vec2 struct {
	X, Y float32
}

// Add returns v + other.
func (v Vec2) Add(other Vec2) Vec2 {
	return Vec2{v.X + other.X, v.Y + other.Y}
}

// Sub returns v - other.
func (v Vec2) Sub(other Vec2) Vec2 {
	return Vec2{v.X - other.X, v.Y - other.Y}
}

// Neg returns -v.
func (v Vec2) Neg() Vec2 {
	return Vec2{-v.X, -v.Y}
}

// Scale returns v * scalar.
func (v Vec2) Scale(s float32) Vec2 {
	return Vec2{v.X * s, v.Y * s}
}

// Div returns v / scalar.
func (v Vec2) Div(s float32) Vec2 {
	return Vec2{v.X / s, v.Y / s}
}

// Dot returns the dot product.
func (v Vec2) Dot(other Vec2) float32 {
	return v.X*other.X + v.Y*other.Y
}

// Length returns the magnitude.
func (v Vec2) Length() float32 {
	return math32.Sqrt(v.LengthSquared())
}

// LengthSquared returns the squared magnitude.
func (v Vec2) LengthSquared() float32 {
	return v.X*v.X + v.Y*v.Y
}

// Normalize returns a unit vector.
// A zero vector yields NaN components; callers must not normalize it.
func (v Vec2) Normalize() Vec2 {
	l := v.Length()
	return Vec2{v.X / l, v.Y / l}
}

// Distance returns the distance to another point.
func (v Vec2) Distance(other Vec2) float32 {
	return v.Sub(other).Length()
}

// DistanceSquared returns the squared distance to another point.
func (v Vec2) DistanceSquared(other Vec2) float32 {
	return v.Sub(other).LengthSquared()
}

// Angle returns the angle between v and other in degrees.
// Both vectors must be non-zero.
func (v Vec2) Angle(other Vec2) float32 {
	return RadToDeg(math32.Acos(v.Dot(other) / (v.Length() * other.Length())))
}

// Rotate returns v rotated counter-clockwise by angle degrees around the origin.
func (v Vec2) Rotate(angle float32) Vec2 {
	s, c := math32.Sincos(DegToRad(angle))
	return Vec2{v.X*c - v.Y*s, v.X*s + v.Y*c}
}

// RotateAround returns v rotated counter-clockwise by angle degrees around center.
func (v Vec2) RotateAround(angle float32, center Vec2) Vec2 {
	s, c := math32.Sincos(DegToRad(angle))
	dx := (1-c)*center.X + s*center.Y
	dy := (1-c)*center.Y - s*center.X
	return Vec2{v.X*c - v.Y*s + dx, v.X*s + v.Y*c + dy}
}

// LeftPerpendicular returns v rotated 90 degrees counter-clockwise.
func (v Vec2) LeftPerpendicular() Vec2 {
	return Vec2{-v.Y, v.X}
}

// RightPerpendicular returns v rotated 90 degrees clockwise.
func (v Vec2) RightPerpendicular() Vec2 {
	return Vec2{v.Y, -v.X}
}

// Projection returns the scalar projection factor of v onto n (v·n / n·n).
func (v Vec2) Projection(n Vec2) float32 {
	return v.Dot(n) / n.Dot(n)
}

// Reflect mirrors v across the line whose normal is n: v - 2(v·n/n·n)n.
// n does not need to be unit length.
func (v Vec2) Reflect(n Vec2) Vec2 {
	return v.Sub(n.Scale(2 * v.Projection(n)))
}
