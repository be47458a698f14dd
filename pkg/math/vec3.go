package math

import "github.com/chewxy/math32"

// Homogeneous weights of a Vec3.
const (
	WDirection float32 = 0
	WPoint     float32 = 1
)

// wTolerance absorbs rounding in weights produced by matrix products.
const wTolerance = 0.01

// Vec3 is a 3D vector with a homogeneous weight W.
// W is 0 for directions and 1 for points. Add and Sub combine weights
// affinely, so point-point is a direction and point+direction is a point.
// Adding two points produces W=2, which the type does not prevent; Valid
// reports it.
type Vec3 struct {
	X, Y, Z, W float32
}

// Point returns a Vec3 with point weight.
func Point(x, y, z float32) Vec3 {
	return Vec3{x, y, z, WPoint}
}

// Direction returns a Vec3 with direction weight.
func Direction(x, y, z float32) Vec3 {
	return Vec3{x, y, z, WDirection}
}

// IsPoint reports whether v carries point weight.
func (v Vec3) IsPoint() bool {
	return math32.Abs(v.W-WPoint) <= wTolerance
}

// IsDirection reports whether v carries direction weight.
func (v Vec3) IsDirection() bool {
	return math32.Abs(v.W-WDirection) <= wTolerance
}

// Valid reports whether v is either a point or a direction.
func (v Vec3) Valid() bool {
	return v.IsPoint() || v.IsDirection()
}

// Add returns v + other. Weights add.
func (v Vec3) Add(other Vec3) Vec3 {
	return Vec3{v.X + other.X, v.Y + other.Y, v.Z + other.Z, v.W + other.W}
}

// Sub returns v - other. Weights subtract.
func (v Vec3) Sub(other Vec3) Vec3 {
	return Vec3{v.X - other.X, v.Y - other.Y, v.Z - other.Z, v.W - other.W}
}

// Mul returns the componentwise product, keeping the larger weight.
func (v Vec3) Mul(other Vec3) Vec3 {
	return Vec3{v.X * other.X, v.Y * other.Y, v.Z * other.Z, max(v.W, other.W)}
}

// Div returns the componentwise quotient, keeping the larger weight.
func (v Vec3) Div(other Vec3) Vec3 {
	return Vec3{v.X / other.X, v.Y / other.Y, v.Z / other.Z, max(v.W, other.W)}
}

// Neg returns -v with the same weight.
func (v Vec3) Neg() Vec3 {
	return Vec3{-v.X, -v.Y, -v.Z, v.W}
}

// Scale returns v * scalar with the same weight.
func (v Vec3) Scale(s float32) Vec3 {
	return Vec3{v.X * s, v.Y * s, v.Z * s, v.W}
}

// Dot returns the dot product of the xyz components.
func (v Vec3) Dot(other Vec3) float32 {
	return v.X*other.X + v.Y*other.Y + v.Z*other.Z
}

// Cross returns the cross product as a direction.
func (v Vec3) Cross(other Vec3) Vec3 {
	return Vec3{
		v.Y*other.Z - v.Z*other.Y,
		v.Z*other.X - v.X*other.Z,
		v.X*other.Y - v.Y*other.X,
		WDirection,
	}
}

// Length returns the magnitude of the xyz components.
func (v Vec3) Length() float32 {
	return math32.Sqrt(v.LengthSquared())
}

// LengthSquared returns the squared magnitude.
func (v Vec3) LengthSquared() float32 {
	return v.X*v.X + v.Y*v.Y + v.Z*v.Z
}

// Normalize returns a unit direction.
// A zero vector yields NaN components; callers must not normalize it.
func (v Vec3) Normalize() Vec3 {
	l := v.Length()
	return Vec3{v.X / l, v.Y / l, v.Z / l, WDirection}
}

// Distance returns the distance to another point.
func (v Vec3) Distance(other Vec3) float32 {
	return v.Sub(other).Length()
}

// Angle returns the angle between v and other in degrees.
func (v Vec3) Angle(other Vec3) float32 {
	return RadToDeg(math32.Acos(v.Dot(other) / (v.Length() * other.Length())))
}

// XYZ returns the components as an array, the layout GL buffers expect.
func (v Vec3) XYZ() [3]float32 {
	return [3]float32{v.X, v.Y, v.Z}
}

// DegToRad converts degrees to radians.
func DegToRad(deg float32) float32 {
	return deg * math32.Pi / 180
}

// RadToDeg converts radians to degrees.
func RadToDeg(rad float32) float32 {
	return rad * 180 / math32.Pi
}
