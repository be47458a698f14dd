package math

import (
	"math"
	"testing"
)

func TestQuatIdentity(t *testing.T) {
	q := QuatIdentity()
	if q.X != 0 || q.Y != 0 || q.Z != 0 || q.W != 1 {
		t.Errorf("Identity quaternion should be (0,0,0,1), got (%v,%v,%v,%v)", q.X, q.Y, q.Z, q.W)
	}
}

func TestQuatNormalize(t *testing.T) {
	n := Quat{X: 1, Y: 2, Z: 3, W: 4}.Normalize()

	if l := float32(math.Sqrt(float64(n.Dot(n)))); abs(l-1) > 0.0001 {
		t.Errorf("Normalized quaternion length should be 1, got %v", l)
	}
}

func TestQuatToMat4(t *testing.T) {
	m := QuatIdentity().ToMat4()

	identity := Identity()
	for i := 0; i < 16; i++ {
		if abs(m[i]-identity[i]) > 0.0001 {
			t.Errorf("Identity quat should produce identity matrix, element %d: got %v, want %v", i, m[i], identity[i])
		}
	}
}

func TestQuatFromAxisAngle(t *testing.T) {
	// 90 degrees around Y, axis not unit length
	q := QuatFromAxisAngle(Direction(0, 5, 0), math.Pi/2)

	wantW := float32(math.Cos(math.Pi / 4))
	wantY := float32(math.Sin(math.Pi / 4))

	if abs(q.W-wantW) > 0.001 {
		t.Errorf("QuatFromAxisAngle W: expected %v, got %v", wantW, q.W)
	}
	if abs(q.Y-wantY) > 0.001 {
		t.Errorf("QuatFromAxisAngle Y: expected %v, got %v", wantY, q.Y)
	}
}

func TestQuatRotateVec3MatchesMatrix(t *testing.T) {
	axis := Direction(0, 1, 0)
	angle := float32(0.8)
	v := Direction(-100, -100, -100)

	got := QuatFromAxisAngle(axis, angle).RotateVec3(v)
	want := RotateY(angle).TransformDirection(v)

	if abs(got.X-want.X) > 1e-3 || abs(got.Y-want.Y) > 1e-3 || abs(got.Z-want.Z) > 1e-3 {
		t.Errorf("RotateVec3 = %v, want %v", got, want)
	}
	if !got.IsDirection() {
		t.Errorf("RotateVec3 should keep the weight, got W=%v", got.W)
	}
}

func TestQuatConjugateUndoesRotation(t *testing.T) {
	q := QuatFromAxisAngle(Direction(1, 2, 3), 1.3)
	v := Direction(4, -5, 6)

	back := q.Conjugate().RotateVec3(q.RotateVec3(v))
	if back.Distance(v) > 1e-3 {
		t.Errorf("q* (q v) = %v, want %v", back, v)
	}
}
