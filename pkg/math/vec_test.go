package math

import (
	"testing"
)

func near(a, b float32) bool {
	return abs(a-b) < 1e-4
}

func nearVec2(a, b Vec2) bool {
	return near(a.X, b.X) && near(a.Y, b.Y)
}

func TestVec2Add(t *testing.T) {
	got := Vec2{1, 2}.Add(Vec2{3, 4})
	want := Vec2{4, 6}
	if got != want {
		t.Errorf("Vec2.Add() = %v, want %v", got, want)
	}
}

func TestVec2Length(t *testing.T) {
	got := Vec2{3, 4}.Length()
	if got != 5 {
		t.Errorf("Vec2.Length() = %v, want 5", got)
	}
}

func TestVec2Normalize(t *testing.T) {
	for _, v := range []Vec2{{3, 4}, {-0.001, 0.002}, {1e4, -3e3}} {
		if l := v.Normalize().Length(); !near(l, 1) {
			t.Errorf("Vec2%v.Normalize().Length() = %v, want ~1", v, l)
		}
	}
}

func TestVec2Rotate(t *testing.T) {
	tests := []struct {
		v     Vec2
		angle float32
		want  Vec2
	}{
		{Vec2{1, 0}, 90, Vec2{0, 1}},
		{Vec2{1, 0}, 180, Vec2{-1, 0}},
		{Vec2{0, 2}, -90, Vec2{2, 0}},
		{Vec2{3, 4}, 360, Vec2{3, 4}},
	}
	for _, tt := range tests {
		if got := tt.v.Rotate(tt.angle); !nearVec2(got, tt.want) {
			t.Errorf("%v.Rotate(%v) = %v, want %v", tt.v, tt.angle, got, tt.want)
		}
	}
}

func TestVec2RotateAround(t *testing.T) {
	center := Vec2{10, 10}
	got := Vec2{11, 10}.RotateAround(90, center)
	if !nearVec2(got, Vec2{10, 11}) {
		t.Errorf("RotateAround = %v, want (10, 11)", got)
	}

	// The center is a fixed point.
	if got := center.RotateAround(37, center); !nearVec2(got, center) {
		t.Errorf("center moved to %v", got)
	}
}

func TestVec2Perpendiculars(t *testing.T) {
	v := Vec2{2, 5}
	if got := v.LeftPerpendicular(); got != (Vec2{-5, 2}) {
		t.Errorf("LeftPerpendicular = %v", got)
	}
	if got := v.RightPerpendicular(); got != (Vec2{5, -2}) {
		t.Errorf("RightPerpendicular = %v", got)
	}
	if v.Dot(v.LeftPerpendicular()) != 0 {
		t.Error("left perpendicular is not orthogonal")
	}
}

func TestVec2Reflect(t *testing.T) {
	tests := []struct {
		v, n, want Vec2
	}{
		{Vec2{-3, 2}, Vec2{1, 0}, Vec2{3, 2}},
		{Vec2{3, 2}, Vec2{-1, 0}, Vec2{-3, 2}},
		{Vec2{3, -2}, Vec2{0, 1}, Vec2{3, 2}},
		{Vec2{3, 2}, Vec2{0, -1}, Vec2{3, -2}},
		// non-unit normal
		{Vec2{-3, 2}, Vec2{5, 0}, Vec2{3, 2}},
	}
	for _, tt := range tests {
		if got := tt.v.Reflect(tt.n); !nearVec2(got, tt.want) {
			t.Errorf("%v.Reflect(%v) = %v, want %v", tt.v, tt.n, got, tt.want)
		}
	}
}

func TestVec2DoubleReflection(t *testing.T) {
	v := Vec2{7, -3}
	for _, n := range []Vec2{{1, 0}, {0, -1}, {1, 1}, {-2, 3}} {
		if got := v.Reflect(n).Reflect(n); !nearVec2(got, v) {
			t.Errorf("double reflection about %v = %v, want %v", n, got, v)
		}
	}
}

func TestVec2Angle(t *testing.T) {
	if got := (Vec2{1, 0}).Angle(Vec2{0, 3}); !near(got, 90) {
		t.Errorf("Angle = %v, want 90", got)
	}
	if got := (Vec2{1, 0}).Angle(Vec2{-4, 0}); !near(got, 180) {
		t.Errorf("Angle of opposite vectors = %v, want 180", got)
	}
}

func TestVec2Projection(t *testing.T) {
	if got := (Vec2{3, 4}).Projection(Vec2{2, 0}); got != 1.5 {
		t.Errorf("Projection = %v, want 1.5", got)
	}
}

func TestVec3Cross(t *testing.T) {
	got := Direction(1, 0, 0).Cross(Direction(0, 1, 0))
	want := Direction(0, 0, 1)
	if got != want {
		t.Errorf("Vec3.Cross() = %v, want %v", got, want)
	}
}

func TestVec3CrossIsDirection(t *testing.T) {
	got := Point(1, 2, 3).Cross(Point(4, 5, 6))
	if !got.IsDirection() {
		t.Errorf("Cross of points should be a direction, got W=%v", got.W)
	}
}

func TestVec3Weights(t *testing.T) {
	p := Point(1, 2, 3)
	q := Point(4, 6, 8)
	d := Direction(1, 1, 1)

	if !q.Sub(p).IsDirection() {
		t.Error("point - point should be a direction")
	}
	if !p.Add(d).IsPoint() {
		t.Error("point + direction should be a point")
	}
	if !d.Add(d).IsDirection() {
		t.Error("direction + direction should be a direction")
	}
	if sum := p.Add(q); sum.Valid() {
		t.Errorf("point + point should not be valid, got W=%v", sum.W)
	}
	if got := p.Mul(d); got.W != WPoint {
		t.Errorf("Mul should keep the larger weight, got %v", got.W)
	}
	if got := p.Scale(3); !got.IsPoint() {
		t.Error("Scale should keep the weight")
	}
}

func TestVec3Normalize(t *testing.T) {
	n := Point(3, 4, 12).Normalize()
	if !near(n.Length(), 1) {
		t.Errorf("Length = %v, want 1", n.Length())
	}
	if !n.IsDirection() {
		t.Errorf("Normalize should return a direction, got W=%v", n.W)
	}
}

func TestVec3Angle(t *testing.T) {
	if got := Direction(1, 0, 0).Angle(Direction(0, 0, 7)); !near(got, 90) {
		t.Errorf("Angle = %v, want 90", got)
	}
}

func TestDegRad(t *testing.T) {
	if !near(RadToDeg(DegToRad(123)), 123) {
		t.Error("RadToDeg(DegToRad(x)) != x")
	}
}
