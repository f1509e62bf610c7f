package math

import "testing"

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

func TestVec3Cross(t *testing.T) {
	got := Vec3{1, 0, 0}.Cross(Vec3{0, 1, 0})
	want := Vec3{0, 0, 1}
	if got != want {
		t.Errorf("Vec3.Cross() = %v, want %v", got, want)
	}
}

func TestVec3Normalize(t *testing.T) {
	n := Vec3{3, 4, 12}.Normalize()
	l := n.Length()
	if l < 0.999 || l > 1.001 {
		t.Errorf("Vec3.Normalize().Length() = %v, want ~1", l)
	}
	if (Vec3{}).Normalize() != (Vec3{}) {
		t.Error("Vec3.Normalize() of zero vector should be zero")
	}
}

func TestVec3ArrayRoundTrip(t *testing.T) {
	v := Vec3{1, -2, 3}
	if V3(v.Array()) != v {
		t.Errorf("V3(Array()) = %v, want %v", V3(v.Array()), v)
	}
	if v.XZ() != (Vec2{1, 3}) {
		t.Errorf("XZ() = %v, want {1 3}", v.XZ())
	}
}
