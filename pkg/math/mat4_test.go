package math

import (
	"math"
	"testing"
)

func TestIdentity(t *testing.T) {
	m := Identity()
	// Diagonal should be 1
	if m[0] != 1 || m[5] != 1 || m[10] != 1 || m[15] != 1 {
		t.Error("Identity diagonal should be 1")
	}
	// Off-diagonal should be 0
	if m[1] != 0 || m[4] != 0 {
		t.Error("Identity off-diagonal should be 0")
	}
}

func TestMulIdentity(t *testing.T) {
	m := Translate(1, 2, 3)
	result := m.Mul(Identity())

	for i := 0; i < 16; i++ {
		if result[i] != m[i] {
			t.Errorf("M * I should equal M, element %d: got %f, want %f", i, result[i], m[i])
		}
	}
}

func TestTranslateThenScale(t *testing.T) {
	// Scale first, then translate (applied right to left)
	m := Translate(10, 0, 0).Mul(Scale(2, 2, 2))
	got := m.TransformVec3(Vec3{1, 1, 1})

	want := Vec3{12, 2, 2}
	if got != want {
		t.Errorf("TransformVec3: got %v, want %v", got, want)
	}
}

func TestRotateY90(t *testing.T) {
	m := RotateY(float32(math.Pi / 2))
	got := m.TransformVec3(Vec3{1, 0, 0})

	// (1,0,0) rotated 90 degrees around Y lands on (0,0,-1)
	if abs(got.X) > 0.001 || abs(got.Y) > 0.001 || abs(got.Z+1) > 0.001 {
		t.Errorf("RotateY 90: got %v, want (0, 0, -1)", got)
	}
}

func TestPerspective(t *testing.T) {
	m := Perspective(float32(math.Pi/2), 1, 0.1, 100)

	if m[15] != 0 {
		t.Errorf("Perspective [15] should be 0, got %f", m[15])
	}
	if m[11] != -1 {
		t.Errorf("Perspective [11] should be -1, got %f", m[11])
	}

	// With a 90 degree FOV a point one unit ahead and half a unit right lands at x=0.5.
	got := m.TransformVec3(Vec3{0.5, 0, -1})
	if abs(got.X-0.5) > 0.0001 {
		t.Errorf("projected x: got %f, want 0.5", got.X)
	}
}

func TestLookAt(t *testing.T) {
	m := LookAt(Vec3{0, 0, 5}, Vec3{}, Vec3{0, 1, 0})

	got := m.TransformVec3(Vec3{})
	if got != (Vec3{0, 0, -5}) {
		t.Errorf("origin in view space: got %v, want (0, 0, -5)", got)
	}
	if r := m.Row(0); r != (Vec3{1, 0, 0}) {
		t.Errorf("right axis: got %v", r)
	}
	if u := m.Row(1); u != (Vec3{0, 1, 0}) {
		t.Errorf("up axis: got %v", u)
	}
}

func abs(x float32) float32 {
	if x < 0 {
		return -x
	}
	return x
}
