package math

import (
	"testing"
)

func TestVec3Cross(t *testing.T) {
	x := Vec3{1, 0, 0}
	y := Vec3{0, 1, 0}
	got := x.Cross(y)
	want := Vec3{0, 0, 1}
	if got != want {
		t.Errorf("Vec3.Cross() = %v, want %v", got, want)
	}
}

func TestVec3Normalize(t *testing.T) {
	n := Vec3{3, 4, 0}.Normalize()
	l := n.Length()
	if l < 0.999 || l > 1.001 {
		t.Errorf("Vec3.Normalize().Length() = %v, want ~1", l)
	}
	if z := (Vec3{}).Normalize(); z != (Vec3{}) {
		t.Errorf("zero vector normalized to %v", z)
	}
}

func TestVec3MinMax(t *testing.T) {
	a := Vec3{1, 5, -2}
	b := Vec3{3, -1, 0}
	if got := a.Min(b); got != (Vec3{1, -1, -2}) {
		t.Errorf("Min() = %v", got)
	}
	if got := a.Max(b); got != (Vec3{3, 5, 0}) {
		t.Errorf("Max() = %v", got)
	}
}

func TestBox3(t *testing.T) {
	b := EmptyBox()
	if !b.IsEmpty() {
		t.Fatal("EmptyBox should be empty")
	}
	if b.MaxExtent() != 0 {
		t.Errorf("empty box extent = %v, want 0", b.MaxExtent())
	}

	b = b.ExpandByPoint(Vec3{-1, 0, -2})
	b = b.ExpandByPoint(Vec3{3, 2, 2})
	if b.IsEmpty() {
		t.Fatal("box with points should not be empty")
	}
	if c := b.Center(); c != (Vec3{1, 1, 0}) {
		t.Errorf("Center() = %v, want (1, 1, 0)", c)
	}
	if s := b.Size(); s != (Vec3{4, 2, 4}) {
		t.Errorf("Size() = %v, want (4, 2, 4)", s)
	}
	if e := b.MaxExtent(); e != 4 {
		t.Errorf("MaxExtent() = %v, want 4", e)
	}

	moved := b.Translate(Vec3{0, 10, 0})
	if moved.Min.Y != 10 || moved.Max.Y != 12 {
		t.Errorf("Translate() = %v", moved)
	}
}
