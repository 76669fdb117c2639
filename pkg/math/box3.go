package math

import "math"

// Box3 is an axis-aligned bounding box.
// The zero value is a degenerate box at the origin; use EmptyBox to start accumulating points.
type Box3 struct {
	Min, Max Vec3
}

// EmptyBox returns an inverted box that any ExpandByPoint will replace.
func EmptyBox() Box3 {
	inf := float32(math.Inf(1))
	return Box3{
		Min: Vec3{inf, inf, inf},
		Max: Vec3{-inf, -inf, -inf},
	}
}

// IsEmpty reports whether the box contains no points.
func (b Box3) IsEmpty() bool {
	return b.Max.X < b.Min.X || b.Max.Y < b.Min.Y || b.Max.Z < b.Min.Z
}

// ExpandByPoint returns the smallest box containing b and p.
func (b Box3) ExpandByPoint(p Vec3) Box3 {
	return Box3{Min: b.Min.Min(p), Max: b.Max.Max(p)}
}

// Center returns the box midpoint. Empty boxes report the origin.
func (b Box3) Center() Vec3 {
	if b.IsEmpty() {
		return Vec3{}
	}
	return b.Min.Add(b.Max).Scale(0.5)
}

// Size returns the box extent on each axis. Empty boxes report zero.
func (b Box3) Size() Vec3 {
	if b.IsEmpty() {
		return Vec3{}
	}
	return b.Max.Sub(b.Min)
}

// MaxExtent returns the largest of the three axis extents.
func (b Box3) MaxExtent() float32 {
	s := b.Size()
	return max(s.X, s.Y, s.Z)
}

// Translate returns the box moved by offset.
func (b Box3) Translate(offset Vec3) Box3 {
	if b.IsEmpty() {
		return b
	}
	return Box3{Min: b.Min.Add(offset), Max: b.Max.Add(offset)}
}
