package facade

import "github.com/Faultbox/facade/pkg/math"

// Layout places count*count positions on a square grid in the XZ plane at height y,
// centred on the origin, spacing apart. Rows run along Z, columns along X.
func Layout(count int, spacing, y float32) []math.Vec3 {
	if count <= 0 {
		return nil
	}

	half := float32(count-1) / 2
	out := make([]math.Vec3, 0, count*count)
	for row := 0; row < count; row++ {
		for col := 0; col < count; col++ {
			out = append(out, math.Vec3{
				X: (float32(col) - half) * spacing,
				Y: y,
				Z: (float32(row) - half) * spacing,
			})
		}
	}
	return out
}

// GridBounds returns the box spanned by placements, grown by margin on X and Z.
func GridBounds(placements []math.Vec3, margin float32) math.Box3 {
	b := math.EmptyBox()
	for _, p := range placements {
		b = b.ExpandByPoint(p)
	}
	if b.IsEmpty() {
		return b
	}
	b.Min.X -= margin
	b.Min.Z -= margin
	b.Max.X += margin
	b.Max.Z += margin
	return b
}
