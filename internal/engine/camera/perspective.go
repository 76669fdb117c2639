package camera

import (
	gomath "math"

	"github.com/Faultbox/facade/pkg/math"
)

// Perspective is a look-at camera with a symmetric perspective frustum.
type Perspective struct {
	FovY     float32 // Full vertical field of view, radians
	Aspect   float32
	Near     float32
	Far      float32
	Position math.Vec3
	Target   math.Vec3
	Up       math.Vec3
}

// NewPerspective creates a camera at the origin looking down -Z.
func NewPerspective(fovY, aspect, near, far float32) *Perspective {
	return &Perspective{
		FovY:   fovY,
		Aspect: aspect,
		Near:   near,
		Far:    far,
		Target: math.Vec3{Z: -1},
		Up:     math.Vec3{Y: 1},
	}
}

// ViewMatrix returns the world-to-view transform.
func (p *Perspective) ViewMatrix() math.Mat4 {
	return math.LookAt(p.Position, p.Target, p.Up)
}

// ProjectionMatrix returns the view-to-clip transform.
func (p *Perspective) ProjectionMatrix() math.Mat4 {
	return math.Perspective(p.FovY, p.Aspect, p.Near, p.Far)
}

// ViewProjection returns projection * view.
func (p *Perspective) ViewProjection() math.Mat4 {
	return p.ProjectionMatrix().Mul(p.ViewMatrix())
}

// VisibleHeight is the world-space height the frustum spans at the given distance from the eye.
func (p *Perspective) VisibleHeight(distance float32) float32 {
	return 2 * distance * float32(gomath.Tan(float64(p.FovY)/2))
}

// FramingDistance returns how far a camera with vertical field of view fovY (radians)
// must stand from an object of the given size so the object exactly fills the view:
// (size/2) / tan(fov/2). Non-positive sizes and FOVs outside (0, pi) give 0.
func FramingDistance(size, fovY float32) float32 {
	if size <= 0 || fovY <= 0 || fovY >= gomath.Pi {
		return 0
	}
	return (size / 2) / float32(gomath.Tan(float64(fovY)/2))
}

// Frame builds a camera that looks at the box along -Z with the box's largest extent,
// scaled by padding, filling the view at the box's front face.
// The near and far planes are fitted around the box so depth precision is spent on it.
func Frame(b math.Box3, fovY, aspect, padding float32) *Perspective {
	if padding <= 0 {
		padding = 1
	}
	size := b.MaxExtent() * padding
	if aspect < 1 && aspect > 0 {
		// Width is the tighter bound on narrow targets
		size /= aspect
	}

	center := b.Center()
	halfDepth := b.Size().Z / 2
	dist := FramingDistance(size, fovY) + halfDepth

	radius := b.Size().Length() / 2
	near := max(dist-radius, dist*0.01, 0.001)
	far := dist + radius + 0.001

	cam := NewPerspective(fovY, aspect, near, far)
	cam.Position = center.Add(math.Vec3{Z: dist})
	cam.Target = center
	return cam
}

// BillboardAxes extracts the world-space right and up vectors a camera-facing quad
// must span. With upright set the quad only turns around the world Y axis, which
// keeps tall objects standing on the ground when the camera looks down on them.
func BillboardAxes(view math.Mat4, upright bool) (right, up math.Vec3) {
	right = view.Row(0)
	up = view.Row(1)
	if upright {
		right = math.Vec3{X: right.X, Z: right.Z}.Normalize()
		up = math.Vec3{Y: 1}
	}
	return right, up
}
