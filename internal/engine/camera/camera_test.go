package camera

import (
	gomath "math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Faultbox/facade/pkg/math"
)

func TestFramingDistance(t *testing.T) {
	// 90 degree FOV: tan(45) = 1, so distance is half the size
	assert.InDelta(t, 5.0, FramingDistance(10, gomath.Pi/2), 1e-5)

	// 60 degree FOV: (2/2) / tan(30)
	assert.InDelta(t, 1/gomath.Tan(gomath.Pi/6), FramingDistance(2, gomath.Pi/3), 1e-5)

	assert.Zero(t, FramingDistance(0, 1))
	assert.Zero(t, FramingDistance(-3, 1))
	assert.Zero(t, FramingDistance(1, 0))
	assert.Zero(t, FramingDistance(1, gomath.Pi))
}

func TestFramingDistanceFillsView(t *testing.T) {
	fov := float32(45 * gomath.Pi / 180)
	size := float32(3.2)
	d := FramingDistance(size, fov)

	cam := NewPerspective(fov, 1, 0.1, 100)
	assert.InDelta(t, size, cam.VisibleHeight(d), 1e-4)
}

func TestFrameCentresBox(t *testing.T) {
	b := math.Box3{Min: math.Vec3{X: -1, Y: 0, Z: -0.5}, Max: math.Vec3{X: 1, Y: 4, Z: 0.5}}
	fov := float32(gomath.Pi / 2)
	cam := Frame(b, fov, 1, 1)

	assert.Equal(t, b.Center(), cam.Target)
	assert.Equal(t, b.Center().X, cam.Position.X)
	assert.Equal(t, b.Center().Y, cam.Position.Y)

	// Front face (z = 0.5) sits exactly at the framing distance for the tallest side
	assert.InDelta(t, 0.5+2.0, cam.Position.Z, 1e-5)

	// The box lies between the clip planes
	front := cam.Position.Z - b.Max.Z
	back := cam.Position.Z - b.Min.Z
	assert.Less(t, cam.Near, front)
	assert.Greater(t, cam.Far, back)

	// Every corner projects inside the unit clip square
	vp := cam.ViewProjection()
	for _, x := range []float32{b.Min.X, b.Max.X} {
		for _, y := range []float32{b.Min.Y, b.Max.Y} {
			for _, z := range []float32{b.Min.Z, b.Max.Z} {
				p := vp.TransformVec3(math.Vec3{X: x, Y: y, Z: z})
				require.LessOrEqual(t, abs(p.X), float32(1.0001), "corner %v %v %v", x, y, z)
				require.LessOrEqual(t, abs(p.Y), float32(1.0001), "corner %v %v %v", x, y, z)
			}
		}
	}
}

func TestFramePaddingAndAspect(t *testing.T) {
	b := math.Box3{Max: math.Vec3{X: 2, Y: 2, Z: 0}}
	fov := float32(gomath.Pi / 2)

	tight := Frame(b, fov, 1, 1)
	padded := Frame(b, fov, 1, 1.5)
	narrow := Frame(b, fov, 0.5, 1)

	assert.Greater(t, padded.Position.Z, tight.Position.Z)
	assert.InDelta(t, 2*tight.Position.Z, narrow.Position.Z, 1e-5)
}

func TestBillboardAxes(t *testing.T) {
	// Looking down at the origin from above and behind
	view := math.LookAt(math.Vec3{Y: 10, Z: 10}, math.Vec3{}, math.Vec3{Y: 1})

	right, up := BillboardAxes(view, false)
	assert.InDelta(t, 1.0, right.X, 1e-5)
	assert.InDelta(t, 0.0, right.Dot(up), 1e-5)
	assert.Less(t, up.Z, float32(0), "spherical billboards lean away from a camera above them")

	right, up = BillboardAxes(view, true)
	assert.Equal(t, math.Vec3{Y: 1}, up)
	assert.InDelta(t, 1.0, right.Length(), 1e-5)
	assert.Zero(t, right.Y)
}

func TestOrbitCamera(t *testing.T) {
	c := NewOrbitCamera()
	c.Pitch = 0
	c.Yaw = 0
	c.Distance = 10

	assert.Equal(t, math.Vec3{Z: 10}, c.Position())

	c.HandleDrag(0, 1e6)
	assert.Equal(t, c.MaxPitch, c.Pitch)

	c.HandleZoom(100)
	assert.Equal(t, c.MinDistance, c.Distance)

	c.FitToBounds(math.Box3{Min: math.Vec3{X: 10}, Max: math.Vec3{X: 30, Y: 20}}, gomath.Pi/2)
	assert.Equal(t, math.Vec3{X: 20, Y: 10}, c.Center)
	assert.InDelta(t, FramingDistance(float32(gomath.Sqrt(800)), gomath.Pi/2), c.Distance, 1e-4)
}

func abs(x float32) float32 {
	if x < 0 {
		return -x
	}
	return x
}
