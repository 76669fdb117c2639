// Package facade bakes an object into a transparent texture once and describes
// where and how large the camera-facing quads that replace it must be drawn.
package facade

import (
	"errors"
	"fmt"
	"image"
	gomath "math"

	"github.com/go-gl/gl/v4.1-core/gl"
	"go.uber.org/zap"

	"github.com/Faultbox/facade/internal/engine/camera"
	"github.com/Faultbox/facade/internal/engine/framebuffer"
	"github.com/Faultbox/facade/internal/engine/scene"
	"github.com/Faultbox/facade/internal/logger"
	"github.com/Faultbox/facade/pkg/math"
)

// ErrEmptyBounds is returned when the object to bake has no extent.
var ErrEmptyBounds = errors.New("facade: object bounds are empty")

// Drawable renders an object in its own model space with the given view-projection.
type Drawable interface {
	Draw(viewProj math.Mat4)
}

// DrawFunc adapts a function to Drawable.
type DrawFunc func(viewProj math.Mat4)

// Draw calls f(viewProj).
func (f DrawFunc) Draw(viewProj math.Mat4) { f(viewProj) }

// Options control the bake.
type Options struct {
	TextureSize int32      // Edge of the square render target in pixels
	FovY        float32    // Bake camera vertical FOV, radians
	Padding     float32    // Multiplier on the object's largest extent, >= 1
	Background  [4]float32 // Clear colour; alpha 0 keeps the background transparent
	Mipmaps     bool       // Build a mip chain for distant, minified sprites
	Capture     bool       // Keep a CPU copy of the texture in Facade.Image
}

// DefaultOptions returns a 512px bake with a 45 degree camera and 10% padding.
func DefaultOptions() Options {
	return Options{
		TextureSize: 512,
		FovY:        45 * gomath.Pi / 180,
		Padding:     1.1,
		Mipmaps:     true,
	}
}

func (o Options) validate() error {
	if o.TextureSize < 1 {
		return fmt.Errorf("facade: texture size must be positive, got %d", o.TextureSize)
	}
	if o.FovY <= 0 || o.FovY >= gomath.Pi {
		return fmt.Errorf("facade: fov must be in (0, pi), got %g", o.FovY)
	}
	if o.Padding < 1 {
		return fmt.Errorf("facade: padding must be at least 1, got %g", o.Padding)
	}
	return nil
}

// Plan is the camera setup of a bake and the quad that reproduces it.
type Plan struct {
	Camera *camera.Perspective

	// Center is the bounds centre in object space; the quad is centred here.
	Center math.Vec3

	// QuadSize is the world-space edge of the square quad. It equals the height the
	// bake frustum spans at the object's centre, so the sprite matches the object's size.
	QuadSize float32
}

// NewPlan frames bounds for a square bake with opts.
func NewPlan(bounds math.Box3, opts Options) Plan {
	cam := camera.Frame(bounds, opts.FovY, 1, opts.Padding)
	center := bounds.Center()
	return Plan{
		Camera:   cam,
		Center:   center,
		QuadSize: cam.VisibleHeight(cam.Position.Sub(center).Length()),
	}
}

// Facade is a baked object: a texture and the quad size that reproduces it.
type Facade struct {
	Texture     uint32
	TextureSize int32
	Center      math.Vec3
	QuadSize    float32

	// Image is the top-down CPU copy of the texture, only set with Options.Capture.
	Image *image.RGBA
}

// Bake renders src once into an off-screen target and keeps the result as a texture.
// The previous framebuffer binding and viewport are restored before returning.
func Bake(src Drawable, bounds math.Box3, opts Options) (*Facade, error) {
	if err := opts.validate(); err != nil {
		return nil, err
	}
	if bounds.IsEmpty() || bounds.MaxExtent() == 0 {
		return nil, ErrEmptyBounds
	}

	plan := NewPlan(bounds, opts)

	fb, err := framebuffer.New(opts.TextureSize, opts.TextureSize)
	if err != nil {
		return nil, fmt.Errorf("facade target: %w", err)
	}
	defer fb.Destroy()

	restore := fb.BindWithViewport()
	fb.Clear(opts.Background[0], opts.Background[1], opts.Background[2], opts.Background[3])
	gl.Enable(gl.DEPTH_TEST)
	gl.Disable(gl.BLEND)
	src.Draw(plan.Camera.ViewProjection())

	f := &Facade{
		TextureSize: opts.TextureSize,
		Center:      plan.Center,
		QuadSize:    plan.QuadSize,
	}
	if opts.Capture {
		f.Image, err = fb.Image()
		if err != nil {
			restore()
			return nil, fmt.Errorf("facade capture: %w", err)
		}
	}
	restore()

	f.Texture = fb.DetachColorTexture()
	if opts.Mipmaps {
		gl.BindTexture(gl.TEXTURE_2D, f.Texture)
		gl.GenerateMipmap(gl.TEXTURE_2D)
		gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.LINEAR_MIPMAP_LINEAR)
		gl.BindTexture(gl.TEXTURE_2D, 0)
	}

	logger.Info("facade baked",
		zap.Int32("size", opts.TextureSize),
		logger.Bytes("texture", uint64(opts.TextureSize)*uint64(opts.TextureSize)*4),
		zap.Float32("distance", plan.Camera.Position.Sub(plan.Center).Length()),
		zap.Float32("quad", plan.QuadSize),
	)
	return f, nil
}

// Instances returns one sprite per placement. A placement is where the object's
// origin would stand; the sprite is centred on the object's bounds centre from there.
func (f *Facade) Instances(placements []math.Vec3) []scene.SpriteInstance {
	out := make([]scene.SpriteInstance, len(placements))
	for i, p := range placements {
		out[i] = scene.SpriteInstance{
			Center: p.Add(f.Center).Array(),
			Size:   [2]float32{f.QuadSize, f.QuadSize},
		}
	}
	return out
}

// Destroy releases the texture.
func (f *Facade) Destroy() {
	if f.Texture != 0 {
		gl.DeleteTextures(1, &f.Texture)
		f.Texture = 0
	}
}
