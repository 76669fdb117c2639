// Package scene provides the renderers the facade demo draws with:
// lit meshes for the source object and the ground, instanced billboards for the facades.
package scene

import (
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"
)

// Scene bundles the renderers and the default-framebuffer state shared by every frame.
type Scene struct {
	Meshes  *MeshRenderer
	Sprites *SpriteRenderer

	Background [3]float32
}

// New creates the renderers. Requires a current GL context.
func New(background [3]float32) (*Scene, error) {
	s := &Scene{Background: background}

	var err error
	s.Meshes, err = NewMeshRenderer()
	if err != nil {
		return nil, fmt.Errorf("creating mesh renderer: %w", err)
	}

	s.Sprites, err = NewSpriteRenderer()
	if err != nil {
		s.Destroy()
		return nil, fmt.Errorf("creating sprite renderer: %w", err)
	}

	return s, nil
}

// Begin binds the default framebuffer, sets the viewport and clears it.
func (s *Scene) Begin(width, height int32) {
	gl.BindFramebuffer(gl.FRAMEBUFFER, 0)
	gl.Viewport(0, 0, width, height)
	gl.Enable(gl.DEPTH_TEST)
	gl.DepthFunc(gl.LESS)
	gl.Enable(gl.CULL_FACE)
	gl.ClearColor(s.Background[0], s.Background[1], s.Background[2], 1)
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)
}

// ReadScreen reads the default framebuffer as bottom-up RGBA rows.
func (s *Scene) ReadScreen(width, height int32) []byte {
	pixels := make([]byte, width*height*4)
	gl.BindFramebuffer(gl.READ_FRAMEBUFFER, 0)
	gl.ReadBuffer(gl.BACK)
	gl.PixelStorei(gl.PACK_ALIGNMENT, 1)
	gl.ReadPixels(0, 0, width, height, gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(pixels))
	return pixels
}

// Destroy releases all renderers.
func (s *Scene) Destroy() {
	if s.Meshes != nil {
		s.Meshes.Destroy()
		s.Meshes = nil
	}
	if s.Sprites != nil {
		s.Sprites.Destroy()
		s.Sprites = nil
	}
}
