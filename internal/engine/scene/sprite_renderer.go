package scene

import (
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/Faultbox/facade/internal/engine/scene/shaders"
	"github.com/Faultbox/facade/internal/engine/shader"
	"github.com/Faultbox/facade/pkg/math"
)

// SpriteInstance is one billboard: world-space centre and quad size.
// Layout matches the per-instance attributes in sprite.vert.
type SpriteInstance struct {
	Center [3]float32
	Size   [2]float32
}

const spriteInstanceStride = 5 * 4

// DefaultAlphaCutoff discards texels below half coverage. Sprites write depth, so
// whatever survives the cutoff occludes correctly without sorting the instances.
const DefaultAlphaCutoff = 0.5

// SpriteRenderer draws camera-facing textured quads, all instances in one draw call.
type SpriteRenderer struct {
	program *shader.Program

	// Unit quad plus per-instance buffer
	vao         uint32
	quadVBO     uint32
	instanceVBO uint32
	instanceCap int
	count       int

	AlphaCutoff float32
}

// NewSpriteRenderer creates a new sprite renderer.
func NewSpriteRenderer() (*SpriteRenderer, error) {
	program, err := shader.New("sprite", shaders.SpriteVertexShader, shaders.SpriteFragmentShader)
	if err != nil {
		return nil, err
	}

	sr := &SpriteRenderer{
		program:     program,
		AlphaCutoff: DefaultAlphaCutoff,
	}
	sr.createQuad()
	return sr, nil
}

func (sr *SpriteRenderer) createQuad() {
	// Corner (XY) and TexCoord (UV) as a triangle strip.
	// The bake texture keeps GL's bottom-up rows, so v=0 is the bottom edge.
	vertices := []float32{
		-0.5, -0.5, 0.0, 0.0, // Bottom-left
		0.5, -0.5, 1.0, 0.0, // Bottom-right
		-0.5, 0.5, 0.0, 1.0, // Top-left
		0.5, 0.5, 1.0, 1.0, // Top-right
	}

	gl.GenVertexArrays(1, &sr.vao)
	gl.BindVertexArray(sr.vao)

	gl.GenBuffers(1, &sr.quadVBO)
	gl.BindBuffer(gl.ARRAY_BUFFER, sr.quadVBO)
	gl.BufferData(gl.ARRAY_BUFFER, len(vertices)*4, unsafe.Pointer(&vertices[0]), gl.STATIC_DRAW)

	gl.VertexAttribPointerWithOffset(0, 2, gl.FLOAT, false, 4*4, 0)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointerWithOffset(1, 2, gl.FLOAT, false, 4*4, 2*4)
	gl.EnableVertexAttribArray(1)

	gl.GenBuffers(1, &sr.instanceVBO)
	gl.BindBuffer(gl.ARRAY_BUFFER, sr.instanceVBO)

	// Center (location 2), Size (location 3), advanced once per instance
	gl.VertexAttribPointerWithOffset(2, 3, gl.FLOAT, false, spriteInstanceStride, 0)
	gl.EnableVertexAttribArray(2)
	gl.VertexAttribDivisor(2, 1)
	gl.VertexAttribPointerWithOffset(3, 2, gl.FLOAT, false, spriteInstanceStride, 3*4)
	gl.EnableVertexAttribArray(3)
	gl.VertexAttribDivisor(3, 1)

	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
	gl.BindVertexArray(0)
}

// SetInstances replaces the sprite placements.
func (sr *SpriteRenderer) SetInstances(instances []SpriteInstance) {
	sr.count = len(instances)
	if sr.count == 0 {
		return
	}

	size := len(instances) * spriteInstanceStride
	gl.BindBuffer(gl.ARRAY_BUFFER, sr.instanceVBO)
	if len(instances) > sr.instanceCap {
		gl.BufferData(gl.ARRAY_BUFFER, size, unsafe.Pointer(&instances[0]), gl.STATIC_DRAW)
		sr.instanceCap = len(instances)
	} else {
		gl.BufferSubData(gl.ARRAY_BUFFER, 0, size, unsafe.Pointer(&instances[0]))
	}
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
}

// Count returns the number of sprites Render draws.
func (sr *SpriteRenderer) Count() int {
	return sr.count
}

// Render draws every instance with the given texture, facing the camera along camRight/camUp.
func (sr *SpriteRenderer) Render(viewProj math.Mat4, camRight, camUp math.Vec3, textureID uint32) {
	if sr.count == 0 {
		return
	}

	sr.program.Use()
	sr.program.SetMat4("uViewProj", viewProj)
	sr.program.SetVec3("uCamRight", camRight)
	sr.program.SetVec3("uCamUp", camUp)
	sr.program.SetFloat("uAlphaCutoff", sr.AlphaCutoff)

	// Texels were rendered over transparent black, so colour is already premultiplied
	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.ONE, gl.ONE_MINUS_SRC_ALPHA)

	gl.Enable(gl.DEPTH_TEST)
	gl.DepthMask(true)

	gl.ActiveTexture(gl.TEXTURE0)
	gl.BindTexture(gl.TEXTURE_2D, textureID)
	sr.program.SetInt("uTexture", 0)

	gl.BindVertexArray(sr.vao)
	gl.DrawArraysInstanced(gl.TRIANGLE_STRIP, 0, 4, int32(sr.count))
	gl.BindVertexArray(0)

	gl.Disable(gl.BLEND)
}

// Destroy releases all resources.
func (sr *SpriteRenderer) Destroy() {
	if sr.vao != 0 {
		gl.DeleteVertexArrays(1, &sr.vao)
		sr.vao = 0
	}
	for _, buf := range []*uint32{&sr.quadVBO, &sr.instanceVBO} {
		if *buf != 0 {
			gl.DeleteBuffers(1, buf)
			*buf = 0
		}
	}
	if sr.program != nil {
		sr.program.Delete()
	}
}
