package scene

import (
	"fmt"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/Faultbox/facade/internal/engine/model"
	"github.com/Faultbox/facade/internal/engine/scene/shaders"
	"github.com/Faultbox/facade/internal/engine/shader"
	"github.com/Faultbox/facade/pkg/math"
)

// offsetAttrib is the per-instance translation slot in mesh.vert.
const offsetAttrib = 3

// GPUMesh is an uploaded mesh.
type GPUMesh struct {
	vao         uint32
	vbo         uint32
	ebo         uint32
	indexCount  int32
	instanceVBO uint32
	instanceCap int

	// Bounds in model space, kept for framing after upload
	Bounds    math.Box3
	Triangles int
}

// Material is the flat-shaded surface description used by MeshRenderer.
type Material struct {
	Color   [3]float32
	Checker bool // Darken alternate texture-space cells, used for the ground
}

// MeshRenderer draws lit meshes with a single directional light.
type MeshRenderer struct {
	program *shader.Program

	LightDir math.Vec3
	Ambient  [3]float32
}

// NewMeshRenderer creates a new mesh renderer.
func NewMeshRenderer() (*MeshRenderer, error) {
	program, err := shader.New("mesh", shaders.MeshVertexShader, shaders.MeshFragmentShader)
	if err != nil {
		return nil, err
	}

	return &MeshRenderer{
		program:  program,
		LightDir: math.Vec3{X: 0.5, Y: 0.866, Z: 0.4},
		Ambient:  [3]float32{0.3, 0.3, 0.3},
	}, nil
}

// Upload copies a mesh into GPU buffers.
func (r *MeshRenderer) Upload(m *model.Mesh) (*GPUMesh, error) {
	if len(m.Vertices) == 0 || len(m.Indices) == 0 {
		return nil, fmt.Errorf("uploading mesh: no geometry")
	}

	g := &GPUMesh{
		indexCount: int32(len(m.Indices)),
		Bounds:     m.Bounds(),
		Triangles:  m.TriangleCount(),
	}

	gl.GenVertexArrays(1, &g.vao)
	gl.BindVertexArray(g.vao)

	gl.GenBuffers(1, &g.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, g.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(m.Vertices)*model.VertexStride, unsafe.Pointer(&m.Vertices[0]), gl.STATIC_DRAW)

	gl.GenBuffers(1, &g.ebo)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, g.ebo)
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(m.Indices)*4, unsafe.Pointer(&m.Indices[0]), gl.STATIC_DRAW)

	// Position (location 0)
	gl.VertexAttribPointerWithOffset(0, 3, gl.FLOAT, false, model.VertexStride, 0)
	gl.EnableVertexAttribArray(0)
	// Normal (location 1)
	gl.VertexAttribPointerWithOffset(1, 3, gl.FLOAT, false, model.VertexStride, 3*4)
	gl.EnableVertexAttribArray(1)
	// TexCoord (location 2)
	gl.VertexAttribPointerWithOffset(2, 2, gl.FLOAT, false, model.VertexStride, 6*4)
	gl.EnableVertexAttribArray(2)

	gl.BindVertexArray(0)
	return g, nil
}

// SetInstances uploads one translation per copy for DrawInstanced.
func (g *GPUMesh) SetInstances(offsets []math.Vec3) {
	if len(offsets) == 0 {
		return
	}

	gl.BindVertexArray(g.vao)
	if g.instanceVBO == 0 {
		gl.GenBuffers(1, &g.instanceVBO)
		gl.BindBuffer(gl.ARRAY_BUFFER, g.instanceVBO)
		gl.VertexAttribPointerWithOffset(offsetAttrib, 3, gl.FLOAT, false, 3*4, 0)
		gl.VertexAttribDivisor(offsetAttrib, 1)
	}

	size := len(offsets) * 3 * 4
	gl.BindBuffer(gl.ARRAY_BUFFER, g.instanceVBO)
	if len(offsets) > g.instanceCap {
		gl.BufferData(gl.ARRAY_BUFFER, size, unsafe.Pointer(&offsets[0]), gl.STATIC_DRAW)
		g.instanceCap = len(offsets)
	} else {
		gl.BufferSubData(gl.ARRAY_BUFFER, 0, size, unsafe.Pointer(&offsets[0]))
	}
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
	gl.BindVertexArray(0)
}

func (r *MeshRenderer) begin(viewProj, modelMat math.Mat4, mat Material) {
	r.program.Use()
	r.program.SetMat4("uViewProj", viewProj)
	r.program.SetMat4("uModel", modelMat)
	r.program.SetVec3("uLightDir", r.LightDir)
	r.program.SetColor3("uAmbient", r.Ambient)
	r.program.SetColor3("uColor", mat.Color)
	checker := int32(0)
	if mat.Checker {
		checker = 1
	}
	r.program.SetInt("uChecker", checker)

	gl.Disable(gl.BLEND)
	gl.Enable(gl.DEPTH_TEST)
	gl.DepthMask(true)
}

// Draw renders one copy of the mesh.
func (r *MeshRenderer) Draw(g *GPUMesh, viewProj, modelMat math.Mat4, mat Material) {
	r.begin(viewProj, modelMat, mat)

	gl.BindVertexArray(g.vao)
	gl.DisableVertexAttribArray(offsetAttrib)
	gl.VertexAttrib3f(offsetAttrib, 0, 0, 0)
	gl.DrawElements(gl.TRIANGLES, g.indexCount, gl.UNSIGNED_INT, nil)
	gl.BindVertexArray(0)
}

// DrawInstanced renders count copies, each translated by the offsets from SetInstances.
func (r *MeshRenderer) DrawInstanced(g *GPUMesh, viewProj, modelMat math.Mat4, mat Material, count int) {
	if count <= 0 || g.instanceVBO == 0 {
		return
	}
	count = min(count, g.instanceCap)
	r.begin(viewProj, modelMat, mat)

	gl.BindVertexArray(g.vao)
	gl.EnableVertexAttribArray(offsetAttrib)
	gl.DrawElementsInstanced(gl.TRIANGLES, g.indexCount, gl.UNSIGNED_INT, nil, int32(count))
	gl.DisableVertexAttribArray(offsetAttrib)
	gl.BindVertexArray(0)
}

// Destroy releases the mesh buffers.
func (g *GPUMesh) Destroy() {
	if g.vao != 0 {
		gl.DeleteVertexArrays(1, &g.vao)
		g.vao = 0
	}
	for _, buf := range []*uint32{&g.vbo, &g.ebo, &g.instanceVBO} {
		if *buf != 0 {
			gl.DeleteBuffers(1, buf)
			*buf = 0
		}
	}
}

// Destroy releases the shader program.
func (r *MeshRenderer) Destroy() {
	if r.program != nil {
		r.program.Delete()
	}
}
