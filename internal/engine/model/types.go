// Package model builds the procedural meshes the demo renders and bakes.
package model

import "github.com/Faultbox/facade/pkg/math"

// Vertex represents a mesh vertex with position, normal, and texture coordinates.
type Vertex struct {
	Position [3]float32
	Normal   [3]float32
	TexCoord [2]float32
}

// VertexStride is the size of Vertex in bytes as laid out in the GPU buffer.
const VertexStride = 8 * 4

// Mesh holds indexed triangle data ready for GPU upload.
type Mesh struct {
	Vertices []Vertex
	Indices  []uint32
}

// TriangleCount returns the number of indexed triangles.
func (m *Mesh) TriangleCount() int {
	return len(m.Indices) / 3
}

// Bounds returns the axis-aligned box around every vertex.
// A mesh without vertices returns an empty box.
func (m *Mesh) Bounds() math.Box3 {
	b := math.EmptyBox()
	for _, v := range m.Vertices {
		b = b.ExpandByPoint(math.Vec3{X: v.Position[0], Y: v.Position[1], Z: v.Position[2]})
	}
	return b
}
