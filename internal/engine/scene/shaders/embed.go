// Package shaders provides embedded GLSL shader sources.
package shaders

import _ "embed"

// MeshVertexShader is the vertex shader for lit mesh rendering.
//
//go:embed mesh.vert
var MeshVertexShader string

// MeshFragmentShader is the fragment shader for lit mesh rendering.
//
//go:embed mesh.frag
var MeshFragmentShader string

// SpriteVertexShader is the vertex shader for instanced billboard sprites.
//
//go:embed sprite.vert
var SpriteVertexShader string

// SpriteFragmentShader is the fragment shader for instanced billboard sprites.
//
//go:embed sprite.frag
var SpriteFragmentShader string
