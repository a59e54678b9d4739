// Package shaders provides embedded GLSL shader sources.
package shaders

import _ "embed"

// TerrainVertexShader is the default vertex shader for terrain rendering.
//
//go:embed terrain.vert
var TerrainVertexShader string

// TerrainFragmentShader is the default fragment shader for terrain rendering.
//
//go:embed terrain.frag
var TerrainFragmentShader string
