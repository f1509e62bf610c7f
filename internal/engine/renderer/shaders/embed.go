// Package shaders provides embedded GLSL shader sources.
package shaders

import _ "embed"

// TerrainVertexShader is the vertex shader for terrain tiles.
//
//go:embed terrain.vert
var TerrainVertexShader string

// TerrainFragmentShader is the fragment shader for terrain tiles.
//
//go:embed terrain.frag
var TerrainFragmentShader string

// LineVertexShader is the vertex shader for flat-colored world lines.
//
//go:embed line.vert
var LineVertexShader string

// LineFragmentShader is the fragment shader for flat-colored world lines.
//
//go:embed line.frag
var LineFragmentShader string

// OverlayVertexShader is the vertex shader for screen-space overview geometry.
//
//go:embed overlay.vert
var OverlayVertexShader string

// OverlayFragmentShader is the fragment shader for screen-space overview geometry.
//
//go:embed overlay.frag
var OverlayFragmentShader string
