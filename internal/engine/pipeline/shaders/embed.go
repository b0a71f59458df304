// Package shaders provides embedded GLSL shader sources.
package shaders

import _ "embed"

// GlitchVertexShader transforms mesh vertices and forwards view-space
// normals.
//
//go:embed glitch.vert
var GlitchVertexShader string

// GlitchFragmentShader shades the mesh with a time-animated glitch effect
// over flat lambert lighting.
//
//go:embed glitch.frag
var GlitchFragmentShader string
