// Package shaders provides embedded GLSL shader sources.
package shaders

import _ "embed"

// PhongVertexShader transforms textured, lit mesh vertices.
//
//go:embed phong.vert
var PhongVertexShader string

// PhongFragmentShader shades a textured mesh with ambient, diffuse and specular terms.
//
//go:embed phong.frag
var PhongFragmentShader string

// ColorVertexShader passes per-vertex colour through a single model matrix.
//
//go:embed color.vert
var ColorVertexShader string

// ColorFragmentShader writes the interpolated vertex colour.
//
//go:embed color.frag
var ColorFragmentShader string

// LineVertexShader draws debug points and lines in world space.
//
//go:embed line.vert
var LineVertexShader string

// LineFragmentShader writes a flat colour.
//
//go:embed line.frag
var LineFragmentShader string
