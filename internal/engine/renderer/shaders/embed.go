// Package shaders provides embedded GLSL shader sources.
package shaders

import _ "embed"

// StandardVertexShader transforms lit meshes.
//
//go:embed standard.vert
var StandardVertexShader string

// StandardFragmentShader shades meshes with a roughness material and point lights.
//
//go:embed standard.frag
var StandardFragmentShader string
