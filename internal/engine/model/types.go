// Package model builds renderable mesh data from procedural geometry.
package model

import "github.com/Faultbox/glowsphere/pkg/math"

// Vertex represents a mesh vertex with position, normal, and texture coordinates.
type Vertex struct {
	Position [3]float32
	Normal   [3]float32
	TexCoord [2]float32
}

// Mesh holds indexed triangle data ready for GPU upload.
type Mesh struct {
	Vertices []Vertex
	Indices  []uint32
	Bounds   Bounds
}

// Bounds holds the axis-aligned bounding box of a mesh.
type Bounds struct {
	Min math.Vec3
	Max math.Vec3
}

// Size returns the extent of the box along each axis.
func (b Bounds) Size() math.Vec3 {
	return b.Max.Sub(b.Min)
}

// TriangleCount returns the number of indexed triangles.
func (m *Mesh) TriangleCount() int {
	return len(m.Indices) / 3
}

func emptyBounds() Bounds {
	return Bounds{
		Min: math.Splat(1e10),
		Max: math.Splat(-1e10),
	}
}

func (b *Bounds) extend(p [3]float32) {
	b.Min.X = min(b.Min.X, p[0])
	b.Min.Y = min(b.Min.Y, p[1])
	b.Min.Z = min(b.Min.Z, p[2])
	b.Max.X = max(b.Max.X, p[0])
	b.Max.Y = max(b.Max.Y, p[1])
	b.Max.Z = max(b.Max.Z, p[2])
}
