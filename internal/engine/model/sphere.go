package model

import (
	"fmt"

	"github.com/chewxy/math32"
)

// Minimum segment counts for a closed sphere.
const (
	MinWidthSegments  = 3
	MinHeightSegments = 2
)

// NewSphere builds a UV sphere centered at the origin.
//
// The grid has (widthSegments+1) x (heightSegments+1) vertices so the seam
// carries its own UVs. The rows touching the poles emit a single triangle
// per quad, since the other one would be degenerate.
func NewSphere(radius float32, widthSegments, heightSegments int) (*Mesh, error) {
	if radius <= 0 {
		return nil, fmt.Errorf("sphere radius must be positive, got %g", radius)
	}
	if widthSegments < MinWidthSegments || heightSegments < MinHeightSegments {
		return nil, fmt.Errorf("sphere needs at least %dx%d segments, got %dx%d",
			MinWidthSegments, MinHeightSegments, widthSegments, heightSegments)
	}

	cols := widthSegments + 1
	mesh := &Mesh{
		Vertices: make([]Vertex, 0, cols*(heightSegments+1)),
		Indices:  make([]uint32, 0, widthSegments*(heightSegments-1)*6),
		Bounds:   emptyBounds(),
	}

	for iy := 0; iy <= heightSegments; iy++ {
		v := float32(iy) / float32(heightSegments)

		// Shift pole UVs half a segment so each pole triangle samples its own column.
		var uOffset float32
		switch iy {
		case 0:
			uOffset = 0.5 / float32(widthSegments)
		case heightSegments:
			uOffset = -0.5 / float32(widthSegments)
		}

		theta := v * math32.Pi
		sinTheta, cosTheta := math32.Sin(theta), math32.Cos(theta)

		for ix := 0; ix <= widthSegments; ix++ {
			u := float32(ix) / float32(widthSegments)
			phi := u * 2 * math32.Pi

			normal := [3]float32{
				-math32.Cos(phi) * sinTheta,
				cosTheta,
				math32.Sin(phi) * sinTheta,
			}
			pos := [3]float32{normal[0] * radius, normal[1] * radius, normal[2] * radius}
			mesh.Bounds.extend(pos)

			mesh.Vertices = append(mesh.Vertices, Vertex{
				Position: pos,
				Normal:   normal,
				TexCoord: [2]float32{u + uOffset, 1 - v},
			})
		}
	}

	for iy := 0; iy < heightSegments; iy++ {
		for ix := 0; ix < widthSegments; ix++ {
			a := uint32(iy*cols + ix + 1)
			b := uint32(iy*cols + ix)
			c := uint32((iy+1)*cols + ix)
			d := uint32((iy+1)*cols + ix + 1)

			if iy != 0 {
				mesh.Indices = append(mesh.Indices, a, b, d)
			}
			if iy != heightSegments-1 {
				mesh.Indices = append(mesh.Indices, b, c, d)
			}
		}
	}

	return mesh, nil
}
