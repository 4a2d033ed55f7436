package scene

import (
	"github.com/Faultbox/glowsphere/internal/engine/material"
	"github.com/Faultbox/glowsphere/internal/engine/model"
)

// Mesh pairs geometry with a material.
type Mesh struct {
	Object3D
	Geometry *model.Mesh
	Material *material.Standard
}

// NewMesh creates a mesh node.
func NewMesh(geometry *model.Mesh, mat *material.Standard) *Mesh {
	return &Mesh{
		Object3D: NewObject3D("mesh"),
		Geometry: geometry,
		Material: mat,
	}
}
