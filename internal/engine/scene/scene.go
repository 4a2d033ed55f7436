package scene

import "github.com/lucasb-eyer/go-colorful"

// Scene is the root of the graph.
type Scene struct {
	Object3D
	Background colorful.Color
}

// New creates an empty scene with a black background.
func New() *Scene {
	return &Scene{Object3D: NewObject3D("scene")}
}

// Traverse calls fn for every node below the root, depth first.
// Invisible nodes and their subtrees are skipped.
func (s *Scene) Traverse(fn func(Node)) {
	var walk func(children []Node)
	walk = func(children []Node) {
		for _, n := range children {
			if !n.Object().Visible {
				continue
			}
			fn(n)
			walk(n.Object().Children())
		}
	}
	walk(s.children)
}

// Meshes returns all visible meshes.
func (s *Scene) Meshes() []*Mesh {
	var meshes []*Mesh
	s.Traverse(func(n Node) {
		if m, ok := n.(*Mesh); ok {
			meshes = append(meshes, m)
		}
	})
	return meshes
}

// PointLights returns all visible point lights.
func (s *Scene) PointLights() []*PointLight {
	var lights []*PointLight
	s.Traverse(func(n Node) {
		if l, ok := n.(*PointLight); ok {
			lights = append(lights, l)
		}
	})
	return lights
}
