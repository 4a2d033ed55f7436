// Package scene implements the scene graph: a tree of objects with local
// transforms, meshes and lights.
package scene

import "github.com/Faultbox/glowsphere/pkg/math"

// Node is anything that can live in the scene graph.
type Node interface {
	Object() *Object3D
}

// Object3D carries the transform and hierarchy shared by every node.
// Rotation is handled by the camera and controls only; objects are unrotated.
type Object3D struct {
	Name     string
	Position math.Vec3
	Scale    math.Vec3
	Visible  bool

	parent   *Object3D
	children []Node
}

// NewObject3D returns an object at the origin with unit scale.
func NewObject3D(name string) Object3D {
	return Object3D{
		Name:    name,
		Scale:   math.Splat(1),
		Visible: true,
	}
}

// Object returns the receiver, so embedding Object3D satisfies Node.
func (o *Object3D) Object() *Object3D {
	return o
}

// Add attaches child to o, detaching it from any previous parent.
func (o *Object3D) Add(child Node) {
	c := child.Object()
	if c == o {
		return
	}
	if c.parent != nil {
		c.parent.Remove(child)
	}
	c.parent = o
	o.children = append(o.children, child)
}

// Remove detaches child if it is a direct child of o.
func (o *Object3D) Remove(child Node) {
	for i, n := range o.children {
		if n.Object() == child.Object() {
			o.children = append(o.children[:i], o.children[i+1:]...)
			child.Object().parent = nil
			return
		}
	}
}

// Children returns the direct children.
func (o *Object3D) Children() []Node {
	return o.children
}

// Parent returns the parent object, or nil for a root.
func (o *Object3D) Parent() *Object3D {
	return o.parent
}

// LocalMatrix returns translate * scale.
func (o *Object3D) LocalMatrix() math.Mat4 {
	return math.Compose(o.Position, o.Scale)
}

// WorldMatrix returns the local matrix composed with every ancestor.
func (o *Object3D) WorldMatrix() math.Mat4 {
	m := o.LocalMatrix()
	for p := o.parent; p != nil; p = p.parent {
		m = p.LocalMatrix().Mul(m)
	}
	return m
}

// WorldPosition returns the object's origin in world space.
func (o *Object3D) WorldPosition() math.Vec3 {
	return o.WorldMatrix().TransformPoint(math.Vec3{})
}

// ScaleChannels exposes the scale as a tweenable vector.
func (o *Object3D) ScaleChannels() []float64 {
	return []float64{float64(o.Scale.X), float64(o.Scale.Y), float64(o.Scale.Z)}
}

// SetScaleChannels writes a tweened scale back.
func (o *Object3D) SetScaleChannels(v []float64) {
	o.Scale = math.V3(float32(v[0]), float32(v[1]), float32(v[2]))
}
