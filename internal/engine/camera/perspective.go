// Package camera provides the perspective camera and orbit controls.
package camera

import (
	"github.com/Faultbox/glowsphere/internal/engine/scene"
	"github.com/Faultbox/glowsphere/pkg/math"
)

// Perspective is a pinhole camera looking at a target point.
// Fov is the vertical field of view in degrees.
type Perspective struct {
	scene.Object3D

	Fov    float32
	Aspect float32
	Near   float32
	Far    float32
	Up     math.Vec3

	target     math.Vec3
	projection math.Mat4
}

// NewPerspective creates a camera and computes its projection.
func NewPerspective(fov, aspect, near, far float32) *Perspective {
	c := &Perspective{
		Object3D: scene.NewObject3D("camera"),
		Fov:      fov,
		Aspect:   aspect,
		Near:     near,
		Far:      far,
		Up:       math.V3(0, 1, 0),
		target:   math.V3(0, 0, -1),
	}
	c.UpdateProjectionMatrix()
	return c
}

// UpdateProjectionMatrix recomputes the cached projection. Call it after
// changing Fov, Aspect, Near or Far.
func (c *Perspective) UpdateProjectionMatrix() {
	c.projection = math.Perspective(math.Radians(c.Fov), c.Aspect, c.Near, c.Far)
}

// ProjectionMatrix returns the cached projection.
func (c *Perspective) ProjectionMatrix() math.Mat4 {
	return c.projection
}

// LookAt orients the camera toward target.
func (c *Perspective) LookAt(target math.Vec3) {
	c.target = target
}

// Target returns the point the camera looks at.
func (c *Perspective) Target() math.Vec3 {
	return c.target
}

// ViewMatrix returns the world-to-view transform.
func (c *Perspective) ViewMatrix() math.Mat4 {
	return math.LookAt(c.WorldPosition(), c.target, c.Up)
}

// ViewProjection returns projection * view.
func (c *Perspective) ViewProjection() math.Mat4 {
	return c.projection.Mul(c.ViewMatrix())
}
