package app

import (
	"fmt"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/Faultbox/glowsphere/internal/config"
	"github.com/Faultbox/glowsphere/internal/engine/camera"
	"github.com/Faultbox/glowsphere/internal/engine/material"
	"github.com/Faultbox/glowsphere/internal/engine/model"
	"github.com/Faultbox/glowsphere/internal/engine/scene"
	"github.com/Faultbox/glowsphere/pkg/math"
)

// World is the scene graph and the handles the app animates.
type World struct {
	Scene  *scene.Scene
	Mesh   *scene.Mesh
	Light  *scene.PointLight
	Camera *camera.Perspective
}

// NewWorld builds the sphere, its light and the camera. The light is
// created at unit intensity and then raised to the configured value, the
// same order the page used.
func NewWorld(cfg config.SceneConfig, aspect float32) (*World, error) {
	geo, err := model.NewSphere(cfg.Sphere.Radius, cfg.Sphere.WidthSegments, cfg.Sphere.HeightSegments)
	if err != nil {
		return nil, fmt.Errorf("sphere geometry: %w", err)
	}
	mat, err := material.NewStandard(cfg.Color, cfg.Roughness)
	if err != nil {
		return nil, err
	}
	mesh := scene.NewMesh(geo, mat)

	lightColor, err := colorful.Hex(cfg.Light.Color)
	if err != nil {
		return nil, fmt.Errorf("light color %q: %w", cfg.Light.Color, err)
	}
	light := scene.NewPointLight(lightColor, 1, cfg.Light.Distance)
	light.Position = math.V3(cfg.Light.Position.X, cfg.Light.Position.Y, cfg.Light.Position.Z)
	light.Intensity = cfg.Light.Intensity
	light.Decay = cfg.Light.Decay

	cam := camera.NewPerspective(cfg.Camera.Fov, aspect, cfg.Camera.Near, cfg.Camera.Far)
	cam.Position.Z = cfg.Camera.Distance

	s := scene.New()
	if cfg.Background != "" {
		bg, err := colorful.Hex(cfg.Background)
		if err != nil {
			return nil, fmt.Errorf("background %q: %w", cfg.Background, err)
		}
		s.Background = bg
	}
	s.Add(mesh)
	s.Add(light)
	s.Add(cam)

	return &World{Scene: s, Mesh: mesh, Light: light, Camera: cam}, nil
}

// NewControls attaches orbit controls to the world camera.
func NewControls(cam *camera.Perspective, cfg config.ControlsConfig) *camera.OrbitControls {
	c := camera.NewOrbitControls(cam)
	c.EnableDamping = cfg.Damping
	c.DampingFrequency = cfg.DampingFrequency
	c.DampingRatio = cfg.DampingRatio
	c.EnablePan = cfg.Pan
	c.EnableZoom = cfg.Zoom
	c.AutoRotate = cfg.AutoRotate
	c.AutoRotateSpeed = cfg.AutoRotateSpeed
	c.RotateSpeed = cfg.RotateSpeed
	return c
}
