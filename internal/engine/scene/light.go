package scene

import (
	"github.com/lucasb-eyer/go-colorful"
)

// MaxPointLights is the maximum number of point lights the shader accepts.
const MaxPointLights = 4

// DefaultDecay is the physically correct inverse-square falloff.
const DefaultDecay = 2

// PointLight emits light in all directions from its position.
// A Distance of zero means unlimited range.
type PointLight struct {
	Object3D
	Color     colorful.Color
	Intensity float32
	Distance  float32
	Decay     float32
}

// NewPointLight creates a point light.
func NewPointLight(color colorful.Color, intensity, distance float32) *PointLight {
	return &PointLight{
		Object3D:  NewObject3D("point_light"),
		Color:     color,
		Intensity: intensity,
		Distance:  distance,
		Decay:     DefaultDecay,
	}
}

// LightUniform is the GPU-facing form of a point light.
type LightUniform struct {
	Position  [3]float32
	Color     [3]float32 // linear RGB, 0-1
	Intensity float32
	Distance  float32
	Decay     float32
}

// Uniform converts the light for upload, clamping the color to [0,1]
// and negative distances to unlimited.
func (l *PointLight) Uniform() LightUniform {
	r, g, b := l.Color.Clamped().LinearRgb()
	u := LightUniform{
		Position:  l.WorldPosition().Array(),
		Color:     [3]float32{float32(r), float32(g), float32(b)},
		Intensity: l.Intensity,
		Distance:  l.Distance,
		Decay:     l.Decay,
	}
	if u.Distance < 0 {
		u.Distance = 0
	}
	return u
}
