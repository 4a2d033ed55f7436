// Package material defines surface descriptions consumed by the renderer.
package material

import (
	"fmt"

	"github.com/lucasb-eyer/go-colorful"
)

// Standard is a physically based metallic/roughness material.
// Color is stored in sRGB; the renderer converts it to linear space on upload.
type Standard struct {
	Color     colorful.Color
	Roughness float32
	Metalness float32
}

// NewStandard creates a standard material from a CSS-style hex color.
func NewStandard(hex string, roughness float32) (*Standard, error) {
	c, err := colorful.Hex(hex)
	if err != nil {
		return nil, fmt.Errorf("material color %q: %w", hex, err)
	}
	if roughness < 0 || roughness > 1 {
		return nil, fmt.Errorf("material roughness %g outside [0,1]", roughness)
	}
	return &Standard{Color: c, Roughness: roughness}, nil
}

// LinearColor returns the color in linear RGB for shading.
func (m *Standard) LinearColor() [3]float32 {
	r, g, b := m.Color.LinearRgb()
	return [3]float32{float32(r), float32(g), float32(b)}
}

// Channels exposes the color as linear RGB, the space color tweens
// interpolate in.
func (m *Standard) Channels() []float64 {
	r, g, b := m.Color.LinearRgb()
	return []float64{r, g, b}
}

// SetChannels writes linear RGB channels produced by a tween.
func (m *Standard) SetChannels(v []float64) {
	m.Color = colorful.LinearRgb(v[0], v[1], v[2])
}

// LinearRGB255 converts an 8-bit sRGB triple into tween channels.
func LinearRGB255(r, g, b uint8) []float64 {
	c := colorful.Color{R: float64(r) / 255, G: float64(g) / 255, B: float64(b) / 255}
	lr, lg, lb := c.LinearRgb()
	return []float64{lr, lg, lb}
}
