package ui2d

import (
	"github.com/lucasb-eyer/go-colorful"

	"github.com/Faultbox/glowsphere/internal/engine/overlay"
)

// Color represents an RGBA color with float components (0.0 to 1.0).
type Color struct {
	R, G, B, A float32
}

// Predefined colors.
var (
	ColorTransparent = Color{0, 0, 0, 0}
	ColorWhite       = Color{1, 1, 1, 1}
	ColorBlack       = Color{0, 0, 0, 1}
)

// RGBA creates a color from 8-bit RGBA values (0-255).
func RGBA(r, g, b, a uint8) Color {
	return Color{
		R: float32(r) / 255.0,
		G: float32(g) / 255.0,
		B: float32(b) / 255.0,
		A: float32(a) / 255.0,
	}
}

// FromColorful converts a colorful color with straight alpha, clamping
// out-of-gamut channels.
func FromColorful(c colorful.Color, a float32) Color {
	c = c.Clamped()
	return Color{R: float32(c.R), G: float32(c.G), B: float32(c.B), A: a}
}

// FromFill converts an overlay fill.
func FromFill(f overlay.Fill) Color {
	return FromColorful(f.Color, f.Alpha)
}

// WithAlpha returns a copy of the color with a different alpha value.
func (c Color) WithAlpha(a float32) Color {
	return Color{c.R, c.G, c.B, a}
}
