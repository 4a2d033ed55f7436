// Package viewport tracks the logical output size and pixel ratio shared
// by the scene renderer and the overlay.
package viewport

import "math"

// Viewport is a logical size in window pixels plus the ratio between
// drawing-buffer pixels and logical pixels.
type Viewport struct {
	Width      int
	Height     int
	PixelRatio float64
}

// New creates a viewport with a pixel ratio of 1.
func New(width, height int) Viewport {
	return Viewport{Width: width, Height: height, PixelRatio: 1}
}

// SetSize stores a new logical size. Non-positive sizes are rejected.
// Returns whether the stored size changed.
func (v *Viewport) SetSize(width, height int) bool {
	if width <= 0 || height <= 0 {
		return false
	}
	if width == v.Width && height == v.Height {
		return false
	}
	v.Width, v.Height = width, height
	return true
}

// SetPixelRatio stores the ratio. Non-positive ratios are ignored.
func (v *Viewport) SetPixelRatio(ratio float64) {
	if ratio > 0 {
		v.PixelRatio = ratio
	}
}

// Valid reports whether both dimensions are positive.
func (v Viewport) Valid() bool {
	return v.Width > 0 && v.Height > 0
}

// Aspect returns width over height, or 1 for an empty viewport.
func (v Viewport) Aspect() float32 {
	if !v.Valid() {
		return 1
	}
	return float32(v.Width) / float32(v.Height)
}

// DrawingBufferSize returns the size in physical pixels: each logical
// dimension times the pixel ratio, rounded down.
func (v Viewport) DrawingBufferSize() (int, int) {
	return int(math.Floor(float64(v.Width) * v.PixelRatio)),
		int(math.Floor(float64(v.Height) * v.PixelRatio))
}
