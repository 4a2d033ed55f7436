// Package overlay lays out the 2D page chrome drawn over the scene: a nav
// bar that slides in from the top edge and a centered title that fades in.
// Layout is pure; the ui2d renderer draws the result.
package overlay

import (
	"github.com/lucasb-eyer/go-colorful"

	"github.com/Faultbox/glowsphere/internal/engine/tween"
)

// Fill is a color with straight alpha.
type Fill struct {
	Color colorful.Color
	Alpha float32
}

// Rect is a filled rectangle in logical pixels, origin top-left.
type Rect struct {
	X, Y, W, H float32
	Fill       Fill
}

// Text is a run of text whose top-left corner is at (X, Y).
type Text struct {
	X, Y  float32
	Value string
	Scale float32
	Fill  Fill
}

// Frame is everything to draw for one frame, back to front.
type Frame struct {
	Rects []Rect
	Texts []Text
}

// Style describes the overlay content and metrics.
type Style struct {
	Brand      string
	Links      []string
	Title      string
	NavHeight  float32
	Padding    float32
	LinkGap    float32
	NavScale   float32
	TitleScale float32
	NavFill    Fill
	TextColor  colorful.Color
}

// DefaultStyle returns the stock look: a translucent dark bar with white
// text.
func DefaultStyle() Style {
	return Style{
		Brand:      "Sphere",
		Links:      []string{"Explore", "Create"},
		Title:      "Give it a spin",
		NavHeight:  56,
		Padding:    32,
		LinkGap:    32,
		NavScale:   2,
		TitleScale: 4,
		NavFill:    Fill{Color: colorful.Color{}, Alpha: 0.35},
		TextColor:  colorful.Color{R: 1, G: 1, B: 1},
	}
}

// State is the animated part of the overlay.
type State struct {
	// NavOffset is the nav bar's vertical offset as a fraction of its own
	// height: -1 is fully above the window, 0 is in place.
	NavOffset float32
	// TitleOpacity is in [0,1].
	TitleOpacity float32
}

// NavTarget exposes NavOffset to tweens.
func (s *State) NavTarget() tween.Target {
	return tween.Scalar{Value: &s.NavOffset}
}

// TitleTarget exposes TitleOpacity to tweens.
func (s *State) TitleTarget() tween.Target {
	return tween.Scalar{Value: &s.TitleOpacity}
}

// Measurer reports the size of text at a scale.
type Measurer interface {
	Measure(text string, scale float32) (width, height float32)
}

// Layout positions the overlay for a window of width x height logical pixels.
func Layout(st State, style Style, width, height int, m Measurer) Frame {
	var f Frame
	w, h := float32(width), float32(height)

	navY := st.NavOffset * style.NavHeight
	if navY > -style.NavHeight {
		f.Rects = append(f.Rects, Rect{X: 0, Y: navY, W: w, H: style.NavHeight, Fill: style.NavFill})

		opaque := Fill{Color: style.TextColor, Alpha: 1}
		_, th := m.Measure(style.Brand, style.NavScale)
		textY := navY + (style.NavHeight-th)/2
		f.Texts = append(f.Texts, Text{X: style.Padding, Y: textY, Value: style.Brand, Scale: style.NavScale, Fill: opaque})

		x := w - style.Padding
		for i := len(style.Links) - 1; i >= 0; i-- {
			lw, _ := m.Measure(style.Links[i], style.NavScale)
			x -= lw
			f.Texts = append(f.Texts, Text{X: x, Y: textY, Value: style.Links[i], Scale: style.NavScale, Fill: opaque})
			x -= style.LinkGap
		}
	}

	if st.TitleOpacity > 0 && style.Title != "" {
		tw, th := m.Measure(style.Title, style.TitleScale)
		f.Texts = append(f.Texts, Text{
			X:     (w - tw) / 2,
			Y:     (h - th) / 2,
			Value: style.Title,
			Scale: style.TitleScale,
			Fill:  Fill{Color: style.TextColor, Alpha: min(st.TitleOpacity, 1)},
		})
	}
	return f
}
