package app

import (
	"math"
	"time"

	"go.uber.org/zap"

	"github.com/Faultbox/glowsphere/internal/engine/input"
	"github.com/Faultbox/glowsphere/internal/engine/material"
	"github.com/Faultbox/glowsphere/internal/engine/tween"
	"github.com/Faultbox/glowsphere/internal/engine/viewport"
	"github.com/Faultbox/glowsphere/internal/logger"
)

// PointerColor maps a pointer position to an RGB triple: red follows x,
// green follows y, blue is fixed. Channels round half up. With clamp set,
// results are limited to [0,255]. Without it the CSS rgb() parse rules
// apply: values above 255 saturate and a negative channel makes the whole
// color unparseable, leaving white. ok is false only for an empty viewport.
func PointerColor(x, y float32, view viewport.Viewport, blue uint8, clamp bool) (rgb [3]uint8, ok bool) {
	if !view.Valid() {
		return rgb, false
	}
	r := roundHalfUp(float64(x) / float64(view.Width) * 255)
	g := roundHalfUp(float64(y) / float64(view.Height) * 255)
	if !clamp && (r < 0 || g < 0) {
		return [3]uint8{255, 255, 255}, true
	}
	return [3]uint8{clampByte(r), clampByte(g), blue}, true
}

func roundHalfUp(v float64) int {
	return int(math.Floor(v + 0.5))
}

func clampByte(v int) uint8 {
	return uint8(min(max(v, 0), 255))
}

// Interaction recolors the material while the pointer is held down.
type Interaction struct {
	view     *viewport.Viewport
	target   tween.Target
	tweens   *tween.Engine
	blue     uint8
	clamp    bool
	duration time.Duration

	dragging bool
	rgb      [3]uint8
	hasRGB   bool
}

// NewInteraction drives target's color tweens on tweens.
func NewInteraction(view *viewport.Viewport, target tween.Target, tweens *tween.Engine, blue uint8, clamp bool, duration time.Duration) *Interaction {
	return &Interaction{
		view:     view,
		target:   target,
		tweens:   tweens,
		blue:     blue,
		clamp:    clamp,
		duration: duration,
	}
}

// Dragging reports whether a button is held.
func (i *Interaction) Dragging() bool {
	return i.dragging
}

// RGB returns the last computed color and whether one exists.
func (i *Interaction) RGB() ([3]uint8, bool) {
	return i.rgb, i.hasRGB
}

// OnEvent implements input.Listener.
func (i *Interaction) OnEvent(e input.Event) {
	switch e.Type {
	case input.EventMouseDown:
		i.dragging = true
	case input.EventMouseUp:
		i.dragging = false
	case input.EventMouseMove:
		if i.dragging {
			i.recolor(e.MouseX, e.MouseY)
		}
	}
}

func (i *Interaction) recolor(x, y float32) {
	rgb, ok := PointerColor(x, y, *i.view, i.blue, i.clamp)
	if !ok {
		return
	}
	i.rgb, i.hasRGB = rgb, true
	i.tweens.To(i.target, material.LinearRGB255(rgb[0], rgb[1], rgb[2]), tween.WithDuration(i.duration))
	logger.Debug("recolor", zap.Uint8s("rgb", rgb[:]))
}
