package tween

import (
	"fmt"

	"github.com/tanema/gween/ease"
)

// Ease is a gween easing function of (elapsed, begin, change, duration).
type Ease = ease.TweenFunc

// DefaultEase is applied when no ease is given. Quadratic out is the
// curve GSAP calls power1.out.
var DefaultEase Ease = ease.OutQuad

// Linear eases nothing.
var Linear Ease = ease.Linear

// GSAP names mapped onto the matching polynomial and sine curves.
var easesByName = map[string]Ease{
	"linear":       ease.Linear,
	"none":         ease.Linear,
	"power1.in":    ease.InQuad,
	"power1.out":   ease.OutQuad,
	"power1.inOut": ease.InOutQuad,
	"power2.in":    ease.InCubic,
	"power2.out":   ease.OutCubic,
	"power2.inOut": ease.InOutCubic,
	"sine.inOut":   ease.InOutSine,
}

// EaseByName looks up an ease such as "power1.out".
func EaseByName(name string) (Ease, error) {
	if name == "" {
		return DefaultEase, nil
	}
	e, ok := easesByName[name]
	if !ok {
		return nil, fmt.Errorf("unknown ease %q", name)
	}
	return e, nil
}
