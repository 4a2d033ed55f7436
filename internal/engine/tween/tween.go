// Package tween animates vectors of numeric channels on top of gween.
// Each channel is a gween tween; this package adds multi-channel targets,
// start values captured on first render, timelines that render their
// fromTo start state up front, and overwrite of earlier tweens.
package tween

import (
	"time"

	"github.com/tanema/gween"
)

// DefaultDuration matches the customary half-second tween.
const DefaultDuration = 500 * time.Millisecond

// Target is an object whose state is a vector of float channels,
// such as a scale (x, y, z) or a color (r, g, b).
type Target interface {
	Channels() []float64
	SetChannels(v []float64)
}

// Accessor adapts a getter/setter pair into a Target.
type Accessor struct {
	Get func() []float64
	Set func([]float64)
}

// Channels implements Target.
func (a *Accessor) Channels() []float64 { return a.Get() }

// SetChannels implements Target.
func (a *Accessor) SetChannels(v []float64) { a.Set(v) }

// Scalar adapts a single float32 field into a Target.
type Scalar struct {
	Value *float32
}

// Channels implements Target.
func (s Scalar) Channels() []float64 { return []float64{float64(*s.Value)} }

// SetChannels implements Target.
func (s Scalar) SetChannels(v []float64) { *s.Value = float32(v[0]) }

// Option configures a tween.
type Option func(*Tween)

// WithDuration sets the tween length.
func WithDuration(d time.Duration) Option {
	return func(t *Tween) { t.duration = d }
}

// WithEase sets the easing curve.
func WithEase(e Ease) Option {
	return func(t *Tween) { t.ease = e }
}

// OnComplete registers a callback fired once when the tween ends.
func OnComplete(fn func()) Option {
	return func(t *Tween) { t.onComplete = fn }
}

// Tween interpolates a target from one channel vector to another.
type Tween struct {
	target     Target
	from       []float64
	to         []float64
	duration   time.Duration
	ease       Ease
	onComplete func()

	channels []*gween.Tween
	elapsed  time.Duration
	started  bool
	done     bool
	killed   bool
}

func newTween(target Target, from, to []float64, opts []Option) *Tween {
	t := &Tween{
		target:   target,
		from:     from,
		to:       to,
		duration: DefaultDuration,
		ease:     DefaultEase,
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Duration returns the tween length.
func (t *Tween) Duration() time.Duration {
	return t.duration
}

// Done reports whether the tween reached its end or was killed.
func (t *Tween) Done() bool {
	return t.done || t.killed
}

// Progress returns the linear progress in [0,1].
func (t *Tween) Progress() float64 {
	if t.duration <= 0 {
		if t.started {
			return 1
		}
		return 0
	}
	return min(float64(t.elapsed)/float64(t.duration), 1)
}

// Kill stops the tween where it is.
func (t *Tween) Kill() {
	t.killed = true
}

// Advance moves the tween forward by dt.
func (t *Tween) Advance(dt time.Duration) {
	t.Seek(t.elapsed + dt)
}

// Seek renders the tween at local time at. Times before zero are ignored;
// a tween without an explicit start captures the target's current value
// the first time it renders.
func (t *Tween) Seek(at time.Duration) {
	if t.killed || t.done || at < 0 {
		return
	}
	if !t.started {
		t.start()
	}
	t.elapsed = min(at, t.duration)

	if t.elapsed >= t.duration {
		t.target.SetChannels(append([]float64(nil), t.to...))
		t.done = true
		if t.onComplete != nil {
			t.onComplete()
		}
		return
	}

	sec := float32(t.elapsed.Seconds())
	v := make([]float64, len(t.channels))
	for i, ch := range t.channels {
		cur, _ := ch.Set(sec)
		v[i] = float64(cur)
	}
	t.target.SetChannels(v)
}

func (t *Tween) start() {
	t.started = true
	if t.from == nil {
		t.from = t.target.Channels()
	}
	d := float32(t.duration.Seconds())
	t.channels = make([]*gween.Tween, len(t.to))
	for i := range t.to {
		t.channels[i] = gween.New(float32(t.from[i]), float32(t.to[i]), d, t.ease)
	}
}

// renderFrom sets the target to the start values without starting the tween.
func (t *Tween) renderFrom() {
	if t.from != nil {
		t.target.SetChannels(append([]float64(nil), t.from...))
	}
}
