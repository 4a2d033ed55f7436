package tween

import "time"

// Animation is anything the engine can drive.
type Animation interface {
	Advance(dt time.Duration)
	Done() bool
}

// Engine advances every running animation once per frame, in the order
// they were added.
type Engine struct {
	running []Animation
}

// NewEngine creates an idle engine.
func NewEngine() *Engine {
	return &Engine{}
}

// Add schedules an animation, typically a Timeline.
func (e *Engine) Add(a Animation) {
	e.running = append(e.running, a)
}

// To starts a tween of target toward to, beginning from its current value.
// Running tweens on the same target are killed first, so the newest
// tween owns the target.
func (e *Engine) To(target Target, to []float64, opts ...Option) *Tween {
	e.KillTweensOf(target)
	t := newTween(target, nil, to, opts)
	e.running = append(e.running, t)
	return t
}

// KillTweensOf stops every standalone tween animating target.
func (e *Engine) KillTweensOf(target Target) {
	for _, a := range e.running {
		if t, ok := a.(*Tween); ok && t.target == target {
			t.Kill()
		}
	}
}

// Advance moves every animation forward by dt and drops finished ones.
func (e *Engine) Advance(dt time.Duration) {
	live := e.running[:0]
	for _, a := range e.running {
		if !a.Done() {
			a.Advance(dt)
		}
		if !a.Done() {
			live = append(live, a)
		}
	}
	clear(e.running[len(live):])
	e.running = live
}

// Active returns the number of unfinished animations.
func (e *Engine) Active() int {
	n := 0
	for _, a := range e.running {
		if !a.Done() {
			n++
		}
	}
	return n
}
