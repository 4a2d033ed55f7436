package tween

import "time"

// Timeline plays tweens back to back: each child starts when the previous
// one ends.
type Timeline struct {
	defaults []Option
	children []*Tween
	starts   []time.Duration
	end      time.Duration
	elapsed  time.Duration
	done     bool
}

// NewTimeline creates a timeline whose children inherit defaults.
func NewTimeline(defaults ...Option) *Timeline {
	return &Timeline{defaults: defaults}
}

// FromTo appends a tween from explicit start values. The start values are
// rendered immediately, so the target holds its initial state before the
// tween's turn comes.
func (tl *Timeline) FromTo(target Target, from, to []float64, opts ...Option) *Tween {
	t := tl.append(target, from, to, opts)
	t.renderFrom()
	return t
}

func (tl *Timeline) append(target Target, from, to []float64, opts []Option) *Tween {
	all := append(append([]Option{}, tl.defaults...), opts...)
	t := newTween(target, from, to, all)
	tl.children = append(tl.children, t)
	tl.starts = append(tl.starts, tl.end)
	tl.end += t.duration
	tl.done = false
	return t
}

// Duration returns the total length of the timeline.
func (tl *Timeline) Duration() time.Duration {
	return tl.end
}

// Elapsed returns the current playhead position.
func (tl *Timeline) Elapsed() time.Duration {
	return tl.elapsed
}

// Children returns the tweens in play order.
func (tl *Timeline) Children() []*Tween {
	return tl.children
}

// Done reports whether the playhead reached the end.
func (tl *Timeline) Done() bool {
	return tl.done
}

// Advance moves the playhead by dt, rendering every child whose start has
// been reached, in order.
func (tl *Timeline) Advance(dt time.Duration) {
	if tl.done {
		return
	}
	tl.elapsed = min(tl.elapsed+dt, tl.end)
	for i, child := range tl.children {
		local := tl.elapsed - tl.starts[i]
		if local < 0 {
			break
		}
		child.Seek(local)
	}
	tl.done = tl.elapsed >= tl.end
}
