package debug

import "time"

// FPSCounter counts frames and reports the rate once per window.
type FPSCounter struct {
	window time.Duration
	frames int
	start  time.Time
}

// NewFPSCounter reports every window.
func NewFPSCounter(window time.Duration) *FPSCounter {
	return &FPSCounter{window: window}
}

// Frame records a frame at now. When a full window has elapsed it returns
// the average rate over that window and true, and starts a new window.
func (c *FPSCounter) Frame(now time.Time) (float64, bool) {
	if c.start.IsZero() {
		c.start = now
	}
	c.frames++
	elapsed := now.Sub(c.start)
	if elapsed < c.window {
		return 0, false
	}
	fps := float64(c.frames) / elapsed.Seconds()
	c.frames = 0
	c.start = now
	return fps, true
}

// Reset discards the current window, e.g. after the loop was paused.
func (c *FPSCounter) Reset() {
	c.frames = 0
	c.start = time.Time{}
}
