package clock

import "time"

// FrameClock measures elapsed time between ticks in tick units
// One unit is one frame at the nominal tick rate, so a 60 Hz loop yields ~1.0 per tick
type FrameClock struct {
	provider TimeProvider
	unit     time.Duration
	maxDelta float64
	last     time.Time
	started  bool
}

// NewFrameClock creates a clock; deltas above maxDelta are clamped so a stall
// does not skip playback forward
func NewFrameClock(provider TimeProvider, unit time.Duration, maxDelta float64) *FrameClock {
	return &FrameClock{
		provider: provider,
		unit:     unit,
		maxDelta: maxDelta,
	}
}

// Tick returns the delta since the previous Tick in tick units
// The first call returns 1.0
func (c *FrameClock) Tick() float64 {
	now := c.provider.Now()
	if !c.started {
		c.started = true
		c.last = now
		return 1.0
	}

	elapsed := now.Sub(c.last)
	c.last = now
	if elapsed <= 0 {
		return 0
	}

	dt := float64(elapsed) / float64(c.unit)
	if dt > c.maxDelta {
		dt = c.maxDelta
	}
	return dt
}

// Reset drops the previous reading so the next Tick starts fresh
// Used after the loop idled so the idle gap is not replayed
func (c *FrameClock) Reset() {
	c.started = false
}
