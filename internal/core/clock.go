package core

import "time"

// Clock supplies the wall-clock time used to measure elapsed time between ticks.
type Clock interface {
	Now() time.Time
}

// SystemClock reads the real time.
type SystemClock struct{}

// Now returns time.Now().
func (SystemClock) Now() time.Time {
	return time.Now()
}

// ManualClock is a Clock that only moves when told to. Used for deterministic runs.
type ManualClock struct {
	now time.Time
}

// NewManualClock creates a manual clock starting at t.
func NewManualClock(t time.Time) *ManualClock {
	return &ManualClock{now: t}
}

// Now returns the current manual time.
func (c *ManualClock) Now() time.Time {
	return c.now
}

// Advance moves the clock forward by d.
func (c *ManualClock) Advance(d time.Duration) {
	c.now = c.now.Add(d)
}
