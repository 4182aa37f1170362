package engine

import (
	"sync"
	"time"
)

// ManualClock is a TimeProvider driven by hand.
// With a step set, every Now call first moves the clock forward by it, so a running
// FrameDriver publishes frames exactly step apart regardless of wall time.
type ManualClock struct {
	mu   sync.Mutex
	now  time.Time
	step time.Duration
}

func NewManualClock(start time.Time) *ManualClock {
	return &ManualClock{now: start}
}

// Now returns the clock's time, after applying the auto step if one is set
func (c *ManualClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(c.step)
	return c.now
}

// Set jumps to t; jumping backwards is allowed
func (c *ManualClock) Set(t time.Time) {
	c.mu.Lock()
	c.now = t
	c.mu.Unlock()
}

// Advance moves the clock forward and returns the new time
func (c *ManualClock) Advance(d time.Duration) time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
	return c.now
}

// AutoStep makes each Now call advance by d; zero turns it off
func (c *ManualClock) AutoStep(d time.Duration) {
	c.mu.Lock()
	c.step = d
	c.mu.Unlock()
}
