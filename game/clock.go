package game

import (
	"sync"
	"time"
)

// Clock reports game time in seconds since the clock started
type Clock interface {
	Now() float64
}

// WallClock reads the monotonic system clock
type WallClock struct {
	start time.Time
}

// NewWallClock creates a clock that starts at zero now
func NewWallClock() *WallClock {
	return &WallClock{start: time.Now()}
}

// Now returns seconds elapsed since the clock was created
func (c *WallClock) Now() float64 {
	return time.Since(c.start).Seconds()
}

// ManualClock only moves when told to. Used by tests and the headless runner.
type ManualClock struct {
	mu  sync.RWMutex
	now float64
}

// NewManualClock creates a manual clock at the given time
func NewManualClock(start float64) *ManualClock {
	return &ManualClock{now: start}
}

// Now returns the current manual time
func (c *ManualClock) Now() float64 {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.now
}

// Set jumps to an absolute time
func (c *ManualClock) Set(t float64) {
	c.mu.Lock()
	c.now = t
	c.mu.Unlock()
}

// Advance moves the clock forward
func (c *ManualClock) Advance(seconds float64) {
	c.mu.Lock()
	c.now += seconds
	c.mu.Unlock()
}
