// Package clock converts wall-clock timestamps into elapsed game time.
//
// The timer and farm engines never keep their own countdowns as the source of
// truth: they recompute from persisted timestamps, which keeps them correct after
// the process was suspended and resumed.
package clock

import (
	"math"
	"sync"
	"time"
)

// Clock provides an abstraction for time operations
type Clock interface {
	// Now returns the current time
	Now() time.Time
}

// RealClock uses the actual system time
type RealClock struct{}

// NewRealClock creates a new RealClock instance
func NewRealClock() *RealClock {
	return &RealClock{}
}

// Now returns the current system time
func (c *RealClock) Now() time.Time {
	return time.Now()
}

// SimulatedClock allows time manipulation for testing and offline replay
type SimulatedClock struct {
	mu      sync.RWMutex
	current time.Time
}

// NewSimulatedClock creates a new SimulatedClock starting at the given time
func NewSimulatedClock(start time.Time) *SimulatedClock {
	return &SimulatedClock{current: start}
}

// Now returns the simulated current time
func (c *SimulatedClock) Now() time.Time {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.current
}

// Advance moves the simulated time forward by the given duration
func (c *SimulatedClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.current = c.current.Add(d)
}

// Set sets the simulated time to a specific value
func (c *SimulatedClock) Set(t time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.current = t
}

// Elapsed returns the duration between since and now, clamped at zero
func Elapsed(since, now time.Time) time.Duration {
	d := now.Sub(since)
	if d < 0 {
		return 0
	}
	return d
}

// ElapsedSeconds returns the whole seconds between since and now.
// A now earlier than since (clock skew, corrupted save) yields 0.
func ElapsedSeconds(since, now time.Time) int {
	return int(Elapsed(since, now) / time.Second)
}

// ResyncCountdown returns the seconds remaining until end, rounded to the nearest second
// and never negative.
func ResyncCountdown(end, now time.Time) int {
	remaining := end.Sub(now).Seconds()
	if remaining <= 0 {
		return 0
	}
	return int(math.Round(remaining))
}
