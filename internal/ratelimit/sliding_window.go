package ratelimit

import (
	"sync"
	"time"
)

// SlidingWindowCounter enforces a quota over a rolling window using two
// fixed buckets and a weighted sum: the previous window's count decays
// linearly as the current window fills, so the limit stays smooth
// across the boundary without storing per-request timestamps.
//
// Its job here is the 24-hour embedding budget per client: a client who
// spent 80 of 100 calls yesterday morning still has roughly 20 left
// just after the window turns, not a fresh 100.
type SlidingWindowCounter struct {
	mu       sync.Mutex
	current  int
	previous int
	start    time.Time // start of the current window
	window   time.Duration
	limit    int
}

// NewSlidingWindowCounter creates a counter allowing limit requests per
// window. A limit of zero or less returns nil, which every method treats
// as "no quota configured".
func NewSlidingWindowCounter(limit int, window time.Duration) *SlidingWindowCounter {
	if limit <= 0 {
		return nil
	}
	return &SlidingWindowCounter{
		start:  time.Now(),
		window: window,
		limit:  limit,
	}
}

// Allow records a request if quota remains. A nil counter always allows.
func (c *SlidingWindowCounter) Allow() bool {
	if c == nil {
		return true
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	c.rotate()
	if c.weighted() >= float64(c.limit) {
		return false
	}
	c.current++
	return true
}

// Check reports whether quota remains without recording anything. Pairs
// with Consume under the keyed limiter's lock, same contract as
// Limiter.Check.
func (c *SlidingWindowCounter) Check() bool {
	if c == nil {
		return true
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	c.rotate()
	return c.weighted() < float64(c.limit)
}

// Consume records a request after a passed Check.
func (c *SlidingWindowCounter) Consume() {
	if c == nil {
		return
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	c.rotate()
	if c.weighted() < float64(c.limit) {
		c.current++
	}
}

// rotate advances the window pair when the current window has lapsed.
// Callers hold mu.
func (c *SlidingWindowCounter) rotate() {
	elapsed := time.Since(c.start)
	if elapsed < c.window {
		return
	}

	passed := int(elapsed / c.window)
	if passed == 1 {
		c.previous = c.current
	} else {
		// The last recorded window is too old to overlap anything.
		c.previous = 0
	}
	c.current = 0
	c.start = c.start.Add(time.Duration(passed) * c.window)
}

// weighted returns current plus the still-overlapping share of the
// previous window. Callers hold mu.
func (c *SlidingWindowCounter) weighted() float64 {
	overlap := float64(c.window-time.Since(c.start)) / float64(c.window)
	if overlap < 0 {
		overlap = 0
	}
	if overlap > 1 {
		overlap = 1
	}
	return float64(c.current) + float64(c.previous)*overlap
}

// GetEffectiveCount returns the weighted count, used by the cleanup loop
// to spot clients with no live quota usage.
func (c *SlidingWindowCounter) GetEffectiveCount() float64 {
	if c == nil {
		return 0
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	c.rotate()
	return c.weighted()
}

// GetRemaining returns the approximate quota left, or -1 when no quota
// is configured.
func (c *SlidingWindowCounter) GetRemaining() int {
	if c == nil {
		return -1
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	c.rotate()
	left := float64(c.limit) - c.weighted()
	if left < 0 {
		return 0
	}
	return int(left)
}
