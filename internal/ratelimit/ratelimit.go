// Package ratelimit provides the throttles the chatbot runs behind: a
// token bucket for request pacing, a per-client keyed variant for the
// chat endpoint, and a sliding-window counter for the daily embedding
// budget.
package ratelimit

import (
	"context"
	"sync"
	"time"
)

// Limiter is a token bucket. The bucket holds at most burst tokens,
// gains rate tokens per second, and each request spends one. It guards
// the chat endpoint's global throughput and paces calls to the
// embedding APIs.
//
// Safe for concurrent use.
type Limiter struct {
	mu    sync.Mutex
	avail float64
	burst float64
	rate  float64 // tokens added per second
	last  time.Time
}

// New creates a full bucket holding burst tokens that refills at rate
// tokens per second.
//
//	// 100 chat requests per second, bursts of 100
//	ratelimit.New(100, 100)
func New(burst, rate float64) *Limiter {
	return &Limiter{
		avail: burst,
		burst: burst,
		rate:  rate,
		last:  time.Now(),
	}
}

// NewPerMinute creates a limiter from a per-minute quota, the shape
// embedding providers publish their limits in. The burst is two seconds
// of quota so short runs of queries do not queue behind the refill.
func NewPerMinute(perMinute float64) *Limiter {
	perSecond := perMinute / 60
	return &Limiter{
		avail: perSecond,
		burst: perSecond * 2,
		rate:  perSecond,
		last:  time.Now(),
	}
}

// advance credits tokens for the time since the last update. Callers
// hold mu.
func (l *Limiter) advance() {
	now := time.Now()
	l.avail += now.Sub(l.last).Seconds() * l.rate
	if l.avail > l.burst {
		l.avail = l.burst
	}
	l.last = now
}

// Allow spends one token if one is available. Non-blocking; a false
// return means the caller should reject the request.
func (l *Limiter) Allow() bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.advance()
	if l.avail >= 1 {
		l.avail--
		return true
	}
	return false
}

// Check reports whether a token is available without spending it.
// Check and Consume are separate so the keyed limiter can test both its
// bucket and its daily counter before committing either; the pair is
// only atomic under the caller's own lock.
func (l *Limiter) Check() bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.advance()
	return l.avail >= 1
}

// Consume spends a token after a passed Check. See Check for the
// locking contract.
func (l *Limiter) Consume() {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.advance()
	if l.avail >= 1 {
		l.avail--
	}
}

// Wait blocks until a token is available or ctx is done. The wait time
// is computed from the deficit rather than polled, so an embedding call
// sleeps exactly as long as the provider quota requires.
func (l *Limiter) Wait(ctx context.Context) error {
	for {
		l.mu.Lock()
		l.advance()
		if l.avail >= 1 {
			l.avail--
			l.mu.Unlock()
			return nil
		}
		wait := time.Duration((1 - l.avail) / l.rate * float64(time.Second))
		l.mu.Unlock()

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(wait):
		}
	}
}

// Available returns the token count right now, for gauges and tests.
func (l *Limiter) Available() float64 {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.advance()
	return l.avail
}

// IsFull reports a bucket back at capacity. The keyed limiter's cleanup
// loop treats a full bucket as an idle client worth evicting.
func (l *Limiter) IsFull() bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.advance()
	return l.avail >= l.burst
}
