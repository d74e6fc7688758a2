package warmup

import (
	"sync/atomic"
	"time"
)

// Readiness gates /readyz on the first warmup run. The service reports
// ready once warmup finishes, or once the timeout passes so a slow
// embedding provider cannot keep the instance out of rotation forever.
type Readiness struct {
	done    atomic.Bool
	started time.Time
	timeout time.Duration
}

// Status is the /readyz response body.
type Status struct {
	Ready          bool   `json:"ready"`
	Reason         string `json:"reason,omitempty"`
	ElapsedSeconds int    `json:"elapsed_seconds,omitempty"`
	TimeoutSeconds int    `json:"timeout_seconds,omitempty"`
}

// NewReadiness starts the clock. The state begins not-ready.
func NewReadiness(timeout time.Duration) *Readiness {
	return &Readiness{started: time.Now(), timeout: timeout}
}

// MarkReady records that warmup finished.
func (r *Readiness) MarkReady() {
	r.done.Store(true)
}

// Ready reports whether the instance should receive traffic.
func (r *Readiness) Ready() bool {
	return r.done.Load() || time.Since(r.started) >= r.timeout
}

// Completed reports whether warmup actually finished, ignoring the
// timeout escape hatch.
func (r *Readiness) Completed() bool {
	return r.done.Load()
}

// Status returns the current state for the readiness endpoint.
func (r *Readiness) Status() Status {
	ready := r.Ready()
	s := Status{
		Ready:          ready,
		ElapsedSeconds: int(time.Since(r.started).Seconds()),
		TimeoutSeconds: int(r.timeout.Seconds()),
	}
	if !ready {
		s.Reason = "warmup in progress"
	} else if !r.done.Load() {
		s.Reason = "timeout reached (warmup may still be running)"
	}
	return s
}
