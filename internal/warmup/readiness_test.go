package warmup

import (
	"sync"
	"testing"
	"time"
)

func TestReadinessInitial(t *testing.T) {
	t.Parallel()

	r := NewReadiness(10 * time.Minute)
	if r.Ready() {
		t.Error("Ready() = true before warmup")
	}
	if r.Completed() {
		t.Error("Completed() = true before warmup")
	}

	s := r.Status()
	if s.Ready || s.Reason != "warmup in progress" {
		t.Errorf("Status() = %+v", s)
	}
	if s.TimeoutSeconds != 600 {
		t.Errorf("TimeoutSeconds = %d, want 600", s.TimeoutSeconds)
	}
}

func TestReadinessMarkReady(t *testing.T) {
	t.Parallel()

	r := NewReadiness(10 * time.Minute)
	r.MarkReady()

	if !r.Ready() {
		t.Error("Ready() = false after MarkReady")
	}
	if !r.Completed() {
		t.Error("Completed() = false after MarkReady")
	}
	if s := r.Status(); !s.Ready || s.Reason != "" {
		t.Errorf("Status() = %+v", s)
	}
}

func TestReadinessTimeout(t *testing.T) {
	t.Parallel()

	r := NewReadiness(time.Millisecond)
	time.Sleep(5 * time.Millisecond)

	if !r.Ready() {
		t.Error("Ready() = false after timeout")
	}
	if r.Completed() {
		t.Error("Completed() = true without MarkReady")
	}
	if s := r.Status(); s.Reason == "" {
		t.Error("Status() after timeout should explain the degraded state")
	}
}

func TestReadinessConcurrentAccess(t *testing.T) {
	t.Parallel()

	r := NewReadiness(10 * time.Minute)
	var wg sync.WaitGroup
	for range 20 {
		wg.Add(2)
		go func() {
			defer wg.Done()
			r.MarkReady()
		}()
		go func() {
			defer wg.Done()
			_ = r.Ready()
		}()
	}
	wg.Wait()

	if !r.Completed() {
		t.Error("Completed() = false after concurrent MarkReady")
	}
}
