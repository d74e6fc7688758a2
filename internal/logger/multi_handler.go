package logger

import (
	"context"
	"errors"
	"log/slog"
)

// MultiHandler sends each record to every destination: locally to the
// JSON writer and remotely through the async Better Stack pipeline.
// Destinations fail independently; one sink erroring never stops the
// others from receiving the record.
type MultiHandler struct {
	sinks []slog.Handler
}

// NewMultiHandler combines the given handlers. Nils are skipped so the
// caller can pass an optional remote sink unconditionally.
func NewMultiHandler(sinks ...slog.Handler) *MultiHandler {
	kept := make([]slog.Handler, 0, len(sinks))
	for _, s := range sinks {
		if s != nil {
			kept = append(kept, s)
		}
	}
	return &MultiHandler{sinks: kept}
}

// Enabled is true when any destination wants the level, so a debug-level
// remote sink still sees records the local handler filters out.
func (h *MultiHandler) Enabled(ctx context.Context, level slog.Level) bool {
	for _, s := range h.sinks {
		if s.Enabled(ctx, level) {
			return true
		}
	}
	return false
}

// Handle delivers the record to every enabled destination. Each sink
// gets its own clone; sinks mutate records while serializing. Errors
// are joined so a Better Stack failure surfaces without hiding a local
// write failure.
func (h *MultiHandler) Handle(ctx context.Context, r slog.Record) error {
	var errs []error
	for _, s := range h.sinks {
		if !s.Enabled(ctx, r.Level) {
			continue
		}
		if err := s.Handle(ctx, r.Clone()); err != nil {
			errs = append(errs, err)
		}
	}
	if len(errs) == 0 {
		return nil
	}
	return errors.Join(errs...)
}

// WithAttrs applies the attributes to every destination.
func (h *MultiHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	next := make([]slog.Handler, 0, len(h.sinks))
	for _, s := range h.sinks {
		next = append(next, s.WithAttrs(attrs))
	}
	return &MultiHandler{sinks: next}
}

// WithGroup applies the group to every destination.
func (h *MultiHandler) WithGroup(name string) slog.Handler {
	next := make([]slog.Handler, 0, len(h.sinks))
	for _, s := range h.sinks {
		next = append(next, s.WithGroup(name))
	}
	return &MultiHandler{sinks: next}
}
