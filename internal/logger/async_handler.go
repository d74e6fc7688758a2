package logger

import (
	"context"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"
)

const (
	// Room for a burst of chat-request log lines while Better Stack
	// ingestion is slow; beyond this, records are dropped, never queued
	// unbounded.
	defaultShipBuffer = 1024

	defaultShipFlush = 5 * time.Second
)

// AsyncOptions sizes the remote shipping pipeline.
type AsyncOptions struct {
	BufferSize   int
	FlushTimeout time.Duration
}

// shipment is one record queued for the remote sink.
type shipment struct {
	ctx    context.Context
	record slog.Record
	sink   slog.Handler
}

// shipper drains the queue on a single goroutine so remote ingest
// latency never adds to a request's response time. Overflow increments
// dropped and the record is lost; the local JSON handler already wrote
// it.
type shipper struct {
	queue   chan shipment
	flush   time.Duration
	closed  atomic.Bool
	done    sync.WaitGroup
	dropped atomic.Uint64
}

func newShipper(opts AsyncOptions) *shipper {
	size := opts.BufferSize
	if size <= 0 {
		size = defaultShipBuffer
	}
	flush := opts.FlushTimeout
	if flush <= 0 {
		flush = defaultShipFlush
	}

	s := &shipper{
		queue: make(chan shipment, size),
		flush: flush,
	}
	s.done.Add(1)
	go s.drain()
	return s
}

func (s *shipper) drain() {
	defer s.done.Done()
	for sh := range s.queue {
		_ = sh.sink.Handle(sh.ctx, sh.record)
	}
}

func (s *shipper) enqueue(ctx context.Context, record slog.Record, sink slog.Handler) {
	if s.closed.Load() {
		return
	}
	select {
	case s.queue <- shipment{ctx: ctx, record: record, sink: sink}:
	default:
		s.dropped.Add(1)
	}
}

// stop closes the queue and waits for the backlog to ship, bounded by
// the flush timeout when ctx carries no deadline of its own.
func (s *shipper) stop(ctx context.Context) error {
	if s.closed.Swap(true) {
		return nil
	}
	if _, hasDeadline := ctx.Deadline(); !hasDeadline {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.flush)
		defer cancel()
	}
	close(s.queue)

	drained := make(chan struct{})
	go func() {
		s.done.Wait()
		close(drained)
	}()
	select {
	case <-drained:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// AsyncHandler decouples a slow remote handler from the caller: Handle
// enqueues and returns, the shipper delivers. The chatbot uses it in
// front of the Better Stack sink.
type AsyncHandler struct {
	shipper *shipper
	sink    slog.Handler
}

// NewAsyncHandler wraps sink with its own shipping goroutine.
func NewAsyncHandler(sink slog.Handler, opts AsyncOptions) *AsyncHandler {
	return &AsyncHandler{
		shipper: newShipper(opts),
		sink:    sink,
	}
}

func (h *AsyncHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return h.sink.Enabled(ctx, level)
}

// Handle enqueues a clone of the record. Cloning matters: the caller
// may reuse the record's backing array after Handle returns.
func (h *AsyncHandler) Handle(ctx context.Context, r slog.Record) error {
	if !h.sink.Enabled(ctx, r.Level) {
		return nil
	}
	h.shipper.enqueue(ctx, r.Clone(), h.sink)
	return nil
}

// WithAttrs derives a handler over the attributed sink. The shipper is
// shared so all derived handlers drain through one goroutine.
func (h *AsyncHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &AsyncHandler{shipper: h.shipper, sink: h.sink.WithAttrs(attrs)}
}

func (h *AsyncHandler) WithGroup(name string) slog.Handler {
	return &AsyncHandler{shipper: h.shipper, sink: h.sink.WithGroup(name)}
}

// Shutdown ships the queued backlog, bounded by ctx or the configured
// flush timeout. Safe on a nil handler so Logger.Shutdown needs no
// remote-configured check.
func (h *AsyncHandler) Shutdown(ctx context.Context) error {
	if h == nil || h.shipper == nil {
		return nil
	}
	return h.shipper.stop(ctx)
}
