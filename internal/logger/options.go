package logger

import (
	"context"
	"io"
	"log/slog"

	slogbetterstack "github.com/samber/slog-betterstack"
)

// Options configures optional log shipping destinations.
type Options struct {
	// BetterStackToken enables log shipping to Better Stack when non-empty.
	BetterStackToken string
	// BetterStackEndpoint overrides the default ingest endpoint.
	BetterStackEndpoint string
}

// NewWithOptions creates a logger that writes JSON to w and, when a Better
// Stack token is configured, additionally ships records to Better Stack.
// Remote shipping runs through an async pipeline so ingestion latency never
// blocks the request path. Records from both destinations are enriched with
// tracing values extracted from the context.
func NewWithOptions(level string, w io.Writer, opts Options) *Logger {
	logLevel := parseLevel(level)
	local := newJSONHandler(w, logLevel)

	if opts.BetterStackToken == "" {
		return &Logger{Logger: slog.New(NewContextHandler(local))}
	}

	remote := slogbetterstack.Option{
		Token:    opts.BetterStackToken,
		Endpoint: opts.BetterStackEndpoint,
		Level:    logLevel,
	}.NewBetterstackHandler()
	async := NewAsyncHandler(remote, AsyncOptions{})

	handler := NewContextHandler(NewMultiHandler(local, async))
	return &Logger{Logger: slog.New(handler), async: async}
}

// Shutdown flushes buffered remote log records. It is a no-op when no
// remote destination is configured.
func (l *Logger) Shutdown(ctx context.Context) error {
	if l == nil || l.async == nil {
		return nil
	}
	return l.async.Shutdown(ctx)
}
