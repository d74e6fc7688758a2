// Package sentry wires the chatbot's error reporting to Better Stack
// Errors, which speaks the Sentry protocol. The wrapper owns DSN
// assembly from the Better Stack token and tags every event with the
// request and client identifiers the HTTP middleware put in context.
package sentry

import (
	"context"
	"fmt"
	"time"

	"github.com/getsentry/sentry-go"

	"github.com/campustrack/chatbot-go/internal/ctxutil"
)

// Config holds the Better Stack Errors connection settings.
type Config struct {
	// Token is the Better Stack Errors application token. Empty
	// disables reporting entirely.
	Token string

	// Host is the ingesting host, e.g. "errors.betterstack.com".
	Host string

	// Environment names the deployment, e.g. "production".
	Environment string

	// Release is the chatbot build version (from buildinfo).
	Release string

	// SampleRate is the fraction of errors to report, 0 < r <= 1.
	// Zero or less falls back to reporting everything.
	SampleRate float64

	// Debug turns on SDK-level logging.
	Debug bool
}

// Initialize configures the SDK. With no token it is a no-op and every
// capture helper silently does nothing, so callers never need to guard.
// The DSN is https://$TOKEN@$HOST/1; Better Stack ignores the project
// ID but the SDK requires one.
func Initialize(cfg Config) error {
	if cfg.Token == "" {
		return nil
	}
	if cfg.Host == "" {
		return fmt.Errorf("sentry host is required when token is provided")
	}

	sampleRate := cfg.SampleRate
	if sampleRate <= 0 {
		sampleRate = 1.0
	}

	return sentry.Init(sentry.ClientOptions{
		Dsn:              fmt.Sprintf("https://%s@%s/1", cfg.Token, cfg.Host),
		ServerName:       "campus-chatbot",
		Environment:      cfg.Environment,
		Release:          cfg.Release,
		SampleRate:       sampleRate,
		Debug:            cfg.Debug,
		AttachStacktrace: true,
	})
}

// Flush blocks until buffered events are delivered or the timeout
// passes. Called during shutdown after the HTTP server drains.
func Flush(timeout time.Duration) bool {
	return sentry.Flush(timeout)
}

// IsEnabled reports whether Initialize configured a live client.
func IsEnabled() bool {
	return sentry.CurrentHub().Client() != nil
}

// CaptureException reports an error with no request attached, e.g. a
// warmup or backup job failure.
func CaptureException(err error) {
	sentry.CaptureException(err)
}

// CaptureExceptionWithContext reports an error from a request path,
// tagging the event with the request ID and client ID carried in ctx so
// the report lines up with the corresponding log lines.
func CaptureExceptionWithContext(ctx context.Context, err error) {
	hub := sentry.GetHubFromContext(ctx)
	if hub == nil {
		hub = sentry.CurrentHub()
	}
	hub.WithScope(func(scope *sentry.Scope) {
		if requestID, ok := ctxutil.GetRequestID(ctx); ok {
			scope.SetTag("request_id", requestID)
		}
		if clientID := ctxutil.GetClientID(ctx); clientID != "" {
			scope.SetTag("client_id", clientID)
		}
		hub.CaptureException(err)
	})
}

// CaptureMessage reports a plain message event.
func CaptureMessage(message string) {
	sentry.CaptureMessage(message)
}
