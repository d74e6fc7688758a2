// Package ctxutil provides type-safe context value management.
// Uses private key types to prevent collisions.
package ctxutil

import (
	"context"
)

type contextKey string

const (
	clientIDKey  contextKey = "ctxutil.clientID"
	requestIDKey contextKey = "ctxutil.requestID"
)

// WithClientID adds a client identifier to the context.
// Client ID is the caller's identity (remote IP or API key name) and is used
// for rate limiting and log correlation.
func WithClientID(ctx context.Context, clientID string) context.Context {
	return context.WithValue(ctx, clientIDKey, clientID)
}

// GetClientID retrieves the client ID from the context.
// Returns the client ID if found, empty string otherwise.
func GetClientID(ctx context.Context) string {
	if v := ctx.Value(clientIDKey); v != nil {
		if clientID, ok := v.(string); ok && clientID != "" {
			return clientID
		}
	}
	return ""
}

// WithRequestID adds a request ID to the context for tracing.
// Request ID is generated per HTTP request for log correlation.
func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, requestIDKey, requestID)
}

// GetRequestID retrieves the request ID from the context.
// Returns the request ID and true if found, empty string and false otherwise.
func GetRequestID(ctx context.Context) (string, bool) {
	requestID, ok := ctx.Value(requestIDKey).(string)
	return requestID, ok
}

// PreserveTracing creates a detached context that preserves tracing values.
// The new context is independent of the parent's cancellation and deadlines.
//
// This function creates a fresh context.Background() and copies only tracing
// values, avoiding memory leaks from retaining parent context references
// (Go issue #64478). Use for background work that must outlive the HTTP
// request that triggered it, such as snapshot uploads.
func PreserveTracing(ctx context.Context) context.Context {
	newCtx := context.Background()

	if clientID := GetClientID(ctx); clientID != "" {
		newCtx = WithClientID(newCtx, clientID)
	}
	if requestID, ok := GetRequestID(ctx); ok && requestID != "" {
		newCtx = WithRequestID(newCtx, requestID)
	}

	return newCtx
}
