// Package config provides centralized timeout constants for the application.
//
// These values are tuned based on:
//   - Chat UX expectations (answers should land within a few seconds)
//   - Embedding API response times (Gemini/OpenAI latency plus retries)
//   - SQLite performance characteristics (WAL mode, busy timeout)
package config

import "time"

// Query timeouts
const (
	// QueryProcessing is the timeout for answering a single chat query.
	// This includes rule evaluation, database lookups, FAQ scoring, and a
	// potential embedding call for the semantic fallback.
	QueryProcessing = 15 * time.Second

	// HTTPRead is the HTTP server read timeout.
	// Should be short since clients send small JSON payloads.
	HTTPRead = 10 * time.Second

	// HTTPWrite is the HTTP server write timeout.
	// Should accommodate QueryProcessing + response serialization.
	HTTPWrite = 20 * time.Second

	// HTTPIdle is the HTTP server idle timeout for keep-alive connections.
	HTTPIdle = 120 * time.Second
)

// Embedding timeouts
const (
	// EmbeddingRequest is the timeout for a single embedding API call.
	// Typical responses arrive in 1-5s; the margin covers retry backoff.
	EmbeddingRequest = 30 * time.Second

	// EmbeddingRetryInitial is the initial delay before retrying a failed call.
	// Uses exponential backoff with jitter: 2s -> 4s -> 8s -> 16s -> 32s
	EmbeddingRetryInitial = 2 * time.Second
)

// Database timeouts
const (
	// DatabaseBusyTimeout is SQLite busy_timeout pragma value.
	// Handles concurrent write contention during seed and status updates.
	DatabaseBusyTimeout = 30 * time.Second

	// DatabaseConnMaxLifetime is the maximum lifetime of database connections.
	// Prevents stale connections and allows connection pool refresh.
	DatabaseConnMaxLifetime = time.Hour
)

// Background job intervals
const (
	// StatusPruneInterval is how often resolved daily status rows past the
	// retention window are deleted.
	StatusPruneInterval = 12 * time.Hour

	// StatusPruneInitialDelay is the delay before the first prune run.
	// Allows the server to stabilize before touching the database.
	StatusPruneInitialDelay = 5 * time.Minute

	// MetricsUpdateInterval is how often catalog size metrics are updated.
	MetricsUpdateInterval = 5 * time.Minute

	// RateLimiterCleanupInterval is how often inactive client limiters are cleaned.
	RateLimiterCleanupInterval = 5 * time.Minute
)

// Warmup timeouts
const (
	// WarmupIndexBuild is the timeout for building the intent and syllabus
	// indexes at startup. Embedding the full example catalog can take a
	// few minutes on cold caches.
	WarmupIndexBuild = 5 * time.Minute
)

// Semantic search timeouts
const (
	// SemanticSearchTimeout is the timeout for semantic search operations.
	// This includes the embedding API call and vector similarity search.
	SemanticSearchTimeout = 30 * time.Second
)

// Graceful shutdown
const (
	// GracefulShutdown is the timeout for graceful server shutdown.
	// Allows in-flight requests to complete before forceful termination.
	GracefulShutdown = 30 * time.Second
)
