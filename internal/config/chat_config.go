package config

import (
	"fmt"
	"time"
)

// ChatConfig centralizes chat pipeline configuration.
// This keeps request limits and rate limiting knobs in one place.
type ChatConfig struct {
	// Request handling
	QueryTimeout   time.Duration // Timeout for answering a single query (see config/timeouts.go)
	MaxQueryLength int           // Maximum accepted question length in bytes

	// Per-client rate limiting (token bucket)
	ClientRateBurst  float64 // Maximum burst tokens per client (default: 15)
	ClientRateRefill float64 // Tokens refilled per second (default: 0.5 = 1 per 2s)

	// Embedding API rate limiting (multi-layer: hourly + daily)
	EmbeddingRateBurst  float64 // Maximum burst tokens for embedding calls (default: 40)
	EmbeddingRateRefill float64 // Embedding tokens refilled per hour (default: 20)
	EmbeddingRateDaily  int     // Maximum embedding requests per day (default: 500, 0 = disabled)

	// Global rate limiting
	GlobalRateRPS float64 // Global rate limit in requests per second (default: 100)
}

// Validate checks if the configuration is valid.
// Returns error describing validation failures.
func (c *ChatConfig) Validate() error {
	if c.QueryTimeout <= 0 {
		return fmt.Errorf("query timeout must be positive, got %v", c.QueryTimeout)
	}

	if c.MaxQueryLength < 1 {
		return fmt.Errorf("max query length must be positive, got %d", c.MaxQueryLength)
	}

	if c.ClientRateBurst <= 0 {
		return fmt.Errorf("client rate burst must be positive, got %f", c.ClientRateBurst)
	}

	if c.ClientRateRefill <= 0 {
		return fmt.Errorf("client rate refill must be positive, got %f", c.ClientRateRefill)
	}

	if c.EmbeddingRateBurst <= 0 {
		return fmt.Errorf("embedding rate burst must be positive, got %f", c.EmbeddingRateBurst)
	}

	if c.EmbeddingRateRefill <= 0 {
		return fmt.Errorf("embedding rate refill must be positive, got %f", c.EmbeddingRateRefill)
	}

	if c.EmbeddingRateDaily < 0 {
		return fmt.Errorf("embedding daily limit cannot be negative, got %d", c.EmbeddingRateDaily)
	}

	if c.GlobalRateRPS <= 0 {
		return fmt.Errorf("global rate limit RPS must be positive, got %f", c.GlobalRateRPS)
	}

	return nil
}
