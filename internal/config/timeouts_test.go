package config

import (
	"testing"
	"time"
)

// TestQueryTimeouts verifies query-related timeout constants
func TestQueryTimeouts(t *testing.T) {
	tests := []struct {
		name     string
		got      time.Duration
		expected time.Duration
	}{
		{"QueryProcessing", QueryProcessing, 15 * time.Second},
		{"HTTPRead", HTTPRead, 10 * time.Second},
		{"HTTPWrite", HTTPWrite, 20 * time.Second},
		{"HTTPIdle", HTTPIdle, 120 * time.Second},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.expected {
				t.Errorf("%s = %v, want %v", tt.name, tt.got, tt.expected)
			}
		})
	}
}

// TestEmbeddingTimeouts verifies embedding-related timeout constants
func TestEmbeddingTimeouts(t *testing.T) {
	tests := []struct {
		name     string
		got      time.Duration
		expected time.Duration
	}{
		{"EmbeddingRequest", EmbeddingRequest, 30 * time.Second},
		{"EmbeddingRetryInitial", EmbeddingRetryInitial, 2 * time.Second},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.expected {
				t.Errorf("%s = %v, want %v", tt.name, tt.got, tt.expected)
			}
		})
	}
}

// TestDatabaseTimeouts verifies database-related timeout constants
func TestDatabaseTimeouts(t *testing.T) {
	tests := []struct {
		name     string
		got      time.Duration
		expected time.Duration
	}{
		{"DatabaseBusyTimeout", DatabaseBusyTimeout, 30 * time.Second},
		{"DatabaseConnMaxLifetime", DatabaseConnMaxLifetime, time.Hour},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.expected {
				t.Errorf("%s = %v, want %v", tt.name, tt.got, tt.expected)
			}
		})
	}
}

// TestTimeoutRelationships verifies that timeouts have proper relationships
func TestTimeoutRelationships(t *testing.T) {
	// HTTPWrite should be greater than QueryProcessing
	if HTTPWrite <= QueryProcessing {
		t.Errorf("HTTPWrite (%v) should be > QueryProcessing (%v)",
			HTTPWrite, QueryProcessing)
	}

	// HTTPIdle should be greater than HTTPWrite
	if HTTPIdle <= HTTPWrite {
		t.Errorf("HTTPIdle (%v) should be > HTTPWrite (%v)",
			HTTPIdle, HTTPWrite)
	}

	// EmbeddingRequest should be greater than EmbeddingRetryInitial
	if EmbeddingRequest <= EmbeddingRetryInitial {
		t.Errorf("EmbeddingRequest (%v) should be > EmbeddingRetryInitial (%v)",
			EmbeddingRequest, EmbeddingRetryInitial)
	}

	// SemanticSearchTimeout must leave room inside the warmup window for
	// the full example catalog to be embedded.
	if SemanticSearchTimeout >= WarmupIndexBuild {
		t.Errorf("SemanticSearchTimeout (%v) should be < WarmupIndexBuild (%v)",
			SemanticSearchTimeout, WarmupIndexBuild)
	}
}
