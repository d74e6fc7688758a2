// Package config provides application configuration management.
// It loads settings from environment variables and provides defaults for
// server mode, data paths, rate limits, and optional feature integrations.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all application configuration
type Config struct {
	// Server Configuration
	Port            string
	LogLevel        string
	ShutdownTimeout time.Duration

	// Data Configuration
	DataDir         string        // Data directory for SQLite database and vector index
	StatusRetention time.Duration // How long resolved daily status rows are kept (default: 90 days)

	// Embedding Configuration (semantic fallback; empty keys disable it)
	EmbeddingProviders []string // Provider preference order: "gemini", "openai"
	GeminiAPIKey       string
	OpenAIAPIKey       string
	OpenAIBaseURL      string  // Override for OpenAI-compatible endpoints (empty = api.openai.com)
	MinSimilarity      float64 // Cosine similarity floor for accepting a semantic intent match

	// Metrics Authentication
	MetricsUsername string // Username for /metrics endpoint Basic Auth (default: "prometheus")
	MetricsPassword string // Password for /metrics endpoint Basic Auth (empty = no auth)

	// Error Tracking (Better Stack Errors via Sentry SDK)
	SentryToken       string
	SentryHost        string
	SentryEnvironment string
	SentrySampleRate  float64

	// Log Shipping (Better Stack Logs)
	BetterStackToken    string
	BetterStackEndpoint string

	// Backup Configuration (embedded)
	Backup BackupConfig

	// Chat Configuration (embedded)
	Chat ChatConfig
}

// BackupConfig holds snapshot backup settings for S3-compatible storage.
type BackupConfig struct {
	Enabled         bool
	Endpoint        string // S3-compatible endpoint URL
	AccessKeyID     string
	SecretAccessKey string
	Bucket          string
	SnapshotKey     string        // Object key for the database snapshot
	LockKey         string        // Object key for the distributed backup lock
	LockTTL         time.Duration // Lock lease duration
	Interval        time.Duration // How often snapshots are uploaded
}

// Load reads configuration from environment variables
// It attempts to load .env file first, then reads from env vars
func Load() (*Config, error) {
	// Try to load .env file (ignore error if file doesn't exist)
	_ = godotenv.Load()

	cfg := &Config{
		// Server Configuration
		Port:            getEnv(EnvPort, "10000"),
		LogLevel:        getEnv(EnvLogLevel, "info"),
		ShutdownTimeout: getDurationEnv(EnvShutdownTimeout, GracefulShutdown),

		// Data Configuration
		DataDir:         getEnv(EnvDataDir, getDefaultDataDir()),
		StatusRetention: getDurationEnv(EnvStatusRetention, 90*24*time.Hour),

		// Embedding Configuration
		EmbeddingProviders: splitList(getEnv(EnvEmbeddingProviders, "gemini,openai")),
		GeminiAPIKey:       getEnv(EnvGeminiAPIKey, ""),
		OpenAIAPIKey:       getEnv(EnvOpenAIAPIKey, ""),
		OpenAIBaseURL:      getEnv(EnvOpenAIBaseURL, ""),
		MinSimilarity:      getFloatEnv(EnvMinSimilarity, 0.7),

		// Metrics Authentication
		MetricsUsername: getEnv(EnvMetricsUsername, "prometheus"),
		MetricsPassword: getEnv(EnvMetricsPassword, ""),

		// Error Tracking
		SentryToken:       getEnv(EnvSentryToken, ""),
		SentryHost:        getEnv(EnvSentryHost, "errors.betterstack.com"),
		SentryEnvironment: getEnv(EnvSentryEnvironment, "production"),
		SentrySampleRate:  getFloatEnv(EnvSentrySampleRate, 1.0),

		// Log Shipping
		BetterStackToken:    getEnv(EnvBetterStackToken, ""),
		BetterStackEndpoint: getEnv(EnvBetterStackEndpoint, ""),

		// Backup Configuration
		Backup: BackupConfig{
			Enabled:         getBoolEnv(EnvBackupEnabled, false),
			Endpoint:        getEnv(EnvBackupEndpoint, ""),
			AccessKeyID:     getEnv(EnvBackupAccessKeyID, ""),
			SecretAccessKey: getEnv(EnvBackupSecretAccessKey, ""),
			Bucket:          getEnv(EnvBackupBucket, ""),
			SnapshotKey:     getEnv(EnvBackupSnapshotKey, "snapshots/chatbot.db.zst"),
			LockKey:         getEnv(EnvBackupLockKey, "locks/backup"),
			LockTTL:         getDurationEnv(EnvBackupLockTTL, 5*time.Minute),
			Interval:        getDurationEnv(EnvBackupInterval, 6*time.Hour),
		},

		// Chat Configuration
		Chat: ChatConfig{
			QueryTimeout:        QueryProcessing,
			MaxQueryLength:      getIntEnv("CHATBOT_MAX_QUERY_LENGTH", 500),
			ClientRateBurst:     getFloatEnv(EnvClientRateBurst, 15.0),
			ClientRateRefill:    getFloatEnv(EnvClientRateRefill, 0.5), // 1 per 2s
			EmbeddingRateBurst:  getFloatEnv(EnvEmbeddingRateBurst, 40.0),
			EmbeddingRateRefill: getFloatEnv(EnvEmbeddingRateRefill, 20.0), // per hour
			EmbeddingRateDaily:  getIntEnv(EnvEmbeddingRateDaily, 500),
			GlobalRateRPS:       getFloatEnv(EnvGlobalRateRPS, 100.0),
		},
	}

	// Validate configuration
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return cfg, nil
}

// Validate checks if required configuration values are set
func (c *Config) Validate() error {
	var errs []error

	if c.Port == "" {
		errs = append(errs, errors.New(EnvPort+" is required"))
	}
	if c.DataDir == "" {
		errs = append(errs, errors.New(EnvDataDir+" is required"))
	}
	if c.StatusRetention <= 0 {
		errs = append(errs, fmt.Errorf("%s must be positive, got %v", EnvStatusRetention, c.StatusRetention))
	}
	if c.MinSimilarity < 0 || c.MinSimilarity > 1 {
		errs = append(errs, fmt.Errorf("%s must be in [0,1], got %v", EnvMinSimilarity, c.MinSimilarity))
	}
	for _, p := range c.EmbeddingProviders {
		if p != "gemini" && p != "openai" {
			errs = append(errs, fmt.Errorf("%s contains unknown provider %q", EnvEmbeddingProviders, p))
		}
	}
	if err := c.Chat.Validate(); err != nil {
		errs = append(errs, fmt.Errorf("chat config: %w", err))
	}
	if c.Backup.Enabled {
		if c.Backup.Endpoint == "" {
			errs = append(errs, errors.New(EnvBackupEndpoint+" is required when backup is enabled"))
		}
		if c.Backup.AccessKeyID == "" || c.Backup.SecretAccessKey == "" {
			errs = append(errs, errors.New("backup credentials are required when backup is enabled"))
		}
		if c.Backup.Bucket == "" {
			errs = append(errs, errors.New(EnvBackupBucket+" is required when backup is enabled"))
		}
		if c.Backup.LockTTL <= 0 {
			errs = append(errs, fmt.Errorf("%s must be positive, got %v", EnvBackupLockTTL, c.Backup.LockTTL))
		}
		if c.Backup.Interval <= 0 {
			errs = append(errs, fmt.Errorf("%s must be positive, got %v", EnvBackupInterval, c.Backup.Interval))
		}
	}

	if len(errs) > 0 {
		return errors.Join(errs...)
	}
	return nil
}

// getEnv retrieves environment variable with fallback to default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getIntEnv retrieves integer environment variable with fallback to default value
func getIntEnv(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

// getDurationEnv retrieves duration environment variable with fallback to default value
func getDurationEnv(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}

// getFloatEnv retrieves float64 environment variable with fallback to default value
func getFloatEnv(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if floatValue, err := strconv.ParseFloat(value, 64); err == nil {
			return floatValue
		}
	}
	return defaultValue
}

// getBoolEnv retrieves boolean environment variable with fallback to default value
func getBoolEnv(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return defaultValue
}

// splitList splits a comma-separated list, trimming whitespace and dropping empties.
func splitList(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// getDefaultDataDir returns platform-specific default data directory
func getDefaultDataDir() string {
	if runtime.GOOS == "windows" {
		return "./data"
	}
	return "/data"
}

// SQLitePath returns the full path to the SQLite database file
func (c *Config) SQLitePath() string {
	return filepath.Join(c.DataDir, "chatbot.db")
}

// VectorDBPath returns the full path to the persistent vector index directory
func (c *Config) VectorDBPath() string {
	return filepath.Join(c.DataDir, "vectors")
}

// HasEmbeddingProvider returns true if at least one embedding provider is configured.
func (c *Config) HasEmbeddingProvider() bool {
	return c.GeminiAPIKey != "" || c.OpenAIAPIKey != ""
}
