// Package config defines environment variable keys for configuration.
package config

//nolint:gosec,revive // Environment variable keys are not credentials and do not need per-const comments.
const (
	// Server
	EnvPort            = "CHATBOT_PORT"
	EnvLogLevel        = "CHATBOT_LOG_LEVEL"
	EnvShutdownTimeout = "CHATBOT_SHUTDOWN_TIMEOUT"

	// Data
	EnvDataDir         = "CHATBOT_DATA_DIR"
	EnvStatusRetention = "CHATBOT_STATUS_RETENTION"

	// Rate Limits
	EnvGlobalRateRPS       = "CHATBOT_GLOBAL_RATE_RPS"
	EnvClientRateBurst     = "CHATBOT_CLIENT_RATE_BURST"
	EnvClientRateRefill    = "CHATBOT_CLIENT_RATE_REFILL"
	EnvEmbeddingRateBurst  = "CHATBOT_EMBEDDING_RATE_BURST"
	EnvEmbeddingRateRefill = "CHATBOT_EMBEDDING_RATE_REFILL"
	EnvEmbeddingRateDaily  = "CHATBOT_EMBEDDING_RATE_DAILY"

	// Semantic Search Feature
	EnvEmbeddingProviders = "CHATBOT_EMBEDDING_PROVIDERS"
	EnvGeminiAPIKey       = "CHATBOT_GEMINI_API_KEY"
	EnvOpenAIAPIKey       = "CHATBOT_OPENAI_API_KEY"
	EnvOpenAIBaseURL      = "CHATBOT_OPENAI_BASE_URL"
	EnvMinSimilarity      = "CHATBOT_MIN_SIMILARITY"

	// Backup Feature (S3-compatible object storage)
	EnvBackupEnabled         = "CHATBOT_BACKUP_ENABLED"
	EnvBackupEndpoint        = "CHATBOT_BACKUP_ENDPOINT"
	EnvBackupAccessKeyID     = "CHATBOT_BACKUP_ACCESS_KEY_ID"
	EnvBackupSecretAccessKey = "CHATBOT_BACKUP_SECRET_ACCESS_KEY"
	EnvBackupBucket          = "CHATBOT_BACKUP_BUCKET"
	EnvBackupSnapshotKey     = "CHATBOT_BACKUP_SNAPSHOT_KEY"
	EnvBackupLockKey         = "CHATBOT_BACKUP_LOCK_KEY"
	EnvBackupLockTTL         = "CHATBOT_BACKUP_LOCK_TTL"
	EnvBackupInterval        = "CHATBOT_BACKUP_INTERVAL"

	// Sentry Feature (Better Stack Errors)
	EnvSentryToken       = "CHATBOT_SENTRY_TOKEN"
	EnvSentryHost        = "CHATBOT_SENTRY_HOST"
	EnvSentryEnvironment = "CHATBOT_SENTRY_ENVIRONMENT"
	EnvSentrySampleRate  = "CHATBOT_SENTRY_SAMPLE_RATE"

	// Better Stack Logs Feature
	EnvBetterStackToken    = "CHATBOT_BETTERSTACK_TOKEN"
	EnvBetterStackEndpoint = "CHATBOT_BETTERSTACK_ENDPOINT"

	// Metrics Auth Feature
	EnvMetricsUsername = "CHATBOT_METRICS_USERNAME"
	EnvMetricsPassword = "CHATBOT_METRICS_PASSWORD"
)
