package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all Prometheus metrics
type Metrics struct {
	// Chat metrics
	ChatRequestsTotal   *prometheus.CounterVec
	ChatDurationSeconds *prometheus.HistogramVec

	// Pipeline metrics
	StageResolvedTotal *prometheus.CounterVec

	// FAQ metrics
	FAQMatchesTotal *prometheus.CounterVec

	// Semantic search metrics
	SemanticMatchesTotal     *prometheus.CounterVec
	EmbeddingRequestsTotal   *prometheus.CounterVec
	EmbeddingDurationSeconds *prometheus.HistogramVec

	// HTTP metrics
	HTTPErrorsTotal *prometheus.CounterVec

	// Rate limiter metrics
	RateLimiterWaitDuration *prometheus.HistogramVec
	RateLimiterDropped      *prometheus.CounterVec
	RateLimiterEntries      *prometheus.GaugeVec

	// Catalog metrics
	CatalogSize *prometheus.GaugeVec

	// Warmup metrics
	WarmupTasksTotal *prometheus.CounterVec
	WarmupDuration   prometheus.Histogram

	// Backup metrics
	BackupRunsTotal       *prometheus.CounterVec
	BackupDurationSeconds prometheus.Histogram
}

// New creates a new Metrics instance with all metrics registered
func New(registry *prometheus.Registry) *Metrics {
	m := &Metrics{
		// Chat metrics
		ChatRequestsTotal: promauto.With(registry).NewCounterVec(
			prometheus.CounterOpts{
				Name: "chatbot_requests_total",
				Help: "Total number of chat requests by resolved intent and status",
			},
			[]string{"intent", "status"}, // status: success, error, rate_limited
		),

		ChatDurationSeconds: promauto.With(registry).NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "chatbot_request_duration_seconds",
				Help:    "Chat request duration in seconds by resolving stage",
				Buckets: []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1, 2, 5, 10}, // Rules are sub-ms, semantic can take seconds
			},
			[]string{"stage"}, // stage: rule, faq, semantic, default
		),

		// Pipeline metrics
		StageResolvedTotal: promauto.With(registry).NewCounterVec(
			prometheus.CounterOpts{
				Name: "chatbot_stage_resolved_total",
				Help: "Total number of queries resolved by pipeline stage",
			},
			[]string{"stage"}, // stage: rule, faq, semantic, default
		),

		// FAQ metrics
		FAQMatchesTotal: promauto.With(registry).NewCounterVec(
			prometheus.CounterOpts{
				Name: "chatbot_faq_matches_total",
				Help: "Total number of FAQ matcher outcomes",
			},
			[]string{"result"}, // result: exact, substring, token, miss
		),

		// Semantic search metrics
		SemanticMatchesTotal: promauto.With(registry).NewCounterVec(
			prometheus.CounterOpts{
				Name: "chatbot_semantic_matches_total",
				Help: "Total number of semantic fallback outcomes",
			},
			[]string{"result"}, // result: hit, below_threshold, disabled, error
		),

		EmbeddingRequestsTotal: promauto.With(registry).NewCounterVec(
			prometheus.CounterOpts{
				Name: "chatbot_embedding_requests_total",
				Help: "Total number of embedding API calls by provider and status",
			},
			[]string{"provider", "status"}, // status: success, error, rate_limited
		),

		EmbeddingDurationSeconds: promauto.With(registry).NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "chatbot_embedding_duration_seconds",
				Help:    "Embedding API call duration in seconds by provider",
				Buckets: []float64{0.1, 0.25, 0.5, 1, 2, 5, 10, 30}, // Matches 30s request timeout
			},
			[]string{"provider"}, // provider: gemini, openai
		),

		// HTTP metrics
		HTTPErrorsTotal: promauto.With(registry).NewCounterVec(
			prometheus.CounterOpts{
				Name: "chatbot_http_errors_total",
				Help: "Total HTTP errors by type and module",
			},
			[]string{"error_type", "module"}, // error_type: timeout, rate_limit, bad_request, store_failure
		),

		// Rate limiter metrics
		RateLimiterWaitDuration: promauto.With(registry).NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "chatbot_rate_limiter_wait_duration_seconds",
				Help:    "Time spent waiting for rate limiter token by limiter type",
				Buckets: []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1, 2, 5}, // 1ms to 5s
			},
			[]string{"limiter_type"}, // limiter_type: client, embedding, global
		),

		RateLimiterDropped: promauto.With(registry).NewCounterVec(
			prometheus.CounterOpts{
				Name: "chatbot_rate_limiter_dropped_total",
				Help: "Total number of requests dropped by rate limiter",
			},
			[]string{"limiter_type"}, // limiter_type: client, embedding, global
		),

		RateLimiterEntries: promauto.With(registry).NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "chatbot_rate_limiter_entries",
				Help: "Number of tracked keys per keyed rate limiter",
			},
			[]string{"limiter_type"},
		),

		// Catalog metrics
		CatalogSize: promauto.With(registry).NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "chatbot_catalog_size",
				Help: "Number of rows per data catalog",
			},
			[]string{"catalog"}, // catalog: faculty, departments, timetable, faqs, sessions, lab_programs
		),

		// Warmup metrics
		WarmupTasksTotal: promauto.With(registry).NewCounterVec(
			prometheus.CounterOpts{
				Name: "chatbot_warmup_tasks_total",
				Help: "Total number of warmup tasks by task and status",
			},
			[]string{"task", "status"}, // status: success, error
		),

		WarmupDuration: promauto.With(registry).NewHistogram(
			prometheus.HistogramOpts{
				Name:    "chatbot_warmup_duration_seconds",
				Help:    "Total duration of startup warmup",
				Buckets: []float64{1, 5, 10, 30, 60, 120, 300}, // 1s to 5min
			},
		),

		// Backup metrics
		BackupRunsTotal: promauto.With(registry).NewCounterVec(
			prometheus.CounterOpts{
				Name: "chatbot_backup_runs_total",
				Help: "Total number of snapshot backup runs by status",
			},
			[]string{"status"}, // status: success, error, skipped
		),

		BackupDurationSeconds: promauto.With(registry).NewHistogram(
			prometheus.HistogramOpts{
				Name:    "chatbot_backup_duration_seconds",
				Help:    "Snapshot backup duration in seconds",
				Buckets: []float64{0.5, 1, 5, 10, 30, 60, 120}, // Compression + upload
			},
		),
	}

	return m
}

// RecordChatRequest records a chat request resolved at a pipeline stage
func (m *Metrics) RecordChatRequest(intent, status, stage string, duration float64) {
	m.ChatRequestsTotal.WithLabelValues(intent, status).Inc()
	m.ChatDurationSeconds.WithLabelValues(stage).Observe(duration)
	m.StageResolvedTotal.WithLabelValues(stage).Inc()
}

// RecordFAQMatch records a FAQ matcher outcome
func (m *Metrics) RecordFAQMatch(result string) {
	m.FAQMatchesTotal.WithLabelValues(result).Inc()
}

// RecordSemanticMatch records a semantic fallback outcome
func (m *Metrics) RecordSemanticMatch(result string) {
	m.SemanticMatchesTotal.WithLabelValues(result).Inc()
}

// RecordEmbeddingRequest records an embedding API call
func (m *Metrics) RecordEmbeddingRequest(provider, status string, duration float64) {
	m.EmbeddingRequestsTotal.WithLabelValues(provider, status).Inc()
	m.EmbeddingDurationSeconds.WithLabelValues(provider).Observe(duration)
}

// RecordHTTPError records HTTP error metrics
func (m *Metrics) RecordHTTPError(errorType, module string) {
	m.HTTPErrorsTotal.WithLabelValues(errorType, module).Inc()
}

// RecordRateLimiterWait records time spent waiting for rate limiter
func (m *Metrics) RecordRateLimiterWait(limiterType string, duration float64) {
	m.RateLimiterWaitDuration.WithLabelValues(limiterType).Observe(duration)
}

// RecordRateLimiterDrop records a request dropped by rate limiter
func (m *Metrics) RecordRateLimiterDrop(limiterType string) {
	m.RateLimiterDropped.WithLabelValues(limiterType).Inc()
}

// SetRateLimiterEntries records the number of tracked keys in a keyed limiter
func (m *Metrics) SetRateLimiterEntries(limiterType string, count int) {
	m.RateLimiterEntries.WithLabelValues(limiterType).Set(float64(count))
}

// SetCatalogSize records the row count of a data catalog
func (m *Metrics) SetCatalogSize(catalog string, count int) {
	m.CatalogSize.WithLabelValues(catalog).Set(float64(count))
}

// RecordWarmupTask records a warmup task completion
func (m *Metrics) RecordWarmupTask(task, status string) {
	m.WarmupTasksTotal.WithLabelValues(task, status).Inc()
}

// RecordWarmupDuration records total warmup duration
func (m *Metrics) RecordWarmupDuration(duration float64) {
	m.WarmupDuration.Observe(duration)
}

// RecordBackupRun records a snapshot backup run
func (m *Metrics) RecordBackupRun(status string, duration float64) {
	m.BackupRunsTotal.WithLabelValues(status).Inc()
	m.BackupDurationSeconds.Observe(duration)
}
