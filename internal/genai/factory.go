package genai

import (
	"context"
	"errors"
	"time"

	chromem "github.com/philippgille/chromem-go"

	"github.com/campustrack/chatbot-go/internal/config"
	domerrors "github.com/campustrack/chatbot-go/internal/errors"
	"github.com/campustrack/chatbot-go/internal/logger"
	"github.com/campustrack/chatbot-go/internal/metrics"
	"github.com/campustrack/chatbot-go/internal/ratelimit"
)

// provider is one configured embedding backend.
type provider struct {
	name  string
	embed chromem.EmbeddingFunc
}

// NewEmbeddingFunc builds the embedding function used by the vector
// collections. Providers are tried in config preference order; a failing
// provider falls through to the next. A sliding-window counter caps total
// daily embedding calls across providers. Returns nil when no provider is
// configured, which disables semantic features cleanly.
func NewEmbeddingFunc(cfg *config.Config, m *metrics.Metrics, log *logger.Logger) chromem.EmbeddingFunc {
	providers := buildProviders(cfg)
	if len(providers) == 0 {
		log.Info("no embedding provider configured, semantic features disabled")
		return nil
	}

	names := make([]string, len(providers))
	for i, p := range providers {
		names[i] = p.name
	}
	log.WithField("providers", names).Info("embedding providers configured")

	dailyCap := ratelimit.NewSlidingWindowCounter(cfg.Chat.EmbeddingRateDaily, 24*time.Hour)

	return func(ctx context.Context, text string) ([]float32, error) {
		if !dailyCap.Allow() {
			m.RecordRateLimiterDrop("embedding_daily")
			return nil, domerrors.ErrRateLimitExceeded
		}

		var errs []error
		for _, p := range providers {
			start := time.Now()
			vec, err := p.embed(ctx, text)
			duration := time.Since(start).Seconds()
			if err == nil {
				m.RecordEmbeddingRequest(p.name, "success", duration)
				return vec, nil
			}
			m.RecordEmbeddingRequest(p.name, "error", duration)
			log.WithModule("genai").WithField("provider", p.name).WithError(err).Warn("embedding provider failed")
			errs = append(errs, err)

			if ctx.Err() != nil {
				return nil, ctx.Err()
			}
		}
		return nil, errors.Join(errs...)
	}
}

func buildProviders(cfg *config.Config) []provider {
	var providers []provider
	for _, name := range cfg.EmbeddingProviders {
		switch name {
		case "gemini":
			if cfg.GeminiAPIKey != "" {
				providers = append(providers, provider{
					name:  "gemini",
					embed: NewGeminiClient(cfg.GeminiAPIKey).EmbeddingFunc(),
				})
			}
		case "openai":
			if cfg.OpenAIAPIKey != "" {
				providers = append(providers, provider{
					name:  "openai",
					embed: NewOpenAIClient(cfg.OpenAIAPIKey, cfg.OpenAIBaseURL).EmbeddingFunc(),
				})
			}
		}
	}
	return providers
}
