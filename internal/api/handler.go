// Package api exposes the chatbot over HTTP JSON: the question endpoint
// and the admin summary endpoint.
package api

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/campustrack/chatbot-go/internal/bot"
	"github.com/campustrack/chatbot-go/internal/chatbot"
	"github.com/campustrack/chatbot-go/internal/config"
	domerrors "github.com/campustrack/chatbot-go/internal/errors"
	"github.com/campustrack/chatbot-go/internal/logger"
	"github.com/campustrack/chatbot-go/internal/metrics"
	"github.com/campustrack/chatbot-go/internal/ratelimit"
	"github.com/campustrack/chatbot-go/internal/sentry"
	"github.com/campustrack/chatbot-go/internal/storage"
)

// ChatRequest is the POST /api/chatbot body.
type ChatRequest struct {
	Question string `json:"question" binding:"required"`
}

// ChatResponse is the successful answer payload.
type ChatResponse struct {
	Answer string `json:"answer"`
}

// Handler serves the chatbot API.
type Handler struct {
	svc          *chatbot.Service
	store        bot.Store
	limiter      *ratelimit.KeyedLimiter
	metrics      *metrics.Metrics
	logger       *logger.Logger
	queryTimeout time.Duration
}

// NewHandler creates the API handler with its per-client rate limiter.
func NewHandler(svc *chatbot.Service, store bot.Store, cfg *config.Config, m *metrics.Metrics, log *logger.Logger) *Handler {
	limiter := ratelimit.NewKeyedLimiter(ratelimit.KeyedConfig{
		Name:          "client",
		Burst:         cfg.Chat.ClientRateBurst,
		RefillRate:    cfg.Chat.ClientRateRefill,
		CleanupPeriod: config.RateLimiterCleanupInterval,
		Metrics:       m,
	})

	return &Handler{
		svc:          svc,
		store:        store,
		limiter:      limiter,
		metrics:      m,
		logger:       log.WithModule("api"),
		queryTimeout: cfg.Chat.QueryTimeout,
	}
}

// Stop shuts down the rate limiter's cleanup goroutine.
func (h *Handler) Stop() {
	h.limiter.Stop()
}

// Chat answers one question.
func (h *Handler) Chat(c *gin.Context) {
	if !h.limiter.Allow(c.ClientIP()) {
		h.metrics.RecordRateLimiterDrop("client")
		c.JSON(http.StatusTooManyRequests, gin.H{"error": "too many requests, slow down"})
		return
	}

	var req ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "question is required"})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), h.queryTimeout)
	defer cancel()

	answer, err := h.svc.Answer(ctx, req.Question, time.Now())
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, ChatResponse{Answer: answer})
}

// TodaySummary returns the admin counters for the current date.
func (h *Handler) TodaySummary(c *gin.Context) {
	today := time.Now().Format(storage.DateLayout)
	counts, err := h.store.TodaySummaryCounts(c.Request.Context(), today)
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"date": today, "summary": counts})
}

func (h *Handler) writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, domerrors.ErrInvalidInput):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, domerrors.ErrRateLimitExceeded):
		h.metrics.RecordHTTPError("rate_limited", "api")
		c.JSON(http.StatusTooManyRequests, gin.H{"error": "service is busy, try again later"})
	case errors.Is(err, context.DeadlineExceeded):
		h.metrics.RecordHTTPError("timeout", "api")
		c.JSON(http.StatusGatewayTimeout, gin.H{"error": "request timed out"})
	default:
		h.metrics.RecordHTTPError("internal", "api")
		h.logger.WithError(err).Error("request failed")
		sentry.CaptureExceptionWithContext(c.Request.Context(), err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	}
}
