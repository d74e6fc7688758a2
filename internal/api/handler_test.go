package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/campustrack/chatbot-go/internal/bot/bottest"
	"github.com/campustrack/chatbot-go/internal/chatbot"
	"github.com/campustrack/chatbot-go/internal/config"
	"github.com/campustrack/chatbot-go/internal/logger"
	"github.com/campustrack/chatbot-go/internal/metrics"
	"github.com/campustrack/chatbot-go/internal/storage"
)

func newTestHandler(t *testing.T, burst float64) *Handler {
	t.Helper()
	gin.SetMode(gin.TestMode)

	store := &bottest.Store{
		TodaySummaryCountsFunc: func(ctx context.Context, date string) (*storage.SummaryCounts, error) {
			return &storage.SummaryCounts{Scheduled: 6, Filled: 4, Absent: 1}, nil
		},
	}
	cfg := &config.Config{
		Chat: config.ChatConfig{
			QueryTimeout:     5 * time.Second,
			MaxQueryLength:   500,
			ClientRateBurst:  burst,
			ClientRateRefill: 0.001,
		},
	}
	m := metrics.New(prometheus.NewRegistry())
	log := logger.New("info")
	svc := chatbot.NewService(store, nil, nil, cfg, m, log)

	h := NewHandler(svc, store, cfg, m, log)
	t.Cleanup(h.Stop)
	return h
}

func newRouter(h *Handler) *gin.Engine {
	router := gin.New()
	router.POST("/api/chatbot", h.Chat)
	router.GET("/api/admin/today-summary", h.TodaySummary)
	return router
}

func TestChatAnswers(t *testing.T) {
	t.Parallel()

	router := newRouter(newTestHandler(t, 10))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/chatbot", strings.NewReader(`{"question":"hello"}`))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "answer")
	assert.Contains(t, w.Body.String(), "👋")
}

func TestChatRejectsMissingQuestion(t *testing.T) {
	t.Parallel()

	router := newRouter(newTestHandler(t, 10))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/chatbot", strings.NewReader(`{}`))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestChatRejectsOversizedQuestion(t *testing.T) {
	t.Parallel()

	router := newRouter(newTestHandler(t, 10))

	body := `{"question":"` + strings.Repeat("x", 600) + `"}`
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/chatbot", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestChatRateLimitsClients(t *testing.T) {
	t.Parallel()

	router := newRouter(newTestHandler(t, 1))

	statuses := make([]int, 0, 2)
	for range 2 {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/chatbot", strings.NewReader(`{"question":"hello"}`))
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(w, req)
		statuses = append(statuses, w.Code)
	}

	assert.Equal(t, http.StatusOK, statuses[0])
	assert.Equal(t, http.StatusTooManyRequests, statuses[1])
}

func TestTodaySummary(t *testing.T) {
	t.Parallel()

	router := newRouter(newTestHandler(t, 10))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/admin/today-summary", nil)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"summary"`)
	assert.Contains(t, w.Body.String(), `"date"`)
}
