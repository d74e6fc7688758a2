package status

import (
	"context"

	"github.com/campustrack/chatbot-go/internal/bot"
)

var summaryPhrases = []string{"today summary", "today's summary", "summary for today", "daily summary"}

// SummaryHandler answers "today's summary" queries with the day's counts.
type SummaryHandler struct {
	store bot.Store
}

func NewSummaryHandler(store bot.Store) *SummaryHandler {
	return &SummaryHandler{store: store}
}

func (h *SummaryHandler) Name() string { return SummaryName }

func (h *SummaryHandler) CanHandle(q *bot.Query) bool {
	return bot.EqualsAny(q.Normalized, []string{"summary"}) || bot.ContainsAny(q.Normalized, summaryPhrases)
}

func (h *SummaryHandler) Handle(ctx context.Context, q *bot.Query) (string, error) {
	counts, err := h.store.TodaySummaryCounts(ctx, q.Date())
	if err != nil {
		return "", err
	}
	return FormatSummary(q.Day, q.Date(), counts), nil
}
