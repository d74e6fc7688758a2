package status

import (
	"context"

	"github.com/campustrack/chatbot-go/internal/bot"
	"github.com/campustrack/chatbot-go/internal/storage"
)

var historyPhrases = []string{
	"what was taught", "recently taught", "recent class", "last class",
	"previous class", "teaching history", "class history", "recent topics",
	"topics covered",
}

const historyLimit = 10

// HistoryHandler answers "what was taught recently" queries.
type HistoryHandler struct {
	store bot.Store
}

func NewHistoryHandler(store bot.Store) *HistoryHandler {
	return &HistoryHandler{store: store}
}

func (h *HistoryHandler) Name() string { return HistoryName }

func (h *HistoryHandler) CanHandle(q *bot.Query) bool {
	return bot.ContainsAny(q.Normalized, historyPhrases)
}

func (h *HistoryHandler) Handle(ctx context.Context, q *bot.Query) (string, error) {
	return h.Recent(ctx)
}

// Recent renders the latest filled entries, newest first. Also used by the
// semantic router for the teaching-history intent.
func (h *HistoryHandler) Recent(ctx context.Context) (string, error) {
	records, err := h.store.TeachingHistory(ctx, storage.HistoryFilter{}, historyLimit)
	if err != nil {
		return "", err
	}
	return FormatHistory(records), nil
}
