// Package status implements the daily-status rules of the cascade: the
// absentee list, the today-summary aggregate and teaching history. They
// read the filled daily entries, not the static timetable, so their answers
// reflect what actually happened today.
package status

import (
	"context"

	"github.com/campustrack/chatbot-go/internal/bot"
	"github.com/campustrack/chatbot-go/internal/storage"
)

// Module names used in logs and metrics.
const (
	AbsentName  = "status_absent"
	SummaryName = "status_summary"
	HistoryName = "status_history"
)

var absentWords = []string{"absent", "leave", "not present", "missing", "away"}

// AbsentHandler answers "who is absent today" queries.
type AbsentHandler struct {
	store bot.Store
}

func NewAbsentHandler(store bot.Store) *AbsentHandler {
	return &AbsentHandler{store: store}
}

func (h *AbsentHandler) Name() string { return AbsentName }

func (h *AbsentHandler) CanHandle(q *bot.Query) bool {
	return bot.ContainsAny(q.Normalized, absentWords)
}

func (h *AbsentHandler) Handle(ctx context.Context, q *bot.Query) (string, error) {
	return h.AbsentToday(ctx, q)
}

// AbsentToday renders today's faculty status from the filled daily entries.
// A day with no entries says so explicitly; it never claims everyone is
// present. Also used by the semantic router for the absent-faculty intent.
func (h *AbsentHandler) AbsentToday(ctx context.Context, q *bot.Query) (string, error) {
	entries, err := h.store.DailyStatus(ctx, q.Date(), storage.StatusFilter{})
	if err != nil {
		return "", err
	}
	return FormatDailyStatus(q.Day, entries), nil
}
