package schedule

import (
	"context"
	"fmt"

	"github.com/campustrack/chatbot-go/internal/bot"
	"github.com/campustrack/chatbot-go/internal/extract"
)

// Timetable periods run 1 to 9.
const (
	minPeriod = 1
	maxPeriod = 9
)

// PeriodHandler answers "period 3" style queries for today.
type PeriodHandler struct {
	store bot.Store
}

func NewPeriodHandler(store bot.Store) *PeriodHandler {
	return &PeriodHandler{store: store}
}

func (h *PeriodHandler) Name() string { return PeriodName }

func (h *PeriodHandler) CanHandle(q *bot.Query) bool {
	_, ok := extract.IntegerAfter(q.Normalized, extract.PeriodKeywords)
	return ok
}

func (h *PeriodHandler) Handle(ctx context.Context, q *bot.Query) (string, error) {
	period, ok := extract.IntegerAfter(q.Normalized, extract.PeriodKeywords)
	if !ok {
		return "", fmt.Errorf("period handler claimed %q without a number", q.Normalized)
	}
	if period < minPeriod || period > maxPeriod {
		return fmt.Sprintf("Period %d is outside the timetable. Periods run %d to %d.", period, minPeriod, maxPeriod), nil
	}

	entries, err := h.store.ScheduleForPeriod(ctx, period, q.Day)
	if err != nil {
		return "", err
	}
	return FormatPeriod(period, q.Day, entries), nil
}
