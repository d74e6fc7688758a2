package schedule

import (
	"context"
	"fmt"

	"github.com/campustrack/chatbot-go/internal/bot"
	"github.com/campustrack/chatbot-go/internal/extract"
)

// weekdayContext keeps the weekday rule from claiming every query that
// happens to contain a day name ("monday motivation").
var weekdayContext = []string{"schedule", "class", "timetable", "teaching", "period"}

// WeekdayHandler answers "monday schedule" style queries for a named day.
type WeekdayHandler struct {
	store bot.Store
}

func NewWeekdayHandler(store bot.Store) *WeekdayHandler {
	return &WeekdayHandler{store: store}
}

func (h *WeekdayHandler) Name() string { return WeekdayName }

func (h *WeekdayHandler) CanHandle(q *bot.Query) bool {
	if _, ok := extract.Weekday(q.Normalized); !ok {
		return false
	}
	return bot.ContainsAny(q.Normalized, weekdayContext)
}

func (h *WeekdayHandler) Handle(ctx context.Context, q *bot.Query) (string, error) {
	day, ok := extract.Weekday(q.Normalized)
	if !ok {
		return "", fmt.Errorf("weekday handler claimed %q without a day", q.Normalized)
	}

	entries, err := h.store.ScheduleFor(ctx, day)
	if err != nil {
		return "", err
	}
	return FormatComplete(day, entries), nil
}
