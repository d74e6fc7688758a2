package schedule

import (
	"context"

	"github.com/campustrack/chatbot-go/internal/bot"
)

// todayWords claim generic schedule queries. This rule is registered last
// in the cascade, so any query with a more specific entity never reaches it.
var todayWords = []string{"schedule", "class", "today", "teaching", "period", "timetable", "who has"}

// completeWords switch the answer from the per-faculty digest to the full
// period-by-period schedule.
var completeWords = []string{"complete", "full", "all"}

// TodayHandler answers generic schedule queries for today.
type TodayHandler struct {
	store bot.Store
}

func NewTodayHandler(store bot.Store) *TodayHandler {
	return &TodayHandler{store: store}
}

func (h *TodayHandler) Name() string { return TodayName }

func (h *TodayHandler) CanHandle(q *bot.Query) bool {
	return bot.ContainsAny(q.Normalized, todayWords)
}

func (h *TodayHandler) Handle(ctx context.Context, q *bot.Query) (string, error) {
	if bot.ContainsAny(q.Normalized, completeWords) {
		return h.CompleteSchedule(ctx, q.Day)
	}
	return h.FacultyToday(ctx, q.Day)
}

// CompleteSchedule renders the full period-by-period schedule for a day,
// grouped by department. Also used by the semantic router for the
// complete-schedule intent.
func (h *TodayHandler) CompleteSchedule(ctx context.Context, day string) (string, error) {
	entries, err := h.store.ScheduleFor(ctx, day)
	if err != nil {
		return "", err
	}
	return FormatComplete(day, entries), nil
}

// FacultyToday renders the per-faculty digest of who teaches on a day.
// Also used by the semantic router for the schedule-today intent.
func (h *TodayHandler) FacultyToday(ctx context.Context, day string) (string, error) {
	entries, err := h.store.ScheduleFor(ctx, day)
	if err != nil {
		return "", err
	}
	return FormatFacultyToday(day, entries), nil
}
