// Package schedule implements the timetable rules of the cascade: class-type
// queries, period-number queries, named-weekday queries and the generic
// today-schedule fallback.
package schedule

import (
	"context"
	"fmt"

	"github.com/campustrack/chatbot-go/internal/bot"
	"github.com/campustrack/chatbot-go/internal/extract"
	"github.com/campustrack/chatbot-go/internal/storage"
)

// Module names used in logs and metrics.
const (
	ClassTypeName = "schedule_class_type"
	PeriodName    = "schedule_period"
	WeekdayName   = "schedule_weekday"
	TodayName     = "schedule_today"
)

// classTypes maps query phrases to timetable class types. Longer phrases
// first so "mini project" never resolves as a bare "lab" or "theory".
var classTypes = []struct {
	phrase string
	kind   string
}{
	{"mini-project", "mini-project"},
	{"mini project", "mini-project"},
	{"theory", "theory"},
	{"lab", "lab"},
}

// ClassTypeHandler answers "lab today" style queries for one class type.
// Queries carrying a week number ("lab 3") belong to the lab-program rule
// and are left unclaimed.
type ClassTypeHandler struct {
	store bot.Store
}

func NewClassTypeHandler(store bot.Store) *ClassTypeHandler {
	return &ClassTypeHandler{store: store}
}

func (h *ClassTypeHandler) Name() string { return ClassTypeName }

func (h *ClassTypeHandler) CanHandle(q *bot.Query) bool {
	if _, ok := extract.IntegerAfter(q.Normalized, extract.WeekKeywords); ok {
		return false
	}
	_, ok := matchClassType(q.Normalized)
	return ok
}

func (h *ClassTypeHandler) Handle(ctx context.Context, q *bot.Query) (string, error) {
	kind, ok := matchClassType(q.Normalized)
	if !ok {
		return "", fmt.Errorf("class type handler claimed %q without a type", q.Normalized)
	}

	entries, err := h.store.ScheduleFor(ctx, q.Day)
	if err != nil {
		return "", err
	}

	var matched []storage.ScheduleEntry
	for _, e := range entries {
		if e.ClassType == kind {
			matched = append(matched, e)
		}
	}
	return FormatClassType(kind, q.Day, matched), nil
}

func matchClassType(text string) (string, bool) {
	for _, ct := range classTypes {
		if bot.ContainsAny(text, []string{ct.phrase}) {
			return ct.kind, true
		}
	}
	return "", false
}
