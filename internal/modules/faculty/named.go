// Package faculty implements the faculty-centric rules of the cascade:
// questions naming a faculty member, questions naming a department, and the
// list-all-faculty aggregate.
package faculty

import (
	"context"

	"github.com/campustrack/chatbot-go/internal/bot"
	"github.com/campustrack/chatbot-go/internal/extract"
	"github.com/campustrack/chatbot-go/internal/storage"
)

// Module names used in logs and metrics.
const (
	NamedName      = "faculty_named"
	DepartmentName = "faculty_department"
	ListName       = "faculty_list"
)

// topicWords route a named-faculty query to the recent-topics view instead
// of the weekly schedule. "teach" also covers "teaches" and "teaching".
var topicWords = []string{"topic", "teach", "taught"}

// NamedHandler answers questions that mention a faculty member by name.
type NamedHandler struct {
	store bot.Store
}

func NewNamedHandler(store bot.Store) *NamedHandler {
	return &NamedHandler{store: store}
}

func (h *NamedHandler) Name() string { return NamedName }

func (h *NamedHandler) CanHandle(q *bot.Query) bool {
	_, ok := extract.PersonName(q.Normalized, q.FacultyNames())
	return ok
}

func (h *NamedHandler) Handle(ctx context.Context, q *bot.Query) (string, error) {
	idx, ok := extract.PersonName(q.Normalized, q.FacultyNames())
	if !ok {
		return NotFoundText, nil
	}
	member := q.Faculty[idx]

	if bot.ContainsAny(q.Normalized, topicWords) {
		return h.recentTopics(ctx, member)
	}
	return h.WeeklySchedule(ctx, member)
}

// WeeklySchedule renders the member's full week, Monday through Saturday.
// Also used by the semantic router for the faculty-schedule intent.
func (h *NamedHandler) WeeklySchedule(ctx context.Context, member storage.Faculty) (string, error) {
	entries, err := h.store.ScheduleForFaculty(ctx, member.ID, "")
	if err != nil {
		return "", err
	}
	return FormatWeeklySchedule(member.Name, entries), nil
}

func (h *NamedHandler) recentTopics(ctx context.Context, member storage.Faculty) (string, error) {
	records, err := h.store.TeachingHistory(ctx, storage.HistoryFilter{FacultyID: member.ID}, recentTopicsLimit)
	if err != nil {
		return "", err
	}
	return FormatRecentTopics(member.Name, records), nil
}

const recentTopicsLimit = 5

// NotFoundText is returned when no catalog name matches the query.
const NotFoundText = "I couldn't find that faculty member. Please check the name and try again, or type 'list all faculties' to see all faculty names."
