package faculty

import (
	"context"
	"errors"
	"fmt"

	"github.com/campustrack/chatbot-go/internal/bot"
	domerrors "github.com/campustrack/chatbot-go/internal/errors"
	"github.com/campustrack/chatbot-go/internal/extract"
)

// infoWords route a department query to the faculty info card. Without one
// the query resolves to the department's schedule for today, so a bare
// "AIDS-A" shows what AIDS-A has today.
var infoWords = []string{"faculty", "teacher", "teaches", "teaching", "instructor", "who"}

// DepartmentHandler answers questions naming a department code.
type DepartmentHandler struct {
	store bot.Store
}

func NewDepartmentHandler(store bot.Store) *DepartmentHandler {
	return &DepartmentHandler{store: store}
}

func (h *DepartmentHandler) Name() string { return DepartmentName }

func (h *DepartmentHandler) CanHandle(q *bot.Query) bool {
	_, ok := extract.Department(q.Normalized, q.DepartmentCodes())
	return ok
}

func (h *DepartmentHandler) Handle(ctx context.Context, q *bot.Query) (string, error) {
	code, ok := extract.Department(q.Normalized, q.DepartmentCodes())
	if !ok {
		return ClarifyDepartmentText, nil
	}

	if bot.ContainsAny(q.Normalized, infoWords) {
		return h.InfoCard(ctx, q, code)
	}
	return h.daySchedule(ctx, q, code)
}

// InfoCard renders the contact card of the faculty member teaching the
// department on the query's day. Also used by the semantic router for the
// faculty-by-department intent.
func (h *DepartmentHandler) InfoCard(ctx context.Context, q *bot.Query, code string) (string, error) {
	entries, err := h.store.ScheduleForDepartment(ctx, code, q.Day)
	if err != nil {
		return "", err
	}
	if len(entries) == 0 {
		return fmt.Sprintf("No faculty assigned to **%s** for %s.", code, q.Day), nil
	}

	member, err := h.store.FacultyByID(ctx, entries[0].FacultyID)
	if errors.Is(err, domerrors.ErrNotFound) {
		return fmt.Sprintf("No faculty assigned to **%s** for %s.", code, q.Day), nil
	}
	if err != nil {
		return "", err
	}
	return FormatFacultyCard(member, entries[0].DepartmentName), nil
}

func (h *DepartmentHandler) daySchedule(ctx context.Context, q *bot.Query, code string) (string, error) {
	entries, err := h.store.ScheduleForDepartment(ctx, code, q.Day)
	if err != nil {
		return "", err
	}
	return FormatDepartmentSchedule(code, q.Day, entries), nil
}

// ClarifyDepartmentText asks for a department code when none was found.
const ClarifyDepartmentText = "Please specify a department (e.g., 'Who is teaching AIDS-A?')"
