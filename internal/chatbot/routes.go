package chatbot

import (
	"context"
	"fmt"

	"github.com/campustrack/chatbot-go/internal/bot"
	domerrors "github.com/campustrack/chatbot-go/internal/errors"
	"github.com/campustrack/chatbot-go/internal/extract"
	"github.com/campustrack/chatbot-go/internal/intent"
	"github.com/campustrack/chatbot-go/internal/modules/faculty"
	"github.com/campustrack/chatbot-go/internal/modules/lab"
	"github.com/campustrack/chatbot-go/internal/modules/syllabus"
)

// routeIntent executes a semantically matched intent. The embedding match
// fixed the question's meaning; extraction here only fills in entities,
// and a missing entity yields clarification text instead of an error.
func (s *Service) routeIntent(ctx context.Context, name string, q *bot.Query) (string, error) {
	switch name {
	case intent.Greeting:
		return s.greeting.Handle(ctx, q)
	case intent.Help:
		return s.helpH.Handle(ctx, q)
	case intent.ScheduleToday:
		return s.today.FacultyToday(ctx, q.Day)
	case intent.CompleteSchedule:
		return s.today.CompleteSchedule(ctx, q.Day)
	case intent.AbsentFaculty:
		return s.absent.AbsentToday(ctx, q)
	case intent.LabProgram:
		if n, ok := extract.FirstInteger(q.Normalized); ok {
			return s.labH.Program(ctx, n)
		}
		return lab.ClarifyWeekText, nil
	case intent.SessionPPT:
		if n, ok := extract.FirstInteger(q.Normalized); ok {
			return s.session.Session(ctx, n)
		}
		return syllabus.ClarifySessionText, nil
	case intent.FacultyByDept:
		if code, ok := extract.Department(q.Normalized, q.DepartmentCodes()); ok {
			return s.dept.InfoCard(ctx, q, code)
		}
		return faculty.ClarifyDepartmentText, nil
	case intent.FacultySchedule:
		if i, ok := extract.PersonName(q.Normalized, q.FacultyNames()); ok {
			return s.named.WeeklySchedule(ctx, q.Faculty[i])
		}
		return faculty.NotFoundText, nil
	case intent.ListAllFaculty:
		return s.list.ListAll(ctx)
	case intent.TeachingHistory:
		return s.history.Recent(ctx)
	}
	return "", fmt.Errorf("%w: %s", domerrors.ErrUnknownIntent, name)
}
