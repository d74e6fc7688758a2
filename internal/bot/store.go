package bot

import (
	"context"

	"github.com/campustrack/chatbot-go/internal/storage"
)

// Store is the read surface the cascade consumes, declared here on the
// consumer side. *storage.DB satisfies it; tests substitute fakes.
//
// Schedule lookups take a weekday name; the empty string means the whole
// week. Empty results are (nil, nil), never an error.
type Store interface {
	ScheduleFor(ctx context.Context, day string) ([]storage.ScheduleEntry, error)
	ScheduleForFaculty(ctx context.Context, facultyID int64, day string) ([]storage.ScheduleEntry, error)
	ScheduleForDepartment(ctx context.Context, code string, day string) ([]storage.ScheduleEntry, error)
	ScheduleForPeriod(ctx context.Context, period int, day string) ([]storage.ScheduleEntry, error)

	FacultyByID(ctx context.Context, id int64) (*storage.Faculty, error)
	AllActiveFaculty(ctx context.Context) ([]storage.Faculty, error)
	AllDepartments(ctx context.Context) ([]storage.Department, error)

	DailyStatus(ctx context.Context, date string, filter storage.StatusFilter) ([]storage.DailyStatus, error)
	TodaySummaryCounts(ctx context.Context, date string) (*storage.SummaryCounts, error)
	TeachingHistory(ctx context.Context, filter storage.HistoryFilter, limit int) ([]storage.TeachingRecord, error)

	SyllabusSession(ctx context.Context, sessionNumber int) (*storage.SyllabusSession, error)
	LabProgram(ctx context.Context, programNumber int) (*storage.LabProgram, error)

	FAQCatalog(ctx context.Context) ([]storage.FAQEntry, error)
}
