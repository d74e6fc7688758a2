// Package bottest provides a configurable bot.Store fake for handler and
// service tests. Unset hooks return empty results (or ErrNotFound for the
// by-number lookups), so a test only fills in the lookups its scenario
// touches.
package bottest

import (
	"context"

	domerrors "github.com/campustrack/chatbot-go/internal/errors"
	"github.com/campustrack/chatbot-go/internal/storage"
)

// Store implements bot.Store through optional function hooks.
type Store struct {
	ScheduleForFunc           func(ctx context.Context, day string) ([]storage.ScheduleEntry, error)
	ScheduleForFacultyFunc    func(ctx context.Context, facultyID int64, day string) ([]storage.ScheduleEntry, error)
	ScheduleForDepartmentFunc func(ctx context.Context, code string, day string) ([]storage.ScheduleEntry, error)
	ScheduleForPeriodFunc     func(ctx context.Context, period int, day string) ([]storage.ScheduleEntry, error)
	FacultyByIDFunc           func(ctx context.Context, id int64) (*storage.Faculty, error)
	AllActiveFacultyFunc      func(ctx context.Context) ([]storage.Faculty, error)
	AllDepartmentsFunc        func(ctx context.Context) ([]storage.Department, error)
	DailyStatusFunc           func(ctx context.Context, date string, filter storage.StatusFilter) ([]storage.DailyStatus, error)
	TodaySummaryCountsFunc    func(ctx context.Context, date string) (*storage.SummaryCounts, error)
	TeachingHistoryFunc       func(ctx context.Context, filter storage.HistoryFilter, limit int) ([]storage.TeachingRecord, error)
	SyllabusSessionFunc       func(ctx context.Context, sessionNumber int) (*storage.SyllabusSession, error)
	LabProgramFunc            func(ctx context.Context, programNumber int) (*storage.LabProgram, error)
	FAQCatalogFunc            func(ctx context.Context) ([]storage.FAQEntry, error)
}

func (s *Store) ScheduleFor(ctx context.Context, day string) ([]storage.ScheduleEntry, error) {
	if s.ScheduleForFunc != nil {
		return s.ScheduleForFunc(ctx, day)
	}
	return nil, nil
}

func (s *Store) ScheduleForFaculty(ctx context.Context, facultyID int64, day string) ([]storage.ScheduleEntry, error) {
	if s.ScheduleForFacultyFunc != nil {
		return s.ScheduleForFacultyFunc(ctx, facultyID, day)
	}
	return nil, nil
}

func (s *Store) ScheduleForDepartment(ctx context.Context, code string, day string) ([]storage.ScheduleEntry, error) {
	if s.ScheduleForDepartmentFunc != nil {
		return s.ScheduleForDepartmentFunc(ctx, code, day)
	}
	return nil, nil
}

func (s *Store) ScheduleForPeriod(ctx context.Context, period int, day string) ([]storage.ScheduleEntry, error) {
	if s.ScheduleForPeriodFunc != nil {
		return s.ScheduleForPeriodFunc(ctx, period, day)
	}
	return nil, nil
}

func (s *Store) FacultyByID(ctx context.Context, id int64) (*storage.Faculty, error) {
	if s.FacultyByIDFunc != nil {
		return s.FacultyByIDFunc(ctx, id)
	}
	return nil, domerrors.ErrNotFound
}

func (s *Store) AllActiveFaculty(ctx context.Context) ([]storage.Faculty, error) {
	if s.AllActiveFacultyFunc != nil {
		return s.AllActiveFacultyFunc(ctx)
	}
	return nil, nil
}

func (s *Store) AllDepartments(ctx context.Context) ([]storage.Department, error) {
	if s.AllDepartmentsFunc != nil {
		return s.AllDepartmentsFunc(ctx)
	}
	return nil, nil
}

func (s *Store) DailyStatus(ctx context.Context, date string, filter storage.StatusFilter) ([]storage.DailyStatus, error) {
	if s.DailyStatusFunc != nil {
		return s.DailyStatusFunc(ctx, date, filter)
	}
	return nil, nil
}

func (s *Store) TodaySummaryCounts(ctx context.Context, date string) (*storage.SummaryCounts, error) {
	if s.TodaySummaryCountsFunc != nil {
		return s.TodaySummaryCountsFunc(ctx, date)
	}
	return &storage.SummaryCounts{}, nil
}

func (s *Store) TeachingHistory(ctx context.Context, filter storage.HistoryFilter, limit int) ([]storage.TeachingRecord, error) {
	if s.TeachingHistoryFunc != nil {
		return s.TeachingHistoryFunc(ctx, filter, limit)
	}
	return nil, nil
}

func (s *Store) SyllabusSession(ctx context.Context, sessionNumber int) (*storage.SyllabusSession, error) {
	if s.SyllabusSessionFunc != nil {
		return s.SyllabusSessionFunc(ctx, sessionNumber)
	}
	return nil, domerrors.ErrNotFound
}

func (s *Store) LabProgram(ctx context.Context, programNumber int) (*storage.LabProgram, error) {
	if s.LabProgramFunc != nil {
		return s.LabProgramFunc(ctx, programNumber)
	}
	return nil, domerrors.ErrNotFound
}

func (s *Store) FAQCatalog(ctx context.Context) ([]storage.FAQEntry, error) {
	if s.FAQCatalogFunc != nil {
		return s.FAQCatalogFunc(ctx)
	}
	return nil, nil
}
