package storage

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"time"
)

const scheduleSelect = `
	SELECT f.id, f.name, d.code, d.name, t.day, t.period, t.class_type
	FROM timetable_entries t
	JOIN faculty f ON f.id = t.faculty_id
	JOIN departments d ON d.id = t.department_id
`

// ScheduleFor returns every timetable entry for the given weekday,
// ordered by period then department code.
func (db *DB) ScheduleFor(ctx context.Context, day string) ([]ScheduleEntry, error) {
	query := scheduleSelect + `WHERE t.day = ? ORDER BY t.period, d.code`
	return db.queryScheduleEntries(ctx, "ScheduleFor", query, day)
}

// ScheduleForFaculty returns the timetable entries for one faculty member.
// An empty day returns the whole week.
func (db *DB) ScheduleForFaculty(ctx context.Context, facultyID int64, day string) ([]ScheduleEntry, error) {
	if day == "" {
		query := scheduleSelect + `WHERE t.faculty_id = ? ORDER BY t.day, t.period`
		return db.queryScheduleEntries(ctx, "ScheduleForFaculty", query, facultyID)
	}
	query := scheduleSelect + `WHERE t.faculty_id = ? AND t.day = ? ORDER BY t.period`
	return db.queryScheduleEntries(ctx, "ScheduleForFaculty", query, facultyID, day)
}

// ScheduleForDepartment returns the timetable entries for one department.
// An empty day returns the whole week.
func (db *DB) ScheduleForDepartment(ctx context.Context, code string, day string) ([]ScheduleEntry, error) {
	if day == "" {
		query := scheduleSelect + `WHERE d.code = ? ORDER BY t.day, t.period`
		return db.queryScheduleEntries(ctx, "ScheduleForDepartment", query, code)
	}
	query := scheduleSelect + `WHERE d.code = ? AND t.day = ? ORDER BY t.period`
	return db.queryScheduleEntries(ctx, "ScheduleForDepartment", query, code, day)
}

// ScheduleForPeriod returns every timetable entry at the given period on
// the given weekday.
func (db *DB) ScheduleForPeriod(ctx context.Context, period int, day string) ([]ScheduleEntry, error) {
	query := scheduleSelect + `WHERE t.period = ? AND t.day = ? ORDER BY d.code`
	return db.queryScheduleEntries(ctx, "ScheduleForPeriod", query, period, day)
}

func (db *DB) queryScheduleEntries(ctx context.Context, operation, query string, args ...any) ([]ScheduleEntry, error) {
	start := time.Now()

	rows, err := db.reader.QueryContext(ctx, query, args...)
	if err != nil {
		slog.ErrorContext(ctx, "failed to query schedule",
			"operation", operation,
			"error", err)
		return nil, fmt.Errorf("query schedule: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var entries []ScheduleEntry
	for rows.Next() {
		var e ScheduleEntry
		if err := rows.Scan(
			&e.FacultyID,
			&e.FacultyName,
			&e.DepartmentCode,
			&e.DepartmentName,
			&e.Day,
			&e.Period,
			&e.ClassType,
		); err != nil {
			return nil, fmt.Errorf("scan schedule entry: %w", err)
		}
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate schedule entries: %w", err)
	}

	// Warn on slow queries (>100ms)
	if duration := time.Since(start); duration > 100*time.Millisecond {
		slog.WarnContext(ctx, "slow database query",
			"operation", operation,
			"duration_ms", duration.Milliseconds(),
			"result_count", len(entries))
	}

	return entries, nil
}

// SaveTimetableEntries inserts or updates weekly timetable slots in a single
// transaction. Department codes are resolved to row IDs on insert.
func (db *DB) SaveTimetableEntries(ctx context.Context, entries []TimetableEntry) error {
	if len(entries) == 0 {
		return nil
	}

	query := `
		INSERT INTO timetable_entries (faculty_id, department_id, day, period, class_type)
		VALUES (?, (SELECT id FROM departments WHERE code = ?), ?, ?, ?)
		ON CONFLICT(faculty_id, department_id, day, period) DO UPDATE SET
			class_type = excluded.class_type
	`

	start := time.Now()
	err := db.ExecBatchContext(ctx, query, func(stmt *sql.Stmt) error {
		for _, entry := range entries {
			classType := entry.ClassType
			if classType == "" {
				classType = "theory"
			}
			if _, err := stmt.ExecContext(ctx, entry.FacultyID, entry.DepartmentCode, entry.Day, entry.Period, classType); err != nil {
				return fmt.Errorf("failed to save timetable entry (faculty %d, %s %s period %d): %w",
					entry.FacultyID, entry.DepartmentCode, entry.Day, entry.Period, err)
			}
		}
		return nil
	})
	if err != nil {
		return err
	}

	slog.DebugContext(ctx, "batch operation completed",
		"operation", "SaveTimetableEntries",
		"count", len(entries),
		"duration_ms", time.Since(start).Milliseconds())

	return nil
}

// CountTimetableEntries returns the total number of timetable slots.
func (db *DB) CountTimetableEntries(ctx context.Context) (int, error) {
	var count int
	err := db.reader.QueryRowContext(ctx, `SELECT COUNT(*) FROM timetable_entries`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count timetable entries: %w", err)
	}
	return count, nil
}

// SaveDepartments inserts or updates department records in a single transaction.
func (db *DB) SaveDepartments(ctx context.Context, departments []Department) error {
	if len(departments) == 0 {
		return nil
	}

	query := `
		INSERT INTO departments (id, name, code)
		VALUES (?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			name = excluded.name,
			code = excluded.code
	`

	return db.ExecBatchContext(ctx, query, func(stmt *sql.Stmt) error {
		for _, dept := range departments {
			if _, err := stmt.ExecContext(ctx, dept.ID, dept.Name, dept.Code); err != nil {
				return fmt.Errorf("failed to save department %s: %w", dept.Code, err)
			}
		}
		return nil
	})
}

// AllDepartments returns every department ordered by code.
func (db *DB) AllDepartments(ctx context.Context) ([]Department, error) {
	rows, err := db.reader.QueryContext(ctx, `SELECT id, name, code FROM departments ORDER BY code`)
	if err != nil {
		return nil, fmt.Errorf("query departments: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var departments []Department
	for rows.Next() {
		var dept Department
		if err := rows.Scan(&dept.ID, &dept.Name, &dept.Code); err != nil {
			return nil, fmt.Errorf("scan department: %w", err)
		}
		departments = append(departments, dept)
	}

	return departments, rows.Err()
}

// CountDepartments returns the total number of departments.
func (db *DB) CountDepartments(ctx context.Context) (int, error) {
	var count int
	err := db.reader.QueryRowContext(ctx, `SELECT COUNT(*) FROM departments`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count departments: %w", err)
	}
	return count, nil
}
