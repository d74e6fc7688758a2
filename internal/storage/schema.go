package storage

import (
	"context"
	"database/sql"
	"fmt"
)

// InitSchema creates all tables and indexes on the writer pool.
// Note: WAL mode and the other session pragmas are configured in db.go.
func (db *DB) InitSchema(ctx context.Context) error {
	creates := []func(context.Context, *sql.DB) error{
		createDepartmentsTable,
		createFacultyTable,
		createTimetableEntriesTable,
		createDailyEntriesTable,
		createSyllabusSessionsTable,
		createLabProgramsTable,
		createFAQsTable,
	}

	for _, create := range creates {
		if err := create(ctx, db.writer); err != nil {
			return err
		}
	}
	return nil
}

func createDepartmentsTable(ctx context.Context, db *sql.DB) error {
	query := `
	CREATE TABLE IF NOT EXISTS departments (
		id INTEGER PRIMARY KEY,
		name TEXT NOT NULL,
		code TEXT NOT NULL UNIQUE
	);
	CREATE INDEX IF NOT EXISTS idx_departments_code ON departments(code);
	`

	if _, err := db.ExecContext(ctx, query); err != nil {
		return fmt.Errorf("failed to create departments table: %w", err)
	}

	return nil
}

func createFacultyTable(ctx context.Context, db *sql.DB) error {
	query := `
	CREATE TABLE IF NOT EXISTS faculty (
		id INTEGER PRIMARY KEY,
		name TEXT NOT NULL,
		email TEXT NOT NULL UNIQUE,
		phone TEXT,
		department_code TEXT NOT NULL,
		experience TEXT,
		research_area TEXT,
		is_active INTEGER NOT NULL DEFAULT 1
	);
	CREATE INDEX IF NOT EXISTS idx_faculty_name ON faculty(name);
	CREATE INDEX IF NOT EXISTS idx_faculty_active ON faculty(is_active);
	`

	if _, err := db.ExecContext(ctx, query); err != nil {
		return fmt.Errorf("failed to create faculty table: %w", err)
	}

	return nil
}

func createTimetableEntriesTable(ctx context.Context, db *sql.DB) error {
	query := `
	CREATE TABLE IF NOT EXISTS timetable_entries (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		faculty_id INTEGER NOT NULL REFERENCES faculty(id),
		department_id INTEGER NOT NULL REFERENCES departments(id),
		day TEXT NOT NULL CHECK(day IN ('Monday', 'Tuesday', 'Wednesday', 'Thursday', 'Friday', 'Saturday', 'Sunday')),
		period INTEGER NOT NULL CHECK(period BETWEEN 1 AND 9),
		class_type TEXT NOT NULL DEFAULT 'theory' CHECK(class_type IN ('theory', 'lab', 'mini-project')),
		subject_code TEXT NOT NULL DEFAULT '24UCS271',
		subject_name TEXT NOT NULL DEFAULT 'C Programming',
		UNIQUE(faculty_id, department_id, day, period)
	);
	CREATE INDEX IF NOT EXISTS idx_timetable_day ON timetable_entries(day, period);
	CREATE INDEX IF NOT EXISTS idx_timetable_faculty ON timetable_entries(faculty_id, day);
	CREATE INDEX IF NOT EXISTS idx_timetable_department ON timetable_entries(department_id, day);
	`

	if _, err := db.ExecContext(ctx, query); err != nil {
		return fmt.Errorf("failed to create timetable_entries table: %w", err)
	}

	return nil
}

func createDailyEntriesTable(ctx context.Context, db *sql.DB) error {
	query := `
	CREATE TABLE IF NOT EXISTS daily_entries (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		faculty_id INTEGER NOT NULL REFERENCES faculty(id),
		department_id INTEGER NOT NULL REFERENCES departments(id),
		date TEXT NOT NULL,
		period INTEGER NOT NULL CHECK(period BETWEEN 1 AND 9),
		session_number INTEGER,
		is_absent INTEGER NOT NULL DEFAULT 0,
		is_swapped INTEGER NOT NULL DEFAULT 0,
		swapped_with TEXT,
		swap_type TEXT,
		is_extra_class INTEGER NOT NULL DEFAULT 0,
		extra_subject_code TEXT,
		extra_subject_name TEXT,
		summary TEXT,
		created_at INTEGER NOT NULL,
		UNIQUE(faculty_id, date, period)
	);
	CREATE INDEX IF NOT EXISTS idx_daily_entries_date ON daily_entries(date);
	CREATE INDEX IF NOT EXISTS idx_daily_entries_date_absent ON daily_entries(date, is_absent);
	CREATE INDEX IF NOT EXISTS idx_daily_entries_faculty ON daily_entries(faculty_id, date);
	`

	if _, err := db.ExecContext(ctx, query); err != nil {
		return fmt.Errorf("failed to create daily_entries table: %w", err)
	}

	return nil
}

func createSyllabusSessionsTable(ctx context.Context, db *sql.DB) error {
	query := `
	CREATE TABLE IF NOT EXISTS syllabus_sessions (
		session_number INTEGER PRIMARY KEY,
		title TEXT NOT NULL,
		unit INTEGER NOT NULL,
		topics TEXT,
		ppt_url TEXT
	);
	CREATE INDEX IF NOT EXISTS idx_syllabus_sessions_unit ON syllabus_sessions(unit);
	`

	if _, err := db.ExecContext(ctx, query); err != nil {
		return fmt.Errorf("failed to create syllabus_sessions table: %w", err)
	}

	return nil
}

func createLabProgramsTable(ctx context.Context, db *sql.DB) error {
	query := `
	CREATE TABLE IF NOT EXISTS lab_programs (
		program_number INTEGER PRIMARY KEY,
		title TEXT NOT NULL,
		description TEXT,
		moodle_url TEXT
	);
	`

	if _, err := db.ExecContext(ctx, query); err != nil {
		return fmt.Errorf("failed to create lab_programs table: %w", err)
	}

	return nil
}

func createFAQsTable(ctx context.Context, db *sql.DB) error {
	query := `
	CREATE TABLE IF NOT EXISTS faqs (
		id INTEGER PRIMARY KEY,
		question TEXT NOT NULL,
		answer TEXT NOT NULL,
		is_active INTEGER NOT NULL DEFAULT 1,
		created_at INTEGER NOT NULL
	);
	CREATE INDEX IF NOT EXISTS idx_faqs_active ON faqs(is_active);
	`

	if _, err := db.ExecContext(ctx, query); err != nil {
		return fmt.Errorf("failed to create faqs table: %w", err)
	}

	return nil
}
