package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	domerrors "github.com/campustrack/chatbot-go/internal/errors"
)

// SyllabusSession retrieves one syllabus session by number.
// Returns domerrors.ErrNotFound when the session does not exist.
func (db *DB) SyllabusSession(ctx context.Context, sessionNumber int) (*SyllabusSession, error) {
	query := `
		SELECT session_number, title, unit, COALESCE(topics, ''), COALESCE(ppt_url, '')
		FROM syllabus_sessions WHERE session_number = ?
	`

	var s SyllabusSession
	err := db.reader.QueryRowContext(ctx, query, sessionNumber).Scan(
		&s.SessionNumber,
		&s.Title,
		&s.Unit,
		&s.Topics,
		&s.PPTURL,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domerrors.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("query syllabus session: %w", err)
	}

	return &s, nil
}

// AllSyllabusSessions returns every syllabus session in session order.
// Used for loading the topic search indexes on startup.
func (db *DB) AllSyllabusSessions(ctx context.Context) ([]SyllabusSession, error) {
	query := `
		SELECT session_number, title, unit, COALESCE(topics, ''), COALESCE(ppt_url, '')
		FROM syllabus_sessions ORDER BY session_number
	`

	rows, err := db.reader.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("query syllabus sessions: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var sessions []SyllabusSession
	for rows.Next() {
		var s SyllabusSession
		if err := rows.Scan(&s.SessionNumber, &s.Title, &s.Unit, &s.Topics, &s.PPTURL); err != nil {
			return nil, fmt.Errorf("scan syllabus session: %w", err)
		}
		sessions = append(sessions, s)
	}

	return sessions, rows.Err()
}

// SaveSyllabusSessions inserts or updates syllabus sessions in a single transaction.
func (db *DB) SaveSyllabusSessions(ctx context.Context, sessions []SyllabusSession) error {
	if len(sessions) == 0 {
		return nil
	}

	query := `
		INSERT INTO syllabus_sessions (session_number, title, unit, topics, ppt_url)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT(session_number) DO UPDATE SET
			title = excluded.title,
			unit = excluded.unit,
			topics = excluded.topics,
			ppt_url = excluded.ppt_url
	`

	err := db.ExecBatchContext(ctx, query, func(stmt *sql.Stmt) error {
		for _, s := range sessions {
			if _, err := stmt.ExecContext(ctx, s.SessionNumber, s.Title, s.Unit, nullableString(s.Topics), nullableString(s.PPTURL)); err != nil {
				return fmt.Errorf("failed to save syllabus session %d: %w", s.SessionNumber, err)
			}
		}
		return nil
	})
	if err != nil {
		return err
	}

	slog.DebugContext(ctx, "batch operation completed",
		"operation", "SaveSyllabusSessions",
		"count", len(sessions))

	return nil
}

// CountSyllabusSessions returns the total number of syllabus sessions.
func (db *DB) CountSyllabusSessions(ctx context.Context) (int, error) {
	var count int
	err := db.reader.QueryRowContext(ctx, `SELECT COUNT(*) FROM syllabus_sessions`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count syllabus sessions: %w", err)
	}
	return count, nil
}

// LabProgram retrieves one weekly lab program by number.
// Returns domerrors.ErrNotFound when the program does not exist.
func (db *DB) LabProgram(ctx context.Context, programNumber int) (*LabProgram, error) {
	query := `
		SELECT program_number, title, COALESCE(description, ''), COALESCE(moodle_url, '')
		FROM lab_programs WHERE program_number = ?
	`

	var p LabProgram
	err := db.reader.QueryRowContext(ctx, query, programNumber).Scan(
		&p.ProgramNumber,
		&p.Title,
		&p.Description,
		&p.MoodleURL,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domerrors.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("query lab program: %w", err)
	}

	return &p, nil
}

// SaveLabPrograms inserts or updates lab programs in a single transaction.
func (db *DB) SaveLabPrograms(ctx context.Context, programs []LabProgram) error {
	if len(programs) == 0 {
		return nil
	}

	query := `
		INSERT INTO lab_programs (program_number, title, description, moodle_url)
		VALUES (?, ?, ?, ?)
		ON CONFLICT(program_number) DO UPDATE SET
			title = excluded.title,
			description = excluded.description,
			moodle_url = excluded.moodle_url
	`

	return db.ExecBatchContext(ctx, query, func(stmt *sql.Stmt) error {
		for _, p := range programs {
			if _, err := stmt.ExecContext(ctx, p.ProgramNumber, p.Title, nullableString(p.Description), nullableString(p.MoodleURL)); err != nil {
				return fmt.Errorf("failed to save lab program %d: %w", p.ProgramNumber, err)
			}
		}
		return nil
	})
}

// CountLabPrograms returns the total number of lab programs.
func (db *DB) CountLabPrograms(ctx context.Context) (int, error) {
	var count int
	err := db.reader.QueryRowContext(ctx, `SELECT COUNT(*) FROM lab_programs`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count lab programs: %w", err)
	}
	return count, nil
}
