package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	domerrors "github.com/campustrack/chatbot-go/internal/errors"
)

const facultySelect = `
	SELECT id, name, email, COALESCE(phone, ''), department_code,
		COALESCE(experience, ''), COALESCE(research_area, ''), is_active
	FROM faculty
`

// FacultyByID retrieves a faculty member by ID.
// Returns domerrors.ErrNotFound when no such faculty exists.
func (db *DB) FacultyByID(ctx context.Context, id int64) (*Faculty, error) {
	query := facultySelect + `WHERE id = ?`

	var f Faculty
	err := db.reader.QueryRowContext(ctx, query, id).Scan(
		&f.ID,
		&f.Name,
		&f.Email,
		&f.Phone,
		&f.DepartmentCode,
		&f.Experience,
		&f.ResearchArea,
		&f.IsActive,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domerrors.ErrNotFound
	}
	if err != nil {
		slog.ErrorContext(ctx, "failed to query faculty",
			"faculty_id", id,
			"error", err)
		return nil, fmt.Errorf("query faculty: %w", err)
	}

	return &f, nil
}

// AllActiveFaculty returns every active faculty member ordered by ID.
// The ordering makes name-match ties resolve to the first seeded entry.
func (db *DB) AllActiveFaculty(ctx context.Context) ([]Faculty, error) {
	query := facultySelect + `WHERE is_active = 1 ORDER BY id`

	rows, err := db.reader.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("query active faculty: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var faculty []Faculty
	for rows.Next() {
		var f Faculty
		if err := rows.Scan(
			&f.ID,
			&f.Name,
			&f.Email,
			&f.Phone,
			&f.DepartmentCode,
			&f.Experience,
			&f.ResearchArea,
			&f.IsActive,
		); err != nil {
			return nil, fmt.Errorf("scan faculty: %w", err)
		}
		faculty = append(faculty, f)
	}

	return faculty, rows.Err()
}

// SaveFaculty inserts or updates faculty records in a single transaction.
func (db *DB) SaveFaculty(ctx context.Context, faculty []Faculty) error {
	if len(faculty) == 0 {
		return nil
	}

	query := `
		INSERT INTO faculty (id, name, email, phone, department_code, experience, research_area, is_active)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			name = excluded.name,
			email = excluded.email,
			phone = excluded.phone,
			department_code = excluded.department_code,
			experience = excluded.experience,
			research_area = excluded.research_area,
			is_active = excluded.is_active
	`

	return db.ExecBatchContext(ctx, query, func(stmt *sql.Stmt) error {
		for _, f := range faculty {
			if _, err := stmt.ExecContext(ctx, f.ID, f.Name, f.Email, f.Phone, f.DepartmentCode, f.Experience, f.ResearchArea, f.IsActive); err != nil {
				return fmt.Errorf("failed to save faculty %s: %w", f.Name, err)
			}
		}
		return nil
	})
}

// CountFaculty returns the number of active faculty members.
func (db *DB) CountFaculty(ctx context.Context) (int, error) {
	var count int
	err := db.reader.QueryRowContext(ctx, `SELECT COUNT(*) FROM faculty WHERE is_active = 1`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count faculty: %w", err)
	}
	return count, nil
}
