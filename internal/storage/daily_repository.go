package storage

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"
)

// DailyStatus returns the filled daily entries for one date joined with
// faculty and department details, narrowed by filter, ordered by period.
func (db *DB) DailyStatus(ctx context.Context, date string, filter StatusFilter) ([]DailyStatus, error) {
	query := `
		SELECT e.faculty_id, f.name, d.code, d.name, e.date, e.period,
			COALESCE(e.session_number, 0), COALESCE(s.title, ''),
			e.is_absent, e.is_swapped, COALESCE(e.swapped_with, ''), COALESCE(e.swap_type, ''),
			e.is_extra_class, COALESCE(e.extra_subject_code, ''), COALESCE(e.extra_subject_name, ''),
			COALESCE(e.summary, '')
		FROM daily_entries e
		JOIN faculty f ON f.id = e.faculty_id
		JOIN departments d ON d.id = e.department_id
		LEFT JOIN syllabus_sessions s ON s.session_number = e.session_number
	`

	conditions := []string{"e.date = ?"}
	args := []any{date}

	if filter.FacultyID != 0 {
		conditions = append(conditions, "e.faculty_id = ?")
		args = append(args, filter.FacultyID)
	}
	if filter.DepartmentCode != "" {
		conditions = append(conditions, "d.code = ?")
		args = append(args, filter.DepartmentCode)
	}
	if filter.AbsentOnly {
		conditions = append(conditions, "e.is_absent = 1")
	}

	query += "WHERE " + strings.Join(conditions, " AND ") + " ORDER BY e.period, d.code"

	start := time.Now()
	rows, err := db.reader.QueryContext(ctx, query, args...)
	if err != nil {
		slog.ErrorContext(ctx, "failed to query daily status",
			"date", date,
			"error", err)
		return nil, fmt.Errorf("query daily status: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var statuses []DailyStatus
	for rows.Next() {
		var ds DailyStatus
		if err := rows.Scan(
			&ds.FacultyID,
			&ds.FacultyName,
			&ds.DepartmentCode,
			&ds.DepartmentName,
			&ds.Date,
			&ds.Period,
			&ds.SessionNumber,
			&ds.SessionTitle,
			&ds.IsAbsent,
			&ds.IsSwapped,
			&ds.SwappedWith,
			&ds.SwapType,
			&ds.IsExtraClass,
			&ds.ExtraSubjectCode,
			&ds.ExtraSubjectName,
			&ds.Summary,
		); err != nil {
			return nil, fmt.Errorf("scan daily status: %w", err)
		}
		statuses = append(statuses, ds)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate daily statuses: %w", err)
	}

	if duration := time.Since(start); duration > 100*time.Millisecond {
		slog.WarnContext(ctx, "slow database query",
			"operation", "DailyStatus",
			"duration_ms", duration.Milliseconds(),
			"date", date,
			"result_count", len(statuses))
	}

	return statuses, nil
}

// TodaySummaryCounts aggregates the entry state for one date: how many
// classes the weekday timetable schedules, how many daily entries were
// filled, and the absent/swapped/extra breakdowns.
func (db *DB) TodaySummaryCounts(ctx context.Context, date string) (*SummaryCounts, error) {
	day, err := weekdayOf(date)
	if err != nil {
		return nil, err
	}

	var counts SummaryCounts
	err = db.reader.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM timetable_entries WHERE day = ?`, day,
	).Scan(&counts.Scheduled)
	if err != nil {
		return nil, fmt.Errorf("count scheduled classes: %w", err)
	}

	err = db.reader.QueryRowContext(ctx, `
		SELECT COUNT(*),
			COALESCE(SUM(CASE WHEN is_absent = 1 THEN 1 ELSE 0 END), 0),
			COALESCE(SUM(CASE WHEN is_swapped = 1 THEN 1 ELSE 0 END), 0),
			COALESCE(SUM(CASE WHEN is_extra_class = 1 THEN 1 ELSE 0 END), 0)
		FROM daily_entries WHERE date = ?
	`, date).Scan(&counts.Filled, &counts.Absent, &counts.Swapped, &counts.ExtraClasses)
	if err != nil {
		return nil, fmt.Errorf("count daily entries: %w", err)
	}

	// Extra classes can push filled above scheduled; pending never goes negative.
	counts.Pending = counts.Scheduled - counts.Filled
	if counts.Pending < 0 {
		counts.Pending = 0
	}

	return &counts, nil
}

// TeachingHistory returns the most recently filled daily entries, newest
// first, skipping absence markers. limit caps the number of rows.
func (db *DB) TeachingHistory(ctx context.Context, filter HistoryFilter, limit int) ([]TeachingRecord, error) {
	query := `
		SELECT e.date, f.name, d.name, e.period,
			COALESCE(e.session_number, 0), COALESCE(s.title, ''), COALESCE(e.summary, '')
		FROM daily_entries e
		JOIN faculty f ON f.id = e.faculty_id
		JOIN departments d ON d.id = e.department_id
		LEFT JOIN syllabus_sessions s ON s.session_number = e.session_number
	`

	conditions := []string{"e.is_absent = 0"}
	var args []any

	if filter.FacultyID != 0 {
		conditions = append(conditions, "e.faculty_id = ?")
		args = append(args, filter.FacultyID)
	}
	if filter.DepartmentCode != "" {
		conditions = append(conditions, "d.code = ?")
		args = append(args, filter.DepartmentCode)
	}

	query += "WHERE " + strings.Join(conditions, " AND ") + " ORDER BY e.date DESC, e.period DESC LIMIT ?"
	args = append(args, limit)

	rows, err := db.reader.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query teaching history: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var records []TeachingRecord
	for rows.Next() {
		var r TeachingRecord
		if err := rows.Scan(
			&r.Date,
			&r.FacultyName,
			&r.DepartmentName,
			&r.Period,
			&r.SessionNumber,
			&r.SessionTitle,
			&r.Summary,
		); err != nil {
			return nil, fmt.Errorf("scan teaching record: %w", err)
		}
		records = append(records, r)
	}

	return records, rows.Err()
}

// SaveDailyEntry inserts or updates one daily entry. The slot is keyed by
// faculty, date and period so refilling a period overwrites the old record.
func (db *DB) SaveDailyEntry(ctx context.Context, entry *DailyEntry) error {
	query := `
		INSERT INTO daily_entries (
			faculty_id, department_id, date, period, session_number,
			is_absent, is_swapped, swapped_with, swap_type,
			is_extra_class, extra_subject_code, extra_subject_name,
			summary, created_at
		)
		VALUES (?, (SELECT id FROM departments WHERE code = ?), ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(faculty_id, date, period) DO UPDATE SET
			department_id = excluded.department_id,
			session_number = excluded.session_number,
			is_absent = excluded.is_absent,
			is_swapped = excluded.is_swapped,
			swapped_with = excluded.swapped_with,
			swap_type = excluded.swap_type,
			is_extra_class = excluded.is_extra_class,
			extra_subject_code = excluded.extra_subject_code,
			extra_subject_name = excluded.extra_subject_name,
			summary = excluded.summary
	`

	var sessionNumber any
	if entry.SessionNumber != 0 {
		sessionNumber = entry.SessionNumber
	}

	_, err := db.writer.ExecContext(ctx, query,
		entry.FacultyID,
		entry.DepartmentCode,
		entry.Date,
		entry.Period,
		sessionNumber,
		entry.IsAbsent,
		entry.IsSwapped,
		nullableString(entry.SwappedWith),
		nullableString(entry.SwapType),
		entry.IsExtraClass,
		nullableString(entry.ExtraSubjectCode),
		nullableString(entry.ExtraSubjectName),
		nullableString(entry.Summary),
		time.Now().Unix(),
	)
	if err != nil {
		slog.ErrorContext(ctx, "failed to save daily entry",
			"faculty_id", entry.FacultyID,
			"date", entry.Date,
			"period", entry.Period,
			"error", err)
		return fmt.Errorf("failed to save daily entry: %w", err)
	}

	return nil
}

// PruneDailyEntries deletes daily entries older than the cutoff date.
// Returns the number of deleted rows.
func (db *DB) PruneDailyEntries(ctx context.Context, before string) (int64, error) {
	result, err := db.writer.ExecContext(ctx, `DELETE FROM daily_entries WHERE date < ?`, before)
	if err != nil {
		return 0, fmt.Errorf("failed to prune daily entries: %w", err)
	}

	deleted, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("count pruned rows: %w", err)
	}
	return deleted, nil
}

// CountDailyEntries returns the total number of daily entries.
func (db *DB) CountDailyEntries(ctx context.Context) (int, error) {
	var count int
	err := db.reader.QueryRowContext(ctx, `SELECT COUNT(*) FROM daily_entries`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count daily entries: %w", err)
	}
	return count, nil
}

// weekdayOf resolves the weekday name for a DateLayout date string.
func weekdayOf(date string) (string, error) {
	t, err := time.Parse(DateLayout, date)
	if err != nil {
		return "", fmt.Errorf("parse date %q: %w", date, err)
	}
	return t.Weekday().String(), nil
}

// nullableString maps "" to NULL so optional columns stay NULL in storage.
func nullableString(s string) any {
	if s == "" {
		return nil
	}
	return s
}
