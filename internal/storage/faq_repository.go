package storage

import (
	"context"
	"database/sql"
	"fmt"
	"time"
)

// FAQCatalog returns every active FAQ entry ordered by ID. The ordering
// makes score ties in the FAQ matcher resolve to the first entry.
func (db *DB) FAQCatalog(ctx context.Context) ([]FAQEntry, error) {
	query := `SELECT id, question, answer, is_active FROM faqs WHERE is_active = 1 ORDER BY id`

	rows, err := db.reader.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("query faq catalog: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var faqs []FAQEntry
	for rows.Next() {
		var faq FAQEntry
		if err := rows.Scan(&faq.ID, &faq.Question, &faq.Answer, &faq.IsActive); err != nil {
			return nil, fmt.Errorf("scan faq entry: %w", err)
		}
		faqs = append(faqs, faq)
	}

	return faqs, rows.Err()
}

// SaveFAQs inserts or updates FAQ entries in a single transaction.
func (db *DB) SaveFAQs(ctx context.Context, faqs []FAQEntry) error {
	if len(faqs) == 0 {
		return nil
	}

	query := `
		INSERT INTO faqs (id, question, answer, is_active, created_at)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			question = excluded.question,
			answer = excluded.answer,
			is_active = excluded.is_active
	`

	createdAt := time.Now().Unix()
	return db.ExecBatchContext(ctx, query, func(stmt *sql.Stmt) error {
		for _, faq := range faqs {
			if _, err := stmt.ExecContext(ctx, faq.ID, faq.Question, faq.Answer, faq.IsActive, createdAt); err != nil {
				return fmt.Errorf("failed to save faq %d: %w", faq.ID, err)
			}
		}
		return nil
	})
}

// CountFAQs returns the number of active FAQ entries.
func (db *DB) CountFAQs(ctx context.Context) (int, error) {
	var count int
	err := db.reader.QueryRowContext(ctx, `SELECT COUNT(*) FROM faqs WHERE is_active = 1`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count faqs: %w", err)
	}
	return count, nil
}
