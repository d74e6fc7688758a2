// Package storage provides SQLite persistence for schedule, faculty,
// daily status, syllabus, lab program and FAQ data.
package storage

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	"github.com/campustrack/chatbot-go/internal/config"

	_ "modernc.org/sqlite" // pure-Go SQLite driver
)

// DB wraps separate writer and reader connection pools over one SQLite file.
// SQLite allows a single writer at a time; funneling writes through a
// dedicated single-connection pool avoids SQLITE_BUSY churn, while reads
// fan out over the reader pool under WAL.
type DB struct {
	writer *sql.DB
	reader *sql.DB
	path   string
}

// New creates a new database connection pair and initializes the schema.
// The parent directory is created if it does not exist.
func New(ctx context.Context, dbPath string) (*DB, error) {
	if dbPath != ":memory:" {
		if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
			return nil, fmt.Errorf("failed to create database directory: %w", err)
		}
	}

	writer, err := open(ctx, dbPath, 1)
	if err != nil {
		return nil, fmt.Errorf("open writer: %w", err)
	}

	// An in-memory database exists per connection, so the reader must
	// share the writer's pool to see the same data.
	reader := writer
	if dbPath != ":memory:" {
		reader, err = open(ctx, dbPath, 4)
		if err != nil {
			_ = writer.Close()
			return nil, fmt.Errorf("open reader: %w", err)
		}
	}

	db := &DB{
		writer: writer,
		reader: reader,
		path:   dbPath,
	}

	if err := db.InitSchema(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}

	return db, nil
}

// open opens a single pool against dbPath and applies the session pragmas.
func open(ctx context.Context, dbPath string, maxConns int) (*sql.DB, error) {
	conn, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	conn.SetMaxOpenConns(maxConns)
	conn.SetMaxIdleConns(maxConns)
	if maxConns > 1 {
		// Reader connections are recycled periodically; the single writer
		// connection lives for the process so its pragmas stay applied.
		conn.SetConnMaxLifetime(config.DatabaseConnMaxLifetime)
	}

	pragmas := []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA busy_timeout=30000",
		"PRAGMA foreign_keys=ON",
		"PRAGMA synchronous=NORMAL",
	}
	for _, pragma := range pragmas {
		if _, err := conn.ExecContext(ctx, pragma); err != nil {
			_ = conn.Close()
			return nil, fmt.Errorf("failed to apply %s: %w", pragma, err)
		}
	}

	if err := conn.PingContext(ctx); err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return conn, nil
}

// Close closes both connection pools.
func (db *DB) Close() error {
	if db.reader != nil && db.reader != db.writer {
		_ = db.reader.Close()
	}
	return db.writer.Close()
}

// Ping checks that both pools can reach the database.
func (db *DB) Ping(ctx context.Context) error {
	if err := db.writer.PingContext(ctx); err != nil {
		return fmt.Errorf("ping writer: %w", err)
	}
	return db.reader.PingContext(ctx)
}

// Path returns the database file path.
func (db *DB) Path() string {
	return db.path
}

// Writer returns the write connection pool.
func (db *DB) Writer() *sql.DB {
	return db.writer
}

// Reader returns the read connection pool.
func (db *DB) Reader() *sql.DB {
	return db.reader
}

// ExecBatchContext runs fn with a prepared statement inside a single write
// transaction. It commits on success and rolls back when fn returns an error.
func (db *DB) ExecBatchContext(ctx context.Context, query string, fn func(*sql.Stmt) error) error {
	tx, err := db.writer.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	stmt, err := tx.PrepareContext(ctx, query)
	if err != nil {
		return fmt.Errorf("prepare statement: %w", err)
	}
	defer func() { _ = stmt.Close() }()

	if err := fn(stmt); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

// CheckpointWAL flushes the write-ahead log into the main database file.
// Called before snapshotting so the copied file is self-contained.
func (db *DB) CheckpointWAL(ctx context.Context) error {
	if _, err := db.writer.ExecContext(ctx, "PRAGMA wal_checkpoint(TRUNCATE)"); err != nil {
		return fmt.Errorf("wal checkpoint: %w", err)
	}
	return nil
}

// CreateSnapshot writes a consistent copy of the database to destPath with
// VACUUM INTO. Concurrent readers keep working while the copy runs.
func (db *DB) CreateSnapshot(ctx context.Context, destPath string) error {
	if _, err := db.writer.ExecContext(ctx, "VACUUM INTO ?", destPath); err != nil {
		return fmt.Errorf("vacuum into: %w", err)
	}
	return nil
}
