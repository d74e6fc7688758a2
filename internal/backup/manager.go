package backup

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/campustrack/chatbot-go/internal/config"
	"github.com/campustrack/chatbot-go/internal/logger"
	"github.com/campustrack/chatbot-go/internal/metrics"
	"github.com/campustrack/chatbot-go/internal/storage"
)

// ErrNoSnapshot is returned by Restore when the bucket holds no snapshot.
var ErrNoSnapshot = errors.New("backup: no snapshot exists")

// Manager uploads and restores database snapshots.
type Manager struct {
	client  *Client
	cfg     config.BackupConfig
	metrics *metrics.Metrics
	logger  *logger.Logger
	tempDir string
}

// NewManager creates a snapshot manager.
func NewManager(client *Client, cfg config.BackupConfig, m *metrics.Metrics, log *logger.Logger) *Manager {
	return &Manager{
		client:  client,
		cfg:     cfg,
		metrics: m,
		logger:  log.WithModule("backup"),
		tempDir: os.TempDir(),
	}
}

// Backup snapshots the database and uploads it compressed. The WAL is
// checkpointed first so the snapshot is self-contained.
func (m *Manager) Backup(ctx context.Context, db *storage.DB) (string, error) {
	start := time.Now()
	etag, err := m.backup(ctx, db)
	if err != nil {
		m.metrics.RecordBackupRun("error", time.Since(start).Seconds())
		return "", err
	}
	m.metrics.RecordBackupRun("success", time.Since(start).Seconds())
	m.logger.WithFields(map[string]any{
		"key":      m.cfg.SnapshotKey,
		"etag":     etag,
		"duration": time.Since(start).String(),
	}).Info("snapshot uploaded")
	return etag, nil
}

func (m *Manager) backup(ctx context.Context, db *storage.DB) (string, error) {
	if err := db.CheckpointWAL(ctx); err != nil {
		return "", err
	}

	snapshotPath := filepath.Join(m.tempDir, fmt.Sprintf("snapshot_%d.db", time.Now().UnixNano()))
	if err := db.CreateSnapshot(ctx, snapshotPath); err != nil {
		return "", err
	}
	defer os.Remove(snapshotPath)

	compressedPath := snapshotPath + ".zst"
	if err := CompressFile(snapshotPath, compressedPath); err != nil {
		return "", err
	}
	defer os.Remove(compressedPath)

	compressed, err := os.Open(compressedPath)
	if err != nil {
		return "", fmt.Errorf("backup: open compressed snapshot: %w", err)
	}
	defer compressed.Close()

	return m.client.Upload(ctx, m.cfg.SnapshotKey, compressed, "application/zstd")
}

// Restore downloads the latest snapshot and decompresses it to dbPath.
// Called before the database is opened, so nothing holds the file yet.
func (m *Manager) Restore(ctx context.Context, dbPath string) error {
	body, etag, err := m.client.Download(ctx, m.cfg.SnapshotKey)
	if err != nil {
		if errors.Is(err, ErrObjectNotFound) {
			return ErrNoSnapshot
		}
		return err
	}
	defer body.Close()

	if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
		return fmt.Errorf("backup: create data directory: %w", err)
	}
	if err := DecompressStream(body, dbPath); err != nil {
		return err
	}

	m.logger.WithFields(map[string]any{"key": m.cfg.SnapshotKey, "etag": etag}).
		Info("snapshot restored")
	return nil
}

// RestoreIfMissing restores only when no database file exists locally. A
// missing remote snapshot is not an error; the schema init seeds fresh.
func (m *Manager) RestoreIfMissing(ctx context.Context, dbPath string) error {
	if _, err := os.Stat(dbPath); err == nil {
		return nil
	}
	if err := m.Restore(ctx, dbPath); err != nil {
		if errors.Is(err, ErrNoSnapshot) {
			m.logger.Info("no remote snapshot, starting fresh")
			return nil
		}
		return err
	}
	return nil
}
