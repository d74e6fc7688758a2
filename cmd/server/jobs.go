// Package main provides the campus chatbot server entry point.
package main

import (
	"context"
	"time"

	"github.com/campustrack/chatbot-go/internal/backup"
	"github.com/campustrack/chatbot-go/internal/config"
	"github.com/campustrack/chatbot-go/internal/logger"
	"github.com/campustrack/chatbot-go/internal/storage"
	"github.com/campustrack/chatbot-go/internal/warmup"
)

// pruneDailyEntries periodically deletes daily status rows older than the
// retention window. Historical teaching facts are preserved in the
// teaching history tables; only the day-by-day status rows expire.
func pruneDailyEntries(ctx context.Context, db *storage.DB, retention time.Duration, log *logger.Logger) {
	// Run the first prune after a short delay to let the server stabilize
	select {
	case <-ctx.Done():
		return
	case <-time.After(config.StatusPruneInitialDelay):
		performPrune(ctx, db, retention, log)
	}

	ticker := time.NewTicker(config.StatusPruneInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			performPrune(ctx, db, retention, log)
		}
	}
}

// performPrune executes one retention pass
func performPrune(ctx context.Context, db *storage.DB, retention time.Duration, log *logger.Logger) {
	before := time.Now().Add(-retention).Format(storage.DateLayout)

	deleted, err := db.PruneDailyEntries(ctx, before)
	if err != nil {
		log.WithError(err).Error("Failed to prune daily entries")
		return
	}

	remaining, _ := db.CountDailyEntries(ctx)
	log.WithFields(map[string]any{
		"deleted":   deleted,
		"remaining": remaining,
		"before":    before,
	}).Info("Daily entry prune complete")
}

// updateCatalogMetrics keeps the catalog size gauges fresh after the
// initial warmup pass
func updateCatalogMetrics(ctx context.Context, warmer *warmup.Warmer, log *logger.Logger) {
	ticker := time.NewTicker(config.MetricsUpdateInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := warmer.RefreshCatalogGauges(ctx); err != nil {
				log.WithError(err).Warn("Failed to update catalog size metrics")
			}
		}
	}
}

// runBackupLoop uploads a compressed database snapshot on an interval.
// A lease on the remote lock object ensures that when several replicas
// run concurrently, exactly one performs the upload.
func runBackupLoop(ctx context.Context, client *backup.Client, manager *backup.Manager, db *storage.DB, cfg config.BackupConfig, log *logger.Logger) {
	ticker := time.NewTicker(cfg.Interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			performBackup(ctx, client, manager, db, cfg, log)
		}
	}
}

// performBackup executes one lock-guarded snapshot upload
func performBackup(ctx context.Context, client *backup.Client, manager *backup.Manager, db *storage.DB, cfg config.BackupConfig, log *logger.Logger) {
	lock := backup.NewLock(client, cfg.LockKey, cfg.LockTTL)

	acquired, err := lock.Acquire(ctx)
	if err != nil {
		log.WithError(err).Error("Failed to acquire backup lock")
		return
	}
	if !acquired {
		log.Debug("Backup lock held by another replica, skipping this interval")
		return
	}
	defer func() {
		if err := lock.Release(ctx); err != nil {
			log.WithError(err).Warn("Failed to release backup lock")
		}
	}()

	if _, err := manager.Backup(ctx, db); err != nil {
		log.WithError(err).Error("Snapshot backup failed")
	}
}
