// Package main provides the seed tool that loads the course dataset into
// the chatbot database. All writes are upserts, so re-running it against
// a populated database refreshes the catalog without duplicating rows.
package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/campustrack/chatbot-go/internal/config"
	"github.com/campustrack/chatbot-go/internal/data"
	"github.com/campustrack/chatbot-go/internal/logger"
	"github.com/campustrack/chatbot-go/internal/storage"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	log := logger.New(cfg.LogLevel)
	log.Info("Starting seed tool")

	if err := os.MkdirAll(cfg.DataDir, 0o755); err != nil {
		log.WithError(err).Error("Failed to create data directory")
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	db, err := storage.New(ctx, cfg.SQLitePath())
	if err != nil {
		log.WithError(err).Error("Failed to connect to database")
		os.Exit(1)
	}
	defer func() { _ = db.Close() }()
	log.WithField("path", cfg.SQLitePath()).Info("Database connected")

	start := time.Now()
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error { return seed(gctx, "departments", len(data.Departments), func() error { return db.SaveDepartments(gctx, data.Departments) }, log) })
	g.Go(func() error { return seed(gctx, "faculty", len(data.Faculty), func() error { return db.SaveFaculty(gctx, data.Faculty) }, log) })
	g.Go(func() error { return seed(gctx, "timetable", len(data.TimetableEntries), func() error { return db.SaveTimetableEntries(gctx, data.TimetableEntries) }, log) })
	g.Go(func() error { return seed(gctx, "syllabus", len(data.SyllabusSessions), func() error { return db.SaveSyllabusSessions(gctx, data.SyllabusSessions) }, log) })
	g.Go(func() error { return seed(gctx, "labs", len(data.LabPrograms), func() error { return db.SaveLabPrograms(gctx, data.LabPrograms) }, log) })
	g.Go(func() error { return seed(gctx, "faqs", len(data.FAQs), func() error { return db.SaveFAQs(gctx, data.FAQs) }, log) })

	if err := g.Wait(); err != nil {
		log.WithError(err).Error("Seed failed")
		os.Exit(1)
	}

	log.WithField("duration", time.Since(start).String()).Info("Seed complete")
}

func seed(ctx context.Context, name string, count int, save func() error, log *logger.Logger) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := save(); err != nil {
		return fmt.Errorf("seed %s: %w", name, err)
	}
	log.WithField("dataset", name).WithField("rows", count).Info("Dataset loaded")
	return nil
}
