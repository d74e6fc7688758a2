// Package warmup runs the startup tasks that make the chatbot fully
// answerable: catalog size gauges, the syllabus search indexes and the
// semantic intent index. Tasks run concurrently; index embedding reuses
// persisted vectors when they are complete.
package warmup

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/campustrack/chatbot-go/internal/intent"
	"github.com/campustrack/chatbot-go/internal/logger"
	"github.com/campustrack/chatbot-go/internal/metrics"
	"github.com/campustrack/chatbot-go/internal/rag"
	"github.com/campustrack/chatbot-go/internal/storage"
)

// Warmer owns the startup task set.
type Warmer struct {
	db       *storage.DB
	searcher *rag.HybridSearcher
	matcher  *intent.Matcher
	metrics  *metrics.Metrics
	logger   *logger.Logger
}

// New creates a warmer. Searcher and matcher may be nil when semantic
// search is disabled; their tasks then reduce to the keyword index and a
// no-op respectively.
func New(db *storage.DB, searcher *rag.HybridSearcher, matcher *intent.Matcher, m *metrics.Metrics, log *logger.Logger) *Warmer {
	return &Warmer{
		db:       db,
		searcher: searcher,
		matcher:  matcher,
		metrics:  m,
		logger:   log.WithModule("warmup"),
	}
}

// Run executes all warmup tasks and returns the first failure. A failed
// task does not cancel the others; the service can still answer with the
// stages that warmed successfully.
func (w *Warmer) Run(ctx context.Context) error {
	start := time.Now()
	g := new(errgroup.Group)

	g.Go(func() error { return w.task(ctx, "catalog_gauges", w.catalogGauges) })
	g.Go(func() error { return w.task(ctx, "syllabus_index", w.syllabusIndex) })
	g.Go(func() error { return w.task(ctx, "intent_index", w.intentIndex) })

	err := g.Wait()
	w.metrics.RecordWarmupDuration(time.Since(start).Seconds())
	if err != nil {
		return fmt.Errorf("warmup: %w", err)
	}
	w.logger.WithField("duration", time.Since(start).String()).Info("warmup complete")
	return nil
}

func (w *Warmer) task(ctx context.Context, name string, fn func(context.Context) error) error {
	if err := fn(ctx); err != nil {
		w.metrics.RecordWarmupTask(name, "error")
		w.logger.WithError(err).WithField("task", name).Error("warmup task failed")
		return fmt.Errorf("%s: %w", name, err)
	}
	w.metrics.RecordWarmupTask(name, "success")
	return nil
}

// RefreshCatalogGauges re-publishes the catalog row counts. The metrics
// updater job calls this on an interval after startup.
func (w *Warmer) RefreshCatalogGauges(ctx context.Context) error {
	return w.catalogGauges(ctx)
}

// catalogGauges publishes row counts for the served datasets.
func (w *Warmer) catalogGauges(ctx context.Context) error {
	counts := []struct {
		name  string
		count func(context.Context) (int, error)
	}{
		{"faculty", w.db.CountFaculty},
		{"departments", w.db.CountDepartments},
		{"timetable_entries", w.db.CountTimetableEntries},
		{"syllabus_sessions", w.db.CountSyllabusSessions},
		{"lab_programs", w.db.CountLabPrograms},
		{"faqs", w.db.CountFAQs},
		{"daily_entries", w.db.CountDailyEntries},
	}

	for _, c := range counts {
		n, err := c.count(ctx)
		if err != nil {
			return fmt.Errorf("count %s: %w", c.name, err)
		}
		w.metrics.SetCatalogSize(c.name, n)
	}
	return nil
}

// syllabusIndex builds the BM25 index and, when embeddings are enabled,
// the syllabus vector collection.
func (w *Warmer) syllabusIndex(ctx context.Context) error {
	if w.searcher == nil {
		return nil
	}
	sessions, err := w.db.AllSyllabusSessions(ctx)
	if err != nil {
		return fmt.Errorf("load syllabus: %w", err)
	}
	return w.searcher.Index(ctx, sessions)
}

// intentIndex embeds the semantic intent example catalog.
func (w *Warmer) intentIndex(ctx context.Context) error {
	return w.matcher.Index(ctx)
}
