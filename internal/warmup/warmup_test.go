package warmup

import (
	"context"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/require"

	"github.com/campustrack/chatbot-go/internal/logger"
	"github.com/campustrack/chatbot-go/internal/metrics"
	"github.com/campustrack/chatbot-go/internal/rag"
	"github.com/campustrack/chatbot-go/internal/storage"
)

func newTestDB(t *testing.T) *storage.DB {
	t.Helper()
	ctx := context.Background()
	db, err := storage.New(ctx, ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	require.NoError(t, db.SaveDepartments(ctx, []storage.Department{
		{ID: 1, Name: "B.Tech AI&DS - A", Code: "AIDS-A"},
	}))
	require.NoError(t, db.SaveFaculty(ctx, []storage.Faculty{
		{ID: 1, Name: "Sathish R", Email: "sathish@example.edu", DepartmentCode: "AIDS-A", IsActive: true},
	}))
	require.NoError(t, db.SaveSyllabusSessions(ctx, []storage.SyllabusSession{
		{SessionNumber: 1, Title: "Introduction to C Programming", Unit: 1, Topics: "history, structure"},
		{SessionNumber: 2, Title: "Data Types", Unit: 1, Topics: "int, float, char"},
	}))
	return db
}

func TestWarmerRun(t *testing.T) {
	t.Parallel()

	db := newTestDB(t)
	log := logger.New("info")
	searcher := rag.NewHybridSearcher(nil, rag.NewBM25Index(log), log)
	m := metrics.New(prometheus.NewRegistry())

	w := New(db, searcher, nil, m, log)
	require.NoError(t, w.Run(context.Background()))

	// The syllabus task must leave the keyword index searchable.
	results, err := searcher.Search(context.Background(), "data types", 3)
	require.NoError(t, err)
	require.NotEmpty(t, results)
	require.Equal(t, 2, results[0].SessionNumber)
}

func TestWarmerRunWithoutSearch(t *testing.T) {
	t.Parallel()

	db := newTestDB(t)
	m := metrics.New(prometheus.NewRegistry())

	w := New(db, nil, nil, m, logger.New("info"))
	require.NoError(t, w.Run(context.Background()))
}
