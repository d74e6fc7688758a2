package intent

import (
	"context"
	"fmt"

	"github.com/campustrack/chatbot-go/internal/logger"
	"github.com/campustrack/chatbot-go/internal/rag"
)

// Matcher resolves a question to an intent by nearest-example search over
// the embedded catalog.
type Matcher struct {
	vdb           *rag.VectorDB
	minSimilarity float32
	logger        *logger.Logger
}

// NewMatcher creates a matcher over the given vector store. A nil store
// yields a disabled matcher whose Match always reports no match.
func NewMatcher(vdb *rag.VectorDB, minSimilarity float64, log *logger.Logger) *Matcher {
	return &Matcher{vdb: vdb, minSimilarity: float32(minSimilarity), logger: log}
}

// Enabled reports whether semantic matching is available.
func (m *Matcher) Enabled() bool {
	return m != nil && m.vdb.Enabled()
}

// Index embeds the example catalog, reusing a persisted collection when
// it already holds the full catalog.
func (m *Matcher) Index(ctx context.Context) error {
	if !m.Enabled() {
		return nil
	}
	if err := m.vdb.EnsureDocuments(ctx, rag.IntentCollection, CatalogDocuments()); err != nil {
		return fmt.Errorf("embed intent catalog: %w", err)
	}
	return nil
}

// Rebuild re-embeds the catalog unconditionally. Used after the example
// set changes between releases.
func (m *Matcher) Rebuild(ctx context.Context) error {
	if !m.Enabled() {
		return nil
	}
	if err := m.vdb.SetDocuments(ctx, rag.IntentCollection, CatalogDocuments()); err != nil {
		return fmt.Errorf("rebuild intent catalog: %w", err)
	}
	return nil
}

// Match returns the best intent for the question, or ok=false when the
// matcher is disabled or no example clears the similarity floor.
func (m *Matcher) Match(ctx context.Context, question string) (intent string, similarity float32, ok bool, err error) {
	if !m.Enabled() {
		return "", 0, false, nil
	}

	hits, err := m.vdb.Query(ctx, rag.IntentCollection, question, 1)
	if err != nil {
		return "", 0, false, fmt.Errorf("intent search: %w", err)
	}
	if len(hits) == 0 {
		return "", 0, false, nil
	}

	best := hits[0]
	name := best.Metadata["intent"]
	if best.Similarity < m.minSimilarity {
		m.logger.WithModule("intent").
			WithFields(map[string]any{"intent": name, "similarity": best.Similarity}).
			Debug("best intent match below similarity floor")
		return name, best.Similarity, false, nil
	}
	return name, best.Similarity, true, nil
}
