// Package rag provides the retrieval stack behind semantic intent matching
// and syllabus topic search: a persistent chromem-go vector store, a BM25
// keyword index over the session syllabus, and reciprocal rank fusion of
// the two.
package rag

import (
	"context"
	"fmt"
	"path/filepath"
	"sync"

	chromem "github.com/philippgille/chromem-go"

	"github.com/campustrack/chatbot-go/internal/logger"
)

// Collection names in the persistent vector store.
const (
	// IntentCollection holds the embedded intent example phrases.
	IntentCollection = "intent-examples"

	// SyllabusCollection holds the embedded syllabus session topics.
	SyllabusCollection = "syllabus-topics"
)

// Document is one unit of embeddable content.
type Document struct {
	ID       string
	Content  string
	Metadata map[string]string
}

// Hit is one vector query result.
type Hit struct {
	ID         string
	Content    string
	Metadata   map[string]string
	Similarity float32 // cosine similarity, 0-1
}

// VectorDB wraps a persistent chromem-go database holding named
// collections. A nil *VectorDB is valid and means semantic features are
// disabled; every method no-ops.
type VectorDB struct {
	db            *chromem.DB
	embeddingFunc chromem.EmbeddingFunc
	logger        *logger.Logger

	mu          sync.RWMutex
	collections map[string]*chromem.Collection
}

// NewVectorDB opens (or creates) the persistent vector store under
// persistDir. Returns nil when embeddingFunc is nil, disabling semantic
// features.
func NewVectorDB(persistDir string, embeddingFunc chromem.EmbeddingFunc, log *logger.Logger) (*VectorDB, error) {
	if embeddingFunc == nil {
		return nil, nil
	}

	db, err := chromem.NewPersistentDB(filepath.Join(persistDir, "chromem"), false)
	if err != nil {
		return nil, fmt.Errorf("create chromem database: %w", err)
	}

	return &VectorDB{
		db:            db,
		embeddingFunc: embeddingFunc,
		logger:        log,
		collections:   make(map[string]*chromem.Collection),
	}, nil
}

// EnsureDocuments makes sure the named collection holds exactly the given
// documents, reusing embeddings persisted on disk when the count already
// matches. Embedding happens with bounded concurrency.
func (v *VectorDB) EnsureDocuments(ctx context.Context, name string, docs []Document) error {
	if v == nil {
		return nil
	}

	v.mu.Lock()
	defer v.mu.Unlock()

	collection, err := v.db.GetOrCreateCollection(name, nil, v.embeddingFunc)
	if err != nil {
		return fmt.Errorf("get/create collection %s: %w", name, err)
	}

	if collection.Count() == len(docs) {
		v.collections[name] = collection
		v.logger.WithField("collection", name).WithField("count", len(docs)).Info("loaded existing embeddings from disk")
		return nil
	}

	return v.replaceLocked(ctx, name, docs)
}

// SetDocuments drops the named collection and re-embeds the given
// documents. Used by the guarded index rebuild.
func (v *VectorDB) SetDocuments(ctx context.Context, name string, docs []Document) error {
	if v == nil {
		return nil
	}

	v.mu.Lock()
	defer v.mu.Unlock()

	return v.replaceLocked(ctx, name, docs)
}

func (v *VectorDB) replaceLocked(ctx context.Context, name string, docs []Document) error {
	if err := v.db.DeleteCollection(name); err != nil {
		return fmt.Errorf("delete collection %s: %w", name, err)
	}
	collection, err := v.db.GetOrCreateCollection(name, nil, v.embeddingFunc)
	if err != nil {
		return fmt.Errorf("recreate collection %s: %w", name, err)
	}

	if len(docs) > 0 {
		chromemDocs := make([]chromem.Document, 0, len(docs))
		for _, d := range docs {
			chromemDocs = append(chromemDocs, chromem.Document{
				ID:       d.ID,
				Content:  d.Content,
				Metadata: d.Metadata,
			})
		}
		if err := collection.AddDocuments(ctx, chromemDocs, 4); err != nil {
			return fmt.Errorf("add documents to %s: %w", name, err)
		}
	}

	v.collections[name] = collection
	v.logger.WithField("collection", name).WithField("count", len(docs)).Info("embedded documents")
	return nil
}

// Query returns the topN nearest documents in the named collection.
// Returns nil when the store is disabled or the collection is empty.
func (v *VectorDB) Query(ctx context.Context, name, text string, topN int) ([]Hit, error) {
	if v == nil {
		return nil, nil
	}

	v.mu.RLock()
	collection := v.collections[name]
	v.mu.RUnlock()

	if collection == nil {
		return nil, nil
	}

	count := collection.Count()
	if count == 0 {
		return nil, nil
	}
	if topN > count {
		topN = count
	}

	results, err := collection.Query(ctx, text, topN, nil, nil)
	if err != nil {
		return nil, fmt.Errorf("query collection %s: %w", name, err)
	}

	hits := make([]Hit, len(results))
	for i, r := range results {
		hits[i] = Hit{
			ID:         r.ID,
			Content:    r.Content,
			Metadata:   r.Metadata,
			Similarity: r.Similarity,
		}
	}
	return hits, nil
}

// Count returns the number of documents in the named collection.
func (v *VectorDB) Count(name string) int {
	if v == nil {
		return 0
	}

	v.mu.RLock()
	defer v.mu.RUnlock()

	if c := v.collections[name]; c != nil {
		return c.Count()
	}
	return 0
}

// Enabled reports whether semantic features are available.
func (v *VectorDB) Enabled() bool {
	return v != nil
}
