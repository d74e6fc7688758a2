package rag

import (
	"context"
	"fmt"
	"strconv"

	"github.com/campustrack/chatbot-go/internal/logger"
	"github.com/campustrack/chatbot-go/internal/storage"
)

// HybridSearcher answers syllabus topic queries by fusing BM25 keyword
// search with vector similarity. The vector side is optional: with a nil
// VectorDB the searcher degrades to keyword-only.
type HybridSearcher struct {
	vdb    *VectorDB
	bm25   *BM25Index
	logger *logger.Logger
}

// NewHybridSearcher wires the two retrieval paths together.
func NewHybridSearcher(vdb *VectorDB, bm25 *BM25Index, log *logger.Logger) *HybridSearcher {
	return &HybridSearcher{vdb: vdb, bm25: bm25, logger: log}
}

// Index builds both sides from the full session list. The vector side
// reuses persisted embeddings when the collection is already complete.
func (h *HybridSearcher) Index(ctx context.Context, sessions []storage.SyllabusSession) error {
	if h == nil {
		return nil
	}

	if err := h.bm25.Initialize(sessions); err != nil {
		return fmt.Errorf("initialize BM25: %w", err)
	}
	if err := h.vdb.EnsureDocuments(ctx, SyllabusCollection, SessionDocuments(sessions)); err != nil {
		return fmt.Errorf("embed syllabus sessions: %w", err)
	}
	return nil
}

// Search returns the topN fused results for a topic query.
func (h *HybridSearcher) Search(ctx context.Context, query string, topN int) ([]TopicResult, error) {
	if h == nil {
		return nil, nil
	}

	bm25Results, err := h.bm25.Search(query, topN*2)
	if err != nil {
		return nil, err
	}

	vectorHits, err := h.vdb.Query(ctx, SyllabusCollection, query, topN*2)
	if err != nil {
		// Keyword results still stand when the vector side fails.
		h.logger.WithModule("rag").WithError(err).Warn("vector search failed, using keyword results only")
		vectorHits = nil
	}

	return FuseRRF(bm25Results, vectorHits, DefaultBM25Weight, topN), nil
}

// SessionDocuments converts syllabus sessions to embeddable documents.
// Metadata carries what the fusion stage needs to rebuild a result.
func SessionDocuments(sessions []storage.SyllabusSession) []Document {
	docs := make([]Document, 0, len(sessions))
	for _, s := range sessions {
		docs = append(docs, Document{
			ID:      fmt.Sprintf("session-%d", s.SessionNumber),
			Content: s.Title + ". " + s.Topics,
			Metadata: map[string]string{
				"session": strconv.Itoa(s.SessionNumber),
				"title":   s.Title,
				"unit":    strconv.Itoa(s.Unit),
			},
		})
	}
	return docs
}
