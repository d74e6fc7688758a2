package rag

import (
	"fmt"
	"sort"
	"strings"
	"sync"
	"unicode"

	"github.com/iwilltry42/bm25-go/bm25"

	"github.com/campustrack/chatbot-go/internal/logger"
	"github.com/campustrack/chatbot-go/internal/storage"
)

// BM25Result is one keyword search result over the syllabus.
type BM25Result struct {
	SessionNumber int
	Title         string
	Unit          int
	Score         float64 // BM25 score, higher is better
	Rank          int     // 1-indexed rank position
}

// BM25Index provides keyword search over the session syllabus. One document
// per session: title plus topics.
type BM25Index struct {
	okapi    *bm25.BM25Okapi
	sessions []storage.SyllabusSession
	logger   *logger.Logger

	mu          sync.RWMutex
	initialized bool
}

// NewBM25Index creates an empty index. Call Initialize before searching.
func NewBM25Index(log *logger.Logger) *BM25Index {
	return &BM25Index{logger: log}
}

// Initialize builds the index from the full session list. Safe to call
// again to rebuild; BM25 needs the whole corpus for IDF, so there is no
// incremental path.
func (idx *BM25Index) Initialize(sessions []storage.SyllabusSession) error {
	if idx == nil {
		return nil
	}

	idx.mu.Lock()
	defer idx.mu.Unlock()

	if len(sessions) == 0 {
		idx.sessions = nil
		idx.okapi = nil
		idx.initialized = true
		return nil
	}

	corpus := make([]string, len(sessions))
	for i, s := range sessions {
		corpus[i] = s.Title + " " + s.Topics
	}

	// k1=1.5, b=0.75 are standard BM25 parameters.
	okapi, err := bm25.NewBM25Okapi(corpus, tokenize, 1.5, 0.75, nil)
	if err != nil {
		return fmt.Errorf("create BM25 index: %w", err)
	}

	idx.sessions = sessions
	idx.okapi = okapi
	idx.initialized = true
	idx.logger.WithField("sessions", len(sessions)).Info("BM25 index initialized")
	return nil
}

// Search returns the topN sessions by BM25 score, descending. Sessions
// scoring zero are dropped.
func (idx *BM25Index) Search(query string, topN int) ([]BM25Result, error) {
	if idx == nil {
		return nil, nil
	}

	idx.mu.RLock()
	defer idx.mu.RUnlock()

	if !idx.initialized || idx.okapi == nil || strings.TrimSpace(query) == "" {
		return nil, nil
	}

	tokens := tokenize(query)
	if len(tokens) == 0 {
		return nil, nil
	}

	scores, err := idx.okapi.GetScores(tokens)
	if err != nil {
		return nil, fmt.Errorf("BM25 scoring: %w", err)
	}

	type scored struct {
		idx   int
		score float64
	}
	var docs []scored
	for i, score := range scores {
		if score > 0 {
			docs = append(docs, scored{idx: i, score: score})
		}
	}
	sort.SliceStable(docs, func(i, j int) bool { return docs[i].score > docs[j].score })

	if topN > 0 && len(docs) > topN {
		docs = docs[:topN]
	}

	results := make([]BM25Result, len(docs))
	for rank, d := range docs {
		s := idx.sessions[d.idx]
		results[rank] = BM25Result{
			SessionNumber: s.SessionNumber,
			Title:         s.Title,
			Unit:          s.Unit,
			Score:         d.score,
			Rank:          rank + 1,
		}
	}
	return results, nil
}

// tokenize lowercases and splits on anything that is not a letter or
// digit. The syllabus is English, so whitespace-and-punctuation splitting
// is the prescribed tokenizer.
func tokenize(text string) []string {
	return strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
}
