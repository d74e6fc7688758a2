package rag

import (
	"context"
	"testing"

	"github.com/campustrack/chatbot-go/internal/logger"
)

func TestHybridSearcherKeywordOnly(t *testing.T) {
	t.Parallel()

	log := logger.New("info")
	searcher := NewHybridSearcher(nil, NewBM25Index(log), log)

	ctx := context.Background()
	if err := searcher.Index(ctx, testSessions); err != nil {
		t.Fatalf("Index() error = %v", err)
	}

	results, err := searcher.Search(ctx, "pointer arithmetic", 3)
	if err != nil {
		t.Fatalf("Search() error = %v", err)
	}
	if len(results) == 0 {
		t.Fatal("Search() returned no results")
	}
	if results[0].SessionNumber != 12 {
		t.Errorf("top result session = %d, want 12", results[0].SessionNumber)
	}
	if results[0].Similarity != 0 {
		t.Errorf("keyword-only result similarity = %v, want 0", results[0].Similarity)
	}
}

func TestHybridSearcherNil(t *testing.T) {
	t.Parallel()

	var searcher *HybridSearcher
	ctx := context.Background()

	if err := searcher.Index(ctx, testSessions); err != nil {
		t.Errorf("nil Index() error = %v", err)
	}
	results, err := searcher.Search(ctx, "pointers", 3)
	if err != nil {
		t.Errorf("nil Search() error = %v", err)
	}
	if results != nil {
		t.Errorf("nil Search() = %v, want nil", results)
	}
}

func TestSessionDocuments(t *testing.T) {
	t.Parallel()

	docs := SessionDocuments(testSessions)
	if len(docs) != len(testSessions) {
		t.Fatalf("SessionDocuments() returned %d docs, want %d", len(docs), len(testSessions))
	}

	first := docs[0]
	if first.ID != "session-1" {
		t.Errorf("doc ID = %q, want %q", first.ID, "session-1")
	}
	if first.Metadata["session"] != "1" || first.Metadata["unit"] != "1" {
		t.Errorf("doc metadata = %v", first.Metadata)
	}
	if first.Metadata["title"] != "Introduction to C Programming" {
		t.Errorf("doc title metadata = %q", first.Metadata["title"])
	}
}
