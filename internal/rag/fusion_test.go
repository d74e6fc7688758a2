package rag

import "testing"

func TestFuseRRFKeysBySession(t *testing.T) {
	t.Parallel()

	bm25Results := []BM25Result{
		{SessionNumber: 12, Title: "Pointers", Unit: 3, Score: 4.2, Rank: 1},
		{SessionNumber: 5, Title: "Operators and Expressions", Unit: 1, Score: 1.1, Rank: 2},
	}
	vectorHits := []Hit{
		{ID: "session-12", Metadata: map[string]string{"session": "12", "title": "Pointers", "unit": "3"}, Similarity: 0.91},
		{ID: "session-18", Metadata: map[string]string{"session": "18", "title": "File Handling", "unit": "5"}, Similarity: 0.74},
	}

	results := FuseRRF(bm25Results, vectorHits, DefaultBM25Weight, 3)
	if len(results) != 3 {
		t.Fatalf("FuseRRF() returned %d results, want 3", len(results))
	}

	// Session 12 ranks first in both lists, so it must lead the fusion.
	if results[0].SessionNumber != 12 {
		t.Errorf("top result session = %d, want 12", results[0].SessionNumber)
	}
	wantTop := DefaultBM25Weight/float64(RRFConstant+1) + (1-DefaultBM25Weight)/float64(RRFConstant+1)
	if diff := results[0].RRFScore - wantTop; diff > 1e-12 || diff < -1e-12 {
		t.Errorf("top RRF score = %v, want %v", results[0].RRFScore, wantTop)
	}
	if results[0].Similarity != 0.91 {
		t.Errorf("top similarity = %v, want 0.91", results[0].Similarity)
	}

	// Vector-only session 18 outranks BM25-only session 5 at rank 2 each
	// because the vector weight is larger.
	if results[1].SessionNumber != 18 {
		t.Errorf("second result session = %d, want 18", results[1].SessionNumber)
	}
	if results[1].Title != "File Handling" || results[1].Unit != 5 {
		t.Errorf("vector-only result lost metadata: %+v", results[1])
	}
	if results[2].SessionNumber != 5 {
		t.Errorf("third result session = %d, want 5", results[2].SessionNumber)
	}
}

func TestFuseRRFTopN(t *testing.T) {
	t.Parallel()

	bm25Results := []BM25Result{
		{SessionNumber: 1, Rank: 1},
		{SessionNumber: 2, Rank: 2},
		{SessionNumber: 3, Rank: 3},
	}

	results := FuseRRF(bm25Results, nil, DefaultBM25Weight, 2)
	if len(results) != 2 {
		t.Errorf("FuseRRF() returned %d results, want 2", len(results))
	}
}

func TestFuseRRFClampsWeight(t *testing.T) {
	t.Parallel()

	bm25Results := []BM25Result{{SessionNumber: 1, Rank: 1}}

	// A negative weight clamps to zero, so the BM25-only result scores 0.
	results := FuseRRF(bm25Results, nil, -1, 5)
	if len(results) != 1 {
		t.Fatalf("FuseRRF() returned %d results, want 1", len(results))
	}
	if results[0].RRFScore != 0 {
		t.Errorf("RRF score with clamped weight = %v, want 0", results[0].RRFScore)
	}
}

func TestFuseRRFSkipsMalformedHits(t *testing.T) {
	t.Parallel()

	vectorHits := []Hit{
		{ID: "bogus", Metadata: map[string]string{"title": "No Session Key"}, Similarity: 0.9},
		{ID: "session-7", Metadata: map[string]string{"session": "7", "title": "Arrays", "unit": "2"}, Similarity: 0.8},
	}

	results := FuseRRF(nil, vectorHits, DefaultBM25Weight, 5)
	if len(results) != 1 {
		t.Fatalf("FuseRRF() returned %d results, want 1", len(results))
	}
	if results[0].SessionNumber != 7 {
		t.Errorf("result session = %d, want 7", results[0].SessionNumber)
	}
}

func TestFuseRRFEmpty(t *testing.T) {
	t.Parallel()

	if got := FuseRRF(nil, nil, DefaultBM25Weight, 5); len(got) != 0 {
		t.Errorf("FuseRRF(nil, nil) = %v, want empty", got)
	}
}
