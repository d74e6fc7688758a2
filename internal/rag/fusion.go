package rag

import (
	"sort"
	"strconv"
)

const (
	// RRFConstant is the k in the RRF formula 1 / (k + rank). 60 is the
	// standard value.
	RRFConstant = 60

	// DefaultBM25Weight gives keyword search 40% of the fused score;
	// vector search carries the remaining 60%.
	DefaultBM25Weight = 0.4
)

// TopicResult is one fused syllabus topic search result.
type TopicResult struct {
	SessionNumber int
	Title         string
	Unit          int
	Similarity    float32 // vector similarity when available
	RRFScore      float64
}

// FuseRRF combines BM25 and vector results using reciprocal rank fusion:
// score(d) = Σ w_i / (k + rank_i). Results are keyed by session number;
// vector hits carry the session metadata written at indexing time.
func FuseRRF(bm25Results []BM25Result, vectorHits []Hit, bm25Weight float64, topN int) []TopicResult {
	if bm25Weight < 0 {
		bm25Weight = 0
	}
	if bm25Weight > 1 {
		bm25Weight = 1
	}
	vectorWeight := 1.0 - bm25Weight

	fused := make(map[int]*TopicResult)
	var order []int

	for i, r := range bm25Results {
		score := bm25Weight / float64(RRFConstant+i+1)
		entry, ok := fused[r.SessionNumber]
		if !ok {
			entry = &TopicResult{SessionNumber: r.SessionNumber, Title: r.Title, Unit: r.Unit}
			fused[r.SessionNumber] = entry
			order = append(order, r.SessionNumber)
		}
		entry.RRFScore += score
	}

	for i, h := range vectorHits {
		session, err := strconv.Atoi(h.Metadata["session"])
		if err != nil {
			continue
		}
		score := vectorWeight / float64(RRFConstant+i+1)
		entry, ok := fused[session]
		if !ok {
			unit, _ := strconv.Atoi(h.Metadata["unit"])
			entry = &TopicResult{SessionNumber: session, Title: h.Metadata["title"], Unit: unit}
			fused[session] = entry
			order = append(order, session)
		}
		entry.RRFScore += score
		if h.Similarity > entry.Similarity {
			entry.Similarity = h.Similarity
		}
	}

	results := make([]TopicResult, 0, len(order))
	for _, session := range order {
		results = append(results, *fused[session])
	}
	sort.SliceStable(results, func(i, j int) bool { return results[i].RRFScore > results[j].RRFScore })

	if topN > 0 && len(results) > topN {
		results = results[:topN]
	}
	return results
}
