// Package faq matches free-text questions against the stored FAQ catalog
// using lexical overlap. It is the deterministic fallback consulted after the
// rule cascade and before the semantic matcher.
package faq

import (
	"strings"

	"github.com/campustrack/chatbot-go/internal/storage"
	"github.com/campustrack/chatbot-go/internal/stringutil"
)

// Scoring weights. An exact question match trumps everything, containment
// trumps token overlap, and token overlap outweighs answer-text hits.
const (
	scoreExact     = 1000
	scoreSubstring = 500
	scorePerToken  = 10
	scorePerAnswer = 5

	// minScore is the acceptance floor: one overlapping content token, or
	// two answer-text hits, is the weakest accepted evidence.
	minScore = 10
)

// stopWords are dropped before token scoring, together with any token of
// length two or less.
var stopWords = map[string]bool{
	"the": true, "what": true, "how": true, "are": true,
	"is": true, "can": true, "do": true, "for": true,
}

// Match returns the highest-scoring catalog entry for the query, or false
// when no entry reaches the minimum score. Ties keep the earliest catalog
// entry, so catalog order is part of the contract.
func Match(query string, catalog []storage.FAQEntry) (storage.FAQEntry, bool) {
	normQuery := stringutil.Normalize(query)
	if normQuery == "" {
		return storage.FAQEntry{}, false
	}
	queryTokens := contentTokens(normQuery)

	var best storage.FAQEntry
	bestScore := 0
	for _, entry := range catalog {
		if s := score(normQuery, queryTokens, entry); s > bestScore {
			bestScore = s
			best = entry
		}
	}
	if bestScore < minScore {
		return storage.FAQEntry{}, false
	}
	return best, true
}

func score(normQuery string, queryTokens []string, entry storage.FAQEntry) int {
	normQuestion := stringutil.Normalize(entry.Question)
	if normQuestion == "" {
		return 0
	}
	if normQuery == normQuestion {
		return scoreExact
	}
	if strings.Contains(normQuestion, normQuery) || strings.Contains(normQuery, normQuestion) {
		return scoreSubstring
	}

	questionTokens := make(map[string]bool)
	for _, tok := range contentTokens(normQuestion) {
		questionTokens[tok] = true
	}
	answer := strings.ToLower(entry.Answer)

	s := 0
	for _, tok := range queryTokens {
		if questionTokens[tok] {
			s += scorePerToken
		}
		if strings.Contains(answer, tok) {
			s += scorePerAnswer
		}
	}
	return s
}

// contentTokens returns the unique content-bearing tokens of normalized
// text: stop words and tokens of length two or less are dropped.
func contentTokens(norm string) []string {
	fields := strings.Fields(norm)
	tokens := make([]string, 0, len(fields))
	seen := make(map[string]bool, len(fields))
	for _, tok := range fields {
		if len(tok) <= 2 || stopWords[tok] || seen[tok] {
			continue
		}
		seen[tok] = true
		tokens = append(tokens, tok)
	}
	return tokens
}
