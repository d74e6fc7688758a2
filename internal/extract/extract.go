// Package extract provides entity extractors that pull structured values out
// of free-text questions: integers tied to a keyword (period, session and
// week numbers), department codes, weekday names and faculty names.
//
// Extraction never fails. A missing or malformed value is reported as absent
// through the boolean return, and the caller decides what that means.
package extract

import "strconv"

// KeywordSet is the set of trigger words for one integer slot.
type KeywordSet map[string]bool

// Keyword sets for the integer extractor. Each set covers the spellings seen
// in real questions, including the terse forms ("w3", "ses 5").
var (
	PeriodKeywords  = KeywordSet{"period": true}
	SessionKeywords = KeywordSet{"session": true, "ses": true, "deck": true, "ppt": true, "slide": true, "presentation": true}
	WeekKeywords    = KeywordSet{"week": true, "lab": true, "w": true, "inlab": true}
)

// connectors may sit between a keyword and its number, as in
// "lab program for week 5" or "period number 3".
var connectors = map[string]bool{"number": true, "program": true, "for": true}

// integerKeywordSets lists every keyword family the integer extractor
// knows. The trailing-ordinal rule consults it to tell whether another
// family has an explicit claim on the question.
var integerKeywordSets = []KeywordSet{PeriodKeywords, SessionKeywords, WeekKeywords}

// IntegerAfter returns the first integer paired with one of the keywords in
// reading order. A pairing is a keyword followed by digits ("period 3"), a
// keyword with the digits attached ("w3", "session5"), a keyword separated
// from the digits by connector words or further keywords ("ppt for session
// 7"), or an ordinal directly before the keyword ("3rd period"). Only the
// first pairing counts; no attempt is made to extract several numbers from
// one question.
//
// A question ending in a bare ordinal ("in the 4th", "ppt for the 3rd")
// also pairs, as long as no keyword from a different family appears: an
// explicit keyword anywhere in the question outranks the trailing ordinal,
// so "session 5" style pairings keep their handler.
func IntegerAfter(text string, keywords KeywordSet) (int, bool) {
	tokens := tokenize(text)

	for i, tok := range tokens {
		if keywords[tok.word] {
			if tok.number >= 0 {
				return tok.number, true
			}
			for j := i + 1; j < len(tokens); j++ {
				next := tokens[j]
				if next.word == "" && next.number >= 0 {
					return next.number, true
				}
				if next.number < 0 && (connectors[next.word] || keywords[next.word]) {
					continue
				}
				break
			}
			continue
		}

		// Ordinal form: the number precedes the keyword.
		if tok.ordinal && tok.word == "" && i+1 < len(tokens) {
			next := tokens[i+1]
			if keywords[next.word] && next.number < 0 {
				return tok.number, true
			}
		}
	}

	if n, ok := trailingOrdinal(tokens); ok && !hasForeignKeyword(tokens, keywords) {
		return n, true
	}
	return 0, false
}

// trailingOrdinal reports a bare ordinal as the final token.
func trailingOrdinal(tokens []token) (int, bool) {
	if len(tokens) == 0 {
		return 0, false
	}
	last := tokens[len(tokens)-1]
	if last.ordinal && last.word == "" {
		return last.number, true
	}
	return 0, false
}

// hasForeignKeyword reports whether any token belongs to an integer
// keyword family other than the requested one.
func hasForeignKeyword(tokens []token, keywords KeywordSet) bool {
	for _, tok := range tokens {
		if tok.word == "" || keywords[tok.word] {
			continue
		}
		for _, set := range integerKeywordSets {
			if set[tok.word] {
				return true
			}
		}
	}
	return false
}

// FirstInteger returns the first integer anywhere in text, regardless of
// surrounding keywords. Used after a semantic match already fixed the
// question's meaning, so any number present is the wanted one.
func FirstInteger(text string) (int, bool) {
	for _, tok := range tokenize(text) {
		if tok.number >= 0 {
			return tok.number, true
		}
	}
	return 0, false
}

// token is one whitespace-delimited word split into its letter prefix and
// digit run: "period" → {word: period}, "3" → {number: 3}, "w3" → {word: w,
// number: 3}, "3rd" → {number: 3, ordinal: true}. number is -1 when the
// token carries no usable digits.
type token struct {
	word    string
	number  int
	ordinal bool
}

func tokenize(text string) []token {
	tokens := make([]token, 0, 8)
	start := -1
	flush := func(end int) {
		if start >= 0 {
			tokens = append(tokens, splitToken(text[start:end]))
			start = -1
		}
	}
	for i := 0; i < len(text); i++ {
		if isSpace(text[i]) {
			flush(i)
			continue
		}
		if start < 0 {
			start = i
		}
	}
	flush(len(text))
	return tokens
}

func splitToken(tok string) token {
	tok = trimPunct(tok)
	t := token{number: -1}

	i := 0
	for i < len(tok) && isLetter(tok[i]) {
		i++
	}
	j := i
	for j < len(tok) && isDigit(tok[j]) {
		j++
	}
	word, digits, suffix := lower(tok[:i]), tok[i:j], lower(tok[j:])

	if digits == "" {
		t.word = lower(tok)
		return t
	}
	switch suffix {
	case "":
	case "st", "nd", "rd", "th":
		t.ordinal = true
	default:
		t.word = lower(tok)
		return t
	}

	n, err := strconv.Atoi(digits)
	if err != nil {
		t.word = lower(tok)
		return t
	}
	t.word = word
	t.number = n
	return t
}

func trimPunct(tok string) string {
	start, end := 0, len(tok)
	for start < end && !isLetter(tok[start]) && !isDigit(tok[start]) {
		start++
	}
	for end > start && !isLetter(tok[end-1]) && !isDigit(tok[end-1]) {
		end--
	}
	return tok[start:end]
}

func lower(s string) string {
	hasUpper := false
	for i := 0; i < len(s); i++ {
		if s[i] >= 'A' && s[i] <= 'Z' {
			hasUpper = true
			break
		}
	}
	if !hasUpper {
		return s
	}
	b := []byte(s)
	for i := 0; i < len(b); i++ {
		if b[i] >= 'A' && b[i] <= 'Z' {
			b[i] += 'a' - 'A'
		}
	}
	return string(b)
}

func isSpace(c byte) bool  { return c == ' ' || c == '\t' || c == '\n' || c == '\r' }
func isLetter(c byte) bool { return c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z' }
func isDigit(c byte) bool  { return c >= '0' && c <= '9' }
