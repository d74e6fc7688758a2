package bot

import "strings"

// ContainsAny reports whether text contains any of the phrases as a
// substring. Text is expected to be normalized already.
func ContainsAny(text string, phrases []string) bool {
	for _, p := range phrases {
		if strings.Contains(text, p) {
			return true
		}
	}
	return false
}

// EqualsOrStartsAny reports whether text equals one of the phrases or
// starts with one followed by a space. "hi there" matches "hi"; "high
// marks" does not.
func EqualsOrStartsAny(text string, phrases []string) bool {
	for _, p := range phrases {
		if text == p || strings.HasPrefix(text, p+" ") {
			return true
		}
	}
	return false
}

// EqualsAny reports whether text equals one of the phrases exactly.
func EqualsAny(text string, phrases []string) bool {
	for _, p := range phrases {
		if text == p {
			return true
		}
	}
	return false
}
