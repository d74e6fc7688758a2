// Package stringutil provides common string manipulation utilities.
package stringutil

import "strings"

// IsNumeric checks if a string contains only digits.
// Returns false for empty strings.
func IsNumeric(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// Normalize lowercases s and collapses runs of whitespace into single spaces,
// trimming the ends. All query matching operates on normalized text.
func Normalize(s string) string {
	return strings.Join(strings.Fields(strings.ToLower(s)), " ")
}

// StripSeparators removes hyphens and spaces from s and lowercases it.
// Used to compare department codes like "AIDS-A" against free text that may
// spell them as "aids a", "aidsa", or "aids-a".
func StripSeparators(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range strings.ToLower(s) {
		if r == '-' || r == ' ' {
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

// ContainsWord reports whether text contains word with non-alphanumeric
// characters (or string boundaries) on both sides. Both arguments must
// already be lowercase.
//
// Example:
//
//	ContainsWord("who teaches ra today", "ra") returns true
//	ContainsWord("c programming basics", "ra") returns false
func ContainsWord(text, word string) bool {
	if word == "" {
		return false
	}
	for start := 0; ; {
		i := strings.Index(text[start:], word)
		if i < 0 {
			return false
		}
		i += start
		end := i + len(word)
		leftOK := i == 0 || !isWordRune(rune(text[i-1]))
		rightOK := end == len(text) || !isWordRune(rune(text[end]))
		if leftOK && rightOK {
			return true
		}
		start = i + 1
	}
}

func isWordRune(r rune) bool {
	return r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z' || r >= '0' && r <= '9'
}
