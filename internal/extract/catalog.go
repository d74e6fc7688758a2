package extract

import (
	"strings"

	"github.com/campustrack/chatbot-go/internal/stringutil"
)

// weekdays in canonical order. Matching scans this order, not reading order.
var weekdays = []string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday"}

// Weekday returns the canonical name of the first weekday, in Monday..Sunday
// order, that appears anywhere in text.
func Weekday(text string) (string, bool) {
	lowered := strings.ToLower(text)
	for _, day := range weekdays {
		if strings.Contains(lowered, strings.ToLower(day)) {
			return day, true
		}
	}
	return "", false
}

// Department returns the first catalog code found in text. Codes written
// with hyphens or spaces match with the separators removed, so "aids a",
// "aidsa" and "aids-a" all resolve to "AIDS-A". Single-token codes require
// word boundaries: "RA" matches "who teaches ra" but never the "ra" inside
// "programming".
func Department(text string, codes []string) (string, bool) {
	stripped := stringutil.StripSeparators(text)
	lowered := strings.ToLower(text)
	for _, code := range codes {
		if strings.ContainsAny(code, "- ") {
			if strings.Contains(stripped, stringutil.StripSeparators(code)) {
				return code, true
			}
			continue
		}
		if stringutil.ContainsWord(lowered, strings.ToLower(code)) {
			return code, true
		}
	}
	return "", false
}

// PersonName returns the index of the first catalog name with a part longer
// than two characters appearing in text. Single-letter initials never match.
// When several people share a name part, the earliest catalog entry wins.
func PersonName(text string, names []string) (int, bool) {
	lowered := strings.ToLower(text)
	for i, name := range names {
		for _, part := range strings.Fields(strings.ToLower(name)) {
			if len(part) > 2 && strings.Contains(lowered, part) {
				return i, true
			}
		}
	}
	return -1, false
}
