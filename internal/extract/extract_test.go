package extract

import "testing"

func TestIntegerAfter_Period(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		text  string
		want  int
		found bool
	}{
		{"plain", "period 3", 3, true},
		{"attached digits", "period3", 3, true},
		{"number connector", "period number 5", 5, true},
		{"ordinal before keyword", "3rd period", 3, true},
		{"ordinal first", "1st period", 1, true},
		{"ordinal in sentence", "who has the 2nd period today", 2, true},
		{"question mark", "who has period 4?", 4, true},
		{"parenthesised", "(period 6)", 6, true},
		{"keyword without number", "c period today", 0, false},
		{"number without keyword", "week 3", 0, false},
		{"bare trailing ordinal", "in the 4th", 4, true},
		{"trailing ordinal with sentence", "who is teaching in the 2nd", 2, true},
		{"trailing ordinal yields to session keyword", "ppt for the 3rd", 0, false},
		{"trailing ordinal yields to week keyword", "lab for the 2nd", 0, false},
		{"ordinal not trailing", "the 4th question of the quiz", 0, false},
		{"plain trailing number is not ordinal", "what about 4", 0, false},
		{"empty", "", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, found := IntegerAfter(tt.text, PeriodKeywords)
			if found != tt.found || got != tt.want {
				t.Errorf("IntegerAfter(%q) = (%d, %v), want (%d, %v)", tt.text, got, found, tt.want, tt.found)
			}
		})
	}
}

func TestIntegerAfter_Session(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		text  string
		want  int
		found bool
	}{
		{"session", "session 3", 3, true},
		{"short form", "ses 5", 5, true},
		{"deck", "show deck 2", 2, true},
		{"slide", "slide 9", 9, true},
		{"presentation", "presentation 4", 4, true},
		{"ppt for session", "ppt for session 7", 7, true},
		{"attached", "session5 ppt", 5, true},
		{"ordinal", "3rd session slides", 3, true},
		{"trailing ordinal after own keyword", "ppt for the 3rd", 3, true},
		{"keyword only", "where is the ppt", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, found := IntegerAfter(tt.text, SessionKeywords)
			if found != tt.found || got != tt.want {
				t.Errorf("IntegerAfter(%q) = (%d, %v), want (%d, %v)", tt.text, got, found, tt.want, tt.found)
			}
		})
	}
}

func TestIntegerAfter_Week(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		text  string
		want  int
		found bool
	}{
		{"lab program for week", "lab program for week 5", 5, true},
		{"week then lab", "week 3 lab", 3, true},
		{"terse w form", "w3 lab", 3, true},
		{"inlab", "inlab 3", 3, true},
		{"lab digit", "lab 4", 4, true},
		{"moodle link", "moodle link for week 2", 2, true},
		{"trailing ordinal after own keyword", "lab for the 2nd", 2, true},
		{"lab without number", "lab today", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, found := IntegerAfter(tt.text, WeekKeywords)
			if found != tt.found || got != tt.want {
				t.Errorf("IntegerAfter(%q) = (%d, %v), want (%d, %v)", tt.text, got, found, tt.want, tt.found)
			}
		})
	}
}

func TestIntegerAfter_FirstPairingWins(t *testing.T) {
	t.Parallel()

	if got, _ := IntegerAfter("period 3 or period 4", PeriodKeywords); got != 3 {
		t.Errorf("Expected first pairing 3, got %d", got)
	}
	if got, _ := IntegerAfter("week 2 and session 5", WeekKeywords); got != 2 {
		t.Errorf("Expected week 2, got %d", got)
	}
	if got, _ := IntegerAfter("week 2 and session 5", SessionKeywords); got != 5 {
		t.Errorf("Expected session 5, got %d", got)
	}
}

func TestFirstInteger(t *testing.T) {
	t.Parallel()

	tests := []struct {
		text  string
		want  int
		found bool
	}{
		{"show me 5", 5, true},
		{"ppt 12 please", 12, true},
		{"number 3 and number 9", 3, true},
		{"no digits here", 0, false},
		{"", 0, false},
	}

	for _, tt := range tests {
		got, found := FirstInteger(tt.text)
		if got != tt.want || found != tt.found {
			t.Errorf("FirstInteger(%q) = (%d, %v), want (%d, %v)", tt.text, got, found, tt.want, tt.found)
		}
	}
}

func TestIntegerAfter_MixedCase(t *testing.T) {
	t.Parallel()

	if got, found := IntegerAfter("PPT for Session 7", SessionKeywords); !found || got != 7 {
		t.Errorf("IntegerAfter mixed case = (%d, %v), want (7, true)", got, found)
	}
}
