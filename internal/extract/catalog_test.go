package extract

import "testing"

var testCodes = []string{
	"AIDS-A", "AIDS-B", "AIML-A", "AIML-B", "CSBS", "CSE-A", "CSE-B",
	"CYS", "ECE-A", "ECE-B", "IT-A", "IT-B", "MECH", "RA",
}

func TestWeekday(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		text  string
		want  string
		found bool
	}{
		{"monday", "monday schedule", "Monday", true},
		{"uppercase", "WHAT ABOUT FRIDAY", "Friday", true},
		{"punctuation", "is it wednesday?", "Wednesday", true},
		{"embedded", "show saturdays classes", "Saturday", true},
		{"sunday", "any class on sunday", "Sunday", true},
		{"tuesday", "tuesday", "Tuesday", true},
		{"thursday", "thursday please", "Thursday", true},
		{"canonical order on two days", "swap tuesday and monday", "Monday", true},
		{"no day", "show the schedule", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, found := Weekday(tt.text)
			if found != tt.found || got != tt.want {
				t.Errorf("Weekday(%q) = (%q, %v), want (%q, %v)", tt.text, got, found, tt.want, tt.found)
			}
		})
	}
}

func TestDepartment(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		text  string
		want  string
		found bool
	}{
		{"hyphenated", "who teaches aids-a", "AIDS-A", true},
		{"spaced", "faculty for aids a today", "AIDS-A", true},
		{"collapsed", "aidsa schedule", "AIDS-A", true},
		{"second section", "who is teaching cse-b", "CSE-B", true},
		{"short code", "who teaches ra today", "RA", true},
		{"short code csbs", "csbs faculty", "CSBS", true},
		{"mech", "mech schedule", "MECH", true},
		{"cys", "faculty for cys", "CYS", true},
		{"uppercase input", "Who teaches IT-B?", "IT-B", true},
		{"no code", "who teaches today", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, found := Department(tt.text, testCodes)
			if found != tt.found || got != tt.want {
				t.Errorf("Department(%q) = (%q, %v), want (%q, %v)", tt.text, got, found, tt.want, tt.found)
			}
		})
	}
}

// Short codes require word boundaries: the "ra" inside "programming" must
// never resolve to department RA.
func TestDepartment_ShortCodeBoundaries(t *testing.T) {
	t.Parallel()

	misses := []string{
		"c programming basics",
		"programming schedule today",
		"who teaches the mechanics of arrays",
		"csys", // not csbs or cys
	}
	for _, text := range misses {
		if code, found := Department(text, testCodes); found {
			t.Errorf("Department(%q) matched %q, want no match", text, code)
		}
	}

	if code, found := Department("ra-section schedule", testCodes); !found || code != "RA" {
		t.Errorf("Department with hyphen boundary = (%q, %v), want (RA, true)", code, found)
	}
}

func TestPersonName(t *testing.T) {
	t.Parallel()

	names := []string{"Sathish R", "Sikkandhar Batcha J", "Janani S", "Janani R", "Madhan S"}

	tests := []struct {
		name  string
		text  string
		want  int
		found bool
	}{
		{"first name", "sathish schedule", 0, true},
		{"second part", "what is batcha teaching", 1, true},
		{"shared part takes first entry", "what does janani teach", 2, true},
		{"last entry", "madhan classes this week", 4, true},
		{"uppercase input", "When does SATHISH have class", 0, true},
		{"initial ignored", "what about r today", -1, false},
		{"unknown name", "who is kumar", -1, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, found := PersonName(tt.text, names)
			if found != tt.found || got != tt.want {
				t.Errorf("PersonName(%q) = (%d, %v), want (%d, %v)", tt.text, got, found, tt.want, tt.found)
			}
		})
	}
}
