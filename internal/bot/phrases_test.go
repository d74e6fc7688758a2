package bot

import "testing"

func TestContainsAny(t *testing.T) {
	t.Parallel()

	phrases := []string{"who has", "classes today", "timetable"}
	tests := []struct {
		text string
		want bool
	}{
		{"who has class today", true},
		{"show me the timetable", true},
		{"lab program week 3", false},
		{"", false},
	}
	for _, tt := range tests {
		if got := ContainsAny(tt.text, phrases); got != tt.want {
			t.Errorf("ContainsAny(%q) = %v, want %v", tt.text, got, tt.want)
		}
	}
}

func TestEqualsOrStartsAny(t *testing.T) {
	t.Parallel()

	greetings := []string{"hi", "hello", "hey"}
	tests := []struct {
		text string
		want bool
	}{
		{"hi", true},
		{"hi there", true},
		{"hello bot", true},
		{"high marks in c", false},
		{"say hi", false},
	}
	for _, tt := range tests {
		if got := EqualsOrStartsAny(tt.text, greetings); got != tt.want {
			t.Errorf("EqualsOrStartsAny(%q) = %v, want %v", tt.text, got, tt.want)
		}
	}
}

func TestEqualsAny(t *testing.T) {
	t.Parallel()

	if !EqualsAny("help", []string{"help", "?"}) {
		t.Error("expected exact match for help")
	}
	if EqualsAny("help me", []string{"help", "?"}) {
		t.Error("did not expect match for help me")
	}
}
