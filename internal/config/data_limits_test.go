package config

import (
	"strings"
	"testing"
)

// TestTimetableBoundaryConstants ensures boundary constants are correctly defined
func TestTimetableBoundaryConstants(t *testing.T) {
	if PeriodMin >= PeriodMax {
		t.Errorf("PeriodMin (%d) should be less than PeriodMax (%d)", PeriodMin, PeriodMax)
	}

	// Verify specific values (document expectations)
	if PeriodMin != 1 {
		t.Errorf("PeriodMin = %d, want 1", PeriodMin)
	}
	if PeriodMax != 9 {
		t.Errorf("PeriodMax = %d, want 9", PeriodMax)
	}
	if SyllabusSessionCount != 53 {
		t.Errorf("SyllabusSessionCount = %d, want 53", SyllabusSessionCount)
	}
	if SyllabusUnitCount != 7 {
		t.Errorf("SyllabusUnitCount = %d, want 7", SyllabusUnitCount)
	}
}

// TestBoundaryMessages ensures messages are non-empty and well-formed
func TestBoundaryMessages(t *testing.T) {
	messages := map[string]string{
		"PeriodOutOfRangeMessage":  PeriodOutOfRangeMessage,
		"SessionOutOfRangeMessage": SessionOutOfRangeMessage,
		"QueryTooLongMessage":      QueryTooLongMessage,
	}

	for name, msg := range messages {
		if msg == "" {
			t.Errorf("%s should not be empty", name)
		}
		// Check minimum length (messages should be informative)
		if len(msg) < 10 {
			t.Errorf("%s = %q is too short, should be more informative", name, msg)
		}
	}

	// Messages naming the requested number must carry a %d verb.
	if !strings.Contains(PeriodOutOfRangeMessage, "%d") {
		t.Errorf("PeriodOutOfRangeMessage should contain a %%d verb for the requested period")
	}
	if !strings.Contains(SessionOutOfRangeMessage, "%d") {
		t.Errorf("SessionOutOfRangeMessage should contain a %%d verb for the requested session")
	}

	// The period message must state the valid range.
	if !strings.Contains(PeriodOutOfRangeMessage, "1 to 9") {
		t.Error("PeriodOutOfRangeMessage should state the valid period range")
	}
}
