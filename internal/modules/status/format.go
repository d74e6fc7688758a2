package status

import (
	"fmt"
	"strings"

	"github.com/campustrack/chatbot-go/internal/storage"
)

// FormatDailyStatus renders the day's filled entries with their overlays.
// Absent, swapped and extra-class markers render inline on the affected
// row. No entries means nobody filled the day yet, which is reported as
// such rather than as full attendance.
func FormatDailyStatus(day string, entries []storage.DailyStatus) string {
	if len(entries) == 0 {
		return fmt.Sprintf("No daily entries filled yet for %s. Mark today's periods to track absences.", day)
	}

	var absentees, present []storage.DailyStatus
	for _, e := range entries {
		if e.IsAbsent {
			absentees = append(absentees, e)
		} else {
			present = append(present, e)
		}
	}

	var b strings.Builder
	fmt.Fprintf(&b, "📊 **Faculty Status for %s:**\n\n", day)
	if len(absentees) == 0 {
		fmt.Fprintf(&b, "All faculty with filled entries are present (%d periods filled).\n", len(entries))
	} else {
		fmt.Fprintf(&b, "**Absent (%d):**\n", len(absentees))
		for _, e := range absentees {
			writeStatusLine(&b, e)
		}
	}
	if len(absentees) > 0 && len(present) > 0 {
		fmt.Fprintf(&b, "\n**Present (%d):**\n", len(present))
		for _, e := range present {
			writeStatusLine(&b, e)
		}
	}
	return strings.TrimRight(b.String(), "\n")
}

func writeStatusLine(b *strings.Builder, e storage.DailyStatus) {
	fmt.Fprintf(b, "• **%s** - Period %d (%s)", e.FacultyName, e.Period, e.DepartmentCode)
	var marks []string
	if e.IsAbsent {
		marks = append(marks, "absent")
	}
	if e.IsSwapped {
		swap := "swapped"
		if e.SwappedWith != "" {
			swap = "swapped with " + e.SwappedWith
		}
		if e.SwapType != "" {
			swap += " (" + e.SwapType + ")"
		}
		marks = append(marks, swap)
	}
	if e.IsExtraClass {
		extra := "extra class"
		if e.ExtraSubjectName != "" {
			extra += ": " + e.ExtraSubjectName
		}
		marks = append(marks, extra)
	}
	if len(marks) > 0 {
		fmt.Fprintf(b, " [%s]", strings.Join(marks, ", "))
	}
	b.WriteString("\n")
}

// FormatSummary renders the day's aggregate counts.
func FormatSummary(day, date string, counts *storage.SummaryCounts) string {
	var b strings.Builder
	fmt.Fprintf(&b, "📊 **Summary for %s (%s):**\n\n", day, date)
	fmt.Fprintf(&b, "• Scheduled: %d\n", counts.Scheduled)
	fmt.Fprintf(&b, "• Filled: %d\n", counts.Filled)
	fmt.Fprintf(&b, "• Pending: %d\n", counts.Pending)
	fmt.Fprintf(&b, "• Absent: %d\n", counts.Absent)
	fmt.Fprintf(&b, "• Swapped: %d\n", counts.Swapped)
	fmt.Fprintf(&b, "• Extra classes: %d", counts.ExtraClasses)
	return b.String()
}

// FormatHistory renders recent filled entries, newest first.
func FormatHistory(records []storage.TeachingRecord) string {
	if len(records) == 0 {
		return "No recent teaching records found."
	}

	var b strings.Builder
	b.WriteString("📚 **Recent Teaching Entries:**\n\n")
	for _, r := range records {
		fmt.Fprintf(&b, "**%s** - %s (%s)\n", r.Date, r.FacultyName, r.DepartmentName)
		fmt.Fprintf(&b, "  Period %d", r.Period)
		if r.SessionNumber > 0 {
			fmt.Fprintf(&b, " - Session %d: %s", r.SessionNumber, r.SessionTitle)
		}
		b.WriteString("\n")
		if r.Summary != "" {
			fmt.Fprintf(&b, "  Summary: %s\n", r.Summary)
		}
		b.WriteString("\n")
	}
	return strings.TrimRight(b.String(), "\n")
}
