package faculty

import (
	"strings"
	"testing"

	"github.com/campustrack/chatbot-go/internal/storage"
)

func TestFormatWeeklyScheduleDayOrder(t *testing.T) {
	t.Parallel()

	entries := []storage.ScheduleEntry{
		{Day: "Thursday", Period: 2, DepartmentCode: "CSE-A"},
		{Day: "Monday", Period: 5, DepartmentCode: "AIDS-A"},
		{Day: "Monday", Period: 3, DepartmentCode: "AIDS-B"},
	}
	got := FormatWeeklySchedule("Sathish R", entries)

	if !strings.Contains(got, "**Monday:** P3 (AIDS-B), P5 (AIDS-A)") {
		t.Errorf("Monday line wrong or unsorted:\n%s", got)
	}
	monday := strings.Index(got, "**Monday:**")
	thursday := strings.Index(got, "**Thursday:**")
	if monday < 0 || thursday < 0 || monday > thursday {
		t.Errorf("days out of canonical order:\n%s", got)
	}
}

func TestFormatWeeklyScheduleEmpty(t *testing.T) {
	t.Parallel()

	got := FormatWeeklySchedule("Sathish R", nil)
	if got != "**Sathish R** has no scheduled classes." {
		t.Errorf("unexpected empty text: %q", got)
	}
}

func TestFormatWeeklyScheduleDeterministic(t *testing.T) {
	t.Parallel()

	entries := []storage.ScheduleEntry{
		{Day: "Friday", Period: 1, DepartmentCode: "CYS"},
		{Day: "Tuesday", Period: 7, DepartmentCode: "MECH"},
	}
	first := FormatWeeklySchedule("Ravi K", entries)
	second := FormatWeeklySchedule("Ravi K", entries)
	if first != second {
		t.Error("identical input produced different output")
	}
}

func TestFormatFacultyCard(t *testing.T) {
	t.Parallel()

	member := &storage.Faculty{
		Name:         "Sathish R",
		Email:        "r.sathish@kgkite.ac.in",
		Phone:        "9876543210",
		Experience:   "8",
		ResearchArea: "Machine Learning",
	}
	got := FormatFacultyCard(member, "B.Tech AI&DS - A")

	for _, want := range []string{
		"**Faculty for B.Tech AI&DS - A:**",
		"**Name:** Sathish R",
		"**Experience:** 8 years",
		"**Research Area:** Machine Learning",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("card missing %q:\n%s", want, got)
		}
	}
}

func TestFormatFacultyCardOmitsEmptyFields(t *testing.T) {
	t.Parallel()

	member := &storage.Faculty{Name: "Priya M", Email: "priya@kgkite.ac.in"}
	got := FormatFacultyCard(member, "B.Tech CYS")
	if strings.Contains(got, "Research Area") || strings.Contains(got, "Phone") {
		t.Errorf("card shows empty fields:\n%s", got)
	}
}

func TestFormatFacultyList(t *testing.T) {
	t.Parallel()

	got := FormatFacultyList([]storage.Faculty{
		{Name: "Sathish R", DepartmentCode: "AIDS-A"},
		{Name: "Priya M", DepartmentCode: "CYS"},
	})
	if !strings.Contains(got, "**All Faculties (2):**") {
		t.Errorf("missing header:\n%s", got)
	}
	if !strings.Contains(got, "1. **Sathish R** - AIDS-A") || !strings.Contains(got, "2. **Priya M** - CYS") {
		t.Errorf("roster lines wrong:\n%s", got)
	}

	if got := FormatFacultyList(nil); got != "No faculties found." {
		t.Errorf("empty roster text = %q", got)
	}
}

func TestFormatDepartmentSchedule(t *testing.T) {
	t.Parallel()

	entries := []storage.ScheduleEntry{
		{Period: 5, FacultyName: "Priya M"},
		{Period: 1, FacultyName: "Sathish R"},
	}
	got := FormatDepartmentSchedule("AIDS-A", "Monday", entries)
	if !strings.Contains(got, "**AIDS-A Schedule for Monday:**") {
		t.Errorf("missing header:\n%s", got)
	}
	first := strings.Index(got, "Period 1 (08:00 AM - 08:45 AM) - Sathish R")
	second := strings.Index(got, "Period 5 (11:15 AM - 12:00 PM) - Priya M")
	if first < 0 || second < 0 || first > second {
		t.Errorf("period lines wrong or unsorted:\n%s", got)
	}

	empty := FormatDepartmentSchedule("RA", "Saturday", nil)
	if empty != "No classes scheduled for **RA** on Saturday." {
		t.Errorf("empty text = %q", empty)
	}
}

func TestFormatRecentTopics(t *testing.T) {
	t.Parallel()

	records := []storage.TeachingRecord{
		{Date: "2026-03-02", Period: 3, DepartmentName: "B.Tech AI&DS - A", SessionNumber: 12, SessionTitle: "Operators", Summary: "Covered arithmetic operators"},
		{Date: "2026-02-27", Period: 5, DepartmentName: "B.Tech CYS"},
	}
	got := FormatRecentTopics("Sathish R", records)
	if !strings.Contains(got, "Session 12: Operators") {
		t.Errorf("missing session line:\n%s", got)
	}
	if !strings.Contains(got, "Summary: Covered arithmetic operators") {
		t.Errorf("missing summary line:\n%s", got)
	}

	empty := FormatRecentTopics("Priya M", nil)
	if empty != "No filled entries for **Priya M** yet." {
		t.Errorf("empty text = %q", empty)
	}
}
