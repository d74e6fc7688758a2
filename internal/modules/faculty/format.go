package faculty

import (
	"fmt"
	"sort"
	"strings"

	"github.com/campustrack/chatbot-go/internal/data"
	"github.com/campustrack/chatbot-go/internal/storage"
)

// weekOrder is the canonical day order for weekly schedule views. Sunday
// never carries classes and is omitted.
var weekOrder = []string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday"}

// FormatWeeklySchedule renders one faculty member's full week, one line per
// day in Monday..Saturday order, periods ascending within a day.
func FormatWeeklySchedule(name string, entries []storage.ScheduleEntry) string {
	if len(entries) == 0 {
		return fmt.Sprintf("**%s** has no scheduled classes.", name)
	}

	byDay := make(map[string][]storage.ScheduleEntry)
	for _, e := range entries {
		byDay[e.Day] = append(byDay[e.Day], e)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "👨‍🏫 **Schedule for %s:**\n\n", name)
	for _, day := range weekOrder {
		slots := byDay[day]
		if len(slots) == 0 {
			continue
		}
		sort.Slice(slots, func(i, j int) bool { return slots[i].Period < slots[j].Period })
		parts := make([]string, len(slots))
		for i, s := range slots {
			parts[i] = fmt.Sprintf("P%d (%s)", s.Period, s.DepartmentCode)
		}
		fmt.Fprintf(&b, "**%s:** %s\n", day, strings.Join(parts, ", "))
	}
	return b.String()
}

// FormatFacultyCard renders one member's contact card.
func FormatFacultyCard(member *storage.Faculty, departmentName string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "👨‍🏫 **Faculty for %s:**\n\n", departmentName)
	fmt.Fprintf(&b, "**Name:** %s\n", member.Name)
	fmt.Fprintf(&b, "**Email:** %s\n", member.Email)
	if member.Phone != "" {
		fmt.Fprintf(&b, "**Phone:** %s\n", member.Phone)
	}
	if member.Experience != "" {
		fmt.Fprintf(&b, "**Experience:** %s years\n", member.Experience)
	}
	if member.ResearchArea != "" {
		fmt.Fprintf(&b, "**Research Area:** %s\n", member.ResearchArea)
	}
	return b.String()
}

// FormatFacultyList renders the numbered roster of active faculty.
func FormatFacultyList(members []storage.Faculty) string {
	if len(members) == 0 {
		return "No faculties found."
	}

	var b strings.Builder
	fmt.Fprintf(&b, "👥 **All Faculties (%d):**\n\n", len(members))
	for i, m := range members {
		fmt.Fprintf(&b, "%d. **%s** - %s\n", i+1, m.Name, m.DepartmentCode)
	}
	return b.String()
}

// FormatDepartmentSchedule renders one department's day, periods ascending.
func FormatDepartmentSchedule(code, day string, entries []storage.ScheduleEntry) string {
	if len(entries) == 0 {
		return fmt.Sprintf("No classes scheduled for **%s** on %s.", code, day)
	}

	sorted := make([]storage.ScheduleEntry, len(entries))
	copy(sorted, entries)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Period < sorted[j].Period })

	var b strings.Builder
	fmt.Fprintf(&b, "📅 **%s Schedule for %s:**\n\n", code, day)
	for _, e := range sorted {
		fmt.Fprintf(&b, "• Period %d (%s) - %s\n", e.Period, data.PeriodTime(e.Period), e.FacultyName)
	}
	return b.String()
}

// FormatRecentTopics renders what one member taught recently, newest first.
func FormatRecentTopics(name string, records []storage.TeachingRecord) string {
	if len(records) == 0 {
		return fmt.Sprintf("No filled entries for **%s** yet.", name)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "📚 **Recent topics by %s:**\n\n", name)
	for _, r := range records {
		fmt.Fprintf(&b, "**%s** - Period %d (%s)\n", r.Date, r.Period, r.DepartmentName)
		if r.SessionNumber > 0 {
			fmt.Fprintf(&b, "  Session %d: %s\n", r.SessionNumber, r.SessionTitle)
		}
		if r.Summary != "" {
			fmt.Fprintf(&b, "  Summary: %s\n", r.Summary)
		}
		b.WriteString("\n")
	}
	return strings.TrimRight(b.String(), "\n")
}
