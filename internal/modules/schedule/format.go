package schedule

import (
	"fmt"
	"sort"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/campustrack/chatbot-go/internal/data"
	"github.com/campustrack/chatbot-go/internal/sliceutil"
	"github.com/campustrack/chatbot-go/internal/storage"
)

var titleCaser = cases.Title(language.English)

// FormatClassType renders one class type's slots for a day, periods
// ascending.
func FormatClassType(kind, day string, entries []storage.ScheduleEntry) string {
	title := titleCaser.String(kind)
	if len(entries) == 0 {
		return fmt.Sprintf("No %s classes on %s.", strings.ToLower(title), day)
	}

	sorted := sortByPeriod(entries)
	var b strings.Builder
	fmt.Fprintf(&b, "🔬 **%s classes on %s:**\n\n", title, day)
	for _, e := range sorted {
		fmt.Fprintf(&b, "• Period %d (%s) - %s (%s)\n", e.Period, data.PeriodTime(e.Period), e.FacultyName, e.DepartmentCode)
	}
	return b.String()
}

// FormatPeriod renders everyone teaching one period on a day.
func FormatPeriod(period int, day string, entries []storage.ScheduleEntry) string {
	if len(entries) == 0 {
		return fmt.Sprintf("No classes in Period %d on %s.", period, day)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "📅 **Period %d on %s (%s):**\n\n", period, day, data.PeriodTime(period))
	for _, e := range entries {
		fmt.Fprintf(&b, "• **%s** - %s (%s)\n", e.FacultyName, e.DepartmentName, titleCaser.String(e.ClassType))
	}
	return b.String()
}

// FormatComplete renders the full schedule for a day grouped by department,
// departments in name order, periods ascending within each.
func FormatComplete(day string, entries []storage.ScheduleEntry) string {
	if len(entries) == 0 {
		return fmt.Sprintf("No classes scheduled for %s.", day)
	}

	byDept := make(map[string][]storage.ScheduleEntry)
	var deptOrder []string
	for _, e := range sortByPeriod(entries) {
		if _, seen := byDept[e.DepartmentName]; !seen {
			deptOrder = append(deptOrder, e.DepartmentName)
		}
		byDept[e.DepartmentName] = append(byDept[e.DepartmentName], e)
	}
	sort.Strings(deptOrder)

	var b strings.Builder
	fmt.Fprintf(&b, "**Complete Schedule for %s:**\n\n", day)
	for _, dept := range deptOrder {
		fmt.Fprintf(&b, "**%s:**\n", dept)
		for _, e := range byDept[dept] {
			fmt.Fprintf(&b, "  • Period %d (%s) - %s - %s\n", e.Period, data.PeriodTime(e.Period), e.FacultyName, titleCaser.String(e.ClassType))
		}
		b.WriteString("\n")
	}
	return strings.TrimRight(b.String(), "\n")
}

// FormatFacultyToday renders the per-faculty digest: one line per member
// with their periods, plus the total footer.
func FormatFacultyToday(day string, entries []storage.ScheduleEntry) string {
	if len(entries) == 0 {
		return fmt.Sprintf("📅 No C Programming classes scheduled for **%s**.", day)
	}

	sorted := sortByPeriod(entries)
	periodsBy := make(map[int64][]int)
	for _, e := range sorted {
		periodsBy[e.FacultyID] = append(periodsBy[e.FacultyID], e.Period)
	}
	faculty := sliceutil.Deduplicate(sorted, func(e storage.ScheduleEntry) int64 { return e.FacultyID })

	var b strings.Builder
	fmt.Fprintf(&b, "📅 **C Programming Classes for %s:**\n\n", day)
	for _, f := range faculty {
		parts := make([]string, len(periodsBy[f.FacultyID]))
		for i, p := range periodsBy[f.FacultyID] {
			parts[i] = fmt.Sprintf("%d", p)
		}
		fmt.Fprintf(&b, "• **%s** (%s) - Period %s\n", f.FacultyName, f.DepartmentCode, strings.Join(parts, ", "))
	}
	fmt.Fprintf(&b, "\n_Total: %d faculty members teaching today_", len(faculty))
	return b.String()
}

func sortByPeriod(entries []storage.ScheduleEntry) []storage.ScheduleEntry {
	sorted := make([]storage.ScheduleEntry, len(entries))
	copy(sorted, entries)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Period < sorted[j].Period })
	return sorted
}
