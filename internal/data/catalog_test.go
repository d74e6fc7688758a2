package data

import "testing"

// The catalog is maintained by hand, so these tests guard the cross-references
// the seeder and the chatbot rely on.

func TestDepartments_UniqueCodes(t *testing.T) {
	t.Parallel()

	seenID := make(map[int64]bool)
	seenCode := make(map[string]bool)
	for _, dept := range Departments {
		if seenID[dept.ID] {
			t.Errorf("Duplicate department id %d", dept.ID)
		}
		if seenCode[dept.Code] {
			t.Errorf("Duplicate department code %q", dept.Code)
		}
		seenID[dept.ID] = true
		seenCode[dept.Code] = true
	}

	if len(Departments) != 14 {
		t.Errorf("Expected 14 departments, got %d", len(Departments))
	}
}

func TestFaculty_ReferencesKnownDepartments(t *testing.T) {
	t.Parallel()

	codes := make(map[string]bool)
	for _, dept := range Departments {
		codes[dept.Code] = true
	}

	seenID := make(map[int64]bool)
	seenEmail := make(map[string]bool)
	for _, f := range Faculty {
		if seenID[f.ID] {
			t.Errorf("Duplicate faculty id %d", f.ID)
		}
		if seenEmail[f.Email] {
			t.Errorf("Duplicate faculty email %q", f.Email)
		}
		seenID[f.ID] = true
		seenEmail[f.Email] = true

		if !codes[f.DepartmentCode] {
			t.Errorf("Faculty %q references unknown department %q", f.Name, f.DepartmentCode)
		}
		if f.Email == "" || f.Phone == "" {
			t.Errorf("Faculty %q is missing contact details", f.Name)
		}
	}

	if len(Faculty) != 14 {
		t.Errorf("Expected 14 faculty, got %d", len(Faculty))
	}
}

func TestTimetableEntries_Valid(t *testing.T) {
	t.Parallel()

	codes := make(map[string]bool)
	for _, dept := range Departments {
		codes[dept.Code] = true
	}
	facultyIDs := make(map[int64]bool)
	for _, f := range Faculty {
		facultyIDs[f.ID] = true
	}
	validDays := map[string]bool{
		"Monday": true, "Tuesday": true, "Wednesday": true,
		"Thursday": true, "Friday": true, "Saturday": true, "Sunday": true,
	}
	validTypes := map[string]bool{ClassTheory: true, ClassLab: true, ClassMiniProject: true}

	type slot struct {
		faculty int64
		dept    string
		day     string
		period  int
	}
	seen := make(map[slot]bool)

	labsByDept := make(map[string]int)
	for _, entry := range TimetableEntries {
		if !facultyIDs[entry.FacultyID] {
			t.Errorf("Timetable entry references unknown faculty id %d", entry.FacultyID)
		}
		if !codes[entry.DepartmentCode] {
			t.Errorf("Timetable entry references unknown department %q", entry.DepartmentCode)
		}
		if !validDays[entry.Day] {
			t.Errorf("Timetable entry has invalid day %q", entry.Day)
		}
		if entry.Period < 1 || entry.Period > 9 {
			t.Errorf("Timetable entry has period %d outside 1-9", entry.Period)
		}
		if !validTypes[entry.ClassType] {
			t.Errorf("Timetable entry has invalid class type %q", entry.ClassType)
		}

		key := slot{entry.FacultyID, entry.DepartmentCode, entry.Day, entry.Period}
		if seen[key] {
			t.Errorf("Duplicate timetable slot %+v", key)
		}
		seen[key] = true

		if entry.ClassType == ClassLab {
			labsByDept[entry.DepartmentCode]++
		}
	}

	// Every section runs at least one lab period a week
	for _, dept := range Departments {
		if labsByDept[dept.Code] == 0 {
			t.Errorf("Department %s has no lab period", dept.Code)
		}
	}
}

func TestSyllabusSessions_CompleteAndOrdered(t *testing.T) {
	t.Parallel()

	if len(SyllabusSessions) != 53 {
		t.Fatalf("Expected 53 sessions, got %d", len(SyllabusSessions))
	}

	for i, session := range SyllabusSessions {
		if session.SessionNumber != i+1 {
			t.Errorf("Session at index %d has number %d, expected %d", i, session.SessionNumber, i+1)
		}
		if session.Title == "" {
			t.Errorf("Session %d has an empty title", session.SessionNumber)
		}
		if session.Unit < 1 || session.Unit > 7 {
			t.Errorf("Session %d has unit %d outside 1-7", session.SessionNumber, session.Unit)
		}
		if i > 0 && session.Unit < SyllabusSessions[i-1].Unit {
			t.Errorf("Session %d unit %d goes backwards", session.SessionNumber, session.Unit)
		}
	}
}

func TestLabPrograms_Sequential(t *testing.T) {
	t.Parallel()

	for i, program := range LabPrograms {
		if program.ProgramNumber != i+1 {
			t.Errorf("Lab program at index %d has number %d, expected %d", i, program.ProgramNumber, i+1)
		}
		if program.Title == "" || program.Description == "" {
			t.Errorf("Lab program %d is missing title or description", program.ProgramNumber)
		}
	}
}

func TestFAQs_UniqueIDs(t *testing.T) {
	t.Parallel()

	seen := make(map[int64]bool)
	for _, faq := range FAQs {
		if seen[faq.ID] {
			t.Errorf("Duplicate FAQ id %d", faq.ID)
		}
		seen[faq.ID] = true

		if faq.Question == "" || faq.Answer == "" {
			t.Errorf("FAQ %d is missing question or answer", faq.ID)
		}
	}
}

func TestPeriodTime(t *testing.T) {
	t.Parallel()

	if got := PeriodTime(1); got != "08:00 AM - 08:45 AM" {
		t.Errorf("PeriodTime(1) = %q", got)
	}
	if got := PeriodTime(9); got != "03:30 PM - 04:15 PM" {
		t.Errorf("PeriodTime(9) = %q", got)
	}
	if got := PeriodTime(10); got != "Unknown" {
		t.Errorf("PeriodTime(10) = %q, expected Unknown", got)
	}

	// Every timetable period has a timing entry
	for _, entry := range TimetableEntries {
		if PeriodTime(entry.Period) == "Unknown" {
			t.Errorf("Period %d has no timing entry", entry.Period)
		}
	}
}
