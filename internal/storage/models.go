package storage

// DateLayout is the civil date format used for daily entry dates.
const DateLayout = "2006-01-02"

// Department represents a department (class section) record.
type Department struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
	Code string `json:"code"`
}

// Faculty represents a faculty member record.
type Faculty struct {
	ID             int64  `json:"id"`
	Name           string `json:"name"`
	Email          string `json:"email"`
	Phone          string `json:"phone,omitempty"`
	DepartmentCode string `json:"department_code"`
	Experience     string `json:"experience,omitempty"`
	ResearchArea   string `json:"research_area,omitempty"`
	IsActive       bool   `json:"is_active"`
}

// TimetableEntry represents one weekly timetable slot.
type TimetableEntry struct {
	FacultyID      int64  `json:"faculty_id"`
	DepartmentCode string `json:"department_code"`
	Day            string `json:"day"` // Monday, Tuesday, ...
	Period         int    `json:"period"`
	ClassType      string `json:"class_type"` // theory, lab, mini-project
}

// ScheduleEntry is a resolved timetable row joined with faculty and
// department details. This is the shape the chatbot handlers consume.
type ScheduleEntry struct {
	FacultyID      int64  `json:"faculty_id"`
	FacultyName    string `json:"faculty_name"`
	DepartmentCode string `json:"department_code"`
	DepartmentName string `json:"department_name"`
	Day            string `json:"day"`
	Period         int    `json:"period"`
	ClassType      string `json:"class_type"`
}

// DailyEntry represents one filled daily record for a scheduled period.
// Swap and extra-class fields overlay the base timetable slot.
type DailyEntry struct {
	FacultyID        int64  `json:"faculty_id"`
	DepartmentCode   string `json:"department_code"`
	Date             string `json:"date"` // DateLayout
	Period           int    `json:"period"`
	SessionNumber    int    `json:"session_number,omitempty"` // syllabus session covered, 0 = none
	IsAbsent         bool   `json:"is_absent"`
	IsSwapped        bool   `json:"is_swapped"`
	SwappedWith      string `json:"swapped_with,omitempty"`
	SwapType         string `json:"swap_type,omitempty"`
	IsExtraClass     bool   `json:"is_extra_class"`
	ExtraSubjectCode string `json:"extra_subject_code,omitempty"`
	ExtraSubjectName string `json:"extra_subject_name,omitempty"`
	Summary          string `json:"summary,omitempty"`
}

// DailyStatus is a daily entry joined with faculty and department details.
type DailyStatus struct {
	FacultyID        int64  `json:"faculty_id"`
	FacultyName      string `json:"faculty_name"`
	DepartmentCode   string `json:"department_code"`
	DepartmentName   string `json:"department_name"`
	Date             string `json:"date"`
	Period           int    `json:"period"`
	SessionNumber    int    `json:"session_number,omitempty"`
	SessionTitle     string `json:"session_title,omitempty"`
	IsAbsent         bool   `json:"is_absent"`
	IsSwapped        bool   `json:"is_swapped"`
	SwappedWith      string `json:"swapped_with,omitempty"`
	SwapType         string `json:"swap_type,omitempty"`
	IsExtraClass     bool   `json:"is_extra_class"`
	ExtraSubjectCode string `json:"extra_subject_code,omitempty"`
	ExtraSubjectName string `json:"extra_subject_name,omitempty"`
	Summary          string `json:"summary,omitempty"`
}

// StatusFilter narrows DailyStatus lookups. Zero values match everything.
type StatusFilter struct {
	FacultyID      int64
	DepartmentCode string
	AbsentOnly     bool
}

// SummaryCounts aggregates one day's entry state for the admin summary.
type SummaryCounts struct {
	Scheduled    int `json:"scheduled"`
	Filled       int `json:"filled"`
	Pending      int `json:"pending"`
	Absent       int `json:"absent"`
	Swapped      int `json:"swapped"`
	ExtraClasses int `json:"extra_classes"`
}

// TeachingRecord is one row of teaching history (most recent first).
type TeachingRecord struct {
	Date           string `json:"date"`
	FacultyName    string `json:"faculty_name"`
	DepartmentName string `json:"department_name"`
	Period         int    `json:"period"`
	SessionNumber  int    `json:"session_number,omitempty"`
	SessionTitle   string `json:"session_title,omitempty"`
	Summary        string `json:"summary,omitempty"`
}

// HistoryFilter narrows TeachingHistory lookups. Zero values match everything.
type HistoryFilter struct {
	FacultyID      int64
	DepartmentCode string
}

// SyllabusSession represents one session of the C Programming syllabus.
type SyllabusSession struct {
	SessionNumber int    `json:"session_number"`
	Title         string `json:"title"`
	Unit          int    `json:"unit"`
	Topics        string `json:"topics,omitempty"`
	PPTURL        string `json:"ppt_url,omitempty"`
}

// LabProgram represents one weekly lab program.
type LabProgram struct {
	ProgramNumber int    `json:"program_number"`
	Title         string `json:"title"`
	Description   string `json:"description,omitempty"`
	MoodleURL     string `json:"moodle_url,omitempty"`
}

// FAQEntry represents a stored question/answer pair.
type FAQEntry struct {
	ID       int64  `json:"id"`
	Question string `json:"question"`
	Answer   string `json:"answer"`
	IsActive bool   `json:"is_active"`
}
