// Package config provides data availability and limitation constants.
// Defines timetable boundaries and user-facing messages for explaining them.
//
// The department runs a fixed 9-period day (08:00 AM - 04:15 PM grid).
// Queries naming a period outside that grid get a validation message, not
// an empty-result sentence, so students learn the valid range.
package config

// ================================================
// Timetable Boundary Constants
// ================================================

const (
	// PeriodMin is the first class period of the day.
	PeriodMin = 1

	// PeriodMax is the last class period of the day (9 = 03:30-04:15 PM).
	PeriodMax = 9

	// SyllabusSessionCount is the number of sessions in the course syllabus.
	SyllabusSessionCount = 53

	// SyllabusUnitCount is the number of units the syllabus is divided into.
	SyllabusUnitCount = 7
)

// ================================================
// User-facing Messages for Data Boundaries
// ================================================
//
// Message structure: Emoji + Clear statement + Valid range + Actionable hint.
const (
	// PeriodOutOfRangeMessage is shown when a query names a period outside 1-9.
	// Takes the requested period number.
	PeriodOutOfRangeMessage = "🤔 Period %d doesn't exist on our timetable.\n\n" +
		"📅 Class periods run from 1 to 9 (08:00 AM - 04:15 PM).\n\n" +
		"💡 Try asking: \"Who has class in period 3?\""

	// SessionOutOfRangeMessage is shown when a query names a syllabus session
	// outside the published range. Takes the requested session number.
	SessionOutOfRangeMessage = "🤔 Session %d isn't in the syllabus.\n\n" +
		"📚 The C Programming syllabus covers sessions 1 to 53.\n\n" +
		"💡 Try asking: \"Show me the PPT for session 12\""

	// QueryTooLongMessage is shown when a question exceeds the accepted length.
	QueryTooLongMessage = "🤔 That question is a bit too long for me.\n\n" +
		"💡 Try asking something shorter, like \"Who is absent today?\""
)
