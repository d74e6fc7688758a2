// Package intent routes free-form questions to chatbot intents by
// embedding a catalog of example phrasings and matching queries against
// them by cosine similarity.
package intent

import (
	"fmt"

	"github.com/campustrack/chatbot-go/internal/rag"
)

// Intent identifiers. The chatbot service maps each one to a handler.
const (
	ScheduleToday    = "get_schedule_today"
	CompleteSchedule = "get_complete_schedule"
	AbsentFaculty    = "get_absent_faculty"
	LabProgram       = "get_lab_program"
	SessionPPT       = "get_session_ppt"
	FacultyByDept    = "get_faculty_by_dept"
	FacultySchedule  = "get_faculty_schedule"
	ListAllFaculty   = "list_all_faculty"
	TeachingHistory  = "get_teaching_history"
	Help             = "help"
	Greeting         = "greeting"
)

// Example is one phrasing a user might use for an intent.
type Example struct {
	Intent string
	Text   string
}

// Catalog returns every intent example. Each example becomes one vector
// document; matching picks the nearest example and returns its intent.
func Catalog() []Example {
	groups := []struct {
		intent   string
		examples []string
	}{
		{ScheduleToday, []string{
			"Who has C period today?",
			"Who is teaching today?",
			"Show today's classes",
			"Who has class today?",
			"Classes for today",
			"Today's schedule",
			"Which faculty is teaching today?",
			"What are the C programming classes today?",
		}},
		{CompleteSchedule, []string{
			"Show today's complete schedule",
			"Full schedule for today",
			"All classes today",
			"Today's timetable",
			"Complete timetable",
			"Show all periods today",
		}},
		{AbsentFaculty, []string{
			"Who is absent today?",
			"Which faculty is absent?",
			"Show absent teachers",
			"Who's not present today?",
			"Faculty on leave today",
			"Missing faculty today",
		}},
		{LabProgram, []string{
			"Lab program for week 3",
			"Show week 5 lab",
			"What's the lab for week 2?",
			"Week 7 lab program",
			"Lab assignment week 4",
			"Show lab 6",
		}},
		{SessionPPT, []string{
			"PPT for session 3",
			"Show deck 5",
			"Session 7 slides",
			"Presentation for session 2",
			"Slide deck 4",
			"Session 6 PPT",
		}},
		{FacultyByDept, []string{
			"Who is teaching AIDS-A?",
			"Faculty for CSE-B",
			"Show teacher for AIML-A",
			"Who teaches IT-A?",
			"Faculty assigned to ECE-B",
			"Teacher for CYS department",
		}},
		{FacultySchedule, []string{
			"When does Sathish have class?",
			"What is Ravi's schedule?",
			"Show Priya's timetable",
			"When will Kumar teach?",
			"What days does Meena have classes?",
			"Schedule for faculty Arun",
			"When is teacher John's class?",
			"What's the timetable for professor Sathish?",
		}},
		{ListAllFaculty, []string{
			"List all faculties",
			"Show all teachers",
			"Display faculty list",
			"All instructors",
			"Faculty members",
			"Show all staff",
		}},
		{TeachingHistory, []string{
			"What was taught recently?",
			"Recent classes",
			"Show teaching history",
			"What did faculty teach?",
			"Recent topics covered",
			"Last class content",
		}},
		{Help, []string{
			"Help",
			"What can you do?",
			"How to use this?",
			"Commands",
			"Guide me",
			"What are your features?",
		}},
		{Greeting, []string{
			"Hello",
			"Hi",
			"Hey there",
			"Good morning",
			"Greetings",
			"Hi bot",
		}},
	}

	var examples []Example
	for _, g := range groups {
		for _, text := range g.examples {
			examples = append(examples, Example{Intent: g.intent, Text: text})
		}
	}
	return examples
}

// CatalogDocuments converts the catalog to vector documents. The intent
// name travels in metadata so matches resolve without a lookup table.
func CatalogDocuments() []rag.Document {
	catalog := Catalog()
	docs := make([]rag.Document, len(catalog))
	for i, ex := range catalog {
		docs[i] = rag.Document{
			ID:       fmt.Sprintf("example-%d", i),
			Content:  ex.Text,
			Metadata: map[string]string{"intent": ex.Intent},
		}
	}
	return docs
}
