package storage

import (
	"context"
	"testing"

	domerrors "github.com/campustrack/chatbot-go/internal/errors"
)

func TestSyllabusSession(t *testing.T) {
	db := setupTestDB(t)
	defer func() { _ = db.Close() }()
	ctx := context.Background()

	sessions := []SyllabusSession{
		{SessionNumber: 12, Title: "Decision Making - switch statement", Unit: 2, Topics: "switch syntax, case labels, fall-through", PPTURL: "https://moodle.example.edu/ppt/session12.pdf"},
		{SessionNumber: 13, Title: "Loops - for loop", Unit: 2},
	}
	if err := db.SaveSyllabusSessions(ctx, sessions); err != nil {
		t.Fatalf("SaveSyllabusSessions failed: %v", err)
	}

	session, err := db.SyllabusSession(ctx, 12)
	if err != nil {
		t.Fatalf("SyllabusSession failed: %v", err)
	}

	if session.Title != "Decision Making - switch statement" {
		t.Errorf("Expected switch statement title, got %q", session.Title)
	}
	if session.Unit != 2 {
		t.Errorf("Expected unit 2, got %d", session.Unit)
	}
	if session.PPTURL == "" {
		t.Error("Expected PPT URL to be set")
	}

	// Session without PPT comes back with empty URL, not an error
	session, err = db.SyllabusSession(ctx, 13)
	if err != nil {
		t.Fatalf("SyllabusSession failed: %v", err)
	}
	if session.PPTURL != "" {
		t.Errorf("Expected empty PPT URL, got %q", session.PPTURL)
	}
}

func TestSyllabusSession_NotFound(t *testing.T) {
	db := setupTestDB(t)
	defer func() { _ = db.Close() }()

	_, err := db.SyllabusSession(context.Background(), 54)
	if err == nil {
		t.Fatal("Expected error for missing session, got nil")
	}
	if !domerrors.IsNotFound(err) {
		t.Errorf("Expected not-found error, got %v", err)
	}
}

func TestAllSyllabusSessions(t *testing.T) {
	db := setupTestDB(t)
	defer func() { _ = db.Close() }()
	ctx := context.Background()

	sessions := []SyllabusSession{
		{SessionNumber: 31, Title: "Introduction to Pointers", Unit: 5},
		{SessionNumber: 1, Title: "Introduction to C Programming", Unit: 1},
		{SessionNumber: 48, Title: "Introduction to File Handling", Unit: 7},
	}
	if err := db.SaveSyllabusSessions(ctx, sessions); err != nil {
		t.Fatalf("SaveSyllabusSessions failed: %v", err)
	}

	all, err := db.AllSyllabusSessions(ctx)
	if err != nil {
		t.Fatalf("AllSyllabusSessions failed: %v", err)
	}

	if len(all) != 3 {
		t.Fatalf("Expected 3 sessions, got %d", len(all))
	}

	// Ordered by session number
	if all[0].SessionNumber != 1 || all[2].SessionNumber != 48 {
		t.Errorf("Expected sessions ordered 1..48, got %d..%d", all[0].SessionNumber, all[2].SessionNumber)
	}
}

func TestSaveSyllabusSessions_Upsert(t *testing.T) {
	db := setupTestDB(t)
	defer func() { _ = db.Close() }()
	ctx := context.Background()

	initial := []SyllabusSession{{SessionNumber: 5, Title: "Variables and Constants", Unit: 1}}
	if err := db.SaveSyllabusSessions(ctx, initial); err != nil {
		t.Fatalf("SaveSyllabusSessions failed: %v", err)
	}

	update := []SyllabusSession{{SessionNumber: 5, Title: "Variables and Constants", Unit: 1, PPTURL: "https://moodle.example.edu/ppt/session5.pdf"}}
	if err := db.SaveSyllabusSessions(ctx, update); err != nil {
		t.Fatalf("SaveSyllabusSessions failed: %v", err)
	}

	count, err := db.CountSyllabusSessions(ctx)
	if err != nil {
		t.Fatalf("CountSyllabusSessions failed: %v", err)
	}
	if count != 1 {
		t.Errorf("Upsert created a duplicate: expected 1 session, got %d", count)
	}

	session, err := db.SyllabusSession(ctx, 5)
	if err != nil {
		t.Fatalf("SyllabusSession failed: %v", err)
	}
	if session.PPTURL != "https://moodle.example.edu/ppt/session5.pdf" {
		t.Errorf("Expected updated PPT URL, got %q", session.PPTURL)
	}
}

func TestLabProgram(t *testing.T) {
	db := setupTestDB(t)
	defer func() { _ = db.Close() }()
	ctx := context.Background()

	programs := []LabProgram{
		{ProgramNumber: 3, Title: "String Reversal", Description: "Write a C program to reverse a string without using library functions.", MoodleURL: "https://moodle.example.edu/lab/week3"},
		{ProgramNumber: 4, Title: "Matrix Multiplication"},
	}
	if err := db.SaveLabPrograms(ctx, programs); err != nil {
		t.Fatalf("SaveLabPrograms failed: %v", err)
	}

	program, err := db.LabProgram(ctx, 3)
	if err != nil {
		t.Fatalf("LabProgram failed: %v", err)
	}

	if program.Title != "String Reversal" {
		t.Errorf("Expected title String Reversal, got %q", program.Title)
	}
	if program.MoodleURL != "https://moodle.example.edu/lab/week3" {
		t.Errorf("Expected Moodle URL, got %q", program.MoodleURL)
	}

	count, err := db.CountLabPrograms(ctx)
	if err != nil {
		t.Fatalf("CountLabPrograms failed: %v", err)
	}
	if count != 2 {
		t.Errorf("Expected 2 lab programs, got %d", count)
	}
}

func TestLabProgram_NotFound(t *testing.T) {
	db := setupTestDB(t)
	defer func() { _ = db.Close() }()

	_, err := db.LabProgram(context.Background(), 99)
	if err == nil {
		t.Fatal("Expected error for missing program, got nil")
	}
	if !domerrors.IsNotFound(err) {
		t.Errorf("Expected not-found error, got %v", err)
	}
}
