package lab

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/campustrack/chatbot-go/internal/bot"
	"github.com/campustrack/chatbot-go/internal/bot/bottest"
	"github.com/campustrack/chatbot-go/internal/storage"
)

func query(text string) *bot.Query {
	return bot.NewQuery(text, time.Date(2026, 3, 4, 9, 0, 0, 0, time.UTC))
}

func TestCanHandle(t *testing.T) {
	t.Parallel()

	h := NewHandler(&bottest.Store{})
	tests := []struct {
		text string
		want bool
	}{
		{"lab program for week 3", true},
		{"week 5 lab", true},
		{"w3 lab", true},
		{"inlab 4", true},
		{"lab 6", true},
		{"moodle link for week 2", true},
		{"lab today", false},
		{"session 5 ppt", false},
	}
	for _, tt := range tests {
		if got := h.CanHandle(query(tt.text)); got != tt.want {
			t.Errorf("CanHandle(%q) = %v, want %v", tt.text, got, tt.want)
		}
	}
}

func TestProgramFound(t *testing.T) {
	t.Parallel()

	store := &bottest.Store{
		LabProgramFunc: func(_ context.Context, n int) (*storage.LabProgram, error) {
			if n != 3 {
				t.Errorf("looked up week %d, want 3", n)
			}
			return &storage.LabProgram{
				ProgramNumber: 3,
				Title:         "Control Flow",
				Description:   "Programs using if-else and switch",
				MoodleURL:     "https://moodle.example.edu/lab3",
			}, nil
		},
	}
	h := NewHandler(store)

	answer, err := h.Handle(context.Background(), query("lab program for week 3"))
	if err != nil {
		t.Fatalf("Handle returned error: %v", err)
	}
	for _, want := range []string{
		"**Lab Program - Week 3:**",
		"**Title:** Control Flow",
		"**Moodle Link:** https://moodle.example.edu/lab3",
	} {
		if !strings.Contains(answer, want) {
			t.Errorf("answer missing %q:\n%s", want, answer)
		}
	}
}

func TestProgramMissingMoodleLink(t *testing.T) {
	t.Parallel()

	store := &bottest.Store{
		LabProgramFunc: func(_ context.Context, n int) (*storage.LabProgram, error) {
			return &storage.LabProgram{ProgramNumber: 9, Title: "Structures"}, nil
		},
	}
	h := NewHandler(store)

	answer, err := h.Handle(context.Background(), query("w9 lab"))
	if err != nil {
		t.Fatalf("Handle returned error: %v", err)
	}
	if !strings.Contains(answer, "**Moodle Link:** Not available yet") {
		t.Errorf("missing placeholder link line:\n%s", answer)
	}
}

func TestProgramNotFound(t *testing.T) {
	t.Parallel()

	h := NewHandler(&bottest.Store{})
	answer, err := h.Handle(context.Background(), query("lab program for week 42"))
	if err != nil {
		t.Fatalf("Handle returned error: %v", err)
	}
	if answer != "No lab program found for week 42." {
		t.Errorf("answer = %q", answer)
	}
}
