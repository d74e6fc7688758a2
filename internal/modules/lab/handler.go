// Package lab implements the lab-program rule: "lab program for week 3",
// "w5 lab", "moodle link for week 2".
package lab

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/campustrack/chatbot-go/internal/bot"
	domerrors "github.com/campustrack/chatbot-go/internal/errors"
	"github.com/campustrack/chatbot-go/internal/extract"
	"github.com/campustrack/chatbot-go/internal/storage"
)

// ModuleName identifies the handler in logs and metrics.
const ModuleName = "lab_program"

// ClarifyWeekText asks for a week number when a lab intent matched without
// one.
const ClarifyWeekText = "Please specify a week number (e.g., 'Lab program for week 3')"

// Handler answers lab-program queries carrying a week number.
type Handler struct {
	store bot.Store
}

func NewHandler(store bot.Store) *Handler {
	return &Handler{store: store}
}

func (h *Handler) Name() string { return ModuleName }

func (h *Handler) CanHandle(q *bot.Query) bool {
	_, ok := extract.IntegerAfter(q.Normalized, extract.WeekKeywords)
	return ok
}

func (h *Handler) Handle(ctx context.Context, q *bot.Query) (string, error) {
	week, ok := extract.IntegerAfter(q.Normalized, extract.WeekKeywords)
	if !ok {
		return ClarifyWeekText, nil
	}
	return h.Program(ctx, week)
}

// Program renders one week's lab program. Also used by the semantic router
// for the lab-program intent.
func (h *Handler) Program(ctx context.Context, week int) (string, error) {
	program, err := h.store.LabProgram(ctx, week)
	if errors.Is(err, domerrors.ErrNotFound) {
		return fmt.Sprintf("No lab program found for week %d.", week), nil
	}
	if err != nil {
		return "", err
	}
	return Format(week, program), nil
}

// Format renders the lab program card.
func Format(week int, program *storage.LabProgram) string {
	var b strings.Builder
	fmt.Fprintf(&b, "🔬 **Lab Program - Week %d:**\n\n", week)
	fmt.Fprintf(&b, "**Title:** %s\n", program.Title)
	if program.Description != "" {
		fmt.Fprintf(&b, "**Description:** %s\n", program.Description)
	}
	if program.MoodleURL != "" {
		fmt.Fprintf(&b, "**Moodle Link:** %s\n", program.MoodleURL)
	} else {
		b.WriteString("**Moodle Link:** Not available yet\n")
	}
	return b.String()
}
