// Package syllabus answers questions about the session syllabus: direct
// session/PPT lookups by number and topic searches over the whole corpus.
package syllabus

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

const (
	// SessionName identifies the session/PPT lookup handler.
	SessionName = "session_ppt"

	// ClarifySessionText asks for a session number when the question
	// mentions sessions or slides without one.
	ClarifySessionText = "Please specify a session number (e.g., 'PPT for session 5')"
)

// SessionHandler answers "ppt for session 5" style questions.
type SessionHandler struct {
	store bot.Store
}

// NewSessionHandler creates the session/PPT lookup handler.
func NewSessionHandler(store bot.Store) *SessionHandler {
	return &SessionHandler{store: store}
}

func (h *SessionHandler) Name() string { return SessionName }

// CanHandle matches when a session keyword appears with a number nearby.
func (h *SessionHandler) CanHandle(q *bot.Query) bool {
	_, ok := extract.IntegerAfter(q.Normalized, extract.SessionKeywords)
	return ok
}

func (h *SessionHandler) Handle(ctx context.Context, q *bot.Query) (string, error) {
	n, ok := extract.IntegerAfter(q.Normalized, extract.SessionKeywords)
	if !ok {
		return ClarifySessionText, nil
	}
	return h.Session(ctx, n)
}

// Session returns the card for one syllabus session. Used directly by the
// semantic router, which extracts the number itself.
func (h *SessionHandler) Session(ctx context.Context, n int) (string, error) {
	session, err := h.store.SyllabusSession(ctx, n)
	if err != nil {
		if errors.Is(err, domerrors.ErrNotFound) {
			return fmt.Sprintf("No session %d found in syllabus.", n), nil
		}
		return "", err
	}
	return FormatSession(session), nil
}

// FormatSession renders one session card.
func FormatSession(s *storage.SyllabusSession) string {
	var b strings.Builder
	fmt.Fprintf(&b, "📊 **Session %d:**\n\n", s.SessionNumber)
	fmt.Fprintf(&b, "**Topic:** %s\n", s.Title)
	fmt.Fprintf(&b, "**Unit:** %d\n", s.Unit)
	if s.Topics != "" {
		fmt.Fprintf(&b, "**Subtopics:** %s\n", s.Topics)
	}
	if s.PPTURL != "" {
		fmt.Fprintf(&b, "**PPT Link:** %s\n", s.PPTURL)
	} else {
		b.WriteString("**PPT Link:** Not available yet\n")
	}
	return b.String()
}
