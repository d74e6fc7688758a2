package syllabus

import (
	"context"
	"fmt"
	"strings"

	"github.com/campustrack/chatbot-go/internal/bot"
	"github.com/campustrack/chatbot-go/internal/rag"
)

// TopicName identifies the syllabus topic search handler.
const TopicName = "syllabus_topic_search"

// topicResults is how many fused matches the answer shows.
const topicResults = 3

// topicPhrases signal a "which session covers X" style question.
var topicPhrases = []string{"cover", "which session", "what session", "when is", "when do", "when will"}

// TopicHandler answers "when is pointers covered" style questions using
// hybrid keyword plus vector search over the syllabus.
type TopicHandler struct {
	searcher *rag.HybridSearcher
}

// NewTopicHandler creates the topic search handler. A nil searcher yields
// a handler that never matches.
func NewTopicHandler(searcher *rag.HybridSearcher) *TopicHandler {
	return &TopicHandler{searcher: searcher}
}

func (h *TopicHandler) Name() string { return TopicName }

func (h *TopicHandler) CanHandle(q *bot.Query) bool {
	if h.searcher == nil {
		return false
	}
	return bot.ContainsAny(q.Normalized, topicPhrases)
}

func (h *TopicHandler) Handle(ctx context.Context, q *bot.Query) (string, error) {
	results, err := h.searcher.Search(ctx, q.Raw, topicResults)
	if err != nil {
		return "", err
	}
	return FormatTopicResults(q.Raw, results), nil
}

// FormatTopicResults renders the fused search results for a topic query.
func FormatTopicResults(query string, results []rag.TopicResult) string {
	if len(results) == 0 {
		return fmt.Sprintf("I couldn't find that topic in the syllabus. Try a different phrasing, or ask 'PPT for session 5' if you know the session number. (Searched for: %s)", query)
	}

	var b strings.Builder
	b.WriteString("📚 **Closest syllabus sessions:**\n\n")
	for _, r := range results {
		fmt.Fprintf(&b, "• **Session %d** - %s (Unit %d)\n", r.SessionNumber, r.Title, r.Unit)
	}
	b.WriteString("\nAsk 'PPT for session N' to get the materials.")
	return b.String()
}
