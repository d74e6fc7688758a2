// Package help implements the greeting and help rules, the first two stages
// of the cascade. Both are pure text handlers with no store access.
package help

import (
	"context"

	"github.com/campustrack/chatbot-go/internal/bot"
)

// Module names used in logs and metrics.
const (
	GreetingName = "greeting"
	HelpName     = "help"
)

// greetings match only as the whole query or its first word, so "hi there"
// greets but "high marks" does not.
var greetings = []string{
	"hi", "hello", "hey", "hii", "hiii",
	"good morning", "good afternoon", "good evening",
	"greetings",
}

// helpExact are standalone help queries; helpPhrases match anywhere.
var (
	helpExact   = []string{"help", "?", "commands", "what can you do"}
	helpPhrases = []string{"help", "what can", "how to", "guide"}
)

// GreetingHandler answers greetings with the welcome text.
type GreetingHandler struct{}

func NewGreetingHandler() *GreetingHandler { return &GreetingHandler{} }

func (h *GreetingHandler) Name() string { return GreetingName }

func (h *GreetingHandler) CanHandle(q *bot.Query) bool {
	return bot.EqualsOrStartsAny(q.Normalized, greetings)
}

func (h *GreetingHandler) Handle(_ context.Context, _ *bot.Query) (string, error) {
	return GreetingText, nil
}

// HelpHandler answers help queries with the command overview.
type HelpHandler struct{}

func NewHelpHandler() *HelpHandler { return &HelpHandler{} }

func (h *HelpHandler) Name() string { return HelpName }

func (h *HelpHandler) CanHandle(q *bot.Query) bool {
	return bot.EqualsAny(q.Normalized, helpExact) || bot.ContainsAny(q.Normalized, helpPhrases)
}

func (h *HelpHandler) Handle(_ context.Context, _ *bot.Query) (string, error) {
	return HelpText, nil
}
