package faculty

import (
	"context"

	"github.com/campustrack/chatbot-go/internal/bot"
)

// List queries need both a listing word and a faculty word, so "list labs"
// and a bare "faculty" both fall through. "facult" covers faculty and
// faculties.
var (
	listWords    = []string{"list", "show", "all", "every", "display"}
	facultyWords = []string{"facult", "teacher", "instructor", "staff"}
)

// ListHandler answers list-all-faculty queries.
type ListHandler struct {
	store bot.Store
}

func NewListHandler(store bot.Store) *ListHandler {
	return &ListHandler{store: store}
}

func (h *ListHandler) Name() string { return ListName }

func (h *ListHandler) CanHandle(q *bot.Query) bool {
	return bot.ContainsAny(q.Normalized, listWords) && bot.ContainsAny(q.Normalized, facultyWords)
}

func (h *ListHandler) Handle(ctx context.Context, q *bot.Query) (string, error) {
	return h.ListAll(ctx)
}

// ListAll renders the active faculty roster. Also used by the semantic
// router for the list-all-faculty intent.
func (h *ListHandler) ListAll(ctx context.Context) (string, error) {
	members, err := h.store.AllActiveFaculty(ctx)
	if err != nil {
		return "", err
	}
	return FormatFacultyList(members), nil
}
