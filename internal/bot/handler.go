// Package bot provides the handler interface and dispatch registry for the
// chatbot rule cascade. Each module under internal/modules implements the
// Handler interface; registration order decides which rule answers when
// several could, so handlers are registered most-specific first.
package bot

import (
	"context"
	"time"

	"github.com/campustrack/chatbot-go/internal/storage"
	"github.com/campustrack/chatbot-go/internal/stringutil"
)

// Handler is one rule of the cascade. CanHandle must be a cheap predicate
// over the query text and its preloaded catalogs; all store access belongs
// in Handle.
type Handler interface {
	// Name identifies the handler in logs and metrics.
	Name() string

	// CanHandle reports whether this rule claims the query. The first
	// registered handler to claim a query handles it; later rules never
	// see it.
	CanHandle(q *Query) bool

	// Handle resolves records and renders the answer text. Empty data is
	// not an error: handlers return a sentence naming what was empty.
	// An error means a collaborator failed and is propagated to the caller.
	Handle(ctx context.Context, q *Query) (string, error)
}

// Query carries one question through the cascade. Faculty and Departments
// are the catalogs the extractors match against, loaded fresh per query so
// the cascade never caches schedule facts across requests.
type Query struct {
	Raw        string
	Normalized string // lowercased, trimmed
	Today      time.Time
	Day        string // canonical weekday name for Today

	Faculty     []storage.Faculty
	Departments []storage.Department
}

// NewQuery normalizes raw and resolves the weekday for today.
func NewQuery(raw string, today time.Time) *Query {
	return &Query{
		Raw:        raw,
		Normalized: stringutil.Normalize(raw),
		Today:      today,
		Day:        today.Weekday().String(),
	}
}

// Date returns today in the store's civil date format.
func (q *Query) Date() string {
	return q.Today.Format(storage.DateLayout)
}

// DepartmentCodes returns the catalog codes in catalog order.
func (q *Query) DepartmentCodes() []string {
	codes := make([]string, len(q.Departments))
	for i, d := range q.Departments {
		codes[i] = d.Code
	}
	return codes
}

// FacultyNames returns the catalog names in catalog order.
func (q *Query) FacultyNames() []string {
	names := make([]string, len(q.Faculty))
	for i, f := range q.Faculty {
		names[i] = f.Name
	}
	return names
}
