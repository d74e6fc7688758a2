package bot

import "context"

// Registry holds the ordered rule cascade and dispatches queries to the
// first handler that claims them.
type Registry struct {
	handlers []Handler
}

// NewRegistry creates an empty handler registry.
func NewRegistry() *Registry {
	return &Registry{
		handlers: make([]Handler, 0),
	}
}

// Register appends a handler. Order matters: register most-specific rules
// before generic ones.
func (r *Registry) Register(h Handler) {
	r.handlers = append(r.handlers, h)
}

// Dispatch runs the cascade. The boolean reports whether any handler
// claimed the query; when false the caller falls through to the lexical
// and semantic stages.
func (r *Registry) Dispatch(ctx context.Context, q *Query) (string, bool, error) {
	for _, h := range r.handlers {
		if h.CanHandle(q) {
			answer, err := h.Handle(ctx, q)
			return answer, true, err
		}
	}
	return "", false, nil
}

// Match returns the name of the handler that would claim the query, without
// running it. Used by metrics and tests.
func (r *Registry) Match(q *Query) (string, bool) {
	for _, h := range r.handlers {
		if h.CanHandle(q) {
			return h.Name(), true
		}
	}
	return "", false
}

// GetHandler returns a registered handler by name, or nil.
func (r *Registry) GetHandler(name string) Handler {
	for _, h := range r.handlers {
		if h.Name() == name {
			return h
		}
	}
	return nil
}
