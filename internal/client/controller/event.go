// Package controller implements the list views' behavior: loading, row
// expansion, edit drafts, confirmation-gated deletes, and pagination.
package controller

// Event models the bubbling click that reaches both an inner control and its
// enclosing row. An inner handler calls StopPropagation so the row's own
// expand/collapse handler ignores the event.
type Event struct {
	stopped bool
}

func (e *Event) StopPropagation() {
	e.stopped = true
}

func (e *Event) PropagationStopped() bool {
	return e != nil && e.stopped
}
