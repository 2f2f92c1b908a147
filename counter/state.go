// Package counter implements the counter view model: an immutable State
// record owned by a ViewModel that replaces it through four actions and
// publishes every replacement to observers and per-field projections.
package counter

// State is a snapshot of the counter's display state. Instances are never
// mutated in place; every change is a wholesale replacement with a new
// value. All fields are comparable, so equality between two states is
// plain ==, field by field.
type State struct {
	Count   int
	Message string
	Loading bool
}

// Initial returns the state a fresh view model starts from: count zero,
// the initial prompt, not loading.
func Initial() State {
	return State{Count: 0, Message: initialMessage, Loading: false}
}

// WithLoading returns a copy of s with only the loading flag replaced.
func (s State) WithLoading(loading bool) State {
	s.Loading = loading
	return s
}

// WithMessage returns a copy of s with only the message replaced.
func (s State) WithMessage(message string) State {
	s.Message = message
	return s
}
