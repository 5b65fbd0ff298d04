package reader

import (
	"fmt"

	"go.uber.org/multierr"
)

// Problem is one accumulated registration error: a message tied to the
// offending element and the resource it was declared in, with an optional
// underlying cause.
type Problem struct {
	Message  string
	Element  string
	Resource string
	Cause    error
}

// Error formats the problem with its location and cause.
func (p Problem) Error() string {
	msg := p.Message

	if p.Element != "" {
		msg = fmt.Sprintf("%s (element %s)", msg, p.Element)
	}

	if p.Resource != "" {
		msg = fmt.Sprintf("%s in %s", msg, p.Resource)
	}

	if p.Cause != nil {
		msg = fmt.Sprintf("%s: %v", msg, p.Cause)
	}

	return msg
}

// Unwrap exposes the underlying cause to errors.Is and errors.As.
func (p Problem) Unwrap() error {
	return p.Cause
}

// Problems collects registration errors across one load. A bad element never
// aborts the traversal; its problem lands here and processing moves on to the
// next sibling.
type Problems struct {
	items []Problem
}

// NewProblems creates an empty collector.
func NewProblems() *Problems {
	return &Problems{}
}

// Add records a problem.
func (ps *Problems) Add(problem Problem) {
	ps.items = append(ps.items, problem)
}

// Len returns the number of recorded problems.
func (ps *Problems) Len() int {
	return len(ps.items)
}

// Items returns the recorded problems in order.
func (ps *Problems) Items() []Problem {
	items := make([]Problem, len(ps.items))
	copy(items, ps.items)

	return items
}

// Err combines all recorded problems into a single error, or nil when the
// load was clean.
func (ps *Problems) Err() error {
	var err error

	for _, problem := range ps.items {
		err = multierr.Append(err, problem)
	}

	return err
}
