package constraint

import (
	"slices"
	"strings"
)

const (
	// defaultMessage is used when a failing check supplies no message and
	// no Message override is in effect.
	defaultMessage = "Validation failed"

	// undefinedMessage is the failure message for nil input to every
	// constraint that dereferences its value.
	undefinedMessage = "Undefined Value"
)

// Result is the outcome of evaluating a Constraint against a value. A
// Result is immutable once it reaches the caller: validity is fixed at
// creation, the message is meaningful only for failures, and the path
// records the constraint-name trail from the root of the tree down to the
// exact check that failed first.
type Result struct {
	valid   bool
	message string
	path    []string
}

// IsValid reports whether the evaluated value satisfied the constraint.
func (r *Result) IsValid() bool {
	return r.valid
}

// Message returns the failure message. It is empty for valid results.
func (r *Result) Message() string {
	return r.message
}

// Path returns the failure trail as a dot-joined string, outermost
// constraint first, e.g. "And.OnHashKeys[foo].IsArrayRef[3].IsInt".
// It is empty for valid results.
func (r *Result) Path() string {
	return strings.Join(r.path, ".")
}

// Stack returns a copy of the individual path tokens, outermost first.
func (r *Result) Stack() []string {
	return slices.Clone(r.path)
}

// prependPath grows the trail at the front: wrapping happens innermost
// first as results propagate outward, but the displayed path reads from
// the root down.
func (r *Result) prependPath(token string) {
	r.path = append([]string{token}, r.path...)
}
