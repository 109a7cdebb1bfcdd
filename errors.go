package constraint

import "errors"

// Construction-time usage errors. Generators panic with errors wrapping
// these sentinels when called with an argument shape that would produce a
// vacuous or broken constraint. Evaluation itself never panics.
var (
	// ErrNilConstraint is reported when a nil or zero-value Constraint is
	// passed where a sub-constraint is required.
	ErrNilConstraint = errors.New("nil constraint")

	// ErrNilPattern is reported when Matches receives a nil pattern.
	ErrNilPattern = errors.New("nil pattern")

	// ErrNilType is reported when IsA receives a nil reflect.Type.
	ErrNilType = errors.New("nil type")

	// ErrNoArguments is reported when a generator that needs at least one
	// argument (patterns, keys, kinds, types, methods, candidates) is
	// called with none.
	ErrNoArguments = errors.New("no arguments given")

	// ErrInvalidBounds is reported when length or size bounds are
	// negative, reversed, or given more than twice.
	ErrInvalidBounds = errors.New("invalid bounds")
)

// Binding errors returned by Bind.
var (
	// ErrUnknownGenerator is returned when a requested name has no
	// registered generator.
	ErrUnknownGenerator = errors.New("unknown generator")

	// ErrInvalidBindTarget is returned when the bind target is not a
	// non-nil pointer to a struct.
	ErrInvalidBindTarget = errors.New("invalid bind target")

	// ErrFieldMismatch is returned when the target struct has no settable
	// field matching a requested generator's name and type.
	ErrFieldMismatch = errors.New("field does not match generator")
)
