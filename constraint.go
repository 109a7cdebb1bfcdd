package constraint

import (
	"fmt"
	"reflect"
)

// Constraint is a reusable, stateless check of a single value. Leaf
// predicates and operator combinators have the same shape, so any
// Constraint can be supplied wherever a sub-constraint is accepted.
// Constraints are built by the generator functions in this package (or by
// Ensure); the zero value is not usable.
type Constraint struct {
	name  string
	check checkFunc
}

type checkFunc func(ctx *evalContext, value any) *Result

// Name returns the constraint's registered name, as it appears in
// failure paths.
func (c Constraint) Name() string {
	return c.name
}

// Evaluate runs the constraint against value and returns the outcome.
// Each call uses its own evaluation context, so concurrent evaluations of
// the same constraint tree never observe each other's annotation or
// message-override state. Evaluate panics only when called on a zero
// Constraint; no input value causes a panic.
func (c Constraint) Evaluate(value any) *Result {
	if c.check == nil {
		panic(usage("Evaluate", ErrNilConstraint))
	}
	return c.evaluate(&evalContext{}, value)
}

// evaluate is the invocation wrapper around the underlying check: it
// clears the context's annotation slot for the duration of the call, and
// on failure prepends this constraint's name (plus positional info, if the
// check recorded any) onto the result's path. The annotation therefore
// always reflects the direct cause at this level, never a sibling's.
func (c Constraint) evaluate(ctx *evalContext, value any) *Result {
	saved := ctx.info
	ctx.info = ""
	res := c.check(ctx, value)
	if !res.valid {
		token := c.name
		if ctx.info != "" {
			token += "[" + ctx.info + "]"
		}
		res.prependPath(token)
	}
	ctx.info = saved
	return res
}

// Ensure builds a custom leaf constraint from a plain predicate. The
// returned constraint behaves like the built-in ones: nameable in failure
// paths, subject to Message overrides, and freely composable.
func Ensure(name, message string, check func(value any) bool) Constraint {
	if check == nil {
		panic(usage("Ensure", ErrNilConstraint))
	}
	return newConstraint(name, func(ctx *evalContext, value any) *Result {
		if check(value) {
			return ctx.ok()
		}
		return ctx.fail(message)
	})
}

func newConstraint(name string, check checkFunc) Constraint {
	return Constraint{name: name, check: check}
}

// evalContext carries the dynamic state of a single top-level Evaluate
// call: the active Message override and the per-level annotation slot.
// Threading it explicitly through nested evaluation keeps evaluation
// re-entrant and goroutine-safe.
type evalContext struct {
	override string
	info     string
}

func (ctx *evalContext) ok() *Result {
	return &Result{valid: true}
}

// fail builds an invalid Result. An active Message override replaces the
// supplied message; an empty message falls back to the package default.
func (ctx *evalContext) fail(message string) *Result {
	switch {
	case ctx.override != "":
		message = ctx.override
	case message == "":
		message = defaultMessage
	}
	return &Result{message: message}
}

// annotate records positional detail (array index, hash key, method name)
// for the wrapper of the constraint currently being evaluated.
func (ctx *evalContext) annotate(format string, args ...any) {
	ctx.info = fmt.Sprintf(format, args...)
}

// applyAll projects every sub-constraint onto value in order, returning
// the first failing Result, or nil when all pass. This is the shared core
// of every constraint that recurses into children.
func applyAll(ctx *evalContext, subs []Constraint, value any) *Result {
	for _, sub := range subs {
		if res := sub.evaluate(ctx, value); !res.valid {
			return res
		}
	}
	return nil
}

// requireSubs rejects unusable sub-constraints at construction time.
func requireSubs(generator string, subs []Constraint) {
	for _, sub := range subs {
		if sub.check == nil {
			panic(usage(generator, ErrNilConstraint))
		}
	}
}

func usage(generator string, err error) error {
	return fmt.Errorf("constraint: %s: %w", generator, err)
}

// isUndefined reports whether value is nil or a nil reference kind. Such
// values fail every dereferencing constraint with undefinedMessage.
func isUndefined(value any) bool {
	if value == nil {
		return true
	}
	switch rv := reflect.ValueOf(value); rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan:
		return rv.IsNil()
	}
	return false
}

// scalarString renders a scalar value in its canonical form for lexical
// checks. The second return is false for non-scalar kinds.
func scalarString(value any) (string, bool) {
	switch reflect.ValueOf(value).Kind() {
	case reflect.String,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64,
		reflect.Bool:
		return fmt.Sprint(value), true
	}
	return "", false
}

// parseBounds normalizes optional (min, max) arguments shared by
// HasLength and HasArraySize. Min defaults to 1; max is open when absent.
func parseBounds(generator string, bounds []int) (min, max int, hasMax bool) {
	min = 1
	switch len(bounds) {
	case 0:
	case 1:
		min = bounds[0]
	case 2:
		min, max, hasMax = bounds[0], bounds[1], true
		if max < min {
			panic(usage(generator, ErrInvalidBounds))
		}
	default:
		panic(usage(generator, ErrInvalidBounds))
	}
	if min < 0 {
		panic(usage(generator, ErrInvalidBounds))
	}
	return min, max, hasMax
}
