// Package constraint is a declarative, composable validation engine for
// arbitrary Go values. A constraint tree is built from small generator
// functions; evaluating the root against a value yields a Result carrying
// a validity flag, a failure message, and a path naming exactly which
// nested check failed first and where.
//
// Leaf predicates (IsInt, Matches, IsDefined, ...) and combinators (And,
// Or, XOr, Not) share the same shape, so any constraint composes with any
// other. Structural constraints (IsArrayRef, IsHashRef, OnHashKeys, ...)
// recurse into container elements and annotate failures with the index or
// key at fault.
//
// # Architecture
//
// Every generator returns a stateless Constraint value that closes over
// its configuration; evaluation is pure, synchronous, and depth-first
// with short-circuiting at each level. Per-call state (the Message
// override and the positional annotation slot) lives in an evaluation
// context allocated per Evaluate call, so concurrent evaluations of a
// shared tree are safe.
//
// # Usage
//
//	profile := constraint.And(
//	    constraint.IsHashRef(),
//	    constraint.HasAllKeys("id", "tags"),
//	    constraint.OnHashKeys(
//	        constraint.On("id", constraint.IsInt()),
//	        constraint.On("tags", constraint.IsArrayRef(constraint.HasLength(1, 32))),
//	    ),
//	)
//
//	res := profile.Evaluate(map[string]any{"id": "x", "tags": []any{"go"}})
//	if !res.IsValid() {
//	    fmt.Println(res.Message()) // "Not an integer"
//	    fmt.Println(res.Path())    // "And.OnHashKeys[id].IsInt"
//	}
//
// # Error Handling
//
// Validation failures are never errors: they are reported entirely
// through Result, and no input value makes evaluation panic. Misusing a
// generator at construction time (Matches with no pattern, Not with a
// zero Constraint) panics with an error wrapping one of the package's
// sentinel errors, in the spirit of regexp.MustCompile.
//
// # Registry
//
// The generator catalog is also exposed by name through Names, Generator,
// and Bind, which copies selected factories into a caller-declared struct
// of func fields for local, bare-name construction.
package constraint
