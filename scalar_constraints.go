package constraint

import (
	"reflect"
	"regexp"
	"strconv"
)

var integerRegex = regexp.MustCompile(`^-?\d+$`)

// IsDefined is valid for any value that is not nil (including nil
// pointers, maps, slices, funcs, and channels).
func IsDefined() Constraint {
	return newConstraint("IsDefined", func(ctx *evalContext, value any) *Result {
		if isUndefined(value) {
			return ctx.fail(undefinedMessage)
		}
		return ctx.ok()
	})
}

// IsTrue is valid for values that are neither nil nor their type's zero
// value. This is the closest Go analog of boolean-context truthiness.
func IsTrue() Constraint {
	return newConstraint("IsTrue", func(ctx *evalContext, value any) *Result {
		if isUndefined(value) || reflect.ValueOf(value).IsZero() {
			return ctx.fail("Value evaluates to false")
		}
		return ctx.ok()
	})
}

// IsNumber is valid for numeric values and for scalars whose canonical
// rendering parses as a number.
func IsNumber() Constraint {
	return newConstraint("IsNumber", func(ctx *evalContext, value any) *Result {
		if isUndefined(value) {
			return ctx.fail(undefinedMessage)
		}
		s, ok := scalarString(value)
		if !ok {
			return ctx.fail("Not a number")
		}
		if _, err := strconv.ParseFloat(s, 64); err != nil {
			return ctx.fail("Not a number")
		}
		return ctx.ok()
	})
}

// IsInt is valid for scalars whose canonical rendering is an optionally
// signed run of digits.
func IsInt() Constraint {
	return newConstraint("IsInt", func(ctx *evalContext, value any) *Result {
		if isUndefined(value) {
			return ctx.fail(undefinedMessage)
		}
		s, ok := scalarString(value)
		if !ok || !integerRegex.MatchString(s) {
			return ctx.fail("Not an integer")
		}
		return ctx.ok()
	})
}

// Matches is valid when the value's canonical rendering matches at least
// one of the given patterns. It panics when called without patterns or
// with a nil pattern.
func Matches(patterns ...*regexp.Regexp) Constraint {
	if len(patterns) == 0 {
		panic(usage("Matches", ErrNoArguments))
	}
	for _, p := range patterns {
		if p == nil {
			panic(usage("Matches", ErrNilPattern))
		}
	}
	return newConstraint("Matches", func(ctx *evalContext, value any) *Result {
		if isUndefined(value) {
			return ctx.fail(undefinedMessage)
		}
		s, ok := scalarString(value)
		if ok {
			for _, p := range patterns {
				if p.MatchString(s) {
					return ctx.ok()
				}
			}
		}
		return ctx.fail("Does not match any pattern")
	})
}

// HasLength bounds the length of the value's canonical rendering. With no
// arguments the minimum is 1; a second argument sets an inclusive maximum.
func HasLength(bounds ...int) Constraint {
	min, max, hasMax := parseBounds("HasLength", bounds)
	return newConstraint("HasLength", func(ctx *evalContext, value any) *Result {
		if isUndefined(value) {
			return ctx.fail(undefinedMessage)
		}
		s, ok := scalarString(value)
		if !ok || len(s) < min || (hasMax && len(s) > max) {
			return ctx.fail("Length out of range")
		}
		return ctx.ok()
	})
}

// IsOneOf is valid when the value deeply equals one of the candidates. A
// nil candidate accepts nil input, overriding the usual undefined-value
// failure.
func IsOneOf(candidates ...any) Constraint {
	if len(candidates) == 0 {
		panic(usage("IsOneOf", ErrNoArguments))
	}
	return newConstraint("IsOneOf", func(ctx *evalContext, value any) *Result {
		if isUndefined(value) {
			for _, cand := range candidates {
				if cand == nil {
					return ctx.ok()
				}
			}
			return ctx.fail(undefinedMessage)
		}
		for _, cand := range candidates {
			if cand != nil && reflect.DeepEqual(value, cand) {
				return ctx.ok()
			}
		}
		return ctx.fail("Not an accepted value")
	})
}

// IsRegex is valid when the value is itself a compiled *regexp.Regexp,
// not a plain string.
func IsRegex() Constraint {
	return newConstraint("IsRegex", func(ctx *evalContext, value any) *Result {
		if isUndefined(value) {
			return ctx.fail(undefinedMessage)
		}
		if _, ok := value.(*regexp.Regexp); !ok {
			return ctx.fail("Not a compiled pattern")
		}
		return ctx.ok()
	})
}
