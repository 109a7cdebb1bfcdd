package constraint

import "fmt"

// And is valid when every sub-constraint is valid. Evaluation
// short-circuits: the first failing sub-constraint's Result is returned
// untouched, and the wrapper then prepends "And" to its path.
func And(subs ...Constraint) Constraint {
	requireSubs("And", subs)
	return newConstraint("And", func(ctx *evalContext, value any) *Result {
		if res := applyAll(ctx, subs, value); res != nil {
			return res
		}
		return ctx.ok()
	})
}

// Or is valid when at least one sub-constraint is valid. When all fail,
// the last sub-constraint's failing Result is returned. Or with no
// sub-constraints is invalid by convention.
func Or(subs ...Constraint) Constraint {
	requireSubs("Or", subs)
	return newConstraint("Or", func(ctx *evalContext, value any) *Result {
		var last *Result
		for _, sub := range subs {
			res := sub.evaluate(ctx, value)
			if res.valid {
				return res
			}
			last = res
		}
		if last == nil {
			return ctx.fail("")
		}
		return last
	})
}

// XOr is valid when exactly one sub-constraint is valid. All
// sub-constraints are evaluated so the failure message can report how
// many returned true.
func XOr(subs ...Constraint) Constraint {
	requireSubs("XOr", subs)
	return newConstraint("XOr", func(ctx *evalContext, value any) *Result {
		hits := 0
		for _, sub := range subs {
			if sub.evaluate(ctx, value).valid {
				hits++
			}
		}
		if hits == 1 {
			return ctx.ok()
		}
		return ctx.fail(fmt.Sprintf("Got %d true returns", hits))
	})
}

// Not inverts a single sub-constraint. It panics at construction when
// given a zero Constraint.
func Not(sub Constraint) Constraint {
	if sub.check == nil {
		panic(usage("Not", ErrNilConstraint))
	}
	return newConstraint("Not", func(ctx *evalContext, value any) *Result {
		if sub.evaluate(ctx, value).valid {
			return ctx.fail("Constraint returned true")
		}
		return ctx.ok()
	})
}

// Message overrides the failure message for every failure arising inside
// sub's subtree during a call, restoring the previous override on return.
// It wins over generator-specific messages, including "Undefined Value".
func Message(text string, sub Constraint) Constraint {
	if text == "" {
		panic(usage("Message", ErrNoArguments))
	}
	if sub.check == nil {
		panic(usage("Message", ErrNilConstraint))
	}
	return newConstraint("Message", func(ctx *evalContext, value any) *Result {
		saved := ctx.override
		ctx.override = text
		res := sub.evaluate(ctx, value)
		ctx.override = saved
		return res
	})
}
