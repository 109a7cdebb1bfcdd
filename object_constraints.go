package constraint

import "reflect"

// IsObject is valid when the value is a struct or a non-nil pointer to a
// struct, the closest Go analog of an object instance.
func IsObject() Constraint {
	return newConstraint("IsObject", func(ctx *evalContext, value any) *Result {
		if isUndefined(value) {
			return ctx.fail(undefinedMessage)
		}
		rv := reflect.ValueOf(value)
		if rv.Kind() == reflect.Pointer {
			rv = rv.Elem()
		}
		if rv.Kind() != reflect.Struct {
			return ctx.fail("Not an object")
		}
		return ctx.ok()
	})
}

// IsClass is valid when the value is a reflect.Type. Go resolves types at
// compile time, so holding a reflect.Type is the runtime proof that a
// type exists.
func IsClass() Constraint {
	return newConstraint("IsClass", func(ctx *evalContext, value any) *Result {
		if isUndefined(value) {
			return ctx.fail(undefinedMessage)
		}
		if _, ok := value.(reflect.Type); !ok {
			return ctx.fail("Not a type")
		}
		return ctx.ok()
	})
}

// IsA is valid when the value's type is identical or assignable to one of
// the given types, or implements one of the given interface types. A
// reflect.Type input is checked directly, so type values can be validated
// alongside instances.
func IsA(types ...reflect.Type) Constraint {
	if len(types) == 0 {
		panic(usage("IsA", ErrNoArguments))
	}
	for _, t := range types {
		if t == nil {
			panic(usage("IsA", ErrNilType))
		}
	}
	return newConstraint("IsA", func(ctx *evalContext, value any) *Result {
		if isUndefined(value) {
			return ctx.fail(undefinedMessage)
		}
		target := reflect.TypeOf(value)
		if rt, ok := value.(reflect.Type); ok {
			target = rt
		}
		for _, t := range types {
			if target == t || target.AssignableTo(t) {
				return ctx.ok()
			}
			if t.Kind() == reflect.Interface && target.Implements(t) {
				return ctx.ok()
			}
		}
		return ctx.fail("Not an instance of any accepted type")
	})
}

// HasMethods is valid when the value (an instance or a reflect.Type)
// exposes every named method. The first missing method, in declared
// order, annotates the path.
func HasMethods(names ...string) Constraint {
	if len(names) == 0 {
		panic(usage("HasMethods", ErrNoArguments))
	}
	return newConstraint("HasMethods", func(ctx *evalContext, value any) *Result {
		if isUndefined(value) {
			return ctx.fail(undefinedMessage)
		}
		target := reflect.TypeOf(value)
		if rt, ok := value.(reflect.Type); ok {
			target = rt
		}
		for _, name := range names {
			if _, found := target.MethodByName(name); !found {
				ctx.annotate("%s", name)
				return ctx.fail("Missing method")
			}
		}
		return ctx.ok()
	})
}
