package constraint

import (
	"fmt"
	"reflect"
	"slices"
	"sort"
)

// IsRefType is valid when the value's structural kind is one of the given
// reflect kinds.
func IsRefType(kinds ...reflect.Kind) Constraint {
	if len(kinds) == 0 {
		panic(usage("IsRefType", ErrNoArguments))
	}
	return newConstraint("IsRefType", func(ctx *evalContext, value any) *Result {
		if isUndefined(value) {
			return ctx.fail(undefinedMessage)
		}
		if !slices.Contains(kinds, reflect.ValueOf(value).Kind()) {
			return ctx.fail("Wrong reference kind")
		}
		return ctx.ok()
	})
}

// IsScalarRef is valid when the value is a non-nil pointer. Optional
// sub-constraints are applied to the pointed-to value.
func IsScalarRef(subs ...Constraint) Constraint {
	requireSubs("IsScalarRef", subs)
	return newConstraint("IsScalarRef", func(ctx *evalContext, value any) *Result {
		if isUndefined(value) {
			return ctx.fail(undefinedMessage)
		}
		rv := reflect.ValueOf(value)
		if rv.Kind() != reflect.Pointer {
			return ctx.fail("Not a pointer")
		}
		if res := applyAll(ctx, subs, rv.Elem().Interface()); res != nil {
			return res
		}
		return ctx.ok()
	})
}

// IsArrayRef is valid when the value is a slice or array whose every
// element satisfies every given sub-constraint. On failure the path is
// annotated with the failing index.
func IsArrayRef(subs ...Constraint) Constraint {
	requireSubs("IsArrayRef", subs)
	return newConstraint("IsArrayRef", func(ctx *evalContext, value any) *Result {
		if isUndefined(value) {
			return ctx.fail(undefinedMessage)
		}
		rv := reflect.ValueOf(value)
		if rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array {
			return ctx.fail("Not a slice or array")
		}
		for i := 0; i < rv.Len(); i++ {
			if res := applyAll(ctx, subs, rv.Index(i).Interface()); res != nil {
				ctx.annotate("%d", i)
				return res
			}
		}
		return ctx.ok()
	})
}

// HasArraySize bounds the length of a slice or array. With no arguments
// the minimum is 1; a second argument sets an inclusive maximum. The
// sequence check is made independently of IsArrayRef.
func HasArraySize(bounds ...int) Constraint {
	min, max, hasMax := parseBounds("HasArraySize", bounds)
	return newConstraint("HasArraySize", func(ctx *evalContext, value any) *Result {
		if isUndefined(value) {
			return ctx.fail(undefinedMessage)
		}
		rv := reflect.ValueOf(value)
		if rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array {
			return ctx.fail("Not a slice or array")
		}
		if rv.Len() < min || (hasMax && rv.Len() > max) {
			return ctx.fail("Array size out of range")
		}
		return ctx.ok()
	})
}

// hashConfig collects the key and value sub-constraint sets of IsHashRef.
type hashConfig struct {
	keys   []Constraint
	values []Constraint
}

// HashOption configures IsHashRef.
type HashOption func(*hashConfig)

// Keys makes IsHashRef apply the given sub-constraints to every map key.
func Keys(subs ...Constraint) HashOption {
	if len(subs) == 0 {
		panic(usage("Keys", ErrNoArguments))
	}
	requireSubs("Keys", subs)
	return func(cfg *hashConfig) {
		cfg.keys = append(cfg.keys, subs...)
	}
}

// Values makes IsHashRef apply the given sub-constraints to every map
// value.
func Values(subs ...Constraint) HashOption {
	if len(subs) == 0 {
		panic(usage("Values", ErrNoArguments))
	}
	requireSubs("Values", subs)
	return func(cfg *hashConfig) {
		cfg.values = append(cfg.values, subs...)
	}
}

// IsHashRef is valid when the value is a map. Value sub-constraints are
// projected before key sub-constraints; the first failing entry annotates
// the path with "val <key>" or "key <key>". Entries are visited in sorted
// key order so the first failure is deterministic.
func IsHashRef(opts ...HashOption) Constraint {
	var cfg hashConfig
	for _, opt := range opts {
		if opt == nil {
			panic(usage("IsHashRef", ErrNoArguments))
		}
		opt(&cfg)
	}
	return newConstraint("IsHashRef", func(ctx *evalContext, value any) *Result {
		if isUndefined(value) {
			return ctx.fail(undefinedMessage)
		}
		rv := reflect.ValueOf(value)
		if rv.Kind() != reflect.Map {
			return ctx.fail("Not a map")
		}
		keys := sortedMapKeys(rv)
		if len(cfg.values) > 0 {
			for _, key := range keys {
				if res := applyAll(ctx, cfg.values, rv.MapIndex(key).Interface()); res != nil {
					ctx.annotate("val %v", key.Interface())
					return res
				}
			}
		}
		if len(cfg.keys) > 0 {
			for _, key := range keys {
				if res := applyAll(ctx, cfg.keys, key.Interface()); res != nil {
					ctx.annotate("key %v", key.Interface())
					return res
				}
			}
		}
		return ctx.ok()
	})
}

// HasAllKeys is valid when the map contains every given key. The first
// missing key, in declared order, annotates the path.
func HasAllKeys(keys ...string) Constraint {
	if len(keys) == 0 {
		panic(usage("HasAllKeys", ErrNoArguments))
	}
	return newConstraint("HasAllKeys", func(ctx *evalContext, value any) *Result {
		if isUndefined(value) {
			return ctx.fail(undefinedMessage)
		}
		rv := reflect.ValueOf(value)
		if rv.Kind() != reflect.Map {
			return ctx.fail("Not a map")
		}
		for _, key := range keys {
			if _, found := mapLookup(rv, key); !found {
				ctx.annotate("%s", key)
				return ctx.fail("Missing key")
			}
		}
		return ctx.ok()
	})
}

// KeyConstraint pairs a map key with the sub-constraints its value must
// satisfy. Build one with On.
type KeyConstraint struct {
	key  string
	subs []Constraint
}

// On declares the sub-constraints for one key of OnHashKeys.
func On(key string, subs ...Constraint) KeyConstraint {
	if len(subs) == 0 {
		panic(usage("On", ErrNoArguments))
	}
	requireSubs("On", subs)
	return KeyConstraint{key: key, subs: subs}
}

// OnHashKeys applies per-key sub-constraints to the values of a map,
// visiting pairs in declared order. Configured keys that are absent from
// the map are skipped; requiring presence is HasAllKeys' job. The failing
// key annotates the path.
func OnHashKeys(pairs ...KeyConstraint) Constraint {
	for _, pair := range pairs {
		if len(pair.subs) == 0 {
			panic(usage("OnHashKeys", ErrNilConstraint))
		}
	}
	return newConstraint("OnHashKeys", func(ctx *evalContext, value any) *Result {
		if isUndefined(value) {
			return ctx.fail(undefinedMessage)
		}
		rv := reflect.ValueOf(value)
		if rv.Kind() != reflect.Map {
			return ctx.fail("Not a map")
		}
		for _, pair := range pairs {
			entry, found := mapLookup(rv, pair.key)
			if !found {
				continue
			}
			if res := applyAll(ctx, pair.subs, entry); res != nil {
				ctx.annotate("%s", pair.key)
				return res
			}
		}
		return ctx.ok()
	})
}

// IsCodeRef is valid when the value is a non-nil func.
func IsCodeRef() Constraint {
	return newConstraint("IsCodeRef", func(ctx *evalContext, value any) *Result {
		if isUndefined(value) {
			return ctx.fail(undefinedMessage)
		}
		if reflect.ValueOf(value).Kind() != reflect.Func {
			return ctx.fail("Not a function")
		}
		return ctx.ok()
	})
}

// sortedMapKeys orders map keys by their rendered form so projections
// visit entries deterministically.
func sortedMapKeys(rv reflect.Value) []reflect.Value {
	keys := rv.MapKeys()
	sort.Slice(keys, func(i, j int) bool {
		return fmt.Sprint(keys[i].Interface()) < fmt.Sprint(keys[j].Interface())
	})
	return keys
}

// mapLookup finds a map entry by the rendered form of its key, so string
// key configuration works against maps of any key type.
func mapLookup(rv reflect.Value, key string) (any, bool) {
	if rv.Type().Key().Kind() == reflect.String {
		entry := rv.MapIndex(reflect.ValueOf(key).Convert(rv.Type().Key()))
		if !entry.IsValid() {
			return nil, false
		}
		return entry.Interface(), true
	}
	for _, candidate := range rv.MapKeys() {
		if fmt.Sprint(candidate.Interface()) == key {
			return rv.MapIndex(candidate).Interface(), true
		}
	}
	return nil, false
}
