package constraint_test

import (
	"reflect"
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/constraint"
)

func TestIsRefType(t *testing.T) {
	t.Parallel()

	t.Run("single kind", func(t *testing.T) {
		c := constraint.IsRefType(reflect.Slice)

		assert.True(t, c.Evaluate([]int{1}).IsValid())
		assert.False(t, c.Evaluate(map[string]int{}).IsValid())
	})

	t.Run("any of several kinds", func(t *testing.T) {
		c := constraint.IsRefType(reflect.Map, reflect.Slice)

		assert.True(t, c.Evaluate([]string{"a"}).IsValid())
		assert.True(t, c.Evaluate(map[string]int{"a": 1}).IsValid())
		assert.False(t, c.Evaluate("scalar").IsValid())
	})

	t.Run("failure message", func(t *testing.T) {
		res := constraint.IsRefType(reflect.Func).Evaluate(42)

		require.False(t, res.IsValid())
		assert.Equal(t, "Wrong reference kind", res.Message())
	})

	t.Run("nil", func(t *testing.T) {
		assert.Equal(t, "Undefined Value", constraint.IsRefType(reflect.Slice).Evaluate(nil).Message())
	})

	t.Run("no kinds panics", func(t *testing.T) {
		assert.PanicsWithError(t, "constraint: IsRefType: no arguments given", func() {
			constraint.IsRefType()
		})
	})
}

func TestIsScalarRef(t *testing.T) {
	t.Parallel()

	t.Run("bare pointer check", func(t *testing.T) {
		n := 5
		c := constraint.IsScalarRef()

		assert.True(t, c.Evaluate(&n).IsValid())
		assert.False(t, c.Evaluate(5).IsValid())
	})

	t.Run("sub-constraint applies to the pointed-to value", func(t *testing.T) {
		n := 5
		s := "five"

		c := constraint.IsScalarRef(constraint.IsInt())

		assert.True(t, c.Evaluate(&n).IsValid())

		res := c.Evaluate(&s)
		require.False(t, res.IsValid())
		assert.Equal(t, "IsScalarRef.IsInt", res.Path())
		assert.Equal(t, "Not an integer", res.Message())
	})

	t.Run("nil pointer counts as undefined", func(t *testing.T) {
		var p *int
		assert.Equal(t, "Undefined Value", constraint.IsScalarRef().Evaluate(p).Message())
	})
}

func TestIsArrayRef(t *testing.T) {
	t.Parallel()

	t.Run("bare sequence check", func(t *testing.T) {
		c := constraint.IsArrayRef()

		assert.True(t, c.Evaluate([]int{}).IsValid())
		assert.True(t, c.Evaluate([2]string{"a", "b"}).IsValid())
		assert.False(t, c.Evaluate("not a slice").IsValid())
	})

	t.Run("every element must satisfy every sub-constraint", func(t *testing.T) {
		c := constraint.IsArrayRef(constraint.IsInt())

		assert.True(t, c.Evaluate([]any{1, 2, 3}).IsValid())

		res := c.Evaluate([]any{1, 2, "x"})
		require.False(t, res.IsValid())
		assert.Equal(t, "IsArrayRef[2].IsInt", res.Path())
	})

	t.Run("first failing element wins", func(t *testing.T) {
		c := constraint.IsArrayRef(constraint.IsInt())

		res := c.Evaluate([]any{"a", "b"})
		require.False(t, res.IsValid())
		assert.Equal(t, "IsArrayRef[0].IsInt", res.Path())
	})

	t.Run("several sub-constraints per element", func(t *testing.T) {
		c := constraint.IsArrayRef(constraint.IsInt(), constraint.HasLength(2))

		assert.True(t, c.Evaluate([]any{10, 23}).IsValid())

		res := c.Evaluate([]any{10, 7})
		require.False(t, res.IsValid())
		assert.Equal(t, "IsArrayRef[1].HasLength", res.Path())
	})

	t.Run("nil", func(t *testing.T) {
		assert.Equal(t, "Undefined Value", constraint.IsArrayRef().Evaluate(nil).Message())
	})
}

func TestHasArraySize(t *testing.T) {
	t.Parallel()

	t.Run("within bounds", func(t *testing.T) {
		c := constraint.HasArraySize(2, 3)

		assert.True(t, c.Evaluate([]int{1, 2}).IsValid())
		assert.True(t, c.Evaluate([]int{1, 2, 3}).IsValid())
		assert.False(t, c.Evaluate([]int{1}).IsValid())
		assert.False(t, c.Evaluate([]int{1, 2, 3, 4}).IsValid())
	})

	t.Run("default minimum of one", func(t *testing.T) {
		c := constraint.HasArraySize()

		assert.True(t, c.Evaluate([]int{1}).IsValid())
		assert.False(t, c.Evaluate([]int{}).IsValid())
	})

	t.Run("re-checks that the value is a sequence", func(t *testing.T) {
		res := constraint.HasArraySize(1).Evaluate("abc")

		require.False(t, res.IsValid())
		assert.Equal(t, "Not a slice or array", res.Message())
	})

	t.Run("nil", func(t *testing.T) {
		assert.Equal(t, "Undefined Value", constraint.HasArraySize(2, 3).Evaluate(nil).Message())
	})
}

func TestIsHashRef(t *testing.T) {
	t.Parallel()

	t.Run("bare map check", func(t *testing.T) {
		c := constraint.IsHashRef()

		assert.True(t, c.Evaluate(map[string]int{"a": 1}).IsValid())
		assert.False(t, c.Evaluate([]int{1}).IsValid())
		assert.Equal(t, "Not a map", c.Evaluate(42).Message())
	})

	t.Run("value constraints annotate with the failing key", func(t *testing.T) {
		c := constraint.IsHashRef(constraint.Values(constraint.Matches(regexp.MustCompile(`oo`))))

		res := c.Evaluate(map[int]string{42: "zzz"})
		require.False(t, res.IsValid())
		assert.Equal(t, "IsHashRef[val 42].Matches", res.Path())

		assert.True(t, c.Evaluate(map[int]string{42: "foo"}).IsValid())
	})

	t.Run("key constraints annotate with the failing key", func(t *testing.T) {
		c := constraint.IsHashRef(constraint.Keys(constraint.Matches(regexp.MustCompile(`^[a-z]+$`))))

		res := c.Evaluate(map[string]int{"BAD": 1})
		require.False(t, res.IsValid())
		assert.Equal(t, "IsHashRef[key BAD].Matches", res.Path())
	})

	t.Run("values are projected before keys", func(t *testing.T) {
		c := constraint.IsHashRef(
			constraint.Keys(constraint.Matches(regexp.MustCompile(`^[a-z]+$`))),
			constraint.Values(constraint.IsInt()),
		)

		// Both key and value fail; the value annotation must win.
		res := c.Evaluate(map[string]string{"BAD": "x"})
		require.False(t, res.IsValid())
		assert.Equal(t, "IsHashRef[val BAD].IsInt", res.Path())
	})

	t.Run("first failure is deterministic across map iteration", func(t *testing.T) {
		c := constraint.IsHashRef(constraint.Values(constraint.IsInt()))

		// Keys are visited in sorted order, so "a" fails first.
		res := c.Evaluate(map[string]any{"c": "x", "a": "y", "b": "z"})
		require.False(t, res.IsValid())
		assert.Equal(t, "IsHashRef[val a].IsInt", res.Path())
	})

	t.Run("nil", func(t *testing.T) {
		assert.Equal(t, "Undefined Value", constraint.IsHashRef().Evaluate(nil).Message())
	})

	t.Run("empty option set panics", func(t *testing.T) {
		assert.PanicsWithError(t, "constraint: Values: no arguments given", func() {
			constraint.Values()
		})
		assert.PanicsWithError(t, "constraint: Keys: no arguments given", func() {
			constraint.Keys()
		})
	})
}

func TestHasAllKeys(t *testing.T) {
	t.Parallel()

	t.Run("all keys present", func(t *testing.T) {
		c := constraint.HasAllKeys("foo", "bar")

		assert.True(t, c.Evaluate(map[string]int{"foo": 1, "bar": 2, "baz": 3}).IsValid())
	})

	t.Run("first missing key annotates the path", func(t *testing.T) {
		c := constraint.HasAllKeys("foo", "bar")

		res := c.Evaluate(map[string]int{"foo": 1})
		require.False(t, res.IsValid())
		assert.Equal(t, "HasAllKeys[bar]", res.Path())
		assert.Equal(t, "Missing key", res.Message())
	})

	t.Run("non-string key types match by rendering", func(t *testing.T) {
		c := constraint.HasAllKeys("42")

		assert.True(t, c.Evaluate(map[int]string{42: "zzz"}).IsValid())
		assert.False(t, c.Evaluate(map[int]string{7: "zzz"}).IsValid())
	})

	t.Run("non-map input", func(t *testing.T) {
		assert.Equal(t, "Not a map", constraint.HasAllKeys("foo").Evaluate("x").Message())
	})

	t.Run("nil", func(t *testing.T) {
		assert.Equal(t, "Undefined Value", constraint.HasAllKeys("foo").Evaluate(nil).Message())
	})

	t.Run("no keys panics", func(t *testing.T) {
		assert.PanicsWithError(t, "constraint: HasAllKeys: no arguments given", func() {
			constraint.HasAllKeys()
		})
	})
}

func TestOnHashKeys(t *testing.T) {
	t.Parallel()

	t.Run("constraints apply to configured keys only", func(t *testing.T) {
		c := constraint.OnHashKeys(
			constraint.On("count", constraint.IsInt()),
		)

		assert.True(t, c.Evaluate(map[string]any{"count": 3, "other": "ignored"}).IsValid())

		res := c.Evaluate(map[string]any{"count": "x"})
		require.False(t, res.IsValid())
		assert.Equal(t, "OnHashKeys[count].IsInt", res.Path())
	})

	t.Run("absent configured keys are skipped", func(t *testing.T) {
		c := constraint.OnHashKeys(
			constraint.On("count", constraint.IsInt()),
		)

		assert.True(t, c.Evaluate(map[string]any{}).IsValid())
	})

	t.Run("present key with nil value is still checked", func(t *testing.T) {
		c := constraint.OnHashKeys(
			constraint.On("count", constraint.IsDefined()),
		)

		res := c.Evaluate(map[string]any{"count": nil})
		require.False(t, res.IsValid())
		assert.Equal(t, "OnHashKeys[count].IsDefined", res.Path())
		assert.Equal(t, "Undefined Value", res.Message())
	})

	t.Run("pairs are evaluated in declared order", func(t *testing.T) {
		c := constraint.OnHashKeys(
			constraint.On("b", constraint.IsInt()),
			constraint.On("a", constraint.IsInt()),
		)

		res := c.Evaluate(map[string]any{"a": "x", "b": "y"})
		require.False(t, res.IsValid())
		assert.Equal(t, "OnHashKeys[b].IsInt", res.Path())
	})

	t.Run("non-map input", func(t *testing.T) {
		c := constraint.OnHashKeys(constraint.On("k", constraint.IsInt()))
		assert.Equal(t, "Not a map", c.Evaluate(42).Message())
	})

	t.Run("pair without sub-constraints panics", func(t *testing.T) {
		assert.PanicsWithError(t, "constraint: On: no arguments given", func() {
			constraint.On("count")
		})
	})
}

func TestIsCodeRef(t *testing.T) {
	t.Parallel()

	c := constraint.IsCodeRef()

	t.Run("funcs", func(t *testing.T) {
		assert.True(t, c.Evaluate(func() {}).IsValid())
		assert.True(t, c.Evaluate(TestIsCodeRef).IsValid())
	})

	t.Run("non-funcs", func(t *testing.T) {
		res := c.Evaluate("not callable")

		require.False(t, res.IsValid())
		assert.Equal(t, "Not a function", res.Message())
	})

	t.Run("nil func counts as undefined", func(t *testing.T) {
		var f func()
		assert.Equal(t, "Undefined Value", c.Evaluate(f).Message())
	})
}
