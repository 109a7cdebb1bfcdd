package constraint

import (
	"fmt"
	"reflect"
	"sort"
)

// generators is the catalog of every constraint factory this package
// exports, keyed by the name that appears in failure paths.
var generators = map[string]any{
	"And":          And,
	"Ensure":       Ensure,
	"HasAllKeys":   HasAllKeys,
	"HasArraySize": HasArraySize,
	"HasLength":    HasLength,
	"HasMethods":   HasMethods,
	"IsA":          IsA,
	"IsArrayRef":   IsArrayRef,
	"IsClass":      IsClass,
	"IsCodeRef":    IsCodeRef,
	"IsDefined":    IsDefined,
	"IsEmail":      IsEmail,
	"IsHashRef":    IsHashRef,
	"IsInt":        IsInt,
	"IsNumber":     IsNumber,
	"IsObject":     IsObject,
	"IsOneOf":      IsOneOf,
	"IsRefType":    IsRefType,
	"IsRegex":      IsRegex,
	"IsScalarRef":  IsScalarRef,
	"IsTrue":       IsTrue,
	"IsUUID":       IsUUID,
	"Matches":      Matches,
	"Message":      Message,
	"Not":          Not,
	"OnHashKeys":   OnHashKeys,
	"Or":           Or,
	"XOr":          XOr,
}

// Names returns the sorted names of every registered generator.
func Names() []string {
	names := make([]string, 0, len(generators))
	for name := range generators {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Generator returns the typed factory function registered under name.
func Generator(name string) (any, bool) {
	gen, ok := generators[name]
	return gen, ok
}

// Bind copies registered generators into same-named func fields of the
// struct that target points to, so application code can call constraints
// through its own local set of factories. With no names, every exported
// func field of the struct is bound. A bound field constructs a
// Constraint exactly as calling the package-level generator would.
func Bind(target any, names ...string) error {
	rv := reflect.ValueOf(target)
	if rv.Kind() != reflect.Pointer || rv.IsNil() || rv.Elem().Kind() != reflect.Struct {
		return fmt.Errorf("constraint: Bind: %w", ErrInvalidBindTarget)
	}
	sv := rv.Elem()
	if len(names) == 0 {
		st := sv.Type()
		for i := 0; i < st.NumField(); i++ {
			field := st.Field(i)
			if !field.IsExported() || field.Type.Kind() != reflect.Func {
				continue
			}
			if err := bindField(sv, field.Name); err != nil {
				return err
			}
		}
		return nil
	}
	for _, name := range names {
		if err := bindField(sv, name); err != nil {
			return err
		}
	}
	return nil
}

func bindField(sv reflect.Value, name string) error {
	gen, ok := generators[name]
	if !ok {
		return fmt.Errorf("constraint: Bind: %s: %w", name, ErrUnknownGenerator)
	}
	field := sv.FieldByName(name)
	if !field.IsValid() || !field.CanSet() || field.Type() != reflect.TypeOf(gen) {
		return fmt.Errorf("constraint: Bind: %s: %w", name, ErrFieldMismatch)
	}
	field.Set(reflect.ValueOf(gen))
	return nil
}
