package bindrt

import (
	"fmt"
	"reflect"
)

// Coerce converts v, a value produced by primitive.Convert or nil for a blank
// value, to the declared Go type rt. Named scalar types, pointers to scalars
// and slices of named scalars are supported. nil yields the zero value of rt.
func Coerce(v any, rt reflect.Type) (reflect.Value, error) {
	if rt.Kind() == reflect.Pointer {
		if v == nil {
			return reflect.Zero(rt), nil
		}

		inner, err := Coerce(v, rt.Elem())
		if err != nil {
			return reflect.Value{}, err
		}

		ptr := reflect.New(rt.Elem())
		ptr.Elem().Set(inner)

		return ptr, nil
	}

	if v == nil {
		return reflect.Zero(rt), nil
	}

	rv := reflect.ValueOf(v)

	if rt.Kind() == reflect.Slice && rv.Kind() == reflect.Slice {
		out := reflect.MakeSlice(rt, rv.Len(), rv.Len())

		for i := range rv.Len() {
			elem, err := Coerce(rv.Index(i).Interface(), rt.Elem())
			if err != nil {
				return reflect.Value{}, err
			}

			out.Index(i).Set(elem)
		}

		return out, nil
	}

	// same kind only: int to string is convertible but never meant here
	if rv.Kind() != rt.Kind() || !rv.Type().ConvertibleTo(rt) {
		return reflect.Value{}, fmt.Errorf("cannot assign %s to %s", rv.Type(), rt)
	}

	return rv.Convert(rt), nil
}

// Assert returns v, a value produced by Pass.Value or Pass.Default, as its
// canonical type C. nil yields the zero value.
func Assert[C any](v any) (C, error) {
	var zero C
	if v == nil {
		return zero, nil
	}

	c, ok := v.(C)
	if !ok {
		return zero, &SchemaDefectError{Op: "bind", Type: fmt.Sprintf("%T", zero), Err: fmt.Errorf("cannot assign %T to %T", v, zero)}
	}

	return c, nil
}

// AssertPtr is Assert for optional values: nil yields a nil pointer.
func AssertPtr[C any](v any) (*C, error) {
	if v == nil {
		return nil, nil
	}

	c, err := Assert[C](v)
	if err != nil {
		return nil, err
	}

	return &c, nil
}

// Ptr returns a pointer to a copy of v.
func Ptr[T any](v T) *T {
	return &v
}
