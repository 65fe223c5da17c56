package primitive

import "reflect"

// Type is the conversion target of a leaf: a scalar kind, optionally as a
// comma separated list of that kind.
type Type struct {
	Kind KindEnum
	List bool
}

// Of returns the scalar Type of kind.
func Of(kind KindEnum) Type {
	return Type{Kind: kind}
}

// ListOf returns the list Type of kind.
func ListOf(kind KindEnum) Type {
	return Type{Kind: kind, List: true}
}

// String returns the Go type expression of converted values (e.g. "int", "[]string").
func (t Type) String() string {
	if t.List {
		return "[]" + t.Kind.GoName()
	}

	return t.Kind.GoName()
}

// ReflectType returns the reflect.Type of converted values.
func (t Type) ReflectType() reflect.Type {
	if t.List {
		return reflect.SliceOf(t.Kind.ReflectType())
	}

	return t.Kind.ReflectType()
}
