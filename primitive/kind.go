package primitive

import (
	"reflect"
	"strconv"
	"time"
)

//go:generate go tool stringer -type=KindEnum -output=kind_string.go

type KindEnum int

const (
	_ KindEnum = iota // skip zero value, use it as a default (invalid) value for KindEnum

	KindInt
	KindInt8
	KindInt16
	KindInt32
	KindInt64
	KindUint
	KindUint8
	KindUint16
	KindUint32
	KindUint64
	KindFloat32
	KindFloat64
	KindBool
	KindString
	KindDuration

	// KindTotal is a constant that represents the total number of kinds defined
	KindTotal = int(iota)
)

// IsValid reports whether k is one of the defined kinds.
func (k KindEnum) IsValid() bool {
	return k > 0 && int(k) < KindTotal
}

// IsSigned reports signed integer kinds. time.Duration is not one of them:
// it converts from duration strings.
func (k KindEnum) IsSigned() bool {
	switch k {
	case KindInt, KindInt8, KindInt16, KindInt32, KindInt64:
		return true
	}

	return false
}

func (k KindEnum) IsUnsigned() bool {
	switch k {
	case KindUint, KindUint8, KindUint16, KindUint32, KindUint64:
		return true
	}

	return false
}

func (k KindEnum) IsFloat() bool {
	return k == KindFloat32 || k == KindFloat64
}

// Bits returns the size of numeric kinds. It panics for other kinds.
func (k KindEnum) Bits() int {
	switch k {
	case KindInt, KindUint:
		return strconv.IntSize
	case KindInt8, KindUint8:
		return 8
	case KindInt16, KindUint16:
		return 16
	case KindInt32, KindUint32, KindFloat32:
		return 32
	case KindInt64, KindUint64, KindFloat64:
		return 64
	}

	panic("only numeric kinds have a bit size, requested for: " + k.String())
}

// GoName returns the canonical Go type expression for values of the kind.
func (k KindEnum) GoName() string {
	t, ok := canonical[k]
	if !ok {
		panic("no Go type for kind: " + k.String())
	}

	return t.String()
}

var canonical = map[KindEnum]reflect.Type{
	KindInt:      reflect.TypeOf(int(0)),
	KindInt8:     reflect.TypeOf(int8(0)),
	KindInt16:    reflect.TypeOf(int16(0)),
	KindInt32:    reflect.TypeOf(int32(0)),
	KindInt64:    reflect.TypeOf(int64(0)),
	KindUint:     reflect.TypeOf(uint(0)),
	KindUint8:    reflect.TypeOf(uint8(0)),
	KindUint16:   reflect.TypeOf(uint16(0)),
	KindUint32:   reflect.TypeOf(uint32(0)),
	KindUint64:   reflect.TypeOf(uint64(0)),
	KindFloat32:  reflect.TypeOf(float32(0)),
	KindFloat64:  reflect.TypeOf(float64(0)),
	KindBool:     reflect.TypeOf(false),
	KindString:   reflect.TypeOf(""),
	KindDuration: reflect.TypeOf(time.Duration(0)),
}

// ReflectType returns the canonical reflect.Type of values produced for the kind.
func (k KindEnum) ReflectType() reflect.Type {
	return canonical[k]
}

// FromReflectType classifies rtype. Named types whose underlying kind is a
// supported scalar (e.g. `type Level string`) classify by their underlying
// kind; time.Duration keeps its own kind.
func FromReflectType(rtype reflect.Type) KindEnum {
	if rtype == nil {
		return 0
	}

	// check if true primitive type
	for kind, t := range canonical {
		if t == rtype {
			return kind
		}
	}

	// check if it's a named type over a primitive
	switch rtype.Kind() {
	default:
		return 0
	case reflect.Int:
		return KindInt
	case reflect.Int8:
		return KindInt8
	case reflect.Int16:
		return KindInt16
	case reflect.Int32:
		return KindInt32
	case reflect.Int64:
		return KindInt64
	case reflect.Uint:
		return KindUint
	case reflect.Uint8:
		return KindUint8
	case reflect.Uint16:
		return KindUint16
	case reflect.Uint32:
		return KindUint32
	case reflect.Uint64:
		return KindUint64
	case reflect.Float32:
		return KindFloat32
	case reflect.Float64:
		return KindFloat64
	case reflect.Bool:
		return KindBool
	case reflect.String:
		return KindString
	}
}

// FromBasicName classifies a predeclared Go type name, as reported by go/types.
func FromBasicName(name string) KindEnum {
	for kind := KindEnum(1); int(kind) < KindTotal; kind++ {
		if kind != KindDuration && kind.GoName() == name {
			return kind
		}
	}

	switch name {
	case "byte":
		return KindUint8
	case "rune":
		return KindInt32
	}

	return 0
}
