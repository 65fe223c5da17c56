package primitive_test

import (
	"fmt"
	"reflect"
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"confbind/primitive"
)

func Example() {
	type IntEnum int
	type StringEnum string
	type Empty struct{}

	fmt.Println(primitive.FromReflectType(reflect.TypeOf(int(0))))
	fmt.Println(primitive.FromReflectType(reflect.TypeOf("")))
	fmt.Println(primitive.FromReflectType(reflect.TypeOf(IntEnum(0))))
	fmt.Println(primitive.FromReflectType(reflect.TypeOf(StringEnum(""))))
	fmt.Println(primitive.FromReflectType(reflect.TypeOf(time.Duration(0))))
	fmt.Println(primitive.FromReflectType(reflect.TypeOf(time.Time{})))
	fmt.Println(primitive.FromReflectType(reflect.TypeOf(Empty{})))
	// Output:
	// KindInt
	// KindString
	// KindInt
	// KindString
	// KindDuration
	// KindEnum(0)
	// KindEnum(0)
}

func ExampleFromBasicName() {
	fmt.Println(primitive.FromBasicName("uint16"))
	fmt.Println(primitive.FromBasicName("byte"))
	fmt.Println(primitive.FromBasicName("complex64"))
	// Output:
	// KindUint16
	// KindUint8
	// KindEnum(0)
}

func TestKindEnum(t *testing.T) {
	tests := []struct {
		kind     primitive.KindEnum
		goName   string
		signed   bool
		unsigned bool
		float    bool
		bits     int
	}{
		{kind: primitive.KindInt, goName: "int", signed: true, bits: strconv.IntSize},
		{kind: primitive.KindInt16, goName: "int16", signed: true, bits: 16},
		{kind: primitive.KindUint8, goName: "uint8", unsigned: true, bits: 8},
		{kind: primitive.KindUint, goName: "uint", unsigned: true, bits: strconv.IntSize},
		{kind: primitive.KindFloat32, goName: "float32", float: true, bits: 32},
		{kind: primitive.KindFloat64, goName: "float64", float: true, bits: 64},
		{kind: primitive.KindBool, goName: "bool"},
		{kind: primitive.KindString, goName: "string"},
		{kind: primitive.KindDuration, goName: "time.Duration"},
	}

	for _, tt := range tests {
		t.Run(tt.kind.String(), func(t *testing.T) {
			assert.True(t, tt.kind.IsValid())
			assert.Equal(t, tt.goName, tt.kind.GoName())
			assert.Equal(t, tt.signed, tt.kind.IsSigned())
			assert.Equal(t, tt.unsigned, tt.kind.IsUnsigned())
			assert.Equal(t, tt.float, tt.kind.IsFloat())
			assert.Equal(t, tt.goName, tt.kind.ReflectType().String())

			if tt.bits == 0 {
				assert.Panics(t, func() { tt.kind.Bits() })
				return
			}

			assert.Equal(t, tt.bits, tt.kind.Bits())
		})
	}
}

func TestKindEnum_Invalid(t *testing.T) {
	var zero primitive.KindEnum

	assert.False(t, zero.IsValid())
	assert.False(t, primitive.KindEnum(primitive.KindTotal).IsValid())
	assert.Nil(t, zero.ReflectType())
	assert.Panics(t, func() { zero.GoName() })
}
