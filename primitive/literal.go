package primitive

import (
	"fmt"
	"math"
	"reflect"
	"strconv"
	"strings"
	"time"
)

// Literal renders v, a value previously produced by Convert for t, as Go
// source. Scalar literals are untyped constants so they assign to named types
// of the same kind; durations render as their count of nanoseconds. Lists
// render as composite literals of t.
func Literal(v any, t Type) (string, error) {
	return LiteralAs(v, t, t.String())
}

// LiteralAs is Literal with lists rendered as composite literals of the Go
// type typeExpr, such as a slice of a named scalar type.
func LiteralAs(v any, t Type, typeExpr string) (string, error) {
	if v == nil {
		return "", fmt.Errorf("nil value for %s", t)
	}

	if !t.List {
		return scalarLiteral(v, t.Kind)
	}

	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Slice {
		return "", fmt.Errorf("list literal for %s got %T", t, v)
	}

	elems := make([]string, 0, rv.Len())
	for i := range rv.Len() {
		lit, err := scalarLiteral(rv.Index(i).Interface(), t.Kind)
		if err != nil {
			return "", err
		}

		elems = append(elems, lit)
	}

	return typeExpr + "{" + strings.Join(elems, ", ") + "}", nil
}

func scalarLiteral(v any, kind KindEnum) (string, error) {
	rv := reflect.ValueOf(v)

	switch {
	case kind == KindDuration:
		d, ok := v.(time.Duration)
		if !ok {
			return "", fmt.Errorf("duration literal got %T", v)
		}

		return strconv.FormatInt(int64(d), 10), nil

	case kind.IsSigned() && rv.CanInt():
		return strconv.FormatInt(rv.Int(), 10), nil

	case kind.IsUnsigned() && rv.CanUint():
		return strconv.FormatUint(rv.Uint(), 10), nil

	case kind.IsFloat() && rv.CanFloat():
		f := rv.Float()
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return "", fmt.Errorf("%v has no constant literal", f)
		}

		s := strconv.FormatFloat(f, 'g', -1, kind.Bits())
		if !strings.ContainsAny(s, ".eE") {
			s += ".0"
		}

		return s, nil

	case kind == KindBool && rv.Kind() == reflect.Bool:
		return strconv.FormatBool(rv.Bool()), nil

	case kind == KindString && rv.Kind() == reflect.String:
		return strconv.Quote(rv.String()), nil
	}

	return "", fmt.Errorf("cannot render %T as %s literal", v, kind)
}
