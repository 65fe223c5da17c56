package primitive

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cast"
)

// ListSeparator separates the elements of a list value.
const ListSeparator = ","

// Convert converts the raw textual value into a value of type t. Scalars are
// trimmed before conversion; list elements are split on ListSeparator and
// blank elements are dropped.
func Convert(raw string, t Type) (any, error) {
	if !t.List {
		return convertScalar(strings.TrimSpace(raw), t.Kind)
	}

	parts := strings.Split(raw, ListSeparator)

	switch t.Kind {
	case KindInt:
		return convertList[int](parts, t.Kind)
	case KindInt8:
		return convertList[int8](parts, t.Kind)
	case KindInt16:
		return convertList[int16](parts, t.Kind)
	case KindInt32:
		return convertList[int32](parts, t.Kind)
	case KindInt64:
		return convertList[int64](parts, t.Kind)
	case KindUint:
		return convertList[uint](parts, t.Kind)
	case KindUint8:
		return convertList[uint8](parts, t.Kind)
	case KindUint16:
		return convertList[uint16](parts, t.Kind)
	case KindUint32:
		return convertList[uint32](parts, t.Kind)
	case KindUint64:
		return convertList[uint64](parts, t.Kind)
	case KindFloat32:
		return convertList[float32](parts, t.Kind)
	case KindFloat64:
		return convertList[float64](parts, t.Kind)
	case KindBool:
		return convertList[bool](parts, t.Kind)
	case KindString:
		return convertList[string](parts, t.Kind)
	case KindDuration:
		return convertList[time.Duration](parts, t.Kind)
	default:
		return nil, fmt.Errorf("unsupported kind %s", t.Kind)
	}
}

// convertList converts the non-blank parts to a slice of the canonical Go
// type T of kind.
func convertList[T any](parts []string, kind KindEnum) ([]T, error) {
	out := make([]T, 0, len(parts))

	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}

		v, err := convertScalar(part, kind)
		if err != nil {
			return nil, fmt.Errorf("list element %q: %w", part, err)
		}

		out = append(out, v.(T))
	}

	return out, nil
}

func convertScalar(raw string, kind KindEnum) (any, error) {
	switch {
	case kind.IsSigned():
		dec, err := decimal(raw)
		if err != nil {
			return nil, err
		}

		n, err := cast.ToInt64E(dec)
		if err != nil {
			return nil, err
		}

		if bits := kind.Bits(); bits < 64 {
			limit := int64(1) << (bits - 1)
			if n < -limit || n > limit-1 {
				return nil, fmt.Errorf("%d overflows %s", n, kind.GoName())
			}
		}

		switch kind {
		case KindInt8:
			return int8(n), nil
		case KindInt16:
			return int16(n), nil
		case KindInt32:
			return int32(n), nil
		case KindInt64:
			return n, nil
		default:
			return int(n), nil
		}

	case kind.IsUnsigned():
		if strings.HasPrefix(raw, "-") {
			return nil, fmt.Errorf("negative value %q for %s", raw, kind.GoName())
		}

		dec, err := decimal(raw)
		if err != nil {
			return nil, err
		}

		n, err := cast.ToUint64E(dec)
		if err != nil {
			return nil, err
		}

		if bits := kind.Bits(); bits < 64 && n > uint64(1)<<bits-1 {
			return nil, fmt.Errorf("%d overflows %s", n, kind.GoName())
		}

		switch kind {
		case KindUint8:
			return uint8(n), nil
		case KindUint16:
			return uint16(n), nil
		case KindUint32:
			return uint32(n), nil
		case KindUint64:
			return n, nil
		default:
			return uint(n), nil
		}
	}

	switch kind {
	case KindFloat32:
		return cast.ToFloat32E(raw)
	case KindFloat64:
		return cast.ToFloat64E(raw)
	case KindBool:
		return cast.ToBoolE(raw)
	case KindString:
		return raw, nil
	case KindDuration:
		return cast.ToDurationE(raw)
	default:
		return nil, fmt.Errorf("unsupported kind %s", kind)
	}
}

// decimal checks that raw is a base 10 integer with an optional sign and
// strips its leading zeros, so that cast never reads them as a radix prefix.
func decimal(raw string) (string, error) {
	sign, digits := "", raw
	if digits != "" && (digits[0] == '+' || digits[0] == '-') {
		sign, digits = digits[:1], digits[1:]
	}

	if digits == "" || strings.Trim(digits, "0123456789") != "" {
		return "", fmt.Errorf("invalid decimal integer %q", raw)
	}

	digits = strings.TrimLeft(digits, "0")
	if digits == "" {
		digits = "0"
	}

	return sign + digits, nil
}
