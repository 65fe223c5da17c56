package describe

import (
	"fmt"
	"reflect"
	"slices"

	"confbind/primitive"
)

// RecursiveTypeError reports a struct type that contains itself.
type RecursiveTypeError struct {
	Type TypeID
}

func (e *RecursiveTypeError) Error() string {
	return fmt.Sprintf("recursive configuration type %s", e.Type)
}

// FromReflect describes rt and every type reachable from its configuration
// fields. Unexported fields and fields tagged `config:"-"` are ignored. The
// exported fields of an embedded struct of unexported type are promoted.
func FromReflect(rt reflect.Type) (*TypeInfo, error) {
	b := &reflectBuilder{
		done:       make(map[reflect.Type]*TypeInfo),
		inProgress: make(map[reflect.Type]bool),
	}

	return b.describe(rt)
}

// For is FromReflect for the type argument.
func For[T any]() (*TypeInfo, error) {
	return FromReflect(reflect.TypeFor[T]())
}

type reflectBuilder struct {
	done       map[reflect.Type]*TypeInfo
	inProgress map[reflect.Type]bool
}

func (b *reflectBuilder) describe(rt reflect.Type) (*TypeInfo, error) {
	if cached, ok := b.done[rt]; ok {
		return cached, nil
	}

	info := &TypeInfo{Reflect: rt}
	if rt.Name() != "" {
		info.ID = TypeID{PkgPath: rt.PkgPath(), Name: rt.Name()}
	}

	switch rt.Kind() {
	case reflect.Struct:
		if b.inProgress[rt] {
			return nil, &RecursiveTypeError{Type: info.ID}
		}

		b.inProgress[rt] = true
		defer delete(b.inProgress, rt)

		info.Kind = TypeKindStruct
		if err := b.fields(rt, info); err != nil {
			return nil, err
		}

	case reflect.Pointer:
		info.Kind = TypeKindPointer
		if err := b.elem(rt.Elem(), &info.Elem); err != nil {
			return nil, err
		}

	case reflect.Slice:
		info.Kind = TypeKindSlice
		if err := b.elem(rt.Elem(), &info.Elem); err != nil {
			return nil, err
		}

	case reflect.Map:
		info.Kind = TypeKindMap
		if err := b.elem(rt.Key(), &info.Key); err != nil {
			return nil, err
		}

		if err := b.elem(rt.Elem(), &info.Elem); err != nil {
			return nil, err
		}

	default:
		if kind := primitive.FromReflectType(rt); kind.IsValid() {
			info.Kind = TypeKindScalar
			info.Scalar = kind
		} else {
			info.Kind = TypeKindUnknown
			info.Detail = rt.String()
		}
	}

	b.done[rt] = info

	return info, nil
}

func (b *reflectBuilder) elem(rt reflect.Type, dst **TypeInfo) error {
	info, err := b.describe(rt)
	if err != nil {
		return err
	}

	*dst = info

	return nil
}

func (b *reflectBuilder) fields(rt reflect.Type, info *TypeInfo) error {
	return b.collect(rt, nil, info)
}

// collect appends the configuration fields of rt to info. prefix is the
// index path of rt when it is an unexported embedded struct: its exported
// fields are promoted into info.
func (b *reflectBuilder) collect(rt reflect.Type, prefix []int, info *TypeInfo) error {
	for i := range rt.NumField() {
		sf := rt.Field(i)
		index := append(slices.Clip(prefix), i)

		if !sf.IsExported() {
			if sf.Anonymous {
				if err := b.promote(sf, index, info); err != nil {
					return err
				}
			}

			continue
		}

		field, skip := ParseField(sf.Name, sf.Tag, sf.Anonymous)
		if skip {
			continue
		}

		ft, err := b.describe(sf.Type)
		if err != nil {
			return fmt.Errorf("field %s.%s: %w", rt.Name(), sf.Name, err)
		}

		field.Type = ft
		field.Index = index
		info.Fields = append(info.Fields, field)
	}

	return nil
}

// promote handles an embedded field of unexported type. Its exported fields
// are reachable from the enclosing struct only when it is a struct value.
func (b *reflectBuilder) promote(sf reflect.StructField, index []int, info *TypeInfo) error {
	field, skip := ParseField(sf.Name, sf.Tag, true)
	if skip {
		return nil
	}

	if sf.Type.Kind() == reflect.Struct && field.Flatten {
		return b.collect(sf.Type, index, info)
	}

	if sf.Type.Kind() != reflect.Struct && (sf.Type.Kind() != reflect.Pointer || sf.Type.Elem().Kind() != reflect.Struct) {
		return nil
	}

	info.Fields = append(info.Fields, unexportedEmbedded(sf.Name, sf.Type.String(), field, index))

	return nil
}

// unexportedEmbedded describes an embedded field of unexported struct type
// that cannot be bound: a pointer, or a struct given its own segment. It is
// kept as a field of unknown type so that registration reports it.
func unexportedEmbedded(goName, typ string, field FieldInfo, index []int) FieldInfo {
	name := field.Name
	if name == "" {
		name = KebabCase(goName)
	}

	return FieldInfo{
		GoName: goName,
		Name:   name,
		Doc:    field.Doc,
		Index:  index,
		Type:   &TypeInfo{Kind: TypeKindUnknown, Detail: "embedded " + typ + " of unexported type"},
	}
}
