package describe

import (
	"reflect"

	"confbind/primitive"
)

// TypeID uniquely identifies a named type by its package path and name.
type TypeID struct {
	PkgPath string // e.g., "confbind/internal/fixture", empty for predeclared types
	Name    string // e.g., "Config"
}

// String returns a human-readable representation of the TypeID.
func (t TypeID) String() string {
	if t.PkgPath == "" {
		return t.Name
	}

	return t.PkgPath + "." + t.Name
}

// TypeKind represents the kind of a type.
type TypeKind int

const (
	TypeKindUnknown TypeKind = iota // unsupported (chan, func, interface, arrays, ...)
	TypeKindScalar                  // int, string, bool, time.Duration, or a named type over one of them
	TypeKindStruct                  // struct type
	TypeKindPointer                 // pointer to another type
	TypeKindSlice                   // slice of another type
	TypeKindMap                     // map with key and element types
)

// String returns a human-readable representation of the TypeKind.
func (k TypeKind) String() string {
	switch k {
	case TypeKindScalar:
		return "scalar"
	case TypeKindStruct:
		return "struct"
	case TypeKindPointer:
		return "pointer"
	case TypeKindSlice:
		return "slice"
	case TypeKindMap:
		return "map"
	default:
		return "unknown"
	}
}

// TypeInfo describes a Go type of a configuration object graph.
type TypeInfo struct {
	ID      TypeID             // Identity of named types (empty for unnamed types like *T or []T)
	Kind    TypeKind           // Kind of type
	Scalar  primitive.KindEnum // For scalars, the conversion kind
	Elem    *TypeInfo          // For pointers, slices and maps, the element type
	Key     *TypeInfo          // For maps, the key type
	Fields  []FieldInfo        // For structs, the configuration fields in declaration order
	Reflect reflect.Type       // The runtime type, nil when built from go/types
	Detail  string             // For unknown kinds, a description of the type
}

// IsNamed returns true if this type has a name (TypeID is set).
func (t *TypeInfo) IsNamed() bool {
	return t.ID.Name != ""
}

// String returns the Go type expression with fully qualified package paths.
func (t *TypeInfo) String() string {
	return t.Expr(func(pkgPath string) string { return pkgPath })
}

// Qualifier returns the package name to use for pkgPath in Go source, or ""
// when the type lives in the package being generated.
type Qualifier func(pkgPath string) string

// Expr returns the Go type expression of t, qualifying named types with q.
func (t *TypeInfo) Expr(q Qualifier) string {
	if t.IsNamed() {
		if t.ID.PkgPath == "" {
			return t.ID.Name
		}

		if alias := q(t.ID.PkgPath); alias != "" {
			return alias + "." + t.ID.Name
		}

		return t.ID.Name
	}

	switch t.Kind {
	case TypeKindPointer:
		return "*" + t.Elem.Expr(q)
	case TypeKindSlice:
		return "[]" + t.Elem.Expr(q)
	case TypeKindMap:
		return "map[" + t.Key.Expr(q) + "]" + t.Elem.Expr(q)
	case TypeKindScalar:
		return t.Scalar.GoName()
	case TypeKindStruct:
		return "struct{...}"
	default:
		return t.Detail
	}
}

// Deref returns the element type of a pointer type and t otherwise.
func (t *TypeInfo) Deref() *TypeInfo {
	if t.Kind == TypeKindPointer {
		return t.Elem
	}

	return t
}

// Packages returns the import paths of every named type mentioned by the
// expression of t.
func (t *TypeInfo) Packages() []string {
	var out []string

	var walk func(*TypeInfo)
	walk = func(ti *TypeInfo) {
		if ti == nil {
			return
		}

		if ti.IsNamed() {
			if ti.ID.PkgPath != "" {
				out = append(out, ti.ID.PkgPath)
			}

			return
		}

		walk(ti.Key)
		walk(ti.Elem)
	}
	walk(t)

	return out
}

// FieldInfo describes a configuration field of a struct.
type FieldInfo struct {
	GoName     string    // Go field name
	Name       string    // Configuration segment, empty when flattened
	Flatten    bool      // Whether the field contributes no segment of its own
	Default    string    // Raw default expression
	HasDefault bool      // Whether a default tag is present (it may be empty)
	Doc        string    // Documentation key
	Type       *TypeInfo // Field type
	Index      []int     // Index path in the struct, longer than one for promoted fields
}
