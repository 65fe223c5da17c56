package analyze

import (
	"fmt"
	"go/types"
	"reflect"
	"slices"

	"golang.org/x/tools/go/packages"

	"confbind/describe"
	"confbind/primitive"
)

// LoadMode specifies what information to load from packages.
const LoadMode = packages.NeedName |
	packages.NeedFiles |
	packages.NeedTypes |
	packages.NeedImports

// Analyzer loads Go packages and describes their configuration types.
type Analyzer struct {
	pkgs       map[string]*types.Package
	done       map[types.Type]*describe.TypeInfo // shared descriptions, also for recursive lookups
	inProgress map[types.Type]bool
}

// NewAnalyzer creates a new Analyzer.
func NewAnalyzer() *Analyzer {
	return &Analyzer{
		pkgs:       make(map[string]*types.Package),
		done:       make(map[types.Type]*describe.TypeInfo),
		inProgress: make(map[types.Type]bool),
	}
}

// LoadPackages loads the specified packages.
// Patterns are standard Go package patterns (e.g., "./config", "example.com/app/config").
func (a *Analyzer) LoadPackages(patterns ...string) error {
	cfg := &packages.Config{
		Mode: LoadMode,
	}

	pkgs, err := packages.Load(cfg, patterns...)
	if err != nil {
		return fmt.Errorf("failed to load packages: %w", err)
	}

	// Check for package errors
	var errs []error
	for _, pkg := range pkgs {
		for _, e := range pkg.Errors {
			errs = append(errs, e)
		}
	}
	if len(errs) > 0 {
		return fmt.Errorf("package errors: %v", errs)
	}

	for _, pkg := range pkgs {
		a.pkgs[pkg.PkgPath] = pkg.Types
	}

	return nil
}

// Packages returns the paths of the loaded packages.
func (a *Analyzer) Packages() []string {
	out := make([]string, 0, len(a.pkgs))
	for p := range a.pkgs {
		out = append(out, p)
	}

	return out
}

// Describe describes the named type id of a loaded package. The result has
// no reflect.Type and can only be compiled.
func (a *Analyzer) Describe(id describe.TypeID) (*describe.TypeInfo, error) {
	pkg, ok := a.pkgs[id.PkgPath]
	if !ok {
		return nil, fmt.Errorf("package %s is not loaded", id.PkgPath)
	}

	obj, ok := pkg.Scope().Lookup(id.Name).(*types.TypeName)
	if !ok {
		return nil, fmt.Errorf("type %s not found", id)
	}

	return a.describe(obj.Type())
}

// GetStruct is Describe for struct types.
func (a *Analyzer) GetStruct(id describe.TypeID) (*describe.TypeInfo, error) {
	info, err := a.Describe(id)
	if err != nil {
		return nil, err
	}

	if info.Kind != describe.TypeKindStruct {
		return nil, fmt.Errorf("type %s is not a struct (kind: %s)", id, info.Kind)
	}

	return info, nil
}

// describe recursively describes a go/types.Type the way describe.FromReflect
// describes the matching reflect.Type.
func (a *Analyzer) describe(t types.Type) (*describe.TypeInfo, error) {
	t = types.Unalias(t)

	if cached, ok := a.done[t]; ok {
		return cached, nil
	}

	info := &describe.TypeInfo{}

	under := t
	if named, ok := t.(*types.Named); ok {
		obj := named.Obj()
		if obj.Pkg() != nil {
			info.ID = describe.TypeID{PkgPath: obj.Pkg().Path(), Name: obj.Name()}
		} else {
			info.ID = describe.TypeID{Name: obj.Name()}
		}

		if info.ID == (describe.TypeID{PkgPath: "time", Name: "Duration"}) {
			info.Kind = describe.TypeKindScalar
			info.Scalar = primitive.KindDuration
			a.done[t] = info

			return info, nil
		}

		under = named.Underlying()
	}

	var err error

	switch ut := under.(type) {
	case *types.Basic:
		if kind := primitive.FromBasicName(ut.Name()); kind.IsValid() {
			info.Kind = describe.TypeKindScalar
			info.Scalar = kind

			if !info.IsNamed() {
				info.ID = describe.TypeID{Name: kind.GoName()}
			}
		} else {
			info.Kind = describe.TypeKindUnknown
			info.Detail = types.TypeString(t, nil)
		}

	case *types.Struct:
		if a.inProgress[t] {
			return nil, &describe.RecursiveTypeError{Type: info.ID}
		}

		a.inProgress[t] = true
		defer delete(a.inProgress, t)

		info.Kind = describe.TypeKindStruct
		err = a.fields(ut, info)

	case *types.Pointer:
		info.Kind = describe.TypeKindPointer
		info.Elem, err = a.describe(ut.Elem())

	case *types.Slice:
		info.Kind = describe.TypeKindSlice
		info.Elem, err = a.describe(ut.Elem())

	case *types.Map:
		info.Kind = describe.TypeKindMap
		if info.Key, err = a.describe(ut.Key()); err == nil {
			info.Elem, err = a.describe(ut.Elem())
		}

	default:
		info.Kind = describe.TypeKindUnknown
		info.Detail = types.TypeString(t, nil)
	}

	if err != nil {
		return nil, err
	}

	a.done[t] = info

	return info, nil
}

// fields extracts the configuration fields of a struct type.
func (a *Analyzer) fields(st *types.Struct, info *describe.TypeInfo) error {
	return a.collect(st, nil, info)
}

// collect appends the fields of st to info. Exported fields of unexported
// embedded structs are promoted with their index path, as with reflection.
func (a *Analyzer) collect(st *types.Struct, prefix []int, info *describe.TypeInfo) error {
	for i := 0; i < st.NumFields(); i++ {
		field := st.Field(i)
		index := append(slices.Clip(prefix), i)

		if !field.Exported() {
			if field.Embedded() {
				if err := a.promote(field, reflect.StructTag(st.Tag(i)), index, info); err != nil {
					return err
				}
			}

			continue
		}

		fi, skip := describe.ParseField(field.Name(), reflect.StructTag(st.Tag(i)), field.Embedded())
		if skip {
			continue
		}

		ft, err := a.describe(field.Type())
		if err != nil {
			return fmt.Errorf("field %s.%s: %w", info.ID.Name, field.Name(), err)
		}

		fi.Type = ft
		fi.Index = index
		info.Fields = append(info.Fields, fi)
	}

	return nil
}

func (a *Analyzer) promote(field *types.Var, tag reflect.StructTag, index []int, info *describe.TypeInfo) error {
	fi, skip := describe.ParseField(field.Name(), tag, true)
	if skip {
		return nil
	}

	st, isStruct := field.Type().Underlying().(*types.Struct)
	if isStruct && fi.Flatten {
		return a.collect(st, index, info)
	}

	if !isStruct {
		ptr, ok := field.Type().Underlying().(*types.Pointer)
		if !ok {
			return nil
		}

		if _, ok := ptr.Elem().Underlying().(*types.Struct); !ok {
			return nil
		}
	}

	name := fi.Name
	if name == "" {
		name = describe.KebabCase(field.Name())
	}

	typ := types.TypeString(field.Type(), func(p *types.Package) string { return p.Name() })

	info.Fields = append(info.Fields, describe.FieldInfo{
		GoName: field.Name(),
		Name:   name,
		Doc:    fi.Doc,
		Index:  index,
		Type:   &describe.TypeInfo{Kind: describe.TypeKindUnknown, Detail: "embedded " + typ + " of unexported type"},
	})

	return nil
}
