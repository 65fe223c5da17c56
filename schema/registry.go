package schema

import (
	"fmt"
	"reflect"

	"confbind/bindrt"
	"confbind/describe"
)

// Registry holds the trees of all registered root groups. It is populated
// once, from a single goroutine, before any binding begins; afterwards it is
// read-only and safe for concurrent use.
type Registry struct {
	trees    []*Tree
	byType   map[describe.TypeID]*Tree
	byPrefix map[string]*Tree
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		byType:   make(map[describe.TypeID]*Tree),
		byPrefix: make(map[string]*Tree),
	}
}

// Register builds and stores the tree of info under prefix. A type can be
// registered once, and a prefix can hold one root.
func (r *Registry) Register(prefix string, info *describe.TypeInfo) (*Tree, error) {
	t, err := Build(prefix, info)
	if err != nil {
		return nil, err
	}

	if _, dup := r.byType[info.ID]; dup {
		return nil, &bindrt.SchemaDefectError{Op: "register", Type: info.ID.String(), Err: fmt.Errorf("type already registered")}
	}

	if other, dup := r.byPrefix[t.Prefix()]; dup {
		return nil, &bindrt.SchemaDefectError{
			Op:   "register",
			Type: info.ID.String(),
			Err:  fmt.Errorf("prefix %q already holds %s", t.Prefix(), other.Type().ID),
		}
	}

	r.trees = append(r.trees, t)
	r.byType[info.ID] = t
	r.byPrefix[t.Prefix()] = t

	return t, nil
}

// RegisterType describes rt with describe.FromReflect and registers it.
func (r *Registry) RegisterType(prefix string, rt reflect.Type) (*Tree, error) {
	info, err := describe.FromReflect(rt)
	if err != nil {
		return nil, &bindrt.SchemaDefectError{Op: "register", Type: rt.String(), Err: err}
	}

	return r.Register(prefix, info)
}

// Register registers the struct type T under prefix.
func Register[T any](r *Registry, prefix string) (*Tree, error) {
	return r.RegisterType(prefix, reflect.TypeFor[T]())
}

// Tree returns the tree registered for the root type id.
func (r *Registry) Tree(id describe.TypeID) (*Tree, bool) {
	t, ok := r.byType[id]
	return t, ok
}

// TreeOf returns the tree registered for the root type rt.
func (r *Registry) TreeOf(rt reflect.Type) (*Tree, bool) {
	return r.Tree(describe.TypeID{PkgPath: rt.PkgPath(), Name: rt.Name()})
}

// Lookup returns the tree registered under prefix.
func (r *Registry) Lookup(prefix string) (*Tree, bool) {
	t, ok := r.byPrefix[prefix]
	return t, ok
}

// Roots returns all trees in registration order.
func (r *Registry) Roots() []*Tree {
	return append([]*Tree(nil), r.trees...)
}
