package compiler

import (
	"fmt"
	"slices"
	"strconv"
	"strings"
	"sync"

	"confbind/describe"
)

// Accessor names the generated functions that reach one field of a group type.
type Accessor struct {
	Owner *describe.TypeInfo
	Field describe.FieldInfo
	Set   string // setOwnerField(target *Owner, v T)
	Ref   string // refOwnerField(target *Owner) *T
	Put   string // putOwnerField(target *Owner, key string, v E), map fields only

	useSet, useRef, usePut bool
}

type accessorKey struct {
	owner describe.TypeID
	field string
}

// Accessors hands out at most one Accessor per (type, field) for the
// routines of one generated file. It is safe for concurrent use.
type Accessors struct {
	mu    sync.Mutex
	byKey map[accessorKey]*Accessor
	names map[string]struct{}
}

// NewAccessors returns an empty registry.
func NewAccessors() *Accessors {
	return &Accessors{
		byKey: make(map[accessorKey]*Accessor),
		names: make(map[string]struct{}),
	}
}

// GetOrCreate returns the accessor of field of owner, creating it on first
// request. Concurrent requests for the same key get the same accessor.
func (a *Accessors) GetOrCreate(owner *describe.TypeInfo, field string) (*Accessor, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	return a.getOrCreate(owner, field)
}

func (a *Accessors) getOrCreate(owner *describe.TypeInfo, field string) (*Accessor, error) {
	key := accessorKey{owner: owner.ID, field: field}
	if acc, ok := a.byKey[key]; ok {
		return acc, nil
	}

	i := slices.IndexFunc(owner.Fields, func(f describe.FieldInfo) bool { return f.GoName == field })
	if i < 0 {
		return nil, fmt.Errorf("type %s has no field %s", owner.ID, field)
	}

	base := owner.ID.Name + field
	name := base

	for n := 2; ; n++ {
		if _, taken := a.names[name]; !taken {
			break
		}

		name = base + strconv.Itoa(n)
	}

	a.names[name] = struct{}{}

	acc := &Accessor{
		Owner: owner,
		Field: owner.Fields[i],
		Set:   "set" + name,
		Ref:   "ref" + name,
		Put:   "put" + name,
	}
	a.byKey[key] = acc

	return acc, nil
}

// Set returns the name of the assigning accessor and marks it for rendering.
func (a *Accessors) Set(owner *describe.TypeInfo, field string) (string, error) {
	return a.use(owner, field, func(acc *Accessor) string {
		acc.useSet = true
		return acc.Set
	})
}

// Ref returns the name of the addressing accessor and marks it for rendering.
func (a *Accessors) Ref(owner *describe.TypeInfo, field string) (string, error) {
	return a.use(owner, field, func(acc *Accessor) string {
		acc.useRef = true
		return acc.Ref
	})
}

// Put returns the name of the map entry accessor and marks it for rendering.
func (a *Accessors) Put(owner *describe.TypeInfo, field string) (string, error) {
	return a.use(owner, field, func(acc *Accessor) string {
		acc.usePut = true
		return acc.Put
	})
}

func (a *Accessors) use(owner *describe.TypeInfo, field string, mark func(*Accessor) string) (string, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	acc, err := a.getOrCreate(owner, field)
	if err != nil {
		return "", err
	}

	return mark(acc), nil
}

// Len returns the number of accessors created.
func (a *Accessors) Len() int {
	a.mu.Lock()
	defer a.mu.Unlock()

	return len(a.byKey)
}

// Funcs renders every accessor function requested so far, sorted by name. A
// nil q leaves type names unqualified.
func (a *Accessors) Funcs(q describe.Qualifier) []Func {
	if q == nil {
		q = func(string) string { return "" }
	}

	a.mu.Lock()
	defer a.mu.Unlock()

	var out []Func

	for _, acc := range a.byKey {
		if !acc.useSet && !acc.useRef && !acc.usePut {
			continue
		}

		owner := "*" + acc.Owner.Expr(q)
		typ := acc.Field.Type.Expr(q)
		field := acc.Field.GoName

		if acc.useSet {
			out = append(out, Func{
				Name:   acc.Set,
				Params: "target " + owner + ", v " + typ,
				Body:   "\ttarget." + field + " = v\n",
			})
		}

		if acc.useRef {
			out = append(out, Func{
				Name:    acc.Ref,
				Params:  "target " + owner,
				Results: "*" + typ,
				Body:    "\treturn &target." + field + "\n",
			})
		}

		if acc.usePut && acc.Field.Type.Kind == describe.TypeKindMap {
			out = append(out, Func{
				Name:   acc.Put,
				Params: "target " + owner + ", key string, v " + acc.Field.Type.Elem.Expr(q),
				Body:   "\ttarget." + field + "[key] = v\n",
			})
		}
	}

	slices.SortFunc(out, func(x, y Func) int {
		return strings.Compare(x.Name, y.Name)
	})

	return out
}
