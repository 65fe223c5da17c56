package compiler

import (
	"fmt"
	"maps"
	"slices"
	"strconv"
	"strings"

	"github.com/rs/zerolog"

	"confbind/bindrt"
	"confbind/describe"
	"confbind/emit"
	"confbind/schema"
)

// Options tune a compilation.
type Options struct {
	FoldDefaults bool       // emit literal defaults as Go literals
	Accessors    *Accessors // shared by the routines of one file
	Logger       zerolog.Logger
}

// Option configures Options.
type Option func(*Options)

// WithFoldDefaults toggles default folding, enabled by default.
func WithFoldDefaults(fold bool) Option {
	return func(o *Options) {
		o.FoldDefaults = fold
	}
}

// WithAccessors shares acc between compilations.
func WithAccessors(acc *Accessors) Option {
	return func(o *Options) {
		o.Accessors = acc
	}
}

// WithLogger sets the logger for compilation events.
func WithLogger(logger zerolog.Logger) Option {
	return func(o *Options) {
		o.Logger = logger
	}
}

func newOptions(opts []Option) Options {
	o := Options{FoldDefaults: true, Logger: zerolog.Nop()}
	for _, opt := range opts {
		opt(&o)
	}

	if o.Accessors == nil {
		o.Accessors = NewAccessors()
	}

	return o
}

// Func is one emitted Go function.
type Func struct {
	Doc     string
	Name    string
	Params  string
	Results string
	Body    string
}

// Default is one entry of the default index baked into generated code.
type Default struct {
	Key        string
	Expression string
}

// Routine is the emitted binding code of one root type.
type Routine struct {
	Tree      *schema.Tree
	Name      string // root type name the function names derive from
	Init      string // function initializing the root group
	Funcs     []Func // in emission order, root first
	Defaults  []Default
	Accessors *Accessors
}

// Entry returns the name of the exported bind function.
func (r *Routine) Entry() string {
	return "Bind" + r.Name
}

// DefaultsVar returns the name of the default index variable.
func (r *Routine) DefaultsVar() string {
	if r.Name == "" {
		return "defaults"
	}

	return strings.ToLower(r.Name[:1]) + r.Name[1:] + "Defaults"
}

// EmitBindAll emits the binding code of the registered root type: one
// function per group, collection and leaf, each written by an emitter
// obtained from newEmitter. Emitters of one file should share imports.
func EmitBindAll(reg *schema.Registry, root describe.TypeID, newEmitter func() emit.Emitter, opts ...Option) (*Routine, error) {
	tree, ok := reg.Tree(root)
	if !ok {
		return nil, &bindrt.SchemaDefectError{Op: "emit", Type: root.String(), Err: fmt.Errorf("type is not registered")}
	}

	return EmitTree(tree, newEmitter, opts...)
}

// EmitTree is EmitBindAll for a tree.
func EmitTree(tree *schema.Tree, newEmitter func() emit.Emitter, opts ...Option) (*Routine, error) {
	o := newOptions(opts)

	c := &compilation{
		tree:       tree,
		opts:       append(slices.Clip(opts), WithAccessors(o.Accessors)),
		acc:        o.Accessors,
		newEmitter: newEmitter,
		names:      make(map[schema.NodeID]string),
	}

	r := &Routine{Tree: tree, Name: tree.Type().ID.Name, Accessors: o.Accessors}
	c.names[tree.Root().ID()] = r.Name
	r.Init = "init" + r.Name

	if err := c.group(tree.Root()); err != nil {
		return nil, err
	}

	r.Funcs = c.funcs

	defaults := tree.Defaults()
	for _, key := range slices.Sorted(maps.Keys(defaults)) {
		r.Defaults = append(r.Defaults, Default{Key: key, Expression: defaults[key]})
	}

	o.Logger.Debug().Str("type", tree.Type().ID.String()).Int("funcs", len(r.Funcs)).Msg("binding routine emitted")

	return r, nil
}

type compilation struct {
	tree       *schema.Tree
	opts       []Option
	acc        *Accessors
	newEmitter func() emit.Emitter
	names      map[schema.NodeID]string
	funcs      []Func
}

// name returns the identifier part of n: the root type name followed by the
// Go field names leading to n, with Elem for element templates.
func (c *compilation) name(n schema.Node) string {
	if name, ok := c.names[n.ID()]; ok {
		return name
	}

	suffix := n.Field()
	if n.ConsumesSegment() && suffix == "" {
		suffix = "Elem"
	}

	name := c.name(c.tree.ParentOf(n)) + suffix
	c.names[n.ID()] = name

	return name
}

func (c *compilation) funcName(n schema.Node) string {
	if _, ok := n.(*schema.Leaf); ok {
		return "bind" + c.name(n)
	}

	return "init" + c.name(n)
}

// params renders the parameters shared by every emitted function.
func (c *compilation) params(e emit.Emitter, target *describe.TypeInfo) string {
	return "c *" + qualified(e, pkgCursor, "Cursor") +
		", p *" + qualified(e, pkgBindrt, "Pass") +
		", target *" + target.Expr(e.Qualify)
}

func qualified(e emit.Emitter, pkgPath, name string) string {
	if q := e.Qualify(pkgPath); q != "" {
		return q + "." + name
	}

	return name
}

func (c *compilation) add(n schema.Node, e emit.Emitter, target *describe.TypeInfo) {
	name := c.funcName(n)

	var doc string
	if path := c.tree.Path(n); path != "" {
		doc = name + " binds " + path + "."
	}

	c.funcs = append(c.funcs, Func{
		Doc:     doc,
		Name:    name,
		Params:  c.params(e, target),
		Results: "error",
		Body:    e.Body(),
	})
}

// call emits a call of the generated function name.
func call(e emit.Emitter, name string, args ...emit.Value) {
	e.Invoke(emit.Op{Name: name, Fallible: true, Void: true}, args...)
}

func child(e emit.Emitter, cur emit.Value, seg string) emit.Value {
	return e.Invoke(emit.Op{Name: "Child", Method: true}, cur, e.Const(strconv.Quote(seg)))
}

func (c *compilation) group(g *schema.Group) error {
	e := c.newEmitter()
	cur, p, target := e.Param("c"), e.Param("p"), e.Param("target")

	var nested []schema.Node

	for _, ch := range c.tree.Children(g) {
		switch n := ch.(type) {
		case *schema.Leaf:
			call(e, c.funcName(n), child(e, cur, n.Segment()), p, target)

		case *schema.Group:
			switch {
			case n.Pointer():
				set, err := c.acc.Set(g.Type(), n.Field())
				if err != nil {
					return c.defect(n, err)
				}

				v := e.Alloc(n.Type().Expr(e.Qualify))
				e.CallAccessor(set, target, v)
				call(e, c.funcName(n), child(e, cur, n.Segment()), p, v)

			default:
				ref, err := c.acc.Ref(g.Type(), n.Field())
				if err != nil {
					return c.defect(n, err)
				}

				gc := cur
				if !n.Flattened() {
					gc = child(e, cur, n.Segment())
				}

				call(e, c.funcName(n), gc, p, e.Invoke(emit.Op{Name: ref}, target))
			}

		case *schema.Collection:
			call(e, c.funcName(n), child(e, cur, n.Segment()), p, target)

		default:
			return c.defect(ch, fmt.Errorf("unexpected node %T", ch))
		}

		nested = append(nested, ch)
	}

	e.Return()
	c.add(g, e, g.Type())

	for _, n := range nested {
		if err := c.node(n, g); err != nil {
			return err
		}
	}

	return nil
}

func (c *compilation) node(n schema.Node, owner *schema.Group) error {
	switch n := n.(type) {
	case *schema.Leaf:
		return c.leaf(n, owner)
	case *schema.Group:
		return c.group(n)
	case *schema.Collection:
		return c.collection(n, owner)
	}

	return c.defect(n, fmt.Errorf("unexpected node %T", n))
}

// leaf emits the function of a field or map element leaf. owner is the group
// holding the field or the map.
func (c *compilation) leaf(l *schema.Leaf, owner *schema.Group) error {
	e := c.newEmitter()
	cur, p, target := e.Param("c"), e.Param("p"), e.Param("target")
	b := NewBinder(c.tree, e, c.opts...)

	var err error

	has := e.Invoke(emit.Op{Name: "Has", Method: true}, p, e.Invoke(emit.Op{Name: "Name", Method: true}, cur))
	e.If(has, func() {
		err = b.BindValue(l, cur, p, target)
		e.Return()
	})

	if err != nil {
		return err
	}

	if err := b.BindDefault(l, p, target); err != nil {
		return err
	}

	e.Return()
	c.add(l, e, owner.Type())

	return nil
}

func (c *compilation) collection(coll *schema.Collection, owner *schema.Group) error {
	e := c.newEmitter()
	cur, p, target := e.Param("c"), e.Param("p"), e.Param("target")

	set, err := c.acc.Set(owner.Type(), coll.Field())
	if err != nil {
		return c.defect(coll, err)
	}

	typ := coll.Declared().Expr(e.Qualify)
	elem := c.tree.Elem(coll)

	if coll.Keyed() {
		m := e.Make(typ)
		e.CallAccessor(set, target, m)

		var put string

		if g, ok := elem.(*schema.Group); ok {
			if put, err = c.acc.Put(owner.Type(), coll.Field()); err != nil {
				return c.defect(coll, err)
			}

			keys := e.Invoke(emit.Op{Name: "Elements", Method: true}, p, cur)
			e.ForEach(keys, func(key emit.Value) {
				v := e.Alloc(g.Type().Expr(e.Qualify))
				e.CallAccessor(put, target, key, v)
				call(e, c.funcName(g), e.Invoke(emit.Op{Name: "Child", Method: true}, cur, key), p, v)
			})
		} else {
			keys := e.Invoke(emit.Op{Name: "Elements", Method: true}, p, cur)
			e.ForEach(keys, func(key emit.Value) {
				call(e, c.funcName(elem), e.Invoke(emit.Op{Name: "Child", Method: true}, cur, key), p, target)
			})
		}
	} else {
		g, ok := elem.(*schema.Group)
		if !ok {
			return c.defect(elem, fmt.Errorf("indexed collections hold groups, got %T", elem))
		}

		n := e.Invoke(emit.Op{Name: "Length", Method: true, Fallible: true}, p, cur)
		s := e.Make(typ, n)
		e.CallAccessor(set, target, s)
		e.ForIndex(n, func(i emit.Value) {
			ec := e.Invoke(emit.Op{Name: "Index", Method: true}, cur, i)

			if g.Pointer() {
				v := e.Alloc(g.Type().Expr(e.Qualify))
				e.SetIndex(s, i, v)
				call(e, c.funcName(g), ec, p, v)

				return
			}

			call(e, c.funcName(g), ec, p, e.Addr(e.Index(s, i)))
		})
	}

	e.Return()
	c.add(coll, e, owner.Type())

	if g, ok := elem.(*schema.Group); ok {
		return c.group(g)
	}

	return c.leaf(elem.(*schema.Leaf), owner)
}

func (c *compilation) defect(n schema.Node, err error) error {
	return &bindrt.SchemaDefectError{Op: "emit", Type: c.tree.Type().ID.String(), Field: c.tree.Path(n), Err: err}
}
