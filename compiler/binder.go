package compiler

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/rs/zerolog"

	"confbind/binder"
	"confbind/bindrt"
	"confbind/describe"
	"confbind/emit"
	"confbind/expand"
	"confbind/primitive"
	"confbind/schema"
)

// Import paths referenced by emitted code.
const (
	pkgBindrt    = "confbind/bindrt"
	pkgCursor    = "confbind/cursor"
	pkgPrimitive = "confbind/primitive"
	pkgSource    = "confbind/source"
)

// Binder emits the code that binds one leaf into the body being written by
// its emitter. Values are handles on emitted expressions: c is the leaf
// cursor, p the pass and target the group (or, for map elements, the group
// owning the map) the leaf belongs to.
type Binder struct {
	tree   *schema.Tree
	e      emit.Emitter
	acc    *Accessors
	fold   bool
	logger zerolog.Logger
}

var _ binder.Binder[emit.Value, emit.Value, emit.Value] = (*Binder)(nil)

// NewBinder returns a binder writing to e.
func NewBinder(tree *schema.Tree, e emit.Emitter, opts ...Option) *Binder {
	o := newOptions(opts)

	return &Binder{tree: tree, e: e, acc: o.Accessors, fold: o.FoldDefaults, logger: o.Logger}
}

// BindValue implements binder.Binder.
func (b *Binder) BindValue(leaf *schema.Leaf, c, p, target emit.Value) error {
	if leaf.ConsumesSegment() {
		coll, ok := b.tree.ParentOf(leaf).(*schema.Collection)
		if !ok || !coll.Keyed() {
			return b.defect(leaf, fmt.Errorf("element leaf outside of a keyed collection"))
		}

		owner, err := b.owner(coll)
		if err != nil {
			return err
		}

		put, err := b.acc.Put(owner, coll.Field())
		if err != nil {
			return b.defect(leaf, err)
		}

		b.e.Invoke(emit.Op{Name: "Previous", Method: true, Void: true}, c)

		v := b.read(leaf, c, p)
		b.e.CallAccessor(put, target, b.e.Invoke(emit.Op{Name: "PeekNext", Method: true}, c), v)

		return nil
	}

	set, err := b.setter(leaf)
	if err != nil {
		return err
	}

	b.e.CallAccessor(set, target, b.read(leaf, c, p))

	return nil
}

// read emits the lookup and conversion of the leaf value and its assignment
// to the declared type.
func (b *Binder) read(leaf *schema.Leaf, c, p emit.Value) emit.Value {
	name := b.e.Invoke(emit.Op{Name: "Name", Method: true}, c)
	v := b.e.Invoke(emit.Op{Name: "Value", Method: true, Fallible: true}, p, name, b.typeValue(leaf.Type()))

	return b.declare(leaf, v)
}

// declare asserts v, a converted value, to the canonical type of the leaf
// kind and converts it statically to the declared type. Lists of named
// elements are copied element by element.
func (b *Binder) declare(leaf *schema.Leaf, v emit.Value) emit.Value {
	canon := b.canonical(leaf.Type().Kind)
	declared := leaf.Declared()

	switch {
	case leaf.Optional():
		v = b.e.Assert(v, "*"+canon)
		if elem := declared.Elem.Expr(b.e.Qualify); elem != canon {
			v = b.e.Convert(v, "*"+elem)
		}

		return v

	case leaf.Type().List:
		s := b.e.Assert(v, "[]"+canon)

		elem := declared.Elem.Expr(b.e.Qualify)
		if elem == canon {
			return s
		}

		n := b.e.Const("len(" + s.String() + ")")
		out := b.e.Make(declared.Expr(b.e.Qualify), n)
		b.e.ForIndex(n, func(i emit.Value) {
			b.e.SetIndex(out, i, b.e.Convert(b.e.Index(s, i), elem))
		})

		return out

	default:
		v = b.e.Assert(v, canon)
		if typ := declared.Expr(b.e.Qualify); typ != canon {
			v = b.e.Convert(v, typ)
		}

		return v
	}
}

func (b *Binder) canonical(k primitive.KindEnum) string {
	if k == primitive.KindDuration {
		return qualified(b.e, "time", "Duration")
	}

	return k.GoName()
}

// BindDefault implements binder.Binder. Defaults without references are
// converted now and emitted as literals unless folding is disabled.
func (b *Binder) BindDefault(leaf *schema.Leaf, p, target emit.Value) error {
	if !leaf.HasDefault() {
		return nil
	}

	if leaf.ConsumesSegment() {
		return b.defect(leaf, fmt.Errorf("map elements have no default"))
	}

	set, err := b.setter(leaf)
	if err != nil {
		return err
	}

	key := b.tree.Path(leaf)

	if b.fold {
		if lit, ok := b.literal(leaf); ok {
			b.logger.Debug().Str("key", key).Str("literal", lit).Msg("default folded")

			if lit != "" {
				b.e.CallAccessor(set, target, b.e.Const(lit))
			}

			return nil
		}
	}

	v := b.e.Invoke(emit.Op{Name: "Default", Method: true, Fallible: true},
		p, b.e.Const(strconv.Quote(key)), b.e.Const(strconv.Quote(leaf.Default())), b.typeValue(leaf.Type()))
	b.e.CallAccessor(set, target, b.declare(leaf, v))

	return nil
}

// literal renders the default of leaf as a Go literal when it has no
// references and converts. An empty literal means the zero value.
func (b *Binder) literal(leaf *schema.Leaf) (string, bool) {
	s, ok := expand.Static(leaf.Default())
	if !ok {
		return "", false
	}

	t := leaf.Type()
	if !t.List && strings.TrimSpace(s) == "" {
		return "", true
	}

	v, err := primitive.Convert(s, t)
	if err != nil {
		// converted again at run time to fail with the same error
		return "", false
	}

	declared := leaf.Declared()

	switch {
	case leaf.Optional():
		lit, err := primitive.Literal(v, t)
		if err != nil {
			return "", false
		}

		ptr := "Ptr[" + declared.Elem.Expr(b.e.Qualify) + "]"
		if q := b.e.Qualify(pkgBindrt); q != "" {
			ptr = q + "." + ptr
		}

		return ptr + "(" + lit + ")", true

	case t.List:
		lit, err := primitive.LiteralAs(v, t, declared.Expr(b.e.Qualify))

		return lit, err == nil

	default:
		lit, err := primitive.Literal(v, t)

		return lit, err == nil
	}
}

func (b *Binder) typeValue(t primitive.Type) emit.Value {
	kind := t.Kind.String()
	if q := b.e.Qualify(pkgPrimitive); q != "" {
		kind = q + "." + kind
	}

	fn := "Of"
	if t.List {
		fn = "ListOf"
	}

	return b.e.Invoke(emit.Op{Pkg: pkgPrimitive, Name: fn}, b.e.Const(kind))
}

func (b *Binder) setter(leaf *schema.Leaf) (string, error) {
	owner, err := b.owner(leaf)
	if err != nil {
		return "", err
	}

	set, err := b.acc.Set(owner, leaf.Field())
	if err != nil {
		return "", b.defect(leaf, err)
	}

	return set, nil
}

// owner returns the struct type holding the field of n.
func (b *Binder) owner(n schema.Node) (*describe.TypeInfo, error) {
	g, ok := b.tree.ParentOf(n).(*schema.Group)
	if !ok {
		return nil, b.defect(n, fmt.Errorf("node is not a struct field"))
	}

	return g.Type(), nil
}

func (b *Binder) defect(n schema.Node, err error) error {
	return &bindrt.SchemaDefectError{Op: "emit", Type: b.tree.Type().ID.String(), Field: b.tree.Path(n), Err: err}
}
