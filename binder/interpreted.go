package binder

import (
	"fmt"
	"reflect"

	"confbind/bindrt"
	"confbind/cursor"
	"confbind/schema"
	"confbind/source"
)

// Interpreted binds values immediately through reflection.
type Interpreted struct {
	tree *schema.Tree
}

var _ Binder[*cursor.Cursor, *bindrt.Pass, reflect.Value] = (*Interpreted)(nil)

// NewInterpreted returns an interpreted binder for the leaves of tree.
func NewInterpreted(tree *schema.Tree) *Interpreted {
	return &Interpreted{tree: tree}
}

// BindValue implements Binder. target is the field of the leaf, or the map
// of the enclosing collection for element leaves.
func (b *Interpreted) BindValue(leaf *schema.Leaf, c *cursor.Cursor, p *bindrt.Pass, target reflect.Value) error {
	if leaf.ConsumesSegment() {
		c.Previous()

		coll, ok := b.tree.ParentOf(leaf).(*schema.Collection)
		if !ok || !coll.Keyed() {
			return b.defect(leaf, fmt.Errorf("element leaf outside of a keyed collection"))
		}

		return b.acceptElement(leaf, c, p, target)
	}

	v, err := p.Value(c.Name(), leaf.Type())
	if err != nil {
		return err
	}

	return b.assign(leaf, target, v)
}

// acceptElement puts the value of an element leaf into the collection map
// under the next cursor segment.
func (b *Interpreted) acceptElement(leaf *schema.Leaf, c *cursor.Cursor, p *bindrt.Pass, m reflect.Value) error {
	if m.Kind() != reflect.Map || m.IsNil() {
		return b.defect(leaf, fmt.Errorf("element target is %s, want an allocated map", m.Kind()))
	}

	v, err := p.Value(c.Name(), leaf.Type())
	if err != nil {
		return err
	}

	rv, err := bindrt.Coerce(v, m.Type().Elem())
	if err != nil {
		return b.defect(leaf, err)
	}

	m.SetMapIndex(reflect.ValueOf(c.PeekNext()).Convert(m.Type().Key()), rv)

	return nil
}

// BindDefault implements Binder.
func (b *Interpreted) BindDefault(leaf *schema.Leaf, p *bindrt.Pass, target reflect.Value) error {
	if !leaf.HasDefault() {
		return nil
	}

	v, err := p.Default(b.tree.Path(leaf), leaf.Default(), leaf.Type())
	if err != nil {
		return err
	}

	return b.assign(leaf, target, v)
}

func (b *Interpreted) assign(leaf *schema.Leaf, target reflect.Value, v any) error {
	if !target.CanSet() {
		return b.defect(leaf, fmt.Errorf("target %s is not settable", target.Type()))
	}

	rv, err := bindrt.Coerce(v, target.Type())
	if err != nil {
		return b.defect(leaf, err)
	}

	target.Set(rv)

	return nil
}

func (b *Interpreted) defect(n schema.Node, err error) error {
	return &bindrt.SchemaDefectError{Op: "bind", Type: b.tree.Type().ID.String(), Field: b.tree.Path(n), Err: err}
}

// BindAll binds src to a new instance of the registered root type and
// returns a pointer to it.
func BindAll(reg *schema.Registry, root reflect.Type, src source.Source, opts ...bindrt.Option) (any, error) {
	tree, ok := reg.TreeOf(root)
	if !ok {
		return nil, &bindrt.SchemaDefectError{Op: "bind", Type: root.String(), Err: fmt.Errorf("type is not registered")}
	}

	return BindTree(tree, src, opts...)
}

// Bind is BindAll for the root type T.
func Bind[T any](reg *schema.Registry, src source.Source, opts ...bindrt.Option) (*T, error) {
	v, err := BindAll(reg, reflect.TypeFor[T](), src, opts...)
	if err != nil {
		return nil, err
	}

	return v.(*T), nil
}

// BindTree binds src to a new instance of the root type of tree.
func BindTree(tree *schema.Tree, src source.Source, opts ...bindrt.Option) (any, error) {
	rt := tree.Type().Reflect
	if rt == nil {
		return nil, &bindrt.SchemaDefectError{
			Op:   "bind",
			Type: tree.Type().ID.String(),
			Err:  fmt.Errorf("schema has no runtime type, it can only be compiled"),
		}
	}

	p := bindrt.NewPass(src, tree.Defaults(), opts...)
	w := &walker{tree: tree, b: NewInterpreted(tree), p: p}

	target := reflect.New(rt)
	if err := w.group(tree.Root(), tree.PrefixCursor(), target.Elem()); err != nil {
		return nil, err
	}

	p.Finish(tree.PrefixCursor())

	return target.Interface(), nil
}

type walker struct {
	tree *schema.Tree
	b    *Interpreted
	p    *bindrt.Pass
}

func (w *walker) group(g *schema.Group, c *cursor.Cursor, target reflect.Value) error {
	for _, child := range w.tree.Children(g) {
		field := target.FieldByIndex(child.FieldIndex())

		var err error

		switch n := child.(type) {
		case *schema.Leaf:
			err = w.leaf(n, c.Child(n.Segment()), field)
		case *schema.Group:
			gc := c
			if !n.Flattened() {
				gc = c.Child(n.Segment())
			}

			err = w.nested(n, gc, field)
		case *schema.Collection:
			err = w.collection(n, c.Child(n.Segment()), field)
		default:
			err = w.b.defect(child, fmt.Errorf("unexpected node %T", child))
		}

		if err != nil {
			return err
		}
	}

	return nil
}

func (w *walker) leaf(l *schema.Leaf, c *cursor.Cursor, target reflect.Value) error {
	if w.p.Has(c.Name()) {
		return w.b.BindValue(l, c, w.p, target)
	}

	return w.b.BindDefault(l, w.p, target)
}

// nested binds a group reached through field, allocating it first when the
// field is a pointer.
func (w *walker) nested(g *schema.Group, c *cursor.Cursor, field reflect.Value) error {
	if g.Pointer() {
		ptr := reflect.New(field.Type().Elem())
		field.Set(ptr)
		field = ptr.Elem()
	}

	return w.group(g, c, field)
}

func (w *walker) collection(coll *schema.Collection, c *cursor.Cursor, field reflect.Value) error {
	elem := w.tree.Elem(coll)

	if coll.Keyed() {
		m := reflect.MakeMap(field.Type())
		field.Set(m)

		for _, key := range w.p.Elements(c) {
			ec := c.Child(key)

			switch e := elem.(type) {
			case *schema.Group:
				ptr := reflect.New(field.Type().Elem().Elem())
				m.SetMapIndex(reflect.ValueOf(key).Convert(field.Type().Key()), ptr)

				if err := w.group(e, ec, ptr.Elem()); err != nil {
					return err
				}
			case *schema.Leaf:
				if err := w.leaf(e, ec, m); err != nil {
					return err
				}
			default:
				return w.b.defect(elem, fmt.Errorf("unexpected element %T", elem))
			}
		}

		return nil
	}

	g, ok := elem.(*schema.Group)
	if !ok {
		return w.b.defect(elem, fmt.Errorf("indexed collections hold groups, got %T", elem))
	}

	n, err := w.p.Length(c)
	if err != nil {
		return err
	}

	s := reflect.MakeSlice(field.Type(), n, n)
	field.Set(s)

	for i := range n {
		if err := w.nested(g, c.Index(i), s.Index(i)); err != nil {
			return err
		}
	}

	return nil
}
