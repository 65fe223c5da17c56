package schema

import (
	"fmt"
	"slices"
	"strings"

	"confbind/bindrt"
	"confbind/cursor"
	"confbind/describe"
	"confbind/internal/diagnostic"
	"confbind/primitive"
)

// Diagnostic codes reported while building a tree.
const (
	CodeUnsupportedType  = "unsupported-type"
	CodeDuplicateSegment = "duplicate-segment"
	CodeInvalidSegment   = "invalid-segment"
	CodeMisplacedDefault = "misplaced-default"
	CodeAnonymousStruct  = "anonymous-struct"
	CodeMapKey           = "map-key"
	CodeMapValue         = "map-value"
	CodeFlatten          = "flatten"
)

type builder struct {
	tree  *Tree
	diags diagnostic.Diagnostics
	root  string
}

// Build builds the tree of the struct type info rooted at prefix. Every
// defect found is collected before failing with one *bindrt.SchemaDefectError.
func Build(prefix string, info *describe.TypeInfo) (*Tree, error) {
	segments, err := cursor.Split(prefix)
	if err != nil {
		return nil, &bindrt.SchemaDefectError{Op: "register", Type: info.String(), Err: err}
	}

	if info.Kind != describe.TypeKindStruct || !info.IsNamed() {
		return nil, &bindrt.SchemaDefectError{
			Op:   "register",
			Type: info.String(),
			Err:  fmt.Errorf("root must be a named struct type, got %s", info.Kind),
		}
	}

	t := &Tree{
		prefix:   cursor.Join(segments),
		segments: segments,
		defaults: make(map[string]string),
		typ:      info,
	}

	b := &builder{tree: t, root: info.ID.String()}

	root := &Group{base: base{parent: NoParent, declared: info}, typ: info}
	b.add(root)
	b.fields(root, info, segments, false, make(map[string]string))

	if b.diags.HasErrors() {
		return nil, &bindrt.SchemaDefectError{Op: "register", Type: b.root, Err: b.diags.Err()}
	}

	return t, nil
}

func (b *builder) add(n Node) NodeID {
	id := NodeID(len(b.tree.nodes))
	n.(interface{ setID(NodeID) }).setID(id)
	b.tree.nodes = append(b.tree.nodes, n)

	return id
}

func (b *base) setID(id NodeID) {
	b.id = id
}

// fields adds the children of g. static holds the key segments of g, dynamic
// is true below a collection where keys are patterns. seen maps the segments
// already used in g (flattened groups share it) to their Go field.
func (b *builder) fields(g *Group, info *describe.TypeInfo, static []string, dynamic bool, seen map[string]string) {
	for i := range info.Fields {
		f := &info.Fields[i]
		key := b.key(static, f)

		if f.Flatten {
			if f.Type.Kind != describe.TypeKindStruct || !f.Type.IsNamed() {
				b.diags.Errorf(b.root, key, CodeFlatten, "only named struct fields can be flattened, got %s", f.Type)
				continue
			}

			if f.HasDefault {
				b.diags.Errorf(b.root, key, CodeMisplacedDefault, "defaults apply to scalar fields only")
			}

			child := &Group{
				base: base{parent: g.id, field: f.GoName, index: f.Index, declared: f.Type, docKey: f.Doc},
				typ:  f.Type,
			}
			g.children = append(g.children, b.add(child))
			b.fields(child, f.Type, static, dynamic, seen)

			continue
		}

		if f.Name == "" || strings.ContainsAny(f.Name, ".[]\"") {
			b.diags.Errorf(b.root, key, CodeInvalidSegment, "invalid segment %q", f.Name)
			continue
		}

		if other, dup := seen[f.Name]; dup {
			b.diags.Errorf(b.root, key, CodeDuplicateSegment, "segment %q is used by fields %s and %s", f.Name, other, f.GoName)

			continue
		}

		seen[f.Name] = f.GoName

		childStatic := append(slices.Clip(static), f.Name)
		spec := nodeSpec{
			parent:  g.id,
			segment: f.Name,
			field:   f,
			typ:     f.Type,
			static:  childStatic,
			dynamic: dynamic,
			key:     key,
		}

		if id, ok := b.node(spec); ok {
			g.children = append(g.children, id)
		}
	}
}

type nodeSpec struct {
	parent   NodeID
	segment  string
	consumes bool
	field    *describe.FieldInfo // nil for element templates
	doc      string
	typ      *describe.TypeInfo
	static   []string
	dynamic  bool
	key      string
}

func (b *builder) node(s nodeSpec) (NodeID, bool) {
	bs := base{
		parent:   s.parent,
		segment:  s.segment,
		consumes: s.consumes,
		docKey:   s.doc,
		declared: s.typ,
	}

	var def string

	hasDefault := false

	if s.field != nil {
		bs.field = s.field.GoName
		bs.index = s.field.Index
		bs.docKey = s.field.Doc
		def, hasDefault = s.field.Default, s.field.HasDefault
	}

	if pt, optional, ok := leafType(s.typ); ok {
		leaf := &Leaf{base: bs, typ: pt, optional: optional, def: def, hasDefault: hasDefault}
		if hasDefault && !s.dynamic {
			b.tree.defaults[cursor.Join(s.static)] = def
		}

		return b.add(leaf), true
	}

	if hasDefault {
		b.diags.Errorf(b.root, s.key, CodeMisplacedDefault, "defaults apply to scalar fields only")
	}

	t := s.typ

	switch {
	case t.Kind == describe.TypeKindStruct, t.Kind == describe.TypeKindPointer && t.Elem.Kind == describe.TypeKindStruct:
		st := t.Deref()
		if !st.IsNamed() {
			b.diags.Errorf(b.root, s.key, CodeAnonymousStruct, "anonymous struct types are not supported")
			return 0, false
		}

		group := &Group{base: bs, typ: st, pointer: t.Kind == describe.TypeKindPointer}
		id := b.add(group)
		b.fields(group, st, s.static, s.dynamic, make(map[string]string))

		return id, true

	case t.Kind == describe.TypeKindSlice:
		elem := t.Elem
		if elem.Deref().Kind != describe.TypeKindStruct {
			b.diags.Errorf(b.root, s.key, CodeUnsupportedType, "unsupported slice type %s", t)
			return 0, false
		}

		return b.collection(bs, s, false, elem)

	case t.Kind == describe.TypeKindMap:
		if t.Key.Kind != describe.TypeKindScalar || t.Key.Scalar != primitive.KindString || t.Key.ID.PkgPath != "" {
			b.diags.Errorf(b.root, s.key, CodeMapKey, "map keys must be string, got %s", t.Key)
			return 0, false
		}

		elem := t.Elem
		if elem.Kind == describe.TypeKindStruct {
			b.diags.Errorf(b.root, s.key, CodeMapValue, "map values of struct type must be pointers, got %s", t)
			return 0, false
		}

		if _, optional, ok := leafType(elem); (!ok || optional) && elem.Deref().Kind != describe.TypeKindStruct {
			b.diags.Errorf(b.root, s.key, CodeUnsupportedType, "unsupported map type %s", t)
			return 0, false
		}

		return b.collection(bs, s, true, elem)
	}

	b.diags.Errorf(b.root, s.key, CodeUnsupportedType, "unsupported field type %s", t)

	return 0, false
}

func (b *builder) collection(bs base, s nodeSpec, keyed bool, elem *describe.TypeInfo) (NodeID, bool) {
	bs.consumes = true

	coll := &Collection{base: bs, keyed: keyed}
	id := b.add(coll)

	wildcard := IndexedWildcard
	if keyed {
		wildcard = KeyedWildcard
	}

	static := append(slices.Clip(s.static), wildcard)

	elemID, ok := b.node(nodeSpec{
		parent:   id,
		consumes: true,
		doc:      bs.docKey,
		typ:      elem,
		static:   static,
		dynamic:  true,
		key:      cursor.Join(static),
	})
	if !ok {
		return 0, false
	}

	coll.elem = elemID

	return id, true
}

// leafType classifies scalar, optional scalar and scalar list types.
func leafType(t *describe.TypeInfo) (pt primitive.Type, optional, ok bool) {
	switch t.Kind {
	case describe.TypeKindScalar:
		return primitive.Of(t.Scalar), false, true
	case describe.TypeKindPointer:
		if t.Elem.Kind == describe.TypeKindScalar {
			return primitive.Of(t.Elem.Scalar), true, true
		}
	case describe.TypeKindSlice:
		if t.Elem.Kind == describe.TypeKindScalar {
			return primitive.ListOf(t.Elem.Scalar), false, true
		}
	}

	return primitive.Type{}, false, false
}

func (b *builder) key(static []string, f *describe.FieldInfo) string {
	if f.Flatten {
		return cursor.Join(static) + "(" + f.GoName + ")"
	}

	return cursor.Join(append(slices.Clip(static), f.Name))
}
