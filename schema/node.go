package schema

import (
	"confbind/describe"
	"confbind/primitive"
)

// NodeID is the handle of a node inside its Tree.
type NodeID int

// NoParent is the parent handle of a tree root.
const NoParent NodeID = -1

// Node is a configuration schema node: *Leaf, *Group or *Collection.
type Node interface {
	// ID returns the handle of the node in its tree.
	ID() NodeID
	// Parent returns the handle of the enclosing node, NoParent for the root.
	Parent() NodeID
	// Segment returns the static key segment of the node. It is empty for
	// flattened groups, collection element templates and the root.
	Segment() string
	// ConsumesSegment reports whether resolving the node advances over a
	// dynamic key segment (a map key or an index). True for collections and
	// their element templates.
	ConsumesSegment() bool
	// DocKey returns the documentation key of the node.
	DocKey() string
	// Field returns the Go field name inside the enclosing group, empty for
	// element templates and the root.
	Field() string
	// FieldIndex returns the struct field index path inside the enclosing
	// group, nil for element templates and the root. Fields promoted from
	// embedded structs have paths longer than one.
	FieldIndex() []int
	// Declared returns the declared Go type of the field or element.
	Declared() *describe.TypeInfo

	node()
}

type base struct {
	id       NodeID
	parent   NodeID
	segment  string
	consumes bool
	docKey   string
	field    string
	index    []int
	declared *describe.TypeInfo
}

func (b *base) ID() NodeID                   { return b.id }
func (b *base) Parent() NodeID               { return b.parent }
func (b *base) Segment() string              { return b.segment }
func (b *base) ConsumesSegment() bool        { return b.consumes }
func (b *base) DocKey() string               { return b.docKey }
func (b *base) Field() string                { return b.field }
func (b *base) FieldIndex() []int            { return b.index }
func (b *base) Declared() *describe.TypeInfo { return b.declared }
func (b *base) node()                        {}

// Leaf is a terminal node bound to a single converted value.
type Leaf struct {
	base

	typ        primitive.Type
	optional   bool
	def        string
	hasDefault bool
}

// Type returns the conversion target of the leaf.
func (l *Leaf) Type() primitive.Type {
	return l.typ
}

// Optional reports whether the field is a pointer that stays nil when the
// value is absent or blank.
func (l *Leaf) Optional() bool {
	return l.optional
}

// Default returns the raw default expression.
func (l *Leaf) Default() string {
	return l.def
}

// HasDefault reports whether the leaf declares a default. A leaf without
// default keeps the zero value when its key is absent.
func (l *Leaf) HasDefault() bool {
	return l.hasDefault
}

// Group is a struct with ordered child nodes.
type Group struct {
	base

	typ      *describe.TypeInfo
	pointer  bool
	children []NodeID
}

// Type returns the struct type of the group.
func (g *Group) Type() *describe.TypeInfo {
	return g.typ
}

// Pointer reports whether the enclosing field or element is a pointer to the
// struct, allocated during the pass.
func (g *Group) Pointer() bool {
	return g.pointer
}

// Flattened reports whether the group shares the key segments of its parent.
func (g *Group) Flattened() bool {
	return g.parent != NoParent && g.segment == "" && !g.consumes
}

// Collection is a map with string keys (keyed) or a slice (indexed) of
// elements described by one template node.
type Collection struct {
	base

	keyed       bool
	elem        NodeID
}

// Keyed reports whether elements are addressed by map key rather than index.
func (c *Collection) Keyed() bool {
	return c.keyed
}

// Elem returns the handle of the element template.
func (c *Collection) Elem() NodeID {
	return c.elem
}
