package schema

import (
	"maps"
	"slices"

	"confbind/cursor"
	"confbind/describe"
)

// Segments rendered in key patterns for collection elements.
const (
	KeyedWildcard   = "*"
	IndexedWildcard = "[*]"
)

// Tree is the schema of one registered root group. Nodes live in an arena
// and refer to their parent by handle. A Tree is read-only once registered
// and safe for concurrent readers.
type Tree struct {
	prefix   string
	segments []string
	nodes    []Node
	defaults map[string]string
	typ      *describe.TypeInfo
}

// Prefix returns the key prefix the root group is registered under.
func (t *Tree) Prefix() string {
	return t.prefix
}

// PrefixCursor returns a new cursor over the prefix, positioned at its end.
func (t *Tree) PrefixCursor() *cursor.Cursor {
	return cursor.New(slices.Clone(t.segments)...)
}

// Type returns the root struct type.
func (t *Tree) Type() *describe.TypeInfo {
	return t.typ
}

// Root returns the root group.
func (t *Tree) Root() *Group {
	return t.nodes[0].(*Group)
}

// Len returns the number of nodes.
func (t *Tree) Len() int {
	return len(t.nodes)
}

// Node returns the node with the given handle.
func (t *Tree) Node(id NodeID) Node {
	return t.nodes[id]
}

// ParentOf returns the enclosing node of n, nil for the root.
func (t *Tree) ParentOf(n Node) Node {
	if n.Parent() == NoParent {
		return nil
	}

	return t.nodes[n.Parent()]
}

// Children returns the children of g in declaration order.
func (t *Tree) Children(g *Group) []Node {
	out := make([]Node, len(g.children))
	for i, id := range g.children {
		out[i] = t.nodes[id]
	}

	return out
}

// Elem returns the element template of c.
func (t *Tree) Elem(c *Collection) Node {
	return t.nodes[c.elem]
}

// Defaults returns the default expressions of all leaves reachable through
// static segments only, indexed by full key.
func (t *Tree) Defaults() map[string]string {
	return maps.Clone(t.defaults)
}

// Path returns the key pattern of n: static segments, with KeyedWildcard and
// IndexedWildcard standing for collection elements.
func (t *Tree) Path(n Node) string {
	return cursor.Join(t.pathSegments(n))
}

func (t *Tree) pathSegments(n Node) []string {
	var rev []string

	for cur := n; cur != nil; cur = t.ParentOf(cur) {
		switch {
		case cur.Segment() != "":
			rev = append(rev, cur.Segment())
		case cur.ConsumesSegment():
			if coll, ok := t.ParentOf(cur).(*Collection); ok && coll.Keyed() {
				rev = append(rev, KeyedWildcard)
			} else {
				rev = append(rev, IndexedWildcard)
			}
		}
	}

	slices.Reverse(rev)

	return append(slices.Clone(t.segments), rev...)
}

// Walk visits every node depth first in declaration order, parents before
// children. Returning false from fn skips the children of a node.
func (t *Tree) Walk(fn func(Node) bool) {
	var visit func(Node)
	visit = func(n Node) {
		if !fn(n) {
			return
		}

		switch n := n.(type) {
		case *Group:
			for _, child := range t.Children(n) {
				visit(child)
			}
		case *Collection:
			visit(t.Elem(n))
		}
	}

	visit(t.Root())
}

// Entry documents one leaf of a tree.
type Entry struct {
	Key        string `yaml:"key" toml:"key"`
	Type       string `yaml:"type" toml:"type"`
	GoType     string `yaml:"go-type" toml:"go-type"`
	Default    string `yaml:"default,omitempty" toml:"default,omitempty"`
	HasDefault bool   `yaml:"has-default" toml:"has-default"`
	Optional   bool   `yaml:"optional,omitempty" toml:"optional,omitempty"`
	Doc        string `yaml:"doc,omitempty" toml:"doc,omitempty"`
}

// Entries lists every leaf in declaration order.
func (t *Tree) Entries() []Entry {
	var out []Entry

	t.Walk(func(n Node) bool {
		leaf, ok := n.(*Leaf)
		if !ok {
			return true
		}

		out = append(out, Entry{
			Key:        t.Path(leaf),
			Type:       leaf.Type().String(),
			GoType:     leaf.Declared().String(),
			Default:    leaf.Default(),
			HasDefault: leaf.HasDefault(),
			Optional:   leaf.Optional(),
			Doc:        leaf.DocKey(),
		})

		return true
	})

	return out
}
