package schema

import (
	"errors"
	"fmt"
	"maps"
	"slices"
	"strings"

	"confbind/bindrt"
	"confbind/cursor"
	"confbind/internal/diagnostic"
	"confbind/internal/match"
	"confbind/primitive"
	"confbind/source"
)

// ErrUnknownKey is returned for keys that do not name a leaf of a tree.
var ErrUnknownKey = errors.New("unknown configuration key")

// Diagnostic codes reported by Validate.
const (
	CodeUnknownKey = "unknown-key"
	CodeConversion = "conversion"
	CodeDefault    = "default"
)

// Step is one node visited while resolving a key.
type Step struct {
	Node     Node
	Matched  string   // static segment matched by the node, empty for the root, flattened groups and element templates
	Consumed []string // dynamic segments consumed by the node
}

// Resolution is the result of resolving a concrete key.
type Resolution struct {
	Leaf   *Leaf
	Cursor *cursor.Cursor // positioned after the last segment
	Trace  []Step
}

// Consumed returns the number of dynamic segments n consumed, or -1 when n
// was not visited.
func (r *Resolution) Consumed(n Node) int {
	for _, step := range r.Trace {
		if step.Node.ID() == n.ID() {
			return len(step.Consumed)
		}
	}

	return -1
}

// Resolve walks key from the root. Groups match static child segments
// (flattened groups are searched transparently), collections consume one
// dynamic segment, and the walk must end on a leaf.
func (t *Tree) Resolve(key string) (*Resolution, error) {
	segments, err := cursor.Split(key)
	if err != nil {
		return nil, fmt.Errorf("%w %q: %w", ErrUnknownKey, key, err)
	}

	unknown := func(reason string) error {
		return fmt.Errorf("%w %q: %s", ErrUnknownKey, key, reason)
	}

	if len(segments) < len(t.segments) || !slices.Equal(segments[:len(t.segments)], t.segments) {
		return nil, unknown("outside of prefix " + t.prefix)
	}

	c := cursor.New(segments...)
	for range len(segments) - len(t.segments) {
		c.Previous()
	}

	res := &Resolution{Cursor: c, Trace: []Step{{Node: t.Root()}}}

	var node Node = t.Root()

	for {
		switch n := node.(type) {
		case *Leaf:
			if c.HasNext() {
				return nil, unknown("names a scalar field")
			}

			res.Leaf = n

			return res, nil

		case *Group:
			if !c.HasNext() {
				return nil, unknown("names a group")
			}

			seg := c.Next()

			path, ok := t.child(n, seg)
			if !ok {
				return nil, unknown(fmt.Sprintf("no field %q in %s", seg, n.Type().ID))
			}

			for _, flat := range path[:len(path)-1] {
				res.Trace = append(res.Trace, Step{Node: flat})
			}

			child := path[len(path)-1]
			step := Step{Node: child, Matched: seg}

			coll, isColl := child.(*Collection)
			if !isColl {
				res.Trace = append(res.Trace, step)
				node = child

				continue
			}

			if !c.HasNext() {
				return nil, unknown("names a collection")
			}

			if cursor.IsIndex(c.PeekNext()) == coll.Keyed() {
				return nil, unknown(fmt.Sprintf("bad element segment %q", c.PeekNext()))
			}

			step.Consumed = []string{c.Next()}
			res.Trace = append(res.Trace, step)

			node = t.Elem(coll)
			res.Trace = append(res.Trace, Step{Node: node})

		default:
			return nil, &bindrt.SchemaDefectError{Op: "resolve", Type: t.typ.ID.String(), Field: key, Err: fmt.Errorf("unexpected node %T", n)}
		}
	}
}

// child finds the child of g with segment seg, descending into flattened
// groups. The returned path ends with the child.
func (t *Tree) child(g *Group, seg string) ([]Node, bool) {
	for _, child := range t.Children(g) {
		if sub, ok := child.(*Group); ok && sub.Flattened() {
			if path, found := t.child(sub, seg); found {
				return append([]Node{sub}, path...), true
			}

			continue
		}

		if child.Segment() == seg {
			return []Node{child}, true
		}
	}

	return nil, false
}

// Validate checks src against the tree without binding: keys under the
// prefix must resolve to a leaf and convert to its type, and the defaults of
// absent static keys must expand and convert. Unknown keys are warnings with
// suggestions; conversion and expansion failures are errors.
func (t *Tree) Validate(src source.Source) *diagnostic.Diagnostics {
	var d diagnostic.Diagnostics

	typ := t.typ.ID.String()

	var known []string
	for _, e := range t.Entries() {
		known = append(known, e.Key)
	}

	keys := src.Keys()
	slices.Sort(keys)

	for _, key := range keys {
		if !t.covers(key) {
			continue
		}

		res, err := t.Resolve(key)
		if err != nil {
			d.Warn(typ, key, CodeUnknownKey, "unrecognized configuration key", match.Suggest(key, known, 3)...)
			continue
		}

		raw, _ := src.Lookup(key)
		if !res.Leaf.Type().List && strings.TrimSpace(raw) == "" {
			continue
		}

		if _, err := primitive.Convert(raw, res.Leaf.Type()); err != nil {
			d.Errorf(typ, key, CodeConversion, "cannot convert %q to %s: %v", raw, res.Leaf.Type(), err)
		}
	}

	p := bindrt.NewPass(src, t.defaults)

	for _, key := range slices.Sorted(maps.Keys(t.defaults)) {
		if _, ok := src.Lookup(key); ok {
			continue
		}

		res, err := t.Resolve(key)
		if err != nil {
			d.Errorf(typ, key, CodeDefault, "%v", err)
			continue
		}

		if _, err := p.Default(key, t.defaults[key], res.Leaf.Type()); err != nil {
			d.Errorf(typ, key, CodeDefault, "%v", err)
		}
	}

	return &d
}

func (t *Tree) covers(key string) bool {
	if t.prefix == "" || key == t.prefix {
		return true
	}

	return strings.HasPrefix(key, t.prefix+".") || strings.HasPrefix(key, t.prefix+"[")
}
