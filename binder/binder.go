// Package binder defines the binding contract shared by the interpreted and
// the compiled binding paths, and implements the interpreted path.
//
// Both paths walk a schema.Tree top-down in declaration order. For every
// leaf the walk asks the pass whether the source holds the leaf's key and
// calls BindValue or BindDefault accordingly. Groups are allocated when
// reached through a pointer, keyed collections bind every element key found
// in the source, and indexed collections are sized by their largest index.
//
// Cursor contract: a leaf whose ConsumesSegment is true (a map element)
// retreats the cursor by one segment so that the container can read the
// element key with PeekNext. The cursor is not advanced again afterwards and
// must not be reused once the leaf is bound.
package binder

import (
	"confbind/schema"
)

// Binder binds one leaf. C is the cursor, P the pass and T the target; the
// interpreted binder works on runtime values, the compiled binder on emitted
// code handles.
type Binder[C, P, T any] interface {
	// BindValue reads the value of the leaf key from the source, converts it
	// and assigns it.
	BindValue(leaf *schema.Leaf, c C, p P, target T) error
	// BindDefault expands and converts the leaf default and assigns it. Leaves
	// without default are left untouched.
	BindDefault(leaf *schema.Leaf, p P, target T) error
}
