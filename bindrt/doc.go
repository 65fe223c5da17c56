// Package bindrt is the runtime shared by the interpreted binder and by
// generated binding code.
//
// A Pass reads raw values from a source.Source, converts them with package
// primitive and expands default expressions through a per-pass expand.Cache.
// The interpreted binder turns converted values into the declared field types
// with Coerce. Generated code asserts the canonical type with Assert or
// AssertPtr and converts statically, so it binds without reflection and both
// paths assign exactly the same values.
package bindrt
