// Package fixturebind holds the generated binding code of the fixture types.
// It is compared against the interpreted binder in equivalence tests.
package fixturebind
