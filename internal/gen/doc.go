// Package gen renders compiled binding routines into Go source files.
//
// Generation approach uses text/template + go/format for readable,
// allocation-light Go code. One file holds, for every root type:
//   - the default expression index passed to the pass
//   - an exported Bind<Type> entry point
//   - one function per group, collection and leaf of the schema tree
//
// followed by the accessor functions shared by all routines of the file.
package gen
