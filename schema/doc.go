// Package schema models configuration objects as trees of nodes.
//
// A Tree is built from a describe.TypeInfo and holds three node kinds:
//   - Leaf: a scalar, optional scalar or comma separated list field
//   - Group: a struct whose fields are child nodes
//   - Collection: a map with string keys or a slice of structs, whose elements
//     are described by one template node that consumes a dynamic key segment
//
// Nodes are stored in an arena owned by the tree and refer to their parent
// by NodeID. A Registry maps root types and key prefixes to trees. Trees are
// built once and read-only afterwards.
package schema
