// Package emit writes Go statements for the compiled binding path.
//
// An Emitter offers the operations the compiled binder needs: load and
// invoke values, check-cast them to declared types, and call generated
// accessors. GoEmitter renders them as the body of one Go function; bodies
// of one file share an Imports set.
package emit
