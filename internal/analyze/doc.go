// Package analyze describes configuration types of Go packages loaded with
// golang.org/x/tools/go/packages.
//
// It produces the same describe.TypeInfo model as describe.FromReflect, so
// the code generator can build schema trees for packages it does not link
// against. Descriptions have no reflect.Type.
package analyze
