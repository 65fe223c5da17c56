// Package describe provides a neutral model of configuration object types.
//
// The model is built either from runtime types with FromReflect, or from
// go/types by internal/analyze. Both read the same struct tags (see
// ParseField), so a schema registered from either description has the same
// shape.
//
// Key types:
//   - TypeID: package import path + type name
//   - TypeInfo: describes kind (scalar/struct/pointer/slice/map)
//   - FieldInfo: describes configuration name, default, doc key and type
package describe
