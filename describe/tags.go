package describe

import (
	"reflect"
	"strings"
	"unicode"
)

// Struct tag keys understood by ParseField.
const (
	TagConfig  = "config"
	TagDefault = "default"
	TagDoc     = "doc"
)

// ParseField reads the configuration tags of a struct field. skip is true
// for fields tagged `config:"-"`. Embedded fields are flattened unless the
// tag names them.
//
// Recognized forms:
//
//	config:"name"          segment name (default: kebab-case of the Go name)
//	config:",flatten"      no segment, children join the enclosing group
//	config:"-"             not a configuration field
//	default:"expr"         default expression, may reference other keys
//	doc:"key"              documentation key
func ParseField(goName string, tag reflect.StructTag, embedded bool) (field FieldInfo, skip bool) {
	field.GoName = goName

	cfg, hasCfg := tag.Lookup(TagConfig)
	if cfg == "-" {
		return field, true
	}

	name, opts, _ := strings.Cut(cfg, ",")
	name = strings.TrimSpace(name)

	for _, opt := range strings.Split(opts, ",") {
		if strings.TrimSpace(opt) == "flatten" {
			field.Flatten = true
		}
	}

	if embedded && (!hasCfg || name == "") {
		field.Flatten = true
	}

	switch {
	case field.Flatten:
		field.Name = ""
	case name != "":
		field.Name = name
	default:
		field.Name = KebabCase(goName)
	}

	field.Default, field.HasDefault = tag.Lookup(TagDefault)
	field.Doc = tag.Get(TagDoc)

	return field, false
}

// KebabCase converts a Go identifier to its kebab-case configuration name:
// HTTPPort becomes http-port, MaxConns becomes max-conns.
func KebabCase(name string) string {
	runes := []rune(name)

	var sb strings.Builder

	for i, r := range runes {
		if unicode.IsUpper(r) && i > 0 {
			prev := runes[i-1]
			nextLower := i+1 < len(runes) && unicode.IsLower(runes[i+1])

			if unicode.IsLower(prev) || unicode.IsDigit(prev) || (unicode.IsUpper(prev) && nextLower) {
				sb.WriteByte('-')
			}
		}

		if r == '_' {
			sb.WriteByte('-')
			continue
		}

		sb.WriteRune(unicode.ToLower(r))
	}

	return sb.String()
}
