package bindrt

import (
	"fmt"
)

// SchemaDefectError reports a mismatch between a schema and the Go types it
// describes: an unsupported field, a target of the wrong type, a node kind no
// binder handles. It indicates a programming error and is never retried.
type SchemaDefectError struct {
	Op    string // register, bind, emit
	Type  string // configuration type
	Field string // Go field or configuration key, may be empty
	Err   error
}

func (e *SchemaDefectError) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("schema defect: %s %s: %v", e.Op, e.Type, e.Err)
	}

	return fmt.Sprintf("schema defect: %s %s.%s: %v", e.Op, e.Type, e.Field, e.Err)
}

func (e *SchemaDefectError) Unwrap() error {
	return e.Err
}

// ConversionError reports a configuration value or an expanded default that
// cannot be converted to the type of its field.
type ConversionError struct {
	Key      string
	Expected string
	Value    string
	Default  bool
	Err      error
}

func (e *ConversionError) Error() string {
	what := "value"
	if e.Default {
		what = "default"
	}

	return fmt.Sprintf("key %s: cannot convert %s %q to %s: %v", e.Key, what, e.Value, e.Expected, e.Err)
}

func (e *ConversionError) Unwrap() error {
	return e.Err
}

// DefaultError reports a default expression that cannot be expanded. Err is
// an *expand.CycleError, an *expand.UnresolvedError or a syntax error.
type DefaultError struct {
	Key        string
	Expression string
	Err        error
}

func (e *DefaultError) Error() string {
	return fmt.Sprintf("key %s: default %q: %v", e.Key, e.Expression, e.Err)
}

func (e *DefaultError) Unwrap() error {
	return e.Err
}
