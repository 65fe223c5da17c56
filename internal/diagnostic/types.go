package diagnostic

import (
	"errors"
	"fmt"
	"strings"
)

// Severity of a diagnostic.
type Severity int

const (
	SeverityWarning Severity = iota
	SeverityError
)

// String returns a human-readable severity name.
func (s Severity) String() string {
	switch s {
	case SeverityWarning:
		return "warning"
	case SeverityError:
		return "error"
	default:
		return "unknown"
	}
}

// Diagnostic is one finding about a configuration type or key.
type Diagnostic struct {
	Severity Severity
	// Code classifies the finding, e.g. "unknown-key".
	Code    string
	Message string
	// Type is the root type the finding belongs to, if any.
	Type string
	// Key is the configuration key the finding is about, if any.
	Key string
	// Suggestions are known keys the user may have meant.
	Suggestions []string
}

// String renders d as "[Type] Key: [code] message (did you mean ...?)",
// omitting empty parts.
func (d Diagnostic) String() string {
	var sb strings.Builder

	if d.Type != "" {
		sb.WriteString("[" + d.Type + "]")
	}

	if d.Key != "" {
		if sb.Len() > 0 {
			sb.WriteByte(' ')
		}

		sb.WriteString(d.Key)
	}

	if sb.Len() > 0 {
		sb.WriteString(": ")
	}

	if d.Code != "" {
		sb.WriteString("[" + d.Code + "] ")
	}

	sb.WriteString(d.Message)

	if len(d.Suggestions) > 0 {
		sb.WriteString(" (did you mean " + strings.Join(d.Suggestions, ", ") + "?)")
	}

	return sb.String()
}

// Diagnostics collects the findings of one registration or check.
// The zero value is ready to use.
type Diagnostics struct {
	Errors   []Diagnostic
	Warnings []Diagnostic
}

// Add files d under its severity.
func (d *Diagnostics) Add(diag Diagnostic) {
	if diag.Severity == SeverityError {
		d.Errors = append(d.Errors, diag)
		return
	}

	d.Warnings = append(d.Warnings, diag)
}

// Errorf adds an error with a formatted message.
func (d *Diagnostics) Errorf(typ, key, code, format string, args ...any) {
	d.Add(Diagnostic{
		Severity: SeverityError,
		Code:     code,
		Message:  fmt.Sprintf(format, args...),
		Type:     typ,
		Key:      key,
	})
}

// Warn adds a warning.
func (d *Diagnostics) Warn(typ, key, code, message string, suggestions ...string) {
	d.Add(Diagnostic{
		Severity:    SeverityWarning,
		Code:        code,
		Message:     message,
		Type:        typ,
		Key:         key,
		Suggestions: suggestions,
	})
}

// HasErrors reports whether any error was added.
func (d *Diagnostics) HasErrors() bool {
	return len(d.Errors) > 0
}

// Merge appends the findings of other.
func (d *Diagnostics) Merge(other Diagnostics) {
	d.Errors = append(d.Errors, other.Errors...)
	d.Warnings = append(d.Warnings, other.Warnings...)
}

// All returns errors before warnings.
func (d *Diagnostics) All() []Diagnostic {
	return append(append(make([]Diagnostic, 0, len(d.Errors)+len(d.Warnings)), d.Errors...), d.Warnings...)
}

// Err joins the errors into one, or returns nil when there are none.
// Warnings do not make an error.
func (d *Diagnostics) Err() error {
	if !d.HasErrors() {
		return nil
	}

	msgs := make([]string, len(d.Errors))
	for i, e := range d.Errors {
		msgs[i] = e.String()
	}

	return errors.New(strings.Join(msgs, "; "))
}
