package manifest

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"confbind/cursor"
	"confbind/describe"
)

// DefaultFilename is the name of the generated file when the manifest does
// not set one.
const DefaultFilename = "confbind_gen.go"

// Manifest describes one generated package.
type Manifest struct {
	Version      string   `yaml:"version" validate:"omitempty,oneof=1"`
	Package      string   `yaml:"package" validate:"required,goident"`
	PackagePath  string   `yaml:"package_path" validate:"required"`
	Output       string   `yaml:"output"`
	Filename     string   `yaml:"filename" validate:"endswith=.go"`
	FoldDefaults *bool    `yaml:"fold_defaults,omitempty"`
	Load         []string `yaml:"load" validate:"required,min=1,dive,required"`
	Roots        []Root   `yaml:"roots" validate:"required,min=1,dive"`

	// Dir is the directory of the manifest file; relative outputs resolve
	// against it.
	Dir string `yaml:"-"`
}

// Root is one root type to generate.
type Root struct {
	Type   string `yaml:"type" validate:"required,typeref"`
	Prefix string `yaml:"prefix" validate:"keyprefix"`
}

var (
	identPattern   = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)
	typeRefPattern = regexp.MustCompile(`^[^\s]+\.[A-Za-z_][A-Za-z0-9_]*$`)
)

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	_ = v.RegisterValidation("goident", func(fl validator.FieldLevel) bool {
		return identPattern.MatchString(fl.Field().String())
	})
	_ = v.RegisterValidation("typeref", func(fl validator.FieldLevel) bool {
		return typeRefPattern.MatchString(fl.Field().String())
	})
	_ = v.RegisterValidation("keyprefix", func(fl validator.FieldLevel) bool {
		_, err := cursor.Split(fl.Field().String())
		return err == nil
	})

	return v
}

// LoadFile loads, defaults and validates the manifest at path.
func LoadFile(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read manifest %s: %w", path, err)
	}

	m, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	m.Dir = filepath.Dir(path)

	return m, nil
}

// Parse parses and validates YAML manifest data.
func Parse(data []byte) (*Manifest, error) {
	var m Manifest

	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("failed to parse manifest YAML: %w", err)
	}

	applyDefaults(&m)

	if err := Validate(&m); err != nil {
		return nil, err
	}

	return &m, nil
}

// applyDefaults fills in default values for optional fields.
func applyDefaults(m *Manifest) {
	if m.Version == "" {
		m.Version = "1"
	}

	if m.Output == "" {
		m.Output = "."
	}

	if m.Filename == "" {
		m.Filename = DefaultFilename
	}

	if m.FoldDefaults == nil {
		fold := true
		m.FoldDefaults = &fold
	}
}

// Validate checks m, reporting every invalid field.
func Validate(m *Manifest) error {
	err := newValidator().Struct(m)
	if err == nil {
		return checkRoots(m)
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}

	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msgs = append(msgs, describeFieldError(fe))
	}

	return fmt.Errorf("invalid manifest: %s", strings.Join(msgs, "; "))
}

func describeFieldError(fe validator.FieldError) string {
	field := strings.TrimPrefix(fe.Namespace(), "Manifest.")

	switch fe.Tag() {
	case "required":
		return field + " is required"
	case "min":
		return field + " needs at least " + fe.Param() + " entry"
	case "goident":
		return fmt.Sprintf("%s %q is not a Go identifier", field, fe.Value())
	case "typeref":
		return fmt.Sprintf("%s %q is not of the form import/path.TypeName", field, fe.Value())
	case "keyprefix":
		return fmt.Sprintf("%s %q is not a valid key", field, fe.Value())
	default:
		return fmt.Sprintf("%s fails %s=%s", field, fe.Tag(), fe.Param())
	}
}

// checkRoots rejects types or prefixes listed twice.
func checkRoots(m *Manifest) error {
	types := make(map[string]bool)
	prefixes := make(map[string]bool)

	for _, r := range m.Roots {
		if types[r.Type] {
			return fmt.Errorf("invalid manifest: type %s is listed twice", r.Type)
		}

		if prefixes[r.Prefix] {
			return fmt.Errorf("invalid manifest: prefix %q is listed twice", r.Prefix)
		}

		types[r.Type] = true
		prefixes[r.Prefix] = true
	}

	return nil
}

// TypeID splits the type reference of r.
func (r Root) TypeID() describe.TypeID {
	i := strings.LastIndex(r.Type, ".")
	if i < 0 {
		return describe.TypeID{Name: r.Type}
	}

	return describe.TypeID{PkgPath: r.Type[:i], Name: r.Type[i+1:]}
}

// OutputDir returns the output directory resolved against the manifest directory.
func (m *Manifest) OutputDir() string {
	if filepath.IsAbs(m.Output) || m.Dir == "" {
		return m.Output
	}

	return filepath.Join(m.Dir, m.Output)
}

// Fold reports whether literal defaults are folded.
func (m *Manifest) Fold() bool {
	return m.FoldDefaults == nil || *m.FoldDefaults
}

// Marshal serializes m to YAML.
func Marshal(m *Manifest) ([]byte, error) {
	return yaml.Marshal(m)
}
