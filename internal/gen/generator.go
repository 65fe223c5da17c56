package gen

import (
	"bytes"
	"fmt"
	"go/format"
	"text/template"

	"github.com/rs/zerolog"

	"confbind/compiler"
	"confbind/describe"
	"confbind/emit"
	"confbind/schema"
)

// Import paths the entry functions refer to.
const (
	pkgBindrt = "confbind/bindrt"
	pkgCursor = "confbind/cursor"
	pkgSource = "confbind/source"
)

// GeneratorConfig holds configuration for code generation.
type GeneratorConfig struct {
	// PackageName is the name of the generated package.
	PackageName string
	// PackagePath is the import path of the generated package. Types of that
	// package are referred to without qualifier.
	PackagePath string
	// OutputDir is the directory where generated files are written.
	OutputDir string
	// Filename is the name of the generated file.
	Filename string
	// FoldDefaults emits literal defaults as Go literals.
	FoldDefaults bool
}

// DefaultGeneratorConfig returns the default generator configuration.
func DefaultGeneratorConfig() GeneratorConfig {
	return GeneratorConfig{
		PackageName:  "configbind",
		OutputDir:    "./generated",
		Filename:     "confbind_gen.go",
		FoldDefaults: true,
	}
}

// Generator renders the binding routines of registered root types into one
// Go file.
type Generator struct {
	config GeneratorConfig
	logger zerolog.Logger
}

// NewGenerator creates a new Generator with the given configuration.
func NewGenerator(config GeneratorConfig) *Generator {
	return &Generator{config: config, logger: zerolog.Nop()}
}

// WithLogger sets the logger of g and returns g.
func (g *Generator) WithLogger(logger zerolog.Logger) *Generator {
	g.logger = logger
	return g
}

// GeneratedFile represents a generated Go source file.
type GeneratedFile struct {
	// Filename is the name of the file (e.g., "confbind_gen.go").
	Filename string
	// Content is the formatted Go source code.
	Content []byte
}

// routineData feeds the entry point section of the template.
type routineData struct {
	Entry       string
	Init        string
	Type        string
	Prefix      string
	DefaultsVar string
	Defaults    []compiler.Default
}

type templateData struct {
	PackageName string
	Imports     []emit.ImportSpec
	Source      string
	Option      string
	NewPass     string
	MustParse   string
	Routines    []routineData
	Funcs       []compiler.Func
}

// Generate emits the routines of roots, in order, into one file. Accessors
// are shared between the routines so each is declared once.
func (g *Generator) Generate(reg *schema.Registry, roots []describe.TypeID) (*GeneratedFile, error) {
	if len(roots) == 0 {
		return nil, fmt.Errorf("no root types to generate")
	}

	imports := emit.NewImports(g.config.PackagePath)
	acc := compiler.NewAccessors()
	newEmitter := func() emit.Emitter { return emit.NewGoEmitter(imports) }

	data := &templateData{PackageName: g.config.PackageName}
	entries := make(map[string]describe.TypeID)

	for _, id := range roots {
		r, err := compiler.EmitBindAll(reg, id, newEmitter,
			compiler.WithAccessors(acc),
			compiler.WithFoldDefaults(g.config.FoldDefaults),
			compiler.WithLogger(g.logger),
		)
		if err != nil {
			return nil, fmt.Errorf("generating %s: %w", id, err)
		}

		if other, dup := entries[r.Entry()]; dup {
			return nil, fmt.Errorf("generating %s: %s is already generated for %s", id, r.Entry(), other)
		}

		entries[r.Entry()] = id

		data.Routines = append(data.Routines, routineData{
			Entry:       r.Entry(),
			Init:        r.Init,
			Type:        r.Tree.Type().Expr(imports.Qualify),
			Prefix:      r.Tree.Prefix(),
			DefaultsVar: r.DefaultsVar(),
			Defaults:    r.Defaults,
		})
		data.Funcs = append(data.Funcs, r.Funcs...)

		g.logger.Debug().Str("type", id.String()).Int("funcs", len(r.Funcs)).Msg("routine generated")
	}

	data.Funcs = append(data.Funcs, acc.Funcs(imports.Qualify)...)
	data.Source = qualify(imports, pkgSource, "Source")
	data.Option = qualify(imports, pkgBindrt, "Option")
	data.NewPass = qualify(imports, pkgBindrt, "NewPass")
	data.MustParse = qualify(imports, pkgCursor, "MustParse")
	data.Imports = imports.Specs()

	return g.render(data)
}

func (g *Generator) render(data *templateData) (*GeneratedFile, error) {
	var buf bytes.Buffer
	if err := bindTemplate.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("executing template: %w", err)
	}

	formatted, err := format.Source(buf.Bytes())
	if err != nil {
		if g.config.OutputDir != "" {
			_ = writeDebugUnformatted(g.config.OutputDir, g.config.Filename, buf.Bytes())
		}

		return &GeneratedFile{
			Filename: g.config.Filename,
			Content:  buf.Bytes(),
		}, fmt.Errorf("formatting code: %w", err)
	}

	return &GeneratedFile{
		Filename: g.config.Filename,
		Content:  formatted,
	}, nil
}

func qualify(imports *emit.Imports, pkgPath, name string) string {
	if q := imports.Qualify(pkgPath); q != "" {
		return q + "." + name
	}

	return name
}

var bindTemplate = template.Must(template.New("bind").Parse(`// Code generated by confbind. DO NOT EDIT.

package {{.PackageName}}

{{if .Imports}}
import (
{{range .Imports}}	{{if .Alias}}{{.Alias}} {{end}}"{{.Path}}"
{{end}})
{{end}}
{{range .Routines}}
// {{.DefaultsVar}} holds the default expressions of {{.Type}} by key.
var {{.DefaultsVar}} = map[string]string{
{{range .Defaults}}	{{printf "%q" .Key}}: {{printf "%q" .Expression}},
{{end}}}

// {{.Entry}} binds src to a new {{.Type}}.
func {{.Entry}}(src {{$.Source}}, opts ...{{$.Option}}) (*{{.Type}}, error) {
	p := {{$.NewPass}}(src, {{.DefaultsVar}}, opts...)
	c := {{$.MustParse}}({{printf "%q" .Prefix}})
	target := new({{.Type}})

	if err := {{.Init}}(c, p, target); err != nil {
		return nil, err
	}

	p.Finish(c)

	return target, nil
}
{{end}}
{{range .Funcs}}
{{if .Doc}}// {{.Doc}}
{{end}}func {{.Name}}({{.Params}}){{if .Results}} {{.Results}}{{end}} {
{{.Body}}}
{{end}}`))
