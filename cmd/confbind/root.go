package main

import (
	"fmt"
	"io"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"confbind/describe"
	"confbind/internal/analyze"
	"confbind/internal/logging"
	"confbind/internal/manifest"
	"confbind/schema"
)

// app carries the state shared by the subcommands.
type app struct {
	stdout io.Writer
	stderr io.Writer
	logger zerolog.Logger

	logLevel  string
	logFormat string
	manifest  string
}

func newRootCommand(stdout, stderr io.Writer) *cobra.Command {
	a := &app{stdout: stdout, stderr: stderr, logger: zerolog.Nop()}

	rootCmd := &cobra.Command{
		Use:   "confbind",
		Short: "Bind configuration sources to Go struct schemas",
		Long: `confbind describes configuration structs, generates binding code for them
and checks configuration files against them.

Struct fields are configured with tags:
  config:"name"      key segment (kebab-case of the field name by default)
  config:"-"         ignored field
  config:",flatten"  struct fields share the keys of the parent
  default:"expr"     default expression, ${key} and ${key:fallback} expand
  doc:"key"          documentation key`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			logger, err := logging.Setup(a.stderr, logging.Config{Level: a.logLevel, Format: a.logFormat})
			if err != nil {
				return err
			}

			a.logger = logger

			return nil
		},
	}

	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)

	rootCmd.PersistentFlags().StringVar(&a.logLevel, "log-level", "warn", "log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().StringVar(&a.logFormat, "log-format", "text", "log format (text, json)")
	rootCmd.PersistentFlags().StringVarP(&a.manifest, "manifest", "m", "confbind.yaml", "generation manifest")

	rootCmd.AddCommand(newGenCommand(a))
	rootCmd.AddCommand(newDescribeCommand(a))
	rootCmd.AddCommand(newCheckCommand(a))

	return rootCmd
}

// load reads the manifest and registers its root types, described from the
// loaded packages.
func (a *app) load() (*manifest.Manifest, *schema.Registry, []describe.TypeID, error) {
	m, err := manifest.LoadFile(a.manifest)
	if err != nil {
		return nil, nil, nil, err
	}

	an := analyze.NewAnalyzer()
	if err := an.LoadPackages(m.Load...); err != nil {
		return nil, nil, nil, err
	}

	reg := schema.NewRegistry()
	ids := make([]describe.TypeID, 0, len(m.Roots))

	for _, root := range m.Roots {
		id := root.TypeID()

		info, err := an.GetStruct(id)
		if err != nil {
			return nil, nil, nil, fmt.Errorf("root %s: %w", root.Type, err)
		}

		if _, err := reg.Register(root.Prefix, info); err != nil {
			return nil, nil, nil, err
		}

		a.logger.Debug().Str("type", id.String()).Str("prefix", root.Prefix).Msg("root registered")

		ids = append(ids, id)
	}

	return m, reg, ids, nil
}

// selectRoots keeps the trees of the roots named by types (Go type names or
// full references), or every root when types is empty.
func selectRoots(reg *schema.Registry, ids []describe.TypeID, types []string) ([]*schema.Tree, error) {
	var out []*schema.Tree

	for _, id := range ids {
		tree, _ := reg.Tree(id)
		if len(types) == 0 {
			out = append(out, tree)
			continue
		}

		for _, name := range types {
			if name == id.Name || name == id.String() {
				out = append(out, tree)
				break
			}
		}
	}

	if len(out) == 0 {
		return nil, fmt.Errorf("no root type matches %v", types)
	}

	return out, nil
}
