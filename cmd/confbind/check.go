package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"confbind/internal/diagnostic"
	"confbind/source"
)

// errInvalidConfig is returned when a checked source has errors.
var errInvalidConfig = errors.New("configuration is invalid")

func newCheckCommand(a *app) *cobra.Command {
	var (
		types     []string
		envPrefix string
		cueSchema string
	)

	cmd := &cobra.Command{
		Use:   "check [config files...]",
		Short: "Check configuration files against the manifest roots",
		Long: `Check merges the given YAML, TOML, JSON and CUE files (later files win),
optionally overlays environment variables, and validates every key under the
prefix of each root: unknown keys are reported with suggestions, values and
defaults that do not convert are errors.`,
		Example: `  # Check two files, the second overriding the first
  confbind check base.yaml prod.toml

  # Include APP_* environment variables
  confbind check --env-prefix APP config.cue

  # Validate CUE files against the #Config definition of a schema file
  confbind check --cue-schema schema.cue config.cue`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, reg, ids, err := a.load()
			if err != nil {
				return err
			}

			trees, err := selectRoots(reg, ids, types)
			if err != nil {
				return err
			}

			var opts []source.ViperOption
			if envPrefix != "" {
				opts = append(opts, source.WithEnv(envPrefix))
			}

			if cueSchema != "" {
				schema, err := os.ReadFile(cueSchema)
				if err != nil {
					return fmt.Errorf("read CUE schema: %w", err)
				}

				opts = append(opts, source.WithCUESchema(string(schema)))
			}

			src, err := source.Load(args, opts...)
			if err != nil {
				return err
			}

			var all diagnostic.Diagnostics
			for _, t := range trees {
				all.Merge(*t.Validate(src))
			}

			out := cmd.OutOrStdout()
			for _, d := range all.All() {
				fmt.Fprintln(out, d.String())
			}

			if all.HasErrors() {
				return errInvalidConfig
			}

			a.logger.Info().Int("roots", len(trees)).Int("warnings", len(all.Warnings)).Msg("configuration is valid")

			return nil
		},
	}

	cmd.Flags().StringSliceVarP(&types, "type", "t", nil, "limit to root types (name or import/path.Name)")
	cmd.Flags().StringVar(&envPrefix, "env-prefix", "", "overlay environment variables with this prefix")
	cmd.Flags().StringVar(&cueSchema, "cue-schema", "", "CUE schema file whose #Config definition .cue files must satisfy")

	return cmd
}
