package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"confbind/internal/gen"
)

func newGenCommand(a *app) *cobra.Command {
	var verify bool

	cmd := &cobra.Command{
		Use:   "gen",
		Short: "Generate binding code for the roots of a manifest",
		Long: `Generate one Go file holding a Bind<Type> function for every root type of
the manifest. The generated code binds without reflection and behaves like
the interpreted binder.`,
		Example: `  # Generate next to the manifest
  confbind gen --manifest internal/config/bind/confbind.yaml

  # Fail when the checked-in file is out of date
  confbind gen --manifest internal/config/bind/confbind.yaml --verify`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			m, reg, ids, err := a.load()
			if err != nil {
				return err
			}

			g := gen.NewGenerator(gen.GeneratorConfig{
				PackageName:  m.Package,
				PackagePath:  m.PackagePath,
				OutputDir:    m.OutputDir(),
				Filename:     m.Filename,
				FoldDefaults: m.Fold(),
			}).WithLogger(a.logger)

			file, err := g.Generate(reg, ids)
			if err != nil {
				return err
			}

			if verify {
				if err := gen.Verify(*file, m.OutputDir()); err != nil {
					return err
				}

				fmt.Fprintf(cmd.OutOrStdout(), "%s is up to date\n", file.Filename)

				return nil
			}

			if err := gen.WriteFiles([]gen.GeneratedFile{*file}, m.OutputDir()); err != nil {
				return err
			}

			a.logger.Info().Str("dir", m.OutputDir()).Str("file", file.Filename).Int("roots", len(ids)).Msg("binding code generated")

			return nil
		},
	}

	cmd.Flags().BoolVar(&verify, "verify", false, "compare with the file on disk instead of writing it")

	return cmd
}
