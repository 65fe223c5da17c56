package main

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/davecgh/go-spew/spew"
	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"confbind/schema"
)

// rootDoc documents one root type.
type rootDoc struct {
	Type    string         `yaml:"type" toml:"type"`
	Prefix  string         `yaml:"prefix" toml:"prefix"`
	Entries []schema.Entry `yaml:"entries" toml:"entries"`
}

type describeDoc struct {
	Roots []rootDoc `yaml:"roots" toml:"roots"`
}

func newDescribeCommand(a *app) *cobra.Command {
	var (
		format string
		types  []string
		debug  bool
	)

	cmd := &cobra.Command{
		Use:   "describe",
		Short: "List the keys, types and defaults of the manifest roots",
		Example: `  # Table of every key
  confbind describe

  # TOML document for one root
  confbind describe --type Server --format toml`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, reg, ids, err := a.load()
			if err != nil {
				return err
			}

			trees, err := selectRoots(reg, ids, types)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()

			if debug {
				spew.Fdump(out, trees)
				return nil
			}

			doc := describeDoc{}
			for _, t := range trees {
				doc.Roots = append(doc.Roots, rootDoc{Type: t.Type().ID.String(), Prefix: t.Prefix(), Entries: t.Entries()})
			}

			return writeDescription(out, format, doc)
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", "text", "output format (text, yaml, toml)")
	cmd.Flags().StringSliceVarP(&types, "type", "t", nil, "limit to root types (name or import/path.Name)")
	cmd.Flags().BoolVar(&debug, "debug", false, "dump the schema trees")

	return cmd
}

func writeDescription(w io.Writer, format string, doc describeDoc) error {
	switch format {
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)

		if err := enc.Encode(doc); err != nil {
			return err
		}

		return enc.Close()

	case "toml":
		return toml.NewEncoder(w).Encode(doc)

	case "text":
		tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)

		for _, root := range doc.Roots {
			fmt.Fprintf(tw, "# %s\n", root.Type)
			fmt.Fprintln(tw, "KEY\tTYPE\tDEFAULT\tDOC")

			for _, e := range root.Entries {
				def := "-"
				if e.HasDefault {
					def = fmt.Sprintf("%q", e.Default)
				}

				fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", e.Key, e.GoType, def, e.Doc)
			}

			fmt.Fprintln(tw)
		}

		return tw.Flush()
	}

	return fmt.Errorf("unknown format %q", format)
}
