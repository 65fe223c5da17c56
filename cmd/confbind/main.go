// Package main provides the CLI entrypoint for confbind.
//
// confbind binds configuration sources to Go struct schemas. The tool:
//   - Loads Go packages (go/types) to describe configuration structs
//   - Generates reflection-free binding code from a YAML manifest
//   - Lists the keys, types and defaults of a schema
//   - Checks configuration files against a schema
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCommand(os.Stdout, os.Stderr).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
