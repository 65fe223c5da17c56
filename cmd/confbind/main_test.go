package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const fixtureManifest = "../../internal/fixture/fixturebind/confbind.yaml"

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()

	var stdout, stderr bytes.Buffer

	cmd := newRootCommand(&stdout, &stderr)
	cmd.SetArgs(args)

	err := cmd.Execute()

	return stdout.String(), err
}

func writeConfig(t *testing.T, name, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	return path
}

func TestDescribe(t *testing.T) {
	tests := []struct {
		name     string
		format   string
		contains []string
	}{
		{
			name:     "text",
			format:   "text",
			contains: []string{"# confbind/internal/fixture.Small", "server.port", `"8080"`, "server.host"},
		},
		{
			name:     "yaml",
			format:   "yaml",
			contains: []string{"prefix: server", "key: server.port", "default: \"8080\""},
		},
		{
			name:     "toml",
			format:   "toml",
			contains: []string{"[[roots]]", "[[roots.entries]]", "server.host", "localhost"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := run(t, "describe", "-m", fixtureManifest, "--type", "Small", "--format", tt.format)
			require.NoError(t, err)

			for _, s := range tt.contains {
				assert.Contains(t, out, s)
			}

			assert.NotContains(t, out, "app.")
		})
	}
}

func TestDescribeUnknownFormat(t *testing.T) {
	_, err := run(t, "describe", "-m", fixtureManifest, "--type", "Small", "--format", "xml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown format")
}

func TestDescribeUnknownType(t *testing.T) {
	_, err := run(t, "describe", "-m", fixtureManifest, "--type", "Missing")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no root type matches")
}

func TestCheck(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		path := writeConfig(t, "app.yaml", "server:\n  port: 9090\n")

		_, err := run(t, "check", "-m", fixtureManifest, "--type", "Small", path)
		require.NoError(t, err)
	})

	t.Run("unknown key is a warning", func(t *testing.T) {
		path := writeConfig(t, "app.yaml", "server:\n  prot: 9090\n")

		out, err := run(t, "check", "-m", fixtureManifest, "--type", "Small", path)
		require.NoError(t, err)
		assert.Contains(t, out, "server.prot")
		assert.Contains(t, out, "did you mean server.port")
	})

	t.Run("conversion failure is an error", func(t *testing.T) {
		path := writeConfig(t, "app.toml", "[server]\nport = \"eighty\"\n")

		out, err := run(t, "check", "-m", fixtureManifest, "--type", "Small", path)
		require.ErrorIs(t, err, errInvalidConfig)
		assert.Contains(t, out, "[conversion]")
	})

	t.Run("cue schema file", func(t *testing.T) {
		path := writeConfig(t, "app.cue", "server: port: 9090\n")
		loose := writeConfig(t, "loose.cue", "#Config: server: port: int & <65536\n")
		strict := writeConfig(t, "strict.cue", "#Config: server: port: int & <1024\n")

		_, err := run(t, "check", "-m", fixtureManifest, "--type", "Small", "--cue-schema", loose, path)
		require.NoError(t, err)

		_, err = run(t, "check", "-m", fixtureManifest, "--type", "Small", "--cue-schema", strict, path)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "validate")

		_, err = run(t, "check", "-m", fixtureManifest, "--type", "Small", "--cue-schema", filepath.Join(t.TempDir(), "missing.cue"), path)
		assert.ErrorContains(t, err, "read CUE schema")
	})
}

func TestGen(t *testing.T) {
	dir := t.TempDir()
	manifest := writeConfig(t, "confbind.yaml", `version: "1"
package: smallbind
package_path: example.com/smallbind
output: `+dir+`
load:
  - confbind/internal/fixture
roots:
  - type: confbind/internal/fixture.Small
    prefix: server
`)

	_, err := run(t, "gen", "-m", manifest)
	require.NoError(t, err)

	content, err := os.ReadFile(filepath.Join(dir, "confbind_gen.go"))
	require.NoError(t, err)
	assert.Contains(t, string(content), "package smallbind")
	assert.Contains(t, string(content), "func BindSmall(")

	out, err := run(t, "gen", "-m", manifest, "--verify")
	require.NoError(t, err)
	assert.Contains(t, out, "confbind_gen.go is up to date")

	require.NoError(t, os.WriteFile(filepath.Join(dir, "confbind_gen.go"), []byte("package smallbind\n"), 0o600))

	_, err = run(t, "gen", "-m", manifest, "--verify")
	require.Error(t, err)
}
