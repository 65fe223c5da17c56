package source_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cast"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"confbind/source"
)

func TestLayered(t *testing.T) {
	src := source.Layered{
		source.Map{"a": "override"},
		source.Map{"a": "base", "b": "base"},
	}

	v, ok := src.Lookup("a")
	assert.True(t, ok)
	assert.Equal(t, "override", v)

	v, ok = src.Lookup("b")
	assert.True(t, ok)
	assert.Equal(t, "base", v)

	assert.Equal(t, []string{"a", "b"}, src.Keys())
}

func TestNewViper_Flatten(t *testing.T) {
	v := viper.New()
	require.NoError(t, v.MergeConfigMap(map[string]any{
		"server": map[string]any{
			"port": 9090,
			"tags": []any{"a", "b"},
		},
		"backends": []any{
			map[string]any{"host": "one"},
			map[string]any{"host": "two"},
		},
	}))

	src, err := source.NewViper(v)
	require.NoError(t, err)

	assert.Equal(t, []string{
		"backends[0].host",
		"backends[1].host",
		"server.port",
		"server.tags",
	}, src.Keys())

	got, ok := src.Lookup("server.port")
	assert.True(t, ok)
	assert.Equal(t, "9090", got)

	got, ok = src.Lookup("server.tags")
	assert.True(t, ok)
	assert.Equal(t, "a,b", got)

	got, ok = src.Lookup("Backends[1].Host")
	assert.True(t, ok)
	assert.Equal(t, "two", got)

	_, ok = src.Lookup("server")
	assert.False(t, ok)
}

func TestNewViper_Env(t *testing.T) {
	t.Setenv("APP_SERVER_PORT", "7070")
	t.Setenv("APP_SERVER_HTTP_HOST", "example.org")

	v := viper.New()
	require.NoError(t, v.MergeConfigMap(map[string]any{
		"server": map[string]any{"port": 9090, "name": "file"},
	}))

	src, err := source.NewViper(v, source.WithEnv("app"))
	require.NoError(t, err)

	got, ok := src.Lookup("server.port")
	assert.True(t, ok)
	assert.Equal(t, "7070", got)

	got, ok = src.Lookup("server.http-host")
	assert.True(t, ok)
	assert.Equal(t, "example.org", got)

	got, ok = src.Lookup("server.name")
	assert.True(t, ok)
	assert.Equal(t, "file", got)
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()

	yamlPath := filepath.Join(dir, "base.yaml")
	require.NoError(t, os.WriteFile(yamlPath, []byte("server:\n  port: 8080\n  host: localhost\n"), 0o600))

	tomlPath := filepath.Join(dir, "override.toml")
	require.NoError(t, os.WriteFile(tomlPath, []byte("[server]\nport = 9090\n"), 0o600))

	cuePath := filepath.Join(dir, "extra.cue")
	require.NoError(t, os.WriteFile(cuePath, []byte("base: timeout: 30.5\nlimits: [1, 2, 3]\n"), 0o600))

	src, err := source.Load([]string{yamlPath, tomlPath, cuePath})
	require.NoError(t, err)

	for key, want := range map[string]string{
		"server.port":  "9090",
		"server.host":  "localhost",
		"base.timeout": "30.5",
		"limits":       "1,2,3",
	} {
		got, ok := src.Lookup(key)
		assert.True(t, ok, key)
		assert.Equal(t, want, got, key)
	}

	_, err = source.Load([]string{filepath.Join(dir, "missing.yaml")})
	assert.Error(t, err)
}

func TestDecodeCUE(t *testing.T) {
	schema := `#Config: { port: int & >0 & <65536, host?: string }`

	m, err := source.DecodeCUE([]byte(`port: 8080`), "ok.cue", schema)
	require.NoError(t, err)
	require.Contains(t, m, "port")
	assert.Equal(t, 8080, cast.ToInt(m["port"]))

	_, err = source.DecodeCUE([]byte(`port: 0`), "range.cue", schema)
	assert.ErrorContains(t, err, "range.cue")

	_, err = source.DecodeCUE([]byte(`port: int`), "abstract.cue", "")
	assert.ErrorContains(t, err, "validate abstract.cue")

	_, err = source.DecodeCUE([]byte(`port: 1`), "noschema.cue", `#Other: {}`)
	assert.ErrorContains(t, err, "#Config")
}
