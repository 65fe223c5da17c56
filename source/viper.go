package source

import (
	"fmt"
	"maps"
	"path/filepath"
	"slices"
	"strings"

	"github.com/spf13/cast"
	"github.com/spf13/viper"

	"confbind/cursor"
	"confbind/primitive"
)

// EnvKeyReplacer maps configuration keys to environment variable names
// (app.http-port -> APP_HTTP_PORT, servers[0].host -> SERVERS_0_HOST).
var EnvKeyReplacer = strings.NewReplacer(".", "_", "-", "_", "[", "_", "]", "")

// Viper is a Source backed by a viper instance. Nested settings are
// flattened into dotted keys once at construction: maps contribute named
// segments, lists of scalars join into one comma separated value and lists
// of maps contribute index segments. Keys are lower case, as viper reports
// them.
type Viper struct {
	v    *viper.Viper
	flat map[string]string
	env  bool
}

// ViperOption configures NewViper and Load.
type ViperOption func(*viperOptions)

type viperOptions struct {
	envPrefix string
	env       bool
	cueSchema string
}

// WithEnv lets environment variables override keys. Variable names are
// derived with EnvKeyReplacer and upper-cased, with prefix prepended when not
// empty. Only keys the binding pass asks for are looked up in the
// environment; collection elements are discovered from files only.
func WithEnv(prefix string) ViperOption {
	return func(o *viperOptions) {
		o.env = true
		o.envPrefix = prefix
	}
}

// WithCUESchema validates .cue files against the given CUE definition source
// before merging. The schema must define #Config.
func WithCUESchema(schema string) ViperOption {
	return func(o *viperOptions) {
		o.cueSchema = schema
	}
}

// NewViper flattens the current settings of v.
func NewViper(v *viper.Viper, opts ...ViperOption) (*Viper, error) {
	o := viperOptions{}
	for _, opt := range opts {
		opt(&o)
	}

	if o.env {
		if o.envPrefix != "" {
			v.SetEnvPrefix(o.envPrefix)
		}

		v.SetEnvKeyReplacer(EnvKeyReplacer)
		v.AutomaticEnv()
	}

	flat := make(map[string]string)
	if err := flatten(flat, nil, v.AllSettings()); err != nil {
		return nil, err
	}

	return &Viper{v: v, flat: flat, env: o.env}, nil
}

// Load reads and merges the given files in order into a fresh viper
// instance. The format follows the file extension; .cue files are compiled
// with CUE (see LoadCUE), everything else goes through viper's decoders.
func Load(paths []string, opts ...ViperOption) (*Viper, error) {
	o := viperOptions{}
	for _, opt := range opts {
		opt(&o)
	}

	v := viper.New()

	for _, path := range paths {
		if strings.EqualFold(filepath.Ext(path), ".cue") {
			if err := LoadCUE(v, path, o.cueSchema); err != nil {
				return nil, err
			}

			continue
		}

		v.SetConfigFile(path)
		if err := v.MergeInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
		}
	}

	return NewViper(v, opts...)
}

// Lookup implements Source.
func (s *Viper) Lookup(key string) (string, bool) {
	lower := strings.ToLower(key)

	if s.env && s.v.IsSet(lower) {
		if raw, err := scalar(s.v.Get(lower)); err == nil {
			return raw, true
		}
	}

	v, ok := s.flat[lower]

	return v, ok
}

// Keys implements Source.
func (s *Viper) Keys() []string {
	return slices.Sorted(maps.Keys(s.flat))
}

// Viper returns the underlying instance.
func (s *Viper) Viper() *viper.Viper {
	return s.v
}

func flatten(out map[string]string, prefix []string, value any) error {
	switch val := value.(type) {
	case map[string]any:
		for k, child := range val {
			if err := flatten(out, append(slices.Clip(prefix), k), child); err != nil {
				return err
			}
		}

		return nil

	case []any:
		if !slices.ContainsFunc(val, isMap) {
			parts := make([]string, 0, len(val))

			for _, elem := range val {
				s, err := scalar(elem)
				if err != nil {
					return fmt.Errorf("key %s: %w", cursor.Join(prefix), err)
				}

				parts = append(parts, s)
			}

			out[cursor.Join(prefix)] = strings.Join(parts, primitive.ListSeparator)

			return nil
		}

		for i, elem := range val {
			if err := flatten(out, append(slices.Clip(prefix), cursor.IndexSegment(i)), elem); err != nil {
				return err
			}
		}

		return nil

	case nil:
		out[cursor.Join(prefix)] = ""
		return nil
	}

	s, err := scalar(value)
	if err != nil {
		return fmt.Errorf("key %s: %w", cursor.Join(prefix), err)
	}

	out[cursor.Join(prefix)] = s

	return nil
}

func isMap(v any) bool {
	_, ok := v.(map[string]any)
	return ok
}

func scalar(v any) (string, error) {
	switch val := v.(type) {
	case []any:
		parts := make([]string, 0, len(val))

		for _, elem := range val {
			s, err := cast.ToStringE(elem)
			if err != nil {
				return "", err
			}

			parts = append(parts, s)
		}

		return strings.Join(parts, primitive.ListSeparator), nil
	case []string:
		return strings.Join(val, primitive.ListSeparator), nil
	}

	return cast.ToStringE(v)
}
