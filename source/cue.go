package source

import (
	"fmt"
	"os"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	"github.com/spf13/viper"
)

// LoadCUE compiles the CUE file at path and merges its concrete values into
// v. When schema is not empty, the file is unified with the #Config
// definition of schema first.
func LoadCUE(v *viper.Viper, path, schema string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read config file: %w", err)
	}

	configMap, err := DecodeCUE(data, path, schema)
	if err != nil {
		return err
	}

	if err := v.MergeConfigMap(configMap); err != nil {
		return fmt.Errorf("failed to merge config %s: %w", path, err)
	}

	return nil
}

// DecodeCUE compiles CUE source into a plain map. filename is used in error
// messages only.
func DecodeCUE(data []byte, filename, schema string) (map[string]any, error) {
	ctx := cuecontext.New()

	value := ctx.CompileBytes(data, cue.Filename(filename))
	if value.Err() != nil {
		return nil, fmt.Errorf("compile %s: %w", filename, value.Err())
	}

	if schema != "" {
		schemaValue := ctx.CompileString(schema)
		if schemaValue.Err() != nil {
			return nil, fmt.Errorf("compile schema: %w", schemaValue.Err())
		}

		def := schemaValue.LookupPath(cue.ParsePath("#Config"))
		if !def.Exists() {
			return nil, fmt.Errorf("schema does not define #Config")
		}

		value = def.Unify(value)
	}

	if err := value.Validate(cue.Concrete(true)); err != nil {
		return nil, fmt.Errorf("validate %s: %w", filename, err)
	}

	var configMap map[string]any
	if err := value.Decode(&configMap); err != nil {
		return nil, fmt.Errorf("decode %s: %w", filename, err)
	}

	return configMap, nil
}
