package gen

import (
	"os"
	"path/filepath"
	"strings"
)

// writeDebugUnformatted writes the unformatted output next to the intended
// file so that gofmt errors can be located. Failing to write it is ignored
// by callers.
func writeDebugUnformatted(outDir, filename string, content []byte) error {
	if outDir == "" || filename == "" {
		return nil
	}

	if err := os.MkdirAll(outDir, dirPerm); err != nil {
		return err
	}

	debugName := strings.TrimSuffix(filename, ".go") + ".unformatted.go"

	return os.WriteFile(filepath.Join(outDir, debugName), content, filePerm)
}
