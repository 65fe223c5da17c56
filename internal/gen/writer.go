package gen

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// File permission constants.
const (
	dirPerm  = 0o755
	filePerm = 0o644
)

// ErrStale is returned by Verify when the file on disk differs from the
// generated content.
var ErrStale = errors.New("generated file is out of date")

// WriteFiles writes all generated files to the output directory.
// It creates the directory if it doesn't exist.
func WriteFiles(files []GeneratedFile, outputDir string) error {
	// Create output directory if it doesn't exist
	err := os.MkdirAll(outputDir, dirPerm)
	if err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}

	for _, file := range files {
		outputPath := filepath.Join(outputDir, file.Filename)

		err := os.WriteFile(outputPath, file.Content, filePerm)
		if err != nil {
			return fmt.Errorf("writing file %s: %w", file.Filename, err)
		}
	}

	return nil
}

// Verify compares file with its copy in outputDir.
func Verify(file GeneratedFile, outputDir string) error {
	outputPath := filepath.Join(outputDir, file.Filename)

	onDisk, err := os.ReadFile(outputPath)
	if err != nil {
		return fmt.Errorf("reading file %s: %w", file.Filename, err)
	}

	if !bytes.Equal(onDisk, file.Content) {
		return fmt.Errorf("%w: %s", ErrStale, outputPath)
	}

	return nil
}
