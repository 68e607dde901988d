package gen

import (
	"fmt"
	"os"
	"path/filepath"
)

// File permission constants.
const (
	dirPerm  = 0o755
	filePerm = 0o644
)

// WriteFiles writes all generated files into their package directories,
// creating directories as needed.
func WriteFiles(files []GeneratedFile) error {
	for _, file := range files {
		if file.Dir == "" {
			return fmt.Errorf("no target directory for %s", file.Filename)
		}

		if err := os.MkdirAll(file.Dir, dirPerm); err != nil {
			return fmt.Errorf("creating directory %s: %w", file.Dir, err)
		}

		outputPath := filepath.Join(file.Dir, file.Filename)

		if err := os.WriteFile(outputPath, file.Content, filePerm); err != nil {
			return fmt.Errorf("writing file %s: %w", outputPath, err)
		}
	}

	return nil
}
