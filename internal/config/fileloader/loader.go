// Package fileloader loads stage declarations from YAML files on disk.
package fileloader

import (
	"context"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/ahrav/stageflow/internal/config"
	"github.com/ahrav/stageflow/pkg/common/validate"
)

// FileLoader loads stage declarations from a file on disk. It implements the
// Loader interface to provide file-based declaration management.
type FileLoader struct {
	// path is the filesystem path to the declaration file.
	path string
}

// NewFileLoader creates a new FileLoader that will load declarations from the
// specified file path.
func NewFileLoader(path string) *FileLoader {
	return &FileLoader{path: path}
}

// Load reads, parses, and validates the declaration file specified in
// FileLoader.path. It returns the parsed configuration or an error if
// reading, parsing, or validation fails. The context parameter allows for
// cancellation of long-running operations.
func (l *FileLoader) Load(ctx context.Context) (*config.Config, error) {
	data, err := os.ReadFile(l.path)
	if err != nil {
		return nil, fmt.Errorf("failed to read declaration file: %w", err)
	}

	var cfg config.Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse declarations: %w", err)
	}

	if err := validate.Check(cfg); err != nil {
		return nil, fmt.Errorf("invalid declarations: %w", err)
	}

	return &cfg, nil
}
