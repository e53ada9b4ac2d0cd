package config

import "context"

// Loader provides stage declaration loading capabilities. It abstracts the
// source of declarations to allow for different implementations like files,
// embedded documents, or remote configuration services.
type Loader interface {
	// Load retrieves and parses the declarations from the underlying source.
	// It returns the parsed configuration or an error if loading fails.
	Load(ctx context.Context) (*Config, error)
}
