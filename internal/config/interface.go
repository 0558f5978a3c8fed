package config

import "context"

// Loader is the interface for a format-specific specification loader.
type Loader interface {
	// Load reads the specification at path and translates it into the
	// format-agnostic model. It does not validate the result.
	Load(ctx context.Context, path string) (*Project, error)
}
