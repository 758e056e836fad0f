package feature

import "context"

// Flag is a named on/off switch for optional page features.
type Flag struct {
	Name        string `json:"name" yaml:"name"`
	Description string `json:"description,omitempty" yaml:"description,omitempty"`
	Enabled     bool   `json:"enabled" yaml:"enabled"`
}

// Provider answers flag lookups.
type Provider interface {
	// IsEnabled reports whether the flag is on. Unknown flags return ErrFlagNotFound.
	IsEnabled(ctx context.Context, name string) (bool, error)
	// ListFlags returns every known flag.
	ListFlags(ctx context.Context) ([]Flag, error)
}
