package theme

import "errors"

var (
	// ErrInvalidTheme is returned for names other than dark and light.
	ErrInvalidTheme = errors.New("invalid theme")
	// ErrMissingSurface is returned by New without a surface.
	ErrMissingSurface = errors.New("theme: missing surface")
)
