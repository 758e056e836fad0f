package loader

import "errors"

var (
	// ErrUnsupportedLanguage is returned for codes outside the configured set.
	ErrUnsupportedLanguage = errors.New("unsupported language")
	// ErrMissingDependency is returned by New when a required collaborator is nil.
	ErrMissingDependency = errors.New("loader: missing dependency")
)
