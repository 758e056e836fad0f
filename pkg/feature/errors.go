package feature

import "errors"

var (
	// ErrFlagNotFound indicates that the requested feature flag was not found.
	ErrFlagNotFound = errors.New("feature flag not found")
	// ErrInvalidFlag indicates that the provided flag parameters are invalid.
	ErrInvalidFlag = errors.New("invalid feature flag parameters")
	// ErrInvalidFile indicates a flags file that could not be decoded.
	ErrInvalidFile = errors.New("invalid feature flags file")
)

// IsNotFound reports whether err is ErrFlagNotFound.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrFlagNotFound)
}
