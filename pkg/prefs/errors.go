package prefs

import "errors"

var (
	// ErrNotFound is returned by a Store when the key has no value.
	ErrNotFound = errors.New("preference not found")
	// ErrUnavailable is returned when the backend cannot be reached.
	ErrUnavailable = errors.New("preference store unavailable")
)

// IsNotFound reports whether err means a missing key rather than a failure.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}
