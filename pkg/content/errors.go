package content

import (
	"errors"
	"fmt"
)

// HTTPError means the content endpoint answered with a non-2xx status.
// The loader treats it as a deliberate rejection and changes nothing.
type HTTPError struct {
	Status int
	URL    string
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("content: HTTP %d from %s", e.Status, e.URL)
}

// TransportError means the request could not be completed: no client,
// connection failure, cancellation, or a body that is not a JSON object.
type TransportError struct {
	URL   string
	Cause error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("content: fetching %s: %v", e.URL, e.Cause)
}

func (e *TransportError) Unwrap() error { return e.Cause }

// IsHTTPError reports whether err is (or wraps) an *HTTPError.
func IsHTTPError(err error) bool {
	var e *HTTPError
	return errors.As(err, &e)
}

// IsTransportError reports whether err is (or wraps) a *TransportError.
func IsTransportError(err error) bool {
	var e *TransportError
	return errors.As(err, &e)
}

// HTTPStatus returns the status carried by an *HTTPError, or 0.
func HTTPStatus(err error) int {
	var e *HTTPError
	if errors.As(err, &e) {
		return e.Status
	}
	return 0
}

var (
	ErrNoBaseURL   = errors.New("content: base URL is required")
	ErrNotAnObject = errors.New("content: response body is not a JSON object")
)
