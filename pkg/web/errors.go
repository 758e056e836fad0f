package web

import "errors"

// ErrMissingFetcher is returned when session dependencies lack a content fetcher.
var ErrMissingFetcher = errors.New("web: missing content fetcher")
