package i18n

import "errors"

var (
	ErrInvalidCode     = errors.New("invalid language code")
	ErrEmptySet        = errors.New("language set must not be empty")
	ErrDefaultNotInSet = errors.New("default language is not part of the language set")
)
