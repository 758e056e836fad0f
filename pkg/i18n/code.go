package i18n

import (
	"fmt"
	"slices"
	"strings"

	"golang.org/x/text/language"
)

// DefaultLanguage is used when nothing was persisted for a visitor.
const DefaultLanguage Code = "en"

// maxCodeLength follows the RFC 5646 recommendation.
const maxCodeLength = 35

// Code identifies a content language, e.g. "en", "es", "ru".
type Code string

func (c Code) String() string { return string(c) }

// IsZero reports whether no language is set.
func (c Code) IsZero() bool { return c == "" }

// ParseCode normalises a BCP 47 tag to its lower-case base language.
// Region and script subtags are dropped: "en-US" becomes "en".
func ParseCode(raw string) (Code, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" || len(raw) > maxCodeLength {
		return "", fmt.Errorf("%w: %q", ErrInvalidCode, raw)
	}
	tag, err := language.Parse(raw)
	if err != nil {
		return "", fmt.Errorf("%w: %q: %w", ErrInvalidCode, raw, err)
	}
	base, _ := tag.Base()
	if base.String() == "und" {
		return "", fmt.Errorf("%w: %q", ErrInvalidCode, raw)
	}
	return Code(strings.ToLower(base.String())), nil
}

// Set is the fixed collection of languages a page offers.
// It is built once from configuration and never mutated.
type Set struct {
	codes []Code
	def   Code
}

// NewSet validates codes and the default language. The default must be part of the set.
func NewSet(def string, codes ...string) (*Set, error) {
	if len(codes) == 0 {
		return nil, ErrEmptySet
	}
	s := &Set{codes: make([]Code, 0, len(codes))}
	for _, raw := range codes {
		c, err := ParseCode(raw)
		if err != nil {
			return nil, err
		}
		if !slices.Contains(s.codes, c) {
			s.codes = append(s.codes, c)
		}
	}
	d, err := ParseCode(def)
	if err != nil {
		return nil, err
	}
	if !slices.Contains(s.codes, d) {
		return nil, fmt.Errorf("%w: %q", ErrDefaultNotInSet, d)
	}
	s.def = d
	return s, nil
}

// MustNewSet is NewSet that panics on invalid input.
func MustNewSet(def string, codes ...string) *Set {
	s, err := NewSet(def, codes...)
	if err != nil {
		panic(fmt.Sprintf("i18n: %v", err))
	}
	return s
}

// Default returns the fallback language of the set.
func (s *Set) Default() Code { return s.def }

// Codes returns the languages in configuration order.
func (s *Set) Codes() []Code { return slices.Clone(s.codes) }

// Contains reports whether c is offered.
func (s *Set) Contains(c Code) bool { return slices.Contains(s.codes, c) }

// Lookup parses raw and returns the matching code if it is offered.
func (s *Set) Lookup(raw string) (Code, bool) {
	c, err := ParseCode(raw)
	if err != nil || !s.Contains(c) {
		return "", false
	}
	return c, true
}
