package prefs

import (
	"context"
	"log/slog"
	"time"

	"github.com/linoteia/portfolio/pkg/logger"
)

// Preference keys shared by the loader and the theme toggle.
const (
	KeyTheme = "theme"
	KeyLang  = "lang"
)

// Store is a raw string key-value backend. Implementations report failures;
// callers that must never observe them go through Safe.
type Store interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
}

// Safe wraps a Store with best-effort semantics: reads that fail look like
// missing values, writes that fail are dropped. Failures are only logged.
type Safe struct {
	store   Store
	timeout time.Duration
	logger  *slog.Logger
}

// Option configures Safe.
type Option func(*Safe)

// WithLogger sets the logger used to report swallowed failures.
func WithLogger(l *slog.Logger) Option {
	return func(s *Safe) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithTimeout bounds every backend call. Zero disables the bound.
func WithTimeout(d time.Duration) Option {
	return func(s *Safe) { s.timeout = d }
}

// NewSafe returns a best-effort facade over store. A nil store behaves as
// permanently unavailable storage.
func NewSafe(store Store, opts ...Option) *Safe {
	s := &Safe{
		store:   store,
		timeout: 2 * time.Second,
		logger:  logger.Nop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Get returns the stored value and true, or "" and false when the key is
// missing or the backend failed.
func (s *Safe) Get(ctx context.Context, key string) (string, bool) {
	if s == nil || s.store == nil {
		return "", false
	}
	ctx, cancel := s.bound(ctx)
	defer cancel()

	v, err := s.store.Get(ctx, key)
	if err != nil {
		if !IsNotFound(err) {
			s.logger.DebugContext(ctx, "preference read failed",
				logger.Component("prefs"), slog.String("key", key), logger.Error(err))
		}
		return "", false
	}
	return v, true
}

// Set stores value under key, ignoring any failure.
func (s *Safe) Set(ctx context.Context, key, value string) {
	if s == nil || s.store == nil {
		return
	}
	ctx, cancel := s.bound(ctx)
	defer cancel()

	if err := s.store.Set(ctx, key, value); err != nil {
		s.logger.DebugContext(ctx, "preference write dropped",
			logger.Component("prefs"), slog.String("key", key), logger.Error(err))
	}
}

func (s *Safe) bound(ctx context.Context) (context.Context, context.CancelFunc) {
	// Writes happen after the visual update; a cancelled request must not drop them.
	ctx = context.WithoutCancel(ctx)
	if s.timeout <= 0 {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, s.timeout)
}
