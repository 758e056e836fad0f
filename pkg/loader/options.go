package loader

import (
	"log/slog"
	"time"

	"github.com/linoteia/portfolio/pkg/content"
	"github.com/linoteia/portfolio/pkg/i18n"
	"github.com/linoteia/portfolio/pkg/schedule"
)

// Option configures a Loader.
type Option func(*Loader)

// WithFadeDelay sets the pause between the end of a fetch and the apply.
func WithFadeDelay(d time.Duration) Option {
	if d < 0 {
		panic("WithFadeDelay: delay must be >= 0")
	}
	return func(l *Loader) { l.fadeDelay = d }
}

// WithScheduler replaces the wall-clock scheduler.
func WithScheduler(s schedule.Scheduler) Option {
	return func(l *Loader) {
		if s != nil {
			l.sched = s
		}
	}
}

// WithLogger sets the logger. A nil logger keeps the discard logger.
func WithLogger(log *slog.Logger) Option {
	return func(l *Loader) {
		if log != nil {
			l.log = log
		}
	}
}

// WithPreferences sets where the applied language is remembered.
func WithPreferences(p Preferences) Option {
	return func(l *Loader) {
		if p != nil {
			l.prefs = p
		}
	}
}

// WithBuilder replaces the markup builder.
func WithBuilder(b func(content.Payload) string) Option {
	return func(l *Loader) {
		if b != nil {
			l.build = b
		}
	}
}

// WithStaleCancellation cancels the in-flight fetch when a newer Select is
// issued. Without it superseded fetches run to completion and their result
// is discarded.
func WithStaleCancellation() Option {
	return func(l *Loader) { l.cancelStale = true }
}

// WithOnApplied registers a hook called after content for code was applied.
func WithOnApplied(fn func(code i18n.Code, seq uint64)) Option {
	return func(l *Loader) { l.onApplied = fn }
}
