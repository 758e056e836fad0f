package web

import (
	"context"
	"errors"
	"log/slog"
	"sync"

	"github.com/linoteia/portfolio/pkg/content"
	"github.com/linoteia/portfolio/pkg/feature"
	"github.com/linoteia/portfolio/pkg/loader"
	"github.com/linoteia/portfolio/pkg/logger"
	"github.com/linoteia/portfolio/pkg/page"
	"github.com/linoteia/portfolio/pkg/prefs"
	"github.com/linoteia/portfolio/pkg/render"
	"github.com/linoteia/portfolio/pkg/schedule"
	"github.com/linoteia/portfolio/pkg/theme"
	"github.com/linoteia/portfolio/pkg/ui"
)

// Scheduler is a schedule.Scheduler whose pending timers can be dropped.
type Scheduler interface {
	schedule.Scheduler
	Close() error
}

// Deps are shared by every session the factory builds.
type Deps struct {
	Fetcher content.Fetcher
	// Store persists preferences. Keys are scoped per visitor.
	Store  prefs.Store
	Flags  feature.Provider
	Loader loader.Config
	Theme  theme.Config
	Logger *slog.Logger
	// NewScheduler returns the timer source of one session. Defaults to schedule.NewReal.
	NewScheduler func() Scheduler
}

// Session is the page state of one visitor.
type Session struct {
	ID      string
	Page    *page.Page
	Loader  *loader.Loader
	Theme   *theme.Toggle
	Binding *ui.Binding

	sched     Scheduler
	startOnce sync.Once
	closeOnce sync.Once
	done      chan struct{}
}

// NewSession builds the page model, loader, toggle and binding for id.
func NewSession(id string, d Deps) (*Session, error) {
	if d.Fetcher == nil {
		return nil, ErrMissingFetcher
	}
	log := d.Logger
	if log == nil {
		log = logger.Nop()
	}
	log = log.With(logger.SessionID(id))

	store := d.Store
	if store == nil {
		store = prefs.NewMemoryStore()
	}
	safe := prefs.NewSafe(prefs.NewScoped(store, id), prefs.WithLogger(log))

	newSched := d.NewScheduler
	if newSched == nil {
		newSched = func() Scheduler { return schedule.NewReal() }
	}
	sched := newSched()

	flags := d.Flags
	build := func(p content.Payload) string {
		return render.BuildWithExtras(p, render.ResolveExtras(context.Background(), flags))
	}

	pg := page.New()
	ld, err := loader.NewFromConfig(d.Loader, d.Fetcher, pg,
		loader.WithScheduler(sched),
		loader.WithPreferences(safe),
		loader.WithLogger(log),
		loader.WithBuilder(build),
	)
	if err != nil {
		return nil, err
	}
	tg, err := theme.NewFromConfig(d.Theme, pg,
		theme.WithScheduler(sched),
		theme.WithPreferences(safe),
		theme.WithLogger(log),
	)
	if err != nil {
		return nil, err
	}
	b, err := ui.New(pg, ld, tg, ui.WithLogger(log))
	if err != nil {
		return nil, err
	}

	return &Session{
		ID:      id,
		Page:    pg,
		Loader:  ld,
		Theme:   tg,
		Binding: b,
		sched:   sched,
		done:    make(chan struct{}),
	}, nil
}

// Start restores preferences and schedules the first load. Only the first
// call has an effect.
func (s *Session) Start(ctx context.Context) {
	s.startOnce.Do(func() {
		s.Binding.Start(context.WithoutCancel(ctx))
	})
}

// Done is closed when the session is closed.
func (s *Session) Done() <-chan struct{} {
	return s.done
}

// Close stops the session's timers and ends its streams.
func (s *Session) Close() error {
	var err error
	s.closeOnce.Do(func() {
		close(s.done)
		err = errors.Join(s.sched.Close(), s.Page.Close())
	})
	return err
}
