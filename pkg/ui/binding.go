package ui

import (
	"context"
	"errors"
	"log/slog"
	"sync"

	"github.com/linoteia/portfolio/pkg/async"
	"github.com/linoteia/portfolio/pkg/i18n"
	"github.com/linoteia/portfolio/pkg/loader"
	"github.com/linoteia/portfolio/pkg/logger"
	"github.com/linoteia/portfolio/pkg/theme"
)

// Controls is the set of language buttons; at most one is active.
type Controls interface {
	Active() i18n.Code
	SetActive(code i18n.Code)
}

// Loader is the part of loader.Loader the binding uses.
type Loader interface {
	Select(ctx context.Context, code i18n.Code) *async.Future[loader.Outcome]
	InitialLanguage(ctx context.Context) i18n.Code
	StartWith(ctx context.Context, code i18n.Code) *async.Future[loader.Outcome]
}

// Toggler is the part of theme.Toggle the binding uses.
type Toggler interface {
	Start(ctx context.Context) theme.Theme
	Toggle(ctx context.Context)
}

// ErrMissingDependency is returned by New when a collaborator is nil.
var ErrMissingDependency = errors.New("ui: missing dependency")

// Binding connects the page controls to the loader and the theme toggle.
type Binding struct {
	controls Controls
	loader   Loader
	toggle   Toggler
	log      *slog.Logger

	mu sync.Mutex
}

// Option configures a Binding.
type Option func(*Binding)

func WithLogger(l *slog.Logger) Option {
	return func(b *Binding) {
		if l != nil {
			b.log = l
		}
	}
}

// New wires a binding.
func New(controls Controls, l Loader, t Toggler, opts ...Option) (*Binding, error) {
	if controls == nil || l == nil || t == nil {
		return nil, ErrMissingDependency
	}
	b := &Binding{controls: controls, loader: l, toggle: t, log: logger.Nop()}
	for _, opt := range opts {
		opt(b)
	}
	b.log = b.log.With(logger.Component("ui"))
	return b, nil
}

// Start restores the theme, marks the initial language active and schedules
// its load.
func (b *Binding) Start(ctx context.Context) *async.Future[loader.Outcome] {
	b.toggle.Start(ctx)
	code := b.loader.InitialLanguage(ctx)

	b.mu.Lock()
	b.controls.SetActive(code)
	b.mu.Unlock()

	return b.loader.StartWith(ctx, code)
}

// SelectLanguage handles a click on the control for code.
//
// Clicking the active control does nothing. Otherwise the control is marked
// active before the loader runs, and the previous control is restored if
// the loader fails with an error.
func (b *Binding) SelectLanguage(ctx context.Context, code i18n.Code) *async.Future[loader.Outcome] {
	if c, err := i18n.ParseCode(code.String()); err == nil {
		code = c
	}

	b.mu.Lock()
	prev := b.controls.Active()
	if prev == code {
		b.mu.Unlock()
		return async.Resolved(loader.Outcome{Status: loader.StatusUnchanged, Code: code}, nil)
	}
	b.controls.SetActive(code)
	b.mu.Unlock()

	fut := b.loader.Select(ctx, code)
	if fut.IsComplete() {
		b.settle(ctx, code, prev, fut)
		return fut
	}
	return async.Then(fut, func(o loader.Outcome, err error) (loader.Outcome, error) {
		b.settle(ctx, code, prev, fut)
		return o, err
	})
}

func (b *Binding) settle(ctx context.Context, code, prev i18n.Code, fut *async.Future[loader.Outcome]) {
	_, err := fut.Await()
	if err == nil {
		return
	}

	b.mu.Lock()
	// A later click owns the marker now.
	restored := b.controls.Active() == code
	if restored {
		b.controls.SetActive(prev)
	}
	b.mu.Unlock()

	b.log.WarnContext(ctx, "language selection failed",
		logger.Lang(code.String()),
		slog.String("restored", prev.String()),
		slog.Bool("rolled_back", restored),
		logger.Error(err),
	)
}

// ToggleTheme handles a click on the theme control.
func (b *Binding) ToggleTheme(ctx context.Context) {
	b.toggle.Toggle(ctx)
}
