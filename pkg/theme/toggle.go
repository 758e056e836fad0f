package theme

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/linoteia/portfolio/pkg/logger"
	"github.com/linoteia/portfolio/pkg/prefs"
	"github.com/linoteia/portfolio/pkg/schedule"
)

var togglesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "portfolio_theme_toggles_total",
	Help: "Theme flips by resulting theme.",
}, []string{"theme"})

// Surface is the part of the page the toggle drives.
type Surface interface {
	Theme() string
	SetTheme(theme string)
	SetFade(on bool)
	SetFadeActive(on bool)
	ClearFade()
}

// Preferences is a best-effort key-value store, see prefs.Safe.
type Preferences interface {
	Get(ctx context.Context, key string) (string, bool)
	Set(ctx context.Context, key, value string)
}

// Toggle flips the page between dark and light with a two step fade.
//
// Each call starts its own chain: fade-out marker, flip after FadeOut,
// fade-in marker, markers cleared after FadeIn. Chains are not serialised.
// The markers are cleared when the last chain still running completes.
type Toggle struct {
	surface Surface
	prefs   Preferences
	sched   schedule.Scheduler
	fadeOut time.Duration
	fadeIn  time.Duration
	def     Theme
	log     *slog.Logger

	mu       sync.Mutex
	inFlight int
	phase    Phase
	flips    uint64

	// persistMu orders store writes; a write is skipped once a later flip exists.
	persistMu sync.Mutex
}

// Option configures a Toggle.
type Option func(*Toggle)

// WithDurations sets the fade-out and fade-in delays.
func WithDurations(fadeOut, fadeIn time.Duration) Option {
	if fadeOut < 0 || fadeIn < 0 {
		panic("WithDurations: durations must be >= 0")
	}
	return func(t *Toggle) { t.fadeOut, t.fadeIn = fadeOut, fadeIn }
}

// WithDefault sets the theme used when nothing valid was persisted.
func WithDefault(th Theme) Option {
	return func(t *Toggle) {
		if _, ok := Parse(th.String()); ok {
			t.def = th
		}
	}
}

func WithScheduler(s schedule.Scheduler) Option {
	return func(t *Toggle) {
		if s != nil {
			t.sched = s
		}
	}
}

func WithPreferences(p Preferences) Option {
	return func(t *Toggle) {
		if p != nil {
			t.prefs = p
		}
	}
}

func WithLogger(l *slog.Logger) Option {
	return func(t *Toggle) {
		if l != nil {
			t.log = l
		}
	}
}

// New creates a toggle for surface.
func New(surface Surface, opts ...Option) (*Toggle, error) {
	if surface == nil {
		return nil, ErrMissingSurface
	}
	t := &Toggle{
		surface: surface,
		prefs:   prefs.NewSafe(nil),
		sched:   schedule.NewReal(),
		fadeOut: 100 * time.Millisecond,
		fadeIn:  400 * time.Millisecond,
		def:     Dark,
		log:     logger.Nop(),
	}
	for _, opt := range opts {
		opt(t)
	}
	t.log = t.log.With(logger.Component("theme"))
	return t, nil
}

// NewFromConfig creates a toggle from cfg. Options override config values.
func NewFromConfig(cfg Config, surface Surface, opts ...Option) (*Toggle, error) {
	def, ok := Parse(cfg.Default)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrInvalidTheme, cfg.Default)
	}
	base := []Option{WithDurations(cfg.FadeOut, cfg.FadeIn), WithDefault(def)}
	return New(surface, append(base, opts...)...)
}

// Start applies the persisted theme, or the default, without persisting it.
func (t *Toggle) Start(ctx context.Context) Theme {
	th := t.def
	if raw, ok := t.prefs.Get(ctx, prefs.KeyTheme); ok {
		if p, ok := Parse(raw); ok {
			th = p
		}
	}
	t.surface.SetTheme(th.String())
	return th
}

// Toggle starts a new fade-and-flip chain.
func (t *Toggle) Toggle(ctx context.Context) {
	ctx = context.WithoutCancel(ctx)

	t.mu.Lock()
	t.inFlight++
	t.phase = PhaseFadingOut
	t.surface.SetFade(true)
	t.mu.Unlock()

	t.sched.AfterFunc(t.fadeOut, func() { t.flip(ctx) })
}

func (t *Toggle) flip(ctx context.Context) {
	t.mu.Lock()
	next := Theme(t.surface.Theme()).Toggled()
	t.surface.SetTheme(next.String())
	t.surface.SetFadeActive(true)
	t.phase = PhaseFadingIn
	t.flips++
	gen := t.flips
	t.mu.Unlock()

	togglesTotal.WithLabelValues(next.String()).Inc()
	t.log.DebugContext(ctx, "theme flipped", logger.Theme(next.String()))
	t.sched.AfterFunc(t.fadeIn, t.settle)

	t.persist(ctx, gen, next)
}

func (t *Toggle) persist(ctx context.Context, gen uint64, th Theme) {
	t.persistMu.Lock()
	defer t.persistMu.Unlock()

	t.mu.Lock()
	stale := gen != t.flips
	t.mu.Unlock()
	if stale {
		return
	}
	t.prefs.Set(ctx, prefs.KeyTheme, th.String())
}

func (t *Toggle) settle() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.inFlight--
	if t.inFlight > 0 {
		return
	}
	t.inFlight = 0
	t.surface.ClearFade()
	t.phase = PhaseIdle
}

// State returns a snapshot of the toggle.
func (t *Toggle) State() State {
	t.mu.Lock()
	defer t.mu.Unlock()
	return State{
		Theme:    Theme(t.surface.Theme()),
		Phase:    t.phase,
		InFlight: t.inFlight,
	}
}
