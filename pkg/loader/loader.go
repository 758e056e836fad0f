package loader

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/linoteia/portfolio/pkg/async"
	"github.com/linoteia/portfolio/pkg/content"
	"github.com/linoteia/portfolio/pkg/i18n"
	"github.com/linoteia/portfolio/pkg/logger"
	"github.com/linoteia/portfolio/pkg/prefs"
	"github.com/linoteia/portfolio/pkg/render"
	"github.com/linoteia/portfolio/pkg/schedule"
)

// Surface is the content container the loader drives.
type Surface interface {
	Visible() bool
	Hide()
	// Replace swaps the markup and shows the container.
	Replace(html string)
}

// Preferences is a best-effort key-value store, see prefs.Safe.
type Preferences interface {
	Get(ctx context.Context, key string) (string, bool)
	Set(ctx context.Context, key, value string)
}

// Loader switches the content container between languages.
//
// Every non-idempotent Select takes a new sequence number. The deferred
// apply only touches the container if its number is still the latest, so
// responses arriving out of order never overwrite newer content.
type Loader struct {
	langs   *i18n.Set
	fetcher content.Fetcher
	surface Surface

	prefs       Preferences
	sched       schedule.Scheduler
	build       func(content.Payload) string
	fadeDelay   time.Duration
	log         *slog.Logger
	cancelStale bool
	onApplied   func(i18n.Code, uint64)

	mu          sync.Mutex
	lastApplied i18n.Code
	seq         uint64
	phase       Phase
	phaseCode   i18n.Code
	phaseSeq    uint64
	cancelFetch context.CancelFunc
	appliedSeq  uint64

	// persistMu orders store writes with applies.
	persistMu sync.Mutex
}

// New creates a loader. langs, fetcher and surface are required.
func New(langs *i18n.Set, fetcher content.Fetcher, surface Surface, opts ...Option) (*Loader, error) {
	if langs == nil || fetcher == nil || surface == nil {
		return nil, ErrMissingDependency
	}
	l := &Loader{
		langs:     langs,
		fetcher:   fetcher,
		surface:   surface,
		prefs:     prefs.NewSafe(nil),
		sched:     schedule.NewReal(),
		build:     render.Build,
		fadeDelay: 200 * time.Millisecond,
		log:       logger.Nop(),
	}
	for _, opt := range opts {
		opt(l)
	}
	l.log = l.log.With(logger.Component("loader"))
	return l, nil
}

// NewFromConfig creates a loader from cfg. Options override config values.
func NewFromConfig(cfg Config, fetcher content.Fetcher, surface Surface, opts ...Option) (*Loader, error) {
	langs, err := cfg.LanguageSet()
	if err != nil {
		return nil, err
	}
	base := []Option{WithFadeDelay(cfg.FadeDelay)}
	if cfg.CancelStale {
		base = append(base, WithStaleCancellation())
	}
	return New(langs, fetcher, surface, append(base, opts...)...)
}

// Languages returns the offered language set.
func (l *Loader) Languages() *i18n.Set { return l.langs }

// Select requests content for code.
//
// The container is hidden before Select returns. The returned future
// resolves once the fetch has finished and the apply is scheduled, or
// immediately for unchanged and unsupported codes. Unsupported codes
// resolve with ErrUnsupportedLanguage; every other failure is reported
// through Outcome.
func (l *Loader) Select(ctx context.Context, code i18n.Code) *async.Future[Outcome] {
	c, ok := l.langs.Lookup(code.String())
	if !ok {
		selectsTotal.WithLabelValues("unsupported").Inc()
		return async.Resolved(Outcome{Code: code}, fmt.Errorf("%w: %q", ErrUnsupportedLanguage, code))
	}

	l.mu.Lock()
	if c == l.lastApplied {
		seq := l.seq
		l.mu.Unlock()
		selectsTotal.WithLabelValues(StatusUnchanged.String()).Inc()
		return async.Resolved(Outcome{Status: StatusUnchanged, Code: c, Seq: seq}, nil)
	}

	l.seq++
	seq := l.seq
	if l.surface.Visible() {
		l.surface.Hide()
	}
	l.phase, l.phaseCode, l.phaseSeq = PhaseLoading, c, seq

	fetchCtx := context.WithoutCancel(ctx)
	var cancel context.CancelFunc
	if l.cancelStale {
		if l.cancelFetch != nil {
			l.cancelFetch()
		}
		fetchCtx, cancel = context.WithCancel(fetchCtx)
		l.cancelFetch = cancel
	}
	l.mu.Unlock()

	l.log.DebugContext(ctx, "language requested", logger.Lang(c.String()), logger.Seq(seq))

	fut, resolve := async.Promise[Outcome]()
	go func() {
		if cancel != nil {
			defer cancel()
		}
		resolve(l.load(fetchCtx, c, seq), nil)
	}()
	return fut
}

func (l *Loader) load(ctx context.Context, code i18n.Code, seq uint64) Outcome {
	start := time.Now()
	payload, err := l.fetcher.Fetch(ctx, code)

	status := StatusScheduled
	switch {
	case err == nil:
	case errors.Is(err, context.Canceled) && l.superseded(seq):
		staleDiscards.Inc()
		l.log.DebugContext(ctx, "superseded request cancelled",
			logger.Lang(code.String()),
			logger.Seq(seq),
		)
		selectsTotal.WithLabelValues(StatusSuperseded.String()).Inc()
		return Outcome{Status: StatusSuperseded, Code: code, Seq: seq}
	case content.IsHTTPError(err):
		l.log.ErrorContext(ctx, "content request rejected",
			logger.Lang(code.String()),
			logger.Seq(seq),
			logger.Status(content.HTTPStatus(err)),
			logger.Error(err),
		)
		l.mu.Lock()
		if l.phaseSeq == seq {
			l.phase = PhaseIdle
		}
		l.mu.Unlock()
		selectsTotal.WithLabelValues(StatusRejected.String()).Inc()
		return Outcome{Status: StatusRejected, Code: code, Seq: seq, Err: err}
	default:
		l.log.WarnContext(ctx, "content request failed, using fallback",
			logger.Lang(code.String()),
			logger.Seq(seq),
			logger.Error(err),
		)
		payload = content.EmptyFallback()
		status = StatusFallback
	}

	html := l.build(payload)

	l.mu.Lock()
	if l.phaseSeq == seq {
		l.phase = PhaseApplying
	}
	l.sched.AfterFunc(l.fadeDelay, func() { l.apply(code, seq, html) })
	l.mu.Unlock()

	l.log.DebugContext(ctx, "apply scheduled",
		logger.Lang(code.String()),
		logger.Seq(seq),
		logger.Duration(time.Since(start)),
	)
	selectsTotal.WithLabelValues(status.String()).Inc()
	return Outcome{Status: status, Code: code, Seq: seq}
}

func (l *Loader) superseded(seq uint64) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return seq != l.seq
}

func (l *Loader) apply(code i18n.Code, seq uint64, html string) {
	l.mu.Lock()
	if seq != l.seq {
		current := l.seq
		l.mu.Unlock()
		staleDiscards.Inc()
		l.log.Debug("stale content discarded",
			logger.Lang(code.String()),
			logger.Seq(seq),
			slog.Uint64("current_seq", current),
		)
		return
	}
	l.surface.Replace(html)
	l.lastApplied = code
	l.appliedSeq = seq
	l.phase = PhaseIdle
	hook := l.onApplied
	l.mu.Unlock()

	appliesTotal.WithLabelValues(code.String()).Inc()
	l.persist(seq, code)

	if hook != nil {
		hook(code, seq)
	}
}

// persist stores code unless a later apply already happened.
func (l *Loader) persist(seq uint64, code i18n.Code) {
	l.persistMu.Lock()
	defer l.persistMu.Unlock()

	l.mu.Lock()
	stale := seq != l.appliedSeq
	l.mu.Unlock()
	if stale {
		return
	}
	l.prefs.Set(context.Background(), prefs.KeyLang, code.String())
}

// InitialLanguage returns the persisted language if it is offered, else the
// default of the set.
func (l *Loader) InitialLanguage(ctx context.Context) i18n.Code {
	if raw, ok := l.prefs.Get(ctx, prefs.KeyLang); ok {
		if c, ok := l.langs.Lookup(raw); ok {
			return c
		}
	}
	return l.langs.Default()
}

// Start schedules the first selection with zero delay, using
// InitialLanguage.
func (l *Loader) Start(ctx context.Context) *async.Future[Outcome] {
	return l.StartWith(ctx, l.InitialLanguage(ctx))
}

// StartWith schedules a zero-delay selection of code. The returned future
// resolves with that selection's outcome.
func (l *Loader) StartWith(ctx context.Context, code i18n.Code) *async.Future[Outcome] {
	fut, resolve := async.Promise[Outcome]()
	l.sched.AfterFunc(0, func() {
		sel := l.Select(ctx, code)
		go func() { resolve(sel.Await()) }()
	})
	return fut
}

// State returns a snapshot of the loader.
func (l *Loader) State() State {
	l.mu.Lock()
	defer l.mu.Unlock()
	return State{
		LastApplied: l.lastApplied,
		Sequence:    l.seq,
		Visible:     l.surface.Visible(),
		Phase:       l.phase,
		PhaseCode:   l.phaseCode,
		PhaseSeq:    l.phaseSeq,
	}
}
