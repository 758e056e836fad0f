package web

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"golang.org/x/sync/singleflight"

	"github.com/linoteia/portfolio/pkg/logger"
)

var sessionsActive = promauto.NewGauge(prometheus.GaugeOpts{
	Name: "portfolio_sessions_active",
	Help: "Visitor sessions currently held in memory.",
})

// Factory builds a session for a visitor id.
type Factory func(ctx context.Context, id string) (*Session, error)

// Registry keeps visitor sessions in a size-bounded cache with a sliding
// TTL. Evicted sessions are closed.
type Registry struct {
	mu      sync.Mutex
	cache   *expirable.LRU[string, *Session]
	factory Factory
	log     *slog.Logger

	// creating collapses concurrent creations of one visitor id.
	creating singleflight.Group
}

// NewRegistry returns a registry holding at most size sessions, each
// dropped after ttl without access.
func NewRegistry(factory Factory, size int, ttl time.Duration, log *slog.Logger) *Registry {
	if log == nil {
		log = logger.Nop()
	}
	if size <= 0 {
		size = 1
	}
	r := &Registry{factory: factory, log: log.With(logger.Component("sessions"))}
	r.cache = expirable.NewLRU[string, *Session](size, r.evicted, ttl)
	return r
}

// NewRegistryFromConfig builds a registry whose sessions use d.
func NewRegistryFromConfig(cfg Config, d Deps) *Registry {
	return NewRegistry(func(_ context.Context, id string) (*Session, error) {
		return NewSession(id, d)
	}, cfg.MaxSessions, cfg.SessionTTL, d.Logger)
}

func (r *Registry) evicted(id string, s *Session) {
	sessionsActive.Dec()
	_ = s.Close()
	r.log.Debug("session evicted", logger.SessionID(id))
}

// Get returns the session for id and refreshes its TTL.
func (r *Registry) Get(id string) (*Session, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	s, ok := r.cache.Get(id)
	if ok {
		r.cache.Add(id, s)
	}
	return s, ok
}

// GetOrCreate returns the session for id, creating and starting it when
// missing. Creation runs outside the registry lock so a slow preference
// store only delays the visitor being created.
func (r *Registry) GetOrCreate(ctx context.Context, id string) (*Session, error) {
	if s, ok := r.Get(id); ok {
		return s, nil
	}

	v, err, _ := r.creating.Do(id, func() (any, error) {
		if s, ok := r.Get(id); ok {
			return s, nil
		}
		s, err := r.factory(ctx, id)
		if err != nil {
			return nil, err
		}
		s.Start(ctx)

		r.mu.Lock()
		r.cache.Add(id, s)
		r.mu.Unlock()
		sessionsActive.Inc()
		r.log.DebugContext(ctx, "session created", logger.SessionID(id))
		return s, nil
	})
	if err != nil {
		return nil, err
	}
	return v.(*Session), nil
}

// Len returns the number of live sessions.
func (r *Registry) Len() int {
	return r.cache.Len()
}

// Close evicts and closes every session.
func (r *Registry) Close() error {
	r.cache.Purge()
	return nil
}
