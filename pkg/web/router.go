package web

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/linoteia/portfolio/pkg/httpserver"
	"github.com/linoteia/portfolio/pkg/i18n"
	"github.com/linoteia/portfolio/pkg/logger"
)

type routerConfig struct {
	log    *slog.Logger
	checks []func(context.Context) error
}

// Option configures the router.
type Option func(*routerConfig)

func WithLogger(l *slog.Logger) Option {
	return func(c *routerConfig) {
		if l != nil {
			c.log = l
		}
	}
}

// WithReadinessCheck adds a dependency probe to /healthz.
func WithReadinessCheck(fn func(context.Context) error) Option {
	return func(c *routerConfig) {
		if fn != nil {
			c.checks = append(c.checks, fn)
		}
	}
}

// NewRouter returns the HTTP handler of the web host.
func NewRouter(cfg Config, reg *Registry, langs *i18n.Set, opts ...Option) http.Handler {
	rc := &routerConfig{log: logger.Nop()}
	for _, opt := range opts {
		opt(rc)
	}
	log := rc.log.With(logger.Component("web"))
	h := &handlers{cfg: cfg, reg: reg, langs: langs, log: log}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(instrument(log))

	r.Get("/healthz", httpserver.HealthCheckHandler(log, rc.checks...))
	r.Handle("/metrics", promhttp.Handler())
	if cfg.ServeContent {
		r.Get("/lang/{code}.json", h.langDocument)
	}
	r.Handle("/assets/*", assetsHandler(cfg.AssetsDir))

	r.Group(func(r chi.Router) {
		r.Use(visitor(cfg))
		r.Get("/", h.shell)
		r.Get("/ui/stream", h.stream)
		r.Post("/ui/lang/{code}", h.selectLang)
		r.Post("/ui/theme", h.toggleTheme)
	})

	return r
}
