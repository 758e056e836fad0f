package commands

import (
	"context"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/linoteia/portfolio/pkg/config"
	"github.com/linoteia/portfolio/pkg/content"
	"github.com/linoteia/portfolio/pkg/feature"
	"github.com/linoteia/portfolio/pkg/httpserver"
	"github.com/linoteia/portfolio/pkg/logger"
	"github.com/linoteia/portfolio/pkg/prefs"
	"github.com/linoteia/portfolio/pkg/redis"
	"github.com/linoteia/portfolio/pkg/web"
)

func serveCmd() *cobra.Command {
	var addr string
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the web host",
		RunE: func(cmd *cobra.Command, args []string) error {
			var cfg appConfig
			if err := config.Load(&cfg); err != nil {
				return err
			}
			if addr != "" {
				cfg.HTTP.Addr = addr
			}
			return serve(cmd.Context(), cfg)
		},
	}
	cmd.Flags().StringVar(&addr, "addr", "", "listen address, overrides HTTP_ADDR")
	return cmd
}

func serve(ctx context.Context, cfg appConfig) error {
	log := logger.NewFromConfig(cfg.Log, logger.WithContextExtractors(web.RequestIDExtractor()))

	langs, err := cfg.Loader.LanguageSet()
	if err != nil {
		return err
	}
	fetcher, err := content.NewHTTPFetcherFromConfig(cfg.Content)
	if err != nil {
		return err
	}
	flags, err := loadFlags(cfg.FlagsFile)
	if err != nil {
		return err
	}

	store, ready, closeStore, err := openStore(ctx, cfg.Redis, log)
	if err != nil {
		return err
	}
	defer closeStore()

	reg := web.NewRegistryFromConfig(cfg.Web, web.Deps{
		Fetcher: fetcher,
		Store:   store,
		Flags:   flags,
		Loader:  cfg.Loader,
		Theme:   cfg.Theme,
		Logger:  log,
	})
	router := web.NewRouter(cfg.Web, reg, langs,
		web.WithLogger(log),
		web.WithReadinessCheck(ready),
	)

	srv := httpserver.NewFromConfig(cfg.HTTP,
		httpserver.WithLogger(log),
		httpserver.WithStopHook(func() { _ = reg.Close() }),
	)
	return srv.Run(ctx, router)
}

// openStore connects to Redis when configured and falls back to process
// memory otherwise. ready is nil for the memory store.
func openStore(ctx context.Context, cfg redis.Config, log *slog.Logger) (prefs.Store, func(context.Context) error, func(), error) {
	if !cfg.Enabled() {
		log.InfoContext(ctx, "preferences kept in memory", logger.Component("prefs"))
		return prefs.NewMemoryStore(), nil, func() {}, nil
	}

	client, err := redis.Connect(ctx, cfg)
	if err != nil {
		return nil, nil, nil, err
	}
	log.InfoContext(ctx, "preferences stored in redis", logger.Component("prefs"))
	return prefs.NewRedisStore(client), redis.Healthcheck(client), func() { _ = client.Close() }, nil
}

// loadFlags reads the feature flag file. Without one every flag is on.
func loadFlags(path string) (feature.Provider, error) {
	if path == "" {
		return nil, nil
	}
	return feature.LoadYAMLFile(path)
}
