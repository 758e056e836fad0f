// Package logger builds the *slog.Logger used across the portfolio service.
//
// New assembles a text or JSON handler from functional options and wraps it
// with LogHandlerDecorator, which copies request-scoped values (currently the
// page session id) from context.Context into every record. NewFromConfig reads
// the same settings from environment variables via Config.
//
// Attribute helpers (Component, Lang, Seq, Theme, Error, ...) keep key names
// consistent between the loader, the theme toggle and the web host.
//
//	log := logger.New(logger.WithEnvironment("development", "portfolio"))
//	log.InfoContext(logger.WithSession(ctx, id), "language applied",
//		logger.Component("loader"), logger.Lang("es"), logger.Seq(3))
package logger
