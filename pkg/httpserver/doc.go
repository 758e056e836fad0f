// Package httpserver runs the portfolio's HTTP handler with graceful
// shutdown on context cancellation or SIGINT/SIGTERM, functional options for
// timeouts and lifecycle hooks, and a health check handler.
//
//	srv := httpserver.NewFromConfig(cfg, httpserver.WithLogger(log))
//	if err := srv.Run(ctx, router); err != nil {
//		return err
//	}
//
// Run wraps listen errors with ErrStart and Shutdown wraps drain errors
// with ErrShutdown.
package httpserver
