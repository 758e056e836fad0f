// Package prefs is the visitor preference store (theme and language).
//
// Backends implement Store and report their errors. Components never talk to
// a backend directly: they use Safe, which turns every failure into "value
// missing" on read and a no-op on write, logging at debug level. A broken
// Redis therefore never blocks a language switch or a theme flip.
//
//	store := prefs.NewScoped(prefs.NewRedisStore(client), visitorID)
//	p := prefs.NewSafe(store, prefs.WithLogger(log))
//	p.Set(ctx, prefs.KeyLang, "es")
package prefs
