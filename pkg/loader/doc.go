// Package loader implements the language switch of the portfolio page.
//
// A selection hides the content container at once, fetches the language
// document, builds the markup and applies it after a short fade delay:
//
//	l, _ := loader.New(langs, fetcher, pg,
//		loader.WithPreferences(prefs.NewSafe(store)),
//		loader.WithLogger(log),
//	)
//	out, err := l.Select(ctx, "es").Await()
//
// Selecting the language that is already applied does nothing. A response
// with a non-success status abandons the selection and leaves the page as
// it is. Transport failures fall back to empty content. Only the most
// recent selection ever reaches the container; older responses are dropped
// when their apply fires.
package loader
