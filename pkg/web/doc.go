// Package web hosts the portfolio page.
//
// Every visitor gets a session, found by the pid cookie, that owns the page
// model, the language loader and the theme toggle. The shell page opens a
// DataStar event stream on /ui/stream; button clicks post to /ui/lang/{code}
// and /ui/theme, and the resulting page changes are pushed back as element
// and signal patches.
//
// The same router serves the content documents under /lang/{code}.json from
// embedded files, so a single binary is a complete content source too.
package web
