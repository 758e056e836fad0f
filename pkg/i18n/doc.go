// Package i18n defines the language codes the portfolio can display.
//
// Codes are parsed with golang.org/x/text/language and reduced to their base
// language, so "EN", "en-GB" and "en" all map to Code("en"). A Set is the
// fixed list configured at startup; the loader and the web host only accept
// codes that belong to it.
package i18n
