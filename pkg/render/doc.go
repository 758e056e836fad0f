// Package render turns a content payload into the markup of the page's
// content container: a hero section, a skills list and the about paragraphs.
//
// Every text field is HTML-escaped. Empty lists still produce their section
// (an empty <ul></ul>, a titled about section without paragraphs) so the page
// layout never collapses. The hero portrait and call-to-action links are
// static extras switched by feature flags.
package render
