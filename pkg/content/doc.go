// Package content fetches and decodes the per-language page content.
//
// The content source is an HTTP endpoint serving `<base>/lang/<code>.json`
// documents with the fields name, subtitle, skillsTitle, skills, aboutTitle
// and aboutText. Fetch classifies every failure:
//
//   - *HTTPError: the server answered with a non-2xx status.
//   - *TransportError: the request never produced a usable JSON object.
//
// The distinction matters to the loader, which abandons the switch on an
// HTTP error but renders EmptyFallback on a transport error.
package content
