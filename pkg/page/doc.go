// Package page holds the per-visitor document surface: the content container
// and its visibility, the active language control, the theme attribute and
// the theme transition markers.
//
// Mutations bump Snapshot.Revision and wake subscribers. The web host
// subscribes once per stream and re-renders from Snapshot.
package page
