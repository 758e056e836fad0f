// Package feature provides simple on/off feature flags.
//
// Flags are defined in a YAML file (LoadYAMLFile) or in code
// (NewMemoryProvider) and looked up through the Provider interface. The
// portfolio uses them to switch the hero portrait and call-to-action links.
package feature
