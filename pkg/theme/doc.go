// Package theme switches the page between the dark and light themes.
//
// Toggle marks the page with a fade-out marker, flips data-theme after a
// short delay, persists the new value and marks the fade-in, then clears
// both markers. Start restores the persisted theme on session creation.
package theme
