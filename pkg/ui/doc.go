// Package ui binds the language and theme controls of a page session to the
// loader and the theme toggle, keeping the active-control marker in step.
package ui
