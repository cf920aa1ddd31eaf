// Package ui provides terminal color themes and accessors used by the CLI
// output layer. The active theme is process-global and selected once at
// startup.
package ui
