// Package format holds the duration, ETA and progress-bar formatting shared
// by the CLI and the TUI.
package format
