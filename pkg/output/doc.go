// Package output renders reconciliation results and warnings for the
// terminal, with color gated on TTY detection and the configured mode.
package output
