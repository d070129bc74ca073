// Package transaction orchestrates config-file reconciliation for one
// package transaction: it populates ownership counts for every path, then
// decides and applies exactly one outcome per path, aggregating warnings
// and per-path errors for the caller.
package transaction
