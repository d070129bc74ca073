// Package testutil provides test helpers for confrec, most notably an
// in-memory types.FS implementation with error injection.
package testutil
