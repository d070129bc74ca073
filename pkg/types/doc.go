// Package types defines the shared interfaces used across confrec.
//
// The FS interface is the seam between the reconciliation engine and the
// real filesystem; production code uses the OS implementation from
// pkg/filesystem while tests inject an in-memory one from pkg/testutil.
package types
