// Package filesystem provides filesystem implementations for confrec.
//
// This package contains implementations of the types.FS interface,
// including the standard OS filesystem used in production.
package filesystem
