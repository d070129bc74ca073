// Package executor applies disposition outcomes to the filesystem.
//
// An outcome is applied in full or the failure is reported before later
// steps are attempted; backup renames always precede the write of new
// content. The executor returns warnings to the caller instead of printing
// them.
package executor
