// Package ownership tracks multi-package ownership of paths within one
// transaction, gating erase dispositions on the removal of the last owner.
package ownership
