// Package digest computes content fingerprints for reconciliation decisions.
//
// Digest equality is the sole basis for "unchanged" determinations in the
// disposition matrix; file contents are never compared directly. A
// per-transaction Cache guarantees each path is read from disk at most once.
package digest
