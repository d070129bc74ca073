package disposition

import (
	"github.com/arthur-debert/confrec/pkg/digest"
)

// Decide computes the outcome for one entry given the digest of the path's
// current on-disk content. diskExists is false when the path is absent, in
// which case disk is ignored.
//
// The function is pure: it never touches the filesystem, so the full
// decision matrix is unit-testable in isolation. Digest equality is always
// checked before any flag inspection; noreplace only ever distinguishes the
// genuine-conflict sub-case of an upgrade.
func Decide(e Entry, disk digest.Digest, diskExists bool) Outcome {
	// Ghost entries are bookkeeping only: never materialized, never
	// removed, regardless of every other flag or digest relationship.
	if e.Attrs.IsGhost() {
		return Outcome{Action: Keep}
	}

	switch {
	case e.New != nil && e.Old == nil:
		return decideInstall(e, disk, diskExists)
	case e.New != nil && e.Old != nil:
		return decideUpgrade(e, disk, diskExists)
	case e.New == nil && e.Old != nil:
		return decideErase(e, disk, diskExists)
	default:
		// Neither record present: nothing to reconcile.
		return Outcome{Action: Keep}
	}
}

// decideInstall handles a path's first appearance under package management.
// A pre-existing foreign file with different content is always preserved as
// .rpmorig; noreplace only governs upgrade-time conflicts, not collisions
// with files the package manager never shipped.
func decideInstall(e Entry, disk digest.Digest, diskExists bool) Outcome {
	if !diskExists {
		return Outcome{Action: Write}
	}
	if disk == e.New.Digest {
		// Content already correct; no spurious backup.
		return Outcome{Action: Keep}
	}
	return Outcome{Action: BackupThenWrite, Suffix: SuffixOrig}
}

// decideUpgrade is the three-way comparison of shipped-old, on-disk and
// shipped-new digests.
func decideUpgrade(e Entry, disk digest.Digest, diskExists bool) Outcome {
	// The file was installed previously, so it ordinarily exists. If it
	// was deleted externally there is nothing to back up: recreate it.
	if !diskExists {
		return Outcome{Action: Write}
	}

	shippedOld := e.Old.Digest
	shippedNew := e.New.Digest

	if disk == shippedOld {
		if shippedNew == shippedOld {
			// Nothing changed anywhere.
			return Outcome{Action: Keep}
		}
		// Package changed content, user never touched it.
		return Outcome{Action: Write}
	}

	// User customized the file.
	if shippedNew == shippedOld {
		// Package did not change; the user's version stays.
		return Outcome{Action: Keep}
	}
	if disk == shippedNew {
		// The user's edit already matches the new shipped content.
		return Outcome{Action: Keep}
	}

	// Genuine conflict: both sides changed and disagree.
	if e.Attrs.IsNoReplace() {
		return Outcome{Action: WriteAside, Suffix: SuffixNew}
	}
	return Outcome{Action: BackupThenWrite, Suffix: SuffixSave}
}

// decideErase handles removal of the last owner of a path. Erase of a
// non-last owner is not this engine's business; the path's fate is governed
// by whichever owner remains.
func decideErase(e Entry, disk digest.Digest, diskExists bool) Outcome {
	if e.OwnersAfter > 0 {
		return Outcome{Action: Keep}
	}
	if !diskExists {
		// Already gone (covers missingok entries too): nothing to back
		// up or remove.
		return Outcome{Action: Keep}
	}
	if disk == e.Old.Digest {
		return Outcome{Action: Remove}
	}
	return Outcome{Action: BackupThenRemove, Suffix: SuffixSave}
}
