package disposition

import (
	"github.com/arthur-debert/confrec/pkg/manifest"
)

// Entry is the engine's per-path unit of work within one transaction.
//
// Old present means a previously-installed package already owns the path
// with a recorded shipped digest; absent means this is the path's first
// appearance under package management. New present means the target package
// state still ships the path; absent means ownership is being erased.
//
// An Entry is constructed once per path per transaction, consumed exactly
// once by Decide, and discarded after the executor acts on its Outcome.
type Entry struct {
	Path  string
	Attrs manifest.Attr

	New *manifest.FileRecord
	Old *manifest.FileRecord

	// Total owner counts for the path across the whole transaction;
	// populated by the ownership tracker before any decision is made.
	OwnersBefore int
	OwnersAfter  int
}

// NewEntry builds an Entry from the old and new records for a path. Attrs
// follow the incoming record (new when present, otherwise old).
func NewEntry(path string, newRec, oldRec *manifest.FileRecord) Entry {
	e := Entry{Path: path, New: newRec, Old: oldRec}
	switch {
	case newRec != nil:
		e.Attrs = newRec.Attrs
	case oldRec != nil:
		e.Attrs = oldRec.Attrs
	}
	return e
}
