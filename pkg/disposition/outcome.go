package disposition

import "fmt"

// Backup suffixes attached to side artifacts. Files carrying one of these
// names are plain files from that point on; later transactions never treat
// them as config entries.
const (
	SuffixOrig = ".rpmorig"
	SuffixSave = ".rpmsave"
	SuffixNew  = ".rpmnew"
)

// Action is what happens to a path on disk. The engine only ever performs
// these six things, everything else is orchestration.
type Action int

const (
	// Keep leaves the path exactly as it is; no I/O at all.
	Keep Action = iota

	// Write materializes the new content at the path. Prior content, if
	// any, is known-identical or known-safe-to-discard.
	Write

	// BackupThenWrite renames the existing content to path+suffix, then
	// writes the new content to the path.
	BackupThenWrite

	// WriteAside leaves the path untouched and writes the new content to
	// path+suffix instead.
	WriteAside

	// Remove deletes the path.
	Remove

	// BackupThenRemove renames the path to path+suffix; the primary path
	// ends absent.
	BackupThenRemove
)

// Outcome is the engine's decision for one path: the action plus the backup
// suffix for the variants that produce a side artifact.
type Outcome struct {
	Action Action
	Suffix string
}

// String returns a human-readable name for an outcome
func (o Outcome) String() string {
	switch o.Action {
	case Keep:
		return "keep"
	case Write:
		return "write"
	case BackupThenWrite:
		return fmt.Sprintf("backup(%s)+write", o.Suffix)
	case WriteAside:
		return fmt.Sprintf("write-aside(%s)", o.Suffix)
	case Remove:
		return "remove"
	case BackupThenRemove:
		return fmt.Sprintf("backup(%s)+remove", o.Suffix)
	default:
		return fmt.Sprintf("unknown(%d)", int(o.Action))
	}
}
