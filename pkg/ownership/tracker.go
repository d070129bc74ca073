package ownership

// Tracker records, for every path touched by a transaction, how many
// packages own it before and after the whole transaction completes. It is
// the only state shared across per-path decisions and must be fully
// populated before any erase disposition is evaluated (two-phase: count
// first, decide second).
//
// Counts are plain reference counts computed once per transaction, not live
// links between package records.
type Tracker struct {
	counts map[string]*ownerCount
}

type ownerCount struct {
	before int
	after  int
}

// NewTracker creates an empty ownership tracker
func NewTracker() *Tracker {
	return &Tracker{counts: make(map[string]*ownerCount)}
}

// Record sets the absolute owner counts for a path
func (t *Tracker) Record(path string, before, after int) {
	t.counts[path] = &ownerCount{before: before, after: after}
}

// AddOwner notes a package that owns the path both before and after the
// transaction (an untouched co-owner, or an upgrade of the same package).
func (t *Tracker) AddOwner(path string) {
	c := t.count(path)
	c.before++
	c.after++
}

// AddInstall notes a package gaining ownership of the path
func (t *Tracker) AddInstall(path string) {
	t.count(path).after++
}

// AddErase notes a package giving up ownership of the path
func (t *Tracker) AddErase(path string) {
	t.count(path).before++
}

// Before returns the number of owners prior to the transaction
func (t *Tracker) Before(path string) int {
	if c, ok := t.counts[path]; ok {
		return c.before
	}
	return 0
}

// After returns the number of owners once the transaction completes
func (t *Tracker) After(path string) int {
	if c, ok := t.counts[path]; ok {
		return c.after
	}
	return 0
}

// LastOwnerLeaving reports whether erasing the path in this transaction
// removes its final owner. Erase disposition is only evaluated when true;
// while owners remain, the path's fate is theirs.
func (t *Tracker) LastOwnerLeaving(path string) bool {
	return t.After(path) == 0
}

func (t *Tracker) count(path string) *ownerCount {
	c, ok := t.counts[path]
	if !ok {
		c = &ownerCount{}
		t.counts[path] = c
	}
	return c
}
