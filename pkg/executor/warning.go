package executor

import "fmt"

// Warning is the diagnostic attached to an outcome that produced a backup
// artifact. The executor returns it to the caller for aggregation; it never
// prints or logs warnings itself.
type Warning struct {
	Path   string
	Backup string
	Verb   string // "saved" for renames, "created" for write-asides
}

// String renders the warning in its canonical textual shape, e.g.
// "warning: /etc/app.conf saved as /etc/app.conf.rpmsave".
func (w *Warning) String() string {
	return fmt.Sprintf("warning: %s %s as %s", w.Path, w.Verb, w.Backup)
}
