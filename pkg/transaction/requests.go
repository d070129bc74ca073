package transaction

import (
	"sort"

	"github.com/arthur-debert/confrec/pkg/logging"
	"github.com/arthur-debert/confrec/pkg/manifest"
)

// BuildRequests pairs up the old and new manifest record sets per path and
// returns one Request per config path, sorted by path for deterministic
// processing.
//
// Non-config entries follow the unconditional overwrite/remove path and are
// not this engine's business. A path that moves from config to non-config
// is treated as an erase of the config record.
func BuildRequests(oldRecords, newRecords []manifest.FileRecord) []Request {
	logger := logging.GetLogger("transaction.requests")

	type pair struct {
		oldRec *manifest.FileRecord
		newRec *manifest.FileRecord
	}
	paths := make(map[string]*pair)

	for i := range oldRecords {
		rec := &oldRecords[i]
		paths[rec.Path] = &pair{oldRec: rec}
	}
	for i := range newRecords {
		rec := &newRecords[i]
		if p, ok := paths[rec.Path]; ok {
			p.newRec = rec
		} else {
			paths[rec.Path] = &pair{newRec: rec}
		}
	}

	requests := make([]Request, 0, len(paths))
	for path, p := range paths {
		oldIsConfig := p.oldRec != nil && p.oldRec.Attrs.IsConfig()
		newIsConfig := p.newRec != nil && p.newRec.Attrs.IsConfig()

		switch {
		case newIsConfig:
			req := Request{Path: path, New: p.newRec}
			if oldIsConfig {
				req.Old = p.oldRec
			}
			requests = append(requests, req)
		case oldIsConfig:
			// Pure erase, or the path stopped being config. In the latter
			// case the package still owns the path afterwards, so the
			// config record goes away without touching the file.
			requests = append(requests, Request{
				Path:         path,
				Old:          p.oldRec,
				StillShipped: p.newRec != nil,
			})
		default:
			logger.Trace().Str("path", path).Msg("Skipping non-config path")
		}
	}

	sort.Slice(requests, func(i, j int) bool { return requests[i].Path < requests[j].Path })
	return requests
}
