package transaction

import (
	"io/fs"

	"github.com/arthur-debert/confrec/pkg/digest"
	"github.com/arthur-debert/confrec/pkg/disposition"
	"github.com/arthur-debert/confrec/pkg/errors"
	"github.com/arthur-debert/confrec/pkg/executor"
	"github.com/arthur-debert/confrec/pkg/logging"
	"github.com/arthur-debert/confrec/pkg/manifest"
	"github.com/arthur-debert/confrec/pkg/ownership"
	"github.com/arthur-debert/confrec/pkg/types"
)

// ContentSource supplies the new package content for a path. Archive
// parsing and extraction live outside this engine; this is the boundary.
type ContentSource interface {
	Content(path string) ([]byte, error)
}

// Request is one path's unit of work as handed in by the surrounding
// transaction processor: the new and old manifest records, either of which
// may be absent.
type Request struct {
	Path string
	New  *manifest.FileRecord
	Old  *manifest.FileRecord

	// StillShipped marks an old-only request whose path the new package
	// version continues to ship outside config management. The package
	// remains an owner after the transaction, so no erase disposition
	// fires; the unconditional overwrite path governs the file instead.
	StillShipped bool
}

// Result is the reconciliation outcome for one path
type Result struct {
	Path    string
	Outcome disposition.Outcome
	Warning *executor.Warning
	Err     error
}

// Processor runs the reconciliation for all config paths of one
// transaction. It is synchronous and processes paths one at a time; the
// digest cache and ownership tracker live for exactly one Run or Plan.
type Processor struct {
	fs              types.FS
	source          ContentSource
	continueOnError bool

	// Paths owned by packages not touched by this transaction, as
	// reported by the package database.
	retained map[string]int
}

// NewProcessor creates a processor over the given filesystem and content
// source. When continueOnError is set, a failing path is recorded in its
// Result and the remaining paths are still processed; otherwise the first
// failure stops the run.
func NewProcessor(fs types.FS, source ContentSource, continueOnError bool) *Processor {
	return &Processor{
		fs:              fs,
		source:          source,
		continueOnError: continueOnError,
		retained:        make(map[string]int),
	}
}

// RetainOwner notes an owner of path that is unaffected by this
// transaction. Erase dispositions for the path will see it as a remaining
// owner.
func (p *Processor) RetainOwner(path string) {
	p.retained[path]++
}

// Run decides and applies an outcome for every request. Ownership counts
// are computed for all paths before any disposition is evaluated.
func (p *Processor) Run(requests []Request) ([]Result, error) {
	return p.process(requests, true)
}

// Plan decides outcomes without touching the filesystem beyond digest
// probes. Warnings are not produced; they belong to execution.
func (p *Processor) Plan(requests []Request) ([]Result, error) {
	return p.process(requests, false)
}

func (p *Processor) process(requests []Request, apply bool) ([]Result, error) {
	logger := logging.GetLogger("transaction.processor").With().
		Int("paths", len(requests)).
		Bool("apply", apply).
		Logger()

	tracker := p.buildTracker(requests)
	cache := digest.NewCache(p.fs)

	results := make([]Result, 0, len(requests))
	for _, req := range requests {
		res := p.processOne(req, tracker, cache, apply)
		results = append(results, res)

		if res.Err != nil {
			logger.Error().Err(res.Err).Str("path", req.Path).Msg("Path reconciliation failed")
			if !p.continueOnError {
				return results, res.Err
			}
		}
	}

	logger.Debug().Int("results", len(results)).Msg("Transaction processed")
	return results, nil
}

// buildTracker populates final ownership counts for every path before any
// disposition decision is made.
func (p *Processor) buildTracker(requests []Request) *ownership.Tracker {
	tracker := ownership.NewTracker()
	for path, n := range p.retained {
		for i := 0; i < n; i++ {
			tracker.AddOwner(path)
		}
	}
	for _, req := range requests {
		switch {
		case req.New != nil && req.Old != nil:
			tracker.AddOwner(req.Path)
		case req.New != nil:
			tracker.AddInstall(req.Path)
		case req.Old != nil:
			if req.StillShipped {
				tracker.AddOwner(req.Path)
			} else {
				tracker.AddErase(req.Path)
			}
		}
	}
	return tracker
}

func (p *Processor) processOne(req Request, tracker *ownership.Tracker, cache *digest.Cache, apply bool) Result {
	entry := disposition.NewEntry(req.Path, req.New, req.Old)
	entry.OwnersBefore = tracker.Before(req.Path)
	entry.OwnersAfter = tracker.After(req.Path)

	// Ghost entries never trigger a disk read, so decide before probing.
	if entry.Attrs.IsGhost() {
		return Result{Path: req.Path, Outcome: disposition.Outcome{Action: disposition.Keep}}
	}

	// Erase of a non-last owner contributes no disposition at all; the
	// path's fate is governed by whichever owner remains.
	if req.New == nil && !tracker.LastOwnerLeaving(req.Path) {
		return Result{Path: req.Path, Outcome: disposition.Outcome{Action: disposition.Keep}}
	}

	disk, exists, err := cache.Probe(req.Path)
	if err != nil {
		return Result{Path: req.Path, Err: err}
	}

	outcome := disposition.Decide(entry, disk, exists)
	res := Result{Path: req.Path, Outcome: outcome}

	if !apply {
		return res
	}

	content, mode, err := p.contentFor(req, outcome)
	if err != nil {
		res.Err = err
		return res
	}

	warning, err := executor.Apply(p.fs, outcome, req.Path, content, mode)
	if err != nil {
		res.Err = err
		return res
	}
	res.Warning = warning

	// The path (or its sibling artifacts) changed; a retry of the same
	// entry must re-read the disk.
	if outcome.Action != disposition.Keep {
		cache.Invalidate(req.Path)
	}

	return res
}

// contentFor fetches the new package content for outcomes that write
func (p *Processor) contentFor(req Request, outcome disposition.Outcome) ([]byte, fs.FileMode, error) {
	switch outcome.Action {
	case disposition.Write, disposition.BackupThenWrite, disposition.WriteAside:
		if req.New == nil {
			return nil, 0, errors.Newf(errors.ErrEntryInvalid, "outcome %s requires a new record for %s", outcome, req.Path)
		}
		content, err := p.source.Content(req.Path)
		if err != nil {
			return nil, 0, errors.Wrapf(err, errors.ErrPayloadRead, "fetching content for %s", req.Path)
		}
		return content, req.New.Mode, nil
	default:
		return nil, 0, nil
	}
}
