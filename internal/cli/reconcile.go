package cli

import (
	"github.com/arthur-debert/confrec/pkg/errors"
	"github.com/arthur-debert/confrec/pkg/filesystem"
	"github.com/arthur-debert/confrec/pkg/logging"
	"github.com/arthur-debert/confrec/pkg/manifest"
	"github.com/arthur-debert/confrec/pkg/transaction"
	"github.com/arthur-debert/confrec/pkg/types"
)

// ReconcileOptions holds everything needed to run one reconciliation
type ReconcileOptions struct {
	OldManifest string // path to the installed version's manifest, "" on fresh install
	NewManifest string // path to the target version's manifest, "" on erase
	Payload     string // directory holding the new package content, laid out like the target root
	Root        string // target root, "/" for the live system
	Apply       bool   // false plans without touching the target

	ContinueOnError bool
	FileSystem      types.FS // injectable for testing; defaults to the OS
}

// Reconcile loads the manifests, builds per-path requests and runs the
// transaction processor. This is the whole CLI use case; commands only
// parse flags and render the results.
func Reconcile(opts ReconcileOptions) ([]transaction.Result, error) {
	logger := logging.GetLogger("cli.reconcile")

	if opts.OldManifest == "" && opts.NewManifest == "" {
		return nil, errors.New(errors.ErrInvalidInput, "at least one of --old and --new is required")
	}
	if opts.Apply && opts.NewManifest != "" && opts.Payload == "" {
		return nil, errors.New(errors.ErrInvalidInput, "--payload is required when applying new content")
	}

	fs := opts.FileSystem
	if fs == nil {
		fs = filesystem.NewOS()
	}

	oldRecords, err := loadRecords(fs, opts.OldManifest)
	if err != nil {
		return nil, err
	}
	newRecords, err := loadRecords(fs, opts.NewManifest)
	if err != nil {
		return nil, err
	}

	requests := transaction.BuildRequests(oldRecords, newRecords)
	logger.Info().
		Int("old_records", len(oldRecords)).
		Int("new_records", len(newRecords)).
		Int("config_paths", len(requests)).
		Bool("apply", opts.Apply).
		Msg("Reconciling config paths")

	target := filesystem.NewRooted(fs, opts.Root)

	var source transaction.ContentSource
	if opts.Payload != "" {
		source = transaction.NewDirSource(fs, opts.Payload)
	}

	processor := transaction.NewProcessor(target, source, opts.ContinueOnError)
	if opts.Apply {
		return processor.Run(requests)
	}
	return processor.Plan(requests)
}

func loadRecords(fs types.FS, path string) ([]manifest.FileRecord, error) {
	if path == "" {
		return nil, nil
	}
	m, err := manifest.Load(fs, path)
	if err != nil {
		return nil, err
	}
	return m.Records()
}
