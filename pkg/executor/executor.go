package executor

import (
	"io/fs"
	"os"
	"path/filepath"

	"github.com/arthur-debert/confrec/pkg/disposition"
	"github.com/arthur-debert/confrec/pkg/errors"
	"github.com/arthur-debert/confrec/pkg/logging"
	"github.com/arthur-debert/confrec/pkg/types"
)

// Apply carries out one outcome on the filesystem. newContent and mode are
// only consulted by the writing variants. It returns the warning for
// outcomes that produced a backup artifact, or nil.
//
// Backups are renames, never copy+delete: the rename happens before the
// write so a crash mid-operation leaves either the pre-image backed up with
// no new content yet, or both present, but never loses the pre-image.
func Apply(fsys types.FS, outcome disposition.Outcome, path string, newContent []byte, mode fs.FileMode) (*Warning, error) {
	logger := logging.GetLogger("executor").With().
		Str("path", path).
		Str("outcome", outcome.String()).
		Logger()

	switch outcome.Action {
	case disposition.Keep:
		return nil, nil

	case disposition.Write:
		return nil, writeFile(fsys, path, newContent, mode)

	case disposition.BackupThenWrite:
		backup := path + outcome.Suffix
		renamed, err := renameIfExists(fsys, path, backup)
		if err != nil {
			return nil, err
		}
		if err := writeFile(fsys, path, newContent, mode); err != nil {
			return nil, err
		}
		if !renamed {
			// The path vanished between decision and execution; there
			// was nothing to back up, so there is nothing to warn about.
			logger.Debug().Msg("Backup source disappeared before rename")
			return nil, nil
		}
		return &Warning{Path: path, Backup: backup, Verb: "saved"}, nil

	case disposition.WriteAside:
		aside := path + outcome.Suffix
		if err := writeFile(fsys, aside, newContent, mode); err != nil {
			return nil, err
		}
		return &Warning{Path: path, Backup: aside, Verb: "created"}, nil

	case disposition.Remove:
		return nil, removeIfExists(fsys, path)

	case disposition.BackupThenRemove:
		backup := path + outcome.Suffix
		renamed, err := renameIfExists(fsys, path, backup)
		if err != nil {
			return nil, err
		}
		if !renamed {
			return nil, nil
		}
		return &Warning{Path: path, Backup: backup, Verb: "saved"}, nil

	default:
		return nil, errors.Newf(errors.ErrInternal, "unknown outcome action %d", int(outcome.Action))
	}
}

// writeFile writes content at path, creating parent directories as needed
func writeFile(fsys types.FS, path string, content []byte, mode fs.FileMode) error {
	dir := filepath.Dir(path)
	if _, err := fsys.Stat(dir); os.IsNotExist(err) {
		if err := fsys.MkdirAll(dir, 0755); err != nil {
			return errors.Wrapf(err, errors.ErrDirCreate, "creating %s", dir)
		}
	}
	if err := fsys.WriteFile(path, content, mode); err != nil {
		return errors.Wrapf(err, errors.ErrFileWrite, "writing %s", path)
	}
	return nil
}

// renameIfExists renames oldpath to newpath, overwriting any prior file at
// newpath (last backup wins). A missing oldpath is a no-op success: the
// engine decided assuming the path existed, but concurrent external
// deletion must not fail the transaction.
func renameIfExists(fsys types.FS, oldpath, newpath string) (bool, error) {
	if _, err := fsys.Lstat(oldpath); err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, errors.Wrapf(err, errors.ErrFileAccess, "stat %s", oldpath)
	}
	if err := fsys.Rename(oldpath, newpath); err != nil {
		return false, errors.Wrapf(err, errors.ErrFileRename, "renaming %s to %s", oldpath, newpath)
	}
	return true, nil
}

// removeIfExists deletes path, treating a missing path as success
func removeIfExists(fsys types.FS, path string) error {
	if err := fsys.Remove(path); err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return errors.Wrapf(err, errors.ErrFileRemove, "removing %s", path)
	}
	return nil
}
