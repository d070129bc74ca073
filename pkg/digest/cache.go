package digest

import (
	"github.com/arthur-debert/confrec/pkg/errors"
	"github.com/arthur-debert/confrec/pkg/types"
)

// Cache memoizes on-disk digests for the lifetime of one transaction so a
// path is read at most once no matter how many decisions consult it.
// It is not safe for concurrent use; transactions process paths serially.
type Cache struct {
	fs      types.FS
	entries map[string]probeResult
}

type probeResult struct {
	digest Digest
	exists bool
	err    error
}

// NewCache creates a digest cache over the given filesystem
func NewCache(fs types.FS) *Cache {
	return &Cache{
		fs:      fs,
		entries: make(map[string]probeResult),
	}
}

// Probe returns the digest of the path's current content. The second return
// is false when the path does not exist, which is not an error here: the
// disposition matrix has branches for absent disk content.
func (c *Cache) Probe(path string) (Digest, bool, error) {
	if r, ok := c.entries[path]; ok {
		return r.digest, r.exists, r.err
	}

	var r probeResult
	d, err := File(c.fs, path)
	switch {
	case err == nil:
		r = probeResult{digest: d, exists: true}
	case errors.IsErrorCode(err, errors.ErrFileNotFound):
		r = probeResult{exists: false}
	default:
		r = probeResult{err: err}
	}

	c.entries[path] = r
	return r.digest, r.exists, r.err
}

// Invalidate drops the cached result for a path. The executor calls this
// after mutating a path so a retry of the same entry re-reads the disk.
func (c *Cache) Invalidate(path string) {
	delete(c.entries, path)
}
