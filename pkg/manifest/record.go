package manifest

import (
	"io/fs"

	"github.com/arthur-debert/confrec/pkg/digest"
)

// FileRecord is the per-path manifest entry of one package version: where
// the file lives, its attribute flags, the digest of the content exactly as
// shipped, and the permission bits to apply when the file is materialized.
//
// Records are immutable once constructed; they belong to the package
// manifest, not to this engine.
type FileRecord struct {
	Path   string
	Attrs  Attr
	Digest digest.Digest
	Mode   fs.FileMode
}
