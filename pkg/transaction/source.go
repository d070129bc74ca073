package transaction

import (
	"path/filepath"

	"github.com/arthur-debert/confrec/pkg/types"
)

// DirSource is a ContentSource over a payload directory laid out like the
// target root: the content for /etc/app/app.conf lives at
// <dir>/etc/app/app.conf. This is how extracted package payloads are
// handed to the engine.
type DirSource struct {
	fs  types.FS
	dir string
}

// NewDirSource creates a ContentSource over a payload directory
func NewDirSource(fs types.FS, dir string) *DirSource {
	return &DirSource{fs: fs, dir: dir}
}

// Content reads the payload file for an absolute target path
func (s *DirSource) Content(path string) ([]byte, error) {
	return s.fs.ReadFile(filepath.Join(s.dir, path))
}
