package filesystem

import (
	"io/fs"
	"path/filepath"

	"github.com/arthur-debert/confrec/pkg/types"
)

// rootedFS translates absolute paths onto a directory prefix, so a
// transaction against /etc/app.conf can be executed inside a staging or
// test root instead of the live system.
type rootedFS struct {
	base types.FS
	root string
}

// NewRooted wraps an FS so all paths are resolved under root. A root of
// "/" or "" returns the base unchanged.
func NewRooted(base types.FS, root string) types.FS {
	if root == "" || root == "/" {
		return base
	}
	return &rootedFS{base: base, root: root}
}

func (r *rootedFS) resolve(name string) string {
	return filepath.Join(r.root, name)
}

func (r *rootedFS) Stat(name string) (fs.FileInfo, error) {
	return r.base.Stat(r.resolve(name))
}

func (r *rootedFS) ReadFile(name string) ([]byte, error) {
	return r.base.ReadFile(r.resolve(name))
}

func (r *rootedFS) WriteFile(name string, data []byte, perm fs.FileMode) error {
	return r.base.WriteFile(r.resolve(name), data, perm)
}

func (r *rootedFS) MkdirAll(path string, perm fs.FileMode) error {
	return r.base.MkdirAll(r.resolve(path), perm)
}

func (r *rootedFS) Remove(name string) error {
	return r.base.Remove(r.resolve(name))
}

func (r *rootedFS) Rename(oldpath, newpath string) error {
	return r.base.Rename(r.resolve(oldpath), r.resolve(newpath))
}

func (r *rootedFS) Lstat(name string) (fs.FileInfo, error) {
	return r.base.Lstat(r.resolve(name))
}
