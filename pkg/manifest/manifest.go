package manifest

import (
	"io/fs"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/arthur-debert/confrec/pkg/digest"
	"github.com/arthur-debert/confrec/pkg/errors"
	"github.com/arthur-debert/confrec/pkg/types"
)

// Manifest describes one package version's file list as loaded from a
// manifest document. It is the CLI-facing representation; the engine itself
// only ever sees the FileRecords.
type Manifest struct {
	Package string      `toml:"package" yaml:"package"`
	Version string      `toml:"version" yaml:"version"`
	Files   []fileEntry `toml:"files" yaml:"files"`
}

// fileEntry is the on-disk shape of a single manifest record. Flags use the
// single-letter form ("cn" for a noreplace config file) and mode is an
// octal string.
type fileEntry struct {
	Path   string `toml:"path" yaml:"path"`
	Flags  string `toml:"flags" yaml:"flags"`
	Digest string `toml:"digest" yaml:"digest"`
	Mode   string `toml:"mode" yaml:"mode"`
}

// Load reads and parses a manifest document. The format is chosen by
// extension: .toml, .yaml or .yml.
func Load(fsys types.FS, path string) (*Manifest, error) {
	data, err := fsys.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrFileAccess, "reading manifest %s", path)
	}

	var m Manifest
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		if err := toml.Unmarshal(data, &m); err != nil {
			return nil, errors.Wrapf(err, errors.ErrManifestParse, "parsing %s", path)
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &m); err != nil {
			return nil, errors.Wrapf(err, errors.ErrManifestParse, "parsing %s", path)
		}
	default:
		return nil, errors.Newf(errors.ErrManifestParse, "unsupported manifest format: %s", path)
	}

	return &m, nil
}

// Records converts the parsed entries into immutable FileRecords,
// validating flags, digest and mode along the way.
func (m *Manifest) Records() ([]FileRecord, error) {
	records := make([]FileRecord, 0, len(m.Files))
	for _, f := range m.Files {
		if f.Path == "" || !filepath.IsAbs(f.Path) {
			return nil, errors.Newf(errors.ErrManifestInvalid, "manifest path must be absolute: %q", f.Path)
		}

		attrs, err := ParseAttrs(f.Flags)
		if err != nil {
			return nil, err
		}

		dig := digest.Digest(f.Digest)
		switch {
		case f.Digest == "":
			// Ghost entries carry no content, so no digest. Everything
			// else needs one for the three-way comparison.
			if !attrs.IsGhost() {
				return nil, errors.Newf(errors.ErrManifestInvalid, "missing digest for %s", f.Path)
			}
		case !dig.Valid():
			return nil, errors.Newf(errors.ErrManifestInvalid, "malformed digest %q for %s", f.Digest, f.Path)
		}

		mode := fs.FileMode(0644)
		if f.Mode != "" {
			parsed, err := strconv.ParseUint(f.Mode, 8, 32)
			if err != nil {
				return nil, errors.Wrapf(err, errors.ErrManifestInvalid, "bad mode %q for %s", f.Mode, f.Path)
			}
			mode = fs.FileMode(parsed)
		}

		records = append(records, FileRecord{
			Path:   f.Path,
			Attrs:  attrs,
			Digest: dig,
			Mode:   mode,
		})
	}
	return records, nil
}
