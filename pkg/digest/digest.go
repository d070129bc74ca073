package digest

import (
	"crypto/sha256"
	"fmt"
	"os"
	"strings"

	"github.com/arthur-debert/confrec/pkg/errors"
	"github.com/arthur-debert/confrec/pkg/types"
)

// Digest is a content fingerprint in "sha256:<hex>" form. Two digests are
// equal iff the underlying byte sequences are identical; no ordering is
// defined or needed.
type Digest string

// Compute calculates the digest of a byte sequence
func Compute(data []byte) Digest {
	sum := sha256.Sum256(data)
	return Digest(fmt.Sprintf("sha256:%x", sum))
}

// Valid reports whether d has the canonical shape Compute produces: the
// "sha256:" prefix followed by 64 lowercase hex digits. Anything else would
// compare unequal to every computed digest and must be rejected at parse
// time rather than silently misclassify content.
func (d Digest) Valid() bool {
	const prefix = "sha256:"
	s := string(d)
	if len(s) != len(prefix)+sha256.Size*2 || !strings.HasPrefix(s, prefix) {
		return false
	}
	for _, c := range s[len(prefix):] {
		if (c < '0' || c > '9') && (c < 'a' || c > 'f') {
			return false
		}
	}
	return true
}

// File calculates the digest of a file's current content.
// A missing path yields an ErrFileNotFound error, distinct from a
// zero-length file which digests normally.
func File(fs types.FS, path string) (Digest, error) {
	data, err := fs.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", errors.Wrapf(err, errors.ErrFileNotFound, "no such file: %s", path)
		}
		return "", errors.Wrapf(err, errors.ErrFileAccess, "reading %s", path)
	}
	return Compute(data), nil
}
