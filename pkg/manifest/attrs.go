package manifest

import (
	"strings"

	"github.com/arthur-debert/confrec/pkg/errors"
)

// Attr is a set of per-file attribute flags from a package manifest.
// Only Config, NoReplace and Ghost influence reconciliation decisions;
// the rest are carried for display and bookkeeping.
type Attr uint32

const (
	AttrDoc Attr = 1 << iota
	AttrConfig
	AttrSpecFile
	AttrMissingOK
	AttrNoReplace
	AttrGhost
	AttrLicense
	AttrReadme
)

// attrLetters maps flags to their classic single-letter form, in display order.
var attrLetters = []struct {
	flag   Attr
	letter byte
}{
	{AttrDoc, 'd'},
	{AttrConfig, 'c'},
	{AttrSpecFile, 's'},
	{AttrMissingOK, 'm'},
	{AttrNoReplace, 'n'},
	{AttrGhost, 'g'},
	{AttrLicense, 'l'},
	{AttrReadme, 'r'},
}

// Has reports whether all flags in mask are set
func (a Attr) Has(mask Attr) bool {
	return a&mask == mask
}

// IsConfig reports whether the entry is a config file
func (a Attr) IsConfig() bool { return a.Has(AttrConfig) }

// IsNoReplace reports whether conflicting new content should be written aside
func (a Attr) IsNoReplace() bool { return a.Has(AttrNoReplace) }

// IsGhost reports whether the entry is never materialized from package content
func (a Attr) IsGhost() bool { return a.Has(AttrGhost) }

// String renders the flags in their single-letter form, e.g. "cn" for a
// noreplace config file.
func (a Attr) String() string {
	var sb strings.Builder
	for _, al := range attrLetters {
		if a.Has(al.flag) {
			sb.WriteByte(al.letter)
		}
	}
	return sb.String()
}

// ParseAttrs parses the single-letter flag form back into an Attr set
func ParseAttrs(s string) (Attr, error) {
	var a Attr
letters:
	for i := 0; i < len(s); i++ {
		for _, al := range attrLetters {
			if s[i] == al.letter {
				a |= al.flag
				continue letters
			}
		}
		return 0, errors.Newf(errors.ErrManifestInvalid, "unknown file flag %q in %q", s[i], s)
	}
	return a, nil
}
