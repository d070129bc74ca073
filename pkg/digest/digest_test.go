package digest

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/confrec/pkg/errors"
	"github.com/arthur-debert/confrec/pkg/filesystem"
)

func TestCompute(t *testing.T) {
	d := Compute([]byte("Hello, World!\n"))

	assert.Contains(t, string(d), "sha256:")
	assert.Len(t, string(d), 71) // "sha256:" + 64 hex chars

	// Deterministic
	assert.Equal(t, d, Compute([]byte("Hello, World!\n")))

	// Different content, different digest
	assert.NotEqual(t, d, Compute([]byte("Hello, World!")))
}

func TestComputeEmpty(t *testing.T) {
	// Empty content has a well-known SHA256
	expected := Digest("sha256:e3b0c44298fc1c149afbf4c8996fb92427ae41e4649b934ca495991b7852b855")
	assert.Equal(t, expected, Compute(nil))
	assert.Equal(t, expected, Compute([]byte{}))
}

func TestValid(t *testing.T) {
	assert.True(t, Compute([]byte("key = value\n")).Valid())
	assert.True(t, Compute(nil).Valid())

	assert.False(t, Digest("").Valid())
	assert.False(t, Digest("sha256:").Valid())
	assert.False(t, Digest("sha256:abcd").Valid())
	assert.False(t, Digest("md5:e3b0c44298fc1c149afbf4c8996fb924").Valid())
	// Hex must be lowercase; mixed case never matches a computed digest.
	assert.False(t, Digest("sha256:E3B0C44298FC1C149AFBF4C8996FB92427AE41E4649B934CA495991B7852B855").Valid())
}

func TestFile(t *testing.T) {
	fs := filesystem.NewOS()
	dir := t.TempDir()
	path := filepath.Join(dir, "app.conf")

	content := []byte("key = value\n")
	require.NoError(t, os.WriteFile(path, content, 0644))

	d, err := File(fs, path)
	require.NoError(t, err)
	assert.Equal(t, Compute(content), d)
}

func TestFileNotFound(t *testing.T) {
	fs := filesystem.NewOS()

	_, err := File(fs, filepath.Join(t.TempDir(), "missing.conf"))
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrFileNotFound))
}

func TestCacheProbeOnce(t *testing.T) {
	fs := filesystem.NewOS()
	dir := t.TempDir()
	path := filepath.Join(dir, "app.conf")
	require.NoError(t, os.WriteFile(path, []byte("one\n"), 0644))

	cache := NewCache(fs)

	d1, exists, err := cache.Probe(path)
	require.NoError(t, err)
	assert.True(t, exists)

	// Change the file behind the cache's back; the cached digest must win
	// for the remainder of the transaction.
	require.NoError(t, os.WriteFile(path, []byte("two\n"), 0644))

	d2, exists, err := cache.Probe(path)
	require.NoError(t, err)
	assert.True(t, exists)
	assert.Equal(t, d1, d2)

	// After invalidation the new content is seen.
	cache.Invalidate(path)
	d3, exists, err := cache.Probe(path)
	require.NoError(t, err)
	assert.True(t, exists)
	assert.NotEqual(t, d1, d3)
}

func TestCacheProbeMissing(t *testing.T) {
	fs := filesystem.NewOS()
	cache := NewCache(fs)

	_, exists, err := cache.Probe(filepath.Join(t.TempDir(), "missing.conf"))
	require.NoError(t, err)
	assert.False(t, exists)
}
