package testutil

import (
	"errors"
	"io/fs"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryFSWriteAndRead(t *testing.T) {
	m := NewMemoryFS()
	require.NoError(t, m.MkdirAll("/etc/app", 0755))

	content := []byte("key = value\n")
	require.NoError(t, m.WriteFile("/etc/app/app.conf", content, 0644))

	got, err := m.ReadFile("/etc/app/app.conf")
	require.NoError(t, err)
	assert.Equal(t, content, got)

	info, err := m.Stat("/etc/app/app.conf")
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0644), info.Mode())
	assert.False(t, info.IsDir())
}

func TestMemoryFSWriteRequiresParent(t *testing.T) {
	m := NewMemoryFS()
	err := m.WriteFile("/no/such/dir/file", []byte("x"), 0644)
	require.Error(t, err)
	assert.True(t, os.IsNotExist(err))
}

func TestMemoryFSRename(t *testing.T) {
	m := NewMemoryFS()
	require.NoError(t, m.MkdirAll("/etc", 0755))
	require.NoError(t, m.WriteFile("/etc/a.conf", []byte("one"), 0644))
	require.NoError(t, m.WriteFile("/etc/a.conf.rpmsave", []byte("stale"), 0644))

	// Rename overwrites the destination, like os.Rename
	require.NoError(t, m.Rename("/etc/a.conf", "/etc/a.conf.rpmsave"))
	assert.False(t, m.Exists("/etc/a.conf"))

	got, err := m.ReadFile("/etc/a.conf.rpmsave")
	require.NoError(t, err)
	assert.Equal(t, []byte("one"), got)
}

func TestMemoryFSRenameMissing(t *testing.T) {
	m := NewMemoryFS()
	err := m.Rename("/etc/missing", "/etc/elsewhere")
	require.Error(t, err)
	assert.True(t, os.IsNotExist(err))
}

func TestMemoryFSRemove(t *testing.T) {
	m := NewMemoryFS()
	require.NoError(t, m.MkdirAll("/etc", 0755))
	require.NoError(t, m.WriteFile("/etc/a.conf", []byte("one"), 0644))

	require.NoError(t, m.Remove("/etc/a.conf"))
	assert.False(t, m.Exists("/etc/a.conf"))

	err := m.Remove("/etc/a.conf")
	require.Error(t, err)
	assert.True(t, os.IsNotExist(err))
}

func TestMemoryFSErrorInjection(t *testing.T) {
	m := NewMemoryFS()
	require.NoError(t, m.MkdirAll("/etc", 0755))
	require.NoError(t, m.WriteFile("/etc/a.conf", []byte("one"), 0644))

	injected := &fs.PathError{Op: "open", Path: "/etc/a.conf", Err: errors.New("permission denied")}
	m.InjectError("/etc/a.conf", injected)

	_, err := m.ReadFile("/etc/a.conf")
	assert.ErrorIs(t, err, injected)

	assert.Error(t, m.WriteFile("/etc/a.conf", []byte("two"), 0644))
	assert.Error(t, m.Rename("/etc/a.conf", "/etc/b.conf"))
}

func TestMemoryFSReadCount(t *testing.T) {
	m := NewMemoryFS()
	require.NoError(t, m.MkdirAll("/etc", 0755))
	require.NoError(t, m.WriteFile("/etc/a.conf", []byte("one"), 0644))

	before := m.ReadCount()
	_, _ = m.ReadFile("/etc/a.conf")
	_, _ = m.ReadFile("/etc/a.conf")
	assert.Equal(t, before+2, m.ReadCount())
}
