package executor

import (
	"errors"
	"io/fs"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/confrec/pkg/disposition"
	confrecerrors "github.com/arthur-debert/confrec/pkg/errors"
	"github.com/arthur-debert/confrec/pkg/testutil"
)

const confPath = "/etc/app/app.conf"

func newFS(t *testing.T) *testutil.MemoryFS {
	t.Helper()
	m := testutil.NewMemoryFS()
	require.NoError(t, m.MkdirAll("/etc/app", 0755))
	return m
}

func TestApplyKeep(t *testing.T) {
	m := newFS(t)
	require.NoError(t, m.WriteFile(confPath, []byte("existing"), 0644))

	warning, err := Apply(m, disposition.Outcome{Action: disposition.Keep}, confPath, []byte("new"), 0644)
	require.NoError(t, err)
	assert.Nil(t, warning)

	got, err := m.ReadFile(confPath)
	require.NoError(t, err)
	assert.Equal(t, []byte("existing"), got)
}

func TestApplyWrite(t *testing.T) {
	m := newFS(t)

	warning, err := Apply(m, disposition.Outcome{Action: disposition.Write}, confPath, []byte("new content\n"), 0600)
	require.NoError(t, err)
	assert.Nil(t, warning)

	got, err := m.ReadFile(confPath)
	require.NoError(t, err)
	assert.Equal(t, []byte("new content\n"), got)

	info, err := m.Stat(confPath)
	require.NoError(t, err)
	assert.Equal(t, fs.FileMode(0600), info.Mode())
}

func TestApplyWriteCreatesParents(t *testing.T) {
	m := testutil.NewMemoryFS()

	warning, err := Apply(m, disposition.Outcome{Action: disposition.Write},
		"/etc/deep/nested/app.conf", []byte("x"), 0644)
	require.NoError(t, err)
	assert.Nil(t, warning)
	assert.True(t, m.Exists("/etc/deep/nested/app.conf"))
}

func TestApplyBackupThenWrite(t *testing.T) {
	m := newFS(t)
	require.NoError(t, m.WriteFile(confPath, []byte("user content"), 0644))

	outcome := disposition.Outcome{Action: disposition.BackupThenWrite, Suffix: disposition.SuffixSave}
	warning, err := Apply(m, outcome, confPath, []byte("package content"), 0644)
	require.NoError(t, err)

	require.NotNil(t, warning)
	assert.Equal(t, "warning: /etc/app/app.conf saved as /etc/app/app.conf.rpmsave", warning.String())

	live, err := m.ReadFile(confPath)
	require.NoError(t, err)
	assert.Equal(t, []byte("package content"), live)

	saved, err := m.ReadFile(confPath + ".rpmsave")
	require.NoError(t, err)
	assert.Equal(t, []byte("user content"), saved)
}

func TestApplyBackupOverwritesPriorBackup(t *testing.T) {
	m := newFS(t)
	require.NoError(t, m.WriteFile(confPath, []byte("current"), 0644))
	require.NoError(t, m.WriteFile(confPath+".rpmsave", []byte("stale backup"), 0644))

	outcome := disposition.Outcome{Action: disposition.BackupThenWrite, Suffix: disposition.SuffixSave}
	_, err := Apply(m, outcome, confPath, []byte("new"), 0644)
	require.NoError(t, err)

	// Last backup wins
	saved, err := m.ReadFile(confPath + ".rpmsave")
	require.NoError(t, err)
	assert.Equal(t, []byte("current"), saved)
}

func TestApplyBackupThenWriteSourceGone(t *testing.T) {
	m := newFS(t)

	// The engine decided with the file present, but it was deleted
	// externally before execution: no backup, no warning, content written.
	outcome := disposition.Outcome{Action: disposition.BackupThenWrite, Suffix: disposition.SuffixOrig}
	warning, err := Apply(m, outcome, confPath, []byte("new"), 0644)
	require.NoError(t, err)
	assert.Nil(t, warning)
	assert.True(t, m.Exists(confPath))
	assert.False(t, m.Exists(confPath+".rpmorig"))
}

func TestApplyWriteAside(t *testing.T) {
	m := newFS(t)
	require.NoError(t, m.WriteFile(confPath, []byte("user content"), 0644))

	outcome := disposition.Outcome{Action: disposition.WriteAside, Suffix: disposition.SuffixNew}
	warning, err := Apply(m, outcome, confPath, []byte("package content"), 0644)
	require.NoError(t, err)

	require.NotNil(t, warning)
	assert.Equal(t, "warning: /etc/app/app.conf created as /etc/app/app.conf.rpmnew", warning.String())

	// The live file is untouched
	live, err := m.ReadFile(confPath)
	require.NoError(t, err)
	assert.Equal(t, []byte("user content"), live)

	aside, err := m.ReadFile(confPath + ".rpmnew")
	require.NoError(t, err)
	assert.Equal(t, []byte("package content"), aside)
}

func TestApplyRemove(t *testing.T) {
	m := newFS(t)
	require.NoError(t, m.WriteFile(confPath, []byte("content"), 0644))

	warning, err := Apply(m, disposition.Outcome{Action: disposition.Remove}, confPath, nil, 0)
	require.NoError(t, err)
	assert.Nil(t, warning)
	assert.False(t, m.Exists(confPath))
}

func TestApplyRemoveMissingIsNoop(t *testing.T) {
	m := newFS(t)

	warning, err := Apply(m, disposition.Outcome{Action: disposition.Remove}, confPath, nil, 0)
	require.NoError(t, err)
	assert.Nil(t, warning)
}

func TestApplyBackupThenRemove(t *testing.T) {
	m := newFS(t)
	require.NoError(t, m.WriteFile(confPath, []byte("modified content"), 0644))

	outcome := disposition.Outcome{Action: disposition.BackupThenRemove, Suffix: disposition.SuffixSave}
	warning, err := Apply(m, outcome, confPath, nil, 0)
	require.NoError(t, err)

	require.NotNil(t, warning)
	assert.Equal(t, "warning: /etc/app/app.conf saved as /etc/app/app.conf.rpmsave", warning.String())

	assert.False(t, m.Exists(confPath))
	saved, err := m.ReadFile(confPath + ".rpmsave")
	require.NoError(t, err)
	assert.Equal(t, []byte("modified content"), saved)
}

func TestApplyBackupThenRemoveMissingIsNoop(t *testing.T) {
	m := newFS(t)

	outcome := disposition.Outcome{Action: disposition.BackupThenRemove, Suffix: disposition.SuffixSave}
	warning, err := Apply(m, outcome, confPath, nil, 0)
	require.NoError(t, err)
	assert.Nil(t, warning)
	assert.False(t, m.Exists(confPath+".rpmsave"))
}

func TestApplyWriteError(t *testing.T) {
	m := newFS(t)
	m.InjectError(confPath, &fs.PathError{Op: "open", Path: confPath, Err: errors.New("permission denied")})

	_, err := Apply(m, disposition.Outcome{Action: disposition.Write}, confPath, []byte("new"), 0644)
	require.Error(t, err)
	assert.True(t, confrecerrors.IsErrorCode(err, confrecerrors.ErrFileWrite))
}

func TestApplyRenameErrorStopsBeforeWrite(t *testing.T) {
	m := newFS(t)
	require.NoError(t, m.WriteFile(confPath, []byte("user content"), 0644))
	m.InjectError(confPath+".rpmsave", &fs.PathError{Op: "rename", Path: confPath, Err: errors.New("permission denied")})

	outcome := disposition.Outcome{Action: disposition.BackupThenWrite, Suffix: disposition.SuffixSave}
	_, err := Apply(m, outcome, confPath, []byte("new"), 0644)
	require.Error(t, err)
	assert.True(t, confrecerrors.IsErrorCode(err, confrecerrors.ErrFileRename))

	// The failure was reported before the write was attempted: the
	// pre-image is still live.
	got, rerr := m.ReadFile(confPath)
	require.NoError(t, rerr)
	assert.Equal(t, []byte("user content"), got)
}
