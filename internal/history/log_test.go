package history

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestLog(t *testing.T) *Log {
	t.Helper()
	l := New(filepath.Join(t.TempDir(), "Scratchmd.md"))
	l.now = func() time.Time { return time.Date(2026, 3, 4, 5, 6, 7, 0, time.Local) }
	return l
}

func readFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	return string(data)
}

func TestInit_WritesHeaderOnce(t *testing.T) {
	l := newTestLog(t)
	require.NoError(t, l.Init())
	require.NoError(t, l.Init())
	assert.Equal(t, Header, readFile(t, l.Path()))
}

func TestInit_KeepsExistingContent(t *testing.T) {
	l := newTestLog(t)
	require.NoError(t, os.WriteFile(l.Path(), []byte("garbage without header\n"), 0o644))
	require.NoError(t, l.Init())
	assert.Equal(t, "garbage without header\n", readFile(t, l.Path()))

	require.NoError(t, l.Append("next"))
	assert.Equal(t, "garbage without header\n- [2026-03-04 05:06:07] next\n", readFile(t, l.Path()))
}

func TestAppend_Format(t *testing.T) {
	l := newTestLog(t)
	require.NoError(t, l.Init())
	require.NoError(t, l.Append("buy milk"))
	require.NoError(t, l.Append("call mom"))

	got := readFile(t, l.Path())
	assert.Equal(t, Header+
		"- [2026-03-04 05:06:07] buy milk\n"+
		"- [2026-03-04 05:06:07] call mom\n", got)
}

func TestAppend_CreatesMissingFileWithHeader(t *testing.T) {
	l := New(filepath.Join(t.TempDir(), "nested", "history.md"))
	require.NoError(t, l.Append("first"))

	got := readFile(t, l.Path())
	assert.True(t, strings.HasPrefix(got, Header), "got %q", got)
	assert.True(t, strings.HasSuffix(got, "] first\n"), "got %q", got)
}

func TestAppend_FailureIsWriteError(t *testing.T) {
	dir := t.TempDir()
	// a directory where the file should be makes OpenFile fail
	l := New(dir)
	err := l.Append("x")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrWrite)

	err = New("").Append("x")
	assert.ErrorIs(t, err, ErrWrite)
}
