package handler

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// withConsole swaps the package console destination for the duration
// of a test.
func withConsole(t *testing.T, w io.Writer) {
	t.Helper()
	old := Console
	Console = w
	t.Cleanup(func() { Console = old })
}

func TestOpenFileCreatesDirectoryRecursively(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "logs", "nested")

	s := NewSink()
	require.NoError(t, s.OpenFile(dir, "t.log"))
	defer s.CloseFile()

	assert.True(t, s.FileActive())
	_, err := os.Stat(filepath.Join(dir, "t.log"))
	require.NoError(t, err)
}

func TestOpenFileDefaultName(t *testing.T) {
	dir := t.TempDir()

	s := NewSink()
	require.NoError(t, s.OpenFile(dir, ""))
	defer s.CloseFile()

	_, err := os.Stat(filepath.Join(dir, DefaultLogFileName))
	require.NoError(t, err)
}

func TestOpenFileTruncates(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "t.log")
	require.NoError(t, os.WriteFile(path, []byte("stale content"), 0o644))

	s := NewSink()
	require.NoError(t, s.OpenFile(dir, "t.log"))
	s.CloseFile()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Empty(t, data)
}

func TestOpenFileRedirectsWrites(t *testing.T) {
	dir := t.TempDir()

	s := NewSink()
	require.NoError(t, s.OpenFile(dir, "t.log"))
	io.WriteString(s.Writer(), "to the file")
	s.CloseFile()

	data, err := os.ReadFile(filepath.Join(dir, "t.log"))
	require.NoError(t, err)
	assert.Equal(t, "to the file", string(data))
}

func TestOpenFileClosesPreviousFile(t *testing.T) {
	dir := t.TempDir()

	s := NewSink()
	require.NoError(t, s.OpenFile(dir, "first.log"))
	io.WriteString(s.Writer(), "one")
	require.NoError(t, s.OpenFile(dir, "second.log"))
	io.WriteString(s.Writer(), "two")
	s.CloseFile()

	first, err := os.ReadFile(filepath.Join(dir, "first.log"))
	require.NoError(t, err)
	assert.Equal(t, "one", string(first))

	second, err := os.ReadFile(filepath.Join(dir, "second.log"))
	require.NoError(t, err)
	assert.Equal(t, "two", string(second))
}

func TestOpenFileMkdirFailureKeepsSink(t *testing.T) {
	var buf bytes.Buffer
	withConsole(t, &buf)

	tmp := t.TempDir()
	blocker := filepath.Join(tmp, "blocker")
	require.NoError(t, os.WriteFile(blocker, nil, 0o644))

	s := NewSink()
	err := s.OpenFile(filepath.Join(blocker, "logs"), "t.log")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to open log file")
	assert.False(t, s.FileActive())
	assert.Same(t, &buf, s.Writer())
}

func TestOpenFileCreateFailureKeepsSinkSilently(t *testing.T) {
	var buf bytes.Buffer
	withConsole(t, &buf)

	tmp := t.TempDir()
	// A directory with the target file's name makes os.Create fail.
	require.NoError(t, os.Mkdir(filepath.Join(tmp, "t.log"), 0o755))

	s := NewSink()
	require.NoError(t, s.OpenFile(tmp, "t.log"))
	assert.False(t, s.FileActive())
	assert.Same(t, &buf, s.Writer())
}

func TestCloseFileRestoresConsole(t *testing.T) {
	var buf bytes.Buffer
	withConsole(t, &buf)

	s := NewSink()
	require.NoError(t, s.OpenFile(t.TempDir(), "t.log"))
	require.True(t, s.FileActive())

	s.CloseFile()
	assert.False(t, s.FileActive())
	assert.Same(t, &buf, s.Writer())
}

func TestCloseFileIdempotent(t *testing.T) {
	s := NewSink()
	require.NoError(t, s.OpenFile(t.TempDir(), "t.log"))

	s.CloseFile()
	assert.NotPanics(t, s.CloseFile)
	assert.NotPanics(t, s.CloseFile)
}

func TestCloseFileLeavesExplicitOutputAlone(t *testing.T) {
	var buf, other bytes.Buffer
	withConsole(t, &buf)

	s := NewSink()
	require.NoError(t, s.OpenFile(t.TempDir(), "t.log"))
	s.SetOutput(&other)

	// The file is open but no longer the current target, so closing it
	// must not touch the redirected output.
	s.CloseFile()
	assert.Same(t, &other, s.Writer())
}

func TestSetOutputNilPanics(t *testing.T) {
	s := NewSink()
	assert.Panics(t, func() { s.SetOutput(nil) })
}
