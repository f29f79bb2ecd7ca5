package convert_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"edf-export/internal/convert"
)

func touch(t *testing.T, path string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte("x"), 0o644))
}

func TestDiscoverWalksDirectories(t *testing.T) {
	dir := t.TempDir()
	touch(t, filepath.Join(dir, "a.edf"))
	touch(t, filepath.Join(dir, "notes.txt"))
	touch(t, filepath.Join(dir, "sub", "deeper", "b.edf"))

	files, err := convert.Discover([]string{dir})
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{
		filepath.Join(dir, "a.edf"),
		filepath.Join(dir, "sub", "deeper", "b.edf"),
	}, files)
}

func TestDiscoverFileArguments(t *testing.T) {
	dir := t.TempDir()
	edfPath := filepath.Join(dir, "a.edf")
	txtPath := filepath.Join(dir, "a.txt")
	touch(t, edfPath)
	touch(t, txtPath)

	files, err := convert.Discover([]string{edfPath, txtPath})
	require.NoError(t, err)
	assert.Equal(t, []string{edfPath}, files)
}

func TestDiscoverMissingPath(t *testing.T) {
	_, err := convert.Discover([]string{filepath.Join(t.TempDir(), "nope")})
	assert.Error(t, err)
}
