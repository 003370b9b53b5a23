package archive

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func writeFiles(t *testing.T, dir string, files map[string]string) {
	t.Helper()
	for name, content := range files {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
	}
}

func TestDiscover(t *testing.T) {
	dir := t.TempDir()
	writeFiles(t, dir, map[string]string{
		"b.txt":     "B",
		"a.txt":     "A",
		"notes.md":  "ignored",
		"c.txt.bak": "ignored",
	})
	require.NoError(t, os.Mkdir(filepath.Join(dir, "sub.txt"), 0o755))

	archives, err := Discover(dir, []string{"*.txt"})
	require.NoError(t, err)
	require.Len(t, archives, 2)
	require.Equal(t, "a.txt", archives[0].Name)
	require.Equal(t, "b.txt", archives[1].Name)
	require.Equal(t, filepath.Join(dir, "a.txt"), archives[0].Path)
	require.EqualValues(t, 1, archives[0].Size)
}

func TestDiscover_MultiplePatternsNoDuplicates(t *testing.T) {
	dir := t.TempDir()
	writeFiles(t, dir, map[string]string{
		"a.txt":    "A",
		"b.txt.gz": "B",
	})

	archives, err := Discover(dir, []string{"*.txt", "*.txt*"})
	require.NoError(t, err)
	require.Len(t, archives, 2)
}

func TestDiscover_MissingDir(t *testing.T) {
	_, err := Discover(filepath.Join(t.TempDir(), "Files"), []string{"*.txt"})
	require.ErrorIs(t, err, ErrMissingDir)
}

func TestDiscover_NotADirectory(t *testing.T) {
	dir := t.TempDir()
	writeFiles(t, dir, map[string]string{"Files": "not a dir"})

	_, err := Discover(filepath.Join(dir, "Files"), []string{"*.txt"})
	require.ErrorIs(t, err, ErrMissingDir)
}

func TestDiscover_NoMatchingFiles(t *testing.T) {
	dir := t.TempDir()
	writeFiles(t, dir, map[string]string{"readme.md": "x"})

	_, err := Discover(dir, []string{"*.txt"})
	require.ErrorIs(t, err, ErrNoFiles)
}
