// Package archive finds article archives on disk and reads them into memory.
package archive

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"corpustok/internal/models"
)

// Discovery errors.
var (
	ErrMissingDir = errors.New("input directory does not exist")
	ErrNoFiles    = errors.New("no matching archive files found")
)

// Discover lists the files in dir whose names match any of patterns, in
// directory listing order. Sub-directories are not scanned.
func Discover(dir string, patterns []string) ([]models.Archive, error) {
	info, err := os.Stat(dir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrMissingDir, dir)
		}

		return nil, fmt.Errorf("stat %q: %w", dir, err)
	}

	if !info.IsDir() {
		return nil, fmt.Errorf("%w: %s is not a directory", ErrMissingDir, dir)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("reading %q: %w", dir, err)
	}

	var archives []models.Archive

	for _, entry := range entries {
		if !matchAny(entry.Name(), patterns) {
			continue
		}

		path := filepath.Join(dir, entry.Name())

		// Stat follows symlinks, entry.Info does not.
		fi, err := os.Stat(path)
		if err != nil {
			return nil, fmt.Errorf("stat %q: %w", path, err)
		}

		if fi.IsDir() {
			continue
		}

		archives = append(archives, models.Archive{
			Name: entry.Name(),
			Path: path,
			Size: fi.Size(),
		})
	}

	if len(archives) == 0 {
		return nil, fmt.Errorf("%w in %s (patterns %v)", ErrNoFiles, dir, patterns)
	}

	return archives, nil
}

func matchAny(name string, patterns []string) bool {
	for _, pattern := range patterns {
		if ok, err := filepath.Match(pattern, name); err == nil && ok {
			return true
		}
	}

	return false
}
