package fs

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"
)

var (
	// ErrNotFile is returned when a path exists but is not a regular file.
	ErrNotFile = errors.New("not a file")

	// ErrNotDir is returned when a path exists but is not a directory.
	ErrNotDir = errors.New("not a directory")
)

// Exists reports whether path resolves to an existing regular file.
func Exists(path string) bool {
	info, err := os.Stat(Abs(path))
	return err == nil && info.Mode().IsRegular()
}

// IsDir reports whether path resolves to an existing directory.
func IsDir(path string) bool {
	info, err := os.Stat(Abs(path))
	return err == nil && info.IsDir()
}

// EnsureDir creates the directory (and missing parents) when absent and
// returns its absolute path.
func EnsureDir(path string) (string, error) {
	abs := Abs(path)
	if err := os.MkdirAll(abs, 0o755); err != nil {
		return "", fmt.Errorf("failed to create directory %s: %w", abs, err)
	}
	return abs, nil
}

// DeleteFile removes a regular file. Deleting a missing file is not an
// error; a path that exists but is not a file fails with ErrNotFile.
func DeleteFile(path string) error {
	abs := Abs(path)
	info, err := os.Stat(abs)
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	if err != nil {
		return err
	}
	if !info.Mode().IsRegular() {
		return fmt.Errorf("%w: %s", ErrNotFile, abs)
	}
	return os.Remove(abs)
}

// DeleteDir removes a directory and its contents. Deleting a missing
// directory is not an error; a path that exists but is not a directory fails
// with ErrNotDir.
func DeleteDir(path string) error {
	abs := Abs(path)
	info, err := os.Stat(abs)
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	if err != nil {
		return err
	}
	if !info.IsDir() {
		return fmt.Errorf("%w: %s", ErrNotDir, abs)
	}
	return os.RemoveAll(abs)
}

// Rename moves a file or directory, resolving both paths.
func Rename(oldPath, newPath string) error {
	return os.Rename(Abs(oldPath), Abs(newPath))
}

// ListOption configures FilesInDir.
type ListOption func(*listConfig)

type listConfig struct {
	endings   []string
	recursive bool
}

// WithEndings restricts the listing to files with one of the given endings,
// e.g. "json", "csv" (without the leading dot).
func WithEndings(endings ...string) ListOption {
	return func(c *listConfig) { c.endings = endings }
}

// Recursive descends into subdirectories.
func Recursive() ListOption {
	return func(c *listConfig) { c.recursive = true }
}

// FilesInDir lists the regular files in a directory as absolute paths.
func FilesInDir(dir string, opts ...ListOption) ([]string, error) {
	var cfg listConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	abs := Abs(dir)
	info, err := os.Stat(abs)
	if err != nil {
		return nil, err
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%w: %s", ErrNotDir, abs)
	}

	var files []string
	err = filepath.WalkDir(abs, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if !cfg.recursive && path != abs {
				return filepath.SkipDir
			}
			return nil
		}
		if matchesEnding(path, cfg.endings) {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return files, nil
}

func matchesEnding(path string, endings []string) bool {
	if len(endings) == 0 {
		return true
	}
	ext := strings.TrimPrefix(filepath.Ext(path), ".")
	return slices.Contains(endings, ext)
}
