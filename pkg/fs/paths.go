package fs

import (
	"path/filepath"
	"sync"
)

var (
	rootMu sync.RWMutex
	root   = "."
)

// SetRoot changes the directory relative paths resolve against.
// The default is the working directory.
func SetRoot(dir string) {
	rootMu.Lock()
	defer rootMu.Unlock()
	root = dir
}

// Abs resolves path against the package root. Absolute paths pass through
// unchanged.
func Abs(path string) string {
	if filepath.IsAbs(path) {
		return filepath.Clean(path)
	}
	rootMu.RLock()
	defer rootMu.RUnlock()
	return filepath.Join(root, path)
}

// Rel returns path relative to the package root, or the cleaned path when it
// does not live under the root.
func Rel(path string) string {
	rootMu.RLock()
	base := root
	rootMu.RUnlock()

	rel, err := filepath.Rel(base, Abs(path))
	if err != nil {
		return filepath.Clean(path)
	}
	return rel
}
