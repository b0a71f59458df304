// Package assets handles model asset loading and caching.
package assets

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

// Loader reads asset bytes from the filesystem with an in-memory cache.
// Loads are synchronous: a caller holds the complete bytes (or an error)
// before anything downstream runs.
type Loader struct {
	roots []string
	cache map[string][]byte
	mu    sync.RWMutex
}

// NewLoader creates a loader. Roots are searched in order; an empty root
// list resolves paths as given.
func NewLoader(roots ...string) *Loader {
	return &Loader{
		roots: roots,
		cache: make(map[string][]byte),
	}
}

// Load reads a file, consulting the cache first.
func (l *Loader) Load(path string) ([]byte, error) {
	l.mu.RLock()
	data, ok := l.cache[path]
	l.mu.RUnlock()
	if ok {
		return data, nil
	}

	for _, candidate := range l.candidates(path) {
		data, err := os.ReadFile(candidate)
		if err == nil {
			l.mu.Lock()
			l.cache[path] = data
			l.mu.Unlock()
			return data, nil
		}
	}

	return nil, fmt.Errorf("asset not found: %s", path)
}

func (l *Loader) candidates(path string) []string {
	if len(l.roots) == 0 {
		return []string{path}
	}
	out := make([]string, 0, len(l.roots)+1)
	if filepath.IsAbs(path) {
		out = append(out, path)
	}
	for _, root := range l.roots {
		out = append(out, filepath.Join(root, path))
	}
	return out
}
