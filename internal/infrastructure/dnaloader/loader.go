package dnaloader

import (
	"fmt"
	"os"
	"path/filepath"
	"plugin"
	"sync"
)

// Symbols is the lookup surface of a loaded capability source.
type Symbols interface {
	Lookup(name string) (any, error)
}

// Loader resolves capability sources for the binder. Open resolves a
// source name against the registered search paths; OpenPath loads one by
// explicit file path, bypassing resolution entirely. The split exists
// because the backend's config unit shares its name with a unit already
// present in this process and must never go through name resolution.
type Loader interface {
	AddSearchPath(dir string)
	Open(name string) (Symbols, error)
	OpenPath(path string) (Symbols, error)
}

// PluginLoader loads capability sources built as Go plugin shared objects.
type PluginLoader struct {
	mu          sync.Mutex
	searchPaths []string
}

func NewPluginLoader() *PluginLoader {
	return &PluginLoader{}
}

// AddSearchPath registers a directory for Open resolution. Adding the same
// directory twice is a no-op.
func (l *PluginLoader) AddSearchPath(dir string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	for _, existing := range l.searchPaths {
		if existing == dir {
			return
		}
	}
	l.searchPaths = append(l.searchPaths, dir)
}

// Open resolves name against the search paths in registration order and
// loads the first match.
func (l *PluginLoader) Open(name string) (Symbols, error) {
	l.mu.Lock()
	paths := make([]string, len(l.searchPaths))
	copy(paths, l.searchPaths)
	l.mu.Unlock()

	for _, dir := range paths {
		candidate := filepath.Join(dir, name)
		if _, err := os.Stat(candidate); err == nil {
			return l.OpenPath(candidate)
		}
	}
	return nil, fmt.Errorf("capability source %q not found in search path", name)
}

// OpenPath loads a capability source from an explicit file path.
func (l *PluginLoader) OpenPath(path string) (Symbols, error) {
	plug, err := plugin.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	return pluginSymbols{plug: plug}, nil
}

type pluginSymbols struct {
	plug *plugin.Plugin
}

func (s pluginSymbols) Lookup(name string) (any, error) {
	sym, err := s.plug.Lookup(name)
	if err != nil {
		return nil, err
	}
	return sym, nil
}
