// Package langcfg resolves per-language delimiter configurations from
// TOML files and VS Code language-configuration.json imports, with
// optional hot reload.
package langcfg

import (
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/dshills/autopair/internal/engine/buffer"
	"github.com/dshills/autopair/internal/pair"
)

// Registry maps language identifiers to delimiter configurations.
// Lookups for unknown languages fall back to the built-in defaults.
// Registry is safe for concurrent use.
type Registry struct {
	mu        sync.RWMutex
	languages map[string]pair.Config
	fallback  pair.Config
}

// NewRegistry creates an empty registry with the default fallback.
func NewRegistry() *Registry {
	return &Registry{
		languages: make(map[string]pair.Config),
		fallback:  pair.DefaultConfig(),
	}
}

// Lookup returns the configuration for a language. The second return
// value reports whether the language had an explicit entry; on false
// the fallback is returned.
func (r *Registry) Lookup(language string) (pair.Config, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if cfg, ok := r.languages[language]; ok {
		return cfg, true
	}
	return r.fallback, false
}

// Set registers or replaces the configuration for a language.
func (r *Registry) Set(language string, cfg pair.Config) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.languages[language] = cfg
}

// SetFallback replaces the configuration used for unknown languages.
func (r *Registry) SetFallback(cfg pair.Config) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.fallback = cfg
}

// Languages returns the registered language identifiers.
func (r *Registry) Languages() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.languages))
	for name := range r.languages {
		names = append(names, name)
	}
	return names
}

// ConfigFunc adapts the registry to a per-position resolver for a
// document in the given language. The position is ignored; documents
// carry a single language.
func (r *Registry) ConfigFunc(language string) pair.ConfigFunc {
	return func(buffer.Offset) pair.Config {
		cfg, _ := r.Lookup(language)
		return cfg
	}
}

// LoadDir loads every recognized configuration file in a directory into
// the registry. Files ending in .toml use the native schema; files
// ending in .json are treated as VS Code language-configuration files
// named after their language (python.json registers "python"). Files
// that fail to parse are skipped and the first error is returned after
// the remaining files load.
func (r *Registry) LoadDir(dir string) error {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}

	var firstErr error
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if err := r.LoadFile(filepath.Join(dir, entry.Name())); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}

// LoadFile loads a single configuration file into the registry based on
// its extension. Unrecognized extensions are ignored.
func (r *Registry) LoadFile(path string) error {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		langs, err := LoadTOML(path)
		if err != nil {
			return err
		}
		for name, cfg := range langs {
			r.Set(name, cfg)
		}
		return nil
	case ".json":
		cfg, err := LoadVSCode(path)
		if err != nil {
			return err
		}
		name := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
		name = strings.TrimSuffix(name, ".language-configuration")
		r.Set(name, cfg)
		return nil
	default:
		return nil
	}
}
