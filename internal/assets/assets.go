// Package assets resolves shader sources and scene files.
//
// Files are looked up in the registered search directories, newest first,
// and then in the set compiled into the binary.
package assets

import (
	"embed"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"sync"

	"github.com/pkg/errors"
	"go.uber.org/zap"
)

//go:embed shader
var builtin embed.FS

// Builtin returns the files compiled into the binary.
func Builtin() fs.FS {
	return builtin
}

type source struct {
	name string
	fsys fs.FS
}

// Manager loads files from search directories with a built-in fallback.
type Manager struct {
	sources []source
	cache   *Cache
	log     *zap.Logger
	mu      sync.RWMutex
}

// NewManager creates a manager that only knows the built-in files.
func NewManager(log *zap.Logger) *Manager {
	if log == nil {
		log = zap.NewNop()
	}
	return &Manager{
		cache: NewCache(),
		log:   log,
	}
}

// AddDir adds a search directory.
// Directories are searched in reverse order (last added = highest priority).
func (m *Manager) AddDir(dir string) error {
	info, err := os.Stat(dir)
	if err != nil {
		return errors.Wrapf(err, "adding search dir %s", dir)
	}
	if !info.IsDir() {
		return errors.Errorf("search dir %s is not a directory", dir)
	}
	m.AddFS(dir, os.DirFS(dir))
	return nil
}

// AddFS adds a file system as a search location.
func (m *Manager) AddFS(name string, fsys fs.FS) {
	m.mu.Lock()
	m.sources = append(m.sources, source{name: name, fsys: fsys})
	m.mu.Unlock()
}

// Load returns the contents of name. Absolute paths are read from disk
// directly; relative paths go through the search directories and then
// the built-in files.
func (m *Manager) Load(name string) ([]byte, error) {
	if data, ok := m.cache.Get(name); ok {
		return data, nil
	}

	if filepath.IsAbs(name) {
		data, err := os.ReadFile(name)
		if err != nil {
			return nil, errors.Wrap(err, "reading asset")
		}
		m.cache.Set(name, data)
		return data, nil
	}

	key := path.Clean(filepath.ToSlash(name))
	if !fs.ValidPath(key) {
		return nil, errors.Errorf("invalid asset path %q", name)
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	for i := len(m.sources) - 1; i >= 0; i-- {
		data, err := fs.ReadFile(m.sources[i].fsys, key)
		if err == nil {
			m.log.Debug("asset loaded", zap.String("path", key), zap.String("from", m.sources[i].name))
			m.cache.Set(name, data)
			return data, nil
		}
		if !errors.Is(err, fs.ErrNotExist) {
			return nil, errors.Wrapf(err, "reading %s from %s", key, m.sources[i].name)
		}
	}

	data, err := fs.ReadFile(builtin, key)
	if err != nil {
		return nil, errors.Errorf("file not found: %s", name)
	}
	m.log.Debug("asset loaded", zap.String("path", key), zap.String("from", "builtin"))
	m.cache.Set(name, data)
	return data, nil
}

// LoadString is Load for text files such as shader sources.
func (m *Manager) LoadString(name string) (string, error) {
	data, err := m.Load(name)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// Close drops the search directories and the cache.
func (m *Manager) Close() {
	m.mu.Lock()
	defer m.mu.Unlock()

	hits, misses := m.cache.Stats()
	m.log.Debug("asset cache closed", zap.Int("hits", hits), zap.Int("misses", misses))

	m.sources = nil
	m.cache.Clear()
}

// Cache keeps loaded files in memory, keyed by the requested name.
type Cache struct {
	data map[string][]byte
	mu   sync.RWMutex

	hits   int
	misses int
}

// NewCache creates an empty cache.
func NewCache() *Cache {
	return &Cache{
		data: make(map[string][]byte),
	}
}

// Get retrieves a file from the cache.
func (c *Cache) Get(key string) ([]byte, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	data, ok := c.data[key]
	if ok {
		c.hits++
	} else {
		c.misses++
	}
	return data, ok
}

// Set stores a file in the cache.
func (c *Cache) Set(key string, data []byte) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.data[key] = data
}

// Len returns the number of cached files.
func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.data)
}

// Clear empties the cache and resets its counters.
func (c *Cache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.data = make(map[string][]byte)
	c.hits = 0
	c.misses = 0
}

// Stats returns cache hit and miss counts.
func (c *Cache) Stats() (hits, misses int) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.hits, c.misses
}
