// Package cache stores rendered output keyed by a hash of the input content
// and the settings it was rendered with.
package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/metcalfc/simpletoc/internal/toc"
)

const cacheFileName = "renders.json"

// Entry is one cached render
type Entry struct {
	Output string `json:"output"`
}

// Store manages persistent renders
type Store struct {
	path string
	data map[string]Entry
	mu   sync.RWMutex
}

// NewStore creates or loads the cache from XDG_CACHE_HOME/simpletoc/
func NewStore() (*Store, error) {
	return Open(getCacheDir())
}

// Open creates or loads the cache file in dir.
func Open(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("create cache dir: %w", err)
	}

	store := &Store{
		path: filepath.Join(dir, cacheFileName),
		data: make(map[string]Entry),
	}
	if err := store.load(); err != nil {
		// Non-fatal - start with an empty cache
		store.data = make(map[string]Entry)
	}
	return store, nil
}

// getCacheDir returns XDG_CACHE_HOME/simpletoc or ~/.cache/simpletoc
func getCacheDir() string {
	if dir := os.Getenv("XDG_CACHE_HOME"); dir != "" {
		return filepath.Join(dir, "simpletoc")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".cache", "simpletoc")
}

// Key hashes content together with every setting that affects the output.
func Key(content string, s toc.Settings) string {
	h := sha256.New()
	fmt.Fprintf(h, "%t\x00%s\x00%q\x00%q\x00%t\x00", s.Enabled, s.Position, s.Title, s.IDPrefix, s.StripDiacritics)
	h.Write([]byte(content))
	sum := h.Sum(nil)
	return hex.EncodeToString(sum[:16]) // First 16 bytes = 32 hex chars
}

// Get returns the cached output for key.
func (s *Store) Get(key string) (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	e, ok := s.data[key]
	return e.Output, ok
}

// Put saves output for key
func (s *Store) Put(key, output string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[key] = Entry{Output: output}
	return s.save()
}

// Clear removes every cached render
func (s *Store) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data = make(map[string]Entry)
	return s.save()
}

// Len returns the number of cached renders.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.data)
}

func (s *Store) load() error {
	data, err := os.ReadFile(s.path)
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		return err
	}
	return json.Unmarshal(data, &s.data)
}

func (s *Store) save() error {
	data, err := json.MarshalIndent(s.data, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(s.path, data, 0644)
}
