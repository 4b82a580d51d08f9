// Package file persists the subscription list cache as a JSON array on
// disk. The cache pre-populates the client on startup and is rewritten
// whenever the in-memory snapshot changes; the backend stays the
// authority.
package file

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"subtrack/internal/entity"
)

// ListStore reads and writes one JSON file holding []entity.Subscription.
type ListStore struct {
	mu   sync.Mutex
	path string
}

// NewListStore points the store at path; the file may not exist yet.
func NewListStore(path string) *ListStore {
	return &ListStore{path: path}
}

// Load returns the cached list. A missing file is an empty cache, not
// an error.
func (s *ListStore) Load() ([]entity.Subscription, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.load()
}

func (s *ListStore) load() ([]entity.Subscription, error) {
	raw, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read list cache: %w", err)
	}

	var subs []entity.Subscription
	if err := json.Unmarshal(raw, &subs); err != nil {
		return nil, fmt.Errorf("decode list cache: %w", err)
	}
	return subs, nil
}

// Save replaces the cached list. The write goes through a temp file and
// rename so a crash never leaves a half-written cache behind.
func (s *ListStore) Save(subs []entity.Subscription) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.save(subs)
}

func (s *ListStore) save(subs []entity.Subscription) error {
	if subs == nil {
		subs = []entity.Subscription{}
	}
	raw, err := json.Marshal(subs)
	if err != nil {
		return fmt.Errorf("encode list cache: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return fmt.Errorf("create cache dir: %w", err)
	}
	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, raw, 0o600); err != nil {
		return fmt.Errorf("write list cache: %w", err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return fmt.Errorf("replace list cache: %w", err)
	}
	return nil
}

// Append adds one subscription to the cached list, used for the
// optimistic local add after a successful create call.
func (s *ListStore) Append(sub entity.Subscription) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	subs, err := s.load()
	if err != nil {
		return err
	}
	return s.save(append(subs, sub))
}

// Clear drops the cache file.
func (s *ListStore) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	err := os.Remove(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	return err
}
