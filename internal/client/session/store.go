// Package session implements the client-side authentication core: a persisted
// token store, a broadcastable authenticated flag, an unverified claims
// decoder, and the Manager that composes them.
package session

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"
)

const (
	keyToken  = "auth_token"
	keyUserID = "user_id"
)

// Store persists the session's two key-value entries in a JSON file. Only the
// Manager writes to it; everything else reads through the Manager's accessors.
type Store struct {
	mu   sync.Mutex
	path string
}

func NewStore(path string) *Store {
	return &Store{path: path}
}

// Token returns the persisted bearer token, or "" when absent.
func (s *Store) Token() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.read()[keyToken]
}

// UserID returns the persisted user id, or "" when absent.
func (s *Store) UserID() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.read()[keyUserID]
}

// Save persists both entries together.
func (s *Store) Save(token, userID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.write(map[string]string{keyToken: token, keyUserID: userID})
}

// Clear removes both entries together.
func (s *Store) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := os.Remove(s.path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("session store: clear: %w", err)
	}
	return nil
}

// read returns the stored entries; a missing or unreadable file reads as an
// empty session rather than an error.
func (s *Store) read() map[string]string {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return map[string]string{}
	}
	entries := map[string]string{}
	if err := json.Unmarshal(data, &entries); err != nil {
		return map[string]string{}
	}
	return entries
}

func (s *Store) write(entries map[string]string) error {
	data, err := json.Marshal(entries)
	if err != nil {
		return fmt.Errorf("session store: encode: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return fmt.Errorf("session store: mkdir: %w", err)
	}
	if err := os.WriteFile(s.path, data, 0o600); err != nil {
		return fmt.Errorf("session store: write: %w", err)
	}
	return nil
}
