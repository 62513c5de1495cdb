// Package session persists the authenticated session on local disk so it
// survives app restarts. One JSON file, one fixed namespace key.
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

// Namespace keys the persisted state, mirroring the storage key the mobile
// app registered its session under.
const Namespace = "auth-storage"

type envelope struct {
	Namespace string          `json:"namespace"`
	State     json.RawMessage `json:"state"`
}

// Store reads and writes one session file. Safe for concurrent use.
type Store struct {
	mu   sync.Mutex
	path string
}

func NewStore(path string) *Store {
	return &Store{path: path}
}

// Save serializes state under the namespace, creating parent directories as
// needed. The file is written with owner-only permissions.
func (s *Store) Save(state interface{}) error {
	raw, err := json.Marshal(state)
	if err != nil {
		return fmt.Errorf("marshal session state: %w", err)
	}
	payload, err := json.Marshal(envelope{Namespace: Namespace, State: raw})
	if err != nil {
		return fmt.Errorf("marshal session envelope: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if dir := filepath.Dir(s.path); dir != "." {
		if err := os.MkdirAll(dir, 0o700); err != nil {
			return fmt.Errorf("create session directory: %w", err)
		}
	}
	if err := os.WriteFile(s.path, payload, 0o600); err != nil {
		return fmt.Errorf("write session file: %w", err)
	}
	return nil
}

// Load decodes the persisted state into out. It reports false with no error
// when nothing usable is stored: a missing file, a corrupt file, or a
// foreign namespace all read as an empty session.
func (s *Store) Load(out interface{}) (bool, error) {
	s.mu.Lock()
	raw, err := os.ReadFile(s.path)
	s.mu.Unlock()
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return false, nil
		}
		return false, fmt.Errorf("read session file: %w", err)
	}

	var env envelope
	if err := json.Unmarshal(raw, &env); err != nil || env.Namespace != Namespace || len(env.State) == 0 {
		return false, nil
	}
	if err := json.Unmarshal(env.State, out); err != nil {
		return false, nil
	}
	return true, nil
}

// Clear removes the session file. Clearing an absent session is not an error.
func (s *Store) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := os.Remove(s.path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("remove session file: %w", err)
	}
	return nil
}
