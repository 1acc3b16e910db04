package session

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Store persists the opaque auth token between runs. Exactly one token
// exists at a time; Login/Register/Logout are its only writers and every
// authenticated request reads it through [Store.Current].
type Store interface {
	// Current returns the persisted token, or "" when logged out.
	Current() string

	// Save persists a new token, replacing any existing one.
	Save(token string) error

	// Clear removes the persisted token. Clearing an absent token is not
	// an error.
	Clear() error
}

// FileStore keeps the token in a single file under a well-known path,
// surviving restarts until explicit logout or a rejected session.
type FileStore struct {
	path string
}

var _ Store = (*FileStore)(nil)

// NewFileStore creates a token store at the given path.
func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

func (s *FileStore) Current() string {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return ""
	}
	return strings.TrimSpace(string(data))
}

func (s *FileStore) Save(token string) error {
	if token == "" {
		return fmt.Errorf("refusing to persist empty token")
	}

	if err := os.MkdirAll(filepath.Dir(s.path), 0700); err != nil {
		return fmt.Errorf("failed to create token directory: %w", err)
	}
	if err := os.WriteFile(s.path, []byte(token), 0600); err != nil {
		return fmt.Errorf("failed to write token: %w", err)
	}
	return nil
}

func (s *FileStore) Clear() error {
	err := os.Remove(s.path)
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to remove token: %w", err)
	}
	return nil
}

// MemoryStore is an in-process token store for tests and ephemeral
// sessions.
type MemoryStore struct {
	token string
}

var _ Store = (*MemoryStore)(nil)

func NewMemoryStore(token string) *MemoryStore {
	return &MemoryStore{token: token}
}

func (s *MemoryStore) Current() string { return s.token }

func (s *MemoryStore) Save(token string) error {
	if token == "" {
		return fmt.Errorf("refusing to persist empty token")
	}
	s.token = token
	return nil
}

func (s *MemoryStore) Clear() error {
	s.token = ""
	return nil
}
