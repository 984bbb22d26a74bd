// Package storage provides the durable client-side credential storage: two
// opaque entries (bearer token, serialized user) surviving process restarts.
package storage

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/buildflow/client/internal/core/domain"
	"github.com/buildflow/client/internal/core/ports"
)

// sessionFile is the on-disk shape. The token stays opaque; the user record
// round-trips through JSON exactly as the API delivered it.
type sessionFile struct {
	Token string       `json:"token,omitempty"`
	User  *domain.User `json:"user,omitempty"`
}

// FileStore persists credentials in a single JSON file, by default under the
// user configuration directory.
type FileStore struct {
	mu   sync.Mutex
	path string
}

var _ ports.CredentialStore = (*FileStore)(nil)

// NewFileStore creates a FileStore at path. An empty path selects the
// default location (<user config dir>/buildflow/session.json).
func NewFileStore(path string) (*FileStore, error) {
	if path == "" {
		dir, err := os.UserConfigDir()
		if err != nil {
			return nil, fmt.Errorf("resolve config dir: %w", err)
		}
		path = filepath.Join(dir, "buildflow", "session.json")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return nil, fmt.Errorf("create storage dir: %w", err)
	}
	return &FileStore{path: path}, nil
}

func (s *FileStore) Save(token string, user *domain.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.write(sessionFile{Token: token, User: user})
}

func (s *FileStore) Load() (string, *domain.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	f, err := s.read()
	if err != nil {
		return "", nil, err
	}
	if f.Token == "" || f.User == nil {
		return "", nil, domain.ErrNoStoredCredentials
	}
	return f.Token, f.User, nil
}

func (s *FileStore) Token() string {
	s.mu.Lock()
	defer s.mu.Unlock()

	f, err := s.read()
	if err != nil {
		return ""
	}
	return f.Token
}

func (s *FileStore) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.Remove(s.path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("clear credentials: %w", err)
	}
	return nil
}

func (s *FileStore) read() (sessionFile, error) {
	var f sessionFile
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return f, domain.ErrNoStoredCredentials
		}
		return f, fmt.Errorf("read credentials: %w", err)
	}
	if err := json.Unmarshal(data, &f); err != nil {
		// A corrupt file is indistinguishable from no credentials.
		return sessionFile{}, domain.ErrNoStoredCredentials
	}
	return f, nil
}

// write replaces the file atomically so a crash mid-write cannot leave a
// half-serialized record behind.
func (s *FileStore) write(f sessionFile) error {
	data, err := json.Marshal(f)
	if err != nil {
		return fmt.Errorf("encode credentials: %w", err)
	}
	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o600); err != nil {
		return fmt.Errorf("write credentials: %w", err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return fmt.Errorf("write credentials: %w", err)
	}
	return nil
}
