package storage

import (
	"sync"

	"github.com/buildflow/client/internal/core/domain"
	"github.com/buildflow/client/internal/core/ports"
)

// MemoryStore keeps credentials in memory only. Used by tests and by
// one-shot invocations that must not leave a session behind.
type MemoryStore struct {
	mu    sync.Mutex
	token string
	user  *domain.User
}

var _ ports.CredentialStore = (*MemoryStore)(nil)

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (s *MemoryStore) Save(token string, user *domain.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = token
	s.user = user
	return nil
}

func (s *MemoryStore) Load() (string, *domain.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.token == "" || s.user == nil {
		return "", nil, domain.ErrNoStoredCredentials
	}
	clone := *s.user
	return s.token, &clone, nil
}

func (s *MemoryStore) Token() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.token
}

func (s *MemoryStore) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = ""
	s.user = nil
	return nil
}
