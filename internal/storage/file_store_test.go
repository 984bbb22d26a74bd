package storage

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/buildflow/client/internal/core/domain"
)

func tempStore(t *testing.T) (*FileStore, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "session.json")
	s, err := NewFileStore(path)
	if err != nil {
		t.Fatalf("new store: %v", err)
	}
	return s, path
}

func TestFileStoreRoundTrip(t *testing.T) {
	s, _ := tempStore(t)
	user := &domain.User{Username: "manager1", Name: "Sarah Manager", Role: domain.RoleManager, ManagedProjects: []int{1, 2}}

	if err := s.Save("tok-M", user); err != nil {
		t.Fatalf("save: %v", err)
	}

	token, got, err := s.Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if token != "tok-M" {
		t.Fatalf("expected tok-M, got %q", token)
	}
	if got.Username != "manager1" || got.Role != domain.RoleManager || len(got.ManagedProjects) != 2 {
		t.Fatalf("user did not survive the round trip: %+v", got)
	}
	if s.Token() != "tok-M" {
		t.Fatalf("Token() disagrees with Load()")
	}
}

func TestFileStoreEmpty(t *testing.T) {
	s, _ := tempStore(t)

	if _, _, err := s.Load(); !errors.Is(err, domain.ErrNoStoredCredentials) {
		t.Fatalf("expected ErrNoStoredCredentials, got %v", err)
	}
	if s.Token() != "" {
		t.Fatalf("empty store must yield an empty token")
	}
}

func TestFileStoreClear(t *testing.T) {
	s, path := tempStore(t)
	if err := s.Save("tok", &domain.User{Username: "admin", Role: domain.RoleAdmin}); err != nil {
		t.Fatalf("save: %v", err)
	}

	if err := s.Clear(); err != nil {
		t.Fatalf("clear: %v", err)
	}
	if _, err := os.Stat(path); !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("file survives Clear")
	}

	// Clearing an already-empty store is not an error.
	if err := s.Clear(); err != nil {
		t.Fatalf("second clear: %v", err)
	}
}

func TestFileStoreCorruptFile(t *testing.T) {
	s, path := tempStore(t)
	if err := os.WriteFile(path, []byte("{not json"), 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}

	if _, _, err := s.Load(); !errors.Is(err, domain.ErrNoStoredCredentials) {
		t.Fatalf("corrupt file must read as no credentials, got %v", err)
	}
	if s.Token() != "" {
		t.Fatalf("corrupt file must yield an empty token")
	}
}

func TestFileStorePartialRecord(t *testing.T) {
	s, path := tempStore(t)
	if err := os.WriteFile(path, []byte(`{"token":"orphan"}`), 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}

	if _, _, err := s.Load(); !errors.Is(err, domain.ErrNoStoredCredentials) {
		t.Fatalf("token without user must read as no credentials, got %v", err)
	}
}
