package gateway

import (
	"context"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"

	"github.com/buildflow/client/internal/core/domain"
	"github.com/buildflow/client/internal/core/session"
	"github.com/buildflow/client/internal/storage"
	"github.com/buildflow/client/internal/stub"
)

// Full client stack against the in-memory API: login, authenticated data
// access, logout, and the post-logout rejection path.
func TestSessionLifecycleAgainstStub(t *testing.T) {
	api := httptest.NewServer(stub.New(stub.Options{JWTSecret: "test-secret", Logger: zerolog.Nop()}).Handler())
	t.Cleanup(api.Close)

	creds := storage.NewMemoryStore()
	client := New(Options{BaseURL: api.URL, Store: creds, Logger: zerolog.Nop()})
	sessions := session.NewStore(client, creds, zerolog.Nop())

	redirects := 0
	client.SetUnauthorizedHandler(func() {
		if sessions.HandleUnauthorized() {
			redirects++
		}
	})

	ctx := context.Background()

	// Cold start with nothing persisted.
	if s := sessions.CheckAuth(ctx); s.IsAuthenticated {
		t.Fatalf("expected empty session on cold start, got %+v", s)
	}

	// Login lands the admin on the admin dashboard.
	s, dest, err := sessions.Login(ctx, domain.Credentials{Username: "admin", Password: "admin123"})
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if dest != "/admin/dashboard" {
		t.Fatalf("expected /admin/dashboard, got %q", dest)
	}
	if s.User == nil || s.User.Name != "John Admin" {
		t.Fatalf("unexpected user: %+v", s.User)
	}

	// The persisted token authorizes data calls.
	projects, err := client.Projects(ctx)
	if err != nil {
		t.Fatalf("projects: %v", err)
	}
	if len(projects) != 3 {
		t.Fatalf("expected the 3 seeded projects, got %d", len(projects))
	}

	// A restart revalidates the persisted pair without logging in again.
	rehydrated := session.NewStore(client, creds, zerolog.Nop())
	if s := rehydrated.CheckAuth(ctx); !s.IsAuthenticated || s.User.Username != "admin" {
		t.Fatalf("persisted session did not survive a restart: %+v", s)
	}

	// Logout discards everything; the next call is anonymous, rejected, and
	// triggers the 401 policy exactly once.
	if _, dest := sessions.Logout(); dest != domain.LoginRoute {
		t.Fatalf("expected logout destination %q, got %q", domain.LoginRoute, dest)
	}
	if _, err := client.Projects(ctx); err == nil {
		t.Fatalf("expected a rejected call after logout")
	}
	if _, err := client.Projects(ctx); err == nil {
		t.Fatalf("expected a rejected call after logout")
	}
	if redirects != 0 {
		t.Fatalf("an already-empty session must not redirect again, got %d", redirects)
	}
	if sessions.Current().IsAuthenticated {
		t.Fatalf("session re-authenticated itself")
	}
}

func TestWorkerLandsOnWorkerDashboard(t *testing.T) {
	api := httptest.NewServer(stub.New(stub.Options{JWTSecret: "test-secret", Logger: zerolog.Nop()}).Handler())
	t.Cleanup(api.Close)

	creds := storage.NewMemoryStore()
	client := New(Options{BaseURL: api.URL, Store: creds, Logger: zerolog.Nop()})
	sessions := session.NewStore(client, creds, zerolog.Nop())

	s, dest, err := sessions.Login(context.Background(), domain.Credentials{Username: "worker1", Password: "worker123"})
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if dest != "/worker/dashboard" {
		t.Fatalf("expected /worker/dashboard, got %q", dest)
	}
	role, ok := s.Role()
	if !ok || role != domain.RoleWorker {
		t.Fatalf("expected worker role, got %v", role)
	}
	if s.User.WorkerName == "" {
		t.Fatalf("worker identity missing worker_name: %+v", s.User)
	}
}
