package gateway

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"

	"github.com/buildflow/client/internal/core/domain"
	"github.com/buildflow/client/internal/storage"
)

func newTestClient(t *testing.T, handler http.Handler) (*Client, *storage.MemoryStore) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	store := storage.NewMemoryStore()
	c := New(Options{
		BaseURL: srv.URL,
		Store:   store,
		Logger:  zerolog.Nop(),
	})
	return c, store
}

func TestBearerReadFreshPerRequest(t *testing.T) {
	var seen []string
	c, store := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = append(seen, r.Header.Get("Authorization"))
		w.Write([]byte(`{}`))
	}))

	ctx := context.Background()
	if err := c.get(ctx, "test", "/x", nil, nil); err != nil {
		t.Fatalf("get: %v", err)
	}
	if err := store.Save("tok-1", &domain.User{Username: "admin", Role: domain.RoleAdmin}); err != nil {
		t.Fatalf("save: %v", err)
	}
	if err := c.get(ctx, "test", "/x", nil, nil); err != nil {
		t.Fatalf("get: %v", err)
	}

	want := []string{"", "Bearer tok-1"}
	if len(seen) != len(want) {
		t.Fatalf("expected %d requests, got %d", len(want), len(seen))
	}
	for i := range want {
		if seen[i] != want[i] {
			t.Fatalf("request %d: expected header %q, got %q", i, want[i], seen[i])
		}
	}
}

func TestUnauthorizedInvokesHandler(t *testing.T) {
	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"detail":"could not validate credentials"}`))
	}))

	calls := 0
	c.SetUnauthorizedHandler(func() { calls++ })

	err := c.get(context.Background(), "test", "/x", nil, nil)

	var apiErr *domain.APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("expected APIError, got %v", err)
	}
	if apiErr.StatusCode != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", apiErr.StatusCode)
	}
	if apiErr.Message != "could not validate credentials" {
		t.Fatalf("unexpected message %q", apiErr.Message)
	}
	if calls != 1 {
		t.Fatalf("expected the unauthorized handler to run once, got %d", calls)
	}
}

func TestErrorEnvelopeShapes(t *testing.T) {
	cases := []struct {
		body string
		want string
	}{
		{`{"detail":"not found"}`, "not found"},
		{`{"error":"boom"}`, "boom"},
		{`<html>oops</html>`, "request failed"},
		{``, "request failed"},
	}

	for _, tc := range cases {
		body := tc.body
		c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadRequest)
			w.Write([]byte(body))
		}))

		err := c.get(context.Background(), "test", "/x", nil, nil)
		var apiErr *domain.APIError
		if !errors.As(err, &apiErr) {
			t.Fatalf("body %q: expected APIError, got %v", tc.body, err)
		}
		if apiErr.Message != tc.want {
			t.Fatalf("body %q: expected message %q, got %q", tc.body, tc.want, apiErr.Message)
		}
	}
}

func TestTransportFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := srv.URL
	srv.Close()

	c := New(Options{BaseURL: url, Store: storage.NewMemoryStore(), Logger: zerolog.Nop()})

	err := c.get(context.Background(), "test", "/x", nil, nil)
	var transportErr *domain.TransportError
	if !errors.As(err, &transportErr) {
		t.Fatalf("expected TransportError, got %v", err)
	}
}
