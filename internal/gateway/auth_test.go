package gateway

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/buildflow/client/internal/core/domain"
)

func TestLoginSendsAnonymousRequest(t *testing.T) {
	c, store := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("Authorization"); got != "" {
			t.Errorf("login must be anonymous, got header %q", got)
		}
		var creds domain.Credentials
		if err := json.NewDecoder(r.Body).Decode(&creds); err != nil {
			t.Errorf("decode credentials: %v", err)
		}
		json.NewEncoder(w).Encode(map[string]any{
			"access_token": "tok-A",
			"token_type":   "bearer",
			"user":         &domain.User{Username: creds.Username, Role: domain.RoleAdmin},
		})
	}))
	// A stale stored token must not leak into the login call.
	if err := store.Save("stale", &domain.User{Username: "old", Role: domain.RoleWorker}); err != nil {
		t.Fatalf("save: %v", err)
	}

	token, user, err := c.Login(context.Background(), domain.Credentials{Username: "admin", Password: "admin123"})
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if token != "tok-A" || user.Username != "admin" {
		t.Fatalf("unexpected login result: token=%q user=%+v", token, user)
	}
}

func TestLoginRejectedUsesServerMessage(t *testing.T) {
	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"detail":"Incorrect username or password"}`))
	}))

	handlerCalls := 0
	c.SetUnauthorizedHandler(func() { handlerCalls++ })

	_, _, err := c.Login(context.Background(), domain.Credentials{Username: "admin", Password: "nope"})

	var authErr *domain.AuthenticationError
	if !errors.As(err, &authErr) {
		t.Fatalf("expected AuthenticationError, got %v", err)
	}
	if authErr.Message != "Incorrect username or password" {
		t.Fatalf("expected the server's message, got %q", authErr.Message)
	}
	if handlerCalls != 0 {
		t.Fatalf("a rejected login must not trigger the session-expired policy")
	}
}

func TestLoginFallbackMessage(t *testing.T) {
	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		w.Write([]byte(`<html>bad gateway</html>`))
	}))

	_, _, err := c.Login(context.Background(), domain.Credentials{Username: "admin", Password: "admin123"})

	var authErr *domain.AuthenticationError
	if !errors.As(err, &authErr) {
		t.Fatalf("expected AuthenticationError, got %v", err)
	}
	if authErr.Message != "Login failed. Please try again." {
		t.Fatalf("expected the fallback message, got %q", authErr.Message)
	}
}

func TestCurrentUserUsesExplicitToken(t *testing.T) {
	c, store := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("Authorization"); got != "Bearer candidate" {
			t.Errorf("expected the candidate token, got %q", got)
		}
		json.NewEncoder(w).Encode(&domain.User{Username: "admin", Role: domain.RoleAdmin})
	}))
	if err := store.Save("stored", &domain.User{Username: "admin", Role: domain.RoleAdmin}); err != nil {
		t.Fatalf("save: %v", err)
	}

	user, err := c.CurrentUser(context.Background(), "candidate")
	if err != nil {
		t.Fatalf("current user: %v", err)
	}
	if user.Username != "admin" {
		t.Fatalf("unexpected user %+v", user)
	}
}
