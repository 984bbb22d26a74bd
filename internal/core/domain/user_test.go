package domain

import (
	"errors"
	"strings"
	"testing"
)

func TestParseRole(t *testing.T) {
	for _, role := range Roles {
		got, err := ParseRole(string(role))
		if err != nil || got != role {
			t.Fatalf("ParseRole(%q) = %v, %v", role, got, err)
		}
	}

	if _, err := ParseRole("superuser"); !errors.Is(err, ErrUnknownRole) {
		t.Fatalf("expected ErrUnknownRole, got %v", err)
	}
}

func TestDashboardRoutePerRole(t *testing.T) {
	cases := map[Role]string{
		RoleAdmin:   "/admin/dashboard",
		RoleManager: "/manager/dashboard",
		RoleWorker:  "/worker/dashboard",
	}
	for role, want := range cases {
		if got := role.DashboardRoute(); got != want {
			t.Fatalf("%s: expected %q, got %q", role, want, got)
		}
	}
}

func TestSessionInvariant(t *testing.T) {
	s := AuthenticatedSession("tok", &User{Username: "admin", Role: RoleAdmin})
	if !s.IsAuthenticated || s.Token == "" || s.User == nil {
		t.Fatalf("constructor violated the session invariant: %+v", s)
	}

	role, ok := s.Role()
	if !ok || role != RoleAdmin {
		t.Fatalf("expected admin role, got %v %v", role, ok)
	}

	if _, ok := EmptySession().Role(); ok {
		t.Fatalf("empty session must report no role")
	}
	if !NewSession().IsLoading {
		t.Fatalf("initial session must be loading")
	}
}

func TestCredentialsStringMasksPassword(t *testing.T) {
	c := Credentials{Username: "admin", Password: "admin123"}
	if s := c.String(); strings.Contains(s, "admin123") {
		t.Fatalf("password leaked: %s", s)
	}
}
