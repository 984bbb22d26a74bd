package routing

import (
	"testing"

	"github.com/buildflow/client/internal/core/domain"
)

func sessionFor(role domain.Role) domain.Session {
	return domain.AuthenticatedSession("tok", &domain.User{Username: string(role), Role: role})
}

func TestDecidePendingWhileLoading(t *testing.T) {
	got := Decide(domain.NewSession(), "/projects")
	if got.Decision != DecisionPending {
		t.Fatalf("loading session must yield pending, got %v", got.Decision)
	}
	if got.Redirect != "" {
		t.Fatalf("pending carries no redirect, got %q", got.Redirect)
	}
}

func TestDecideUnauthenticatedRedirectsLogin(t *testing.T) {
	for _, path := range []string{"/projects", "/admin/dashboard", "/nope"} {
		got := Decide(domain.EmptySession(), path)
		if got.Decision != DecisionRedirectLogin || got.Redirect != domain.LoginRoute {
			t.Fatalf("path %q: expected redirect to login, got %+v", path, got)
		}
	}
}

func TestDecideRoleMatrix(t *testing.T) {
	cases := []struct {
		role domain.Role
		path string
		want Decision
	}{
		{domain.RoleAdmin, "/admin/dashboard", DecisionAllow},
		{domain.RoleAdmin, "/import", DecisionAllow},
		{domain.RoleAdmin, "/users", DecisionAllow},
		{domain.RoleAdmin, "/worker/dashboard", DecisionRedirectHome},
		{domain.RoleManager, "/manager/dashboard", DecisionAllow},
		{domain.RoleManager, "/projects", DecisionAllow},
		{domain.RoleManager, "/team-performance", DecisionAllow},
		{domain.RoleManager, "/import", DecisionRedirectHome},
		{domain.RoleManager, "/users", DecisionRedirectHome},
		{domain.RoleWorker, "/worker/dashboard", DecisionAllow},
		{domain.RoleWorker, "/tasks", DecisionAllow},
		{domain.RoleWorker, "/profile", DecisionAllow},
		{domain.RoleWorker, "/projects", DecisionRedirectHome},
		{domain.RoleWorker, "/budgets", DecisionRedirectHome},
	}

	for _, tc := range cases {
		got := Decide(sessionFor(tc.role), tc.path)
		if got.Decision != tc.want {
			t.Fatalf("%s opening %s: expected %v, got %v", tc.role, tc.path, tc.want, got.Decision)
		}
		if tc.want == DecisionRedirectHome && got.Redirect != tc.role.DashboardRoute() {
			t.Fatalf("%s opening %s: expected fallback %q, got %q", tc.role, tc.path, tc.role.DashboardRoute(), got.Redirect)
		}
	}
}

func TestDecideUnknownRouteFallsBackHome(t *testing.T) {
	got := Decide(sessionFor(domain.RoleManager), "/definitely-not-a-route")
	if got.Decision != DecisionRedirectHome || got.Redirect != "/manager/dashboard" {
		t.Fatalf("unknown route must degrade to the landing route, got %+v", got)
	}
}
