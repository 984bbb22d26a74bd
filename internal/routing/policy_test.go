package routing

import (
	"testing"

	"github.com/buildflow/client/internal/core/domain"
)

func TestValidate(t *testing.T) {
	if err := Validate(); err != nil {
		t.Fatalf("route table invalid: %v", err)
	}
}

func TestLookup(t *testing.T) {
	r, ok := Lookup("/projects")
	if !ok {
		t.Fatalf("expected /projects in the table")
	}
	if !r.Allows(domain.RoleAdmin) || !r.Allows(domain.RoleManager) {
		t.Fatalf("/projects must admit admin and manager")
	}
	if r.Allows(domain.RoleWorker) {
		t.Fatalf("/projects must not admit worker")
	}

	if _, ok := Lookup("/nope"); ok {
		t.Fatalf("unknown path must not resolve")
	}
}

func TestMenuMatchesPolicy(t *testing.T) {
	for _, role := range domain.Roles {
		for _, entry := range MenuFor(role) {
			r, ok := Lookup(entry.Path)
			if !ok {
				t.Fatalf("role %s: menu entry %q points at an unknown route", role, entry.Path)
			}
			if !r.Allows(role) {
				t.Fatalf("role %s: menu entry %q points at a route it cannot open", role, entry.Path)
			}
			if entry.Label == "" {
				t.Fatalf("role %s: menu entry %q has no label", role, entry.Path)
			}
		}
	}
}

func TestMenuIncludesLandingRoute(t *testing.T) {
	for _, role := range domain.Roles {
		found := false
		for _, entry := range MenuFor(role) {
			if entry.Path == role.DashboardRoute() {
				found = true
			}
		}
		if !found {
			t.Fatalf("role %s: landing route missing from menu", role)
		}
	}
}
