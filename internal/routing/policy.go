// Package routing holds the route access policy, the navigation menu
// derivation, and the guard that authorizes every navigation attempt.
//
// The access policy and the menu derive from one authoritative table so a
// menu entry can never point at a route its role is not allowed to open.
package routing

import (
	"fmt"

	"github.com/buildflow/client/internal/core/domain"
)

// Route is one protected view: its path, the menu label it appears under
// (empty keeps it out of the menu), and the roles allowed to open it.
type Route struct {
	Path  string
	Label string
	Roles []domain.Role
}

// routes is the authoritative table. Order defines menu order.
var routes = []Route{
	{Path: "/admin/dashboard", Label: "Dashboard", Roles: []domain.Role{domain.RoleAdmin}},
	{Path: "/manager/dashboard", Label: "Dashboard", Roles: []domain.Role{domain.RoleManager}},
	{Path: "/worker/dashboard", Label: "Dashboard", Roles: []domain.Role{domain.RoleWorker}},
	{Path: "/projects", Label: "Projects", Roles: []domain.Role{domain.RoleAdmin, domain.RoleManager}},
	{Path: "/tasks", Label: "Tasks", Roles: []domain.Role{domain.RoleAdmin, domain.RoleManager, domain.RoleWorker}},
	{Path: "/resources", Label: "Resources", Roles: []domain.Role{domain.RoleAdmin, domain.RoleManager}},
	{Path: "/budgets", Label: "Budgets", Roles: []domain.Role{domain.RoleAdmin, domain.RoleManager}},
	{Path: "/team-performance", Label: "Team", Roles: []domain.Role{domain.RoleAdmin, domain.RoleManager}},
	{Path: "/import", Label: "Import Data", Roles: []domain.Role{domain.RoleAdmin}},
	{Path: "/users", Label: "Users", Roles: []domain.Role{domain.RoleAdmin}},
	{Path: "/profile", Label: "Profile", Roles: []domain.Role{domain.RoleAdmin, domain.RoleManager, domain.RoleWorker}},
}

// Lookup returns the table entry for path.
func Lookup(path string) (Route, bool) {
	for _, r := range routes {
		if r.Path == path {
			return r, true
		}
	}
	return Route{}, false
}

// Allows reports whether role may open the route.
func (r Route) Allows(role domain.Role) bool {
	for _, allowed := range r.Roles {
		if allowed == role {
			return true
		}
	}
	return false
}

// Validate checks the table invariants. Run from tests so a broken table
// fails the build rather than surprising a user at runtime.
func Validate() error {
	seen := make(map[string]struct{}, len(routes))
	for _, r := range routes {
		if _, dup := seen[r.Path]; dup {
			return fmt.Errorf("duplicate route %q", r.Path)
		}
		seen[r.Path] = struct{}{}

		if len(r.Roles) == 0 {
			return fmt.Errorf("route %q admits no role", r.Path)
		}
		for _, role := range r.Roles {
			if _, err := domain.ParseRole(string(role)); err != nil {
				return fmt.Errorf("route %q: %w", r.Path, err)
			}
		}
	}

	// Every role needs its landing route in the table, and that route
	// must admit the role; denied navigation degrades to it.
	for _, role := range domain.Roles {
		home, ok := Lookup(role.DashboardRoute())
		if !ok {
			return fmt.Errorf("role %q has no landing route entry", role)
		}
		if !home.Allows(role) {
			return fmt.Errorf("landing route %q does not admit role %q", home.Path, role)
		}
	}
	return nil
}
