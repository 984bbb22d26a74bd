package domain

import "fmt"

// Role is the closed set of roles the backend issues. Branching on a Role
// must be exhaustive so that adding a role is a compile-time-visible change.
type Role string

const (
	RoleAdmin   Role = "admin"
	RoleManager Role = "manager"
	RoleWorker  Role = "worker"
)

// Roles lists every known role in a stable order.
var Roles = []Role{RoleAdmin, RoleManager, RoleWorker}

// ParseRole converts the wire representation into a Role.
func ParseRole(s string) (Role, error) {
	switch Role(s) {
	case RoleAdmin, RoleManager, RoleWorker:
		return Role(s), nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownRole, s)
}

// DashboardRoute returns the role-specific landing route used after login
// and as the fallback destination when access to a route is denied.
func (r Role) DashboardRoute() string {
	switch r {
	case RoleAdmin:
		return "/admin/dashboard"
	case RoleManager:
		return "/manager/dashboard"
	case RoleWorker:
		return "/worker/dashboard"
	}
	// Unreachable for values produced by ParseRole.
	return LoginRoute
}

// User models the authenticated identity as returned by the API. The record
// replaces wholesale on every login or validation; the client never mutates
// individual fields.
type User struct {
	Username string `json:"username"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Role     Role   `json:"role"`

	// WorkerName is set only for role=worker; ManagedProjects only for
	// role=manager. The upstream API keeps them mutually exclusive, the
	// client does not enforce it.
	WorkerName      string `json:"worker_name,omitempty"`
	ManagedProjects []int  `json:"managed_projects,omitempty"`
}

// DemoUser is a sample account advertised by the backend for the quick-login
// screen.
type DemoUser struct {
	Username string `json:"username"`
	Role     string `json:"role"`
	Name     string `json:"name"`
	Hint     string `json:"hint"`
}
