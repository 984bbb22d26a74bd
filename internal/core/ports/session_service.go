package ports

import (
	"context"

	"github.com/buildflow/client/internal/core/domain"
)

// SessionService is the single mutation surface for the Session. State
// transitions return the suggested destination route instead of navigating
// themselves; a Navigator performs the redirect effect.
type SessionService interface {
	// CheckAuth validates any persisted credentials and settles the
	// session. Idempotent; never touches the network when nothing is
	// persisted.
	CheckAuth(ctx context.Context) domain.Session

	// Login authenticates and, on success, returns the authenticated
	// session plus the role-specific landing route.
	Login(ctx context.Context, creds domain.Credentials) (domain.Session, string, error)

	// Logout discards all credentials and returns the empty session plus
	// the login route. Always succeeds; no server call is made.
	Logout() (domain.Session, string)

	// Current returns a read-only snapshot of the session.
	Current() domain.Session
}

// Navigator performs the navigation side effect a session outcome suggests.
// Keeping it behind an interface decouples the session module from any
// particular routing mechanism.
type Navigator interface {
	NavigateTo(route string)
}
