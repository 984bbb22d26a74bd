package routing

import "github.com/buildflow/client/internal/core/domain"

// Decision classifies one navigation attempt.
type Decision int

const (
	// DecisionPending: the startup auth check has not settled; render a
	// neutral pending state and make no access call yet.
	DecisionPending Decision = iota
	// DecisionRedirectLogin: no session; the requested path is discarded.
	DecisionRedirectLogin
	// DecisionAllow: render the requested view.
	DecisionAllow
	// DecisionRedirectHome: authenticated but not permitted; degrade to
	// the user's own landing route, never an error page.
	DecisionRedirectHome
)

func (d Decision) String() string {
	switch d {
	case DecisionPending:
		return "pending"
	case DecisionRedirectLogin:
		return "redirect-login"
	case DecisionAllow:
		return "allow"
	case DecisionRedirectHome:
		return "redirect-home"
	}
	return "unknown"
}

// Access is the guard's verdict. Redirect is set for the two redirect
// decisions and empty otherwise.
type Access struct {
	Decision Decision
	Redirect string
}

// Decide authorizes a navigation attempt. Pure function of the session
// snapshot and the requested path; the caller performs any redirect.
func Decide(s domain.Session, path string) Access {
	if s.IsLoading {
		return Access{Decision: DecisionPending}
	}
	if !s.IsAuthenticated {
		return Access{Decision: DecisionRedirectLogin, Redirect: domain.LoginRoute}
	}

	role, ok := s.Role()
	if !ok {
		// Cannot happen while the session invariant holds; treat a
		// violated invariant as no session.
		return Access{Decision: DecisionRedirectLogin, Redirect: domain.LoginRoute}
	}

	route, known := Lookup(path)
	if !known || !route.Allows(role) {
		return Access{Decision: DecisionRedirectHome, Redirect: role.DashboardRoute()}
	}
	return Access{Decision: DecisionAllow}
}
