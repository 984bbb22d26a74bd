package domain

// LoginRoute is the destination for every unauthenticated redirect.
const LoginRoute = "/login"

// Session is the process-wide authentication state. It is owned exclusively
// by the session store; every other component holds a read-only view.
//
// Invariant: IsAuthenticated == (Token != "" && User != nil).
// IsLoading is true only during the initial validation check or an in-flight
// login call.
type Session struct {
	Token           string
	User            *User
	IsAuthenticated bool
	IsLoading       bool
}

// NewSession returns the state the process starts in: empty, with the
// initial validation still pending.
func NewSession() Session {
	return Session{IsLoading: true}
}

// EmptySession is the settled unauthenticated state reached after logout,
// a failed validation, or a rejected API call.
func EmptySession() Session {
	return Session{}
}

// AuthenticatedSession builds the settled state for a validated token/user
// pair, preserving the invariant by construction.
func AuthenticatedSession(token string, user *User) Session {
	return Session{Token: token, User: user, IsAuthenticated: true}
}

// Role returns the current user's role, or ok=false when no user is set.
func (s Session) Role() (Role, bool) {
	if s.User == nil {
		return "", false
	}
	return s.User.Role, true
}
