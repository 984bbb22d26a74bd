// Package session implements the single authority for acquiring,
// validating, persisting, and discarding the authentication session.
package session

import (
	"context"
	"sync"

	"github.com/rs/zerolog"

	"github.com/buildflow/client/internal/core/domain"
	"github.com/buildflow/client/internal/core/ports"
)

// Store owns the Session. All mutation of the session and of durable
// credential storage happens here; everything else holds a read view.
type Store struct {
	api   ports.AuthAPI
	creds ports.CredentialStore
	log   zerolog.Logger

	mu        sync.Mutex
	session   domain.Session
	checking  bool
	listeners []func(domain.Session)
}

var _ ports.SessionService = (*Store)(nil)

// NewStore creates a Store in the initial state: empty session with the
// startup validation still pending.
func NewStore(api ports.AuthAPI, creds ports.CredentialStore, log zerolog.Logger) *Store {
	return &Store{
		api:     api,
		creds:   creds,
		log:     log,
		session: domain.NewSession(),
	}
}

// CheckAuth validates any persisted credentials and settles the session.
//
// With nothing persisted it settles to the empty state without touching the
// network. A persisted token is validated against the "who am I" endpoint;
// any failure (rejected token, transport error) discards the persisted pair.
// Safe to call repeatedly; while a validation is already in flight the
// current snapshot is returned unchanged.
func (s *Store) CheckAuth(ctx context.Context) domain.Session {
	s.mu.Lock()
	if s.checking {
		snapshot := s.session
		s.mu.Unlock()
		return snapshot
	}
	s.checking = true
	s.session.IsLoading = true
	s.mu.Unlock()

	token, user, err := s.creds.Load()
	if err != nil {
		// Nothing persisted: settle empty, no network call.
		return s.settle(domain.EmptySession())
	}

	validated, err := s.api.CurrentUser(ctx, token)
	if err != nil {
		s.log.Debug().Err(err).Str("username", user.Username).Msg("stored token rejected")
		if err := s.creds.Clear(); err != nil {
			s.log.Warn().Err(err).Msg("failed to clear stored credentials")
		}
		return s.settle(domain.EmptySession())
	}

	return s.settle(domain.AuthenticatedSession(token, validated))
}

// Login authenticates and, on success, persists the pair, updates the
// session, and returns the role-specific landing route. On failure the
// session is left exactly as it was.
func (s *Store) Login(ctx context.Context, creds domain.Credentials) (domain.Session, string, error) {
	s.setLoading(true)

	token, user, err := s.api.Login(ctx, creds)
	if err != nil {
		s.setLoading(false)
		return s.Current(), "", err
	}

	if err := s.creds.Save(token, user); err != nil {
		// The server accepted the login; a persistence failure only costs
		// the next startup its validated session.
		s.log.Warn().Err(err).Msg("failed to persist credentials")
	}

	next := s.settle(domain.AuthenticatedSession(token, user))
	s.log.Info().Str("username", user.Username).Str("role", string(user.Role)).Msg("logged in")
	return next, user.Role.DashboardRoute(), nil
}

// Logout discards the persisted pair and resets the session. Pure
// client-side termination; always succeeds.
func (s *Store) Logout() (domain.Session, string) {
	if err := s.creds.Clear(); err != nil {
		s.log.Warn().Err(err).Msg("failed to clear stored credentials")
	}
	next := s.settle(domain.EmptySession())
	s.log.Info().Msg("logged out")
	return next, domain.LoginRoute
}

// HandleUnauthorized applies the global 401 policy: discard everything,
// exactly once. The first rejection of a session transitions it to empty
// and reports true; concurrent or repeated rejections report false so the
// caller issues a single redirect. The decision and the reset share one
// critical section, otherwise simultaneous rejections would each claim
// the reset.
func (s *Store) HandleUnauthorized() bool {
	s.mu.Lock()
	if !s.session.IsAuthenticated && s.creds.Token() == "" {
		s.mu.Unlock()
		return false
	}

	if err := s.creds.Clear(); err != nil {
		s.log.Warn().Err(err).Msg("failed to clear stored credentials")
	}
	next := domain.EmptySession()
	s.session = next
	s.checking = false
	listeners := make([]func(domain.Session), len(s.listeners))
	copy(listeners, s.listeners)
	s.mu.Unlock()

	for _, fn := range listeners {
		fn(next)
	}
	s.log.Info().Msg("session expired")
	return true
}

// Current returns a read-only snapshot of the session.
func (s *Store) Current() domain.Session {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.session
}

// Subscribe registers fn to run after every settled session change.
func (s *Store) Subscribe(fn func(domain.Session)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.listeners = append(s.listeners, fn)
}

// settle stores the new settled state and notifies subscribers.
func (s *Store) settle(next domain.Session) domain.Session {
	next.IsLoading = false

	s.mu.Lock()
	s.session = next
	s.checking = false
	listeners := make([]func(domain.Session), len(s.listeners))
	copy(listeners, s.listeners)
	s.mu.Unlock()

	for _, fn := range listeners {
		fn(next)
	}
	return next
}

func (s *Store) setLoading(v bool) {
	s.mu.Lock()
	s.session.IsLoading = v
	s.mu.Unlock()
}
