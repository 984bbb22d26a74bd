package ports

import "github.com/buildflow/client/internal/core/domain"

// CredentialStore is the durable client-side storage holding exactly two
// opaque entries: the bearer token and the serialized user record.
//
// Only the session store writes through this interface; the gateway reads
// the token fresh on every outgoing request.
type CredentialStore interface {
	// Save persists the token and user, replacing any previous pair.
	Save(token string, user *domain.User) error

	// Load returns the persisted pair, or domain.ErrNoStoredCredentials
	// when either entry is absent.
	Load() (string, *domain.User, error)

	// Token returns the persisted bearer token, or "" when absent.
	Token() string

	// Clear removes both entries. Clearing an empty store is a no-op.
	Clear() error
}
