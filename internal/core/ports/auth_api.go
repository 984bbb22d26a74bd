package ports

import (
	"context"

	"github.com/buildflow/client/internal/core/domain"
)

// AuthAPI is the slice of the gateway the session store depends on.
type AuthAPI interface {
	// Login exchanges credentials for a bearer token and user record.
	// A rejected login returns *domain.AuthenticationError.
	Login(ctx context.Context, creds domain.Credentials) (string, *domain.User, error)

	// CurrentUser validates the given token against the "who am I"
	// endpoint and returns the authoritative user record.
	CurrentUser(ctx context.Context, token string) (*domain.User, error)

	// DemoUsers lists the sample accounts for the quick-login screen.
	DemoUsers(ctx context.Context) ([]domain.DemoUser, error)
}
