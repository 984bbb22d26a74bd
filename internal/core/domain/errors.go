package domain

import (
	"errors"
	"fmt"
)

var ErrUnknownRole = errors.New("unknown role")
var ErrNotAuthenticated = errors.New("not authenticated")
var ErrNoStoredCredentials = errors.New("no stored credentials")

// AuthenticationError carries the human-readable reason the server rejected
// a login. The session is left unchanged when this error is returned.
type AuthenticationError struct {
	Message string
}

func (e *AuthenticationError) Error() string {
	return e.Message
}

// TransportError wraps a network-level failure (timeout, DNS, connection
// refused). The gateway never retries; retrying is the caller's decision.
type TransportError struct {
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("transport failure: %v", e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// APIError is a non-401 error response passed through to the caller
// unmodified for local handling.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api error (%d): %s", e.StatusCode, e.Message)
}

// ValidationError reports malformed form input. It is raised locally,
// before any request is issued, and never reaches the gateway.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}
