package gateway

import (
	"context"
	"errors"
	"net/http"

	"github.com/buildflow/client/internal/core/domain"
)

// loginResponse mirrors the login endpoint's envelope.
type loginResponse struct {
	AccessToken string       `json:"access_token"`
	TokenType   string       `json:"token_type"`
	User        *domain.User `json:"user"`
}

// Login exchanges credentials for a bearer token and user record. A
// rejected login surfaces the server's own message as an
// AuthenticationError; the global 401 policy does not apply here.
func (c *Client) Login(ctx context.Context, creds domain.Credentials) (string, *domain.User, error) {
	var resp loginResponse
	anonymous := ""
	err := c.send(ctx, request{
		group:            "auth",
		method:           http.MethodPost,
		path:             "/api/auth/login",
		body:             creds,
		out:              &resp,
		bearer:           &anonymous,
		skipUnauthorized: true,
	})
	if err != nil {
		var apiErr *domain.APIError
		if errors.As(err, &apiErr) {
			msg := apiErr.Message
			if msg == "" || msg == "request failed" {
				msg = "Login failed. Please try again."
			}
			return "", nil, &domain.AuthenticationError{Message: msg}
		}
		return "", nil, err
	}
	if resp.AccessToken == "" || resp.User == nil {
		return "", nil, &domain.AuthenticationError{Message: "Login failed. Please try again."}
	}
	return resp.AccessToken, resp.User, nil
}

// CurrentUser validates token against the "who am I" endpoint. The explicit
// token lets the initial auth check validate persisted credentials before
// the session exists.
func (c *Client) CurrentUser(ctx context.Context, token string) (*domain.User, error) {
	var user domain.User
	err := c.send(ctx, request{
		group:  "auth",
		method: http.MethodGet,
		path:   "/api/auth/me",
		out:    &user,
		bearer: &token,
	})
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// DemoUsers lists the sample accounts advertised for the quick-login screen.
func (c *Client) DemoUsers(ctx context.Context) ([]domain.DemoUser, error) {
	var users []domain.DemoUser
	if err := c.get(ctx, "auth", "/api/auth/demo-users", nil, &users); err != nil {
		return nil, err
	}
	return users, nil
}
