package gateway

import (
	"context"
	"net/url"
	"strconv"

	"github.com/buildflow/client/internal/core/domain"
)

func (c *Client) Profile(ctx context.Context) (*domain.User, error) {
	var u domain.User
	if err := c.get(ctx, "users", "/api/users/profile", nil, &u); err != nil {
		return nil, err
	}
	return &u, nil
}

// UpdateProfile submits the edit and returns the full re-derived record.
func (c *Client) UpdateProfile(ctx context.Context, in domain.ProfileUpdate) (*domain.User, error) {
	var u domain.User
	if err := c.put(ctx, "users", "/api/users/profile", in, &u); err != nil {
		return nil, err
	}
	return &u, nil
}

func (c *Client) Team(ctx context.Context) ([]domain.User, error) {
	var team []domain.User
	if err := c.get(ctx, "users", "/api/users/team", nil, &team); err != nil {
		return nil, err
	}
	return team, nil
}

func (c *Client) ActivityLog(ctx context.Context, limit int) ([]domain.ActivityLog, error) {
	if limit <= 0 {
		limit = 50
	}
	query := url.Values{"limit": []string{strconv.Itoa(limit)}}

	var entries []domain.ActivityLog
	if err := c.get(ctx, "users", "/api/users/activity-log", query, &entries); err != nil {
		return nil, err
	}
	return entries, nil
}
