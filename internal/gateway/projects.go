package gateway

import (
	"context"
	"fmt"

	"github.com/buildflow/client/internal/core/domain"
)

func (c *Client) Projects(ctx context.Context) ([]domain.Project, error) {
	var projects []domain.Project
	if err := c.get(ctx, "projects", "/api/projects/", nil, &projects); err != nil {
		return nil, err
	}
	return projects, nil
}

func (c *Client) Project(ctx context.Context, id int) (*domain.Project, error) {
	var p domain.Project
	if err := c.get(ctx, "projects", fmt.Sprintf("/api/projects/%d", id), nil, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

func (c *Client) CreateProject(ctx context.Context, in domain.ProjectInput) (*domain.Project, error) {
	var p domain.Project
	if err := c.post(ctx, "projects", "/api/projects/", in, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

func (c *Client) UpdateProject(ctx context.Context, id int, in domain.ProjectInput) (*domain.Project, error) {
	var p domain.Project
	if err := c.put(ctx, "projects", fmt.Sprintf("/api/projects/%d", id), in, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

func (c *Client) DeleteProject(ctx context.Context, id int) error {
	return c.delete(ctx, "projects", fmt.Sprintf("/api/projects/%d", id))
}
