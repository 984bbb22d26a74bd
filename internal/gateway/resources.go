package gateway

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"github.com/buildflow/client/internal/core/domain"
)

func (c *Client) Resources(ctx context.Context, filter domain.ResourceFilter) ([]domain.Resource, error) {
	query := url.Values{}
	if filter.ProjectID > 0 {
		query.Set("project_id", strconv.Itoa(filter.ProjectID))
	}
	if filter.ResourceType != "" {
		query.Set("resource_type", filter.ResourceType)
	}

	var resources []domain.Resource
	if err := c.get(ctx, "resources", "/api/resources/", query, &resources); err != nil {
		return nil, err
	}
	return resources, nil
}

func (c *Client) Resource(ctx context.Context, id int) (*domain.Resource, error) {
	var r domain.Resource
	if err := c.get(ctx, "resources", fmt.Sprintf("/api/resources/%d", id), nil, &r); err != nil {
		return nil, err
	}
	return &r, nil
}

func (c *Client) CreateResource(ctx context.Context, in domain.ResourceInput) (*domain.Resource, error) {
	var r domain.Resource
	if err := c.post(ctx, "resources", "/api/resources/", in, &r); err != nil {
		return nil, err
	}
	return &r, nil
}

func (c *Client) UpdateResource(ctx context.Context, id int, in domain.ResourceInput) (*domain.Resource, error) {
	var r domain.Resource
	if err := c.put(ctx, "resources", fmt.Sprintf("/api/resources/%d", id), in, &r); err != nil {
		return nil, err
	}
	return &r, nil
}

func (c *Client) DeleteResource(ctx context.Context, id int) error {
	return c.delete(ctx, "resources", fmt.Sprintf("/api/resources/%d", id))
}
