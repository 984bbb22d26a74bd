package gateway

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"github.com/buildflow/client/internal/core/domain"
)

func (c *Client) Budgets(ctx context.Context, filter domain.BudgetFilter) ([]domain.Budget, error) {
	query := url.Values{}
	if filter.ProjectID > 0 {
		query.Set("project_id", strconv.Itoa(filter.ProjectID))
	}
	if filter.Category != "" {
		query.Set("category", filter.Category)
	}

	var budgets []domain.Budget
	if err := c.get(ctx, "budgets", "/api/budgets/", query, &budgets); err != nil {
		return nil, err
	}
	return budgets, nil
}

func (c *Client) Budget(ctx context.Context, id int) (*domain.Budget, error) {
	var b domain.Budget
	if err := c.get(ctx, "budgets", fmt.Sprintf("/api/budgets/%d", id), nil, &b); err != nil {
		return nil, err
	}
	return &b, nil
}

func (c *Client) CreateBudget(ctx context.Context, in domain.BudgetInput) (*domain.Budget, error) {
	var b domain.Budget
	if err := c.post(ctx, "budgets", "/api/budgets/", in, &b); err != nil {
		return nil, err
	}
	return &b, nil
}

func (c *Client) UpdateBudget(ctx context.Context, id int, in domain.BudgetInput) (*domain.Budget, error) {
	var b domain.Budget
	if err := c.put(ctx, "budgets", fmt.Sprintf("/api/budgets/%d", id), in, &b); err != nil {
		return nil, err
	}
	return &b, nil
}

func (c *Client) DeleteBudget(ctx context.Context, id int) error {
	return c.delete(ctx, "budgets", fmt.Sprintf("/api/budgets/%d", id))
}
