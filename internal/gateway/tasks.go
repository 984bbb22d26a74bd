package gateway

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"github.com/buildflow/client/internal/core/domain"
)

func (c *Client) Tasks(ctx context.Context, filter domain.TaskFilter) ([]domain.Task, error) {
	query := url.Values{}
	if filter.ProjectID > 0 {
		query.Set("project_id", strconv.Itoa(filter.ProjectID))
	}
	if filter.Status != "" {
		query.Set("status", filter.Status)
	}

	var tasks []domain.Task
	if err := c.get(ctx, "tasks", "/api/tasks/", query, &tasks); err != nil {
		return nil, err
	}
	return tasks, nil
}

func (c *Client) Task(ctx context.Context, id int) (*domain.Task, error) {
	var t domain.Task
	if err := c.get(ctx, "tasks", fmt.Sprintf("/api/tasks/%d", id), nil, &t); err != nil {
		return nil, err
	}
	return &t, nil
}

func (c *Client) CreateTask(ctx context.Context, in domain.TaskInput) (*domain.Task, error) {
	var t domain.Task
	if err := c.post(ctx, "tasks", "/api/tasks/", in, &t); err != nil {
		return nil, err
	}
	return &t, nil
}

func (c *Client) UpdateTask(ctx context.Context, id int, in domain.TaskInput) (*domain.Task, error) {
	var t domain.Task
	if err := c.put(ctx, "tasks", fmt.Sprintf("/api/tasks/%d", id), in, &t); err != nil {
		return nil, err
	}
	return &t, nil
}

func (c *Client) DeleteTask(ctx context.Context, id int) error {
	return c.delete(ctx, "tasks", fmt.Sprintf("/api/tasks/%d", id))
}

// OverdueTasks lists the overdue tasks of one project.
func (c *Client) OverdueTasks(ctx context.Context, projectID int) ([]domain.Task, error) {
	var tasks []domain.Task
	path := fmt.Sprintf("/api/tasks/project/%d/overdue", projectID)
	if err := c.get(ctx, "tasks", path, nil, &tasks); err != nil {
		return nil, err
	}
	return tasks, nil
}
