package gateway

import (
	"context"
	"net/url"
	"strconv"

	"github.com/buildflow/client/internal/core/domain"
)

func (c *Client) DashboardStats(ctx context.Context) (*domain.DashboardStats, error) {
	var stats domain.DashboardStats
	if err := c.get(ctx, "analytics", "/api/analytics/dashboard", nil, &stats); err != nil {
		return nil, err
	}
	return &stats, nil
}

// TeamPerformance reports per-worker task aggregates, optionally narrowed
// to one project (projectID <= 0 means all projects).
func (c *Client) TeamPerformance(ctx context.Context, projectID int) (*domain.TeamPerformanceReport, error) {
	query := url.Values{}
	if projectID > 0 {
		query.Set("project_id", strconv.Itoa(projectID))
	}

	var report domain.TeamPerformanceReport
	if err := c.get(ctx, "analytics", "/api/analytics/team-performance", query, &report); err != nil {
		return nil, err
	}
	return &report, nil
}
