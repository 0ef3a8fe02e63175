package nmtapi

import (
	"context"

	"release-management-service/internal/core/domain"
)

func (c *Client) GetDashboardStats(ctx context.Context) (*domain.DashboardStats, error) {
	var out domain.DashboardStats
	if err := c.getJSON(ctx, "/dashboard/stats", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) GetStorageOverview(ctx context.Context) (*domain.StorageOverview, error) {
	var out domain.StorageOverview
	if err := c.getJSON(ctx, "/dashboard/storage-overview", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) GetSystemStatus(ctx context.Context) (*domain.SystemStatus, error) {
	var out domain.SystemStatus
	if err := c.getJSON(ctx, "/dashboard/system-status", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) ListActiveEvaluations(ctx context.Context) ([]domain.EvaluationJob, error) {
	var out []domain.EvaluationJob
	if err := c.getJSON(ctx, "/dashboard/active-evaluations", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}
