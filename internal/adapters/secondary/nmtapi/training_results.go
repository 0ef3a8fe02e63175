package nmtapi

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"release-management-service/internal/core/domain"
)

func (c *Client) ListTrainingResults(ctx context.Context, versionID int64) ([]domain.TrainingResult, error) {
	query := url.Values{}
	query.Set("version_id", strconv.FormatInt(versionID, 10))

	var out []domain.TrainingResult
	if err := c.getJSON(ctx, "/training-results", query, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) CreateTrainingResult(ctx context.Context, in domain.TrainingResultInput) (*domain.TrainingResult, error) {
	var out domain.TrainingResult
	if err := c.sendJSON(ctx, http.MethodPost, "/training-results", in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) DeleteTrainingResult(ctx context.Context, id int64) error {
	return c.delete(ctx, fmt.Sprintf("/training-results/%d", id), nil, nil)
}
