package nmtapi

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"release-management-service/internal/core/domain"
)

type deletedResponse struct {
	DeletedCount int `json:"deleted_count"`
}

type bulkDeleteRequest struct {
	JobIDs []int64 `json:"job_ids"`
}

type contentResponse struct {
	Content string `json:"content"`
}

func (c *Client) RunEvaluation(ctx context.Context, req domain.EvaluationRunRequest) (*domain.EvaluationJob, error) {
	var out domain.EvaluationJob
	if err := c.sendJSON(ctx, http.MethodPost, "/evaluations/run", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) GetEvaluationStatus(ctx context.Context, jobID int64) (*domain.EvaluationJob, error) {
	var out domain.EvaluationJob
	if err := c.getJSON(ctx, fmt.Sprintf("/evaluations/status/%d", jobID), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) ListEvaluations(ctx context.Context, filter domain.EvaluationFilter) (*domain.Page[domain.EvaluationJob], error) {
	opts := filter.ListOptions.Normalize()

	query := url.Values{}
	query.Set("skip", strconv.Itoa(opts.Skip))
	query.Set("limit", strconv.Itoa(opts.Limit))
	if filter.VersionID > 0 {
		query.Set("version_id", strconv.FormatInt(filter.VersionID, 10))
	}
	if filter.Status != "" {
		query.Set("status", string(filter.Status))
	}

	var out domain.Page[domain.EvaluationJob]
	if err := c.getJSON(ctx, "/evaluations", query, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) DeleteEvaluation(ctx context.Context, jobID int64) error {
	return c.delete(ctx, fmt.Sprintf("/evaluations/%d", jobID), nil, nil)
}

// BulkDeleteEvaluations sends all ids in one request.
func (c *Client) BulkDeleteEvaluations(ctx context.Context, jobIDs []int64) (int, error) {
	var out deletedResponse
	if err := c.sendJSON(ctx, http.MethodPost, "/evaluations/bulk-delete", bulkDeleteRequest{JobIDs: jobIDs}, &out); err != nil {
		return 0, err
	}
	return out.DeletedCount, nil
}

func (c *Client) DeleteEvaluationsByDate(ctx context.Context, r domain.DateRange) (int, error) {
	query := url.Values{}
	query.Set("start_date", r.Start.Format(dateLayout))
	query.Set("end_date", r.End.Format(dateLayout))

	var out deletedResponse
	if err := c.delete(ctx, "/evaluations/by-date", query, &out); err != nil {
		return 0, err
	}
	return out.DeletedCount, nil
}

func (c *Client) DownloadEvaluationOutput(ctx context.Context, jobID int64, output domain.OutputType) (*domain.Download, error) {
	query := url.Values{}
	query.Set("output_type", string(output))
	path := fmt.Sprintf("/evaluations/%d/download", jobID)
	return c.download(ctx, path, query, fmt.Sprintf("evaluation_%d_%s.txt", jobID, output))
}

func (c *Client) GetEvaluationContent(ctx context.Context, jobID int64, output domain.OutputType) (string, error) {
	query := url.Values{}
	query.Set("output_type", string(output))

	var out contentResponse
	if err := c.getJSON(ctx, fmt.Sprintf("/evaluations/%d/content", jobID), query, &out); err != nil {
		return "", err
	}
	return out.Content, nil
}

func (c *Client) ListModeTypes(ctx context.Context) ([]domain.ModeType, error) {
	var out []domain.ModeType
	if err := c.getJSON(ctx, "/evaluations/modes", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}
