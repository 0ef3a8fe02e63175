package nmtapi

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"release-management-service/internal/core/domain"
)

func (c *Client) ListSQEResults(ctx context.Context, filter domain.SQEFilter) (*domain.Page[domain.SQEResult], error) {
	opts := filter.ListOptions.Normalize()

	query := url.Values{}
	query.Set("skip", strconv.Itoa(opts.Skip))
	query.Set("limit", strconv.Itoa(opts.Limit))
	if filter.LangPairID > 0 {
		query.Set("lang_pair_id", strconv.FormatInt(filter.LangPairID, 10))
	}

	var out domain.Page[domain.SQEResult]
	if err := c.getJSON(ctx, "/sqe-results", query, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) GetSQEResult(ctx context.Context, id int64) (*domain.SQEResult, error) {
	var out domain.SQEResult
	if err := c.getJSON(ctx, fmt.Sprintf("/sqe-results/%d", id), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) ListSQEResultsByVersion(ctx context.Context, versionID int64) ([]domain.SQEResult, error) {
	var out []domain.SQEResult
	if err := c.getJSON(ctx, fmt.Sprintf("/sqe-results/by-version/%d", versionID), nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) CreateSQEResult(ctx context.Context, in domain.SQEResultInput) (*domain.SQEResult, error) {
	var out domain.SQEResult
	if err := c.sendJSON(ctx, http.MethodPost, "/sqe-results", in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) UpdateSQEResult(ctx context.Context, id int64, in domain.SQEResultInput) (*domain.SQEResult, error) {
	var out domain.SQEResult
	if err := c.sendJSON(ctx, http.MethodPut, fmt.Sprintf("/sqe-results/%d", id), in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) DeleteSQEResult(ctx context.Context, id int64) error {
	return c.delete(ctx, fmt.Sprintf("/sqe-results/%d", id), nil, nil)
}

func (c *Client) GetSQEAnalytics(ctx context.Context, langPairID int64) (*domain.SQEAnalytics, error) {
	query := url.Values{}
	if langPairID > 0 {
		query.Set("lang_pair_id", strconv.FormatInt(langPairID, 10))
	}

	var out domain.SQEAnalytics
	if err := c.getJSON(ctx, "/sqe-results/analytics", query, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
