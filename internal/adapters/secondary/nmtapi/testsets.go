package nmtapi

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"release-management-service/internal/core/domain"
)

func (c *Client) ListTestsets(ctx context.Context, langPairID int64) ([]domain.Testset, error) {
	query := url.Values{}
	if langPairID > 0 {
		query.Set("lang_pair_id", strconv.FormatInt(langPairID, 10))
	}

	var out []domain.Testset
	if err := c.getJSON(ctx, "/testsets", query, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) GetTestset(ctx context.Context, id int64) (*domain.Testset, error) {
	var out domain.Testset
	if err := c.getJSON(ctx, fmt.Sprintf("/testsets/%d", id), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) CreateTestset(ctx context.Context, in domain.TestsetInput) (*domain.Testset, error) {
	fields := url.Values{}
	fields.Set("lang_pair_id", strconv.FormatInt(in.LangPairID, 10))
	fields.Set("testset_name", in.TestsetName)
	if in.Description != "" {
		fields.Set("description", in.Description)
	}

	var out domain.Testset
	if err := c.sendMultipart(ctx, http.MethodPost, "/testsets", fields, in.Files, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) DeleteTestset(ctx context.Context, id int64) error {
	return c.delete(ctx, fmt.Sprintf("/testsets/%d", id), nil, nil)
}
