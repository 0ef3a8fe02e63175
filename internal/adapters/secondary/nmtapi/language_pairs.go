package nmtapi

import (
	"context"
	"fmt"
	"net/http"

	"release-management-service/internal/core/domain"
)

func (c *Client) ListLanguagePairs(ctx context.Context) ([]domain.LanguagePair, error) {
	var out []domain.LanguagePair
	if err := c.getJSON(ctx, "/language-pairs", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) GetLanguagePair(ctx context.Context, id int64) (*domain.LanguagePair, error) {
	var out domain.LanguagePair
	if err := c.getJSON(ctx, fmt.Sprintf("/language-pairs/%d", id), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) CreateLanguagePair(ctx context.Context, in domain.LanguagePairInput) (*domain.LanguagePair, error) {
	var out domain.LanguagePair
	if err := c.sendJSON(ctx, http.MethodPost, "/language-pairs", in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) UpdateLanguagePair(ctx context.Context, id int64, in domain.LanguagePairInput) (*domain.LanguagePair, error) {
	var out domain.LanguagePair
	if err := c.sendJSON(ctx, http.MethodPut, fmt.Sprintf("/language-pairs/%d", id), in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) DeleteLanguagePair(ctx context.Context, id int64) error {
	return c.delete(ctx, fmt.Sprintf("/language-pairs/%d", id), nil, nil)
}
