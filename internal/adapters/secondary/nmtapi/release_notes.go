package nmtapi

import (
	"context"
	"fmt"
	"net/http"

	"release-management-service/internal/core/domain"
)

func (c *Client) GetReleaseNote(ctx context.Context, versionID int64) (*domain.ReleaseNote, error) {
	var out domain.ReleaseNote
	if err := c.getJSON(ctx, fmt.Sprintf("/release-notes/%d", versionID), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// SaveReleaseNote creates or replaces the note of a version.
func (c *Client) SaveReleaseNote(ctx context.Context, versionID int64, in domain.ReleaseNoteInput) (*domain.ReleaseNote, error) {
	var out domain.ReleaseNote
	if err := c.sendJSON(ctx, http.MethodPut, fmt.Sprintf("/release-notes/%d", versionID), in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) DeleteReleaseNote(ctx context.Context, versionID int64) error {
	return c.delete(ctx, fmt.Sprintf("/release-notes/%d", versionID), nil, nil)
}
