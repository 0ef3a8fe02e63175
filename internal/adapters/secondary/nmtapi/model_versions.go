package nmtapi

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"release-management-service/internal/core/domain"
)

const dateLayout = "2006-01-02"

func (c *Client) ListModelVersions(ctx context.Context, langPairID int64) ([]domain.ModelVersion, error) {
	query := url.Values{}
	if langPairID > 0 {
		query.Set("lang_pair_id", strconv.FormatInt(langPairID, 10))
	}

	var out []domain.ModelVersion
	if err := c.getJSON(ctx, "/model-versions", query, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) GetModelVersion(ctx context.Context, id int64) (*domain.ModelVersion, error) {
	var out domain.ModelVersion
	if err := c.getJSON(ctx, fmt.Sprintf("/model-versions/%d", id), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func modelVersionFields(in domain.ModelVersionInput) url.Values {
	fields := url.Values{}
	fields.Set("lang_pair_id", strconv.FormatInt(in.LangPairID, 10))
	fields.Set("version", in.Version)
	if in.ReleaseDate != nil {
		fields.Set("release_date", in.ReleaseDate.Format(dateLayout))
	}
	if in.Description != "" {
		fields.Set("description", in.Description)
	}
	return fields
}

func (c *Client) CreateModelVersion(ctx context.Context, in domain.ModelVersionInput) (*domain.ModelVersion, error) {
	var out domain.ModelVersion
	if err := c.sendMultipart(ctx, http.MethodPost, "/model-versions", modelVersionFields(in), in.Files, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) UpdateModelVersion(ctx context.Context, id int64, in domain.ModelVersionInput) (*domain.ModelVersion, error) {
	var out domain.ModelVersion
	path := fmt.Sprintf("/model-versions/%d", id)
	if err := c.sendMultipart(ctx, http.MethodPut, path, modelVersionFields(in), in.Files, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) DeleteModelVersion(ctx context.Context, id int64) error {
	return c.delete(ctx, fmt.Sprintf("/model-versions/%d", id), nil, nil)
}

func (c *Client) DownloadModelFile(ctx context.Context, id int64, fileType domain.FileType) (*domain.Download, error) {
	path := fmt.Sprintf("/model-versions/%d/files/%s", id, fileType)
	return c.download(ctx, path, nil, fmt.Sprintf("model_version_%d_%s", id, fileType))
}
