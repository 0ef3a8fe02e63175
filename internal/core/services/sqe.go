package services

import (
	"context"

	"release-management-service/internal/core/domain"
	ports "release-management-service/internal/core/ports/output"
)

type SQEService struct {
	client ports.SQEClient
}

func NewSQEService(client ports.SQEClient) *SQEService {
	return &SQEService{client: client}
}

func (s *SQEService) List(ctx context.Context, filter domain.SQEFilter) (*domain.Page[domain.SQEResult], error) {
	filter.ListOptions = filter.ListOptions.Normalize()
	return s.client.ListSQEResults(ctx, filter)
}

func (s *SQEService) Get(ctx context.Context, id int64) (*domain.SQEResult, error) {
	return s.client.GetSQEResult(ctx, id)
}

func (s *SQEService) ByVersion(ctx context.Context, versionID int64) ([]domain.SQEResult, error) {
	return s.client.ListSQEResultsByVersion(ctx, versionID)
}

func (s *SQEService) Create(ctx context.Context, in domain.SQEResultInput) (*domain.SQEResult, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}
	return s.client.CreateSQEResult(ctx, in)
}

func (s *SQEService) Update(ctx context.Context, id int64, in domain.SQEResultInput) (*domain.SQEResult, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}
	return s.client.UpdateSQEResult(ctx, id, in)
}

func (s *SQEService) Delete(ctx context.Context, id int64) error {
	return s.client.DeleteSQEResult(ctx, id)
}

// Analytics aggregates all results, or those of one language pair when langPairID is positive.
func (s *SQEService) Analytics(ctx context.Context, langPairID int64) (*domain.SQEAnalytics, error) {
	return s.client.GetSQEAnalytics(ctx, langPairID)
}
