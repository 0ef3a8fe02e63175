package services

import (
	"context"

	"release-management-service/internal/core/domain"
	ports "release-management-service/internal/core/ports/output"
)

type TestsetService struct {
	client ports.TestsetClient
}

func NewTestsetService(client ports.TestsetClient) *TestsetService {
	return &TestsetService{client: client}
}

func (s *TestsetService) List(ctx context.Context, langPairID int64) ([]domain.Testset, error) {
	return s.client.ListTestsets(ctx, langPairID)
}

func (s *TestsetService) Get(ctx context.Context, id int64) (*domain.Testset, error) {
	return s.client.GetTestset(ctx, id)
}

func (s *TestsetService) Create(ctx context.Context, in domain.TestsetInput) (*domain.Testset, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}
	return s.client.CreateTestset(ctx, in)
}

func (s *TestsetService) Delete(ctx context.Context, id int64) error {
	return s.client.DeleteTestset(ctx, id)
}
