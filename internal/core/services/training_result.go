package services

import (
	"context"

	"release-management-service/internal/core/domain"
	ports "release-management-service/internal/core/ports/output"
)

type TrainingResultService struct {
	client ports.TrainingResultClient
}

func NewTrainingResultService(client ports.TrainingResultClient) *TrainingResultService {
	return &TrainingResultService{client: client}
}

func (s *TrainingResultService) List(ctx context.Context, versionID int64) ([]domain.TrainingResult, error) {
	return s.client.ListTrainingResults(ctx, versionID)
}

func (s *TrainingResultService) Create(ctx context.Context, in domain.TrainingResultInput) (*domain.TrainingResult, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}
	return s.client.CreateTrainingResult(ctx, in)
}

func (s *TrainingResultService) Delete(ctx context.Context, id int64) error {
	return s.client.DeleteTrainingResult(ctx, id)
}
