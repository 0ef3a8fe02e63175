package services

import (
	"context"

	"release-management-service/internal/core/domain"
	ports "release-management-service/internal/core/ports/output"
)

type LanguagePairService struct {
	client ports.LanguagePairClient
}

func NewLanguagePairService(client ports.LanguagePairClient) *LanguagePairService {
	return &LanguagePairService{client: client}
}

func (s *LanguagePairService) List(ctx context.Context) ([]domain.LanguagePair, error) {
	return s.client.ListLanguagePairs(ctx)
}

func (s *LanguagePairService) Get(ctx context.Context, id int64) (*domain.LanguagePair, error) {
	return s.client.GetLanguagePair(ctx, id)
}

func (s *LanguagePairService) Create(ctx context.Context, in domain.LanguagePairInput) (*domain.LanguagePair, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}
	return s.client.CreateLanguagePair(ctx, in)
}

func (s *LanguagePairService) Update(ctx context.Context, id int64, in domain.LanguagePairInput) (*domain.LanguagePair, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}
	return s.client.UpdateLanguagePair(ctx, id, in)
}

func (s *LanguagePairService) Delete(ctx context.Context, id int64) error {
	return s.client.DeleteLanguagePair(ctx, id)
}
