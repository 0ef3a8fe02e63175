package services

import (
	"context"
	"errors"

	"release-management-service/internal/core/domain"
	ports "release-management-service/internal/core/ports/output"
)

type ReleaseNoteService struct {
	client ports.ReleaseNoteClient
}

func NewReleaseNoteService(client ports.ReleaseNoteClient) *ReleaseNoteService {
	return &ReleaseNoteService{client: client}
}

// Get returns nil without error when the version has no note yet.
func (s *ReleaseNoteService) Get(ctx context.Context, versionID int64) (*domain.ReleaseNote, error) {
	note, err := s.client.GetReleaseNote(ctx, versionID)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, nil
	}
	return note, err
}

// Save creates the note or replaces the existing one.
func (s *ReleaseNoteService) Save(ctx context.Context, versionID int64, in domain.ReleaseNoteInput) (*domain.ReleaseNote, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}
	return s.client.SaveReleaseNote(ctx, versionID, in)
}

func (s *ReleaseNoteService) Delete(ctx context.Context, versionID int64) error {
	return s.client.DeleteReleaseNote(ctx, versionID)
}
