package services

import (
	"context"
	"errors"

	"golang.org/x/sync/errgroup"

	"release-management-service/internal/core/domain"
	ports "release-management-service/internal/core/ports/output"
)

// ModelVersionDetail is a model version with everything attached to it.
type ModelVersionDetail struct {
	Version         *domain.ModelVersion    `json:"version"`
	TrainingResults []domain.TrainingResult `json:"training_results"`
	ReleaseNote     *domain.ReleaseNote     `json:"release_note"`
	SQEResults      []domain.SQEResult      `json:"sqe_results"`
	Evaluations     []domain.EvaluationJob  `json:"evaluations"`
}

type ModelVersionService struct {
	versions ports.ModelVersionClient
	results  ports.TrainingResultClient
	notes    ports.ReleaseNoteClient
	sqe      ports.SQEClient
	evals    ports.EvaluationClient
}

func NewModelVersionService(
	versions ports.ModelVersionClient,
	results ports.TrainingResultClient,
	notes ports.ReleaseNoteClient,
	sqe ports.SQEClient,
	evals ports.EvaluationClient,
) *ModelVersionService {
	return &ModelVersionService{
		versions: versions,
		results:  results,
		notes:    notes,
		sqe:      sqe,
		evals:    evals,
	}
}

// List returns all versions, or only those of langPairID when it is positive.
func (s *ModelVersionService) List(ctx context.Context, langPairID int64) ([]domain.ModelVersion, error) {
	return s.versions.ListModelVersions(ctx, langPairID)
}

func (s *ModelVersionService) Get(ctx context.Context, id int64) (*domain.ModelVersion, error) {
	return s.versions.GetModelVersion(ctx, id)
}

func (s *ModelVersionService) Create(ctx context.Context, in domain.ModelVersionInput) (*domain.ModelVersion, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}
	return s.versions.CreateModelVersion(ctx, in)
}

func (s *ModelVersionService) Update(ctx context.Context, id int64, in domain.ModelVersionInput) (*domain.ModelVersion, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}
	return s.versions.UpdateModelVersion(ctx, id, in)
}

func (s *ModelVersionService) Delete(ctx context.Context, id int64) error {
	return s.versions.DeleteModelVersion(ctx, id)
}

// DownloadFile validates fileType before asking the backend.
func (s *ModelVersionService) DownloadFile(ctx context.Context, id int64, fileType string) (*domain.Download, error) {
	ft, err := domain.ParseFileType(fileType)
	if err != nil {
		return nil, err
	}
	return s.versions.DownloadModelFile(ctx, id, ft)
}

// Detail loads the version and its related records concurrently. A missing
// release note is not an error.
func (s *ModelVersionService) Detail(ctx context.Context, id int64) (*ModelVersionDetail, error) {
	detail := &ModelVersionDetail{}
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		v, err := s.versions.GetModelVersion(gctx, id)
		detail.Version = v
		return err
	})
	g.Go(func() error {
		r, err := s.results.ListTrainingResults(gctx, id)
		detail.TrainingResults = r
		return err
	})
	g.Go(func() error {
		n, err := s.notes.GetReleaseNote(gctx, id)
		if errors.Is(err, domain.ErrNotFound) {
			return nil
		}
		detail.ReleaseNote = n
		return err
	})
	g.Go(func() error {
		r, err := s.sqe.ListSQEResultsByVersion(gctx, id)
		detail.SQEResults = r
		return err
	})
	g.Go(func() error {
		page, err := s.evals.ListEvaluations(gctx, domain.EvaluationFilter{
			VersionID:   id,
			ListOptions: domain.ListOptions{Limit: domain.MaxPageSize},
		})
		if err != nil {
			return err
		}
		detail.Evaluations = page.Items
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return detail, nil
}
