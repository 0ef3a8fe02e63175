package services

import (
	"context"
	"errors"

	log "github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"release-management-service/internal/core/domain"
	ports "release-management-service/internal/core/ports/output"
	"release-management-service/internal/diff"
	"release-management-service/internal/poller"
)

// EvaluationComparison holds the side-by-side diffs of one evaluation job.
// Base is nil when the job did not translate with the base model.
type EvaluationComparison struct {
	JobID     int64            `json:"job_id"`
	Finetuned diff.Comparison  `json:"finetuned_vs_reference"`
	Base      *diff.Comparison `json:"base_vs_reference,omitempty"`
}

type EvaluationService struct {
	client ports.EvaluationClient
	poller *poller.Poller
}

func NewEvaluationService(client ports.EvaluationClient, p *poller.Poller) *EvaluationService {
	return &EvaluationService{client: client, poller: p}
}

func (s *EvaluationService) ModeTypes(ctx context.Context) ([]domain.ModeType, error) {
	return s.client.ListModeTypes(ctx)
}

// Run rejects an incomplete request without calling the backend.
func (s *EvaluationService) Run(ctx context.Context, req domain.EvaluationRunRequest) (*domain.EvaluationJob, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	job, err := s.client.RunEvaluation(ctx, req)
	if err != nil {
		return nil, err
	}
	log.WithFields(log.Fields{
		"job_id":     job.ID,
		"version_id": req.VersionID,
		"testset_id": req.TestsetID,
	}).Info("evaluation started")
	return job, nil
}

func (s *EvaluationService) Status(ctx context.Context, jobID int64) (*domain.EvaluationJob, error) {
	return s.client.GetEvaluationStatus(ctx, jobID)
}

// Watch polls the job until it reaches COMPLETED or FAILED, ctx is done, or a
// status request fails. onUpdate sees every fetched snapshot.
func (s *EvaluationService) Watch(ctx context.Context, jobID int64, onUpdate poller.UpdateFunc) (*domain.EvaluationJob, error) {
	return s.poller.Poll(ctx, jobID, s.client.GetEvaluationStatus, onUpdate)
}

func (s *EvaluationService) List(ctx context.Context, filter domain.EvaluationFilter) (*domain.Page[domain.EvaluationJob], error) {
	filter.ListOptions = filter.ListOptions.Normalize()
	return s.client.ListEvaluations(ctx, filter)
}

func (s *EvaluationService) Delete(ctx context.Context, jobID int64) error {
	return s.client.DeleteEvaluation(ctx, jobID)
}

// DeleteSelected removes every selected job in a single backend call and
// clears the selection once the backend accepts it.
func (s *EvaluationService) DeleteSelected(ctx context.Context, sel *domain.JobSelection) (int, error) {
	if sel == nil || sel.Len() == 0 {
		return 0, domain.ErrEmptySelection
	}

	ids := sel.IDs()
	deleted, err := s.client.BulkDeleteEvaluations(ctx, ids)
	if err != nil {
		return 0, err
	}
	sel.Clear()

	log.WithFields(log.Fields{"requested": len(ids), "deleted": deleted}).Info("evaluations deleted")
	return deleted, nil
}

func (s *EvaluationService) DeleteByDateRange(ctx context.Context, r domain.DateRange) (int, error) {
	if err := r.Validate(); err != nil {
		return 0, err
	}

	deleted, err := s.client.DeleteEvaluationsByDate(ctx, r)
	if err != nil {
		return 0, err
	}
	log.WithFields(log.Fields{
		"start":   r.Start.Format("2006-01-02"),
		"end":     r.End.Format("2006-01-02"),
		"deleted": deleted,
	}).Info("evaluations purged")
	return deleted, nil
}

func (s *EvaluationService) DownloadOutput(ctx context.Context, jobID int64, output string) (*domain.Download, error) {
	ot, err := domain.ParseOutputType(output)
	if err != nil {
		return nil, err
	}
	return s.client.DownloadEvaluationOutput(ctx, jobID, ot)
}

func (s *EvaluationService) Content(ctx context.Context, jobID int64, output string) (string, error) {
	ot, err := domain.ParseOutputType(output)
	if err != nil {
		return "", err
	}
	return s.client.GetEvaluationContent(ctx, jobID, ot)
}

// Compare diffs the finetuned and base outputs against the reference text.
func (s *EvaluationService) Compare(ctx context.Context, jobID int64, opts diff.Options) (*EvaluationComparison, error) {
	var finetuned, reference, base string
	hasBase := true

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		finetuned, err = s.client.GetEvaluationContent(gctx, jobID, domain.OutputTypeFinetuned)
		return err
	})
	g.Go(func() error {
		var err error
		reference, err = s.client.GetEvaluationContent(gctx, jobID, domain.OutputTypeReference)
		return err
	})
	g.Go(func() error {
		var err error
		base, err = s.client.GetEvaluationContent(gctx, jobID, domain.OutputTypeBase)
		if errors.Is(err, domain.ErrNotFound) {
			hasBase = false
			return nil
		}
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	out := &EvaluationComparison{
		JobID:     jobID,
		Finetuned: diff.Compare(finetuned, reference, opts),
	}
	if hasBase {
		c := diff.Compare(base, reference, opts)
		out.Base = &c
	}
	return out, nil
}
