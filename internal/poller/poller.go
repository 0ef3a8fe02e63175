// Package poller tracks a long-running evaluation job until it settles.
package poller

import (
	"context"
	"errors"
	"fmt"
	"time"

	log "github.com/sirupsen/logrus"

	"release-management-service/internal/core/domain"
)

const DefaultInterval = 2 * time.Second

var ErrInvalidInterval = errors.New("poll interval must be positive")

// FetchFunc returns the current state of a job.
type FetchFunc func(ctx context.Context, jobID int64) (*domain.EvaluationJob, error)

// UpdateFunc is called with every fetched state, including the final one.
type UpdateFunc func(job *domain.EvaluationJob)

// Poller issues a status request immediately and then once per Interval.
// It has no backoff and does not coordinate with other pollers of the same job.
type Poller struct {
	Interval time.Duration
}

func New(interval time.Duration) (*Poller, error) {
	if interval <= 0 {
		return nil, ErrInvalidInterval
	}
	return &Poller{Interval: interval}, nil
}

// Poll blocks until the job reaches COMPLETED or FAILED, ctx is cancelled or
// a fetch fails. The last fetched job is returned in every case where one
// was fetched. Fetch errors are returned as-is without retrying.
func (p *Poller) Poll(ctx context.Context, jobID int64, fetch FetchFunc, onUpdate UpdateFunc) (*domain.EvaluationJob, error) {
	interval := p.Interval
	if interval <= 0 {
		interval = DefaultInterval
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	var last *domain.EvaluationJob
	for {
		job, err := fetch(ctx, jobID)
		if err != nil {
			if ctx.Err() != nil {
				return last, ctx.Err()
			}
			return last, fmt.Errorf("poll evaluation job %d: %w", jobID, err)
		}
		last = job

		if onUpdate != nil {
			onUpdate(job)
		}

		if job.Status.IsTerminal() {
			log.WithFields(log.Fields{
				"job_id": jobID,
				"status": job.Status,
			}).Debug("evaluation job reached terminal state")
			return job, nil
		}

		select {
		case <-ctx.Done():
			return last, ctx.Err()
		case <-ticker.C:
		}
	}
}
