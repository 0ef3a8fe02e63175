package services

import (
	"context"

	log "github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"release-management-service/internal/core/domain"
	ports "release-management-service/internal/core/ports/output"
)

type DashboardService struct {
	client  ports.DashboardClient
	cluster ports.ClusterClient
}

// NewDashboardService creates the dashboard service. cluster may be nil.
func NewDashboardService(client ports.DashboardClient, cluster ports.ClusterClient) *DashboardService {
	return &DashboardService{client: client, cluster: cluster}
}

// Overview gathers every dashboard panel concurrently. Cluster probe failures
// are reported as a degraded component and never fail the overview.
func (s *DashboardService) Overview(ctx context.Context) (*domain.Overview, error) {
	var (
		stats    *domain.DashboardStats
		storage  *domain.StorageOverview
		system   *domain.SystemStatus
		active   []domain.EvaluationJob
		workload []domain.ComponentStatus
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		stats, err = s.client.GetDashboardStats(gctx)
		return err
	})
	g.Go(func() (err error) {
		storage, err = s.client.GetStorageOverview(gctx)
		return err
	})
	g.Go(func() (err error) {
		system, err = s.client.GetSystemStatus(gctx)
		return err
	})
	g.Go(func() (err error) {
		active, err = s.client.ListActiveEvaluations(gctx)
		return err
	})
	if s.cluster != nil && s.cluster.IsAvailable() {
		g.Go(func() error {
			statuses, err := s.cluster.WorkloadStatuses(gctx)
			if err != nil {
				log.WithError(err).Warn("cluster probe failed")
				workload = []domain.ComponentStatus{{
					Name:    "kubernetes",
					Status:  domain.ComponentDegraded,
					Message: err.Error(),
				}}
				return nil
			}
			workload = statuses
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	overview := &domain.Overview{ActiveEvaluations: active}
	if stats != nil {
		overview.Stats = *stats
	}
	if storage != nil {
		overview.Storage = *storage
	}
	if system != nil {
		overview.System = *system
	}
	if len(workload) > 0 {
		overview.System.Components = append(overview.System.Components, workload...)
		overview.System.Status = worstStatus(overview.System.Status, workload)
	}
	if overview.ActiveEvaluations == nil {
		overview.ActiveEvaluations = []domain.EvaluationJob{}
	}
	return overview, nil
}

var statusRank = map[string]int{
	domain.ComponentHealthy:   0,
	domain.ComponentUnknown:   1,
	domain.ComponentDegraded:  2,
	domain.ComponentUnhealthy: 3,
}

// worstStatus folds component statuses into the overall one. An unhealthy
// workload only degrades the overall status; the backend decides unhealthy.
func worstStatus(current string, components []domain.ComponentStatus) string {
	worst := current
	if worst == "" {
		worst = domain.ComponentHealthy
	}
	for _, c := range components {
		st := c.Status
		if st == domain.ComponentUnhealthy || st == domain.ComponentUnknown {
			st = domain.ComponentDegraded
		}
		if statusRank[st] > statusRank[worst] {
			worst = st
		}
	}
	return worst
}
