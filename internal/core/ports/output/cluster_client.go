package ports

import (
	"context"

	"release-management-service/internal/core/domain"
)

// ClusterClient reports readiness of the backend workloads running in Kubernetes.
type ClusterClient interface {
	IsAvailable() bool
	WorkloadStatuses(ctx context.Context) ([]domain.ComponentStatus, error)
}
