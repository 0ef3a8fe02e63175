package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"release-management-service/internal/core/domain"
	"release-management-service/internal/testutil"
)

func mockDashboard(system *domain.SystemStatus) *testutil.MockDashboardClient {
	client := new(testutil.MockDashboardClient)
	client.On("GetDashboardStats", mock.Anything).Return(&domain.DashboardStats{TotalModelVersions: 12}, nil)
	client.On("GetStorageOverview", mock.Anything).Return(&domain.StorageOverview{TotalBytes: 100, UsedBytes: 25}, nil)
	client.On("GetSystemStatus", mock.Anything).Return(system, nil)
	client.On("ListActiveEvaluations", mock.Anything).Return([]domain.EvaluationJob{{ID: 1}}, nil)
	return client
}

func TestDashboardService_Overview(t *testing.T) {
	client := mockDashboard(&domain.SystemStatus{
		Status:     domain.ComponentHealthy,
		Components: []domain.ComponentStatus{{Name: "database", Status: domain.ComponentHealthy}},
	})
	svc := NewDashboardService(client, nil)

	o, err := svc.Overview(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 12, o.Stats.TotalModelVersions)
	assert.InDelta(t, 25.0, o.Storage.UsedPercent(), 0.001)
	assert.Equal(t, domain.ComponentHealthy, o.System.Status)
	assert.Len(t, o.ActiveEvaluations, 1)
}

func TestDashboardService_Overview_MergesCluster(t *testing.T) {
	client := mockDashboard(&domain.SystemStatus{Status: domain.ComponentHealthy})
	cluster := new(testutil.MockClusterClient)
	cluster.On("IsAvailable").Return(true)
	cluster.On("WorkloadStatuses", mock.Anything).Return([]domain.ComponentStatus{
		{Name: "k8s/api", Status: domain.ComponentHealthy},
		{Name: "k8s/worker", Status: domain.ComponentUnhealthy},
	}, nil)
	svc := NewDashboardService(client, cluster)

	o, err := svc.Overview(context.Background())
	require.NoError(t, err)
	assert.Len(t, o.System.Components, 2)
	assert.Equal(t, domain.ComponentDegraded, o.System.Status)
}

func TestDashboardService_Overview_ClusterProbeFailure(t *testing.T) {
	client := mockDashboard(&domain.SystemStatus{Status: domain.ComponentHealthy})
	cluster := new(testutil.MockClusterClient)
	cluster.On("IsAvailable").Return(true)
	cluster.On("WorkloadStatuses", mock.Anything).Return(nil, errors.New("forbidden"))
	svc := NewDashboardService(client, cluster)

	o, err := svc.Overview(context.Background())
	require.NoError(t, err)
	require.Len(t, o.System.Components, 1)
	assert.Equal(t, "kubernetes", o.System.Components[0].Name)
	assert.Equal(t, "forbidden", o.System.Components[0].Message)
	assert.Equal(t, domain.ComponentDegraded, o.System.Status)
}

func TestDashboardService_Overview_BackendFailure(t *testing.T) {
	client := new(testutil.MockDashboardClient)
	client.On("GetDashboardStats", mock.Anything).Return(nil, domain.ErrBackendUnavailable)
	client.On("GetStorageOverview", mock.Anything).Return(&domain.StorageOverview{}, nil)
	client.On("GetSystemStatus", mock.Anything).Return(&domain.SystemStatus{}, nil)
	client.On("ListActiveEvaluations", mock.Anything).Return(nil, nil)
	svc := NewDashboardService(client, nil)

	_, err := svc.Overview(context.Background())
	assert.ErrorIs(t, err, domain.ErrBackendUnavailable)
}

func TestWorstStatus_UnhealthyBackendStays(t *testing.T) {
	got := worstStatus(domain.ComponentUnhealthy, []domain.ComponentStatus{{Status: domain.ComponentHealthy}})
	assert.Equal(t, domain.ComponentUnhealthy, got)
}
