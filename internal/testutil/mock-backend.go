package testutil

import (
	"context"

	"github.com/stretchr/testify/mock"

	"release-management-service/internal/core/domain"
)

// MockAuthClient is a mock of AuthClient.
type MockAuthClient struct {
	mock.Mock
}

func (m *MockAuthClient) Login(ctx context.Context, username, password string) (string, error) {
	args := m.Called(ctx, username, password)
	return args.String(0), args.Error(1)
}

func (m *MockAuthClient) CurrentUser(ctx context.Context) (*domain.User, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

// MockLanguagePairClient is a mock of LanguagePairClient.
type MockLanguagePairClient struct {
	mock.Mock
}

func (m *MockLanguagePairClient) ListLanguagePairs(ctx context.Context) ([]domain.LanguagePair, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.LanguagePair), args.Error(1)
}

func (m *MockLanguagePairClient) GetLanguagePair(ctx context.Context, id int64) (*domain.LanguagePair, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.LanguagePair), args.Error(1)
}

func (m *MockLanguagePairClient) CreateLanguagePair(ctx context.Context, in domain.LanguagePairInput) (*domain.LanguagePair, error) {
	args := m.Called(ctx, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.LanguagePair), args.Error(1)
}

func (m *MockLanguagePairClient) UpdateLanguagePair(ctx context.Context, id int64, in domain.LanguagePairInput) (*domain.LanguagePair, error) {
	args := m.Called(ctx, id, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.LanguagePair), args.Error(1)
}

func (m *MockLanguagePairClient) DeleteLanguagePair(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockModelVersionClient is a mock of ModelVersionClient.
type MockModelVersionClient struct {
	mock.Mock
}

func (m *MockModelVersionClient) ListModelVersions(ctx context.Context, langPairID int64) ([]domain.ModelVersion, error) {
	args := m.Called(ctx, langPairID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ModelVersion), args.Error(1)
}

func (m *MockModelVersionClient) GetModelVersion(ctx context.Context, id int64) (*domain.ModelVersion, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ModelVersion), args.Error(1)
}

func (m *MockModelVersionClient) CreateModelVersion(ctx context.Context, in domain.ModelVersionInput) (*domain.ModelVersion, error) {
	args := m.Called(ctx, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ModelVersion), args.Error(1)
}

func (m *MockModelVersionClient) UpdateModelVersion(ctx context.Context, id int64, in domain.ModelVersionInput) (*domain.ModelVersion, error) {
	args := m.Called(ctx, id, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ModelVersion), args.Error(1)
}

func (m *MockModelVersionClient) DeleteModelVersion(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockModelVersionClient) DownloadModelFile(ctx context.Context, id int64, fileType domain.FileType) (*domain.Download, error) {
	args := m.Called(ctx, id, fileType)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Download), args.Error(1)
}

// MockTestsetClient is a mock of TestsetClient.
type MockTestsetClient struct {
	mock.Mock
}

func (m *MockTestsetClient) ListTestsets(ctx context.Context, langPairID int64) ([]domain.Testset, error) {
	args := m.Called(ctx, langPairID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Testset), args.Error(1)
}

func (m *MockTestsetClient) GetTestset(ctx context.Context, id int64) (*domain.Testset, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Testset), args.Error(1)
}

func (m *MockTestsetClient) CreateTestset(ctx context.Context, in domain.TestsetInput) (*domain.Testset, error) {
	args := m.Called(ctx, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Testset), args.Error(1)
}

func (m *MockTestsetClient) DeleteTestset(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockTrainingResultClient is a mock of TrainingResultClient.
type MockTrainingResultClient struct {
	mock.Mock
}

func (m *MockTrainingResultClient) ListTrainingResults(ctx context.Context, versionID int64) ([]domain.TrainingResult, error) {
	args := m.Called(ctx, versionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.TrainingResult), args.Error(1)
}

func (m *MockTrainingResultClient) CreateTrainingResult(ctx context.Context, in domain.TrainingResultInput) (*domain.TrainingResult, error) {
	args := m.Called(ctx, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.TrainingResult), args.Error(1)
}

func (m *MockTrainingResultClient) DeleteTrainingResult(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockReleaseNoteClient is a mock of ReleaseNoteClient.
type MockReleaseNoteClient struct {
	mock.Mock
}

func (m *MockReleaseNoteClient) GetReleaseNote(ctx context.Context, versionID int64) (*domain.ReleaseNote, error) {
	args := m.Called(ctx, versionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ReleaseNote), args.Error(1)
}

func (m *MockReleaseNoteClient) SaveReleaseNote(ctx context.Context, versionID int64, in domain.ReleaseNoteInput) (*domain.ReleaseNote, error) {
	args := m.Called(ctx, versionID, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ReleaseNote), args.Error(1)
}

func (m *MockReleaseNoteClient) DeleteReleaseNote(ctx context.Context, versionID int64) error {
	args := m.Called(ctx, versionID)
	return args.Error(0)
}

// MockEvaluationClient is a mock of EvaluationClient.
type MockEvaluationClient struct {
	mock.Mock
}

func (m *MockEvaluationClient) RunEvaluation(ctx context.Context, req domain.EvaluationRunRequest) (*domain.EvaluationJob, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.EvaluationJob), args.Error(1)
}

func (m *MockEvaluationClient) GetEvaluationStatus(ctx context.Context, jobID int64) (*domain.EvaluationJob, error) {
	args := m.Called(ctx, jobID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.EvaluationJob), args.Error(1)
}

func (m *MockEvaluationClient) ListEvaluations(ctx context.Context, filter domain.EvaluationFilter) (*domain.Page[domain.EvaluationJob], error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Page[domain.EvaluationJob]), args.Error(1)
}

func (m *MockEvaluationClient) DeleteEvaluation(ctx context.Context, jobID int64) error {
	args := m.Called(ctx, jobID)
	return args.Error(0)
}

func (m *MockEvaluationClient) BulkDeleteEvaluations(ctx context.Context, jobIDs []int64) (int, error) {
	args := m.Called(ctx, jobIDs)
	return args.Int(0), args.Error(1)
}

func (m *MockEvaluationClient) DeleteEvaluationsByDate(ctx context.Context, r domain.DateRange) (int, error) {
	args := m.Called(ctx, r)
	return args.Int(0), args.Error(1)
}

func (m *MockEvaluationClient) DownloadEvaluationOutput(ctx context.Context, jobID int64, output domain.OutputType) (*domain.Download, error) {
	args := m.Called(ctx, jobID, output)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Download), args.Error(1)
}

func (m *MockEvaluationClient) GetEvaluationContent(ctx context.Context, jobID int64, output domain.OutputType) (string, error) {
	args := m.Called(ctx, jobID, output)
	return args.String(0), args.Error(1)
}

func (m *MockEvaluationClient) ListModeTypes(ctx context.Context) ([]domain.ModeType, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ModeType), args.Error(1)
}

// MockSQEClient is a mock of SQEClient.
type MockSQEClient struct {
	mock.Mock
}

func (m *MockSQEClient) ListSQEResults(ctx context.Context, filter domain.SQEFilter) (*domain.Page[domain.SQEResult], error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Page[domain.SQEResult]), args.Error(1)
}

func (m *MockSQEClient) GetSQEResult(ctx context.Context, id int64) (*domain.SQEResult, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.SQEResult), args.Error(1)
}

func (m *MockSQEClient) ListSQEResultsByVersion(ctx context.Context, versionID int64) ([]domain.SQEResult, error) {
	args := m.Called(ctx, versionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.SQEResult), args.Error(1)
}

func (m *MockSQEClient) CreateSQEResult(ctx context.Context, in domain.SQEResultInput) (*domain.SQEResult, error) {
	args := m.Called(ctx, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.SQEResult), args.Error(1)
}

func (m *MockSQEClient) UpdateSQEResult(ctx context.Context, id int64, in domain.SQEResultInput) (*domain.SQEResult, error) {
	args := m.Called(ctx, id, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.SQEResult), args.Error(1)
}

func (m *MockSQEClient) DeleteSQEResult(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockSQEClient) GetSQEAnalytics(ctx context.Context, langPairID int64) (*domain.SQEAnalytics, error) {
	args := m.Called(ctx, langPairID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.SQEAnalytics), args.Error(1)
}

// MockDashboardClient is a mock of DashboardClient.
type MockDashboardClient struct {
	mock.Mock
}

func (m *MockDashboardClient) GetDashboardStats(ctx context.Context) (*domain.DashboardStats, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.DashboardStats), args.Error(1)
}

func (m *MockDashboardClient) GetStorageOverview(ctx context.Context) (*domain.StorageOverview, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.StorageOverview), args.Error(1)
}

func (m *MockDashboardClient) GetSystemStatus(ctx context.Context) (*domain.SystemStatus, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.SystemStatus), args.Error(1)
}

func (m *MockDashboardClient) ListActiveEvaluations(ctx context.Context) ([]domain.EvaluationJob, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.EvaluationJob), args.Error(1)
}
