package ports

import (
	"context"

	"release-management-service/internal/core/domain"
)

// ============================================================================
// NMT Backend API
// ============================================================================

// AuthClient exchanges credentials for a backend access token.
type AuthClient interface {
	Login(ctx context.Context, username, password string) (token string, err error)
	CurrentUser(ctx context.Context) (*domain.User, error)
}

type LanguagePairClient interface {
	ListLanguagePairs(ctx context.Context) ([]domain.LanguagePair, error)
	GetLanguagePair(ctx context.Context, id int64) (*domain.LanguagePair, error)
	CreateLanguagePair(ctx context.Context, in domain.LanguagePairInput) (*domain.LanguagePair, error)
	UpdateLanguagePair(ctx context.Context, id int64, in domain.LanguagePairInput) (*domain.LanguagePair, error)
	DeleteLanguagePair(ctx context.Context, id int64) error
}

type ModelVersionClient interface {
	ListModelVersions(ctx context.Context, langPairID int64) ([]domain.ModelVersion, error)
	GetModelVersion(ctx context.Context, id int64) (*domain.ModelVersion, error)
	CreateModelVersion(ctx context.Context, in domain.ModelVersionInput) (*domain.ModelVersion, error)
	UpdateModelVersion(ctx context.Context, id int64, in domain.ModelVersionInput) (*domain.ModelVersion, error)
	DeleteModelVersion(ctx context.Context, id int64) error
	DownloadModelFile(ctx context.Context, id int64, fileType domain.FileType) (*domain.Download, error)
}

type TestsetClient interface {
	ListTestsets(ctx context.Context, langPairID int64) ([]domain.Testset, error)
	GetTestset(ctx context.Context, id int64) (*domain.Testset, error)
	CreateTestset(ctx context.Context, in domain.TestsetInput) (*domain.Testset, error)
	DeleteTestset(ctx context.Context, id int64) error
}

type TrainingResultClient interface {
	ListTrainingResults(ctx context.Context, versionID int64) ([]domain.TrainingResult, error)
	CreateTrainingResult(ctx context.Context, in domain.TrainingResultInput) (*domain.TrainingResult, error)
	DeleteTrainingResult(ctx context.Context, id int64) error
}

type ReleaseNoteClient interface {
	GetReleaseNote(ctx context.Context, versionID int64) (*domain.ReleaseNote, error)
	SaveReleaseNote(ctx context.Context, versionID int64, in domain.ReleaseNoteInput) (*domain.ReleaseNote, error)
	DeleteReleaseNote(ctx context.Context, versionID int64) error
}

type EvaluationClient interface {
	RunEvaluation(ctx context.Context, req domain.EvaluationRunRequest) (*domain.EvaluationJob, error)
	GetEvaluationStatus(ctx context.Context, jobID int64) (*domain.EvaluationJob, error)
	ListEvaluations(ctx context.Context, filter domain.EvaluationFilter) (*domain.Page[domain.EvaluationJob], error)
	DeleteEvaluation(ctx context.Context, jobID int64) error
	BulkDeleteEvaluations(ctx context.Context, jobIDs []int64) (deleted int, err error)
	DeleteEvaluationsByDate(ctx context.Context, r domain.DateRange) (deleted int, err error)
	DownloadEvaluationOutput(ctx context.Context, jobID int64, output domain.OutputType) (*domain.Download, error)
	GetEvaluationContent(ctx context.Context, jobID int64, output domain.OutputType) (string, error)
	ListModeTypes(ctx context.Context) ([]domain.ModeType, error)
}

type SQEClient interface {
	ListSQEResults(ctx context.Context, filter domain.SQEFilter) (*domain.Page[domain.SQEResult], error)
	GetSQEResult(ctx context.Context, id int64) (*domain.SQEResult, error)
	ListSQEResultsByVersion(ctx context.Context, versionID int64) ([]domain.SQEResult, error)
	CreateSQEResult(ctx context.Context, in domain.SQEResultInput) (*domain.SQEResult, error)
	UpdateSQEResult(ctx context.Context, id int64, in domain.SQEResultInput) (*domain.SQEResult, error)
	DeleteSQEResult(ctx context.Context, id int64) error
	GetSQEAnalytics(ctx context.Context, langPairID int64) (*domain.SQEAnalytics, error)
}

type DashboardClient interface {
	GetDashboardStats(ctx context.Context) (*domain.DashboardStats, error)
	GetStorageOverview(ctx context.Context) (*domain.StorageOverview, error)
	GetSystemStatus(ctx context.Context) (*domain.SystemStatus, error)
	ListActiveEvaluations(ctx context.Context) ([]domain.EvaluationJob, error)
}

// BackendClient is the full surface of the NMT backend.
type BackendClient interface {
	AuthClient
	LanguagePairClient
	ModelVersionClient
	TestsetClient
	TrainingResultClient
	ReleaseNoteClient
	EvaluationClient
	SQEClient
	DashboardClient
}
