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

type versionMocks struct {
	versions *testutil.MockModelVersionClient
	results  *testutil.MockTrainingResultClient
	notes    *testutil.MockReleaseNoteClient
	sqe      *testutil.MockSQEClient
	evals    *testutil.MockEvaluationClient
}

func newModelVersionService() (*ModelVersionService, versionMocks) {
	m := versionMocks{
		versions: new(testutil.MockModelVersionClient),
		results:  new(testutil.MockTrainingResultClient),
		notes:    new(testutil.MockReleaseNoteClient),
		sqe:      new(testutil.MockSQEClient),
		evals:    new(testutil.MockEvaluationClient),
	}
	return NewModelVersionService(m.versions, m.results, m.notes, m.sqe, m.evals), m
}

func TestModelVersionService_Create(t *testing.T) {
	svc, m := newModelVersionService()
	in := domain.ModelVersionInput{LangPairID: 1, Version: "v1.0"}
	m.versions.On("CreateModelVersion", mock.Anything, in).Return(&domain.ModelVersion{ID: 5, Version: "v1.0"}, nil)

	mv, err := svc.Create(context.Background(), in)
	require.NoError(t, err)
	assert.Equal(t, int64(5), mv.ID)
}

func TestModelVersionService_Create_Invalid(t *testing.T) {
	svc, m := newModelVersionService()

	_, err := svc.Create(context.Background(), domain.ModelVersionInput{Version: "v1"})
	assert.ErrorIs(t, err, domain.ErrLangPairRequired)

	_, err = svc.Update(context.Background(), 3, domain.ModelVersionInput{LangPairID: 1, Version: "  "})
	assert.ErrorIs(t, err, domain.ErrVersionNameRequired)

	m.versions.AssertNotCalled(t, "CreateModelVersion", mock.Anything, mock.Anything)
	m.versions.AssertNotCalled(t, "UpdateModelVersion", mock.Anything, mock.Anything, mock.Anything)
}

func TestModelVersionService_DownloadFile(t *testing.T) {
	svc, m := newModelVersionService()
	dl := &domain.Download{FileName: "hp.yaml"}
	m.versions.On("DownloadModelFile", mock.Anything, int64(2), domain.FileTypeHparams).Return(dl, nil)

	got, err := svc.DownloadFile(context.Background(), 2, "hparams")
	require.NoError(t, err)
	assert.Equal(t, "hp.yaml", got.FileName)

	_, err = svc.DownloadFile(context.Background(), 2, "weights")
	assert.ErrorIs(t, err, domain.ErrInvalidFileType)
}

func TestModelVersionService_Detail(t *testing.T) {
	svc, m := newModelVersionService()
	ctx := context.Background()

	m.versions.On("GetModelVersion", mock.Anything, int64(7)).Return(&domain.ModelVersion{ID: 7, Version: "v7"}, nil)
	m.results.On("ListTrainingResults", mock.Anything, int64(7)).Return([]domain.TrainingResult{{ID: 1}}, nil)
	m.notes.On("GetReleaseNote", mock.Anything, int64(7)).Return(nil, domain.ErrNotFound)
	m.sqe.On("ListSQEResultsByVersion", mock.Anything, int64(7)).Return([]domain.SQEResult{{ID: 2}}, nil)
	m.evals.On("ListEvaluations", mock.Anything, mock.MatchedBy(func(f domain.EvaluationFilter) bool {
		return f.VersionID == 7
	})).Return(&domain.Page[domain.EvaluationJob]{Items: []domain.EvaluationJob{{ID: 3}}, Total: 1}, nil)

	d, err := svc.Detail(ctx, 7)
	require.NoError(t, err)
	assert.Equal(t, "v7", d.Version.Version)
	assert.Len(t, d.TrainingResults, 1)
	assert.Nil(t, d.ReleaseNote)
	assert.Len(t, d.SQEResults, 1)
	assert.Len(t, d.Evaluations, 1)
}

func TestModelVersionService_Detail_VersionNotFound(t *testing.T) {
	svc, m := newModelVersionService()

	m.versions.On("GetModelVersion", mock.Anything, int64(9)).Return(nil, domain.ErrNotFound)
	m.results.On("ListTrainingResults", mock.Anything, int64(9)).Return([]domain.TrainingResult{}, nil)
	m.notes.On("GetReleaseNote", mock.Anything, int64(9)).Return(nil, domain.ErrNotFound)
	m.sqe.On("ListSQEResultsByVersion", mock.Anything, int64(9)).Return([]domain.SQEResult{}, nil)
	m.evals.On("ListEvaluations", mock.Anything, mock.Anything).Return(&domain.Page[domain.EvaluationJob]{}, nil)

	_, err := svc.Detail(context.Background(), 9)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestModelVersionService_Detail_ReleaseNoteError(t *testing.T) {
	svc, m := newModelVersionService()
	boom := errors.New("boom")

	m.versions.On("GetModelVersion", mock.Anything, int64(4)).Return(&domain.ModelVersion{ID: 4}, nil)
	m.results.On("ListTrainingResults", mock.Anything, int64(4)).Return([]domain.TrainingResult{}, nil)
	m.notes.On("GetReleaseNote", mock.Anything, int64(4)).Return(nil, boom)
	m.sqe.On("ListSQEResultsByVersion", mock.Anything, int64(4)).Return([]domain.SQEResult{}, nil)
	m.evals.On("ListEvaluations", mock.Anything, mock.Anything).Return(&domain.Page[domain.EvaluationJob]{}, nil)

	_, err := svc.Detail(context.Background(), 4)
	assert.ErrorIs(t, err, boom)
}
