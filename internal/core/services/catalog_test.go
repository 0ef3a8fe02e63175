package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"release-management-service/internal/core/domain"
	"release-management-service/internal/testutil"
)

func TestLanguagePairService_Create(t *testing.T) {
	client := new(testutil.MockLanguagePairClient)
	svc := NewLanguagePairService(client)
	in := domain.LanguagePairInput{SourceLanguageCode: "en", TargetLanguageCode: "vi"}
	client.On("CreateLanguagePair", mock.Anything, in).Return(&domain.LanguagePair{ID: 1, SourceLanguageCode: "en", TargetLanguageCode: "vi"}, nil)

	lp, err := svc.Create(context.Background(), in)
	require.NoError(t, err)
	assert.Equal(t, "en → vi", lp.Label())
}

func TestLanguagePairService_Create_SameLanguages(t *testing.T) {
	client := new(testutil.MockLanguagePairClient)
	svc := NewLanguagePairService(client)

	_, err := svc.Create(context.Background(), domain.LanguagePairInput{SourceLanguageCode: "en", TargetLanguageCode: "EN"})
	assert.ErrorIs(t, err, domain.ErrSameLanguageCodes)
	client.AssertNotCalled(t, "CreateLanguagePair", mock.Anything, mock.Anything)
}

func TestTestsetService_Create_RequiresName(t *testing.T) {
	client := new(testutil.MockTestsetClient)
	svc := NewTestsetService(client)

	_, err := svc.Create(context.Background(), domain.TestsetInput{LangPairID: 1})
	assert.ErrorIs(t, err, domain.ErrTestsetNameRequired)
	client.AssertNotCalled(t, "CreateTestset", mock.Anything, mock.Anything)
}

func TestTrainingResultService_Create_ScoreRange(t *testing.T) {
	client := new(testutil.MockTrainingResultClient)
	svc := NewTrainingResultService(client)
	bleu := 120.0

	_, err := svc.Create(context.Background(), domain.TrainingResultInput{VersionID: 1, TestsetID: 2, FinetunedModelBLEU: &bleu})
	assert.ErrorIs(t, err, domain.ErrBLEUOutOfRange)
	client.AssertNotCalled(t, "CreateTrainingResult", mock.Anything, mock.Anything)
}

func TestReleaseNoteService_Get_NoneYet(t *testing.T) {
	client := new(testutil.MockReleaseNoteClient)
	svc := NewReleaseNoteService(client)
	client.On("GetReleaseNote", mock.Anything, int64(3)).Return(nil, domain.ErrNotFound)

	note, err := svc.Get(context.Background(), 3)
	assert.NoError(t, err)
	assert.Nil(t, note)
}

func TestReleaseNoteService_Save(t *testing.T) {
	client := new(testutil.MockReleaseNoteClient)
	svc := NewReleaseNoteService(client)

	_, err := svc.Save(context.Background(), 3, domain.ReleaseNoteInput{Title: "v3"})
	assert.ErrorIs(t, err, domain.ErrContentRequired)

	in := domain.ReleaseNoteInput{Title: "v3", Content: "Faster decoding"}
	client.On("SaveReleaseNote", mock.Anything, int64(3), in).Return(&domain.ReleaseNote{ID: 8, VersionID: 3}, nil)
	note, err := svc.Save(context.Background(), 3, in)
	require.NoError(t, err)
	assert.Equal(t, int64(8), note.ID)
}

func TestSQEService_Create_ScoreOutOfRange(t *testing.T) {
	client := new(testutil.MockSQEClient)
	svc := NewSQEService(client)

	for _, score := range []float64{0.9, 3.01} {
		_, err := svc.Create(context.Background(), domain.SQEResultInput{VersionID: 1, AverageScore: score})
		assert.ErrorIs(t, err, domain.ErrScoreOutOfRange)
	}
	client.AssertNotCalled(t, "CreateSQEResult", mock.Anything, mock.Anything)
}

func TestSQEService_List(t *testing.T) {
	client := new(testutil.MockSQEClient)
	svc := NewSQEService(client)
	client.On("ListSQEResults", mock.Anything, domain.SQEFilter{
		LangPairID:  2,
		ListOptions: domain.ListOptions{Limit: domain.MaxPageSize},
	}).Return(&domain.Page[domain.SQEResult]{Total: 1, Items: []domain.SQEResult{{ID: 1}}}, nil)

	page, err := svc.List(context.Background(), domain.SQEFilter{LangPairID: 2, ListOptions: domain.ListOptions{Limit: 5000}})
	require.NoError(t, err)
	assert.Equal(t, 1, page.Total)
}
