package domain

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func ptr(f float64) *float64 { return &f }

func TestLanguagePairInput_Validate(t *testing.T) {
	tests := []struct {
		name string
		in   LanguagePairInput
		want error
	}{
		{"valid", LanguagePairInput{SourceLanguageCode: "en", TargetLanguageCode: "vi"}, nil},
		{"missing source", LanguagePairInput{TargetLanguageCode: "vi"}, ErrLanguageCodeRequired},
		{"blank target", LanguagePairInput{SourceLanguageCode: "en", TargetLanguageCode: "  "}, ErrLanguageCodeRequired},
		{"same codes", LanguagePairInput{SourceLanguageCode: "EN", TargetLanguageCode: "en"}, ErrSameLanguageCodes},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.in.Validate()
			if tt.want == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestModelVersionInput_Validate(t *testing.T) {
	assert.ErrorIs(t, ModelVersionInput{Version: "v1"}.Validate(), ErrLangPairRequired)
	assert.ErrorIs(t, ModelVersionInput{LangPairID: 1, Version: " "}.Validate(), ErrVersionNameRequired)
	assert.NoError(t, ModelVersionInput{LangPairID: 1, Version: "v1"}.Validate())
}

func TestParseFileType(t *testing.T) {
	ft, err := ParseFileType("HPARAMS")
	assert.NoError(t, err)
	assert.Equal(t, FileTypeHparams, ft)
	assert.Equal(t, "hparams_file", ft.FormField())

	_, err = ParseFileType("weights")
	assert.ErrorIs(t, err, ErrInvalidFileType)
}

func TestModelVersion_HasFile(t *testing.T) {
	name := "model.bin"
	empty := ""
	mv := &ModelVersion{ModelFileName: &name, HparamsFileName: &empty}

	assert.True(t, mv.HasFile(FileTypeModel))
	assert.False(t, mv.HasFile(FileTypeHparams))
	assert.False(t, mv.HasFile(FileTypeBaseModel))
}

func TestTrainingResultInput_Validate(t *testing.T) {
	base := TrainingResultInput{VersionID: 1, TestsetID: 1}
	assert.NoError(t, base.Validate())

	in := base
	in.FinetunedModelBLEU = ptr(101)
	assert.ErrorIs(t, in.Validate(), ErrBLEUOutOfRange)

	in = base
	in.BaseModelCOMET = ptr(-1.5)
	assert.ErrorIs(t, in.Validate(), ErrCOMETOutOfRange)

	in = base
	in.TestsetID = 0
	assert.ErrorIs(t, in.Validate(), ErrTestsetRequired)

	in = base
	in.BaseModelBLEU = ptr(math.NaN())
	assert.ErrorIs(t, in.Validate(), ErrBLEUOutOfRange)

	in = base
	in.FinetunedModelCOMET = ptr(math.NaN())
	assert.ErrorIs(t, in.Validate(), ErrCOMETOutOfRange)
}

func TestTrainingResult_Improvement(t *testing.T) {
	tr := &TrainingResult{BaseModelBLEU: ptr(30.5), FinetunedModelBLEU: ptr(35)}
	delta, ok := tr.BLEUImprovement()
	assert.True(t, ok)
	assert.InDelta(t, 4.5, delta, 1e-9)

	_, ok = tr.COMETImprovement()
	assert.False(t, ok)
}

func TestSQEResultInput_Validate(t *testing.T) {
	tests := []struct {
		name string
		in   SQEResultInput
		want error
	}{
		{"lower bound", SQEResultInput{VersionID: 1, AverageScore: 1.0}, nil},
		{"upper bound", SQEResultInput{VersionID: 1, AverageScore: 3.0, TestCaseChangesPercent: 100}, nil},
		{"score too low", SQEResultInput{VersionID: 1, AverageScore: 0.9}, ErrScoreOutOfRange},
		{"score too high", SQEResultInput{VersionID: 1, AverageScore: 3.01}, ErrScoreOutOfRange},
		{"negative change", SQEResultInput{VersionID: 1, AverageScore: 2, TestCaseChangesPercent: -1}, ErrChangePercentRange},
		{"negative cases", SQEResultInput{VersionID: 1, AverageScore: 2, TotalTestCases: -1}, ErrNegativeTestCases},
		{"no version", SQEResultInput{AverageScore: 2}, ErrVersionRequired},
		{"score NaN", SQEResultInput{VersionID: 1, AverageScore: math.NaN()}, ErrScoreOutOfRange},
		{"change NaN", SQEResultInput{VersionID: 1, AverageScore: 2, TestCaseChangesPercent: math.NaN()}, ErrChangePercentRange},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.in.Validate()
			if tt.want == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestReleaseNoteInput_Validate(t *testing.T) {
	assert.ErrorIs(t, ReleaseNoteInput{Content: "x"}.Validate(), ErrTitleRequired)
	assert.ErrorIs(t, ReleaseNoteInput{Title: "x"}.Validate(), ErrContentRequired)
	assert.NoError(t, ReleaseNoteInput{Title: "v1.2", Content: "- better terminology"}.Validate())
}

func TestListOptions_Normalize(t *testing.T) {
	assert.Equal(t, ListOptions{Skip: 0, Limit: DefaultPageSize}, ListOptions{Skip: -3}.Normalize())
	assert.Equal(t, ListOptions{Skip: 40, Limit: MaxPageSize}, ListOptions{Skip: 40, Limit: 1000}.Normalize())
	assert.Equal(t, ListOptions{Skip: 10, Limit: 50}, ListOptions{Skip: 10, Limit: 50}.Normalize())
}

func TestStorageOverview_UsedPercent(t *testing.T) {
	assert.Equal(t, 0.0, StorageOverview{UsedBytes: 10}.UsedPercent())
	assert.InDelta(t, 25.0, StorageOverview{TotalBytes: 400, UsedBytes: 100}.UsedPercent(), 1e-9)
}
