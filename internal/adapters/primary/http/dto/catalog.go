package dto

import (
	"fmt"
	"strings"
	"time"

	"release-management-service/internal/core/domain"
)

type LanguagePairRequest struct {
	SourceLanguageCode string `json:"source_language_code" binding:"max=10"`
	TargetLanguageCode string `json:"target_language_code" binding:"max=10"`
	Description        string `json:"description"`
}

func (r LanguagePairRequest) ToInput() domain.LanguagePairInput {
	return domain.LanguagePairInput{
		SourceLanguageCode: strings.TrimSpace(r.SourceLanguageCode),
		TargetLanguageCode: strings.TrimSpace(r.TargetLanguageCode),
		Description:        r.Description,
	}
}

// ModelVersionForm is the non-file part of a model version multipart form.
type ModelVersionForm struct {
	LangPairID  int64  `form:"lang_pair_id"`
	Version     string `form:"version"`
	ReleaseDate string `form:"release_date"`
	Description string `form:"description"`
}

func (f ModelVersionForm) ToInput(files []domain.FileUpload) (domain.ModelVersionInput, error) {
	in := domain.ModelVersionInput{
		LangPairID:  f.LangPairID,
		Version:     strings.TrimSpace(f.Version),
		Description: f.Description,
		Files:       files,
	}
	if f.ReleaseDate != "" {
		d, err := time.Parse(DateLayout, f.ReleaseDate)
		if err != nil {
			return in, fmt.Errorf("release_date must be YYYY-MM-DD: %w", domain.ErrInvalidRequest)
		}
		in.ReleaseDate = &d
	}
	return in, nil
}

type TestsetForm struct {
	LangPairID  int64  `form:"lang_pair_id"`
	TestsetName string `form:"testset_name"`
	Description string `form:"description"`
}

func (f TestsetForm) ToInput(files []domain.FileUpload) domain.TestsetInput {
	return domain.TestsetInput{
		LangPairID:  f.LangPairID,
		TestsetName: strings.TrimSpace(f.TestsetName),
		Description: f.Description,
		Files:       files,
	}
}

type TrainingResultRequest struct {
	VersionID            int64    `json:"version_id"`
	TestsetID            int64    `json:"testset_id"`
	BaseModelBLEU        *float64 `json:"base_model_bleu"`
	BaseModelCOMET       *float64 `json:"base_model_comet"`
	FinetunedModelBLEU   *float64 `json:"finetuned_model_bleu"`
	FinetunedModelCOMET  *float64 `json:"finetuned_model_comet"`
	TrainingDetailsNotes string   `json:"training_details_notes"`
}

func (r TrainingResultRequest) ToInput() domain.TrainingResultInput {
	return domain.TrainingResultInput(r)
}

// TrainingResultResponse adds the computed improvements to a training result.
type TrainingResultResponse struct {
	domain.TrainingResult
	BLEUImprovement  *float64 `json:"bleu_improvement,omitempty"`
	COMETImprovement *float64 `json:"comet_improvement,omitempty"`
}

func ToTrainingResultResponse(tr domain.TrainingResult) TrainingResultResponse {
	resp := TrainingResultResponse{TrainingResult: tr}
	if d, ok := tr.BLEUImprovement(); ok {
		resp.BLEUImprovement = &d
	}
	if d, ok := tr.COMETImprovement(); ok {
		resp.COMETImprovement = &d
	}
	return resp
}

func ToTrainingResultResponses(in []domain.TrainingResult) []TrainingResultResponse {
	out := make([]TrainingResultResponse, 0, len(in))
	for _, tr := range in {
		out = append(out, ToTrainingResultResponse(tr))
	}
	return out
}

type ReleaseNoteRequest struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

func (r ReleaseNoteRequest) ToInput() domain.ReleaseNoteInput {
	return domain.ReleaseNoteInput{Title: strings.TrimSpace(r.Title), Content: r.Content}
}
