package domain

import (
	"math"
	"time"
)

type TrainingResult struct {
	ID                   int64     `json:"result_id"`
	VersionID            int64     `json:"version_id"`
	TestsetID            int64     `json:"testset_id"`
	BaseModelBLEU        *float64  `json:"base_model_bleu,omitempty"`
	BaseModelCOMET       *float64  `json:"base_model_comet,omitempty"`
	FinetunedModelBLEU   *float64  `json:"finetuned_model_bleu,omitempty"`
	FinetunedModelCOMET  *float64  `json:"finetuned_model_comet,omitempty"`
	TrainingDetailsNotes string    `json:"training_details_notes,omitempty"`
	CreatedAt            time.Time `json:"created_at"`
}

// BLEUImprovement is finetuned minus base BLEU; ok is false unless both are known.
func (tr *TrainingResult) BLEUImprovement() (delta float64, ok bool) {
	return improvement(tr.BaseModelBLEU, tr.FinetunedModelBLEU)
}

// COMETImprovement is finetuned minus base COMET; ok is false unless both are known.
func (tr *TrainingResult) COMETImprovement() (delta float64, ok bool) {
	return improvement(tr.BaseModelCOMET, tr.FinetunedModelCOMET)
}

func improvement(base, finetuned *float64) (float64, bool) {
	if base == nil || finetuned == nil {
		return 0, false
	}
	return *finetuned - *base, true
}

type TrainingResultInput struct {
	VersionID            int64    `json:"version_id"`
	TestsetID            int64    `json:"testset_id"`
	BaseModelBLEU        *float64 `json:"base_model_bleu,omitempty"`
	BaseModelCOMET       *float64 `json:"base_model_comet,omitempty"`
	FinetunedModelBLEU   *float64 `json:"finetuned_model_bleu,omitempty"`
	FinetunedModelCOMET  *float64 `json:"finetuned_model_comet,omitempty"`
	TrainingDetailsNotes string   `json:"training_details_notes,omitempty"`
}

func (in TrainingResultInput) Validate() error {
	if in.VersionID <= 0 {
		return ErrVersionRequired
	}
	if in.TestsetID <= 0 {
		return ErrTestsetRequired
	}
	for _, v := range []*float64{in.BaseModelBLEU, in.FinetunedModelBLEU} {
		if v != nil && (math.IsNaN(*v) || *v < 0 || *v > 100) {
			return ErrBLEUOutOfRange
		}
	}
	for _, v := range []*float64{in.BaseModelCOMET, in.FinetunedModelCOMET} {
		if v != nil && (math.IsNaN(*v) || *v < -1 || *v > 1) {
			return ErrCOMETOutOfRange
		}
	}
	return nil
}
