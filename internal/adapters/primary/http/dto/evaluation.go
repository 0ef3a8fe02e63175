package dto

import (
	"release-management-service/internal/core/domain"
	"release-management-service/internal/diff"
)

const DateLayout = "2006-01-02"

type RunEvaluationRequest struct {
	VersionID         int64  `json:"version_id"`
	TestsetID         int64  `json:"testset_id"`
	ModeType          string `json:"mode_type"`
	SubModeType       string `json:"sub_mode_type"`
	EvaluateBaseModel bool   `json:"evaluate_base_model"`
	AutoAddToDetails  bool   `json:"auto_add_to_details"`
}

func (r RunEvaluationRequest) ToDomain() domain.EvaluationRunRequest {
	return domain.EvaluationRunRequest(r)
}

type BulkDeleteRequest struct {
	JobIDs []int64 `json:"job_ids"`
}

// ComparisonView is a diff with its similarity precomputed for display.
type ComparisonView struct {
	diff.Comparison
	SimilarityPercent float64 `json:"similarity_percent"`
}

type ComparisonResponse struct {
	JobID                int64           `json:"job_id"`
	FinetunedVsReference ComparisonView  `json:"finetuned_vs_reference"`
	BaseVsReference      *ComparisonView `json:"base_vs_reference,omitempty"`
}

func ToComparisonView(c diff.Comparison) ComparisonView {
	return ComparisonView{Comparison: c, SimilarityPercent: c.SimilarityPercent()}
}

// EvaluationStatusEvent is one server-sent status update.
type EvaluationStatusEvent struct {
	JobID    int64                   `json:"job_id"`
	Status   domain.EvaluationStatus `json:"status"`
	Progress int                     `json:"progress_percentage"`
	Stage    int                     `json:"stage"`
	Terminal bool                    `json:"terminal"`
	Error    string                  `json:"error_message,omitempty"`
}

func ToStatusEvent(job *domain.EvaluationJob) EvaluationStatusEvent {
	return EvaluationStatusEvent{
		JobID:    job.ID,
		Status:   job.Status,
		Progress: job.Progress,
		Stage:    job.Status.Stage(),
		Terminal: job.Status.IsTerminal(),
		Error:    job.ErrorMessage,
	}
}
