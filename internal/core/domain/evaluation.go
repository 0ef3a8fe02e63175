package domain

import (
	"sort"
	"strings"
	"time"
)

type EvaluationStatus string

const (
	EvaluationStatusPending            EvaluationStatus = "PENDING"
	EvaluationStatusPreparingSetup     EvaluationStatus = "PREPARING_SETUP"
	EvaluationStatusPreparingEngine    EvaluationStatus = "PREPARING_ENGINE"
	EvaluationStatusRunningEngine      EvaluationStatus = "RUNNING_ENGINE"
	EvaluationStatusCalculatingMetrics EvaluationStatus = "CALCULATING_METRICS"
	EvaluationStatusCompleted          EvaluationStatus = "COMPLETED"
	EvaluationStatusFailed             EvaluationStatus = "FAILED"
)

// IsTerminal reports whether no further transitions are expected.
func (s EvaluationStatus) IsTerminal() bool {
	return s == EvaluationStatusCompleted || s == EvaluationStatusFailed
}

// Stage is the 1-based position in the pipeline, 0 for unknown values.
func (s EvaluationStatus) Stage() int {
	switch s {
	case EvaluationStatusPending:
		return 1
	case EvaluationStatusPreparingSetup:
		return 2
	case EvaluationStatusPreparingEngine:
		return 3
	case EvaluationStatusRunningEngine:
		return 4
	case EvaluationStatusCalculatingMetrics:
		return 5
	case EvaluationStatusCompleted, EvaluationStatusFailed:
		return 6
	}
	return 0
}

// OutputType selects one of the texts produced or used by an evaluation job.
type OutputType string

const (
	OutputTypeBase      OutputType = "base"
	OutputTypeFinetuned OutputType = "finetuned"
	OutputTypeReference OutputType = "reference"
)

func ParseOutputType(s string) (OutputType, error) {
	switch ot := OutputType(strings.ToLower(strings.TrimSpace(s))); ot {
	case OutputTypeBase, OutputTypeFinetuned, OutputTypeReference:
		return ot, nil
	}
	return "", ErrInvalidOutputType
}

type EvaluationJob struct {
	ID                int64            `json:"job_id"`
	VersionID         int64            `json:"version_id"`
	TestsetID         int64            `json:"testset_id"`
	Status            EvaluationStatus `json:"status"`
	Progress          int              `json:"progress_percentage"`
	ErrorMessage      string           `json:"error_message,omitempty"`
	ModeType          string           `json:"mode_type,omitempty"`
	SubModeType       string           `json:"sub_mode_type,omitempty"`
	EvaluateBaseModel bool             `json:"evaluate_base_model"`
	AutoAddToDetails  bool             `json:"auto_add_to_details"`
	BaseBLEU          *float64         `json:"base_model_bleu,omitempty"`
	BaseCOMET         *float64         `json:"base_model_comet,omitempty"`
	FinetunedBLEU     *float64         `json:"finetuned_model_bleu,omitempty"`
	FinetunedCOMET    *float64         `json:"finetuned_model_comet,omitempty"`
	RequestedAt       time.Time        `json:"requested_at"`
	CompletedAt       *time.Time       `json:"completed_at,omitempty"`
}

// EvaluationRunRequest is the form submitted to start an evaluation job.
type EvaluationRunRequest struct {
	VersionID         int64  `json:"version_id"`
	TestsetID         int64  `json:"testset_id"`
	ModeType          string `json:"mode_type,omitempty"`
	SubModeType       string `json:"sub_mode_type,omitempty"`
	EvaluateBaseModel bool   `json:"evaluate_base_model"`
	AutoAddToDetails  bool   `json:"auto_add_to_details"`
}

func (r EvaluationRunRequest) Validate() error {
	if r.VersionID <= 0 {
		return ErrVersionRequired
	}
	if r.TestsetID <= 0 {
		return ErrTestsetRequired
	}
	return nil
}

// ModeType is a backend-defined evaluation preset; values are passed through untouched.
type ModeType struct {
	Value       string   `json:"value"`
	Label       string   `json:"label"`
	SubModes    []string `json:"sub_modes,omitempty"`
	Description string   `json:"description,omitempty"`
}

type EvaluationFilter struct {
	VersionID int64
	Status    EvaluationStatus
	ListOptions
}

// DateRange bounds a delete-by-date request, both ends inclusive.
type DateRange struct {
	Start time.Time
	End   time.Time
}

func (r DateRange) Validate() error {
	if r.Start.IsZero() || r.End.IsZero() {
		return ErrDateRangeRequired
	}
	if r.Start.After(r.End) {
		return ErrInvalidDateRange
	}
	return nil
}

// JobSelection is the set of evaluation jobs picked for a bulk action.
type JobSelection struct {
	ids map[int64]struct{}
}

func NewJobSelection(ids ...int64) *JobSelection {
	s := &JobSelection{ids: make(map[int64]struct{}, len(ids))}
	for _, id := range ids {
		s.Select(id)
	}
	return s
}

func (s *JobSelection) Select(id int64) {
	if s.ids == nil {
		s.ids = make(map[int64]struct{})
	}
	s.ids[id] = struct{}{}
}

// Toggle flips the selection of id and reports whether it is now selected.
func (s *JobSelection) Toggle(id int64) bool {
	if _, ok := s.ids[id]; ok {
		delete(s.ids, id)
		return false
	}
	s.Select(id)
	return true
}

func (s *JobSelection) Contains(id int64) bool {
	_, ok := s.ids[id]
	return ok
}

func (s *JobSelection) Len() int { return len(s.ids) }

func (s *JobSelection) Clear() { s.ids = make(map[int64]struct{}) }

// IDs returns the selected ids in ascending order.
func (s *JobSelection) IDs() []int64 {
	out := make([]int64, 0, len(s.ids))
	for id := range s.ids {
		out = append(out, id)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}
