package domain

import (
	"math"
	"time"
)

const (
	MinSQEScore = 1.0
	MaxSQEScore = 3.0
)

// SQEResult is a manual quality evaluation score for a model version.
type SQEResult struct {
	ID                     int64      `json:"sqe_result_id"`
	VersionID              int64      `json:"version_id"`
	AverageScore           float64    `json:"average_score"`
	TotalTestCases         int        `json:"total_test_cases"`
	TestCaseChangesPercent float64    `json:"test_case_changes_percent"`
	HasCriticalIssue       bool       `json:"has_one_point_case"`
	Notes                  string     `json:"notes,omitempty"`
	TestedBy               string     `json:"tested_by,omitempty"`
	TestDate               *time.Time `json:"test_date,omitempty"`
	CreatedAt              time.Time  `json:"created_at"`
	UpdatedAt              time.Time  `json:"updated_at"`

	// Joined by the backend for list views.
	Version      string `json:"version,omitempty"`
	LangPairName string `json:"lang_pair_name,omitempty"`
}

type SQEResultInput struct {
	VersionID              int64      `json:"version_id"`
	AverageScore           float64    `json:"average_score"`
	TotalTestCases         int        `json:"total_test_cases"`
	TestCaseChangesPercent float64    `json:"test_case_changes_percent"`
	HasCriticalIssue       bool       `json:"has_one_point_case"`
	Notes                  string     `json:"notes,omitempty"`
	TestedBy               string     `json:"tested_by,omitempty"`
	TestDate               *time.Time `json:"test_date,omitempty"`
}

func (in SQEResultInput) Validate() error {
	if in.VersionID <= 0 {
		return ErrVersionRequired
	}
	if math.IsNaN(in.AverageScore) || in.AverageScore < MinSQEScore || in.AverageScore > MaxSQEScore {
		return ErrScoreOutOfRange
	}
	if math.IsNaN(in.TestCaseChangesPercent) || in.TestCaseChangesPercent < 0 || in.TestCaseChangesPercent > 100 {
		return ErrChangePercentRange
	}
	if in.TotalTestCases < 0 {
		return ErrNegativeTestCases
	}
	return nil
}

type SQEFilter struct {
	LangPairID int64
	ListOptions
}

type ScoreBucket struct {
	Range string `json:"range"`
	Count int    `json:"count"`
}

type SQETrendPoint struct {
	VersionID    int64     `json:"version_id"`
	Version      string    `json:"version"`
	AverageScore float64   `json:"average_score"`
	CreatedAt    time.Time `json:"created_at"`
}

type SQEAnalytics struct {
	TotalResults      int             `json:"total_results"`
	AverageScore      float64         `json:"average_score"`
	CriticalIssues    int             `json:"critical_issues_count"`
	ScoreDistribution []ScoreBucket   `json:"score_distribution"`
	Trend             []SQETrendPoint `json:"trend_data"`
}
