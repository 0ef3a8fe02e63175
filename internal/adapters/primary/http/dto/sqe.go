package dto

import (
	"fmt"
	"time"

	"release-management-service/internal/core/domain"
)

type SQEResultRequest struct {
	VersionID              int64   `json:"version_id"`
	AverageScore           float64 `json:"average_score"`
	TotalTestCases         int     `json:"total_test_cases"`
	TestCaseChangesPercent float64 `json:"test_case_changes_percent"`
	HasCriticalIssue       bool    `json:"has_one_point_case"`
	Notes                  string  `json:"notes"`
	TestedBy               string  `json:"tested_by"`
	TestDate               string  `json:"test_date"`
}

func (r SQEResultRequest) ToInput() (domain.SQEResultInput, error) {
	in := domain.SQEResultInput{
		VersionID:              r.VersionID,
		AverageScore:           r.AverageScore,
		TotalTestCases:         r.TotalTestCases,
		TestCaseChangesPercent: r.TestCaseChangesPercent,
		HasCriticalIssue:       r.HasCriticalIssue,
		Notes:                  r.Notes,
		TestedBy:               r.TestedBy,
	}
	if r.TestDate != "" {
		d, err := time.Parse(DateLayout, r.TestDate)
		if err != nil {
			return in, fmt.Errorf("test_date must be YYYY-MM-DD: %w", domain.ErrInvalidRequest)
		}
		in.TestDate = &d
	}
	return in, nil
}
