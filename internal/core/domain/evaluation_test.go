package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestEvaluationStatus_IsTerminal(t *testing.T) {
	tests := []struct {
		status   EvaluationStatus
		terminal bool
	}{
		{EvaluationStatusPending, false},
		{EvaluationStatusPreparingSetup, false},
		{EvaluationStatusPreparingEngine, false},
		{EvaluationStatusRunningEngine, false},
		{EvaluationStatusCalculatingMetrics, false},
		{EvaluationStatusCompleted, true},
		{EvaluationStatusFailed, true},
		{EvaluationStatus("SOMETHING_NEW"), false},
	}

	for _, tt := range tests {
		t.Run(string(tt.status), func(t *testing.T) {
			assert.Equal(t, tt.terminal, tt.status.IsTerminal())
		})
	}
}

func TestEvaluationStatus_StageOrder(t *testing.T) {
	order := []EvaluationStatus{
		EvaluationStatusPending,
		EvaluationStatusPreparingSetup,
		EvaluationStatusPreparingEngine,
		EvaluationStatusRunningEngine,
		EvaluationStatusCalculatingMetrics,
		EvaluationStatusCompleted,
	}
	for i := 1; i < len(order); i++ {
		assert.Less(t, order[i-1].Stage(), order[i].Stage())
	}
	assert.Equal(t, 0, EvaluationStatus("bogus").Stage())
}

func TestEvaluationRunRequest_Validate(t *testing.T) {
	assert.ErrorIs(t, EvaluationRunRequest{TestsetID: 1}.Validate(), ErrVersionRequired)
	assert.ErrorIs(t, EvaluationRunRequest{VersionID: 1}.Validate(), ErrTestsetRequired)
	assert.NoError(t, EvaluationRunRequest{VersionID: 1, TestsetID: 2, ModeType: "Samsung Note Mode"}.Validate())
}

func TestParseOutputType(t *testing.T) {
	ot, err := ParseOutputType(" Finetuned ")
	assert.NoError(t, err)
	assert.Equal(t, OutputTypeFinetuned, ot)

	_, err = ParseOutputType("hypothesis")
	assert.ErrorIs(t, err, ErrInvalidOutputType)
}

func TestDateRange_Validate(t *testing.T) {
	start := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	end := start.Add(24 * time.Hour)

	assert.NoError(t, DateRange{Start: start, End: end}.Validate())
	assert.NoError(t, DateRange{Start: start, End: start}.Validate())
	assert.ErrorIs(t, DateRange{Start: end, End: start}.Validate(), ErrInvalidDateRange)
	assert.ErrorIs(t, DateRange{End: end}.Validate(), ErrDateRangeRequired)
}

func TestJobSelection(t *testing.T) {
	sel := NewJobSelection(5, 3)
	assert.Equal(t, 2, sel.Len())

	assert.True(t, sel.Toggle(9))
	assert.False(t, sel.Toggle(3))
	assert.True(t, sel.Contains(9))
	assert.False(t, sel.Contains(3))
	assert.Equal(t, []int64{5, 9}, sel.IDs())

	sel.Clear()
	assert.Equal(t, 0, sel.Len())
	assert.Empty(t, sel.IDs())
}

func TestJobSelection_ZeroValue(t *testing.T) {
	var sel JobSelection
	sel.Select(1)
	assert.Equal(t, []int64{1}, sel.IDs())
}
