package classify

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/bookkeep-dev/bookkeep/internal/model"
)

func fullExtraction() model.Extraction {
	return model.Extraction{
		Action:         "sold",
		Object:         "goods",
		Counterparty:   "customer",
		Timing:         "immediate",
		BusinessImpact: "income",
	}
}

func TestScore_PerfectSignal(t *testing.T) {
	score := Score(fullExtraction(), model.Interpretation{})
	assert.True(t, score.Equal(decimal.NewFromInt(1)), "got %s", score)
}

func TestScore_UnknownTagPenalties(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*model.Extraction)
		want   string
	}{
		{"action", func(e *model.Extraction) { e.Action = model.TagUnknown }, "0.8"},
		{"object", func(e *model.Extraction) { e.Object = model.TagUnknown }, "0.9"},
		{"counterparty", func(e *model.Extraction) { e.Counterparty = model.TagUnknown }, "0.85"},
		{"timing", func(e *model.Extraction) { e.Timing = model.TagUnknown }, "0.9"},
		{"impact", func(e *model.Extraction) { e.BusinessImpact = model.TagUnknown }, "0.75"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ex := fullExtraction()
			tt.mutate(&ex)
			score := Score(ex, model.Interpretation{})
			assert.True(t, score.Equal(decimal.RequireFromString(tt.want)), "got %s want %s", score, tt.want)
		})
	}
}

func TestScore_AssumptionAndQuestionPenalties(t *testing.T) {
	interp := model.Interpretation{
		Assumptions:     []string{"a", "b"},             // -0.10
		QuestionsNeeded: []string{"missing cost basis"}, // -0.15
	}
	score := Score(fullExtraction(), interp)
	assert.True(t, score.Equal(decimal.RequireFromString("0.75")), "got %s", score)
}

func TestScore_ClampedToFloor(t *testing.T) {
	ex := model.Extraction{
		Action:         model.TagUnknown,
		Object:         model.TagUnknown,
		Counterparty:   model.TagUnknown,
		Timing:         model.TagUnknown,
		BusinessImpact: model.TagUnknown,
	}
	interp := model.Interpretation{
		Assumptions:     []string{"a", "b", "c", "d"},
		QuestionsNeeded: []string{"q1", "q2"},
	}
	score := Score(ex, interp)
	assert.True(t, score.Equal(decimal.RequireFromString("0.1")), "got %s", score)
}
