package classify

import (
	"github.com/shopspring/decimal"

	"github.com/bookkeep-dev/bookkeep/internal/model"
)

// Fixed penalties applied to the confidence score. Advisory metadata
// only; a low score never blocks posting.
var (
	penaltyAction       = decimal.RequireFromString("0.20")
	penaltyObject       = decimal.RequireFromString("0.10")
	penaltyCounterparty = decimal.RequireFromString("0.15")
	penaltyTiming       = decimal.RequireFromString("0.10")
	penaltyImpact       = decimal.RequireFromString("0.25")
	penaltyAssumption   = decimal.RequireFromString("0.05")
	penaltyQuestion     = decimal.RequireFromString("0.15")

	confidenceFloor = decimal.RequireFromString("0.1")
	confidenceCeil  = decimal.NewFromInt(1)
)

// Score computes the advisory confidence for an interpretation: start
// at 1.0, deduct for every unknown tag, assumption, and open question,
// clamp to [0.1, 1.0].
func Score(ex model.Extraction, interp model.Interpretation) decimal.Decimal {
	score := confidenceCeil

	if ex.Action == model.TagUnknown {
		score = score.Sub(penaltyAction)
	}
	if ex.Object == model.TagUnknown {
		score = score.Sub(penaltyObject)
	}
	if ex.Counterparty == model.TagUnknown {
		score = score.Sub(penaltyCounterparty)
	}
	if ex.Timing == model.TagUnknown {
		score = score.Sub(penaltyTiming)
	}
	if ex.BusinessImpact == model.TagUnknown {
		score = score.Sub(penaltyImpact)
	}

	score = score.Sub(penaltyAssumption.Mul(decimal.NewFromInt(int64(len(interp.Assumptions)))))
	score = score.Sub(penaltyQuestion.Mul(decimal.NewFromInt(int64(len(interp.QuestionsNeeded)))))

	if score.LessThan(confidenceFloor) {
		return confidenceFloor
	}
	if score.GreaterThan(confidenceCeil) {
		return confidenceCeil
	}
	return score
}
