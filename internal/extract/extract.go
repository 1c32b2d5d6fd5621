// Package extract pulls classification signals out of a free-text
// transaction description. It is total: every input yields an
// Extraction, with "unknown" tags where nothing matched.
package extract

import (
	"regexp"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/bookkeep-dev/bookkeep/internal/model"
)

var (
	// Currency-tagged amounts like "₦50,000", "NGN 30000", "N5000.50".
	currencyAmountRe = regexp.MustCompile(`(?i)(?:₦|\$|\b(?:ngn|naira|usd|n))\s*([0-9][0-9,]*(?:\.[0-9]+)?)`)
	// Any bare number with optional thousands separators.
	bareAmountRe = regexp.MustCompile(`([0-9][0-9,]*(?:\.[0-9]+)?)`)
)

// Extract scans a description (plus an optional category hint) and
// returns the tagged signal tuple. It never fails; missing signals are
// tagged "unknown" and HasAmount is false when no positive amount was
// found.
func Extract(description, categoryHint string) model.Extraction {
	text := strings.ToLower(strings.TrimSpace(description))
	hint := strings.ToLower(strings.TrimSpace(categoryHint))

	ex := model.Extraction{
		Action:         matchRules(text, actionRules),
		Object:         matchRules(text, objectRules),
		Counterparty:   matchRules(text, counterpartyRules),
		Timing:         matchRules(text, timingRules),
		BusinessImpact: matchRules(text+" "+hint, impactRules),
	}

	if ex.Counterparty == model.TagUnknown {
		if fallback, ok := actionCounterpartyFallback[ex.Action]; ok {
			ex.Counterparty = fallback
		}
	}

	// Cash movements settle immediately unless credit language says
	// otherwise.
	if ex.Timing == model.TagUnknown && (ex.Action == "received" || ex.Action == "paid") {
		ex.Timing = "immediate"
	}

	if amount, ok := extractAmount(text); ok {
		ex.Amount = amount
		ex.HasAmount = true
	}
	return ex
}

func matchRules(text string, rules []rule) string {
	for _, r := range rules {
		for _, kw := range r.keywords {
			if strings.Contains(text, kw) {
				return r.tag
			}
		}
	}
	return model.TagUnknown
}

// extractAmount prefers an explicitly currency-tagged number, then
// falls back to the largest bare number in the text. Returns false when
// no positive amount is present.
func extractAmount(text string) (decimal.Decimal, bool) {
	if m := currencyAmountRe.FindStringSubmatch(text); m != nil {
		if amt, ok := parseAmount(m[1]); ok {
			return amt, true
		}
	}

	best := decimal.Zero
	found := false
	for _, m := range bareAmountRe.FindAllStringSubmatch(text, -1) {
		amt, ok := parseAmount(m[1])
		if !ok {
			continue
		}
		if !found || amt.GreaterThan(best) {
			best = amt
			found = true
		}
	}
	return best, found
}

func parseAmount(raw string) (decimal.Decimal, bool) {
	amt, err := decimal.NewFromString(strings.ReplaceAll(raw, ",", ""))
	if err != nil || !amt.IsPositive() {
		return decimal.Zero, false
	}
	return amt, true
}
