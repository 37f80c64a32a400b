package pricing

import (
	"math"

	"aipricing/domain"
)

// combine blends the rule score with the model score under the configured
// weights and maps the result to a priority tier. When the model was
// unavailable the final score is the rule score alone and the breakdown
// records the degradation.
func (cfg EngineConfig) combine(ruleScore, modelScore float64, modelUnavailable bool) domain.ScoreBreakdown {
	var final float64
	if modelUnavailable {
		final = ruleScore
	} else {
		final = cfg.WModel*modelScore + cfg.WRule*ruleScore
	}
	final = clamp(roundTo(final, 1), 0, 100)

	return domain.ScoreBreakdown{
		RuleScore:        ruleScore,
		ModelScore:       modelScore,
		FinalScore:       final,
		PriorityTier:     cfg.tierFor(final),
		ModelUnavailable: modelUnavailable,
	}
}

// tierFor maps a final score onto the closed partition of [0,100]:
// [0,TierLowMax] LOW, (TierLowMax,TierStandardMax] STANDARD, above VIP.
// Boundary values stay in the lower tier.
func (cfg EngineConfig) tierFor(finalScore float64) domain.PriorityTier {
	switch {
	case finalScore <= cfg.TierLowMax:
		return domain.TierLow
	case finalScore <= cfg.TierStandardMax:
		return domain.TierStandard
	default:
		return domain.TierVIP
	}
}

func roundTo(v float64, decimals int) float64 {
	pow := math.Pow(10, float64(decimals))
	return math.Round(v*pow) / pow
}
