package pricing

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"aipricing/domain"
)

func TestCombine_BlendWeights(t *testing.T) {
	cfg := DefaultConfig()

	score := cfg.combine(35, 80, false)

	assert.Equal(t, 66.5, score.FinalScore)
	assert.Equal(t, domain.TierStandard, score.PriorityTier)
	assert.False(t, score.ModelUnavailable)
}

func TestCombine_RoundsToOneDecimal(t *testing.T) {
	cfg := DefaultConfig()

	// 0.7*33.33 + 0.3*10 = 26.331 -> 26.3
	score := cfg.combine(10, 33.33, false)

	assert.Equal(t, 26.3, score.FinalScore)
}

func TestCombine_DegradedUsesRuleScoreExactly(t *testing.T) {
	cfg := DefaultConfig()

	score := cfg.combine(45, 0, true)

	assert.Equal(t, 45.0, score.FinalScore)
	assert.True(t, score.ModelUnavailable)
	assert.Equal(t, domain.TierVIP, cfg.tierFor(71)) // sanity: tier mapping unaffected
}

func TestTierFor_Partition(t *testing.T) {
	cfg := DefaultConfig()

	cases := []struct {
		score float64
		want  domain.PriorityTier
	}{
		{0, domain.TierLow},
		{39.9, domain.TierLow},
		{40, domain.TierLow},       // boundary stays in lower tier
		{40.0001, domain.TierStandard},
		{40.1, domain.TierStandard},
		{70, domain.TierStandard},  // boundary stays in lower tier
		{70.0001, domain.TierVIP},
		{70.1, domain.TierVIP},
		{100, domain.TierVIP},
	}

	for _, tc := range cases {
		assert.Equalf(t, tc.want, cfg.tierFor(tc.score), "score %v", tc.score)
	}
}

func TestTierFor_TotalOverRange(t *testing.T) {
	cfg := DefaultConfig()

	// dense sweep: exactly one tier applies everywhere in [0,100]
	for s := 0.0; s <= 100.0; s += 0.1 {
		tier := cfg.tierFor(s)
		switch tier {
		case domain.TierLow, domain.TierStandard, domain.TierVIP:
		default:
			t.Fatalf("score %v mapped to unknown tier %q", s, tier)
		}
	}
}
