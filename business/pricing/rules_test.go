package pricing

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"aipricing/domain"
)

func maxRuleAttrs() domain.OfferAttributes {
	return domain.OfferAttributes{
		EmployeesCount:   250,
		Region:           domain.RegionMazowieckie,
		Premium48h:       true,
		AvgOrderValue:    20001,
		PriorOffersCount: 3,
	}
}

func TestEvaluateRules_AllPredicatesSum(t *testing.T) {
	// 15 + 10 + 5 + 10 + 5, no clamp involved
	assert.Equal(t, 45.0, EvaluateRules(maxRuleAttrs()))
}

func TestEvaluateRules_NoPredicates(t *testing.T) {
	attrs := domain.OfferAttributes{
		EmployeesCount:   5,
		Region:           domain.RegionOther,
		AvgOrderValue:    100,
		PriorOffersCount: 0,
	}
	assert.Equal(t, 0.0, EvaluateRules(attrs))
}

func TestEvaluateRules_ThresholdsInclusive(t *testing.T) {
	attrs := domain.OfferAttributes{
		EmployeesCount:   100, // >= is inclusive
		Region:           domain.RegionSlaskie,
		AvgOrderValue:    20000, // strictly greater required
		PriorOffersCount: 3,     // >= is inclusive
	}
	assert.Equal(t, 20.0, EvaluateRules(attrs))

	attrs.EmployeesCount = 99
	assert.Equal(t, 5.0, EvaluateRules(attrs))
}

func TestEvaluateRules_IndependentOfOrder(t *testing.T) {
	// every predicate is evaluated against the raw attributes only, so
	// summing in any order gives the same total
	attrs := maxRuleAttrs()
	total := 0.0
	for i := len(ruleTable) - 1; i >= 0; i-- {
		if ruleTable[i].applies(attrs) {
			total += ruleTable[i].points
		}
	}
	assert.Equal(t, EvaluateRules(attrs), total)
}

func TestEvaluateRules_ClampGuardsFutureRules(t *testing.T) {
	// current table cannot exceed 100; the clamp is a forward-compat
	// invariant only
	assert.LessOrEqual(t, EvaluateRules(maxRuleAttrs()), 100.0)
	assert.Equal(t, 100.0, clamp(120, 0, 100))
}
