package pricing

import "aipricing/domain"

// rule is one independent business predicate with its point contribution.
// No rule may depend on another rule having fired.
type rule struct {
	name    string
	points  float64
	applies func(domain.OfferAttributes) bool
}

// ruleTable is evaluated top to bottom. Order does not affect the sum but
// is kept stable for auditability.
var ruleTable = []rule{
	{
		name:   "large_workforce",
		points: 15,
		applies: func(a domain.OfferAttributes) bool {
			return a.EmployeesCount >= 100
		},
	},
	{
		name:   "premium_48h",
		points: 10,
		applies: func(a domain.OfferAttributes) bool {
			return a.Premium48h
		},
	},
	{
		name:   "high_value_region",
		points: 5,
		applies: func(a domain.OfferAttributes) bool {
			return a.Region == domain.RegionMazowieckie
		},
	},
	{
		name:   "high_avg_order_value",
		points: 10,
		applies: func(a domain.OfferAttributes) bool {
			return a.AvgOrderValue > 20000
		},
	},
	{
		name:   "returning_client",
		points: 5,
		applies: func(a domain.OfferAttributes) bool {
			return a.PriorOffersCount >= 3
		},
	},
}

// EvaluateRules sums the point contributions of every matching rule. The
// clamp to [0,100] cannot trigger with the current table; it guards
// future rule additions.
func EvaluateRules(attrs domain.OfferAttributes) float64 {
	score := 0.0
	for _, r := range ruleTable {
		if r.applies(attrs) {
			score += r.points
		}
	}
	return clamp(score, 0, 100)
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
