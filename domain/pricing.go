package domain

import "time"

// Region is one of the fixed voivodeship categories an offer can target.
// Anything outside the known set resolves to RegionOther.
type Region string

const (
	RegionMazowieckie Region = "Mazowieckie"
	RegionSlaskie     Region = "Śląskie"
	RegionMalopolskie Region = "Małopolskie"
	RegionOther       Region = "Inne"
)

// PriorityTier classifies an offer by its final score.
type PriorityTier string

const (
	TierLow      PriorityTier = "LOW"
	TierStandard PriorityTier = "STANDARD"
	TierVIP      PriorityTier = "VIP"
)

// OfferAttributes is the caller-supplied input of a single pricing run.
// All numeric fields must be non-negative; unknown regions fall back to
// RegionOther instead of failing.
type OfferAttributes struct {
	EmployeesCount     int     `json:"employees_count"`
	Region             Region  `json:"region"`
	Premium48h         bool    `json:"premium_48h"`
	AvgOrderValue      float64 `json:"avg_order_value"`
	PriorOffersCount   int     `json:"prior_offers_count"`
	IndustryRiskFactor float64 `json:"industry_risk_factor"`
}

// ScoreBreakdown is the scoring half of a pricing run. ModelUnavailable
// marks results computed on the rule-only degraded path so downstream
// consumers can audit or re-queue them.
type ScoreBreakdown struct {
	RuleScore        float64      `json:"rule_score"`
	ModelScore       float64      `json:"ml_score"`
	FinalScore       float64      `json:"ai_score"`
	PriorityTier     PriorityTier `json:"priority_level"`
	ModelUnavailable bool         `json:"model_unavailable"`
}

// PriceBreakdown keeps every factor of the price cascade. Intermediate
// factors are full precision; only FinalPrice is rounded to cents.
type PriceBreakdown struct {
	BasePrice          float64 `json:"base_price"`
	VolumeDiscountRate float64 `json:"volume_discount_rate"`
	RegionMultiplier   float64 `json:"region_multiplier"`
	PremiumMultiplier  float64 `json:"premium_multiplier"`
	TierDiscountRate   float64 `json:"tier_discount_rate"`
	FinalPrice         float64 `json:"final_price"`
}

// OfferResult is the immutable record a single pricing run produces.
type OfferResult struct {
	Attributes OfferAttributes `json:"attributes"`
	Score      ScoreBreakdown  `json:"score"`
	Price      PriceBreakdown  `json:"price"`
	CreatedAt  time.Time       `json:"created_at"`
}
