package domain

// DashboardStats aggregates the admin overview numbers.
type DashboardStats struct {
	CompaniesCount       int64              `json:"companies_count"`
	OffersCount          int64              `json:"offers_count"`
	AvgOfferValue        float64            `json:"avg_offer_value"`
	TopCompanies         []TopCompany       `json:"top_companies"`
	IndustryDistribution map[string]int64   `json:"industry_distribution"`
	AvgScorePerRegion    map[string]float64 `json:"avg_score_per_region"`
}

type TopCompany struct {
	Name    string  `json:"name"`
	AIScore float64 `json:"ai_score"`
}
