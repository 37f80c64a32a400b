package domain

import (
	"time"
)

// CREATE TABLE public.offers (
//     id                 BIGINT GENERATED ALWAYS AS IDENTITY PRIMARY KEY,
//     company_id         BIGINT REFERENCES companies(id),
//     employees_count    INTEGER,
//     region             TEXT,
//     premium_48h        BOOLEAN,
//     avg_order_value    NUMERIC,
//     prior_offers_count INTEGER,
//     base_price         NUMERIC,
//     final_price        NUMERIC,
//     ai_score           NUMERIC,
//     ml_score           NUMERIC,
//     rule_score         NUMERIC,
//     model_unavailable  BOOLEAN,
//     priority_level     TEXT,
//     created_at         TIMESTAMPTZ DEFAULT NOW()
// );

type Offer struct {
	ID               uint64    `gorm:"primaryKey;autoIncrement" json:"id"`
	CompanyID        uint64    `gorm:"column:company_id;not null" json:"company_id"`
	EmployeesCount   int       `gorm:"column:employees_count;not null" json:"employees_count"`
	Region           string    `gorm:"column:region;type:text" json:"region"`
	Premium48h       bool      `gorm:"column:premium_48h;default:false" json:"premium_48h"`
	AvgOrderValue    float64   `gorm:"column:avg_order_value;type:numeric" json:"avg_order_value"`
	PriorOffersCount int       `gorm:"column:prior_offers_count;default:0" json:"prior_offers_count"`
	BasePrice        float64   `gorm:"column:base_price;type:numeric" json:"base_price"`
	FinalPrice       float64   `gorm:"column:final_price;type:numeric" json:"final_price"`
	AIScore          float64   `gorm:"column:ai_score;type:numeric" json:"ai_score"`
	MLScore          float64   `gorm:"column:ml_score;type:numeric" json:"ml_score"`
	RuleScore        float64   `gorm:"column:rule_score;type:numeric" json:"rule_score"`
	ModelUnavailable bool      `gorm:"column:model_unavailable;default:false" json:"model_unavailable"`
	PriorityLevel    string    `gorm:"column:priority_level;type:text" json:"priority_level"`
	CreatedAt        time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`

	Company *Company `gorm:"foreignKey:CompanyID" json:"company,omitempty"`
}

func (Offer) TableName() string {
	return "offers"
}

// Attributes rebuilds the engine input from a stored offer. Industry risk
// is not denormalized onto the row, so the caller supplies it.
func (o Offer) Attributes(industryRisk float64) OfferAttributes {
	return OfferAttributes{
		EmployeesCount:     o.EmployeesCount,
		Region:             Region(o.Region),
		Premium48h:         o.Premium48h,
		AvgOrderValue:      o.AvgOrderValue,
		PriorOffersCount:   o.PriorOffersCount,
		IndustryRiskFactor: industryRisk,
	}
}
