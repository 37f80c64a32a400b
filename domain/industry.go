package domain

// DefaultIndustryRisk is assumed when a company has no industry assigned.
const DefaultIndustryRisk = 0.5

type Industry struct {
	ID         uint64  `gorm:"primaryKey;autoIncrement" json:"id"`
	Name       string  `gorm:"column:name;type:text;unique;not null" json:"name"`
	RiskFactor float64 `gorm:"column:risk_factor;type:numeric;default:0.5" json:"risk_factor"`
}

func (Industry) TableName() string {
	return "industries"
}
