package pricing

import (
	"fmt"

	"aipricing/domain"
)

// InvalidAttributesError reports attribute-level validation failures. They
// are surfaced to the caller immediately and never repaired here.
type InvalidAttributesError struct {
	Field  string
	Reason string
}

func (e *InvalidAttributesError) Error() string {
	return fmt.Sprintf("invalid offer attributes: %s %s", e.Field, e.Reason)
}

// ValidateAttributes checks the engine's input invariants: counts and
// values non-negative, employee count positive. Region is deliberately
// not rejected; unknown regions resolve to the fallback multiplier.
func ValidateAttributes(attrs domain.OfferAttributes) error {
	if attrs.EmployeesCount <= 0 {
		return &InvalidAttributesError{Field: "employees_count", Reason: "must be positive"}
	}
	if attrs.AvgOrderValue < 0 {
		return &InvalidAttributesError{Field: "avg_order_value", Reason: "must be non-negative"}
	}
	if attrs.PriorOffersCount < 0 {
		return &InvalidAttributesError{Field: "prior_offers_count", Reason: "must be non-negative"}
	}
	if attrs.IndustryRiskFactor < 0 {
		return &InvalidAttributesError{Field: "industry_risk_factor", Reason: "must be non-negative"}
	}
	return nil
}
