package pricing

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"aipricing/domain"
)

func TestBuildFeatureVector_FixedOrder(t *testing.T) {
	attrs := domain.OfferAttributes{
		EmployeesCount:     120,
		Region:             domain.RegionMazowieckie,
		Premium48h:         true,
		AvgOrderValue:      25000,
		PriorOffersCount:   4,
		IndustryRiskFactor: 0.3,
	}

	x := BuildFeatureVector(attrs)

	assert.Equal(t, FeatureVector{120, 2, 1, 25000, 4, 0.3}, x)
}

func TestBuildFeatureVector_UnknownRegionFallsBack(t *testing.T) {
	attrs := domain.OfferAttributes{
		EmployeesCount: 10,
		Region:         domain.Region("Atlantyda"),
	}

	x := BuildFeatureVector(attrs)

	assert.Equal(t, regionSlots[domain.RegionOther], x[1])
}

func TestBuildFeatureVector_Deterministic(t *testing.T) {
	attrs := domain.OfferAttributes{
		EmployeesCount:     42,
		Region:             domain.RegionSlaskie,
		AvgOrderValue:      9999.99,
		PriorOffersCount:   1,
		IndustryRiskFactor: 0.77,
	}

	assert.Equal(t, BuildFeatureVector(attrs), BuildFeatureVector(attrs))
}
