package pricing

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"aipricing/domain"
)

func TestPrice_CascadeOrderExactCents(t *testing.T) {
	cfg := DefaultConfig()
	attrs := domain.OfferAttributes{
		EmployeesCount: 250,
		Region:         domain.RegionMazowieckie,
		Premium48h:     true,
	}

	price := cfg.Price(attrs, domain.TierVIP)

	// 25000 * 0.85 * 1.2 * 1.2 * 0.95 = 29070.00
	assert.Equal(t, 25000.0, price.BasePrice)
	assert.Equal(t, 0.15, price.VolumeDiscountRate)
	assert.Equal(t, 1.2, price.RegionMultiplier)
	assert.Equal(t, 1.2, price.PremiumMultiplier)
	assert.Equal(t, 0.05, price.TierDiscountRate)
	assert.InDelta(t, 29070.00, price.FinalPrice, 0.001)
}

func TestPrice_VolumeTiersMutuallyExclusive(t *testing.T) {
	cfg := DefaultConfig()

	cases := []struct {
		employees int
		rate      float64
	}{
		{1, 0},
		{10, 0},
		{11, 0.05},
		{50, 0.05},
		{51, 0.10},
		{200, 0.10},
		{201, 0.15},
		{500, 0.15},
	}

	for _, tc := range cases {
		assert.Equalf(t, tc.rate, cfg.volumeDiscountRate(tc.employees), "employees=%d", tc.employees)
	}
}

// effective unit price strictly decreases when crossing each volume
// threshold
func TestPrice_UnitPriceMonotonicityAtThresholds(t *testing.T) {
	cfg := DefaultConfig()

	crossings := [][2]int{{9, 11}, {49, 51}, {199, 201}}

	for _, c := range crossings {
		below := cfg.Price(attrsWithEmployees(c[0]), domain.TierStandard)
		above := cfg.Price(attrsWithEmployees(c[1]), domain.TierStandard)

		unitBelow := below.FinalPrice / float64(c[0])
		unitAbove := above.FinalPrice / float64(c[1])

		assert.Lessf(t, unitAbove, unitBelow, "crossing %d -> %d", c[0], c[1])
	}
}

func attrsWithEmployees(n int) domain.OfferAttributes {
	return domain.OfferAttributes{
		EmployeesCount: n,
		Region:         domain.RegionOther,
	}
}

func TestPrice_NoTierDiscountBelowVIP(t *testing.T) {
	cfg := DefaultConfig()
	attrs := attrsWithEmployees(100)

	low := cfg.Price(attrs, domain.TierLow)
	std := cfg.Price(attrs, domain.TierStandard)
	vip := cfg.Price(attrs, domain.TierVIP)

	assert.Equal(t, 0.0, low.TierDiscountRate)
	assert.Equal(t, 0.0, std.TierDiscountRate)
	assert.Equal(t, low.FinalPrice, std.FinalPrice)
	assert.Less(t, vip.FinalPrice, std.FinalPrice)
}

func TestPrice_RoundsOnlyAtTheEnd(t *testing.T) {
	cfg := DefaultConfig()
	// 33 employees: 3300 * 0.95 * 1.05 = 3291.75 exactly
	attrs := domain.OfferAttributes{
		EmployeesCount: 33,
		Region:         domain.RegionMalopolskie,
	}

	price := cfg.Price(attrs, domain.TierStandard)

	assert.InDelta(t, 3291.75, price.FinalPrice, 0.001)
	// intermediate factors are untouched by rounding
	assert.Equal(t, 3300.0, price.BasePrice)
	assert.Equal(t, 1.05, price.RegionMultiplier)
}

func TestPrice_UnknownRegionUsesFallbackMultiplier(t *testing.T) {
	cfg := DefaultConfig()
	attrs := domain.OfferAttributes{
		EmployeesCount: 10,
		Region:         domain.Region("Nibylandia"),
	}

	price := cfg.Price(attrs, domain.TierLow)

	assert.Equal(t, cfg.RegionMultipliers[domain.RegionOther], price.RegionMultiplier)
	assert.InDelta(t, 1000.00, price.FinalPrice, 0.001)
}
