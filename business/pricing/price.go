package pricing

import "aipricing/domain"

// Price runs the deterministic price cascade. The order is significant
// and must be preserved: volume discount, region multiplier, premium
// surcharge, then the VIP tier discount last. Intermediate values stay at
// full precision; only the final price is rounded to cents.
func (cfg EngineConfig) Price(attrs domain.OfferAttributes, tier domain.PriorityTier) domain.PriceBreakdown {
	basePrice := float64(attrs.EmployeesCount) * cfg.UnitRate

	volumeRate := cfg.volumeDiscountRate(attrs.EmployeesCount)
	regionMult := cfg.regionMultiplier(attrs.Region)

	premiumMult := 1.0
	if attrs.Premium48h {
		premiumMult = cfg.PremiumSurcharge
	}

	tierRate := 0.0
	if tier == domain.TierVIP {
		tierRate = cfg.VIPDiscount
	}

	final := basePrice * (1 - volumeRate) * regionMult * premiumMult * (1 - tierRate)

	return domain.PriceBreakdown{
		BasePrice:          basePrice,
		VolumeDiscountRate: volumeRate,
		RegionMultiplier:   regionMult,
		PremiumMultiplier:  premiumMult,
		TierDiscountRate:   tierRate,
		FinalPrice:         roundTo(final, 2),
	}
}

// volumeDiscountRate walks the tier table highest threshold first; tiers
// are mutually exclusive, only the first match applies.
func (cfg EngineConfig) volumeDiscountRate(employees int) float64 {
	for _, tier := range cfg.VolumeTiers {
		if employees >= tier.MinEmployees {
			return tier.Rate
		}
	}
	return 0
}
