package pricing

import (
	"fmt"

	"aipricing/domain"
)

// VolumeTier is one (threshold, rate) step of the volume discount table.
// Tiers are kept sorted highest threshold first; only the first matching
// tier applies.
type VolumeTier struct {
	MinEmployees int
	Rate         float64
}

// EngineConfig carries every tunable constant of the engine. It is
// versioned deployment configuration, loaded once at startup and treated
// as read-only afterwards.
type EngineConfig struct {
	UnitRate float64

	VolumeTiers       []VolumeTier
	RegionMultipliers map[domain.Region]float64
	FallbackRegion    domain.Region
	PremiumSurcharge  float64
	VIPDiscount       float64

	// hybrid blend weights
	WModel float64
	WRule  float64

	// tier boundaries: [0,TierLowMax] LOW, (TierLowMax,TierStandardMax]
	// STANDARD, above VIP
	TierLowMax      float64
	TierStandardMax float64
}

const (
	defaultUnitRate         = 100.0
	defaultPremiumSurcharge = 1.20
	defaultVIPDiscount      = 0.05
	defaultWModel           = 0.7
	defaultWRule            = 0.3
	defaultTierLowMax       = 40.0
	defaultTierStandardMax  = 70.0
)

func DefaultConfig() EngineConfig {
	return EngineConfig{
		UnitRate: defaultUnitRate,
		VolumeTiers: []VolumeTier{
			{MinEmployees: 201, Rate: 0.15},
			{MinEmployees: 51, Rate: 0.10},
			{MinEmployees: 11, Rate: 0.05},
		},
		RegionMultipliers: map[domain.Region]float64{
			domain.RegionMazowieckie: 1.20,
			domain.RegionSlaskie:     1.10,
			domain.RegionMalopolskie: 1.05,
			domain.RegionOther:       1.00,
		},
		FallbackRegion:   domain.RegionOther,
		PremiumSurcharge: defaultPremiumSurcharge,
		VIPDiscount:      defaultVIPDiscount,

		WModel: defaultWModel,
		WRule:  defaultWRule,

		TierLowMax:      defaultTierLowMax,
		TierStandardMax: defaultTierStandardMax,
	}
}

// Validate rejects broken deployment configuration. A failure here is
// fatal at startup; it must never surface per-request.
func (cfg EngineConfig) Validate() error {
	if cfg.UnitRate <= 0 {
		return fmt.Errorf("unit rate must be positive, got %v", cfg.UnitRate)
	}

	prev := int(^uint(0) >> 1)
	for _, tier := range cfg.VolumeTiers {
		if tier.MinEmployees <= 0 {
			return fmt.Errorf("volume tier threshold must be positive, got %d", tier.MinEmployees)
		}
		if tier.MinEmployees >= prev {
			return fmt.Errorf("volume tiers must be sorted highest threshold first")
		}
		if tier.Rate < 0 || tier.Rate >= 1 {
			return fmt.Errorf("volume discount rate out of range: %v", tier.Rate)
		}
		prev = tier.MinEmployees
	}

	if _, ok := cfg.RegionMultipliers[cfg.FallbackRegion]; !ok {
		return fmt.Errorf("region table has no multiplier for fallback region %q", cfg.FallbackRegion)
	}
	for region, mult := range cfg.RegionMultipliers {
		if mult <= 0 {
			return fmt.Errorf("region %q multiplier must be positive, got %v", region, mult)
		}
	}

	if cfg.PremiumSurcharge < 1 {
		return fmt.Errorf("premium surcharge must be >= 1, got %v", cfg.PremiumSurcharge)
	}
	if cfg.VIPDiscount < 0 || cfg.VIPDiscount >= 1 {
		return fmt.Errorf("vip discount out of range: %v", cfg.VIPDiscount)
	}

	if cfg.WModel < 0 || cfg.WRule < 0 {
		return fmt.Errorf("blend weights must be non-negative")
	}
	if sum := cfg.WModel + cfg.WRule; sum < 0.999 || sum > 1.001 {
		return fmt.Errorf("blend weights must sum to 1.0, got %v", sum)
	}

	// tier boundaries must partition [0,100] without gaps or overlap
	if cfg.TierLowMax <= 0 || cfg.TierLowMax >= cfg.TierStandardMax || cfg.TierStandardMax >= 100 {
		return fmt.Errorf("tier boundaries must satisfy 0 < low(%v) < standard(%v) < 100",
			cfg.TierLowMax, cfg.TierStandardMax)
	}

	return nil
}

// regionMultiplier resolves a region against the table, falling back to
// the designated fallback category for unrecognized values.
func (cfg EngineConfig) regionMultiplier(region domain.Region) float64 {
	if mult, ok := cfg.RegionMultipliers[region]; ok {
		return mult
	}
	return cfg.RegionMultipliers[cfg.FallbackRegion]
}
