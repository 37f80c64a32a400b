package simulation

import (
	"errors"

	"aipricing/domain"
)

// Config holds the uncertainty model parameters. Volatilities are
// relative standard deviations.
type Config struct {
	NSimulations int
	BatchSize    int

	MarketVolatility  float64
	DemandUncertainty float64
	CostUncertainty   float64

	// RegionVolatility maps a region to its market volatility. Unknown
	// regions use FallbackRegionVolatility.
	RegionVolatility         map[domain.Region]float64
	FallbackRegionVolatility float64

	IndustryVolatilityMultiplier float64

	// MaxVolatility caps the combined volatility.
	MaxVolatility float64

	// PriceFloorRatio bounds simulated prices at this fraction of the
	// base price.
	PriceFloorRatio float64

	HistogramBins int
}

func DefaultConfig() Config {
	return Config{
		NSimulations:      10_000,
		BatchSize:         2_000,
		MarketVolatility:  0.15,
		DemandUncertainty: 0.10,
		CostUncertainty:   0.08,
		RegionVolatility: map[domain.Region]float64{
			domain.RegionMazowieckie: 0.12,
			domain.RegionSlaskie:     0.18,
			domain.RegionMalopolskie: 0.15,
			domain.RegionOther:       0.20,
		},
		FallbackRegionVolatility:     0.20,
		IndustryVolatilityMultiplier: 1.5,
		MaxVolatility:                0.5,
		PriceFloorRatio:              0.1,
		HistogramBins:                30,
	}
}

func (c Config) Validate() error {
	if c.NSimulations < 100 {
		return errors.New("simulation: at least 100 iterations required")
	}
	if c.BatchSize <= 0 {
		return errors.New("simulation: batch size must be positive")
	}
	if c.MaxVolatility <= 0 || c.MaxVolatility > 1 {
		return errors.New("simulation: max volatility must be in (0, 1]")
	}
	if c.PriceFloorRatio < 0 || c.PriceFloorRatio >= 1 {
		return errors.New("simulation: price floor ratio must be in [0, 1)")
	}
	if c.HistogramBins <= 0 {
		return errors.New("simulation: histogram bins must be positive")
	}
	return nil
}

func (c Config) regionVolatility(region domain.Region) float64 {
	if vol, ok := c.RegionVolatility[region]; ok {
		return vol
	}
	return c.FallbackRegionVolatility
}
