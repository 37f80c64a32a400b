package pricing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"aipricing/domain"
)

func TestDefaultConfig_Valid(t *testing.T) {
	require.NoError(t, DefaultConfig().Validate())
}

func TestValidate_RejectsInconsistencies(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*EngineConfig)
	}{
		{"zero unit rate", func(c *EngineConfig) { c.UnitRate = 0 }},
		{"unsorted volume tiers", func(c *EngineConfig) {
			c.VolumeTiers = []VolumeTier{{MinEmployees: 11, Rate: 0.05}, {MinEmployees: 201, Rate: 0.15}}
		}},
		{"discount rate of 1", func(c *EngineConfig) {
			c.VolumeTiers = []VolumeTier{{MinEmployees: 11, Rate: 1.0}}
		}},
		{"missing fallback region", func(c *EngineConfig) {
			delete(c.RegionMultipliers, domain.RegionOther)
		}},
		{"negative region multiplier", func(c *EngineConfig) {
			c.RegionMultipliers[domain.RegionSlaskie] = -1
		}},
		{"surcharge below 1", func(c *EngineConfig) { c.PremiumSurcharge = 0.9 }},
		{"weights not summing to 1", func(c *EngineConfig) { c.WModel = 0.5 }},
		{"overlapping tier boundaries", func(c *EngineConfig) { c.TierLowMax = 70 }},
		{"boundaries not covering range", func(c *EngineConfig) { c.TierStandardMax = 120 }},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tc.mutate(&cfg)
			assert.Error(t, cfg.Validate())
		})
	}
}
