package simulation

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"aipricing/domain"
)

func testInput() Input {
	return Input{
		BasePrice:          10000,
		EmployeesCount:     120,
		Region:             domain.RegionMazowieckie,
		Premium48h:         true,
		IndustryRiskFactor: 0.3,
		AIScore:            70,
	}
}

func newService(t *testing.T, seed uint64) *simulationService {
	t.Helper()
	svc, err := NewSimulationService(DefaultConfig(), seed)
	require.NoError(t, err)
	return svc
}

func TestSimulatePrice_DistributionShape(t *testing.T) {
	svc := newService(t, 42)

	result, err := svc.SimulatePrice(context.Background(), testInput())
	require.NoError(t, err)

	assert.Equal(t, 10000, result.NSimulations)
	assert.Greater(t, result.StdDev, 0.0)

	assert.Less(t, result.Percentiles.P5, result.Percentiles.P25)
	assert.Less(t, result.Percentiles.P25, result.Percentiles.P50)
	assert.Less(t, result.Percentiles.P50, result.Percentiles.P75)
	assert.Less(t, result.Percentiles.P75, result.Percentiles.P95)
	assert.Equal(t, result.MedianPrice, result.Percentiles.P50)

	// The sample centers near the base price.
	assert.InEpsilon(t, 10000.0, result.MeanPrice, 0.25)

	assert.Less(t, result.CILower, result.MeanPrice)
	assert.Greater(t, result.CIUpper, result.MeanPrice)

	assert.Greater(t, result.Risk.VaR95, 0.0)
	assert.GreaterOrEqual(t, result.Risk.CVaR95, result.Risk.VaR95)
	assert.NotEmpty(t, result.Risk.Interpretation)

	assert.Greater(t, result.ConvergenceScore, 0.9)

	assert.Len(t, result.HistogramBins, DefaultConfig().HistogramBins+1)
	assert.Len(t, result.HistogramCounts, DefaultConfig().HistogramBins)
	total := 0
	for _, c := range result.HistogramCounts {
		total += c
	}
	assert.Equal(t, result.NSimulations, total)
}

func TestSimulatePrice_FloorHolds(t *testing.T) {
	svc := newService(t, 7)

	in := testInput()
	in.CustomVolatility = 0.5

	result, err := svc.SimulatePrice(context.Background(), in)
	require.NoError(t, err)

	// No simulated price drops below 10% of the base price, so the first
	// histogram edge cannot either.
	assert.GreaterOrEqual(t, result.HistogramBins[0], in.BasePrice*0.1)
}

func TestSimulatePrice_ReproducibleForFixedSeed(t *testing.T) {
	a, err := NewSimulationService(DefaultConfig(), 1234)
	require.NoError(t, err)
	b, err := NewSimulationService(DefaultConfig(), 1234)
	require.NoError(t, err)

	first, err := a.SimulatePrice(context.Background(), testInput())
	require.NoError(t, err)
	second, err := b.SimulatePrice(context.Background(), testInput())
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestSimulatePrice_RejectsNonPositiveBase(t *testing.T) {
	svc := newService(t, 1)

	_, err := svc.SimulatePrice(context.Background(), Input{BasePrice: 0})
	assert.Error(t, err)
}

func TestSimulatePrice_CanceledContext(t *testing.T) {
	svc := newService(t, 1)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := svc.SimulatePrice(ctx, testInput())
	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestVolatility_CustomOverrideWins(t *testing.T) {
	svc := newService(t, 1)

	in := testInput()
	in.CustomVolatility = 0.33
	assert.Equal(t, 0.33, svc.volatility(in))
}

func TestVolatility_CappedAtMax(t *testing.T) {
	svc := newService(t, 1)

	in := Input{
		Region:             "Nieznany",
		IndustryRiskFactor: 1.0,
		AIScore:            0,
	}
	assert.LessOrEqual(t, svc.volatility(in), DefaultConfig().MaxVolatility)
}

func TestVolatility_WeakerScoreRaisesUncertainty(t *testing.T) {
	svc := newService(t, 1)

	confident := testInput()
	confident.AIScore = 95
	shaky := testInput()
	shaky.AIScore = 20

	assert.Greater(t, svc.volatility(shaky), svc.volatility(confident))
}

func TestScenarioAnalysis_OrdersCases(t *testing.T) {
	svc := newService(t, 42)

	analysis, err := svc.ScenarioAnalysis(context.Background(), testInput())
	require.NoError(t, err)

	assert.Less(t, analysis.WorstCase.Price, analysis.ExpectedCase.Price)
	assert.Less(t, analysis.ExpectedCase.Price, analysis.BestCase.Price)
	assert.Equal(t, analysis.WorstCase.Price, analysis.PriceMin)
	assert.Equal(t, analysis.BestCase.Price, analysis.PriceMax)
	assert.Greater(t, analysis.PriceSpread, 0.0)
	assert.Greater(t, analysis.PriceSpreadPct, 0.0)
}

func TestConfig_ValidateRejectsBadValues(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*Config)
	}{
		{"too few iterations", func(c *Config) { c.NSimulations = 10 }},
		{"zero batch size", func(c *Config) { c.BatchSize = 0 }},
		{"zero max volatility", func(c *Config) { c.MaxVolatility = 0 }},
		{"floor ratio at one", func(c *Config) { c.PriceFloorRatio = 1 }},
		{"no histogram bins", func(c *Config) { c.HistogramBins = 0 }},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tc.mutate(&cfg)
			assert.Error(t, cfg.Validate())

			_, err := NewSimulationService(cfg, 1)
			assert.Error(t, err)
		})
	}
}
