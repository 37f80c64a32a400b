package simulation

import (
	"context"
	"errors"
	"fmt"
	"math"
	"math/rand/v2"

	"golang.org/x/sync/errgroup"

	"aipricing/domain"
	"aipricing/pkg/logger"
)

// Input describes one price whose uncertainty should be explored. The
// base price comes from the deterministic cascade; the remaining fields
// shape the volatility model.
type Input struct {
	BasePrice          float64
	EmployeesCount     int
	Region             domain.Region
	Premium48h         bool
	IndustryRiskFactor float64
	AIScore            float64

	// CustomVolatility overrides the derived volatility when positive.
	CustomVolatility float64
}

const simulationWorkers = 4

type simulationService struct {
	cfg  Config
	seed uint64
}

// NewSimulationService validates the config up front. Seed zero means a
// fresh random stream per process; tests pass a fixed seed.
func NewSimulationService(cfg Config, seed uint64) (*simulationService, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if seed == 0 {
		seed = rand.Uint64()
	}
	return &simulationService{cfg: cfg, seed: seed}, nil
}

// SimulatePrice runs the Monte Carlo pass and summarizes the resulting
// price distribution.
func (s *simulationService) SimulatePrice(ctx context.Context, in Input) (domain.SimulationResult, error) {
	if err := ctx.Err(); err != nil {
		return domain.SimulationResult{}, fmt.Errorf("context error: %w", err)
	}
	if in.BasePrice <= 0 {
		return domain.SimulationResult{}, errors.New("simulation: base price must be positive")
	}

	volatility := s.volatility(in)

	prices, err := s.runSimulation(ctx, in, volatility)
	if err != nil {
		return domain.SimulationResult{}, err
	}

	result := summarize(prices, s.cfg.HistogramBins)

	logger.Debug("price simulation complete",
		"base_price", in.BasePrice,
		"volatility", volatility,
		"mean_price", result.MeanPrice,
		"std_dev", result.StdDev,
	)

	return result, nil
}

// ScenarioAnalysis condenses a simulation into best, expected, and worst
// cases for the sales-facing view.
func (s *simulationService) ScenarioAnalysis(ctx context.Context, in Input) (domain.ScenarioAnalysis, error) {
	result, err := s.SimulatePrice(ctx, in)
	if err != nil {
		return domain.ScenarioAnalysis{}, err
	}

	spread := result.Percentiles.P95 - result.Percentiles.P5
	spreadPct := 0.0
	if result.MeanPrice > 0 {
		spreadPct = roundTo(spread/result.MeanPrice*100, 1)
	}

	return domain.ScenarioAnalysis{
		BestCase: domain.ScenarioCase{
			Price:       result.Percentiles.P95,
			Probability: "5%",
			Description: "Optimistic scenario - favorable market conditions",
		},
		ExpectedCase: domain.ScenarioCase{
			Price:       result.MeanPrice,
			Probability: "Most likely",
			Description: "Expected outcome based on current parameters",
		},
		WorstCase: domain.ScenarioCase{
			Price:       result.Percentiles.P5,
			Probability: "5%",
			Description: "Pessimistic scenario - adverse conditions",
		},
		PriceMin:       result.Percentiles.P5,
		PriceMax:       result.Percentiles.P95,
		PriceSpread:    roundTo(spread, 2),
		PriceSpreadPct: spreadPct,
	}, nil
}

// volatility combines the independent uncertainty sources as the root of
// the sum of squares, capped at the configured maximum.
func (s *simulationService) volatility(in Input) float64 {
	if in.CustomVolatility > 0 {
		return in.CustomVolatility
	}

	baseVol := s.cfg.MarketVolatility
	regionalVol := s.cfg.regionVolatility(in.Region)
	industryVol := in.IndustryRiskFactor * s.cfg.IndustryVolatilityMultiplier * 0.1

	// A weaker score means less confidence in the deterministic price.
	aiUncertainty := (1 - in.AIScore/100) * 0.15

	combined := math.Sqrt(
		baseVol*baseVol +
			regionalVol*regionalVol +
			industryVol*industryVol +
			aiUncertainty*aiUncertainty,
	)

	return math.Min(combined, s.cfg.MaxVolatility)
}

// runSimulation draws the price sample in parallel batches. Each batch
// owns a deterministic sub-stream, so results are reproducible for a
// fixed seed regardless of scheduling.
func (s *simulationService) runSimulation(ctx context.Context, in Input, volatility float64) ([]float64, error) {
	prices := make([]float64, s.cfg.NSimulations)
	floor := in.BasePrice * s.cfg.PriceFloorRatio

	// Demand is steadier for larger companies.
	demandVol := s.cfg.DemandUncertainty / (1 + math.Log1p(float64(in.EmployeesCount))/10)

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(simulationWorkers)

	for batch := 0; batch*s.cfg.BatchSize < s.cfg.NSimulations; batch++ {
		start := batch * s.cfg.BatchSize
		end := min(start+s.cfg.BatchSize, s.cfg.NSimulations)
		rng := rand.New(rand.NewPCG(s.seed, uint64(batch)))

		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return fmt.Errorf("simulation canceled: %w", err)
			}
			for i := start; i < end; i++ {
				prices[i] = math.Max(s.drawPrice(rng, in, volatility, demandVol), floor)
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return prices, nil
}

// drawPrice composes one simulated price from independent shocks:
// log-normal market movement, demand and cost noise, a tight premium
// margin when applicable, and a rare stressed-market multiplier.
func (s *simulationService) drawPrice(rng *rand.Rand, in Input, volatility, demandVol float64) float64 {
	marketShock := math.Exp(volatility * rng.NormFloat64())
	demandShock := 1 + demandVol*rng.NormFloat64()
	costShock := 1 + s.cfg.CostUncertainty*rng.NormFloat64()

	premiumShock := 1.0
	if in.Premium48h {
		premiumShock = 1 + 0.03*rng.NormFloat64()
	}

	stressMultiplier := 1.0
	if rng.Float64() < 0.05 {
		stressMultiplier = 0.7 + 0.6*rng.Float64()
	}

	return in.BasePrice * marketShock * demandShock * costShock * premiumShock * stressMultiplier
}

func summarize(prices []float64, bins int) domain.SimulationResult {
	sorted := sortedCopy(prices)

	m := mean(prices)
	sd := stdDev(prices, m)

	p5 := percentile(sorted, 5)
	p25 := percentile(sorted, 25)
	p50 := percentile(sorted, 50)
	p75 := percentile(sorted, 75)
	p95 := percentile(sorted, 95)

	// VaR is the loss from the mean down to the 5th percentile; CVaR
	// averages the tail beyond it.
	var95 := m - p5
	cvar95 := var95
	var tailSum float64
	var tailN int
	for _, p := range sorted {
		if p > p5 {
			break
		}
		tailSum += p
		tailN++
	}
	if tailN > 0 {
		cvar95 = m - tailSum/float64(tailN)
	}

	se := sd / math.Sqrt(float64(len(prices)))

	halfN := len(prices) / 2
	firstHalf := mean(prices[:halfN])
	secondHalf := mean(prices[halfN:])
	convergence := 0.0
	if m > 0 {
		convergence = 1 - math.Abs(firstHalf-secondHalf)/m
	}

	edges, counts := histogram(sorted, bins)
	roundedEdges := make([]float64, len(edges))
	for i, e := range edges {
		roundedEdges[i] = roundTo(e, 2)
	}

	return domain.SimulationResult{
		MeanPrice:   roundTo(m, 2),
		MedianPrice: roundTo(p50, 2),
		StdDev:      roundTo(sd, 2),
		Percentiles: domain.SimulationPercentiles{
			P5:  roundTo(p5, 2),
			P25: roundTo(p25, 2),
			P50: roundTo(p50, 2),
			P75: roundTo(p75, 2),
			P95: roundTo(p95, 2),
		},
		Risk: domain.SimulationRisk{
			VaR95:          roundTo(var95, 2),
			CVaR95:         roundTo(cvar95, 2),
			Interpretation: riskInterpretation(sd, m),
		},
		CILower:          roundTo(m-1.96*se, 2),
		CIUpper:          roundTo(m+1.96*se, 2),
		NSimulations:     len(prices),
		ConvergenceScore: roundTo(convergence, 4),
		HistogramBins:    roundedEdges,
		HistogramCounts:  counts,
	}
}

// riskInterpretation grades the coefficient of variation.
func riskInterpretation(sd, m float64) string {
	cv := 0.0
	if m > 0 {
		cv = sd / m
	}
	switch {
	case cv < 0.1:
		return "LOW_RISK - High pricing confidence"
	case cv < 0.2:
		return "MODERATE_RISK - Normal pricing variance"
	case cv < 0.3:
		return "ELEVATED_RISK - Consider price review"
	default:
		return "HIGH_RISK - Significant uncertainty"
	}
}
