package domain

// SimulationResult is the statistical summary of a Monte Carlo price run.
type SimulationResult struct {
	MeanPrice   float64 `json:"mean_price"`
	MedianPrice float64 `json:"median_price"`
	StdDev      float64 `json:"std_dev"`

	Percentiles SimulationPercentiles `json:"percentiles"`
	Risk        SimulationRisk        `json:"risk_metrics"`

	CILower float64 `json:"ci_lower"`
	CIUpper float64 `json:"ci_upper"`

	NSimulations     int     `json:"n_simulations"`
	ConvergenceScore float64 `json:"convergence_score"`

	HistogramBins   []float64 `json:"histogram_bins"`
	HistogramCounts []int     `json:"histogram_counts"`
}

type SimulationPercentiles struct {
	P5  float64 `json:"p5"`
	P25 float64 `json:"p25"`
	P50 float64 `json:"p50"`
	P75 float64 `json:"p75"`
	P95 float64 `json:"p95"`
}

type SimulationRisk struct {
	VaR95          float64 `json:"var_95"`
	CVaR95         float64 `json:"cvar_95"`
	Interpretation string  `json:"interpretation"`
}

// ScenarioCase is one branch of a best/expected/worst scenario analysis.
type ScenarioCase struct {
	Price       float64 `json:"price"`
	Probability string  `json:"probability"`
	Description string  `json:"description"`
}

type ScenarioAnalysis struct {
	BestCase     ScenarioCase `json:"best_case"`
	ExpectedCase ScenarioCase `json:"expected_case"`
	WorstCase    ScenarioCase `json:"worst_case"`

	PriceMin       float64 `json:"price_min"`
	PriceMax       float64 `json:"price_max"`
	PriceSpread    float64 `json:"price_spread"`
	PriceSpreadPct float64 `json:"price_spread_pct"`
}
