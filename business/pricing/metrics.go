package pricing

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	offersScoredTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "pricing_offers_scored_total",
			Help: "Count of offers scored by resulting priority tier.",
		},
		[]string{"tier"},
	)

	degradedScoringsTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "pricing_degraded_scorings_total",
			Help: "Count of scorings that fell back to the rule-only path.",
		},
	)
)

func init() {
	prometheus.MustRegister(offersScoredTotal, degradedScoringsTotal)
}
