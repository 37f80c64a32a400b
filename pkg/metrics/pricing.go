package metrics

import "github.com/prometheus/client_golang/prometheus"

var (
	// Latency of the offer creation HTTP handler
	OfferComputeLatency = prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "pricing_offer_compute_latency_seconds",
		Help:    "Latency of the offer pricing handler",
		Buckets: prometheus.DefBuckets,
	})

	// Total number of priced offers served over HTTP
	OfferComputeRequests = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "pricing_offer_compute_requests_total",
		Help: "Total number of offer pricing requests",
	})

	// Rescore jobs started via the admin surface
	RescoreJobsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "pricing_rescore_jobs_total",
		Help: "Rescore jobs by terminal status",
	}, []string{"status"})
)

func Init() {
	prometheus.MustRegister(
		OfferComputeLatency,
		OfferComputeRequests,
		RescoreJobsTotal,
	)
}
