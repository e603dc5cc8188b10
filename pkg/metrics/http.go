package metrics

import "github.com/prometheus/client_golang/prometheus"

var (
	// Latency of prediction endpoints by route.
	PredictionLatency = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "prediction_request_latency_seconds",
		Help:    "Latency of prediction API handlers",
		Buckets: prometheus.DefBuckets,
	}, []string{"route"})

	// Total number of prediction API requests served
	PredictionRequests = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "prediction_requests_total",
		Help: "Total number of prediction API requests",
	}, []string{"route", "status"})
)

func Init() {
	prometheus.MustRegister(
		PredictionLatency,
		PredictionRequests,
	)
}
