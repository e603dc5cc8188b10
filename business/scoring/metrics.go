package scoring

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	ChurnPredictionsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "tenantpulse_churn_predictions_total",
			Help: "Churn predictions calculated, by resulting risk level",
		},
		[]string{"risk_level"},
	)

	LeadScoresTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "tenantpulse_lead_scores_total",
			Help: "Lead scores calculated, by resulting qualification",
		},
		[]string{"qualification"},
	)
)

func init() {
	prometheus.MustRegister(ChurnPredictionsTotal)
	prometheus.MustRegister(LeadScoresTotal)
}
