package scoring

import (
	"context"

	"tenantpulse/domain"
)

const (
	ModelChurn = "churn"
	ModelLead  = "lead"
)

// Churn model feature names.
const (
	FeatureInactivity      = "inactivity"
	FeaturePaymentFailures = "payment_failures"
	FeatureSupportTickets  = "support_tickets"
	FeatureAdoption        = "feature_adoption"
	FeatureContractAge     = "contract_age"
)

// Lead model feature names.
const (
	FeatureEngagement    = "engagement"
	FeatureProfile       = "profile_completeness"
	FeatureFrequency     = "activity_frequency"
	FeatureBuyingSignals = "buying_signals"
)

// Config is the full weight/threshold configuration for one model. Defaults
// live here; DB overrides are merged on top in loadModelConfig, so the system
// runs with zero external configuration.
type Config struct {
	ModelVersion string

	// Weights per feature name. They do not have to sum to 1.0; the
	// aggregation normalizes by the weight sum.
	Weights map[string]float64

	// Thresholds map a classification label to its minimum score. A score
	// exactly at a threshold belongs to that label (the higher-severity
	// bucket).
	Thresholds map[string]int

	ConfidenceBase float64
	ConfidenceStep float64
	ConfidenceMax  float64
}

const (
	defaultConfidenceBase = 0.40
	defaultConfidenceStep = 0.05
	defaultConfidenceMax  = 0.85

	defaultChurnModelVersion = "heuristic_v2"
	defaultLeadModelVersion  = "heuristic_v1"
)

func DefaultChurnConfig() Config {
	return Config{
		ModelVersion: defaultChurnModelVersion,
		Weights: map[string]float64{
			FeatureInactivity:      0.35,
			FeaturePaymentFailures: 0.25,
			FeatureSupportTickets:  0.15,
			FeatureAdoption:        0.20,
			FeatureContractAge:     0.05,
		},
		Thresholds: map[string]int{
			domain.RiskMedium:   30,
			domain.RiskHigh:     60,
			domain.RiskCritical: 85,
		},
		ConfidenceBase: defaultConfidenceBase,
		ConfidenceStep: defaultConfidenceStep,
		ConfidenceMax:  defaultConfidenceMax,
	}
}

func DefaultLeadConfig() Config {
	return Config{
		ModelVersion: defaultLeadModelVersion,
		Weights: map[string]float64{
			FeatureEngagement:    0.40,
			FeatureProfile:       0.20,
			FeatureFrequency:     0.25,
			FeatureBuyingSignals: 0.15,
		},
		Thresholds: map[string]int{
			domain.QualificationWarm:       25,
			domain.QualificationHot:        50,
			domain.QualificationSalesReady: 75,
		},
		ConfidenceBase: defaultConfidenceBase,
		ConfidenceStep: defaultConfidenceStep,
		ConfidenceMax:  defaultConfidenceMax,
	}
}

// ConfigRepository reads persisted per-model overrides.
type ConfigRepository interface {
	GetConfig(ctx context.Context, model string) (domain.ScoringConfig, bool, error)
	UpsertConfig(ctx context.Context, cfg domain.ScoringConfig) error
}
