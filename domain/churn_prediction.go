package domain

import "time"

// Churn risk levels, ordered by severity.
const (
	RiskLow      = "low"
	RiskMedium   = "medium"
	RiskHigh     = "high"
	RiskCritical = "critical"
)

// ChurnPrediction is one persisted churn scoring result for a tenant.
// Rows are append-only: a new computation always creates a new row, which is
// what makes the trend query possible.
type ChurnPrediction struct {
	ID                  uint      `gorm:"primaryKey" json:"id"`
	TenantID            uint      `gorm:"column:tenant_id;index;not null" json:"tenant_id"`
	RiskScore           int       `gorm:"column:risk_score;not null" json:"risk_score"`
	RiskLevel           string    `gorm:"column:risk_level;index;not null" json:"risk_level"`
	ContributingFactors []byte    `gorm:"column:contributing_factors;type:jsonb" json:"-"`
	RecommendedActions  []byte    `gorm:"column:recommended_actions;type:jsonb" json:"-"`
	FeaturesSnapshot    []byte    `gorm:"column:features_snapshot;type:jsonb" json:"-"`
	Confidence          float64   `gorm:"column:confidence" json:"confidence"`
	ModelVersion        string    `gorm:"column:model_version" json:"model_version"`
	CreatedAt           time.Time `gorm:"column:created_at;autoCreateTime;index" json:"created_at"`
}

func (ChurnPrediction) TableName() string {
	return "churn_predictions"
}

// ContributingFactor explains one input that produced a score.
type ContributingFactor struct {
	Factor string  `json:"factor"`
	Score  float64 `json:"score"`
	Weight float64 `json:"weight"`
}

type RecommendedAction struct {
	Action      string `json:"action"`
	Priority    string `json:"priority"`
	Description string `json:"description"`
}

// ChurnRiskResult is the structured result returned by CalculateChurnRisk,
// mirroring the persisted snapshot.
type ChurnRiskResult struct {
	PredictionID        uint                 `json:"prediction_id"`
	TenantID            uint                 `json:"tenant_id"`
	RiskScore           int                  `json:"risk_score"`
	RiskLevel           string               `json:"risk_level"`
	ContributingFactors []ContributingFactor `json:"contributing_factors"`
	RecommendedActions  []RecommendedAction  `json:"recommended_actions"`
	Confidence          float64              `json:"confidence"`
	ModelVersion        string               `json:"model_version"`
}

type ChurnTrendPoint struct {
	ID        uint      `json:"id"`
	Date      time.Time `json:"date"`
	RiskScore int       `json:"risk_score"`
	RiskLevel string    `json:"risk_level"`
}

// HighRiskTenant is a fully decoded high-risk snapshot for the dashboard.
type HighRiskTenant struct {
	ID                  uint                 `json:"id"`
	TenantID            uint                 `json:"tenant_id"`
	RiskScore           int                  `json:"risk_score"`
	RiskLevel           string               `json:"risk_level"`
	ContributingFactors []ContributingFactor `json:"contributing_factors"`
	RecommendedActions  []RecommendedAction  `json:"recommended_actions"`
	ModelVersion        string               `json:"model_version"`
	CreatedAt           time.Time            `json:"created_at"`
}
