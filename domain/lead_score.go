package domain

import "time"

// Lead qualification tiers, ordered cold to sales_ready.
const (
	QualificationCold       = "cold"
	QualificationWarm       = "warm"
	QualificationHot        = "hot"
	QualificationSalesReady = "sales_ready"
)

// LeadScore is the current scoring state of a user. Unlike churn predictions
// there is at most one row per user: rescoring overwrites it.
type LeadScore struct {
	ID             uint      `gorm:"primaryKey" json:"id"`
	UserID         uint      `gorm:"column:user_id;uniqueIndex;not null" json:"user_id"`
	TotalScore     int       `gorm:"column:total_score;not null" json:"total_score"`
	Qualification  string    `gorm:"column:qualification;index;not null" json:"qualification"`
	ScoreBreakdown []byte    `gorm:"column:score_breakdown;type:jsonb" json:"-"`
	Confidence     float64   `gorm:"column:confidence" json:"confidence"`
	ModelVersion   string    `gorm:"column:model_version" json:"model_version"`
	LastActivity   time.Time `gorm:"column:last_activity" json:"last_activity"`
	CreatedAt      time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt      time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (LeadScore) TableName() string {
	return "lead_scores"
}

// LeadScoreResult is the structured result returned by ScoreUser.
type LeadScoreResult struct {
	LeadScoreID    uint                 `json:"lead_score_id"`
	UserID         uint                 `json:"user_id"`
	TotalScore     int                  `json:"total_score"`
	Qualification  string               `json:"qualification"`
	ScoreBreakdown []ContributingFactor `json:"score_breakdown"`
	Confidence     float64              `json:"confidence"`
	ModelVersion   string               `json:"model_version"`
}

// TopLead is a decoded lead score row for listings.
type TopLead struct {
	ID             uint                 `json:"id"`
	UserID         uint                 `json:"user_id"`
	TotalScore     int                  `json:"total_score"`
	Qualification  string               `json:"qualification"`
	ScoreBreakdown []ContributingFactor `json:"score_breakdown"`
	ModelVersion   string               `json:"model_version"`
	LastActivity   time.Time            `json:"last_activity"`
	UpdatedAt      time.Time            `json:"updated_at"`
}
