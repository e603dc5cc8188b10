package domain

// ScoringConfig is the persisted weight/threshold override for one model
// ("churn" or "lead"). Weights and thresholds are stored as JSON so new
// factors can be added without a migration; decoding happens in the scoring
// package, merged over built-in defaults.
type ScoringConfig struct {
	Model          string  `json:"model" gorm:"column:model;primaryKey"`
	ModelVersion   string  `json:"model_version" gorm:"column:model_version"`
	WeightsRaw     []byte  `json:"-" gorm:"column:weights;type:jsonb"`
	ThresholdsRaw  []byte  `json:"-" gorm:"column:thresholds;type:jsonb"`
	ConfidenceBase float64 `json:"confidence_base" gorm:"column:confidence_base"`
	ConfidenceStep float64 `json:"confidence_step" gorm:"column:confidence_step"`
	ConfidenceMax  float64 `json:"confidence_max" gorm:"column:confidence_max"`

	Weights    map[string]float64 `json:"weights" gorm:"-"`
	Thresholds map[string]int     `json:"thresholds" gorm:"-"`
}

func (ScoringConfig) TableName() string {
	return "scoring_configs"
}
