package scoring

import (
	"context"
	"encoding/json"

	"tenantpulse/domain"
)

// loadModelConfig reads the persisted override for a model and merges it over
// the built-in defaults. Any error or missing row falls back silently to the
// defaults: scoring must never fail because configuration is absent.
func loadModelConfig(ctx context.Context, repo ConfigRepository, model string, defaultCfg Config) Config {
	if repo == nil {
		return defaultCfg
	}

	row, ok, err := repo.GetConfig(ctx, model)
	if err != nil || !ok {
		return defaultCfg
	}

	// start from defaults to keep sane fallbacks for any missing fields
	cfg := defaultCfg

	if row.ModelVersion != "" {
		cfg.ModelVersion = row.ModelVersion
	}

	weights := decodeWeights(row)
	if len(weights) > 0 {
		merged := make(map[string]float64, len(cfg.Weights))
		for name, w := range cfg.Weights {
			merged[name] = w
		}
		for name, w := range weights {
			if w >= 0 {
				merged[name] = w
			}
		}
		cfg.Weights = merged
	}

	thresholds := decodeThresholds(row)
	if len(thresholds) > 0 {
		merged := make(map[string]int, len(cfg.Thresholds))
		for label, min := range cfg.Thresholds {
			merged[label] = min
		}
		for label, min := range thresholds {
			if _, known := merged[label]; known {
				merged[label] = min
			}
		}
		cfg.Thresholds = merged
	}

	if row.ConfidenceBase > 0 {
		cfg.ConfidenceBase = row.ConfidenceBase
	}
	if row.ConfidenceStep > 0 {
		cfg.ConfidenceStep = row.ConfidenceStep
	}
	if row.ConfidenceMax > 0 {
		cfg.ConfidenceMax = row.ConfidenceMax
	}

	return cfg
}

func decodeWeights(row domain.ScoringConfig) map[string]float64 {
	if row.Weights != nil {
		return row.Weights
	}
	if len(row.WeightsRaw) == 0 {
		return nil
	}

	var weights map[string]float64
	if err := json.Unmarshal(row.WeightsRaw, &weights); err != nil {
		return nil
	}
	return weights
}

func decodeThresholds(row domain.ScoringConfig) map[string]int {
	if row.Thresholds != nil {
		return row.Thresholds
	}
	if len(row.ThresholdsRaw) == 0 {
		return nil
	}

	var thresholds map[string]int
	if err := json.Unmarshal(row.ThresholdsRaw, &thresholds); err != nil {
		return nil
	}
	return thresholds
}
