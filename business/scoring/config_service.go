package scoring

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"tenantpulse/domain"
	"tenantpulse/pkg/logger"
)

var ErrUnknownModel = errors.New("unknown scoring model")

// ConfigService exposes the effective scoring configuration for inspection
// and lets operators override weights and thresholds per model.
type ConfigService struct {
	repo ConfigRepository
}

func NewConfigService(repo ConfigRepository) *ConfigService {
	return &ConfigService{repo: repo}
}

func defaultsFor(model string) (Config, error) {
	switch model {
	case ModelChurn:
		return DefaultChurnConfig(), nil
	case ModelLead:
		return DefaultLeadConfig(), nil
	default:
		return Config{}, fmt.Errorf("model %q: %w", model, ErrUnknownModel)
	}
}

// EffectiveConfig returns the configuration a scoring run would actually use:
// built-in defaults with any persisted override merged on top.
func (s *ConfigService) EffectiveConfig(ctx context.Context, model string) (Config, error) {
	defaults, err := defaultsFor(model)
	if err != nil {
		return Config{}, err
	}

	return loadModelConfig(ctx, s.repo, model, defaults), nil
}

// UpdateConfig validates and persists an override for one model. Only the
// fields present in the update are overridden; scoring keeps defaults for the
// rest.
func (s *ConfigService) UpdateConfig(ctx context.Context, model string, update Config) (Config, error) {
	defaults, err := defaultsFor(model)
	if err != nil {
		return Config{}, err
	}

	for name, w := range update.Weights {
		if w < 0 {
			return Config{}, fmt.Errorf("weight for %q must not be negative", name)
		}
	}
	for label, min := range update.Thresholds {
		if _, known := defaults.Thresholds[label]; !known {
			return Config{}, fmt.Errorf("unknown threshold label %q for model %s", label, model)
		}
		if min < 0 || min > 100 {
			return Config{}, fmt.Errorf("threshold %q must be within [0,100]", label)
		}
	}
	if update.ConfidenceMax < 0 || update.ConfidenceMax > 1 {
		return Config{}, errors.New("confidence max must be within [0,1]")
	}

	row := domain.ScoringConfig{
		Model:          model,
		ModelVersion:   update.ModelVersion,
		ConfidenceBase: update.ConfidenceBase,
		ConfidenceStep: update.ConfidenceStep,
		ConfidenceMax:  update.ConfidenceMax,
	}

	if len(update.Weights) > 0 {
		raw, err := json.Marshal(update.Weights)
		if err != nil {
			return Config{}, fmt.Errorf("marshal weights: %w", err)
		}
		row.WeightsRaw = raw
	}
	if len(update.Thresholds) > 0 {
		raw, err := json.Marshal(update.Thresholds)
		if err != nil {
			return Config{}, fmt.Errorf("marshal thresholds: %w", err)
		}
		row.ThresholdsRaw = raw
	}

	if err := s.repo.UpsertConfig(ctx, row); err != nil {
		return Config{}, fmt.Errorf("store scoring config for %s: %w", model, err)
	}

	logger.Info("Scoring config updated", "model", model, "model_version", update.ModelVersion)

	return loadModelConfig(ctx, s.repo, model, defaults), nil
}
