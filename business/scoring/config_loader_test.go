package scoring

import (
	"context"
	"errors"
	"testing"

	"tenantpulse/domain"

	"github.com/stretchr/testify/assert"
)

type fakeConfigRepo struct {
	row domain.ScoringConfig
	ok  bool
	err error

	upserted *domain.ScoringConfig
}

func (f *fakeConfigRepo) GetConfig(ctx context.Context, model string) (domain.ScoringConfig, bool, error) {
	return f.row, f.ok, f.err
}

func (f *fakeConfigRepo) UpsertConfig(ctx context.Context, cfg domain.ScoringConfig) error {
	f.upserted = &cfg
	return nil
}

func TestLoadModelConfigNoOverride(t *testing.T) {
	cfg := loadModelConfig(context.Background(), &fakeConfigRepo{}, ModelChurn, DefaultChurnConfig())

	assert.Equal(t, DefaultChurnConfig(), cfg)
}

func TestLoadModelConfigRepoErrorFallsBack(t *testing.T) {
	repo := &fakeConfigRepo{err: errors.New("db down")}

	cfg := loadModelConfig(context.Background(), repo, ModelChurn, DefaultChurnConfig())

	assert.Equal(t, DefaultChurnConfig(), cfg)
}

func TestLoadModelConfigNilRepo(t *testing.T) {
	cfg := loadModelConfig(context.Background(), nil, ModelLead, DefaultLeadConfig())

	assert.Equal(t, DefaultLeadConfig(), cfg)
}

func TestLoadModelConfigMergesWeights(t *testing.T) {
	repo := &fakeConfigRepo{
		row: domain.ScoringConfig{
			Model:      ModelChurn,
			WeightsRaw: []byte(`{"inactivity": 0.5}`),
		},
		ok: true,
	}

	cfg := loadModelConfig(context.Background(), repo, ModelChurn, DefaultChurnConfig())

	assert.Equal(t, 0.5, cfg.Weights[FeatureInactivity])
	// untouched weights keep their defaults
	assert.Equal(t, 0.25, cfg.Weights[FeaturePaymentFailures])
}

func TestLoadModelConfigIgnoresUnknownThresholdLabels(t *testing.T) {
	repo := &fakeConfigRepo{
		row: domain.ScoringConfig{
			Model:         ModelChurn,
			ThresholdsRaw: []byte(`{"high": 70, "bogus": 5}`),
		},
		ok: true,
	}

	cfg := loadModelConfig(context.Background(), repo, ModelChurn, DefaultChurnConfig())

	assert.Equal(t, 70, cfg.Thresholds[domain.RiskHigh])
	_, hasBogus := cfg.Thresholds["bogus"]
	assert.False(t, hasBogus)
}

func TestLoadModelConfigMalformedJSONFallsBack(t *testing.T) {
	repo := &fakeConfigRepo{
		row: domain.ScoringConfig{
			Model:      ModelChurn,
			WeightsRaw: []byte(`{not json`),
		},
		ok: true,
	}

	cfg := loadModelConfig(context.Background(), repo, ModelChurn, DefaultChurnConfig())

	assert.Equal(t, DefaultChurnConfig().Weights, cfg.Weights)
}

func TestConfigServiceRejectsUnknownModel(t *testing.T) {
	svc := NewConfigService(&fakeConfigRepo{})

	_, err := svc.EffectiveConfig(context.Background(), "fraud")
	assert.ErrorIs(t, err, ErrUnknownModel)
}

func TestConfigServiceUpdateValidates(t *testing.T) {
	svc := NewConfigService(&fakeConfigRepo{})

	_, err := svc.UpdateConfig(context.Background(), ModelChurn, Config{
		Weights: map[string]float64{FeatureInactivity: -1},
	})
	assert.Error(t, err)

	_, err = svc.UpdateConfig(context.Background(), ModelChurn, Config{
		Thresholds: map[string]int{"bogus": 10},
	})
	assert.Error(t, err)
}

func TestConfigServiceUpdatePersists(t *testing.T) {
	repo := &fakeConfigRepo{}
	svc := NewConfigService(repo)

	_, err := svc.UpdateConfig(context.Background(), ModelChurn, Config{
		Weights: map[string]float64{FeatureInactivity: 0.5},
	})
	assert.NoError(t, err)
	assert.NotNil(t, repo.upserted)
	assert.Equal(t, ModelChurn, repo.upserted.Model)
	assert.JSONEq(t, `{"inactivity": 0.5}`, string(repo.upserted.WeightsRaw))
}
