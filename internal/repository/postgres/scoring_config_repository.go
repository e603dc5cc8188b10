package postgres

import (
	"context"
	"errors"
	"fmt"

	"tenantpulse/domain"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ScoringConfigRepository struct {
	DB *gorm.DB
}

func NewScoringConfigRepository(db *gorm.DB) *ScoringConfigRepository {
	return &ScoringConfigRepository{
		DB: db,
	}
}

func (r *ScoringConfigRepository) GetConfig(ctx context.Context, model string) (domain.ScoringConfig, bool, error) {
	if err := ctx.Err(); err != nil {
		return domain.ScoringConfig{}, false, fmt.Errorf("context error: %w", err)
	}

	var cfg domain.ScoringConfig

	err := r.DB.WithContext(ctx).Where("model = ?", model).First(&cfg).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ScoringConfig{}, false, nil
		}
		return domain.ScoringConfig{}, false, fmt.Errorf("failed to find scoring config: %w", err)
	}

	return cfg, true, nil
}

func (r *ScoringConfigRepository) UpsertConfig(ctx context.Context, cfg domain.ScoringConfig) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("context error: %w", err)
	}

	err := r.DB.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "model"}},
			UpdateAll: true,
		}).
		Create(&cfg).Error
	if err != nil {
		return fmt.Errorf("failed to upsert scoring config: %w", err)
	}

	return nil
}
