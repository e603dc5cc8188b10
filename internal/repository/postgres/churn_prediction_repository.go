package postgres

import (
	"context"
	"fmt"
	"time"

	"tenantpulse/domain"

	"gorm.io/gorm"
)

type ChurnPredictionRepository struct {
	DB *gorm.DB
}

func NewChurnPredictionRepository(db *gorm.DB) *ChurnPredictionRepository {
	return &ChurnPredictionRepository{
		DB: db,
	}
}

func (r *ChurnPredictionRepository) Create(ctx context.Context, prediction *domain.ChurnPrediction) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("context error: %w", err)
	}

	if err := r.DB.WithContext(ctx).Create(prediction).Error; err != nil {
		return fmt.Errorf("failed to create churn prediction: %w", err)
	}

	return nil
}

func (r *ChurnPredictionRepository) FindByTenantSince(ctx context.Context, tenantID uint, since time.Time) ([]domain.ChurnPrediction, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	var predictions []domain.ChurnPrediction
	err := r.DB.WithContext(ctx).
		Where("tenant_id = ? AND created_at >= ?", tenantID, since).
		Order("created_at ASC").
		Find(&predictions).Error
	if err != nil {
		return nil, fmt.Errorf("failed to find churn predictions: %w", err)
	}

	return predictions, nil
}

// FindLatestHighRisk keeps only each tenant's most recent prediction, then
// filters by risk level, so a tenant that recovered since its last high score
// does not show up.
func (r *ChurnPredictionRepository) FindLatestHighRisk(ctx context.Context, levels []string, limit int) ([]domain.ChurnPrediction, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	latestPerTenant := r.DB.
		Model(&domain.ChurnPrediction{}).
		Select("MAX(id)").
		Group("tenant_id")

	var predictions []domain.ChurnPrediction
	err := r.DB.WithContext(ctx).
		Where("id IN (?)", latestPerTenant).
		Where("risk_level IN ?", levels).
		Order("risk_score DESC, created_at DESC").
		Limit(limit).
		Find(&predictions).Error
	if err != nil {
		return nil, fmt.Errorf("failed to find high risk predictions: %w", err)
	}

	return predictions, nil
}

func (r *ChurnPredictionRepository) CountByTenant(ctx context.Context, tenantID uint) (int64, error) {
	if err := ctx.Err(); err != nil {
		return 0, fmt.Errorf("context error: %w", err)
	}

	var count int64
	err := r.DB.WithContext(ctx).
		Model(&domain.ChurnPrediction{}).
		Where("tenant_id = ?", tenantID).
		Count(&count).Error
	if err != nil {
		return 0, fmt.Errorf("failed to count churn predictions: %w", err)
	}

	return count, nil
}
