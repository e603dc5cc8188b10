package postgres

import (
	"context"
	"errors"
	"fmt"

	"tenantpulse/domain"

	"gorm.io/gorm"
)

type LeadScoreRepository struct {
	DB *gorm.DB
}

func NewLeadScoreRepository(db *gorm.DB) *LeadScoreRepository {
	return &LeadScoreRepository{
		DB: db,
	}
}

func (r *LeadScoreRepository) FindByUserID(ctx context.Context, userID uint) (*domain.LeadScore, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	var score domain.LeadScore

	err := r.DB.WithContext(ctx).Where("user_id = ?", userID).First(&score).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find lead score: %w", err)
	}

	return &score, nil
}

func (r *LeadScoreRepository) Create(ctx context.Context, score *domain.LeadScore) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("context error: %w", err)
	}

	if err := r.DB.WithContext(ctx).Create(score).Error; err != nil {
		return fmt.Errorf("failed to create lead score: %w", err)
	}

	return nil
}

func (r *LeadScoreRepository) Update(ctx context.Context, score *domain.LeadScore) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("context error: %w", err)
	}

	if err := r.DB.WithContext(ctx).Save(score).Error; err != nil {
		return fmt.Errorf("failed to update lead score: %w", err)
	}

	return nil
}

func (r *LeadScoreRepository) FindTop(ctx context.Context, limit int) ([]domain.LeadScore, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	var scores []domain.LeadScore
	err := r.DB.WithContext(ctx).
		Order("total_score DESC, updated_at DESC").
		Limit(limit).
		Find(&scores).Error
	if err != nil {
		return nil, fmt.Errorf("failed to find top leads: %w", err)
	}

	return scores, nil
}

func (r *LeadScoreRepository) FindByQualification(ctx context.Context, qualification string) ([]domain.LeadScore, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	var scores []domain.LeadScore
	err := r.DB.WithContext(ctx).
		Where("qualification = ?", qualification).
		Order("total_score DESC").
		Find(&scores).Error
	if err != nil {
		return nil, fmt.Errorf("failed to find leads by qualification: %w", err)
	}

	return scores, nil
}
