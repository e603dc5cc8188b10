package postgres

import (
	"context"
	"fmt"
	"time"

	"tenantpulse/domain"

	"gorm.io/gorm"
)

type ActivityRepository struct {
	DB *gorm.DB
}

func NewActivityRepository(db *gorm.DB) *ActivityRepository {
	return &ActivityRepository{
		DB: db,
	}
}

func (r *ActivityRepository) Create(ctx context.Context, event *domain.ActivityEvent) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("context error: %w", err)
	}

	if err := r.DB.WithContext(ctx).Create(event).Error; err != nil {
		return fmt.Errorf("failed to create activity event: %w", err)
	}

	return nil
}

func (r *ActivityRepository) RecentByTenant(ctx context.Context, tenantID uint, limit int) ([]domain.ActivityEvent, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	var events []domain.ActivityEvent
	err := r.DB.WithContext(ctx).
		Where("tenant_id = ?", tenantID).
		Order("occurred_at DESC").
		Limit(limit).
		Find(&events).Error
	if err != nil {
		return nil, fmt.Errorf("failed to find recent activity: %w", err)
	}

	return events, nil
}

func (r *ActivityRepository) CountByTenantSince(ctx context.Context, tenantID uint, eventType string, since time.Time) (int64, error) {
	if err := ctx.Err(); err != nil {
		return 0, fmt.Errorf("context error: %w", err)
	}

	var count int64
	err := r.DB.WithContext(ctx).
		Model(&domain.ActivityEvent{}).
		Where("tenant_id = ? AND event_type = ? AND occurred_at >= ?", tenantID, eventType, since).
		Count(&count).Error
	if err != nil {
		return 0, fmt.Errorf("failed to count tenant events: %w", err)
	}

	return count, nil
}

func (r *ActivityRepository) DistinctEventTypesByTenant(ctx context.Context, tenantID uint, since time.Time) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	var eventTypes []string
	err := r.DB.WithContext(ctx).
		Model(&domain.ActivityEvent{}).
		Where("tenant_id = ? AND occurred_at >= ?", tenantID, since).
		Distinct().
		Pluck("event_type", &eventTypes).Error
	if err != nil {
		return nil, fmt.Errorf("failed to find distinct event types: %w", err)
	}

	return eventTypes, nil
}

func (r *ActivityRepository) CountByUserSince(ctx context.Context, userID uint, since time.Time) (int64, error) {
	if err := ctx.Err(); err != nil {
		return 0, fmt.Errorf("context error: %w", err)
	}

	var count int64
	err := r.DB.WithContext(ctx).
		Model(&domain.ActivityEvent{}).
		Where("user_id = ? AND occurred_at >= ?", userID, since).
		Count(&count).Error
	if err != nil {
		return 0, fmt.Errorf("failed to count user events: %w", err)
	}

	return count, nil
}

func (r *ActivityRepository) CountByUserEventSince(ctx context.Context, userID uint, eventType string, since time.Time) (int64, error) {
	if err := ctx.Err(); err != nil {
		return 0, fmt.Errorf("context error: %w", err)
	}

	var count int64
	err := r.DB.WithContext(ctx).
		Model(&domain.ActivityEvent{}).
		Where("user_id = ? AND event_type = ? AND occurred_at >= ?", userID, eventType, since).
		Count(&count).Error
	if err != nil {
		return 0, fmt.Errorf("failed to count user events by type: %w", err)
	}

	return count, nil
}
