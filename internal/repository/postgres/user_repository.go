package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"tenantpulse/domain"

	"gorm.io/gorm"
)

type UserRepository struct {
	DB *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{
		DB: db,
	}
}

func (r *UserRepository) Create(ctx context.Context, user *domain.User) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("context error: %w", err)
	}

	if err := r.DB.WithContext(ctx).Create(user).Error; err != nil {
		return fmt.Errorf("failed to create user: %w", err)
	}

	return nil
}

func (r *UserRepository) FindByID(ctx context.Context, id uint) (domain.User, bool, error) {
	if err := ctx.Err(); err != nil {
		return domain.User{}, false, fmt.Errorf("context error: %w", err)
	}

	var user domain.User

	err := r.DB.WithContext(ctx).First(&user, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.User{}, false, nil
		}
		return domain.User{}, false, fmt.Errorf("failed to find user: %w", err)
	}

	return user, true, nil
}

func (r *UserRepository) FindByEmail(ctx context.Context, email string) (domain.User, bool, error) {
	if err := ctx.Err(); err != nil {
		return domain.User{}, false, fmt.Errorf("context error: %w", err)
	}

	var user domain.User

	err := r.DB.WithContext(ctx).Where("email = ?", email).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.User{}, false, nil
		}
		return domain.User{}, false, fmt.Errorf("failed to find user by email: %w", err)
	}

	return user, true, nil
}

func (r *UserRepository) TouchLastSeen(ctx context.Context, userID uint, at time.Time) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("context error: %w", err)
	}

	err := r.DB.WithContext(ctx).
		Model(&domain.User{}).
		Where("id = ?", userID).
		Update("last_seen_at", at).Error
	if err != nil {
		return fmt.Errorf("failed to update user last seen: %w", err)
	}

	return nil
}
