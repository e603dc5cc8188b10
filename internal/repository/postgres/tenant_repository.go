package postgres

import (
	"context"
	"errors"
	"fmt"

	"tenantpulse/domain"

	"gorm.io/gorm"
)

type TenantRepository struct {
	DB *gorm.DB
}

func NewTenantRepository(db *gorm.DB) *TenantRepository {
	return &TenantRepository{
		DB: db,
	}
}

func (r *TenantRepository) Create(ctx context.Context, tenant *domain.Tenant) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("context error: %w", err)
	}

	if err := r.DB.WithContext(ctx).Create(tenant).Error; err != nil {
		return fmt.Errorf("failed to create tenant: %w", err)
	}

	return nil
}

func (r *TenantRepository) FindByID(ctx context.Context, id uint) (domain.Tenant, bool, error) {
	if err := ctx.Err(); err != nil {
		return domain.Tenant{}, false, fmt.Errorf("context error: %w", err)
	}

	var tenant domain.Tenant

	err := r.DB.WithContext(ctx).First(&tenant, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.Tenant{}, false, nil
		}
		return domain.Tenant{}, false, fmt.Errorf("failed to find tenant: %w", err)
	}

	return tenant, true, nil
}

func (r *TenantRepository) FindAll(ctx context.Context) ([]domain.Tenant, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	var tenants []domain.Tenant
	err := r.DB.WithContext(ctx).Order("id ASC").Find(&tenants).Error
	if err != nil {
		return nil, fmt.Errorf("failed to find tenants: %w", err)
	}

	return tenants, nil
}
