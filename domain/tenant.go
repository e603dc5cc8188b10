package domain

import (
	"time"

	"gorm.io/gorm"
)

type Tenant struct {
	ID                uint           `gorm:"primaryKey" json:"id"`
	Name              string         `gorm:"column:name;not null" json:"name"`
	Plan              string         `gorm:"column:plan;default:starter" json:"plan"`
	Status            string         `gorm:"column:status;default:active" json:"status"`
	ContractStartedAt time.Time      `gorm:"column:contract_started_at" json:"contract_started_at"`
	CreatedAt         time.Time      `json:"created_at"`
	UpdatedAt         time.Time      `json:"updated_at"`
	DeletedAt         gorm.DeletedAt `gorm:"index" json:"-"`
}

func (Tenant) TableName() string {
	return "tenants"
}
