package domain

import (
	"time"

	"gorm.io/gorm"
)

// User is both the lead being scored and the login principal for the ops API.
// Company/Phone/JobTitle feed the profile completeness feature.
type User struct {
	ID         uint           `gorm:"primaryKey" json:"id"`
	TenantID   uint           `gorm:"column:tenant_id;index" json:"tenant_id"`
	FullName   string         `gorm:"column:full_name;not null" json:"full_name"`
	Email      string         `gorm:"column:email;unique;not null" json:"email"`
	Company    string         `gorm:"column:company" json:"company"`
	Phone      string         `gorm:"column:phone" json:"phone"`
	JobTitle   string         `gorm:"column:job_title" json:"job_title"`
	Password   string         `gorm:"column:password" json:"-"`
	Role       string         `gorm:"column:role;default:member" json:"role"`
	LastSeenAt time.Time      `gorm:"column:last_seen_at" json:"last_seen_at"`
	CreatedAt  time.Time      `json:"created_at"`
	UpdatedAt  time.Time      `json:"updated_at"`
	DeletedAt  gorm.DeletedAt `gorm:"index" json:"-"`
}

func (User) TableName() string {
	return "users"
}
