package domain

import (
	"time"

	"gorm.io/datatypes"
)

// Behavioral event types recognized by the feature store.
const (
	EventLogin         = "login"
	EventPageView      = "page_view"
	EventFeatureUsed   = "feature_used"
	EventPaymentFailed = "payment_failed"
	EventSupportTicket = "support_ticket"
	EventEmailOpen     = "email_open"
	EventDemoRequest   = "demo_request"
)

type ActivityEvent struct {
	ID         uint              `gorm:"primaryKey" json:"id"`
	TenantID   uint              `gorm:"column:tenant_id;index;not null" json:"tenant_id"`
	UserID     uint              `gorm:"column:user_id;index" json:"user_id"`
	EventType  string            `gorm:"column:event_type;not null" json:"event_type"`
	OccurredAt time.Time         `gorm:"column:occurred_at;index" json:"occurred_at"`
	Context    datatypes.JSONMap `gorm:"column:context;type:jsonb" json:"context"`
	CreatedAt  time.Time         `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

func (ActivityEvent) TableName() string {
	return "activity_events"
}
