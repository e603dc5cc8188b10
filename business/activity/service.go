package activity

import (
	"context"
	"errors"
	"fmt"
	"time"

	"tenantpulse/domain"
	"tenantpulse/pkg/logger"
)

var ErrUnknownEventType = errors.New("unknown event type")

var knownEventTypes = map[string]bool{
	domain.EventLogin:         true,
	domain.EventPageView:      true,
	domain.EventFeatureUsed:   true,
	domain.EventPaymentFailed: true,
	domain.EventSupportTicket: true,
	domain.EventEmailOpen:     true,
	domain.EventDemoRequest:   true,
}

type EventRepository interface {
	Create(ctx context.Context, event *domain.ActivityEvent) error
}

// UserTouchRepository bumps the last-seen marker that feeds the engagement
// feature.
type UserTouchRepository interface {
	TouchLastSeen(ctx context.Context, userID uint, at time.Time) error
}

// Service ingests the behavioral events every scoring feature is derived
// from.
type Service struct {
	events EventRepository
	users  UserTouchRepository
	now    func() time.Time
}

func NewService(events EventRepository, users UserTouchRepository) *Service {
	return &Service{
		events: events,
		users:  users,
		now:    time.Now,
	}
}

// Record validates and persists one event. A user-attributed event also bumps
// the user's last-seen timestamp; failure to bump is logged, not fatal, since
// the event itself already carries the signal.
func (s *Service) Record(ctx context.Context, event domain.ActivityEvent) (domain.ActivityEvent, error) {
	if !knownEventTypes[event.EventType] {
		return domain.ActivityEvent{}, fmt.Errorf("event type %q: %w", event.EventType, ErrUnknownEventType)
	}
	if event.TenantID == 0 {
		return domain.ActivityEvent{}, errors.New("tenant id is required")
	}

	if event.OccurredAt.IsZero() {
		event.OccurredAt = s.now()
	}

	if err := s.events.Create(ctx, &event); err != nil {
		return domain.ActivityEvent{}, fmt.Errorf("store activity event: %w", err)
	}

	if event.UserID != 0 && s.users != nil {
		if err := s.users.TouchLastSeen(ctx, event.UserID, event.OccurredAt); err != nil {
			logger.Warn("Failed to bump user last seen", "user_id", event.UserID, "error", err)
		}
	}

	logger.Debug("Activity event recorded",
		"tenant_id", event.TenantID,
		"user_id", event.UserID,
		"event_type", event.EventType,
	)

	return event, nil
}
