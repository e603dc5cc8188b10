package activity

import (
	"context"
	"errors"
	"testing"
	"time"

	"tenantpulse/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeEventRepo struct {
	created []domain.ActivityEvent
	err     error
}

func (f *fakeEventRepo) Create(ctx context.Context, event *domain.ActivityEvent) error {
	if f.err != nil {
		return f.err
	}
	f.created = append(f.created, *event)
	return nil
}

type fakeUserTouchRepo struct {
	touched map[uint]time.Time
	err     error
}

func (f *fakeUserTouchRepo) TouchLastSeen(ctx context.Context, userID uint, at time.Time) error {
	if f.err != nil {
		return f.err
	}
	if f.touched == nil {
		f.touched = make(map[uint]time.Time)
	}
	f.touched[userID] = at
	return nil
}

func TestRecordRejectsUnknownEventType(t *testing.T) {
	svc := NewService(&fakeEventRepo{}, &fakeUserTouchRepo{})

	_, err := svc.Record(context.Background(), domain.ActivityEvent{
		TenantID:  1,
		EventType: "teleport",
	})
	assert.ErrorIs(t, err, ErrUnknownEventType)
}

func TestRecordRequiresTenant(t *testing.T) {
	svc := NewService(&fakeEventRepo{}, &fakeUserTouchRepo{})

	_, err := svc.Record(context.Background(), domain.ActivityEvent{
		EventType: domain.EventLogin,
	})
	assert.Error(t, err)
}

func TestRecordDefaultsOccurredAt(t *testing.T) {
	repo := &fakeEventRepo{}
	svc := NewService(repo, &fakeUserTouchRepo{})

	stored, err := svc.Record(context.Background(), domain.ActivityEvent{
		TenantID:  1,
		EventType: domain.EventPageView,
	})
	require.NoError(t, err)

	assert.False(t, stored.OccurredAt.IsZero())
	require.Len(t, repo.created, 1)
}

func TestRecordTouchesUserLastSeen(t *testing.T) {
	users := &fakeUserTouchRepo{}
	svc := NewService(&fakeEventRepo{}, users)

	at := time.Date(2026, 8, 1, 9, 0, 0, 0, time.UTC)
	_, err := svc.Record(context.Background(), domain.ActivityEvent{
		TenantID:   1,
		UserID:     7,
		EventType:  domain.EventLogin,
		OccurredAt: at,
	})
	require.NoError(t, err)

	assert.Equal(t, at, users.touched[7])
}

func TestRecordTouchFailureIsNotFatal(t *testing.T) {
	users := &fakeUserTouchRepo{err: errors.New("db down")}
	svc := NewService(&fakeEventRepo{}, users)

	_, err := svc.Record(context.Background(), domain.ActivityEvent{
		TenantID:  1,
		UserID:    7,
		EventType: domain.EventLogin,
	})
	assert.NoError(t, err, "last-seen bump failure must not drop the event")
}

func TestRecordAnonymousEventSkipsTouch(t *testing.T) {
	users := &fakeUserTouchRepo{}
	svc := NewService(&fakeEventRepo{}, users)

	_, err := svc.Record(context.Background(), domain.ActivityEvent{
		TenantID:  1,
		EventType: domain.EventPaymentFailed,
	})
	require.NoError(t, err)

	assert.Empty(t, users.touched)
}
