package scoring

import (
	"context"
	"time"

	"tenantpulse/domain"
	"tenantpulse/pkg/logger"
)

// Feature fallback values, taken over from the heuristic model: a signal that
// cannot be read maps to a defined value, never to an error.
const (
	inactivityNoRecords  = 80.0
	inactivityZeroAccess = 90.0
	inactivityOnError    = 50.0
	adoptionOnError      = 30.0
	engagementZeroAccess = 5.0
	contractAgeUnknown   = 20.0
)

const (
	inactivityWindowDays = 30.0
	paymentWindowDays    = 90
	supportWindowDays    = 30
	adoptionWindowDays   = 30
	signalsWindowDays    = 90
)

// ActivityRepository is the behavioral data the feature store reads. All
// listing methods return newest-first.
type ActivityRepository interface {
	RecentByTenant(ctx context.Context, tenantID uint, limit int) ([]domain.ActivityEvent, error)
	CountByTenantSince(ctx context.Context, tenantID uint, eventType string, since time.Time) (int64, error)
	DistinctEventTypesByTenant(ctx context.Context, tenantID uint, since time.Time) ([]string, error)
	CountByUserSince(ctx context.Context, userID uint, since time.Time) (int64, error)
	CountByUserEventSince(ctx context.Context, userID uint, eventType string, since time.Time) (int64, error)
}

// adoptionCatalog is the set of product-surface event types a healthy tenant
// is expected to exercise. Adoption is the fraction of these seen recently.
var adoptionCatalog = []string{
	domain.EventLogin,
	domain.EventPageView,
	domain.EventFeatureUsed,
	domain.EventEmailOpen,
	domain.EventDemoRequest,
}

// FeatureStore turns raw activity records into normalized [0,100] feature
// values. It holds no state of its own; everything is a pure read/transform
// over the activity repository.
type FeatureStore struct {
	activityRepo ActivityRepository
	now          func() time.Time
}

func NewFeatureStore(activityRepo ActivityRepository) *FeatureStore {
	return &FeatureStore{
		activityRepo: activityRepo,
		now:          time.Now,
	}
}

// TenantFeatures computes the churn model features for a tenant.
func (f *FeatureStore) TenantFeatures(ctx context.Context, tenant domain.Tenant) map[string]float64 {
	if err := ctx.Err(); err != nil {
		return map[string]float64{}
	}

	return map[string]float64{
		FeatureInactivity:      f.inactivityScore(ctx, tenant.ID),
		FeaturePaymentFailures: f.paymentFailureScore(ctx, tenant.ID),
		FeatureSupportTickets:  f.supportTicketScore(ctx, tenant.ID),
		FeatureAdoption:        f.adoptionScore(ctx, tenant.ID),
		FeatureContractAge:     f.contractAgeScore(tenant),
	}
}

// LeadFeatures computes the lead model features for a user.
func (f *FeatureStore) LeadFeatures(ctx context.Context, user domain.User) map[string]float64 {
	if err := ctx.Err(); err != nil {
		return map[string]float64{}
	}

	return map[string]float64{
		FeatureEngagement:    f.engagementScore(user),
		FeatureProfile:       profileCompletenessScore(user),
		FeatureFrequency:     f.activityFrequencyScore(ctx, user.ID),
		FeatureBuyingSignals: f.buyingSignalsScore(ctx, user.ID),
	}
}

// inactivityScore grows with days since the tenant's most recent activity.
// 0 days = 0, 30+ days = 100. No records at all means a tenant nobody uses
// (80); a zero timestamp means a record that never carried a time (90).
func (f *FeatureStore) inactivityScore(ctx context.Context, tenantID uint) float64 {
	events, err := f.activityRepo.RecentByTenant(ctx, tenantID, 1)
	if err != nil {
		logger.Warn("Failed to read recent activity", "tenant_id", tenantID, "error", err)
		return inactivityOnError
	}

	if len(events) == 0 {
		return inactivityNoRecords
	}

	last := events[0].OccurredAt
	if last.IsZero() {
		return inactivityZeroAccess
	}

	days := f.now().Sub(last).Hours() / 24.0
	if days < 0 {
		days = 0
	}

	return clamp((days/inactivityWindowDays)*100.0, 0, 100)
}

// paymentFailureScore: 0 failures = 0, 1 = 33, 2 = 66, 3+ saturates.
func (f *FeatureStore) paymentFailureScore(ctx context.Context, tenantID uint) float64 {
	since := f.now().AddDate(0, 0, -paymentWindowDays)

	count, err := f.activityRepo.CountByTenantSince(ctx, tenantID, domain.EventPaymentFailed, since)
	if err != nil {
		logger.Warn("Failed to count payment failures", "tenant_id", tenantID, "error", err)
		return 0.0
	}

	return clamp(float64(count)*33.0, 0, 100)
}

// supportTicketScore saturates at 5 tickets in the window.
func (f *FeatureStore) supportTicketScore(ctx context.Context, tenantID uint) float64 {
	since := f.now().AddDate(0, 0, -supportWindowDays)

	count, err := f.activityRepo.CountByTenantSince(ctx, tenantID, domain.EventSupportTicket, since)
	if err != nil {
		logger.Warn("Failed to count support tickets", "tenant_id", tenantID, "error", err)
		return 10.0
	}

	return clamp((float64(count)/5.0)*100.0, 0, 100)
}

// adoptionScore is a risk signal: the fewer catalog event types the tenant
// exercised recently, the higher the value. Full adoption = 0, none = 100.
func (f *FeatureStore) adoptionScore(ctx context.Context, tenantID uint) float64 {
	since := f.now().AddDate(0, 0, -adoptionWindowDays)

	used, err := f.activityRepo.DistinctEventTypesByTenant(ctx, tenantID, since)
	if err != nil {
		logger.Warn("Failed to read adoption signals", "tenant_id", tenantID, "error", err)
		return adoptionOnError
	}

	seen := make(map[string]bool, len(used))
	for _, eventType := range used {
		seen[eventType] = true
	}

	adopted := 0
	for _, eventType := range adoptionCatalog {
		if seen[eventType] {
			adopted++
		}
	}

	rate := float64(adopted) / float64(len(adoptionCatalog))

	return clamp((1.0-rate)*100.0, 0, 100)
}

// contractAgeScore: fresh contracts carry the highest churn risk, veterans the
// lowest.
func (f *FeatureStore) contractAgeScore(tenant domain.Tenant) float64 {
	if tenant.ContractStartedAt.IsZero() {
		return contractAgeUnknown
	}

	days := f.now().Sub(tenant.ContractStartedAt).Hours() / 24.0
	switch {
	case days < 90:
		return 60.0
	case days < 365:
		return 30.0
	default:
		return 10.0
	}
}

// engagementScore decays with days since the user was last seen. Seen today =
// 100, 30+ days ago = 0. A zero last-seen means a user who never came back
// after signup.
func (f *FeatureStore) engagementScore(user domain.User) float64 {
	if user.LastSeenAt.IsZero() {
		return engagementZeroAccess
	}

	days := f.now().Sub(user.LastSeenAt).Hours() / 24.0
	if days < 0 {
		days = 0
	}

	return clamp(100.0-(days/30.0)*100.0, 0, 100)
}

func profileCompletenessScore(user domain.User) float64 {
	fields := []string{user.FullName, user.Email, user.Company, user.Phone, user.JobTitle}

	filled := 0
	for _, v := range fields {
		if v != "" {
			filled++
		}
	}

	return clamp(float64(filled)/float64(len(fields))*100.0, 0, 100)
}

// activityFrequencyScore saturates at 20 events in the last 30 days.
func (f *FeatureStore) activityFrequencyScore(ctx context.Context, userID uint) float64 {
	since := f.now().AddDate(0, 0, -30)

	count, err := f.activityRepo.CountByUserSince(ctx, userID, since)
	if err != nil {
		logger.Warn("Failed to count user activity", "user_id", userID, "error", err)
		return 0.0
	}

	return clamp(float64(count)*5.0, 0, 100)
}

// buyingSignalsScore weights explicit intent heavily: a demo request is worth
// 40, an email open 5.
func (f *FeatureStore) buyingSignalsScore(ctx context.Context, userID uint) float64 {
	since := f.now().AddDate(0, 0, -signalsWindowDays)

	demos, err := f.activityRepo.CountByUserEventSince(ctx, userID, domain.EventDemoRequest, since)
	if err != nil {
		logger.Warn("Failed to count demo requests", "user_id", userID, "error", err)
		demos = 0
	}

	opens, err := f.activityRepo.CountByUserEventSince(ctx, userID, domain.EventEmailOpen, since)
	if err != nil {
		logger.Warn("Failed to count email opens", "user_id", userID, "error", err)
		opens = 0
	}

	return clamp(float64(demos)*40.0+float64(opens)*5.0, 0, 100)
}

// orderedFactors turns a feature map into a stable contributing-factor list,
// following the given name order so results are deterministic.
func orderedFactors(features map[string]float64, weights map[string]float64, order []string) []domain.ContributingFactor {
	factors := make([]domain.ContributingFactor, 0, len(order))
	for _, name := range order {
		value, ok := features[name]
		if !ok {
			continue
		}
		factors = append(factors, domain.ContributingFactor{
			Factor: name,
			Score:  value,
			Weight: weights[name],
		})
	}
	return factors
}

var (
	churnFactorOrder = []string{
		FeatureInactivity,
		FeaturePaymentFailures,
		FeatureSupportTickets,
		FeatureAdoption,
		FeatureContractAge,
	}
	leadFactorOrder = []string{
		FeatureEngagement,
		FeatureProfile,
		FeatureFrequency,
		FeatureBuyingSignals,
	}
)
