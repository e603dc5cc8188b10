package scoring

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"tenantpulse/domain"
	"tenantpulse/pkg/logger"
)

const retentionTriggerTimeout = 5 * time.Second

type TenantRepository interface {
	FindByID(ctx context.Context, id uint) (domain.Tenant, bool, error)
}

type ChurnPredictionRepository interface {
	Create(ctx context.Context, prediction *domain.ChurnPrediction) error
	// FindByTenantSince returns predictions for a tenant created at or after
	// the cutoff, oldest first.
	FindByTenantSince(ctx context.Context, tenantID uint, since time.Time) ([]domain.ChurnPrediction, error)
	// FindLatestHighRisk returns the newest prediction per tenant, restricted
	// to the given risk levels, newest first, at most limit rows.
	FindLatestHighRisk(ctx context.Context, levels []string, limit int) ([]domain.ChurnPrediction, error)
	CountByTenant(ctx context.Context, tenantID uint) (int64, error)
}

// RetentionNotifier alerts the retention team about a freshly calculated
// high-risk prediction. Implementations must be safe for concurrent use.
type RetentionNotifier interface {
	TriggerResponse(ctx context.Context, tenantID uint, tenantName string, riskScore int, riskLevel string) error
}

// ChurnService calculates and serves tenant churn risk predictions. Every
// calculation appends a new row so the history stays queryable as a trend.
type ChurnService struct {
	tenantRepo     TenantRepository
	predictionRepo ChurnPredictionRepository
	configRepo     ConfigRepository
	features       *FeatureStore
	notifier       RetentionNotifier
}

func NewChurnService(
	tenantRepo TenantRepository,
	predictionRepo ChurnPredictionRepository,
	configRepo ConfigRepository,
	features *FeatureStore,
	notifier RetentionNotifier,
) *ChurnService {
	return &ChurnService{
		tenantRepo:     tenantRepo,
		predictionRepo: predictionRepo,
		configRepo:     configRepo,
		features:       features,
		notifier:       notifier,
	}
}

// CalculateChurnRisk runs the full pipeline for one tenant: load features,
// aggregate, classify, derive actions, persist, and notify when the result is
// high or critical. The notification runs in the background and never affects
// the returned result.
func (s *ChurnService) CalculateChurnRisk(ctx context.Context, tenantID uint) (domain.ChurnRiskResult, error) {
	tenant, found, err := s.tenantRepo.FindByID(ctx, tenantID)
	if err != nil {
		return domain.ChurnRiskResult{}, fmt.Errorf("find tenant %d: %w", tenantID, err)
	}
	if !found {
		return domain.ChurnRiskResult{}, fmt.Errorf("tenant %d: %w", tenantID, ErrSubjectNotFound)
	}

	cfg := loadModelConfig(ctx, s.configRepo, ModelChurn, DefaultChurnConfig())

	features := s.features.TenantFeatures(ctx, tenant)
	score := aggregateScore(features, cfg.Weights)
	riskLevel := classifyRiskLevel(score, cfg)
	factors := orderedFactors(features, cfg.Weights, churnFactorOrder)
	actions := recommendActions(riskLevel, factors)

	priorCount, err := s.predictionRepo.CountByTenant(ctx, tenantID)
	if err != nil {
		logger.Warn("Failed to count prior predictions", "tenant_id", tenantID, "error", err)
		priorCount = 0
	}
	confidence := estimateConfidence(priorCount, cfg)

	factorsJSON, err := json.Marshal(factors)
	if err != nil {
		return domain.ChurnRiskResult{}, fmt.Errorf("marshal contributing factors: %w", err)
	}
	actionsJSON, err := json.Marshal(actions)
	if err != nil {
		return domain.ChurnRiskResult{}, fmt.Errorf("marshal recommended actions: %w", err)
	}
	featuresJSON, err := json.Marshal(features)
	if err != nil {
		return domain.ChurnRiskResult{}, fmt.Errorf("marshal feature snapshot: %w", err)
	}

	prediction := domain.ChurnPrediction{
		TenantID:            tenantID,
		RiskScore:           score,
		RiskLevel:           riskLevel,
		ContributingFactors: factorsJSON,
		RecommendedActions:  actionsJSON,
		FeaturesSnapshot:    featuresJSON,
		Confidence:          confidence,
		ModelVersion:        cfg.ModelVersion,
	}

	if err := s.predictionRepo.Create(ctx, &prediction); err != nil {
		return domain.ChurnRiskResult{}, fmt.Errorf("store churn prediction: %w", err)
	}

	ChurnPredictionsTotal.WithLabelValues(riskLevel).Inc()

	if s.notifier != nil && (riskLevel == domain.RiskHigh || riskLevel == domain.RiskCritical) {
		go s.triggerRetention(tenant, score, riskLevel)
	}

	logger.Info("Churn prediction calculated",
		"tenant_id", tenantID,
		"risk_score", score,
		"risk_level", riskLevel,
		"confidence", confidence,
		"model_version", cfg.ModelVersion,
	)

	return domain.ChurnRiskResult{
		PredictionID:        prediction.ID,
		TenantID:            tenantID,
		RiskScore:           score,
		RiskLevel:           riskLevel,
		ContributingFactors: factors,
		RecommendedActions:  actions,
		Confidence:          confidence,
		ModelVersion:        cfg.ModelVersion,
	}, nil
}

// triggerRetention runs detached from the request; failures are logged and
// swallowed because a missed alert must not fail the prediction.
func (s *ChurnService) triggerRetention(tenant domain.Tenant, score int, riskLevel string) {
	ctx, cancel := context.WithTimeout(context.Background(), retentionTriggerTimeout)
	defer cancel()

	if err := s.notifier.TriggerResponse(ctx, tenant.ID, tenant.Name, score, riskLevel); err != nil {
		logger.Warn("Retention trigger failed", "tenant_id", tenant.ID, "risk_level", riskLevel, "error", err)
	}
}

// GetChurnTrend returns the tenant's prediction history over the trailing
// window, oldest first. A tenant with no predictions yields an empty slice.
func (s *ChurnService) GetChurnTrend(ctx context.Context, tenantID uint, days int) ([]domain.ChurnTrendPoint, error) {
	if days <= 0 {
		days = 30
	}

	_, found, err := s.tenantRepo.FindByID(ctx, tenantID)
	if err != nil {
		return nil, fmt.Errorf("find tenant %d: %w", tenantID, err)
	}
	if !found {
		return nil, fmt.Errorf("tenant %d: %w", tenantID, ErrSubjectNotFound)
	}

	since := time.Now().AddDate(0, 0, -days)
	predictions, err := s.predictionRepo.FindByTenantSince(ctx, tenantID, since)
	if err != nil {
		return nil, fmt.Errorf("load churn trend for tenant %d: %w", tenantID, err)
	}

	points := make([]domain.ChurnTrendPoint, 0, len(predictions))
	for _, p := range predictions {
		points = append(points, domain.ChurnTrendPoint{
			ID:        p.ID,
			Date:      p.CreatedAt,
			RiskScore: p.RiskScore,
			RiskLevel: p.RiskLevel,
		})
	}

	return points, nil
}

// GetHighRiskTenants returns, for each tenant whose most recent prediction is
// high or critical, that prediction with its factors and actions decoded.
func (s *ChurnService) GetHighRiskTenants(ctx context.Context, limit int) ([]domain.HighRiskTenant, error) {
	if limit <= 0 {
		limit = 20
	}

	levels := []string{domain.RiskHigh, domain.RiskCritical}
	predictions, err := s.predictionRepo.FindLatestHighRisk(ctx, levels, limit)
	if err != nil {
		return nil, fmt.Errorf("load high risk tenants: %w", err)
	}

	tenants := make([]domain.HighRiskTenant, 0, len(predictions))
	for _, p := range predictions {
		tenants = append(tenants, domain.HighRiskTenant{
			ID:                  p.ID,
			TenantID:            p.TenantID,
			RiskScore:           p.RiskScore,
			RiskLevel:           p.RiskLevel,
			ContributingFactors: decodeFactors(p.ContributingFactors),
			RecommendedActions:  decodeActions(p.RecommendedActions),
			ModelVersion:        p.ModelVersion,
			CreatedAt:           p.CreatedAt,
		})
	}

	return tenants, nil
}
