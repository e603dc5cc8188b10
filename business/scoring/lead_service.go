package scoring

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"tenantpulse/domain"
	"tenantpulse/pkg/logger"
)

var validQualifications = map[string]bool{
	domain.QualificationCold:       true,
	domain.QualificationWarm:       true,
	domain.QualificationHot:        true,
	domain.QualificationSalesReady: true,
}

type UserRepository interface {
	FindByID(ctx context.Context, id uint) (domain.User, bool, error)
}

type LeadScoreRepository interface {
	// FindByUserID returns nil when the user has no score yet.
	FindByUserID(ctx context.Context, userID uint) (*domain.LeadScore, error)
	Create(ctx context.Context, score *domain.LeadScore) error
	Update(ctx context.Context, score *domain.LeadScore) error
	// FindTop returns the highest-scoring leads, best first.
	FindTop(ctx context.Context, limit int) ([]domain.LeadScore, error)
	FindByQualification(ctx context.Context, qualification string) ([]domain.LeadScore, error)
}

// LeadService calculates and serves lead scores. Unlike churn predictions,
// a lead score is a single row per user that gets overwritten on each
// recalculation; per-user locking keeps concurrent rescores from racing the
// find-then-write sequence into duplicate rows.
type LeadService struct {
	userRepo   UserRepository
	scoreRepo  LeadScoreRepository
	configRepo ConfigRepository
	features   *FeatureStore

	mu    sync.Mutex
	locks map[uint]*sync.Mutex
}

func NewLeadService(
	userRepo UserRepository,
	scoreRepo LeadScoreRepository,
	configRepo ConfigRepository,
	features *FeatureStore,
) *LeadService {
	return &LeadService{
		userRepo:   userRepo,
		scoreRepo:  scoreRepo,
		configRepo: configRepo,
		features:   features,
		locks:      make(map[uint]*sync.Mutex),
	}
}

func (s *LeadService) userLock(userID uint) *sync.Mutex {
	s.mu.Lock()
	defer s.mu.Unlock()

	lock, ok := s.locks[userID]
	if !ok {
		lock = &sync.Mutex{}
		s.locks[userID] = lock
	}
	return lock
}

// ScoreUser recalculates the lead score for a user and upserts the single
// per-user row.
func (s *LeadService) ScoreUser(ctx context.Context, userID uint) (domain.LeadScoreResult, error) {
	user, found, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return domain.LeadScoreResult{}, fmt.Errorf("find user %d: %w", userID, err)
	}
	if !found {
		return domain.LeadScoreResult{}, fmt.Errorf("user %d: %w", userID, ErrSubjectNotFound)
	}

	cfg := loadModelConfig(ctx, s.configRepo, ModelLead, DefaultLeadConfig())

	features := s.features.LeadFeatures(ctx, user)
	score := aggregateScore(features, cfg.Weights)
	qualification := classifyQualification(score, cfg)
	breakdown := orderedFactors(features, cfg.Weights, leadFactorOrder)

	breakdownJSON, err := json.Marshal(breakdown)
	if err != nil {
		return domain.LeadScoreResult{}, fmt.Errorf("marshal score breakdown: %w", err)
	}

	lock := s.userLock(userID)
	lock.Lock()
	defer lock.Unlock()

	existing, err := s.scoreRepo.FindByUserID(ctx, userID)
	if err != nil {
		return domain.LeadScoreResult{}, fmt.Errorf("find lead score for user %d: %w", userID, err)
	}

	// Confidence grows with how much we have observed the user doing, not
	// with how often we rescored.
	activityCount, err := s.features.activityRepo.CountByUserSince(ctx, userID, user.CreatedAt)
	if err != nil {
		logger.Warn("Failed to count user activity for confidence", "user_id", userID, "error", err)
		activityCount = 0
	}
	confidence := estimateConfidence(activityCount, cfg)

	row := domain.LeadScore{
		UserID:         userID,
		TotalScore:     score,
		Qualification:  qualification,
		ScoreBreakdown: breakdownJSON,
		Confidence:     confidence,
		ModelVersion:   cfg.ModelVersion,
		LastActivity:   user.LastSeenAt,
	}

	if existing != nil {
		row.ID = existing.ID
		row.CreatedAt = existing.CreatedAt
		if err := s.scoreRepo.Update(ctx, &row); err != nil {
			return domain.LeadScoreResult{}, fmt.Errorf("update lead score for user %d: %w", userID, err)
		}
	} else {
		if err := s.scoreRepo.Create(ctx, &row); err != nil {
			return domain.LeadScoreResult{}, fmt.Errorf("store lead score for user %d: %w", userID, err)
		}
	}

	LeadScoresTotal.WithLabelValues(qualification).Inc()

	logger.Info("Lead score calculated",
		"user_id", userID,
		"total_score", score,
		"qualification", qualification,
		"confidence", confidence,
		"model_version", cfg.ModelVersion,
	)

	return domain.LeadScoreResult{
		LeadScoreID:    row.ID,
		UserID:         userID,
		TotalScore:     score,
		Qualification:  qualification,
		ScoreBreakdown: breakdown,
		Confidence:     confidence,
		ModelVersion:   cfg.ModelVersion,
	}, nil
}

// GetTopLeads returns the best current leads, highest score first.
func (s *LeadService) GetTopLeads(ctx context.Context, limit int) ([]domain.TopLead, error) {
	if limit <= 0 {
		limit = 10
	}

	scores, err := s.scoreRepo.FindTop(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("load top leads: %w", err)
	}

	return toTopLeads(scores), nil
}

// GetLeadsByQualification lists leads in one qualification tier. An unknown
// tier is rejected before any query runs.
func (s *LeadService) GetLeadsByQualification(ctx context.Context, qualification string) ([]domain.TopLead, error) {
	if !validQualifications[qualification] {
		return nil, fmt.Errorf("qualification %q: %w", qualification, ErrInvalidQualification)
	}

	scores, err := s.scoreRepo.FindByQualification(ctx, qualification)
	if err != nil {
		return nil, fmt.Errorf("load %s leads: %w", qualification, err)
	}

	return toTopLeads(scores), nil
}

func toTopLeads(scores []domain.LeadScore) []domain.TopLead {
	leads := make([]domain.TopLead, 0, len(scores))
	for _, sc := range scores {
		leads = append(leads, domain.TopLead{
			ID:             sc.ID,
			UserID:         sc.UserID,
			TotalScore:     sc.TotalScore,
			Qualification:  sc.Qualification,
			ScoreBreakdown: decodeFactors(sc.ScoreBreakdown),
			ModelVersion:   sc.ModelVersion,
			LastActivity:   sc.LastActivity,
			UpdatedAt:      sc.UpdatedAt,
		})
	}
	return leads
}
