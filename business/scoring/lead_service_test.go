package scoring

import (
	"context"
	"sync"
	"testing"
	"time"

	"tenantpulse/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeUserRepo struct {
	users map[uint]domain.User
}

func (f *fakeUserRepo) FindByID(ctx context.Context, id uint) (domain.User, bool, error) {
	user, ok := f.users[id]
	return user, ok, nil
}

type fakeLeadScoreRepo struct {
	mu     sync.Mutex
	rows   map[uint]domain.LeadScore
	nextID uint
}

func newFakeLeadScoreRepo() *fakeLeadScoreRepo {
	return &fakeLeadScoreRepo{rows: make(map[uint]domain.LeadScore)}
}

func (f *fakeLeadScoreRepo) FindByUserID(ctx context.Context, userID uint) (*domain.LeadScore, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	row, ok := f.rows[userID]
	if !ok {
		return nil, nil
	}
	copied := row
	return &copied, nil
}

func (f *fakeLeadScoreRepo) Create(ctx context.Context, score *domain.LeadScore) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.nextID++
	score.ID = f.nextID
	score.UpdatedAt = time.Now()
	f.rows[score.UserID] = *score
	return nil
}

func (f *fakeLeadScoreRepo) Update(ctx context.Context, score *domain.LeadScore) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	score.UpdatedAt = time.Now()
	f.rows[score.UserID] = *score
	return nil
}

func (f *fakeLeadScoreRepo) FindTop(ctx context.Context, limit int) ([]domain.LeadScore, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []domain.LeadScore
	for _, row := range f.rows {
		out = append(out, row)
	}
	for i := 0; i < len(out); i++ {
		for j := i + 1; j < len(out); j++ {
			if out[j].TotalScore > out[i].TotalScore {
				out[i], out[j] = out[j], out[i]
			}
		}
	}
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (f *fakeLeadScoreRepo) FindByQualification(ctx context.Context, qualification string) ([]domain.LeadScore, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []domain.LeadScore
	for _, row := range f.rows {
		if row.Qualification == qualification {
			out = append(out, row)
		}
	}
	return out, nil
}

func newLeadFixture(activity *fakeActivityRepo, users map[uint]domain.User) (*LeadService, *fakeLeadScoreRepo) {
	scoreRepo := newFakeLeadScoreRepo()
	svc := NewLeadService(&fakeUserRepo{users: users}, scoreRepo, &fakeConfigRepo{}, NewFeatureStore(activity))
	return svc, scoreRepo
}

func TestScoreUserUnknown(t *testing.T) {
	svc, _ := newLeadFixture(&fakeActivityRepo{}, map[uint]domain.User{})

	_, err := svc.ScoreUser(context.Background(), 404)
	assert.ErrorIs(t, err, ErrSubjectNotFound)
}

func TestScoreUserSingleRow(t *testing.T) {
	users := map[uint]domain.User{
		7: {ID: 7, FullName: "Dana Smith", Email: "dana@example.com", LastSeenAt: time.Now()},
	}
	svc, repo := newLeadFixture(&fakeActivityRepo{userCount: 10}, users)

	first, err := svc.ScoreUser(context.Background(), 7)
	require.NoError(t, err)
	second, err := svc.ScoreUser(context.Background(), 7)
	require.NoError(t, err)

	assert.Len(t, repo.rows, 1, "rescoring must overwrite, never append")
	assert.Equal(t, first.LeadScoreID, second.LeadScoreID)
}

func TestScoreUserResultShape(t *testing.T) {
	users := map[uint]domain.User{
		7: {
			ID:         7,
			FullName:   "Dana Smith",
			Email:      "dana@example.com",
			Company:    "Acme",
			Phone:      "555-0100",
			JobTitle:   "VP Ops",
			LastSeenAt: time.Now(),
		},
	}
	activity := &fakeActivityRepo{
		userCount: 30,
		userEvents: map[string]int64{
			domain.EventDemoRequest: 2,
			domain.EventEmailOpen:   5,
		},
	}
	svc, _ := newLeadFixture(activity, users)

	result, err := svc.ScoreUser(context.Background(), 7)
	require.NoError(t, err)

	assert.GreaterOrEqual(t, result.TotalScore, 0)
	assert.LessOrEqual(t, result.TotalScore, 100)
	assert.Len(t, result.ScoreBreakdown, 4)
	assert.Equal(t, "heuristic_v1", result.ModelVersion)
	// fully engaged, complete profile, heavy signals: this is a sales-ready lead
	assert.Equal(t, domain.QualificationSalesReady, result.Qualification)
}

func TestScoreUserDormantLead(t *testing.T) {
	users := map[uint]domain.User{
		8: {ID: 8, Email: "ghost@example.com"},
	}
	svc, _ := newLeadFixture(&fakeActivityRepo{}, users)

	result, err := svc.ScoreUser(context.Background(), 8)
	require.NoError(t, err)

	assert.Equal(t, domain.QualificationCold, result.Qualification)
}

func TestScoreUserConcurrentRescores(t *testing.T) {
	users := map[uint]domain.User{
		7: {ID: 7, Email: "dana@example.com", LastSeenAt: time.Now()},
	}
	svc, repo := newLeadFixture(&fakeActivityRepo{}, users)

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := svc.ScoreUser(context.Background(), 7)
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	assert.Len(t, repo.rows, 1, "concurrent rescores must still produce one row")
}

func TestGetLeadsByQualificationRejectsUnknownTier(t *testing.T) {
	svc, _ := newLeadFixture(&fakeActivityRepo{}, map[uint]domain.User{})

	_, err := svc.GetLeadsByQualification(context.Background(), "lukewarm")
	assert.ErrorIs(t, err, ErrInvalidQualification)
}

func TestGetLeadsByQualification(t *testing.T) {
	svc, repo := newLeadFixture(&fakeActivityRepo{}, map[uint]domain.User{})

	repo.rows[1] = domain.LeadScore{ID: 1, UserID: 1, TotalScore: 60, Qualification: domain.QualificationHot}
	repo.rows[2] = domain.LeadScore{ID: 2, UserID: 2, TotalScore: 10, Qualification: domain.QualificationCold}

	leads, err := svc.GetLeadsByQualification(context.Background(), domain.QualificationHot)
	require.NoError(t, err)
	require.Len(t, leads, 1)
	assert.Equal(t, uint(1), leads[0].UserID)
}

func TestGetTopLeadsOrdering(t *testing.T) {
	svc, repo := newLeadFixture(&fakeActivityRepo{}, map[uint]domain.User{})

	repo.rows[1] = domain.LeadScore{ID: 1, UserID: 1, TotalScore: 40, Qualification: domain.QualificationWarm}
	repo.rows[2] = domain.LeadScore{ID: 2, UserID: 2, TotalScore: 90, Qualification: domain.QualificationSalesReady}
	repo.rows[3] = domain.LeadScore{ID: 3, UserID: 3, TotalScore: 65, Qualification: domain.QualificationHot}

	leads, err := svc.GetTopLeads(context.Background(), 2)
	require.NoError(t, err)
	require.Len(t, leads, 2)
	assert.Equal(t, uint(2), leads[0].UserID)
	assert.Equal(t, uint(3), leads[1].UserID)
}

func TestGetTopLeadsMalformedBreakdown(t *testing.T) {
	svc, repo := newLeadFixture(&fakeActivityRepo{}, map[uint]domain.User{})

	repo.rows[1] = domain.LeadScore{
		ID:             1,
		UserID:         1,
		TotalScore:     50,
		Qualification:  domain.QualificationHot,
		ScoreBreakdown: []byte(`{broken`),
	}

	leads, err := svc.GetTopLeads(context.Background(), 10)
	require.NoError(t, err)
	require.Len(t, leads, 1)
	assert.NotNil(t, leads[0].ScoreBreakdown)
	assert.Empty(t, leads[0].ScoreBreakdown)
}
