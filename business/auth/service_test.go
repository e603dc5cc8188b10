package auth

import (
	"context"
	"testing"
	"time"

	"tenantpulse/domain"
	"tenantpulse/pkg/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeUserRepo struct {
	users map[string]domain.User
}

func (f *fakeUserRepo) FindByEmail(ctx context.Context, email string) (domain.User, bool, error) {
	user, ok := f.users[email]
	return user, ok, nil
}

type fakeSessionRepo struct {
	stored  map[string]bool
	revoked []string
}

func newFakeSessionRepo() *fakeSessionRepo {
	return &fakeSessionRepo{stored: make(map[string]bool)}
}

func (f *fakeSessionRepo) Store(ctx context.Context, userID uint, token string, ttl time.Duration) error {
	f.stored[token] = true
	return nil
}

func (f *fakeSessionRepo) Exists(ctx context.Context, userID uint, token string) (bool, error) {
	return f.stored[token], nil
}

func (f *fakeSessionRepo) Revoke(ctx context.Context, userID uint, token string) error {
	delete(f.stored, token)
	f.revoked = append(f.revoked, token)
	return nil
}

func newAuthFixture(t *testing.T) (*Service, *fakeSessionRepo) {
	t.Helper()
	utils.InitJWT("test-secret")

	hash, err := utils.HashPassword("hunter22")
	require.NoError(t, err)

	users := &fakeUserRepo{
		users: map[string]domain.User{
			"dana@example.com": {ID: 7, Email: "dana@example.com", Password: hash, Role: "admin"},
		},
	}
	sessions := newFakeSessionRepo()
	return NewService(users, sessions), sessions
}

func TestLoginSuccess(t *testing.T) {
	svc, sessions := newAuthFixture(t)

	result, err := svc.Login(context.Background(), "dana@example.com", "hunter22")
	require.NoError(t, err)

	assert.NotEmpty(t, result.Token)
	assert.True(t, sessions.stored[result.Token])
	assert.Empty(t, result.User.Password, "password hash must not leak in the response")

	claims, err := utils.ParseJWT(result.Token)
	require.NoError(t, err)
	assert.Equal(t, "7", claims.UserID)
	assert.Equal(t, "admin", claims.Role)
}

func TestLoginWrongPassword(t *testing.T) {
	svc, _ := newAuthFixture(t)

	_, err := svc.Login(context.Background(), "dana@example.com", "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLoginUnknownEmail(t *testing.T) {
	svc, _ := newAuthFixture(t)

	_, err := svc.Login(context.Background(), "nobody@example.com", "hunter22")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLogoutRevokesSession(t *testing.T) {
	svc, sessions := newAuthFixture(t)

	result, err := svc.Login(context.Background(), "dana@example.com", "hunter22")
	require.NoError(t, err)

	require.NoError(t, svc.Logout(context.Background(), 7, result.Token))

	live, err := svc.ValidateSession(context.Background(), 7, result.Token)
	require.NoError(t, err)
	assert.False(t, live)
	assert.Contains(t, sessions.revoked, result.Token)
}
