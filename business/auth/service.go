package auth

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"tenantpulse/domain"
	"tenantpulse/pkg/logger"
	"tenantpulse/pkg/utils"
)

var ErrInvalidCredentials = errors.New("invalid email or password")

const sessionTTL = 24 * time.Hour

type UserRepository interface {
	FindByEmail(ctx context.Context, email string) (domain.User, bool, error)
}

// SessionRepository tracks issued tokens so they can be revoked before their
// JWT expiry.
type SessionRepository interface {
	Store(ctx context.Context, userID uint, token string, ttl time.Duration) error
	Exists(ctx context.Context, userID uint, token string) (bool, error)
	Revoke(ctx context.Context, userID uint, token string) error
}

type Service struct {
	users    UserRepository
	sessions SessionRepository
}

func NewService(users UserRepository, sessions SessionRepository) *Service {
	return &Service{
		users:    users,
		sessions: sessions,
	}
}

type LoginResult struct {
	Token string      `json:"token"`
	User  domain.User `json:"user"`
}

// Login checks credentials and issues a JWT backed by a revocable session
// entry. Unknown email and wrong password return the same error so the
// endpoint does not leak which accounts exist.
func (s *Service) Login(ctx context.Context, email, password string) (LoginResult, error) {
	user, found, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		return LoginResult{}, fmt.Errorf("find user by email: %w", err)
	}
	if !found {
		return LoginResult{}, ErrInvalidCredentials
	}

	if !utils.CheckPassword(password, user.Password) {
		return LoginResult{}, ErrInvalidCredentials
	}

	token, err := utils.GenerateJWT(strconv.FormatUint(uint64(user.ID), 10), user.Role)
	if err != nil {
		return LoginResult{}, fmt.Errorf("generate token: %w", err)
	}

	if err := s.sessions.Store(ctx, user.ID, token, sessionTTL); err != nil {
		return LoginResult{}, fmt.Errorf("store session: %w", err)
	}

	logger.Info("User logged in", "user_id", user.ID, "role", user.Role)

	user.Password = ""

	return LoginResult{Token: token, User: user}, nil
}

// ValidateSession confirms the token is still live, i.e. was issued here and
// not revoked since.
func (s *Service) ValidateSession(ctx context.Context, userID uint, token string) (bool, error) {
	return s.sessions.Exists(ctx, userID, token)
}

// Logout revokes the session so the JWT stops working immediately.
func (s *Service) Logout(ctx context.Context, userID uint, token string) error {
	if err := s.sessions.Revoke(ctx, userID, token); err != nil {
		return fmt.Errorf("revoke session: %w", err)
	}

	logger.Info("User logged out", "user_id", userID)

	return nil
}
