package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

type SessionData struct {
	UserID   uint      `json:"user_id"`
	Token    string    `json:"token"`
	IssuedAt time.Time `json:"issued_at"`
}

// SessionRepository backs JWTs with revocable Redis entries. A token is only
// accepted while its session key exists, so logout works without waiting for
// the JWT to expire.
type SessionRepository struct {
	client *redis.Client
}

func NewSessionRepository(client *redis.Client) *SessionRepository {
	return &SessionRepository{
		client: client,
	}
}

func sessionKey(userID uint, token string) string {
	return fmt.Sprintf("session:user:%d:%s", userID, token)
}

func (r *SessionRepository) Store(ctx context.Context, userID uint, token string, ttl time.Duration) error {
	data := SessionData{
		UserID:   userID,
		Token:    token,
		IssuedAt: time.Now(),
	}

	jsonData, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("failed to marshal session data: %w", err)
	}

	err = r.client.Set(ctx, sessionKey(userID, token), jsonData, ttl).Err()
	if err != nil {
		return fmt.Errorf("failed to store session in Redis: %w", err)
	}

	return nil
}

func (r *SessionRepository) Exists(ctx context.Context, userID uint, token string) (bool, error) {
	count, err := r.client.Exists(ctx, sessionKey(userID, token)).Result()
	if err != nil {
		return false, fmt.Errorf("failed to check session existence: %w", err)
	}

	return count > 0, nil
}

func (r *SessionRepository) Revoke(ctx context.Context, userID uint, token string) error {
	err := r.client.Del(ctx, sessionKey(userID, token)).Err()
	if err != nil {
		return fmt.Errorf("failed to revoke session: %w", err)
	}

	return nil
}
