package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const redisKeyPrefix = "session:"

type redisRecord struct {
	UserID    uuid.UUID `json:"user_id"`
	Flashes   []string  `json:"flashes,omitempty"`
	ExpiresAt time.Time `json:"expires_at"`
}

// RedisStore keeps sessions server-side; the cookie only carries the session ID.
type RedisStore struct {
	client *redis.Client
}

// NewRedisStore creates a Redis-backed store.
func NewRedisStore(client *redis.Client) *RedisStore {
	return &RedisStore{client: client}
}

// Load fetches the session stored under token.
func (s *RedisStore) Load(ctx context.Context, token string) (*Session, error) {
	if _, err := uuid.Parse(token); err != nil {
		return nil, ErrInvalidToken
	}
	raw, err := s.client.Get(ctx, redisKeyPrefix+token).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrInvalidToken
	}
	if err != nil {
		return nil, fmt.Errorf("redis get session: %w", err)
	}
	var rec redisRecord
	if err := json.Unmarshal(raw, &rec); err != nil {
		return nil, ErrInvalidToken
	}
	return &Session{ID: token, UserID: rec.UserID, Flashes: rec.Flashes, ExpiresAt: rec.ExpiresAt}, nil
}

// Save writes the session with ttl and drops the key it was rotated away from.
func (s *RedisStore) Save(ctx context.Context, sess *Session, ttl time.Duration) (string, error) {
	sess.ExpiresAt = time.Now().Add(ttl)
	raw, err := json.Marshal(redisRecord{UserID: sess.UserID, Flashes: sess.Flashes, ExpiresAt: sess.ExpiresAt})
	if err != nil {
		return "", fmt.Errorf("marshal session: %w", err)
	}
	pipe := s.client.TxPipeline()
	pipe.Set(ctx, redisKeyPrefix+sess.ID, raw, ttl)
	if sess.previousID != "" && sess.previousID != sess.ID {
		pipe.Del(ctx, redisKeyPrefix+sess.previousID)
	}
	if _, err := pipe.Exec(ctx); err != nil {
		return "", fmt.Errorf("redis save session: %w", err)
	}
	sess.previousID = ""
	return sess.ID, nil
}

// Destroy deletes the session and its pre-rotation key.
func (s *RedisStore) Destroy(ctx context.Context, sess *Session) error {
	keys := []string{redisKeyPrefix + sess.ID}
	if sess.previousID != "" {
		keys = append(keys, redisKeyPrefix+sess.previousID)
	}
	if err := s.client.Del(ctx, keys...).Err(); err != nil {
		return fmt.Errorf("redis delete session: %w", err)
	}
	sess.previousID = ""
	return nil
}
