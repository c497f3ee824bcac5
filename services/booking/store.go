package booking

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"washlane/models"
	"washlane/utils"

	"github.com/go-redis/redis/v8"
)

const (
	sessionKeyPrefix = "checkout:"
	submitKeyPrefix  = "checkout-submit:"

	// submitLockTTL bounds how long an unresolved submission blocks a retry.
	submitLockTTL = 30 * time.Second
)

// SessionStore persists checkout sessions between requests.
type SessionStore interface {
	Load(ctx context.Context, sessionID string) (*models.CheckoutSession, error)
	Save(ctx context.Context, session *models.CheckoutSession) error
	Delete(ctx context.Context, sessionID string) error
}

// SubmitLocker serializes submissions per session: Acquire reports false while
// an earlier unresolved submission still holds the lock.
type SubmitLocker interface {
	Acquire(ctx context.Context, sessionID string) (bool, error)
	Release(ctx context.Context, sessionID string) error
}

// RedisSessionStore stores sessions as JSON blobs with a TTL.
type RedisSessionStore struct{}

func NewRedisSessionStore() *RedisSessionStore {
	return &RedisSessionStore{}
}

func (r *RedisSessionStore) Load(ctx context.Context, sessionID string) (*models.CheckoutSession, error) {
	data, err := utils.GetSessionCacheClient().Get(ctx, sessionKeyPrefix+sessionID).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, ErrSessionNotFound
		}
		return nil, fmt.Errorf("failed to load checkout session: %w", err)
	}
	var session models.CheckoutSession
	if err := json.Unmarshal([]byte(data), &session); err != nil {
		return nil, fmt.Errorf("failed to parse checkout session: %w", err)
	}
	return &session, nil
}

func (r *RedisSessionStore) Save(ctx context.Context, session *models.CheckoutSession) error {
	data, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("failed to marshal checkout session: %w", err)
	}
	if err := utils.GetSessionCacheClient().Set(ctx, sessionKeyPrefix+session.SessionID, data, utils.SessionTTL()).Err(); err != nil {
		return fmt.Errorf("failed to store checkout session: %w", err)
	}
	return nil
}

func (r *RedisSessionStore) Delete(ctx context.Context, sessionID string) error {
	if err := utils.GetSessionCacheClient().Del(ctx, sessionKeyPrefix+sessionID).Err(); err != nil {
		return fmt.Errorf("failed to delete checkout session: %w", err)
	}
	return nil
}

// RedisSubmitLocker implements the single-in-flight guard with SETNX. The
// lock's TTL bounds the window an unresolved submission can block.
type RedisSubmitLocker struct{}

func NewRedisSubmitLocker() *RedisSubmitLocker {
	return &RedisSubmitLocker{}
}

func (r *RedisSubmitLocker) Acquire(ctx context.Context, sessionID string) (bool, error) {
	locked, err := utils.GetSessionCacheClient().SetNX(ctx, submitKeyPrefix+sessionID, "1", submitLockTTL).Result()
	if err != nil {
		return false, fmt.Errorf("failed to acquire submission lock: %w", err)
	}
	return locked, nil
}

func (r *RedisSubmitLocker) Release(ctx context.Context, sessionID string) error {
	return utils.GetSessionCacheClient().Del(ctx, submitKeyPrefix+sessionID).Err()
}
