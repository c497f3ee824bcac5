package notification

import (
	"context"
	"fmt"

	"washlane/utils"

	"github.com/go-redis/redis/v8"
)

// UnreadStore is the single authoritative holder of per-user unread
// notification counts. Every badge or list reader derives from it; no caller
// keeps its own copy.
type UnreadStore interface {
	Unread(ctx context.Context, userID string) (int64, error)
	Push(ctx context.Context, userID string) (int64, error)
	MarkSeen(ctx context.Context, userID string) error
}

// RedisUnreadStore implements UnreadStore on the notification cache.
type RedisUnreadStore struct{}

// NewRedisUnreadStore returns the Redis-backed unread store.
func NewRedisUnreadStore() *RedisUnreadStore {
	return &RedisUnreadStore{}
}

func unreadKey(userID string) string {
	return "unread:" + userID
}

// Unread returns the current unread count; a missing key reads as zero.
func (s *RedisUnreadStore) Unread(ctx context.Context, userID string) (int64, error) {
	count, err := utils.GetNotifyCacheClient().Get(ctx, unreadKey(userID)).Int64()
	if err != nil {
		if err == redis.Nil {
			return 0, nil
		}
		return 0, fmt.Errorf("failed to read unread count: %w", err)
	}
	return count, nil
}

// Push records one new notification and returns the new count.
func (s *RedisUnreadStore) Push(ctx context.Context, userID string) (int64, error) {
	count, err := utils.GetNotifyCacheClient().Incr(ctx, unreadKey(userID)).Result()
	if err != nil {
		return 0, fmt.Errorf("failed to increment unread count: %w", err)
	}
	return count, nil
}

// MarkSeen resets the unread count to zero.
func (s *RedisUnreadStore) MarkSeen(ctx context.Context, userID string) error {
	if err := utils.GetNotifyCacheClient().Del(ctx, unreadKey(userID)).Err(); err != nil {
		return fmt.Errorf("failed to reset unread count: %w", err)
	}
	return nil
}
