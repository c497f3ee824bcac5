// File: utils/cache.go
package utils

import (
	"context"
	"log"
	"time"

	"washlane/config"

	"github.com/go-redis/redis/v8"
)

var (
	// SessionCacheClient holds cart and checkout sessions.
	SessionCacheClient *redis.Client
	// NotifyCacheClient is the dedicated client for notification state.
	NotifyCacheClient *redis.Client
)

// InitSessionCache initializes the Redis client backing cart and checkout sessions.
func InitSessionCache() {
	SessionCacheClient = redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisSessionDB,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	_, err := SessionCacheClient.Ping(ctx).Result()
	if err != nil {
		log.Fatalf("Failed to connect to Redis (Sessions): %v", err)
	}
}

// GetSessionCacheClient returns the session cache client.
func GetSessionCacheClient() *redis.Client {
	if SessionCacheClient == nil {
		InitSessionCache()
	}
	return SessionCacheClient
}

// InitNotifyCache initializes the Redis client for notification state.
func InitNotifyCache() {
	NotifyCacheClient = redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisNotifyDB,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	_, err := NotifyCacheClient.Ping(ctx).Result()
	if err != nil {
		log.Fatalf("Failed to connect to Redis (Notifications): %v", err)
	}
}

// GetNotifyCacheClient returns the Redis client for notification state.
func GetNotifyCacheClient() *redis.Client {
	if NotifyCacheClient == nil {
		InitNotifyCache()
	}
	return NotifyCacheClient
}

// SessionTTL returns the configured cart/checkout session lifetime.
func SessionTTL() time.Duration {
	minutes := config.AppConfig.SessionTTLMinutes
	if minutes <= 0 {
		minutes = 30
	}
	return time.Duration(minutes) * time.Minute
}
