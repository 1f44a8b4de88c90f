// File: utils/cache.go
package utils

import (
	"context"
	"time"

	"riadsiena/config"

	"github.com/go-redis/redis/v8"
)

// RateClient is the Redis client backing the rate limiter. Nil when Redis
// is not configured or unreachable; callers must handle the nil case.
var RateClient *redis.Client

// InitRateClient connects the rate-limit Redis client if REDIS_ADDR is set.
func InitRateClient() {
	if config.AppConfig.RedisAddr == "" {
		return
	}
	RateClient = redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisRateDB,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if _, err := RateClient.Ping(ctx).Result(); err != nil {
		GetLogger().Sugar().Warnf("Redis (rate limiter) unavailable, falling back to in-process limiter: %v", err)
		RateClient = nil
	}
}

// GetRateClient returns the rate-limit Redis client, which may be nil.
func GetRateClient() *redis.Client {
	return RateClient
}
