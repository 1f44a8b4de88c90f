package middleware

import (
	"context"
	"fmt"
	"net/http"
	"sync"
	"time"

	"riadsiena/config"
	"riadsiena/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

// rateLimiterStore holds a map of IP addresses to their rate limiters.
type rateLimiterStore struct {
	limiters map[string]*rate.Limiter
	mu       sync.Mutex
}

var limiterStore = &rateLimiterStore{
	limiters: make(map[string]*rate.Limiter),
}

// getLimiter returns the rate limiter for a given IP, creating one if it doesn't exist.
func (s *rateLimiterStore) getLimiter(ip string) *rate.Limiter {
	s.mu.Lock()
	defer s.mu.Unlock()

	limiter, exists := s.limiters[ip]
	if !exists {
		perMin := config.AppConfig.MaxRequestsPerMin
		if perMin <= 0 {
			perMin = 100
		}
		limiter = rate.NewLimiter(rate.Every(time.Minute/time.Duration(perMin)), perMin)
		s.limiters[ip] = limiter
	}
	return limiter
}

// allowRedis runs a fixed-window counter in Redis so that limits hold across
// replicas. Fails open: a Redis error lets the request through.
func allowRedis(ctx context.Context, ip string) (bool, error) {
	client := utils.GetRateClient()
	key := fmt.Sprintf("rate:%s", ip)
	count, err := client.Incr(ctx, key).Result()
	if err != nil {
		return true, err
	}
	if count == 1 {
		client.Expire(ctx, key, time.Minute)
	}
	limit := config.AppConfig.MaxRequestsPerMin
	if limit <= 0 {
		limit = 100
	}
	return count <= int64(limit), nil
}

// RateLimitMiddleware limits requests per client IP. Uses Redis when
// configured, otherwise an in-process token bucket per IP.
func RateLimitMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		logger := zap.L()
		ip := getClientIP(c)

		allowed := true
		if utils.GetRateClient() != nil {
			var err error
			allowed, err = allowRedis(c.Request.Context(), ip)
			if err != nil {
				logger.Warn("Rate limiter Redis error, allowing request", zap.Error(err))
			}
		} else {
			allowed = limiterStore.getLimiter(ip).Allow()
		}

		if !allowed {
			logger.Warn("Rate limit exceeded", zap.String("ip", ip))
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{"error": "Rate limit exceeded. Try again later."})
			return
		}
		c.Next()
	}
}
