package middleware

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	domainerror "github.com/ledgerly/backend/internal/domain/error"
	"github.com/ledgerly/backend/internal/integration/entrypoint/dto"
)

// RedisRateLimiter provides IP-based rate limiting backed by Redis, so the
// counters survive restarts and are shared across instances.
type RedisRateLimiter struct {
	client         *redis.Client
	maxAttempts    int
	windowDuration time.Duration
	keyPrefix      string
}

// NewRedisRateLimiter creates a new Redis-backed rate limiter.
func NewRedisRateLimiter(client *redis.Client, maxAttempts int, windowDuration time.Duration) *RedisRateLimiter {
	return &RedisRateLimiter{
		client:         client,
		maxAttempts:    maxAttempts,
		windowDuration: windowDuration,
		keyPrefix:      "ratelimit:",
	}
}

// Middleware returns a Gin middleware handler that enforces rate limiting.
// Redis failures fail open: a limiter outage must not take auth down with it.
func (rl *RedisRateLimiter) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		clientIP := c.ClientIP()
		if clientIP == "" {
			clientIP = c.Request.RemoteAddr
		}

		allowed, err := rl.allow(c, clientIP)
		if err != nil {
			c.Next()
			return
		}

		if !allowed {
			c.JSON(http.StatusTooManyRequests, dto.ErrorResponse{
				Error: "Too many requests. Please try again later.",
				Code:  string(domainerror.ErrCodeRateLimited),
			})
			c.Abort()
			return
		}

		c.Next()
	}
}

// allow increments the counter for the key and reports whether the request
// fits in the current window. The expiry is set when the window opens.
func (rl *RedisRateLimiter) allow(c *gin.Context, key string) (bool, error) {
	redisKey := fmt.Sprintf("%s%s", rl.keyPrefix, key)
	ctx := c.Request.Context()

	count, err := rl.client.Incr(ctx, redisKey).Result()
	if err != nil {
		return false, err
	}
	if count == 1 {
		if err := rl.client.Expire(ctx, redisKey, rl.windowDuration).Err(); err != nil {
			return false, err
		}
	}

	return count <= int64(rl.maxAttempts), nil
}
