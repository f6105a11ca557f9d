package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRateLimiter_Allow(t *testing.T) {
	t.Run("allows up to the limit, blocks after", func(t *testing.T) {
		limiter := NewRateLimiterWithConfig(3, 1*time.Minute)

		for i := 0; i < 3; i++ {
			assert.True(t, limiter.allow("10.0.0.1"))
		}
		assert.False(t, limiter.allow("10.0.0.1"))
	})

	t.Run("keys are counted independently", func(t *testing.T) {
		limiter := NewRateLimiterWithConfig(1, 1*time.Minute)

		assert.True(t, limiter.allow("10.0.0.1"))
		assert.False(t, limiter.allow("10.0.0.1"))
		assert.True(t, limiter.allow("10.0.0.2"))
	})

	t.Run("window expiry resets the count", func(t *testing.T) {
		limiter := NewRateLimiterWithConfig(1, 10*time.Millisecond)

		assert.True(t, limiter.allow("10.0.0.1"))
		assert.False(t, limiter.allow("10.0.0.1"))

		time.Sleep(20 * time.Millisecond)
		assert.True(t, limiter.allow("10.0.0.1"))
	})

	t.Run("reset clears all state", func(t *testing.T) {
		limiter := NewRateLimiterWithConfig(1, 1*time.Minute)

		assert.True(t, limiter.allow("10.0.0.1"))
		assert.False(t, limiter.allow("10.0.0.1"))

		limiter.Reset()
		assert.True(t, limiter.allow("10.0.0.1"))
	})
}

func TestRateLimiter_Cleanup(t *testing.T) {
	limiter := NewRateLimiterWithConfig(5, 10*time.Millisecond)

	limiter.allow("10.0.0.1")
	limiter.allow("10.0.0.2")
	require.Len(t, limiter.entries, 2)

	time.Sleep(20 * time.Millisecond)
	limiter.Cleanup()
	assert.Empty(t, limiter.entries)
}

func TestRateLimiter_Middleware(t *testing.T) {
	gin.SetMode(gin.TestMode)
	t.Setenv("E2E_MODE", "")
	t.Setenv("ENV", "")

	limiter := NewRateLimiterWithConfig(2, 1*time.Minute)

	engine := gin.New()
	engine.POST("/login", limiter.Middleware(), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	doLogin := func() int {
		recorder := httptest.NewRecorder()
		request := httptest.NewRequest(http.MethodPost, "/login", nil)
		request.RemoteAddr = "10.0.0.1:12345"
		engine.ServeHTTP(recorder, request)
		return recorder.Code
	}

	assert.Equal(t, http.StatusOK, doLogin())
	assert.Equal(t, http.StatusOK, doLogin())
	assert.Equal(t, http.StatusTooManyRequests, doLogin())
}

func TestRedisRateLimiter_Middleware(t *testing.T) {
	gin.SetMode(gin.TestMode)

	newEngine := func(limiter *RedisRateLimiter) *gin.Engine {
		engine := gin.New()
		engine.POST("/login", limiter.Middleware(), func(c *gin.Context) {
			c.Status(http.StatusOK)
		})
		return engine
	}

	doLogin := func(engine *gin.Engine, remoteAddr string) int {
		recorder := httptest.NewRecorder()
		request := httptest.NewRequest(http.MethodPost, "/login", nil)
		request.RemoteAddr = remoteAddr
		engine.ServeHTTP(recorder, request)
		return recorder.Code
	}

	t.Run("blocks after the limit within the window", func(t *testing.T) {
		server := miniredis.RunT(t)
		client := redis.NewClient(&redis.Options{Addr: server.Addr()})
		engine := newEngine(NewRedisRateLimiter(client, 2, 1*time.Minute))

		assert.Equal(t, http.StatusOK, doLogin(engine, "10.0.0.1:12345"))
		assert.Equal(t, http.StatusOK, doLogin(engine, "10.0.0.1:12345"))
		assert.Equal(t, http.StatusTooManyRequests, doLogin(engine, "10.0.0.1:12345"))
	})

	t.Run("clients are counted independently", func(t *testing.T) {
		server := miniredis.RunT(t)
		client := redis.NewClient(&redis.Options{Addr: server.Addr()})
		engine := newEngine(NewRedisRateLimiter(client, 1, 1*time.Minute))

		assert.Equal(t, http.StatusOK, doLogin(engine, "10.0.0.1:12345"))
		assert.Equal(t, http.StatusTooManyRequests, doLogin(engine, "10.0.0.1:12345"))
		assert.Equal(t, http.StatusOK, doLogin(engine, "10.0.0.2:12345"))
	})

	t.Run("window expiry resets the count", func(t *testing.T) {
		server := miniredis.RunT(t)
		client := redis.NewClient(&redis.Options{Addr: server.Addr()})
		engine := newEngine(NewRedisRateLimiter(client, 1, 1*time.Minute))

		assert.Equal(t, http.StatusOK, doLogin(engine, "10.0.0.1:12345"))
		assert.Equal(t, http.StatusTooManyRequests, doLogin(engine, "10.0.0.1:12345"))

		server.FastForward(2 * time.Minute)
		assert.Equal(t, http.StatusOK, doLogin(engine, "10.0.0.1:12345"))
	})

	t.Run("fails open when redis is unreachable", func(t *testing.T) {
		server := miniredis.RunT(t)
		client := redis.NewClient(&redis.Options{Addr: server.Addr()})
		engine := newEngine(NewRedisRateLimiter(client, 1, 1*time.Minute))
		server.Close()

		assert.Equal(t, http.StatusOK, doLogin(engine, "10.0.0.1:12345"))
	})
}
