package api

import (
	"fmt"
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

// RateLimiter caps analyses per client IP over a fixed window, backed by
// Redis so limits hold across replicas. It sits entirely in the serving
// layer; the engine itself performs no caching or deduplication.
type RateLimiter struct {
	rdb    *redis.Client
	limit  int
	window time.Duration
	log    *logrus.Logger
}

// NewRateLimiter creates a limiter allowing limit requests per window.
func NewRateLimiter(rdb *redis.Client, limit int, window time.Duration, log *logrus.Logger) *RateLimiter {
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &RateLimiter{rdb: rdb, limit: limit, window: window, log: log}
}

// Middleware returns the Fiber handler enforcing the limit. Redis failures
// fail open: an unreachable limiter must not take analysis down with it.
func (l *RateLimiter) Middleware() fiber.Handler {
	return func(c fiber.Ctx) error {
		key := fmt.Sprintf("detetive:ratelimit:%s", c.IP())
		ctx := c.Context()

		pipe := l.rdb.TxPipeline()
		incr := pipe.Incr(ctx, key)
		pipe.Expire(ctx, key, l.window)
		if _, err := pipe.Exec(ctx); err != nil {
			l.log.WithError(err).Warn("rate limiter unavailable, allowing request")
			return c.Next()
		}

		if incr.Val() > int64(l.limit) {
			return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{
				"error": "rate limit exceeded, try again later",
			})
		}
		return c.Next()
	}
}
