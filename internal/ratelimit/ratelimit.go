package ratelimit

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

// Limiter is a fixed-window per-key counter backed by Redis. A nil limiter
// or nil client allows everything, so the feature is off unless Redis is
// configured.
type Limiter struct {
	rdb    *redis.Client
	limit  int64
	window time.Duration
}

func New(rdb *redis.Client, limit int64, window time.Duration) *Limiter {
	return &Limiter{rdb: rdb, limit: limit, window: window}
}

// Allow counts a hit for key and reports whether it is within the limit.
// Redis errors fail open: a broken limiter must not take the endpoint down.
func (l *Limiter) Allow(ctx context.Context, key string) (bool, error) {
	if l == nil || l.rdb == nil {
		return true, nil
	}
	full := "ratelimit:" + key
	n, err := l.rdb.Incr(ctx, full).Result()
	if err != nil {
		return true, err
	}
	if n == 1 {
		l.rdb.Expire(ctx, full, l.window)
	}
	return n <= l.limit, nil
}
