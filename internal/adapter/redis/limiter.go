package redis

import (
	"context"
	"fmt"
	"time"

	goredis "github.com/redis/go-redis/v9"
)

// Limiter is a fixed-window request counter shared by every instance that
// points at the same Redis.
type Limiter struct {
	rdb    goredis.Cmdable
	prefix string
}

// NewLimiter creates a Limiter whose keys are namespaced under prefix.
func NewLimiter(rdb goredis.Cmdable, prefix string) *Limiter {
	return &Limiter{rdb: rdb, prefix: prefix}
}

// Allow counts one hit for key in the current window and reports whether
// it is within limit. retryAfter is the time left in the window.
func (l *Limiter) Allow(ctx context.Context, key string, limit int, window time.Duration) (bool, time.Duration, error) {
	k := l.prefix + key

	var (
		incr *goredis.IntCmd
		ttl  *goredis.DurationCmd
	)
	_, err := l.rdb.TxPipelined(ctx, func(p goredis.Pipeliner) error {
		incr = p.Incr(ctx, k)
		p.ExpireNX(ctx, k, window)
		ttl = p.PTTL(ctx, k)
		return nil
	})
	if err != nil {
		return false, 0, fmt.Errorf("rate limit %s: %w", key, err)
	}

	retryAfter := ttl.Val()
	if retryAfter < 0 {
		retryAfter = window
	}
	return incr.Val() <= int64(limit), retryAfter, nil
}
