package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/bsm/redislock"
	goredis "github.com/redis/go-redis/v9"

	"github.com/sahakar/accounts-backend/internal/domain"
)

// Locker serializes critical sections across instances with a Redis lease.
type Locker struct {
	client *redislock.Client
	ttl    time.Duration
	prefix string
}

// NewLocker creates a Locker. ttl bounds how long a crashed holder can
// block others.
func NewLocker(rdb goredis.UniversalClient, prefix string, ttl time.Duration) *Locker {
	return &Locker{client: redislock.New(rdb), ttl: ttl, prefix: prefix}
}

// WithLock runs fn while holding the lock for key. If the lock stays busy
// for the whole lease it returns domain.ErrConflict. A nil Locker runs fn
// directly.
func (l *Locker) WithLock(ctx context.Context, key string, fn func(ctx context.Context) error) error {
	if l == nil {
		return fn(ctx)
	}
	opts := &redislock.Options{
		RetryStrategy: redislock.LimitRetry(redislock.LinearBackoff(100*time.Millisecond), int(l.ttl/(100*time.Millisecond))),
	}

	lock, err := l.client.Obtain(ctx, l.prefix+key, l.ttl, opts)
	if errors.Is(err, redislock.ErrNotObtained) {
		return fmt.Errorf("lock %s busy: %w", key, domain.ErrConflict)
	}
	if err != nil {
		return fmt.Errorf("obtain lock %s: %w", key, err)
	}
	defer func() {
		_ = lock.Release(context.WithoutCancel(ctx))
	}()

	return fn(ctx)
}
