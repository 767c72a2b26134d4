package middleware

import (
	"context"
	"sync"
	"time"
)

var _ Limiter = &LimiterMock{}

type LimiterMock struct {
	AllowFunc func(ctx context.Context, key string, limit int, window time.Duration) (bool, time.Duration, error)

	calls struct {
		Allow []struct {
			Ctx    context.Context
			Key    string
			Limit  int
			Window time.Duration
		}
	}
	lockAllow sync.RWMutex
}

func (mock *LimiterMock) Allow(ctx context.Context, key string, limit int, window time.Duration) (bool, time.Duration, error) {
	if mock.AllowFunc == nil {
		panic("LimiterMock.AllowFunc: method is nil but Limiter.Allow was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		Key    string
		Limit  int
		Window time.Duration
	}{Ctx: ctx, Key: key, Limit: limit, Window: window}
	mock.lockAllow.Lock()
	mock.calls.Allow = append(mock.calls.Allow, callInfo)
	mock.lockAllow.Unlock()
	return mock.AllowFunc(ctx, key, limit, window)
}

func (mock *LimiterMock) AllowCalls() []struct {
	Ctx    context.Context
	Key    string
	Limit  int
	Window time.Duration
} {
	mock.lockAllow.RLock()
	calls := mock.calls.Allow
	mock.lockAllow.RUnlock()
	return calls
}
