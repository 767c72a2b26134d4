package closure

import (
	"context"
	"sync"
)

var _ locker = &lockerMock{}

type lockerMock struct {
	WithLockFunc func(ctx context.Context, key string, fn func(ctx context.Context) error) error

	calls struct {
		WithLock []struct {
			Ctx context.Context
			Key string
			Fn  func(ctx context.Context) error
		}
	}
	lockWithLock sync.RWMutex
}

func (mock *lockerMock) WithLock(ctx context.Context, key string, fn func(ctx context.Context) error) error {
	if mock.WithLockFunc == nil {
		panic("lockerMock.WithLockFunc: method is nil but locker.WithLock was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Key string
		Fn  func(ctx context.Context) error
	}{Ctx: ctx, Key: key, Fn: fn}
	mock.lockWithLock.Lock()
	mock.calls.WithLock = append(mock.calls.WithLock, callInfo)
	mock.lockWithLock.Unlock()
	return mock.WithLockFunc(ctx, key, fn)
}

func (mock *lockerMock) WithLockCalls() []struct {
	Ctx context.Context
	Key string
	Fn  func(ctx context.Context) error
} {
	mock.lockWithLock.RLock()
	calls := mock.calls.WithLock
	mock.lockWithLock.RUnlock()
	return calls
}
