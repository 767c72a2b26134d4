package ledger

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/sahakar/accounts-backend/internal/domain"
)

var _ dayLockRepo = &dayLockRepoMock{}

type dayLockRepoMock struct {
	GetFunc    func(ctx context.Context, outletID uuid.UUID, date time.Time) (domain.DayLock, error)
	UpsertFunc func(ctx context.Context, lock domain.DayLock) (domain.DayLock, bool, error)

	calls struct {
		Get []struct {
			Ctx      context.Context
			OutletID uuid.UUID
			Date     time.Time
		}
		Upsert []struct {
			Ctx  context.Context
			Lock domain.DayLock
		}
	}
	lockGet    sync.RWMutex
	lockUpsert sync.RWMutex
}

func (mock *dayLockRepoMock) Get(ctx context.Context, outletID uuid.UUID, date time.Time) (domain.DayLock, error) {
	if mock.GetFunc == nil {
		panic("dayLockRepoMock.GetFunc: method is nil but dayLockRepo.Get was just called")
	}
	callInfo := struct {
		Ctx      context.Context
		OutletID uuid.UUID
		Date     time.Time
	}{Ctx: ctx, OutletID: outletID, Date: date}
	mock.lockGet.Lock()
	mock.calls.Get = append(mock.calls.Get, callInfo)
	mock.lockGet.Unlock()
	return mock.GetFunc(ctx, outletID, date)
}

func (mock *dayLockRepoMock) GetCalls() []struct {
	Ctx      context.Context
	OutletID uuid.UUID
	Date     time.Time
} {
	mock.lockGet.RLock()
	calls := mock.calls.Get
	mock.lockGet.RUnlock()
	return calls
}

func (mock *dayLockRepoMock) Upsert(ctx context.Context, lock domain.DayLock) (domain.DayLock, bool, error) {
	if mock.UpsertFunc == nil {
		panic("dayLockRepoMock.UpsertFunc: method is nil but dayLockRepo.Upsert was just called")
	}
	callInfo := struct {
		Ctx  context.Context
		Lock domain.DayLock
	}{Ctx: ctx, Lock: lock}
	mock.lockUpsert.Lock()
	mock.calls.Upsert = append(mock.calls.Upsert, callInfo)
	mock.lockUpsert.Unlock()
	return mock.UpsertFunc(ctx, lock)
}

func (mock *dayLockRepoMock) UpsertCalls() []struct {
	Ctx  context.Context
	Lock domain.DayLock
} {
	mock.lockUpsert.RLock()
	calls := mock.calls.Upsert
	mock.lockUpsert.RUnlock()
	return calls
}
