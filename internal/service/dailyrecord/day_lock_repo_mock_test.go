package dailyrecord

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/sahakar/accounts-backend/internal/domain"
)

var _ dayLockRepo = &dayLockRepoMock{}

type dayLockRepoMock struct {
	GetFunc func(ctx context.Context, outletID uuid.UUID, date time.Time) (domain.DayLock, error)

	calls struct {
		Get []struct {
			Ctx      context.Context
			OutletID uuid.UUID
			Date     time.Time
		}
	}
	lockGet sync.RWMutex
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
