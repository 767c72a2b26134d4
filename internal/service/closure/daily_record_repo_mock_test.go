package closure

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/sahakar/accounts-backend/internal/domain"
)

var _ dailyRecordRepo = &dailyRecordRepoMock{}

type dailyRecordRepoMock struct {
	ListByOutletRangeFunc func(ctx context.Context, outletID uuid.UUID, from time.Time, to time.Time) ([]domain.DailyRecord, error)

	calls struct {
		ListByOutletRange []struct {
			Ctx      context.Context
			OutletID uuid.UUID
			From     time.Time
			To       time.Time
		}
	}
	lockListByOutletRange sync.RWMutex
}

func (mock *dailyRecordRepoMock) ListByOutletRange(ctx context.Context, outletID uuid.UUID, from time.Time, to time.Time) ([]domain.DailyRecord, error) {
	if mock.ListByOutletRangeFunc == nil {
		panic("dailyRecordRepoMock.ListByOutletRangeFunc: method is nil but dailyRecordRepo.ListByOutletRange was just called")
	}
	callInfo := struct {
		Ctx      context.Context
		OutletID uuid.UUID
		From     time.Time
		To       time.Time
	}{Ctx: ctx, OutletID: outletID, From: from, To: to}
	mock.lockListByOutletRange.Lock()
	mock.calls.ListByOutletRange = append(mock.calls.ListByOutletRange, callInfo)
	mock.lockListByOutletRange.Unlock()
	return mock.ListByOutletRangeFunc(ctx, outletID, from, to)
}

func (mock *dailyRecordRepoMock) ListByOutletRangeCalls() []struct {
	Ctx      context.Context
	OutletID uuid.UUID
	From     time.Time
	To       time.Time
} {
	mock.lockListByOutletRange.RLock()
	calls := mock.calls.ListByOutletRange
	mock.lockListByOutletRange.RUnlock()
	return calls
}
