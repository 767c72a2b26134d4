package rest

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/sahakar/accounts-backend/internal/domain"
	"github.com/sahakar/accounts-backend/internal/service/dailyrecord"
)

var _ dailyRecordService = &dailyRecordServiceMock{}

type dailyRecordServiceMock struct {
	ListFunc   func(ctx context.Context, outletID uuid.UUID, month domain.Month) ([]domain.DailyRecord, error)
	SubmitFunc func(ctx context.Context, recordID uuid.UUID) (dailyrecord.SubmitResult, error)
	TodayFunc  func(ctx context.Context, outletID uuid.UUID) (domain.DailyRecord, error)

	calls struct {
		List []struct {
			Ctx      context.Context
			OutletID uuid.UUID
			Month    domain.Month
		}
		Submit []struct {
			Ctx      context.Context
			RecordID uuid.UUID
		}
		Today []struct {
			Ctx      context.Context
			OutletID uuid.UUID
		}
	}
	lockList   sync.RWMutex
	lockSubmit sync.RWMutex
	lockToday  sync.RWMutex
}

func (mock *dailyRecordServiceMock) List(ctx context.Context, outletID uuid.UUID, month domain.Month) ([]domain.DailyRecord, error) {
	if mock.ListFunc == nil {
		panic("dailyRecordServiceMock.ListFunc: method is nil but dailyRecordService.List was just called")
	}
	callInfo := struct {
		Ctx      context.Context
		OutletID uuid.UUID
		Month    domain.Month
	}{Ctx: ctx, OutletID: outletID, Month: month}
	mock.lockList.Lock()
	mock.calls.List = append(mock.calls.List, callInfo)
	mock.lockList.Unlock()
	return mock.ListFunc(ctx, outletID, month)
}

func (mock *dailyRecordServiceMock) ListCalls() []struct {
	Ctx      context.Context
	OutletID uuid.UUID
	Month    domain.Month
} {
	mock.lockList.RLock()
	calls := mock.calls.List
	mock.lockList.RUnlock()
	return calls
}

func (mock *dailyRecordServiceMock) Submit(ctx context.Context, recordID uuid.UUID) (dailyrecord.SubmitResult, error) {
	if mock.SubmitFunc == nil {
		panic("dailyRecordServiceMock.SubmitFunc: method is nil but dailyRecordService.Submit was just called")
	}
	callInfo := struct {
		Ctx      context.Context
		RecordID uuid.UUID
	}{Ctx: ctx, RecordID: recordID}
	mock.lockSubmit.Lock()
	mock.calls.Submit = append(mock.calls.Submit, callInfo)
	mock.lockSubmit.Unlock()
	return mock.SubmitFunc(ctx, recordID)
}

func (mock *dailyRecordServiceMock) SubmitCalls() []struct {
	Ctx      context.Context
	RecordID uuid.UUID
} {
	mock.lockSubmit.RLock()
	calls := mock.calls.Submit
	mock.lockSubmit.RUnlock()
	return calls
}

func (mock *dailyRecordServiceMock) Today(ctx context.Context, outletID uuid.UUID) (domain.DailyRecord, error) {
	if mock.TodayFunc == nil {
		panic("dailyRecordServiceMock.TodayFunc: method is nil but dailyRecordService.Today was just called")
	}
	callInfo := struct {
		Ctx      context.Context
		OutletID uuid.UUID
	}{Ctx: ctx, OutletID: outletID}
	mock.lockToday.Lock()
	mock.calls.Today = append(mock.calls.Today, callInfo)
	mock.lockToday.Unlock()
	return mock.TodayFunc(ctx, outletID)
}

func (mock *dailyRecordServiceMock) TodayCalls() []struct {
	Ctx      context.Context
	OutletID uuid.UUID
} {
	mock.lockToday.RLock()
	calls := mock.calls.Today
	mock.lockToday.RUnlock()
	return calls
}
