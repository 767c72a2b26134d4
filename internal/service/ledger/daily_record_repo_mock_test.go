package ledger

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/sahakar/accounts-backend/internal/domain"
)

var _ dailyRecordRepo = &dailyRecordRepoMock{}

type dailyRecordRepoMock struct {
	ApplyTransactionFunc func(ctx context.Context, recordID uuid.UUID, t domain.Transaction) error
	GetByOutletDateFunc  func(ctx context.Context, outletID uuid.UUID, date time.Time) (domain.DailyRecord, error)
	SetStatusFunc        func(ctx context.Context, outletID uuid.UUID, date time.Time, to domain.DayStatus, from ...domain.DayStatus) (bool, error)

	calls struct {
		ApplyTransaction []struct {
			Ctx      context.Context
			RecordID uuid.UUID
			T        domain.Transaction
		}
		GetByOutletDate []struct {
			Ctx      context.Context
			OutletID uuid.UUID
			Date     time.Time
		}
		SetStatus []struct {
			Ctx      context.Context
			OutletID uuid.UUID
			Date     time.Time
			To       domain.DayStatus
			From     []domain.DayStatus
		}
	}
	lockApplyTransaction sync.RWMutex
	lockGetByOutletDate  sync.RWMutex
	lockSetStatus        sync.RWMutex
}

func (mock *dailyRecordRepoMock) ApplyTransaction(ctx context.Context, recordID uuid.UUID, t domain.Transaction) error {
	if mock.ApplyTransactionFunc == nil {
		panic("dailyRecordRepoMock.ApplyTransactionFunc: method is nil but dailyRecordRepo.ApplyTransaction was just called")
	}
	callInfo := struct {
		Ctx      context.Context
		RecordID uuid.UUID
		T        domain.Transaction
	}{Ctx: ctx, RecordID: recordID, T: t}
	mock.lockApplyTransaction.Lock()
	mock.calls.ApplyTransaction = append(mock.calls.ApplyTransaction, callInfo)
	mock.lockApplyTransaction.Unlock()
	return mock.ApplyTransactionFunc(ctx, recordID, t)
}

func (mock *dailyRecordRepoMock) ApplyTransactionCalls() []struct {
	Ctx      context.Context
	RecordID uuid.UUID
	T        domain.Transaction
} {
	mock.lockApplyTransaction.RLock()
	calls := mock.calls.ApplyTransaction
	mock.lockApplyTransaction.RUnlock()
	return calls
}

func (mock *dailyRecordRepoMock) GetByOutletDate(ctx context.Context, outletID uuid.UUID, date time.Time) (domain.DailyRecord, error) {
	if mock.GetByOutletDateFunc == nil {
		panic("dailyRecordRepoMock.GetByOutletDateFunc: method is nil but dailyRecordRepo.GetByOutletDate was just called")
	}
	callInfo := struct {
		Ctx      context.Context
		OutletID uuid.UUID
		Date     time.Time
	}{Ctx: ctx, OutletID: outletID, Date: date}
	mock.lockGetByOutletDate.Lock()
	mock.calls.GetByOutletDate = append(mock.calls.GetByOutletDate, callInfo)
	mock.lockGetByOutletDate.Unlock()
	return mock.GetByOutletDateFunc(ctx, outletID, date)
}

func (mock *dailyRecordRepoMock) GetByOutletDateCalls() []struct {
	Ctx      context.Context
	OutletID uuid.UUID
	Date     time.Time
} {
	mock.lockGetByOutletDate.RLock()
	calls := mock.calls.GetByOutletDate
	mock.lockGetByOutletDate.RUnlock()
	return calls
}

func (mock *dailyRecordRepoMock) SetStatus(ctx context.Context, outletID uuid.UUID, date time.Time, to domain.DayStatus, from ...domain.DayStatus) (bool, error) {
	if mock.SetStatusFunc == nil {
		panic("dailyRecordRepoMock.SetStatusFunc: method is nil but dailyRecordRepo.SetStatus was just called")
	}
	callInfo := struct {
		Ctx      context.Context
		OutletID uuid.UUID
		Date     time.Time
		To       domain.DayStatus
		From     []domain.DayStatus
	}{Ctx: ctx, OutletID: outletID, Date: date, To: to, From: from}
	mock.lockSetStatus.Lock()
	mock.calls.SetStatus = append(mock.calls.SetStatus, callInfo)
	mock.lockSetStatus.Unlock()
	return mock.SetStatusFunc(ctx, outletID, date, to, from...)
}

func (mock *dailyRecordRepoMock) SetStatusCalls() []struct {
	Ctx      context.Context
	OutletID uuid.UUID
	Date     time.Time
	To       domain.DayStatus
	From     []domain.DayStatus
} {
	mock.lockSetStatus.RLock()
	calls := mock.calls.SetStatus
	mock.lockSetStatus.RUnlock()
	return calls
}
