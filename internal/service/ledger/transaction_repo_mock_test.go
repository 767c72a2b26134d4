package ledger

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/sahakar/accounts-backend/internal/domain"
)

var _ transactionRepo = &transactionRepoMock{}

type transactionRepoMock struct {
	CreateFunc              func(ctx context.Context, t domain.Transaction) (domain.Transaction, error)
	GetByIDFunc             func(ctx context.Context, id uuid.UUID) (domain.Transaction, error)
	GetByIdempotencyKeyFunc func(ctx context.Context, key string) (domain.Transaction, error)
	ListByOutletDateFunc    func(ctx context.Context, outletID uuid.UUID, date time.Time) ([]domain.Transaction, error)

	calls struct {
		Create []struct {
			Ctx context.Context
			T   domain.Transaction
		}
		GetByID []struct {
			Ctx context.Context
			Id  uuid.UUID
		}
		GetByIdempotencyKey []struct {
			Ctx context.Context
			Key string
		}
		ListByOutletDate []struct {
			Ctx      context.Context
			OutletID uuid.UUID
			Date     time.Time
		}
	}
	lockCreate              sync.RWMutex
	lockGetByID             sync.RWMutex
	lockGetByIdempotencyKey sync.RWMutex
	lockListByOutletDate    sync.RWMutex
}

func (mock *transactionRepoMock) Create(ctx context.Context, t domain.Transaction) (domain.Transaction, error) {
	if mock.CreateFunc == nil {
		panic("transactionRepoMock.CreateFunc: method is nil but transactionRepo.Create was just called")
	}
	callInfo := struct {
		Ctx context.Context
		T   domain.Transaction
	}{Ctx: ctx, T: t}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, t)
}

func (mock *transactionRepoMock) CreateCalls() []struct {
	Ctx context.Context
	T   domain.Transaction
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *transactionRepoMock) GetByID(ctx context.Context, id uuid.UUID) (domain.Transaction, error) {
	if mock.GetByIDFunc == nil {
		panic("transactionRepoMock.GetByIDFunc: method is nil but transactionRepo.GetByID was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Id  uuid.UUID
	}{Ctx: ctx, Id: id}
	mock.lockGetByID.Lock()
	mock.calls.GetByID = append(mock.calls.GetByID, callInfo)
	mock.lockGetByID.Unlock()
	return mock.GetByIDFunc(ctx, id)
}

func (mock *transactionRepoMock) GetByIDCalls() []struct {
	Ctx context.Context
	Id  uuid.UUID
} {
	mock.lockGetByID.RLock()
	calls := mock.calls.GetByID
	mock.lockGetByID.RUnlock()
	return calls
}

func (mock *transactionRepoMock) GetByIdempotencyKey(ctx context.Context, key string) (domain.Transaction, error) {
	if mock.GetByIdempotencyKeyFunc == nil {
		panic("transactionRepoMock.GetByIdempotencyKeyFunc: method is nil but transactionRepo.GetByIdempotencyKey was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Key string
	}{Ctx: ctx, Key: key}
	mock.lockGetByIdempotencyKey.Lock()
	mock.calls.GetByIdempotencyKey = append(mock.calls.GetByIdempotencyKey, callInfo)
	mock.lockGetByIdempotencyKey.Unlock()
	return mock.GetByIdempotencyKeyFunc(ctx, key)
}

func (mock *transactionRepoMock) GetByIdempotencyKeyCalls() []struct {
	Ctx context.Context
	Key string
} {
	mock.lockGetByIdempotencyKey.RLock()
	calls := mock.calls.GetByIdempotencyKey
	mock.lockGetByIdempotencyKey.RUnlock()
	return calls
}

func (mock *transactionRepoMock) ListByOutletDate(ctx context.Context, outletID uuid.UUID, date time.Time) ([]domain.Transaction, error) {
	if mock.ListByOutletDateFunc == nil {
		panic("transactionRepoMock.ListByOutletDateFunc: method is nil but transactionRepo.ListByOutletDate was just called")
	}
	callInfo := struct {
		Ctx      context.Context
		OutletID uuid.UUID
		Date     time.Time
	}{Ctx: ctx, OutletID: outletID, Date: date}
	mock.lockListByOutletDate.Lock()
	mock.calls.ListByOutletDate = append(mock.calls.ListByOutletDate, callInfo)
	mock.lockListByOutletDate.Unlock()
	return mock.ListByOutletDateFunc(ctx, outletID, date)
}

func (mock *transactionRepoMock) ListByOutletDateCalls() []struct {
	Ctx      context.Context
	OutletID uuid.UUID
	Date     time.Time
} {
	mock.lockListByOutletDate.RLock()
	calls := mock.calls.ListByOutletDate
	mock.lockListByOutletDate.RUnlock()
	return calls
}
