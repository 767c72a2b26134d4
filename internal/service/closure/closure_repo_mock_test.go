package closure

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/sahakar/accounts-backend/internal/domain"
)

var _ closureRepo = &closureRepoMock{}

type closureRepoMock struct {
	CreateFunc       func(ctx context.Context, s domain.ClosureSnapshot) (domain.ClosureSnapshot, error)
	LatestFunc       func(ctx context.Context, outletID uuid.UUID, month domain.Month) (domain.ClosureSnapshot, error)
	MarkReopenedFunc func(ctx context.Context, id uuid.UUID, by uuid.UUID, at time.Time, reason string) (domain.ClosureSnapshot, error)

	calls struct {
		Create []struct {
			Ctx context.Context
			S   domain.ClosureSnapshot
		}
		Latest []struct {
			Ctx      context.Context
			OutletID uuid.UUID
			Month    domain.Month
		}
		MarkReopened []struct {
			Ctx    context.Context
			Id     uuid.UUID
			By     uuid.UUID
			At     time.Time
			Reason string
		}
	}
	lockCreate       sync.RWMutex
	lockLatest       sync.RWMutex
	lockMarkReopened sync.RWMutex
}

func (mock *closureRepoMock) Create(ctx context.Context, s domain.ClosureSnapshot) (domain.ClosureSnapshot, error) {
	if mock.CreateFunc == nil {
		panic("closureRepoMock.CreateFunc: method is nil but closureRepo.Create was just called")
	}
	callInfo := struct {
		Ctx context.Context
		S   domain.ClosureSnapshot
	}{Ctx: ctx, S: s}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, s)
}

func (mock *closureRepoMock) CreateCalls() []struct {
	Ctx context.Context
	S   domain.ClosureSnapshot
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *closureRepoMock) Latest(ctx context.Context, outletID uuid.UUID, month domain.Month) (domain.ClosureSnapshot, error) {
	if mock.LatestFunc == nil {
		panic("closureRepoMock.LatestFunc: method is nil but closureRepo.Latest was just called")
	}
	callInfo := struct {
		Ctx      context.Context
		OutletID uuid.UUID
		Month    domain.Month
	}{Ctx: ctx, OutletID: outletID, Month: month}
	mock.lockLatest.Lock()
	mock.calls.Latest = append(mock.calls.Latest, callInfo)
	mock.lockLatest.Unlock()
	return mock.LatestFunc(ctx, outletID, month)
}

func (mock *closureRepoMock) LatestCalls() []struct {
	Ctx      context.Context
	OutletID uuid.UUID
	Month    domain.Month
} {
	mock.lockLatest.RLock()
	calls := mock.calls.Latest
	mock.lockLatest.RUnlock()
	return calls
}

func (mock *closureRepoMock) MarkReopened(ctx context.Context, id uuid.UUID, by uuid.UUID, at time.Time, reason string) (domain.ClosureSnapshot, error) {
	if mock.MarkReopenedFunc == nil {
		panic("closureRepoMock.MarkReopenedFunc: method is nil but closureRepo.MarkReopened was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		Id     uuid.UUID
		By     uuid.UUID
		At     time.Time
		Reason string
	}{Ctx: ctx, Id: id, By: by, At: at, Reason: reason}
	mock.lockMarkReopened.Lock()
	mock.calls.MarkReopened = append(mock.calls.MarkReopened, callInfo)
	mock.lockMarkReopened.Unlock()
	return mock.MarkReopenedFunc(ctx, id, by, at, reason)
}

func (mock *closureRepoMock) MarkReopenedCalls() []struct {
	Ctx    context.Context
	Id     uuid.UUID
	By     uuid.UUID
	At     time.Time
	Reason string
} {
	mock.lockMarkReopened.RLock()
	calls := mock.calls.MarkReopened
	mock.lockMarkReopened.RUnlock()
	return calls
}
