package rest

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/sahakar/accounts-backend/internal/domain"
	"github.com/sahakar/accounts-backend/internal/service/closure"
)

var _ closureService = &closureServiceMock{}

type closureServiceMock struct {
	ReopenFunc func(ctx context.Context, input closure.ReopenInput) (domain.ClosureSnapshot, error)
	SealFunc   func(ctx context.Context, input closure.SealInput) (domain.ClosureSnapshot, error)
	VerifyFunc func(ctx context.Context, outletID uuid.UUID, month domain.Month) (closure.VerifyResult, error)

	calls struct {
		Reopen []struct {
			Ctx   context.Context
			Input closure.ReopenInput
		}
		Seal []struct {
			Ctx   context.Context
			Input closure.SealInput
		}
		Verify []struct {
			Ctx      context.Context
			OutletID uuid.UUID
			Month    domain.Month
		}
	}
	lockReopen sync.RWMutex
	lockSeal   sync.RWMutex
	lockVerify sync.RWMutex
}

func (mock *closureServiceMock) Reopen(ctx context.Context, input closure.ReopenInput) (domain.ClosureSnapshot, error) {
	if mock.ReopenFunc == nil {
		panic("closureServiceMock.ReopenFunc: method is nil but closureService.Reopen was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input closure.ReopenInput
	}{Ctx: ctx, Input: input}
	mock.lockReopen.Lock()
	mock.calls.Reopen = append(mock.calls.Reopen, callInfo)
	mock.lockReopen.Unlock()
	return mock.ReopenFunc(ctx, input)
}

func (mock *closureServiceMock) ReopenCalls() []struct {
	Ctx   context.Context
	Input closure.ReopenInput
} {
	mock.lockReopen.RLock()
	calls := mock.calls.Reopen
	mock.lockReopen.RUnlock()
	return calls
}

func (mock *closureServiceMock) Seal(ctx context.Context, input closure.SealInput) (domain.ClosureSnapshot, error) {
	if mock.SealFunc == nil {
		panic("closureServiceMock.SealFunc: method is nil but closureService.Seal was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input closure.SealInput
	}{Ctx: ctx, Input: input}
	mock.lockSeal.Lock()
	mock.calls.Seal = append(mock.calls.Seal, callInfo)
	mock.lockSeal.Unlock()
	return mock.SealFunc(ctx, input)
}

func (mock *closureServiceMock) SealCalls() []struct {
	Ctx   context.Context
	Input closure.SealInput
} {
	mock.lockSeal.RLock()
	calls := mock.calls.Seal
	mock.lockSeal.RUnlock()
	return calls
}

func (mock *closureServiceMock) Verify(ctx context.Context, outletID uuid.UUID, month domain.Month) (closure.VerifyResult, error) {
	if mock.VerifyFunc == nil {
		panic("closureServiceMock.VerifyFunc: method is nil but closureService.Verify was just called")
	}
	callInfo := struct {
		Ctx      context.Context
		OutletID uuid.UUID
		Month    domain.Month
	}{Ctx: ctx, OutletID: outletID, Month: month}
	mock.lockVerify.Lock()
	mock.calls.Verify = append(mock.calls.Verify, callInfo)
	mock.lockVerify.Unlock()
	return mock.VerifyFunc(ctx, outletID, month)
}

func (mock *closureServiceMock) VerifyCalls() []struct {
	Ctx      context.Context
	OutletID uuid.UUID
	Month    domain.Month
} {
	mock.lockVerify.RLock()
	calls := mock.calls.Verify
	mock.lockVerify.RUnlock()
	return calls
}
