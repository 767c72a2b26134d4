package rest

import (
	"context"
	"sync"

	"github.com/sahakar/accounts-backend/internal/domain"
)

var _ auditReader = &auditReaderMock{}

type auditReaderMock struct {
	ListFunc func(ctx context.Context, f domain.AuditFilter) ([]domain.AuditRecord, error)

	calls struct {
		List []struct {
			Ctx context.Context
			F   domain.AuditFilter
		}
	}
	lockList sync.RWMutex
}

func (mock *auditReaderMock) List(ctx context.Context, f domain.AuditFilter) ([]domain.AuditRecord, error) {
	if mock.ListFunc == nil {
		panic("auditReaderMock.ListFunc: method is nil but auditReader.List was just called")
	}
	callInfo := struct {
		Ctx context.Context
		F   domain.AuditFilter
	}{Ctx: ctx, F: f}
	mock.lockList.Lock()
	mock.calls.List = append(mock.calls.List, callInfo)
	mock.lockList.Unlock()
	return mock.ListFunc(ctx, f)
}

func (mock *auditReaderMock) ListCalls() []struct {
	Ctx context.Context
	F   domain.AuditFilter
} {
	mock.lockList.RLock()
	calls := mock.calls.List
	mock.lockList.RUnlock()
	return calls
}
