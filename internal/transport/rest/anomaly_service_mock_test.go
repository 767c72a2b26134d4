package rest

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/sahakar/accounts-backend/internal/domain"
	"github.com/sahakar/accounts-backend/internal/service/anomaly"
)

var _ anomalyService = &anomalyServiceMock{}

type anomalyServiceMock struct {
	ScanFiguresFunc func(ctx context.Context, outletID uuid.UUID, month domain.Month, days []anomaly.DayFigures) domain.ScanResult
	ScanMonthFunc   func(ctx context.Context, outletID uuid.UUID, month domain.Month) (domain.ScanResult, error)

	calls struct {
		ScanFigures []struct {
			Ctx      context.Context
			OutletID uuid.UUID
			Month    domain.Month
			Days     []anomaly.DayFigures
		}
		ScanMonth []struct {
			Ctx      context.Context
			OutletID uuid.UUID
			Month    domain.Month
		}
	}
	lockScanFigures sync.RWMutex
	lockScanMonth   sync.RWMutex
}

func (mock *anomalyServiceMock) ScanFigures(ctx context.Context, outletID uuid.UUID, month domain.Month, days []anomaly.DayFigures) domain.ScanResult {
	if mock.ScanFiguresFunc == nil {
		panic("anomalyServiceMock.ScanFiguresFunc: method is nil but anomalyService.ScanFigures was just called")
	}
	callInfo := struct {
		Ctx      context.Context
		OutletID uuid.UUID
		Month    domain.Month
		Days     []anomaly.DayFigures
	}{Ctx: ctx, OutletID: outletID, Month: month, Days: days}
	mock.lockScanFigures.Lock()
	mock.calls.ScanFigures = append(mock.calls.ScanFigures, callInfo)
	mock.lockScanFigures.Unlock()
	return mock.ScanFiguresFunc(ctx, outletID, month, days)
}

func (mock *anomalyServiceMock) ScanFiguresCalls() []struct {
	Ctx      context.Context
	OutletID uuid.UUID
	Month    domain.Month
	Days     []anomaly.DayFigures
} {
	mock.lockScanFigures.RLock()
	calls := mock.calls.ScanFigures
	mock.lockScanFigures.RUnlock()
	return calls
}

func (mock *anomalyServiceMock) ScanMonth(ctx context.Context, outletID uuid.UUID, month domain.Month) (domain.ScanResult, error) {
	if mock.ScanMonthFunc == nil {
		panic("anomalyServiceMock.ScanMonthFunc: method is nil but anomalyService.ScanMonth was just called")
	}
	callInfo := struct {
		Ctx      context.Context
		OutletID uuid.UUID
		Month    domain.Month
	}{Ctx: ctx, OutletID: outletID, Month: month}
	mock.lockScanMonth.Lock()
	mock.calls.ScanMonth = append(mock.calls.ScanMonth, callInfo)
	mock.lockScanMonth.Unlock()
	return mock.ScanMonthFunc(ctx, outletID, month)
}

func (mock *anomalyServiceMock) ScanMonthCalls() []struct {
	Ctx      context.Context
	OutletID uuid.UUID
	Month    domain.Month
} {
	mock.lockScanMonth.RLock()
	calls := mock.calls.ScanMonth
	mock.lockScanMonth.RUnlock()
	return calls
}
