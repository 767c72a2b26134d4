package rest

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/sahakar/accounts-backend/internal/domain"
	"github.com/sahakar/accounts-backend/internal/service/ledger"
)

var _ ledgerService = &ledgerServiceMock{}

type ledgerServiceMock struct {
	CanEditFunc               func(ctx context.Context, input ledger.CanEditInput) ledger.EditDecision
	CreateTransactionFunc     func(ctx context.Context, input ledger.CreateTransactionInput) (ledger.CreateTransactionResult, error)
	DayTransactionsFunc       func(ctx context.Context, outletID uuid.UUID, date time.Time) ([]domain.Transaction, error)
	LockDayFunc               func(ctx context.Context, input ledger.LockDayInput) (ledger.LockResult, error)
	ReverseTransactionFunc    func(ctx context.Context, input ledger.ReverseTransactionInput) (ledger.ReversalResult, error)
	TransactionPermissionFunc func(ctx context.Context, transactionID uuid.UUID) (ledger.EditDecision, error)
	UnlockDayFunc             func(ctx context.Context, input ledger.UnlockDayInput) (ledger.LockResult, error)

	calls struct {
		CanEdit []struct {
			Ctx   context.Context
			Input ledger.CanEditInput
		}
		CreateTransaction []struct {
			Ctx   context.Context
			Input ledger.CreateTransactionInput
		}
		DayTransactions []struct {
			Ctx      context.Context
			OutletID uuid.UUID
			Date     time.Time
		}
		LockDay []struct {
			Ctx   context.Context
			Input ledger.LockDayInput
		}
		ReverseTransaction []struct {
			Ctx   context.Context
			Input ledger.ReverseTransactionInput
		}
		TransactionPermission []struct {
			Ctx           context.Context
			TransactionID uuid.UUID
		}
		UnlockDay []struct {
			Ctx   context.Context
			Input ledger.UnlockDayInput
		}
	}
	lockCanEdit               sync.RWMutex
	lockCreateTransaction     sync.RWMutex
	lockDayTransactions       sync.RWMutex
	lockLockDay               sync.RWMutex
	lockReverseTransaction    sync.RWMutex
	lockTransactionPermission sync.RWMutex
	lockUnlockDay             sync.RWMutex
}

func (mock *ledgerServiceMock) CanEdit(ctx context.Context, input ledger.CanEditInput) ledger.EditDecision {
	if mock.CanEditFunc == nil {
		panic("ledgerServiceMock.CanEditFunc: method is nil but ledgerService.CanEdit was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input ledger.CanEditInput
	}{Ctx: ctx, Input: input}
	mock.lockCanEdit.Lock()
	mock.calls.CanEdit = append(mock.calls.CanEdit, callInfo)
	mock.lockCanEdit.Unlock()
	return mock.CanEditFunc(ctx, input)
}

func (mock *ledgerServiceMock) CanEditCalls() []struct {
	Ctx   context.Context
	Input ledger.CanEditInput
} {
	mock.lockCanEdit.RLock()
	calls := mock.calls.CanEdit
	mock.lockCanEdit.RUnlock()
	return calls
}

func (mock *ledgerServiceMock) CreateTransaction(ctx context.Context, input ledger.CreateTransactionInput) (ledger.CreateTransactionResult, error) {
	if mock.CreateTransactionFunc == nil {
		panic("ledgerServiceMock.CreateTransactionFunc: method is nil but ledgerService.CreateTransaction was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input ledger.CreateTransactionInput
	}{Ctx: ctx, Input: input}
	mock.lockCreateTransaction.Lock()
	mock.calls.CreateTransaction = append(mock.calls.CreateTransaction, callInfo)
	mock.lockCreateTransaction.Unlock()
	return mock.CreateTransactionFunc(ctx, input)
}

func (mock *ledgerServiceMock) CreateTransactionCalls() []struct {
	Ctx   context.Context
	Input ledger.CreateTransactionInput
} {
	mock.lockCreateTransaction.RLock()
	calls := mock.calls.CreateTransaction
	mock.lockCreateTransaction.RUnlock()
	return calls
}

func (mock *ledgerServiceMock) DayTransactions(ctx context.Context, outletID uuid.UUID, date time.Time) ([]domain.Transaction, error) {
	if mock.DayTransactionsFunc == nil {
		panic("ledgerServiceMock.DayTransactionsFunc: method is nil but ledgerService.DayTransactions was just called")
	}
	callInfo := struct {
		Ctx      context.Context
		OutletID uuid.UUID
		Date     time.Time
	}{Ctx: ctx, OutletID: outletID, Date: date}
	mock.lockDayTransactions.Lock()
	mock.calls.DayTransactions = append(mock.calls.DayTransactions, callInfo)
	mock.lockDayTransactions.Unlock()
	return mock.DayTransactionsFunc(ctx, outletID, date)
}

func (mock *ledgerServiceMock) DayTransactionsCalls() []struct {
	Ctx      context.Context
	OutletID uuid.UUID
	Date     time.Time
} {
	mock.lockDayTransactions.RLock()
	calls := mock.calls.DayTransactions
	mock.lockDayTransactions.RUnlock()
	return calls
}

func (mock *ledgerServiceMock) LockDay(ctx context.Context, input ledger.LockDayInput) (ledger.LockResult, error) {
	if mock.LockDayFunc == nil {
		panic("ledgerServiceMock.LockDayFunc: method is nil but ledgerService.LockDay was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input ledger.LockDayInput
	}{Ctx: ctx, Input: input}
	mock.lockLockDay.Lock()
	mock.calls.LockDay = append(mock.calls.LockDay, callInfo)
	mock.lockLockDay.Unlock()
	return mock.LockDayFunc(ctx, input)
}

func (mock *ledgerServiceMock) LockDayCalls() []struct {
	Ctx   context.Context
	Input ledger.LockDayInput
} {
	mock.lockLockDay.RLock()
	calls := mock.calls.LockDay
	mock.lockLockDay.RUnlock()
	return calls
}

func (mock *ledgerServiceMock) ReverseTransaction(ctx context.Context, input ledger.ReverseTransactionInput) (ledger.ReversalResult, error) {
	if mock.ReverseTransactionFunc == nil {
		panic("ledgerServiceMock.ReverseTransactionFunc: method is nil but ledgerService.ReverseTransaction was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input ledger.ReverseTransactionInput
	}{Ctx: ctx, Input: input}
	mock.lockReverseTransaction.Lock()
	mock.calls.ReverseTransaction = append(mock.calls.ReverseTransaction, callInfo)
	mock.lockReverseTransaction.Unlock()
	return mock.ReverseTransactionFunc(ctx, input)
}

func (mock *ledgerServiceMock) ReverseTransactionCalls() []struct {
	Ctx   context.Context
	Input ledger.ReverseTransactionInput
} {
	mock.lockReverseTransaction.RLock()
	calls := mock.calls.ReverseTransaction
	mock.lockReverseTransaction.RUnlock()
	return calls
}

func (mock *ledgerServiceMock) TransactionPermission(ctx context.Context, transactionID uuid.UUID) (ledger.EditDecision, error) {
	if mock.TransactionPermissionFunc == nil {
		panic("ledgerServiceMock.TransactionPermissionFunc: method is nil but ledgerService.TransactionPermission was just called")
	}
	callInfo := struct {
		Ctx           context.Context
		TransactionID uuid.UUID
	}{Ctx: ctx, TransactionID: transactionID}
	mock.lockTransactionPermission.Lock()
	mock.calls.TransactionPermission = append(mock.calls.TransactionPermission, callInfo)
	mock.lockTransactionPermission.Unlock()
	return mock.TransactionPermissionFunc(ctx, transactionID)
}

func (mock *ledgerServiceMock) TransactionPermissionCalls() []struct {
	Ctx           context.Context
	TransactionID uuid.UUID
} {
	mock.lockTransactionPermission.RLock()
	calls := mock.calls.TransactionPermission
	mock.lockTransactionPermission.RUnlock()
	return calls
}

func (mock *ledgerServiceMock) UnlockDay(ctx context.Context, input ledger.UnlockDayInput) (ledger.LockResult, error) {
	if mock.UnlockDayFunc == nil {
		panic("ledgerServiceMock.UnlockDayFunc: method is nil but ledgerService.UnlockDay was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input ledger.UnlockDayInput
	}{Ctx: ctx, Input: input}
	mock.lockUnlockDay.Lock()
	mock.calls.UnlockDay = append(mock.calls.UnlockDay, callInfo)
	mock.lockUnlockDay.Unlock()
	return mock.UnlockDayFunc(ctx, input)
}

func (mock *ledgerServiceMock) UnlockDayCalls() []struct {
	Ctx   context.Context
	Input ledger.UnlockDayInput
} {
	mock.lockUnlockDay.RLock()
	calls := mock.calls.UnlockDay
	mock.lockUnlockDay.RUnlock()
	return calls
}
