package ledger

import (
	"sync"
)

var _ decisionRecorder = &decisionRecorderMock{}

type decisionRecorderMock struct {
	LedgerDecisionFunc func(operation string, allowed bool)

	calls struct {
		LedgerDecision []struct {
			Operation string
			Allowed   bool
		}
	}
	lockLedgerDecision sync.RWMutex
}

func (mock *decisionRecorderMock) LedgerDecision(operation string, allowed bool) {
	if mock.LedgerDecisionFunc == nil {
		panic("decisionRecorderMock.LedgerDecisionFunc: method is nil but decisionRecorder.LedgerDecision was just called")
	}
	callInfo := struct {
		Operation string
		Allowed   bool
	}{Operation: operation, Allowed: allowed}
	mock.lockLedgerDecision.Lock()
	mock.calls.LedgerDecision = append(mock.calls.LedgerDecision, callInfo)
	mock.lockLedgerDecision.Unlock()
	mock.LedgerDecisionFunc(operation, allowed)
}

func (mock *decisionRecorderMock) LedgerDecisionCalls() []struct {
	Operation string
	Allowed   bool
} {
	mock.lockLedgerDecision.RLock()
	calls := mock.calls.LedgerDecision
	mock.lockLedgerDecision.RUnlock()
	return calls
}
