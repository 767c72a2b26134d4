package closure

import (
	"sync"
)

var _ verificationRecorder = &verificationRecorderMock{}

type verificationRecorderMock struct {
	ClosureVerificationFunc func(valid bool, reason string)

	calls struct {
		ClosureVerification []struct {
			Valid  bool
			Reason string
		}
	}
	lockClosureVerification sync.RWMutex
}

func (mock *verificationRecorderMock) ClosureVerification(valid bool, reason string) {
	if mock.ClosureVerificationFunc == nil {
		panic("verificationRecorderMock.ClosureVerificationFunc: method is nil but verificationRecorder.ClosureVerification was just called")
	}
	callInfo := struct {
		Valid  bool
		Reason string
	}{Valid: valid, Reason: reason}
	mock.lockClosureVerification.Lock()
	mock.calls.ClosureVerification = append(mock.calls.ClosureVerification, callInfo)
	mock.lockClosureVerification.Unlock()
	mock.ClosureVerificationFunc(valid, reason)
}

func (mock *verificationRecorderMock) ClosureVerificationCalls() []struct {
	Valid  bool
	Reason string
} {
	mock.lockClosureVerification.RLock()
	calls := mock.calls.ClosureVerification
	mock.lockClosureVerification.RUnlock()
	return calls
}
