package anomaly

import (
	"sync"
)

var _ findingRecorder = &findingRecorderMock{}

type findingRecorderMock struct {
	AnomalyFindingFunc func(kind string)

	calls struct {
		AnomalyFinding []struct {
			Kind string
		}
	}
	lockAnomalyFinding sync.RWMutex
}

func (mock *findingRecorderMock) AnomalyFinding(kind string) {
	if mock.AnomalyFindingFunc == nil {
		panic("findingRecorderMock.AnomalyFindingFunc: method is nil but findingRecorder.AnomalyFinding was just called")
	}
	callInfo := struct {
		Kind string
	}{Kind: kind}
	mock.lockAnomalyFinding.Lock()
	mock.calls.AnomalyFinding = append(mock.calls.AnomalyFinding, callInfo)
	mock.lockAnomalyFinding.Unlock()
	mock.AnomalyFindingFunc(kind)
}

func (mock *findingRecorderMock) AnomalyFindingCalls() []struct {
	Kind string
} {
	mock.lockAnomalyFinding.RLock()
	calls := mock.calls.AnomalyFinding
	mock.lockAnomalyFinding.RUnlock()
	return calls
}
