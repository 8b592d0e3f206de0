package dissolution

import (
	"sync"
)

var _ metricsRecorder = &metricsRecorderMock{}

type metricsRecorderMock struct {
	RecordDissolutionStepFunc func(step string)

	calls struct {
		RecordDissolutionStep []struct {
			Step string
		}
	}
	lockRecordDissolutionStep sync.RWMutex
}

func (mock *metricsRecorderMock) RecordDissolutionStep(step string) {
	if mock.RecordDissolutionStepFunc == nil {
		panic("metricsRecorderMock.RecordDissolutionStepFunc: method is nil but metricsRecorder.RecordDissolutionStep was just called")
	}
	callInfo := struct {
		Step string
	}{Step: step}
	mock.lockRecordDissolutionStep.Lock()
	mock.calls.RecordDissolutionStep = append(mock.calls.RecordDissolutionStep, callInfo)
	mock.lockRecordDissolutionStep.Unlock()
	mock.RecordDissolutionStepFunc(step)
}

func (mock *metricsRecorderMock) RecordDissolutionStepCalls() []struct {
	Step string
} {
	mock.lockRecordDissolutionStep.RLock()
	calls := mock.calls.RecordDissolutionStep
	mock.lockRecordDissolutionStep.RUnlock()
	return calls
}
