package agreement

import (
	"sync"
)

var _ metricsRecorder = &metricsRecorderMock{}

type metricsRecorderMock struct {
	RecordApprovalFunc     func(outcome string)
	RecordApproveRetryFunc func()

	calls struct {
		RecordApproval []struct {
			Outcome string
		}
		RecordApproveRetry []struct {
		}
	}
	lockRecordApproval     sync.RWMutex
	lockRecordApproveRetry sync.RWMutex
}

func (mock *metricsRecorderMock) RecordApproval(outcome string) {
	if mock.RecordApprovalFunc == nil {
		panic("metricsRecorderMock.RecordApprovalFunc: method is nil but metricsRecorder.RecordApproval was just called")
	}
	callInfo := struct {
		Outcome string
	}{Outcome: outcome}
	mock.lockRecordApproval.Lock()
	mock.calls.RecordApproval = append(mock.calls.RecordApproval, callInfo)
	mock.lockRecordApproval.Unlock()
	mock.RecordApprovalFunc(outcome)
}

func (mock *metricsRecorderMock) RecordApprovalCalls() []struct {
	Outcome string
} {
	mock.lockRecordApproval.RLock()
	calls := mock.calls.RecordApproval
	mock.lockRecordApproval.RUnlock()
	return calls
}

func (mock *metricsRecorderMock) RecordApproveRetry() {
	if mock.RecordApproveRetryFunc == nil {
		panic("metricsRecorderMock.RecordApproveRetryFunc: method is nil but metricsRecorder.RecordApproveRetry was just called")
	}
	callInfo := struct {
	}{}
	mock.lockRecordApproveRetry.Lock()
	mock.calls.RecordApproveRetry = append(mock.calls.RecordApproveRetry, callInfo)
	mock.lockRecordApproveRetry.Unlock()
	mock.RecordApproveRetryFunc()
}

func (mock *metricsRecorderMock) RecordApproveRetryCalls() []struct {
} {
	mock.lockRecordApproveRetry.RLock()
	calls := mock.calls.RecordApproveRetry
	mock.lockRecordApproveRetry.RUnlock()
	return calls
}
