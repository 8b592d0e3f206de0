package dissolution

import (
	"context"
	"sync"

	"github.com/google/uuid"
)

var _ learningsExtractor = &learningsExtractorMock{}

type learningsExtractorMock struct {
	ExtractLearningsFunc func(ctx context.Context, userID, coupleID uuid.UUID) error

	calls struct {
		ExtractLearnings []struct {
			Ctx      context.Context
			UserID   uuid.UUID
			CoupleID uuid.UUID
		}
	}
	lockExtractLearnings sync.RWMutex
}

func (mock *learningsExtractorMock) ExtractLearnings(ctx context.Context, userID, coupleID uuid.UUID) error {
	if mock.ExtractLearningsFunc == nil {
		panic("learningsExtractorMock.ExtractLearningsFunc: method is nil but learningsExtractor.ExtractLearnings was just called")
	}
	callInfo := struct {
		Ctx      context.Context
		UserID   uuid.UUID
		CoupleID uuid.UUID
	}{Ctx: ctx, UserID: userID, CoupleID: coupleID}
	mock.lockExtractLearnings.Lock()
	mock.calls.ExtractLearnings = append(mock.calls.ExtractLearnings, callInfo)
	mock.lockExtractLearnings.Unlock()
	return mock.ExtractLearningsFunc(ctx, userID, coupleID)
}

func (mock *learningsExtractorMock) ExtractLearningsCalls() []struct {
	Ctx      context.Context
	UserID   uuid.UUID
	CoupleID uuid.UUID
} {
	mock.lockExtractLearnings.RLock()
	calls := mock.calls.ExtractLearnings
	mock.lockExtractLearnings.RUnlock()
	return calls
}
