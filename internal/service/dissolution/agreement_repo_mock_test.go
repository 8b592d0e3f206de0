package dissolution

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/tandemlab/tandem-backend/internal/domain"
)

var _ agreementRepo = &agreementRepoMock{}

type agreementRepoMock struct {
	ListByCoupleStatusesFunc func(ctx context.Context, coupleID uuid.UUID, statuses []domain.AgreementStatus) ([]*domain.Agreement, error)
	DissolveByCoupleFunc     func(ctx context.Context, coupleID uuid.UUID) (int64, error)

	calls struct {
		ListByCoupleStatuses []struct {
			Ctx      context.Context
			CoupleID uuid.UUID
			Statuses []domain.AgreementStatus
		}
		DissolveByCouple []struct {
			Ctx      context.Context
			CoupleID uuid.UUID
		}
	}
	lockListByCoupleStatuses sync.RWMutex
	lockDissolveByCouple     sync.RWMutex
}

func (mock *agreementRepoMock) ListByCoupleStatuses(ctx context.Context, coupleID uuid.UUID, statuses []domain.AgreementStatus) ([]*domain.Agreement, error) {
	if mock.ListByCoupleStatusesFunc == nil {
		panic("agreementRepoMock.ListByCoupleStatusesFunc: method is nil but agreementRepo.ListByCoupleStatuses was just called")
	}
	callInfo := struct {
		Ctx      context.Context
		CoupleID uuid.UUID
		Statuses []domain.AgreementStatus
	}{Ctx: ctx, CoupleID: coupleID, Statuses: statuses}
	mock.lockListByCoupleStatuses.Lock()
	mock.calls.ListByCoupleStatuses = append(mock.calls.ListByCoupleStatuses, callInfo)
	mock.lockListByCoupleStatuses.Unlock()
	return mock.ListByCoupleStatusesFunc(ctx, coupleID, statuses)
}

func (mock *agreementRepoMock) ListByCoupleStatusesCalls() []struct {
	Ctx      context.Context
	CoupleID uuid.UUID
	Statuses []domain.AgreementStatus
} {
	mock.lockListByCoupleStatuses.RLock()
	calls := mock.calls.ListByCoupleStatuses
	mock.lockListByCoupleStatuses.RUnlock()
	return calls
}

func (mock *agreementRepoMock) DissolveByCouple(ctx context.Context, coupleID uuid.UUID) (int64, error) {
	if mock.DissolveByCoupleFunc == nil {
		panic("agreementRepoMock.DissolveByCoupleFunc: method is nil but agreementRepo.DissolveByCouple was just called")
	}
	callInfo := struct {
		Ctx      context.Context
		CoupleID uuid.UUID
	}{Ctx: ctx, CoupleID: coupleID}
	mock.lockDissolveByCouple.Lock()
	mock.calls.DissolveByCouple = append(mock.calls.DissolveByCouple, callInfo)
	mock.lockDissolveByCouple.Unlock()
	return mock.DissolveByCoupleFunc(ctx, coupleID)
}

func (mock *agreementRepoMock) DissolveByCoupleCalls() []struct {
	Ctx      context.Context
	CoupleID uuid.UUID
} {
	mock.lockDissolveByCouple.RLock()
	calls := mock.calls.DissolveByCouple
	mock.lockDissolveByCouple.RUnlock()
	return calls
}
