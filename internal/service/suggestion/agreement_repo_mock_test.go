package suggestion

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/tandemlab/tandem-backend/internal/domain"
)

var _ agreementRepo = &agreementRepoMock{}

type agreementRepoMock struct {
	CreateFunc                 func(ctx context.Context, a *domain.Agreement) (*domain.Agreement, error)
	ListAwaitingApprovalByFunc func(ctx context.Context, coupleID uuid.UUID, slot domain.CoupleSlot) ([]*domain.Agreement, error)

	calls struct {
		Create []struct {
			Ctx context.Context
			A   *domain.Agreement
		}
		ListAwaitingApprovalBy []struct {
			Ctx      context.Context
			CoupleID uuid.UUID
			Slot     domain.CoupleSlot
		}
	}
	lockCreate                 sync.RWMutex
	lockListAwaitingApprovalBy sync.RWMutex
}

func (mock *agreementRepoMock) Create(ctx context.Context, a *domain.Agreement) (*domain.Agreement, error) {
	if mock.CreateFunc == nil {
		panic("agreementRepoMock.CreateFunc: method is nil but agreementRepo.Create was just called")
	}
	callInfo := struct {
		Ctx context.Context
		A   *domain.Agreement
	}{Ctx: ctx, A: a}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, a)
}

func (mock *agreementRepoMock) CreateCalls() []struct {
	Ctx context.Context
	A   *domain.Agreement
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *agreementRepoMock) ListAwaitingApprovalBy(ctx context.Context, coupleID uuid.UUID, slot domain.CoupleSlot) ([]*domain.Agreement, error) {
	if mock.ListAwaitingApprovalByFunc == nil {
		panic("agreementRepoMock.ListAwaitingApprovalByFunc: method is nil but agreementRepo.ListAwaitingApprovalBy was just called")
	}
	callInfo := struct {
		Ctx      context.Context
		CoupleID uuid.UUID
		Slot     domain.CoupleSlot
	}{Ctx: ctx, CoupleID: coupleID, Slot: slot}
	mock.lockListAwaitingApprovalBy.Lock()
	mock.calls.ListAwaitingApprovalBy = append(mock.calls.ListAwaitingApprovalBy, callInfo)
	mock.lockListAwaitingApprovalBy.Unlock()
	return mock.ListAwaitingApprovalByFunc(ctx, coupleID, slot)
}

func (mock *agreementRepoMock) ListAwaitingApprovalByCalls() []struct {
	Ctx      context.Context
	CoupleID uuid.UUID
	Slot     domain.CoupleSlot
} {
	mock.lockListAwaitingApprovalBy.RLock()
	calls := mock.calls.ListAwaitingApprovalBy
	mock.lockListAwaitingApprovalBy.RUnlock()
	return calls
}
