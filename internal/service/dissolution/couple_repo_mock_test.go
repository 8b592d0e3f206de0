package dissolution

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/tandemlab/tandem-backend/internal/domain"
)

var _ coupleRepo = &coupleRepoMock{}

type coupleRepoMock struct {
	GetByUserIDFunc                   func(ctx context.Context, userID uuid.UUID) (*domain.Couple, error)
	GetPendingDissolutionByUserIDFunc func(ctx context.Context, userID uuid.UUID) (*domain.Couple, error)
	MarkPendingDissolutionFunc        func(ctx context.Context, id, initiatedBy uuid.UUID, at time.Time) (*domain.Couple, error)
	MarkDissolvedFunc                 func(ctx context.Context, id uuid.UUID) (*domain.Couple, error)
	ReactivateFunc                    func(ctx context.Context, id uuid.UUID) (*domain.Couple, error)

	calls struct {
		GetByUserID []struct {
			Ctx    context.Context
			UserID uuid.UUID
		}
		GetPendingDissolutionByUserID []struct {
			Ctx    context.Context
			UserID uuid.UUID
		}
		MarkPendingDissolution []struct {
			Ctx         context.Context
			ID          uuid.UUID
			InitiatedBy uuid.UUID
			At          time.Time
		}
		MarkDissolved []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
		Reactivate []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
	}
	lockGetByUserID                   sync.RWMutex
	lockGetPendingDissolutionByUserID sync.RWMutex
	lockMarkPendingDissolution        sync.RWMutex
	lockMarkDissolved                 sync.RWMutex
	lockReactivate                    sync.RWMutex
}

func (mock *coupleRepoMock) GetByUserID(ctx context.Context, userID uuid.UUID) (*domain.Couple, error) {
	if mock.GetByUserIDFunc == nil {
		panic("coupleRepoMock.GetByUserIDFunc: method is nil but coupleRepo.GetByUserID was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID uuid.UUID
	}{Ctx: ctx, UserID: userID}
	mock.lockGetByUserID.Lock()
	mock.calls.GetByUserID = append(mock.calls.GetByUserID, callInfo)
	mock.lockGetByUserID.Unlock()
	return mock.GetByUserIDFunc(ctx, userID)
}

func (mock *coupleRepoMock) GetByUserIDCalls() []struct {
	Ctx    context.Context
	UserID uuid.UUID
} {
	mock.lockGetByUserID.RLock()
	calls := mock.calls.GetByUserID
	mock.lockGetByUserID.RUnlock()
	return calls
}

func (mock *coupleRepoMock) GetPendingDissolutionByUserID(ctx context.Context, userID uuid.UUID) (*domain.Couple, error) {
	if mock.GetPendingDissolutionByUserIDFunc == nil {
		panic("coupleRepoMock.GetPendingDissolutionByUserIDFunc: method is nil but coupleRepo.GetPendingDissolutionByUserID was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID uuid.UUID
	}{Ctx: ctx, UserID: userID}
	mock.lockGetPendingDissolutionByUserID.Lock()
	mock.calls.GetPendingDissolutionByUserID = append(mock.calls.GetPendingDissolutionByUserID, callInfo)
	mock.lockGetPendingDissolutionByUserID.Unlock()
	return mock.GetPendingDissolutionByUserIDFunc(ctx, userID)
}

func (mock *coupleRepoMock) GetPendingDissolutionByUserIDCalls() []struct {
	Ctx    context.Context
	UserID uuid.UUID
} {
	mock.lockGetPendingDissolutionByUserID.RLock()
	calls := mock.calls.GetPendingDissolutionByUserID
	mock.lockGetPendingDissolutionByUserID.RUnlock()
	return calls
}

func (mock *coupleRepoMock) MarkPendingDissolution(ctx context.Context, id, initiatedBy uuid.UUID, at time.Time) (*domain.Couple, error) {
	if mock.MarkPendingDissolutionFunc == nil {
		panic("coupleRepoMock.MarkPendingDissolutionFunc: method is nil but coupleRepo.MarkPendingDissolution was just called")
	}
	callInfo := struct {
		Ctx         context.Context
		ID          uuid.UUID
		InitiatedBy uuid.UUID
		At          time.Time
	}{Ctx: ctx, ID: id, InitiatedBy: initiatedBy, At: at}
	mock.lockMarkPendingDissolution.Lock()
	mock.calls.MarkPendingDissolution = append(mock.calls.MarkPendingDissolution, callInfo)
	mock.lockMarkPendingDissolution.Unlock()
	return mock.MarkPendingDissolutionFunc(ctx, id, initiatedBy, at)
}

func (mock *coupleRepoMock) MarkPendingDissolutionCalls() []struct {
	Ctx         context.Context
	ID          uuid.UUID
	InitiatedBy uuid.UUID
	At          time.Time
} {
	mock.lockMarkPendingDissolution.RLock()
	calls := mock.calls.MarkPendingDissolution
	mock.lockMarkPendingDissolution.RUnlock()
	return calls
}

func (mock *coupleRepoMock) MarkDissolved(ctx context.Context, id uuid.UUID) (*domain.Couple, error) {
	if mock.MarkDissolvedFunc == nil {
		panic("coupleRepoMock.MarkDissolvedFunc: method is nil but coupleRepo.MarkDissolved was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  uuid.UUID
	}{Ctx: ctx, ID: id}
	mock.lockMarkDissolved.Lock()
	mock.calls.MarkDissolved = append(mock.calls.MarkDissolved, callInfo)
	mock.lockMarkDissolved.Unlock()
	return mock.MarkDissolvedFunc(ctx, id)
}

func (mock *coupleRepoMock) MarkDissolvedCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
} {
	mock.lockMarkDissolved.RLock()
	calls := mock.calls.MarkDissolved
	mock.lockMarkDissolved.RUnlock()
	return calls
}

func (mock *coupleRepoMock) Reactivate(ctx context.Context, id uuid.UUID) (*domain.Couple, error) {
	if mock.ReactivateFunc == nil {
		panic("coupleRepoMock.ReactivateFunc: method is nil but coupleRepo.Reactivate was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  uuid.UUID
	}{Ctx: ctx, ID: id}
	mock.lockReactivate.Lock()
	mock.calls.Reactivate = append(mock.calls.Reactivate, callInfo)
	mock.lockReactivate.Unlock()
	return mock.ReactivateFunc(ctx, id)
}

func (mock *coupleRepoMock) ReactivateCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
} {
	mock.lockReactivate.RLock()
	calls := mock.calls.Reactivate
	mock.lockReactivate.RUnlock()
	return calls
}
