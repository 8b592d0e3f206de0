package suggestion

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/tandemlab/tandem-backend/internal/domain"
)

var _ suggestionRepo = &suggestionRepoMock{}

type suggestionRepoMock struct {
	CreateFunc        func(ctx context.Context, s *domain.AgreementSuggestion) (*domain.AgreementSuggestion, error)
	GetByIDFunc       func(ctx context.Context, id uuid.UUID) (*domain.AgreementSuggestion, error)
	ListPendingFunc   func(ctx context.Context, coupleID uuid.UUID, sessionID *uuid.UUID) ([]*domain.AgreementSuggestion, error)
	MarkDismissedFunc func(ctx context.Context, id uuid.UUID) (bool, error)
	MarkAcceptedFunc  func(ctx context.Context, id, agreementID uuid.UUID) (*domain.AgreementSuggestion, error)

	calls struct {
		Create []struct {
			Ctx context.Context
			S   *domain.AgreementSuggestion
		}
		GetByID []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
		ListPending []struct {
			Ctx       context.Context
			CoupleID  uuid.UUID
			SessionID *uuid.UUID
		}
		MarkDismissed []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
		MarkAccepted []struct {
			Ctx         context.Context
			ID          uuid.UUID
			AgreementID uuid.UUID
		}
	}
	lockCreate        sync.RWMutex
	lockGetByID       sync.RWMutex
	lockListPending   sync.RWMutex
	lockMarkDismissed sync.RWMutex
	lockMarkAccepted  sync.RWMutex
}

func (mock *suggestionRepoMock) Create(ctx context.Context, s *domain.AgreementSuggestion) (*domain.AgreementSuggestion, error) {
	if mock.CreateFunc == nil {
		panic("suggestionRepoMock.CreateFunc: method is nil but suggestionRepo.Create was just called")
	}
	callInfo := struct {
		Ctx context.Context
		S   *domain.AgreementSuggestion
	}{Ctx: ctx, S: s}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, s)
}

func (mock *suggestionRepoMock) CreateCalls() []struct {
	Ctx context.Context
	S   *domain.AgreementSuggestion
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *suggestionRepoMock) GetByID(ctx context.Context, id uuid.UUID) (*domain.AgreementSuggestion, error) {
	if mock.GetByIDFunc == nil {
		panic("suggestionRepoMock.GetByIDFunc: method is nil but suggestionRepo.GetByID was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  uuid.UUID
	}{Ctx: ctx, ID: id}
	mock.lockGetByID.Lock()
	mock.calls.GetByID = append(mock.calls.GetByID, callInfo)
	mock.lockGetByID.Unlock()
	return mock.GetByIDFunc(ctx, id)
}

func (mock *suggestionRepoMock) GetByIDCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
} {
	mock.lockGetByID.RLock()
	calls := mock.calls.GetByID
	mock.lockGetByID.RUnlock()
	return calls
}

func (mock *suggestionRepoMock) ListPending(ctx context.Context, coupleID uuid.UUID, sessionID *uuid.UUID) ([]*domain.AgreementSuggestion, error) {
	if mock.ListPendingFunc == nil {
		panic("suggestionRepoMock.ListPendingFunc: method is nil but suggestionRepo.ListPending was just called")
	}
	callInfo := struct {
		Ctx       context.Context
		CoupleID  uuid.UUID
		SessionID *uuid.UUID
	}{Ctx: ctx, CoupleID: coupleID, SessionID: sessionID}
	mock.lockListPending.Lock()
	mock.calls.ListPending = append(mock.calls.ListPending, callInfo)
	mock.lockListPending.Unlock()
	return mock.ListPendingFunc(ctx, coupleID, sessionID)
}

func (mock *suggestionRepoMock) ListPendingCalls() []struct {
	Ctx       context.Context
	CoupleID  uuid.UUID
	SessionID *uuid.UUID
} {
	mock.lockListPending.RLock()
	calls := mock.calls.ListPending
	mock.lockListPending.RUnlock()
	return calls
}

func (mock *suggestionRepoMock) MarkDismissed(ctx context.Context, id uuid.UUID) (bool, error) {
	if mock.MarkDismissedFunc == nil {
		panic("suggestionRepoMock.MarkDismissedFunc: method is nil but suggestionRepo.MarkDismissed was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  uuid.UUID
	}{Ctx: ctx, ID: id}
	mock.lockMarkDismissed.Lock()
	mock.calls.MarkDismissed = append(mock.calls.MarkDismissed, callInfo)
	mock.lockMarkDismissed.Unlock()
	return mock.MarkDismissedFunc(ctx, id)
}

func (mock *suggestionRepoMock) MarkDismissedCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
} {
	mock.lockMarkDismissed.RLock()
	calls := mock.calls.MarkDismissed
	mock.lockMarkDismissed.RUnlock()
	return calls
}

func (mock *suggestionRepoMock) MarkAccepted(ctx context.Context, id, agreementID uuid.UUID) (*domain.AgreementSuggestion, error) {
	if mock.MarkAcceptedFunc == nil {
		panic("suggestionRepoMock.MarkAcceptedFunc: method is nil but suggestionRepo.MarkAccepted was just called")
	}
	callInfo := struct {
		Ctx         context.Context
		ID          uuid.UUID
		AgreementID uuid.UUID
	}{Ctx: ctx, ID: id, AgreementID: agreementID}
	mock.lockMarkAccepted.Lock()
	mock.calls.MarkAccepted = append(mock.calls.MarkAccepted, callInfo)
	mock.lockMarkAccepted.Unlock()
	return mock.MarkAcceptedFunc(ctx, id, agreementID)
}

func (mock *suggestionRepoMock) MarkAcceptedCalls() []struct {
	Ctx         context.Context
	ID          uuid.UUID
	AgreementID uuid.UUID
} {
	mock.lockMarkAccepted.RLock()
	calls := mock.calls.MarkAccepted
	mock.lockMarkAccepted.RUnlock()
	return calls
}
