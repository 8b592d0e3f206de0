package agreement

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/tandemlab/tandem-backend/internal/domain"
)

var _ agreementRepo = &agreementRepoMock{}

type agreementRepoMock struct {
	GetByIDFunc        func(ctx context.Context, id uuid.UUID) (*domain.Agreement, error)
	UpdateApprovalFunc func(ctx context.Context, id uuid.UUID, version int64, approved domain.ApprovalSet, status domain.AgreementStatus) (*domain.Agreement, error)
	SetPausedFunc      func(ctx context.Context, id uuid.UUID, version int64, reason *string) (*domain.Agreement, error)
	SetActiveFunc      func(ctx context.Context, id uuid.UUID, version int64, nextCheckInAt time.Time) (*domain.Agreement, error)
	SetStatusFunc      func(ctx context.Context, id uuid.UUID, version int64, status domain.AgreementStatus) (*domain.Agreement, error)
	UpdateFieldsFunc   func(ctx context.Context, id uuid.UUID, version int64, patch domain.AgreementPatch) (*domain.Agreement, error)

	calls struct {
		GetByID []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
		UpdateApproval []struct {
			Ctx      context.Context
			ID       uuid.UUID
			Version  int64
			Approved domain.ApprovalSet
			Status   domain.AgreementStatus
		}
		SetPaused []struct {
			Ctx     context.Context
			ID      uuid.UUID
			Version int64
			Reason  *string
		}
		SetActive []struct {
			Ctx           context.Context
			ID            uuid.UUID
			Version       int64
			NextCheckInAt time.Time
		}
		SetStatus []struct {
			Ctx     context.Context
			ID      uuid.UUID
			Version int64
			Status  domain.AgreementStatus
		}
		UpdateFields []struct {
			Ctx     context.Context
			ID      uuid.UUID
			Version int64
			Patch   domain.AgreementPatch
		}
	}
	lockGetByID        sync.RWMutex
	lockUpdateApproval sync.RWMutex
	lockSetPaused      sync.RWMutex
	lockSetActive      sync.RWMutex
	lockSetStatus      sync.RWMutex
	lockUpdateFields   sync.RWMutex
}

func (mock *agreementRepoMock) GetByID(ctx context.Context, id uuid.UUID) (*domain.Agreement, error) {
	if mock.GetByIDFunc == nil {
		panic("agreementRepoMock.GetByIDFunc: method is nil but agreementRepo.GetByID was just called")
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

func (mock *agreementRepoMock) GetByIDCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
} {
	mock.lockGetByID.RLock()
	calls := mock.calls.GetByID
	mock.lockGetByID.RUnlock()
	return calls
}

func (mock *agreementRepoMock) UpdateApproval(ctx context.Context, id uuid.UUID, version int64, approved domain.ApprovalSet, status domain.AgreementStatus) (*domain.Agreement, error) {
	if mock.UpdateApprovalFunc == nil {
		panic("agreementRepoMock.UpdateApprovalFunc: method is nil but agreementRepo.UpdateApproval was just called")
	}
	callInfo := struct {
		Ctx      context.Context
		ID       uuid.UUID
		Version  int64
		Approved domain.ApprovalSet
		Status   domain.AgreementStatus
	}{Ctx: ctx, ID: id, Version: version, Approved: approved, Status: status}
	mock.lockUpdateApproval.Lock()
	mock.calls.UpdateApproval = append(mock.calls.UpdateApproval, callInfo)
	mock.lockUpdateApproval.Unlock()
	return mock.UpdateApprovalFunc(ctx, id, version, approved, status)
}

func (mock *agreementRepoMock) UpdateApprovalCalls() []struct {
	Ctx      context.Context
	ID       uuid.UUID
	Version  int64
	Approved domain.ApprovalSet
	Status   domain.AgreementStatus
} {
	mock.lockUpdateApproval.RLock()
	calls := mock.calls.UpdateApproval
	mock.lockUpdateApproval.RUnlock()
	return calls
}

func (mock *agreementRepoMock) SetPaused(ctx context.Context, id uuid.UUID, version int64, reason *string) (*domain.Agreement, error) {
	if mock.SetPausedFunc == nil {
		panic("agreementRepoMock.SetPausedFunc: method is nil but agreementRepo.SetPaused was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		ID      uuid.UUID
		Version int64
		Reason  *string
	}{Ctx: ctx, ID: id, Version: version, Reason: reason}
	mock.lockSetPaused.Lock()
	mock.calls.SetPaused = append(mock.calls.SetPaused, callInfo)
	mock.lockSetPaused.Unlock()
	return mock.SetPausedFunc(ctx, id, version, reason)
}

func (mock *agreementRepoMock) SetPausedCalls() []struct {
	Ctx     context.Context
	ID      uuid.UUID
	Version int64
	Reason  *string
} {
	mock.lockSetPaused.RLock()
	calls := mock.calls.SetPaused
	mock.lockSetPaused.RUnlock()
	return calls
}

func (mock *agreementRepoMock) SetActive(ctx context.Context, id uuid.UUID, version int64, nextCheckInAt time.Time) (*domain.Agreement, error) {
	if mock.SetActiveFunc == nil {
		panic("agreementRepoMock.SetActiveFunc: method is nil but agreementRepo.SetActive was just called")
	}
	callInfo := struct {
		Ctx           context.Context
		ID            uuid.UUID
		Version       int64
		NextCheckInAt time.Time
	}{Ctx: ctx, ID: id, Version: version, NextCheckInAt: nextCheckInAt}
	mock.lockSetActive.Lock()
	mock.calls.SetActive = append(mock.calls.SetActive, callInfo)
	mock.lockSetActive.Unlock()
	return mock.SetActiveFunc(ctx, id, version, nextCheckInAt)
}

func (mock *agreementRepoMock) SetActiveCalls() []struct {
	Ctx           context.Context
	ID            uuid.UUID
	Version       int64
	NextCheckInAt time.Time
} {
	mock.lockSetActive.RLock()
	calls := mock.calls.SetActive
	mock.lockSetActive.RUnlock()
	return calls
}

func (mock *agreementRepoMock) SetStatus(ctx context.Context, id uuid.UUID, version int64, status domain.AgreementStatus) (*domain.Agreement, error) {
	if mock.SetStatusFunc == nil {
		panic("agreementRepoMock.SetStatusFunc: method is nil but agreementRepo.SetStatus was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		ID      uuid.UUID
		Version int64
		Status  domain.AgreementStatus
	}{Ctx: ctx, ID: id, Version: version, Status: status}
	mock.lockSetStatus.Lock()
	mock.calls.SetStatus = append(mock.calls.SetStatus, callInfo)
	mock.lockSetStatus.Unlock()
	return mock.SetStatusFunc(ctx, id, version, status)
}

func (mock *agreementRepoMock) SetStatusCalls() []struct {
	Ctx     context.Context
	ID      uuid.UUID
	Version int64
	Status  domain.AgreementStatus
} {
	mock.lockSetStatus.RLock()
	calls := mock.calls.SetStatus
	mock.lockSetStatus.RUnlock()
	return calls
}

func (mock *agreementRepoMock) UpdateFields(ctx context.Context, id uuid.UUID, version int64, patch domain.AgreementPatch) (*domain.Agreement, error) {
	if mock.UpdateFieldsFunc == nil {
		panic("agreementRepoMock.UpdateFieldsFunc: method is nil but agreementRepo.UpdateFields was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		ID      uuid.UUID
		Version int64
		Patch   domain.AgreementPatch
	}{Ctx: ctx, ID: id, Version: version, Patch: patch}
	mock.lockUpdateFields.Lock()
	mock.calls.UpdateFields = append(mock.calls.UpdateFields, callInfo)
	mock.lockUpdateFields.Unlock()
	return mock.UpdateFieldsFunc(ctx, id, version, patch)
}

func (mock *agreementRepoMock) UpdateFieldsCalls() []struct {
	Ctx     context.Context
	ID      uuid.UUID
	Version int64
	Patch   domain.AgreementPatch
} {
	mock.lockUpdateFields.RLock()
	calls := mock.calls.UpdateFields
	mock.lockUpdateFields.RUnlock()
	return calls
}
