package dissolution

import (
	"context"
	"sync"

	"github.com/google/uuid"
)

var _ userRepo = &userRepoMock{}

type userRepoMock struct {
	ClearCoupleLinkFunc func(ctx context.Context, id uuid.UUID) error
	SetCoupleLinkFunc   func(ctx context.Context, id, coupleID, partnerID uuid.UUID) error

	calls struct {
		ClearCoupleLink []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
		SetCoupleLink []struct {
			Ctx       context.Context
			ID        uuid.UUID
			CoupleID  uuid.UUID
			PartnerID uuid.UUID
		}
	}
	lockClearCoupleLink sync.RWMutex
	lockSetCoupleLink   sync.RWMutex
}

func (mock *userRepoMock) ClearCoupleLink(ctx context.Context, id uuid.UUID) error {
	if mock.ClearCoupleLinkFunc == nil {
		panic("userRepoMock.ClearCoupleLinkFunc: method is nil but userRepo.ClearCoupleLink was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  uuid.UUID
	}{Ctx: ctx, ID: id}
	mock.lockClearCoupleLink.Lock()
	mock.calls.ClearCoupleLink = append(mock.calls.ClearCoupleLink, callInfo)
	mock.lockClearCoupleLink.Unlock()
	return mock.ClearCoupleLinkFunc(ctx, id)
}

func (mock *userRepoMock) ClearCoupleLinkCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
} {
	mock.lockClearCoupleLink.RLock()
	calls := mock.calls.ClearCoupleLink
	mock.lockClearCoupleLink.RUnlock()
	return calls
}

func (mock *userRepoMock) SetCoupleLink(ctx context.Context, id, coupleID, partnerID uuid.UUID) error {
	if mock.SetCoupleLinkFunc == nil {
		panic("userRepoMock.SetCoupleLinkFunc: method is nil but userRepo.SetCoupleLink was just called")
	}
	callInfo := struct {
		Ctx       context.Context
		ID        uuid.UUID
		CoupleID  uuid.UUID
		PartnerID uuid.UUID
	}{Ctx: ctx, ID: id, CoupleID: coupleID, PartnerID: partnerID}
	mock.lockSetCoupleLink.Lock()
	mock.calls.SetCoupleLink = append(mock.calls.SetCoupleLink, callInfo)
	mock.lockSetCoupleLink.Unlock()
	return mock.SetCoupleLinkFunc(ctx, id, coupleID, partnerID)
}

func (mock *userRepoMock) SetCoupleLinkCalls() []struct {
	Ctx       context.Context
	ID        uuid.UUID
	CoupleID  uuid.UUID
	PartnerID uuid.UUID
} {
	mock.lockSetCoupleLink.RLock()
	calls := mock.calls.SetCoupleLink
	mock.lockSetCoupleLink.RUnlock()
	return calls
}
