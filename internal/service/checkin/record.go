package checkin

import (
	"context"
	"fmt"

	"github.com/tandemlab/tandem-backend/internal/domain"
	"github.com/tandemlab/tandem-backend/pkg/ctxutil"
)

// RecordResult is the outcome of recording a check-in.
type RecordResult struct {
	Checkin   *domain.AgreementCheckin
	Agreement *domain.Agreement
	Message   string
}

// Record appends an immutable check-in and updates the owning agreement's
// streak and schedule in a single transaction. Each call appends a new
// record; de-duplication is the caller's concern.
func (s *Service) Record(ctx context.Context, input RecordInput) (*RecordResult, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	a, err := s.agreements.GetByID(ctx, input.AgreementID)
	if err != nil {
		return nil, fmt.Errorf("get agreement: %w", err)
	}

	c, err := s.couples.GetByID(ctx, a.CoupleID)
	if err != nil {
		return nil, fmt.Errorf("get couple: %w", err)
	}
	if !c.IsMember(userID) {
		return nil, fmt.Errorf("user %s is not a member of couple %s: %w", userID, c.ID, domain.ErrForbidden)
	}

	if a.IsTerminal() {
		return nil, fmt.Errorf("cannot check in on agreement in status %q: %w", a.Status, domain.ErrValidation)
	}

	days := a.CheckInCadenceDays(s.defaultCheckInDays)
	if input.OverrideNextDays != nil {
		days = *input.OverrideNextDays
	}

	now := s.now()
	next := domain.NextCheckIn(now, days)

	streak := a.SuccessStreak
	switch {
	case input.Status == domain.CheckinStatusGood:
		streak++
	case input.Status.IsNegative():
		streak = 0
	}

	var (
		created *domain.AgreementCheckin
		updated *domain.Agreement
	)
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		var txErr error
		created, txErr = s.checkins.Create(txCtx, &domain.AgreementCheckin{
			AgreementID:         a.ID,
			Status:              input.Status,
			WhatWorked:          input.WhatWorked,
			WhatWasHard:         input.WhatWasHard,
			PartnerFeedback:     input.PartnerFeedback,
			AdjustmentSuggested: input.AdjustmentSuggested,
			NextCheckInAt:       next,
			CheckedInBy:         userID,
		})
		if txErr != nil {
			return fmt.Errorf("create checkin: %w", txErr)
		}

		updated, txErr = s.agreements.UpdateCheckInState(txCtx, a.ID, a.Version, streak, now, next)
		if txErr != nil {
			return fmt.Errorf("update agreement: %w", txErr)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.metrics.RecordCheckin(string(input.Status))
	s.log.Info("check-in recorded",
		"agreement_id", a.ID, "user_id", userID,
		"status", input.Status, "streak", updated.SuccessStreak)

	return &RecordResult{
		Checkin:   created,
		Agreement: updated,
		Message:   Message(input.Status, updated.SuccessStreak),
	}, nil
}

// List returns the agreement's check-ins, newest first.
func (s *Service) List(ctx context.Context, input ListInput) ([]*domain.AgreementCheckin, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	a, err := s.agreements.GetByID(ctx, input.AgreementID)
	if err != nil {
		return nil, fmt.Errorf("get agreement: %w", err)
	}

	c, err := s.couples.GetByID(ctx, a.CoupleID)
	if err != nil {
		return nil, fmt.Errorf("get couple: %w", err)
	}
	if !c.IsMember(userID) {
		return nil, fmt.Errorf("user %s is not a member of couple %s: %w", userID, c.ID, domain.ErrForbidden)
	}

	limit := input.Limit
	if limit == 0 {
		limit = 50
	}

	checkins, err := s.checkins.ListByAgreement(ctx, a.ID, limit)
	if err != nil {
		return nil, fmt.Errorf("list checkins: %w", err)
	}
	return checkins, nil
}
