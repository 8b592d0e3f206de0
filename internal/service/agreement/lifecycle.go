package agreement

import (
	"context"
	"fmt"

	"github.com/tandemlab/tandem-backend/internal/domain"
	"github.com/tandemlab/tandem-backend/pkg/ctxutil"
)

// Pause moves an active agreement to paused, storing the optional reason.
func (s *Service) Pause(ctx context.Context, input PauseInput) (*domain.Agreement, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	a, _, err := s.loadForMember(ctx, userID, input.AgreementID)
	if err != nil {
		return nil, err
	}

	if a.Status == domain.AgreementStatusPaused {
		return a, nil
	}
	if a.Status != domain.AgreementStatusActive {
		return nil, fmt.Errorf("cannot pause agreement in status %q: %w", a.Status, domain.ErrValidation)
	}

	paused, err := s.agreements.SetPaused(ctx, a.ID, a.Version, input.Reason)
	if err != nil {
		return nil, fmt.Errorf("pause agreement: %w", err)
	}

	s.log.Info("agreement paused", "agreement_id", a.ID, "user_id", userID)
	return paused, nil
}

// Resume moves a paused agreement back to active, clears the pause reason
// and reschedules the next check-in from now.
func (s *Service) Resume(ctx context.Context, input ResumeInput) (*domain.Agreement, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	a, _, err := s.loadForMember(ctx, userID, input.AgreementID)
	if err != nil {
		return nil, err
	}

	if a.Status == domain.AgreementStatusActive {
		return a, nil
	}
	if a.Status != domain.AgreementStatusPaused {
		return nil, fmt.Errorf("cannot resume agreement in status %q: %w", a.Status, domain.ErrValidation)
	}

	next := domain.NextCheckIn(s.now(), a.CheckInCadenceDays(s.defaultCheckInDays))

	resumed, err := s.agreements.SetActive(ctx, a.ID, a.Version, next)
	if err != nil {
		return nil, fmt.Errorf("resume agreement: %w", err)
	}

	s.log.Info("agreement resumed", "agreement_id", a.ID, "user_id", userID)
	return resumed, nil
}

// Achieve marks an agreement achieved. Allowed from active or
// pending_approval.
func (s *Service) Achieve(ctx context.Context, input AchieveInput) (*domain.Agreement, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	a, _, err := s.loadForMember(ctx, userID, input.AgreementID)
	if err != nil {
		return nil, err
	}

	if a.Status == domain.AgreementStatusAchieved {
		return a, nil
	}
	if a.Status != domain.AgreementStatusActive && a.Status != domain.AgreementStatusPendingApproval {
		return nil, fmt.Errorf("cannot achieve agreement in status %q: %w", a.Status, domain.ErrValidation)
	}

	achieved, err := s.agreements.SetStatus(ctx, a.ID, a.Version, domain.AgreementStatusAchieved)
	if err != nil {
		return nil, fmt.Errorf("achieve agreement: %w", err)
	}

	s.log.Info("agreement achieved", "agreement_id", a.ID, "user_id", userID)
	return achieved, nil
}

// Archive soft-deletes an agreement from any non-terminal state. The record
// is retained.
func (s *Service) Archive(ctx context.Context, input ArchiveInput) (*domain.Agreement, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	a, _, err := s.loadForMember(ctx, userID, input.AgreementID)
	if err != nil {
		return nil, err
	}

	if a.Status == domain.AgreementStatusArchived {
		return a, nil
	}
	if a.IsTerminal() {
		return nil, fmt.Errorf("cannot archive agreement in status %q: %w", a.Status, domain.ErrValidation)
	}

	archived, err := s.agreements.SetStatus(ctx, a.ID, a.Version, domain.AgreementStatusArchived)
	if err != nil {
		return nil, fmt.Errorf("archive agreement: %w", err)
	}

	s.log.Info("agreement archived", "agreement_id", a.ID, "user_id", userID)
	return archived, nil
}
