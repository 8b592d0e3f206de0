package dissolution

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/tandemlab/tandem-backend/internal/domain"
	"github.com/tandemlab/tandem-backend/pkg/ctxutil"
)

// InitiateInput holds the parameters for initiating a dissolution.
type InitiateInput struct {
	KeepLearnings bool
}

// ConfirmInput holds the parameters for confirming a dissolution.
type ConfirmInput struct {
	KeepLearnings bool
}

// InitiateResult is the outcome of initiating a dissolution.
type InitiateResult struct {
	Couple *domain.Couple
}

// ConfirmResult is the outcome of confirming a dissolution.
type ConfirmResult struct {
	Couple             *domain.Couple
	AgreementsAffected int64
}

// AgreementSummary is the partner-facing view of an agreement touched by a
// dissolution.
type AgreementSummary struct {
	ID             uuid.UUID
	Title          string
	UnderlyingNeed *string
}

// StatusResult answers the pending-dissolution query.
type StatusResult struct {
	Pending     bool
	Couple      *domain.Couple
	InitiatedBy *uuid.UUID
	Agreements  []AgreementSummary
}

// nonTerminalStatuses are the agreement statuses a dissolution cascade
// touches.
var nonTerminalStatuses = []domain.AgreementStatus{
	domain.AgreementStatusPendingApproval,
	domain.AgreementStatusActive,
	domain.AgreementStatusPaused,
	domain.AgreementStatusAchieved,
}

// Initiate starts a dissolution: the couple goes to pending_dissolution and
// the initiating user is unlinked immediately, regardless of the partner's
// later choice. Pending invite codes for both members are revoked.
func (s *Service) Initiate(ctx context.Context, input InitiateInput) (*InitiateResult, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	c, err := s.couples.GetByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("get couple: %w", err)
	}
	if c.Status == domain.CoupleStatusPendingDissolution {
		return nil, fmt.Errorf("dissolution of couple %s already initiated: %w", c.ID, domain.ErrConflict)
	}

	if input.KeepLearnings {
		s.extractLearnings(ctx, userID, c.ID)
	}

	var updated *domain.Couple
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		var txErr error
		updated, txErr = s.couples.MarkPendingDissolution(txCtx, c.ID, userID, s.now())
		if txErr != nil {
			return fmt.Errorf("mark pending dissolution: %w", txErr)
		}

		if txErr = s.users.ClearCoupleLink(txCtx, userID); txErr != nil {
			return fmt.Errorf("unlink initiator: %w", txErr)
		}

		if _, txErr = s.invites.RevokePendingByUsers(txCtx, []uuid.UUID{c.UserA, c.UserB}); txErr != nil {
			return fmt.Errorf("revoke invites: %w", txErr)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.metrics.RecordDissolutionStep("initiate")
	s.log.Info("dissolution initiated", "couple_id", c.ID, "initiated_by", userID)
	return &InitiateResult{Couple: updated}, nil
}

// Confirm completes a pending dissolution: the confirming user is unlinked,
// the couple is dissolved and every non-terminal agreement cascades to
// dissolved_with_couple.
func (s *Service) Confirm(ctx context.Context, input ConfirmInput) (*ConfirmResult, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	c, err := s.couples.GetPendingDissolutionByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("get pending dissolution: %w", err)
	}

	if input.KeepLearnings {
		s.extractLearnings(ctx, userID, c.ID)
	}

	var (
		updated  *domain.Couple
		affected int64
	)
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if txErr := s.users.ClearCoupleLink(txCtx, userID); txErr != nil {
			return fmt.Errorf("unlink user: %w", txErr)
		}

		var txErr error
		updated, txErr = s.couples.MarkDissolved(txCtx, c.ID)
		if txErr != nil {
			return fmt.Errorf("mark dissolved: %w", txErr)
		}

		affected, txErr = s.agreements.DissolveByCouple(txCtx, c.ID)
		if txErr != nil {
			return fmt.Errorf("dissolve agreements: %w", txErr)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.metrics.RecordDissolutionStep("confirm")
	s.log.Info("dissolution confirmed",
		"couple_id", c.ID, "confirmed_by", userID, "agreements_affected", affected)
	return &ConfirmResult{Couple: updated, AgreementsAffected: affected}, nil
}

// Cancel reverts a pending dissolution. Only the non-initiating partner may
// cancel; the initiator's linkage is restored.
func (s *Service) Cancel(ctx context.Context) (*domain.Couple, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	c, err := s.couples.GetPendingDissolutionByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("get pending dissolution: %w", err)
	}

	if c.DissolvedBy == nil {
		return nil, fmt.Errorf("couple %s has no recorded initiator: %w", c.ID, domain.ErrConflict)
	}
	initiator := *c.DissolvedBy
	if initiator == userID {
		return nil, fmt.Errorf("the initiator cannot cancel the dissolution: %w", domain.ErrForbidden)
	}

	partner, ok := c.PartnerOf(initiator)
	if !ok {
		return nil, fmt.Errorf("initiator %s is not a member of couple %s: %w", initiator, c.ID, domain.ErrConflict)
	}

	var updated *domain.Couple
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		var txErr error
		updated, txErr = s.couples.Reactivate(txCtx, c.ID)
		if txErr != nil {
			return fmt.Errorf("reactivate couple: %w", txErr)
		}

		// The initiator was unlinked at initiate time.
		if txErr = s.users.SetCoupleLink(txCtx, initiator, c.ID, partner); txErr != nil {
			return fmt.Errorf("relink initiator: %w", txErr)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.metrics.RecordDissolutionStep("cancel")
	s.log.Info("dissolution cancelled", "couple_id", c.ID, "cancelled_by", userID)
	return updated, nil
}

// Status reports whether the caller has a dissolution pending, who started
// it and which agreements it would touch. Read-only.
func (s *Service) Status(ctx context.Context) (*StatusResult, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	c, err := s.couples.GetPendingDissolutionByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return &StatusResult{Pending: false}, nil
		}
		return nil, fmt.Errorf("get pending dissolution: %w", err)
	}

	agreements, err := s.agreements.ListByCoupleStatuses(ctx, c.ID, nonTerminalStatuses)
	if err != nil {
		return nil, fmt.Errorf("list agreements: %w", err)
	}

	summaries := make([]AgreementSummary, 0, len(agreements))
	for _, a := range agreements {
		summaries = append(summaries, AgreementSummary{
			ID:             a.ID,
			Title:          a.Title,
			UnderlyingNeed: a.UnderlyingNeed,
		})
	}

	return &StatusResult{
		Pending:     true,
		Couple:      c,
		InitiatedBy: c.DissolvedBy,
		Agreements:  summaries,
	}, nil
}
