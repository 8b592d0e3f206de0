package agreement

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/tandemlab/tandem-backend/internal/domain"
	"github.com/tandemlab/tandem-backend/pkg/ctxutil"
)

const (
	msgNowActive       = "Agreement is now active."
	msgAwaitingPartner = "Approval recorded. Waiting for your partner's approval."
)

// ApproveResult is the outcome of an approval.
type ApproveResult struct {
	Agreement   *domain.Agreement
	ApprovedBy  []uuid.UUID
	AllApproved bool
	Message     string
}

// Approve records the caller's approval on the agreement. Re-approving is a
// no-op. When every required approval is present, a pending_approval
// agreement transitions to active.
//
// Two partners may race here. The write is a version-conditioned
// compare-and-swap; on conflict the read-modify-write is retried a bounded
// number of times so that neither approval is lost and the activation
// happens exactly once.
func (s *Service) Approve(ctx context.Context, input ApproveInput) (*ApproveResult, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	for attempt := 0; attempt < s.approveMaxRetries; attempt++ {
		a, c, err := s.loadForMember(ctx, userID, input.AgreementID)
		if err != nil {
			return nil, err
		}

		if a.ResponsibleUserID != nil && *a.ResponsibleUserID != userID {
			return nil, fmt.Errorf("approval owed by the responsible user: %w", domain.ErrForbidden)
		}

		slot, _ := c.Slot(userID)

		// Idempotent re-approval: the caller's slot is already set, so
		// the state cannot change.
		if a.ApprovedBy.Has(slot) {
			return s.approveResult(a, c), nil
		}

		if a.Status != domain.AgreementStatusPendingApproval && a.Status != domain.AgreementStatusActive {
			return nil, fmt.Errorf("agreement in status %q is not open for approval: %w", a.Status, domain.ErrValidation)
		}

		approved := a.ApprovedBy
		approved.Add(slot)

		status := a.Status
		if !a.RequiresMutualApproval || approved.Both() {
			if status == domain.AgreementStatusPendingApproval {
				status = domain.AgreementStatusActive
			}
		}

		updated, err := s.agreements.UpdateApproval(ctx, a.ID, a.Version, approved, status)
		if errors.Is(err, domain.ErrConflict) {
			s.metrics.RecordApproveRetry()
			s.log.Debug("approval write conflicted, retrying",
				"agreement_id", a.ID, "attempt", attempt+1)
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("update approval: %w", err)
		}

		res := s.approveResult(updated, c)
		if res.AllApproved {
			s.metrics.RecordApproval("activated")
		} else {
			s.metrics.RecordApproval("awaiting_partner")
		}
		return res, nil
	}

	return nil, fmt.Errorf("approve agreement %s: retries exhausted: %w", input.AgreementID, domain.ErrConflict)
}

func (s *Service) approveResult(a *domain.Agreement, c *domain.Couple) *ApproveResult {
	res := &ApproveResult{
		Agreement:   a,
		ApprovedBy:  a.ApprovedBy.UserIDs(c),
		AllApproved: a.AllApproved(),
	}
	if res.AllApproved {
		res.Message = msgNowActive
	} else {
		res.Message = msgAwaitingPartner
	}
	return res
}
