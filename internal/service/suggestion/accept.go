package suggestion

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/tandemlab/tandem-backend/internal/domain"
	"github.com/tandemlab/tandem-backend/pkg/ctxutil"
)

// AcceptResult is the outcome of accepting a suggestion.
type AcceptResult struct {
	Agreement              *domain.Agreement
	Suggestion             *domain.AgreementSuggestion
	PartnerApprovalPending bool
}

// Accept turns a pending suggestion into an agreement. Overrides win over
// the suggestion's stored values; the classifier fills type and frequency
// unless both are overridden. The accepting user implicitly approves.
func (s *Service) Accept(ctx context.Context, input AcceptInput) (*AcceptResult, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	sg, err := s.suggestions.GetByID(ctx, input.SuggestionID)
	if err != nil {
		return nil, fmt.Errorf("get suggestion: %w", err)
	}

	c, err := s.couples.GetByID(ctx, sg.CoupleID)
	if err != nil {
		return nil, fmt.Errorf("get couple: %w", err)
	}
	if !c.IsMember(userID) {
		return nil, fmt.Errorf("user %s is not a member of couple %s: %w", userID, c.ID, domain.ErrForbidden)
	}

	if !sg.IsPending() {
		return nil, fmt.Errorf("suggestion %s is already %s: %w", sg.ID, sg.Status, domain.ErrConflict)
	}

	title := sg.Title
	if input.Title != nil {
		title = *input.Title
	}
	need := sg.UnderlyingNeed
	if input.UnderlyingNeed != nil {
		need = input.UnderlyingNeed
	}

	responsible := sg.Responsible
	if input.Responsible != nil {
		responsible = *input.Responsible
	}
	responsibleUserID := resolveResponsible(c, responsible)

	aType, frequency := domain.ClassifyTitle(title)
	if input.Type != nil {
		aType = *input.Type
	}
	if input.Frequency != nil {
		frequency = *input.Frequency
	}

	cadence := s.defaultCheckInDays
	if aType == domain.AgreementTypeExperiment {
		cadence = s.experimentCheckInDays
	}
	if input.CheckInFrequencyDays != nil {
		cadence = *input.CheckInFrequencyDays
	}

	now := s.now()
	next := domain.NextCheckIn(now, cadence)

	requiresMutual := responsibleUserID == nil

	slot, _ := c.Slot(userID)
	var approved domain.ApprovalSet
	approved.Add(slot)

	status := domain.AgreementStatusPendingApproval
	if !requiresMutual && *responsibleUserID == userID {
		status = domain.AgreementStatusActive
	}

	a := &domain.Agreement{
		CoupleID:               sg.CoupleID,
		SourceSuggestionID:     &sg.ID,
		SourceSessionID:        sg.SessionID,
		Title:                  title,
		UnderlyingNeed:         need,
		Type:                   aType,
		Frequency:              frequency,
		Status:                 status,
		ResponsibleUserID:      responsibleUserID,
		RequiresMutualApproval: requiresMutual,
		ApprovedBy:             approved,
		CheckInFrequencyDays:   cadence,
		NextCheckInAt:          &next,
	}
	if aType == domain.AgreementTypeExperiment {
		end := domain.ExperimentEndDate(now)
		a.ExperimentEndDate = &end
	}

	var (
		created  *domain.Agreement
		accepted *domain.AgreementSuggestion
	)
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		var txErr error
		created, txErr = s.agreements.Create(txCtx, a)
		if txErr != nil {
			return fmt.Errorf("create agreement: %w", txErr)
		}

		accepted, txErr = s.suggestions.MarkAccepted(txCtx, sg.ID, created.ID)
		if txErr != nil {
			return fmt.Errorf("mark suggestion accepted: %w", txErr)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.Info("suggestion accepted",
		"suggestion_id", sg.ID, "agreement_id", created.ID,
		"user_id", userID, "status", created.Status)

	return &AcceptResult{
		Agreement:              created,
		Suggestion:             accepted,
		PartnerApprovalPending: created.Status == domain.AgreementStatusPendingApproval,
	}, nil
}

// resolveResponsible maps the responsible slot name onto an actual member
// id. "both" (or unset) means shared responsibility and yields nil.
func resolveResponsible(c *domain.Couple, responsible domain.ResponsibleParty) *uuid.UUID {
	switch responsible {
	case domain.ResponsibleUserA:
		id := c.UserA
		return &id
	case domain.ResponsibleUserB:
		id := c.UserB
		return &id
	default:
		return nil
	}
}
