package suggestion

import (
	"context"
	"fmt"

	"github.com/tandemlab/tandem-backend/internal/domain"
	"github.com/tandemlab/tandem-backend/pkg/ctxutil"
)

// ListResult combines pending suggestions with the approvals owed by the
// requested user.
type ListResult struct {
	Suggestions      []*domain.AgreementSuggestion
	AwaitingApproval []*domain.Agreement
	Total            int
}

// Create persists a pending suggestion. Both the analysis collaborator and
// manual entry land here; when a user is present in the context they must
// belong to the target couple.
func (s *Service) Create(ctx context.Context, input CreateInput) (*domain.AgreementSuggestion, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	c, err := s.couples.GetByID(ctx, input.CoupleID)
	if err != nil {
		return nil, fmt.Errorf("get couple: %w", err)
	}
	if c.Status == domain.CoupleStatusDissolved {
		return nil, fmt.Errorf("couple %s is dissolved: %w", c.ID, domain.ErrValidation)
	}
	if userID, ok := ctxutil.UserIDFromCtx(ctx); ok && !c.IsMember(userID) {
		return nil, fmt.Errorf("user %s is not a member of couple %s: %w", userID, c.ID, domain.ErrForbidden)
	}

	responsible := input.Responsible
	if responsible == "" {
		responsible = domain.ResponsibleBoth
	}

	created, err := s.suggestions.Create(ctx, &domain.AgreementSuggestion{
		CoupleID:       input.CoupleID,
		SessionID:      input.SessionID,
		Title:          input.Title,
		UnderlyingNeed: input.UnderlyingNeed,
		Responsible:    responsible,
		Status:         domain.SuggestionStatusPending,
	})
	if err != nil {
		return nil, fmt.Errorf("create suggestion: %w", err)
	}

	s.log.Info("suggestion created", "suggestion_id", created.ID, "couple_id", created.CoupleID)
	return created, nil
}

// List returns the couple's pending suggestions, optionally filtered by
// session. When input.UserID is set the result additionally carries the
// pending_approval agreements still waiting on that user.
func (s *Service) List(ctx context.Context, input ListInput) (*ListResult, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	c, err := s.couples.GetByID(ctx, input.CoupleID)
	if err != nil {
		return nil, fmt.Errorf("get couple: %w", err)
	}
	if !c.IsMember(userID) {
		return nil, fmt.Errorf("user %s is not a member of couple %s: %w", userID, c.ID, domain.ErrForbidden)
	}

	suggestions, err := s.suggestions.ListPending(ctx, input.CoupleID, input.SessionID)
	if err != nil {
		return nil, fmt.Errorf("list suggestions: %w", err)
	}

	res := &ListResult{Suggestions: suggestions}

	if input.UserID != nil {
		slot, isMember := c.Slot(*input.UserID)
		if !isMember {
			return nil, domain.NewValidationError("user_id", "not a member of the couple")
		}
		awaiting, err := s.agreements.ListAwaitingApprovalBy(ctx, input.CoupleID, slot)
		if err != nil {
			return nil, fmt.Errorf("list awaiting approval: %w", err)
		}
		res.AwaitingApproval = awaiting
	}

	res.Total = len(res.Suggestions) + len(res.AwaitingApproval)
	return res, nil
}

// Dismiss marks a pending suggestion dismissed. Dismissing twice is a
// no-op, never an error; dismissing an accepted suggestion is a conflict.
func (s *Service) Dismiss(ctx context.Context, input DismissInput) (*domain.AgreementSuggestion, error) {
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

	switch sg.Status {
	case domain.SuggestionStatusDismissed:
		return sg, nil
	case domain.SuggestionStatusAccepted:
		return nil, fmt.Errorf("suggestion %s is already accepted: %w", sg.ID, domain.ErrConflict)
	}

	matched, err := s.suggestions.MarkDismissed(ctx, sg.ID)
	if err != nil {
		return nil, fmt.Errorf("dismiss suggestion: %w", err)
	}
	if !matched {
		// Lost a race with a concurrent accept or dismiss.
		current, getErr := s.suggestions.GetByID(ctx, sg.ID)
		if getErr != nil {
			return nil, fmt.Errorf("get suggestion: %w", getErr)
		}
		if current.Status == domain.SuggestionStatusDismissed {
			return current, nil
		}
		return nil, fmt.Errorf("suggestion %s is already accepted: %w", sg.ID, domain.ErrConflict)
	}

	dismissed := *sg
	dismissed.Status = domain.SuggestionStatusDismissed

	s.log.Info("suggestion dismissed", "suggestion_id", sg.ID, "user_id", userID)
	return &dismissed, nil
}
