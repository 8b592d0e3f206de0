package agreement

import (
	"context"
	"fmt"

	"github.com/tandemlab/tandem-backend/internal/domain"
	"github.com/tandemlab/tandem-backend/pkg/ctxutil"
)

// Update applies a whitelist-only field patch to an agreement. Fields not
// present in the input are left unchanged; an empty patch returns the
// current record untouched.
func (s *Service) Update(ctx context.Context, input UpdateInput) (*domain.Agreement, error) {
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

	if a.IsTerminal() {
		return nil, fmt.Errorf("cannot update agreement in status %q: %w", a.Status, domain.ErrValidation)
	}

	patch := input.patch()
	if patch.IsEmpty() {
		return a, nil
	}

	updated, err := s.agreements.UpdateFields(ctx, a.ID, a.Version, patch)
	if err != nil {
		return nil, fmt.Errorf("update agreement: %w", err)
	}

	s.log.Info("agreement updated", "agreement_id", a.ID, "user_id", userID)
	return updated, nil
}
