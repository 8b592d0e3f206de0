package checkin

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/tandemlab/tandem-backend/internal/domain"
)

const (
	maxNotesLen = 2000
	maxListLen  = 100

	minOverrideDays = 1
	maxOverrideDays = 365
)

// RecordInput holds the parameters for recording a check-in.
type RecordInput struct {
	AgreementID         uuid.UUID
	Status              domain.CheckinStatus
	WhatWorked          *string
	WhatWasHard         *string
	PartnerFeedback     *string
	AdjustmentSuggested bool
	OverrideNextDays    *int
}

// Validate checks all fields and collects all errors.
func (i *RecordInput) Validate() error {
	var errs []domain.FieldError

	if i.AgreementID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "agreement_id", Message: "required"})
	}
	if !i.Status.IsValid() {
		errs = append(errs, domain.FieldError{Field: "status", Message: "must be good, partial, difficult, or needs_change"})
	}
	if i.WhatWorked != nil && len(*i.WhatWorked) > maxNotesLen {
		errs = append(errs, domain.FieldError{Field: "what_worked", Message: fmt.Sprintf("max %d characters", maxNotesLen)})
	}
	if i.WhatWasHard != nil && len(*i.WhatWasHard) > maxNotesLen {
		errs = append(errs, domain.FieldError{Field: "what_was_hard", Message: fmt.Sprintf("max %d characters", maxNotesLen)})
	}
	if i.PartnerFeedback != nil && len(*i.PartnerFeedback) > maxNotesLen {
		errs = append(errs, domain.FieldError{Field: "partner_feedback", Message: fmt.Sprintf("max %d characters", maxNotesLen)})
	}
	if i.OverrideNextDays != nil && (*i.OverrideNextDays < minOverrideDays || *i.OverrideNextDays > maxOverrideDays) {
		errs = append(errs, domain.FieldError{Field: "override_next_days", Message: fmt.Sprintf("must be between %d and %d", minOverrideDays, maxOverrideDays)})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// ListInput holds the parameters for listing an agreement's check-ins.
type ListInput struct {
	AgreementID uuid.UUID
	Limit       int
}

// Validate checks all fields and collects all errors.
func (i *ListInput) Validate() error {
	var errs []domain.FieldError

	if i.AgreementID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "agreement_id", Message: "required"})
	}
	if i.Limit < 0 || i.Limit > maxListLen {
		errs = append(errs, domain.FieldError{Field: "limit", Message: fmt.Sprintf("must be between 0 and %d", maxListLen)})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}
