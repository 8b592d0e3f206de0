package suggestion

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/tandemlab/tandem-backend/internal/domain"
)

const (
	maxTitleLen = 200
	maxNeedLen  = 2000

	minCheckInDays = 1
	maxCheckInDays = 365
)

// CreateInput holds the parameters for creating a suggestion. Suggestions
// arrive either from the analysis collaborator or from manual entry; both
// paths go through the same validation.
type CreateInput struct {
	CoupleID       uuid.UUID
	SessionID      *uuid.UUID
	Title          string
	UnderlyingNeed *string
	Responsible    domain.ResponsibleParty
}

// Validate checks all fields and collects all errors.
func (i *CreateInput) Validate() error {
	var errs []domain.FieldError

	if i.CoupleID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "couple_id", Message: "required"})
	}
	if i.Title == "" {
		errs = append(errs, domain.FieldError{Field: "title", Message: "required"})
	} else if len(i.Title) > maxTitleLen {
		errs = append(errs, domain.FieldError{Field: "title", Message: fmt.Sprintf("max %d characters", maxTitleLen)})
	}
	if i.UnderlyingNeed != nil && len(*i.UnderlyingNeed) > maxNeedLen {
		errs = append(errs, domain.FieldError{Field: "underlying_need", Message: fmt.Sprintf("max %d characters", maxNeedLen)})
	}
	if i.Responsible != "" && !i.Responsible.IsValid() {
		errs = append(errs, domain.FieldError{Field: "responsible", Message: "must be user_a, user_b, or both"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// ListInput holds the parameters for listing pending suggestions. When
// UserID is set the result also carries the pending approvals owed by that
// user.
type ListInput struct {
	CoupleID  uuid.UUID
	SessionID *uuid.UUID
	UserID    *uuid.UUID
}

// Validate checks all fields and collects all errors.
func (i *ListInput) Validate() error {
	var errs []domain.FieldError

	if i.CoupleID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "couple_id", Message: "required"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// DismissInput holds the parameters for dismissing a suggestion.
type DismissInput struct {
	SuggestionID uuid.UUID
}

// Validate checks all fields and collects all errors.
func (i *DismissInput) Validate() error {
	var errs []domain.FieldError

	if i.SuggestionID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "suggestion_id", Message: "required"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// AcceptInput holds the parameters for accepting a suggestion. Override
// fields take precedence over the suggestion's stored values; nil means
// "use the stored value".
type AcceptInput struct {
	SuggestionID         uuid.UUID
	Title                *string
	UnderlyingNeed       *string
	Responsible          *domain.ResponsibleParty
	Type                 *domain.AgreementType
	Frequency            *domain.AgreementFrequency
	CheckInFrequencyDays *int
}

// Validate checks all fields and collects all errors.
func (i *AcceptInput) Validate() error {
	var errs []domain.FieldError

	if i.SuggestionID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "suggestion_id", Message: "required"})
	}
	if i.Title != nil {
		if *i.Title == "" {
			errs = append(errs, domain.FieldError{Field: "title", Message: "must not be empty"})
		} else if len(*i.Title) > maxTitleLen {
			errs = append(errs, domain.FieldError{Field: "title", Message: fmt.Sprintf("max %d characters", maxTitleLen)})
		}
	}
	if i.UnderlyingNeed != nil && len(*i.UnderlyingNeed) > maxNeedLen {
		errs = append(errs, domain.FieldError{Field: "underlying_need", Message: fmt.Sprintf("max %d characters", maxNeedLen)})
	}
	if i.Responsible != nil && !i.Responsible.IsValid() {
		errs = append(errs, domain.FieldError{Field: "responsible", Message: "must be user_a, user_b, or both"})
	}
	if i.Type != nil && !i.Type.IsValid() {
		errs = append(errs, domain.FieldError{Field: "type", Message: "must be behavior, communication, ritual, or experiment"})
	}
	if i.Frequency != nil && !i.Frequency.IsValid() {
		errs = append(errs, domain.FieldError{Field: "frequency", Message: "must be daily, weekly, situational, or once"})
	}
	if i.CheckInFrequencyDays != nil && (*i.CheckInFrequencyDays < minCheckInDays || *i.CheckInFrequencyDays > maxCheckInDays) {
		errs = append(errs, domain.FieldError{Field: "check_in_frequency_days", Message: fmt.Sprintf("must be between %d and %d", minCheckInDays, maxCheckInDays)})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}
