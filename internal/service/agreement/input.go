package agreement

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/tandemlab/tandem-backend/internal/domain"
)

const (
	maxTitleLen  = 200
	maxTextLen   = 2000
	maxReasonLen = 500
	maxThemes    = 20

	minCheckInDays = 1
	maxCheckInDays = 365
)

// ApproveInput holds the parameters for approving an agreement.
type ApproveInput struct {
	AgreementID uuid.UUID
}

// Validate checks all fields and collects all errors.
func (i *ApproveInput) Validate() error {
	var errs []domain.FieldError

	if i.AgreementID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "agreement_id", Message: "required"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// PauseInput holds the parameters for pausing an agreement.
type PauseInput struct {
	AgreementID uuid.UUID
	Reason      *string
}

// Validate checks all fields and collects all errors.
func (i *PauseInput) Validate() error {
	var errs []domain.FieldError

	if i.AgreementID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "agreement_id", Message: "required"})
	}
	if i.Reason != nil && len(*i.Reason) > maxReasonLen {
		errs = append(errs, domain.FieldError{Field: "reason", Message: fmt.Sprintf("max %d characters", maxReasonLen)})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// ResumeInput holds the parameters for resuming a paused agreement.
type ResumeInput struct {
	AgreementID uuid.UUID
}

// Validate checks all fields and collects all errors.
func (i *ResumeInput) Validate() error {
	var errs []domain.FieldError

	if i.AgreementID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "agreement_id", Message: "required"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// AchieveInput holds the parameters for marking an agreement achieved.
type AchieveInput struct {
	AgreementID uuid.UUID
}

// Validate checks all fields and collects all errors.
func (i *AchieveInput) Validate() error {
	var errs []domain.FieldError

	if i.AgreementID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "agreement_id", Message: "required"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// ArchiveInput holds the parameters for archiving an agreement.
type ArchiveInput struct {
	AgreementID uuid.UUID
}

// Validate checks all fields and collects all errors.
func (i *ArchiveInput) Validate() error {
	var errs []domain.FieldError

	if i.AgreementID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "agreement_id", Message: "required"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// UpdateInput holds the whitelisted fields of an agreement patch. Nil
// pointers leave the field unchanged.
type UpdateInput struct {
	AgreementID          uuid.UUID
	Title                *string
	Description          *string
	UnderlyingNeed       *string
	Type                 *domain.AgreementType
	Frequency            *domain.AgreementFrequency
	CheckInFrequencyDays *int
	Themes               []string
}

// Validate checks all fields and collects all errors.
func (i *UpdateInput) Validate() error {
	var errs []domain.FieldError

	if i.AgreementID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "agreement_id", Message: "required"})
	}
	if i.Title != nil {
		if *i.Title == "" {
			errs = append(errs, domain.FieldError{Field: "title", Message: "must not be empty"})
		} else if len(*i.Title) > maxTitleLen {
			errs = append(errs, domain.FieldError{Field: "title", Message: fmt.Sprintf("max %d characters", maxTitleLen)})
		}
	}
	if i.Description != nil && len(*i.Description) > maxTextLen {
		errs = append(errs, domain.FieldError{Field: "description", Message: fmt.Sprintf("max %d characters", maxTextLen)})
	}
	if i.UnderlyingNeed != nil && len(*i.UnderlyingNeed) > maxTextLen {
		errs = append(errs, domain.FieldError{Field: "underlying_need", Message: fmt.Sprintf("max %d characters", maxTextLen)})
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
	if len(i.Themes) > maxThemes {
		errs = append(errs, domain.FieldError{Field: "themes", Message: fmt.Sprintf("max %d entries", maxThemes)})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

func (i *UpdateInput) patch() domain.AgreementPatch {
	return domain.AgreementPatch{
		Title:                i.Title,
		Description:          i.Description,
		UnderlyingNeed:       i.UnderlyingNeed,
		Type:                 i.Type,
		Frequency:            i.Frequency,
		CheckInFrequencyDays: i.CheckInFrequencyDays,
		Themes:               i.Themes,
	}
}
