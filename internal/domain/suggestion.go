package domain

import (
	"time"

	"github.com/google/uuid"
)

// AgreementSuggestion is a proposed-but-not-yet-binding agreement. Created
// either by the analysis collaborator from session content or manually.
// Immutable once accepted or dismissed.
type AgreementSuggestion struct {
	ID             uuid.UUID
	CoupleID       uuid.UUID
	SessionID      *uuid.UUID
	Title          string
	UnderlyingNeed *string
	Responsible    ResponsibleParty
	Status         SuggestionStatus
	AgreementID    *uuid.UUID
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// IsPending reports whether the suggestion can still be accepted or dismissed.
func (s *AgreementSuggestion) IsPending() bool {
	return s.Status == SuggestionStatusPending
}
