package domain

import (
	"time"

	"github.com/google/uuid"
)

// ApprovalSet records which of the couple's two members have approved an
// agreement. Modeled as two fixed slots rather than a list of user ids so
// that "approvedBy ⊆ {userA, userB}" cannot be violated.
type ApprovalSet struct {
	UserA bool
	UserB bool
}

// Has reports whether the member at slot has approved.
func (s ApprovalSet) Has(slot CoupleSlot) bool {
	if slot == SlotUserA {
		return s.UserA
	}
	return s.UserB
}

// Add marks the member at slot as having approved.
func (s *ApprovalSet) Add(slot CoupleSlot) {
	if slot == SlotUserA {
		s.UserA = true
	} else {
		s.UserB = true
	}
}

// Both reports whether both members have approved.
func (s ApprovalSet) Both() bool { return s.UserA && s.UserB }

// Count returns the number of approvals recorded.
func (s ApprovalSet) Count() int {
	n := 0
	if s.UserA {
		n++
	}
	if s.UserB {
		n++
	}
	return n
}

// UserIDs resolves the set into concrete user ids using the couple's
// membership.
func (s ApprovalSet) UserIDs(c *Couple) []uuid.UUID {
	ids := make([]uuid.UUID, 0, 2)
	if s.UserA {
		ids = append(ids, c.UserA)
	}
	if s.UserB {
		ids = append(ids, c.UserB)
	}
	return ids
}

// Agreement is a couple's durable behavioral commitment.
//
// Version supports optimistic concurrency: every mutating write is
// conditioned on the version the writer read, so two members updating the
// same agreement concurrently conflict instead of silently losing a write.
type Agreement struct {
	ID                     uuid.UUID
	CoupleID               uuid.UUID
	SourceSuggestionID     *uuid.UUID
	SourceSessionID        *uuid.UUID
	Title                  string
	Description            *string
	UnderlyingNeed         *string
	Type                   AgreementType
	Frequency              AgreementFrequency
	Status                 AgreementStatus
	ResponsibleUserID      *uuid.UUID
	RequiresMutualApproval bool
	ApprovedBy             ApprovalSet
	SuccessStreak          int
	CheckInFrequencyDays   int
	NextCheckInAt          *time.Time
	LastCheckInAt          *time.Time
	ExperimentEndDate      *time.Time
	PausedReason           *string
	Themes                 []string
	Version                int64
	CreatedAt              time.Time
	UpdatedAt              time.Time
}

// AllApproved reports whether the mutual-approval requirement is satisfied.
func (a *Agreement) AllApproved() bool {
	return !a.RequiresMutualApproval || a.ApprovedBy.Both()
}

// IsTerminal reports whether the agreement is in a terminal state.
func (a *Agreement) IsTerminal() bool { return a.Status.IsTerminal() }

// CheckInCadenceDays returns the agreement's check-in cadence, falling back
// to the given default when unset.
func (a *Agreement) CheckInCadenceDays(fallback int) int {
	if a.CheckInFrequencyDays > 0 {
		return a.CheckInFrequencyDays
	}
	return fallback
}

// AgreementPatch holds the whitelisted fields of an agreement update.
// Nil pointers mean "leave unchanged".
type AgreementPatch struct {
	Title                *string
	Description          *string
	UnderlyingNeed       *string
	Type                 *AgreementType
	Frequency            *AgreementFrequency
	CheckInFrequencyDays *int
	Themes               []string
}

// IsEmpty reports whether the patch changes nothing.
func (p AgreementPatch) IsEmpty() bool {
	return p.Title == nil && p.Description == nil && p.UnderlyingNeed == nil &&
		p.Type == nil && p.Frequency == nil && p.CheckInFrequencyDays == nil &&
		p.Themes == nil
}

// AgreementCheckin is an immutable record of one check-in event.
// Append-only: never mutated or deleted.
type AgreementCheckin struct {
	ID                  uuid.UUID
	AgreementID         uuid.UUID
	Status              CheckinStatus
	WhatWorked          *string
	WhatWasHard         *string
	PartnerFeedback     *string
	AdjustmentSuggested bool
	NextCheckInAt       time.Time
	CheckedInBy         uuid.UUID
	CreatedAt           time.Time
}
