package domain

import (
	"time"

	"github.com/google/uuid"
)

// CoupleSlot identifies one of the two member positions in a couple.
// Responsibility and approval state are keyed to slots, not to an
// unbounded list of user ids, so membership invariants hold by construction.
type CoupleSlot string

const (
	SlotUserA CoupleSlot = "user_a"
	SlotUserB CoupleSlot = "user_b"
)

// Couple links two users. Created by the partner-linking flow; this
// subsystem only reads membership and writes status/dissolution fields.
// Couples are never physically deleted.
type Couple struct {
	ID          uuid.UUID
	UserA       uuid.UUID
	UserB       uuid.UUID
	Status      CoupleStatus
	DissolvedBy *uuid.UUID
	DissolvedAt *time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// IsMember reports whether userID is one of the couple's two members.
func (c *Couple) IsMember(userID uuid.UUID) bool {
	return userID == c.UserA || userID == c.UserB
}

// Slot returns the member position of userID within the couple.
func (c *Couple) Slot(userID uuid.UUID) (CoupleSlot, bool) {
	switch userID {
	case c.UserA:
		return SlotUserA, true
	case c.UserB:
		return SlotUserB, true
	}
	return "", false
}

// MemberAt returns the user id occupying the given slot.
func (c *Couple) MemberAt(slot CoupleSlot) uuid.UUID {
	if slot == SlotUserA {
		return c.UserA
	}
	return c.UserB
}

// PartnerOf returns the other member of the couple.
func (c *Couple) PartnerOf(userID uuid.UUID) (uuid.UUID, bool) {
	switch userID {
	case c.UserA:
		return c.UserB, true
	case c.UserB:
		return c.UserA, true
	}
	return uuid.Nil, false
}

// User is an application user. CoupleID/PartnerID form the linkage that
// dissolution clears and cancel restores.
type User struct {
	ID          uuid.UUID
	DisplayName string
	CoupleID    *uuid.UUID
	PartnerID   *uuid.UUID
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// IsLinked reports whether the user currently belongs to a couple.
func (u *User) IsLinked() bool { return u.CoupleID != nil }

// InviteCode is a pending partner-linking code. Dissolution revokes all
// pending codes of both members.
type InviteCode struct {
	ID        uuid.UUID
	Code      string
	UserID    uuid.UUID
	Status    InviteStatus
	ExpiresAt time.Time
	CreatedAt time.Time
}
