package domain

// CoupleStatus represents the lifecycle state of a couple link.
type CoupleStatus string

const (
	CoupleStatusActive             CoupleStatus = "active"
	CoupleStatusPendingDissolution CoupleStatus = "pending_dissolution"
	CoupleStatusDissolved          CoupleStatus = "dissolved"
)

func (s CoupleStatus) String() string { return string(s) }

func (s CoupleStatus) IsValid() bool {
	switch s {
	case CoupleStatusActive, CoupleStatusPendingDissolution, CoupleStatusDissolved:
		return true
	}
	return false
}

// AgreementStatus represents the lifecycle state of an agreement.
type AgreementStatus string

const (
	AgreementStatusPendingApproval     AgreementStatus = "pending_approval"
	AgreementStatusActive              AgreementStatus = "active"
	AgreementStatusPaused              AgreementStatus = "paused"
	AgreementStatusAchieved            AgreementStatus = "achieved"
	AgreementStatusArchived            AgreementStatus = "archived"
	AgreementStatusDissolvedWithCouple AgreementStatus = "dissolved_with_couple"
)

func (s AgreementStatus) String() string { return string(s) }

func (s AgreementStatus) IsValid() bool {
	switch s {
	case AgreementStatusPendingApproval, AgreementStatusActive, AgreementStatusPaused,
		AgreementStatusAchieved, AgreementStatusArchived, AgreementStatusDissolvedWithCouple:
		return true
	}
	return false
}

// IsTerminal reports whether no further transitions out of s are allowed.
func (s AgreementStatus) IsTerminal() bool {
	return s == AgreementStatusArchived || s == AgreementStatusDissolvedWithCouple
}

// AgreementType categorizes what kind of commitment an agreement is.
type AgreementType string

const (
	AgreementTypeBehavior      AgreementType = "behavior"
	AgreementTypeCommunication AgreementType = "communication"
	AgreementTypeRitual        AgreementType = "ritual"
	AgreementTypeExperiment    AgreementType = "experiment"
)

func (t AgreementType) String() string { return string(t) }

func (t AgreementType) IsValid() bool {
	switch t {
	case AgreementTypeBehavior, AgreementTypeCommunication, AgreementTypeRitual, AgreementTypeExperiment:
		return true
	}
	return false
}

// AgreementFrequency describes how often the commitment applies.
type AgreementFrequency string

const (
	FrequencyDaily       AgreementFrequency = "daily"
	FrequencyWeekly      AgreementFrequency = "weekly"
	FrequencySituational AgreementFrequency = "situational"
	FrequencyOnce        AgreementFrequency = "once"
)

func (f AgreementFrequency) String() string { return string(f) }

func (f AgreementFrequency) IsValid() bool {
	switch f {
	case FrequencyDaily, FrequencyWeekly, FrequencySituational, FrequencyOnce:
		return true
	}
	return false
}

// SuggestionStatus represents the state of an agreement suggestion.
type SuggestionStatus string

const (
	SuggestionStatusPending   SuggestionStatus = "pending"
	SuggestionStatusAccepted  SuggestionStatus = "accepted"
	SuggestionStatusDismissed SuggestionStatus = "dismissed"
)

func (s SuggestionStatus) String() string { return string(s) }

func (s SuggestionStatus) IsValid() bool {
	switch s {
	case SuggestionStatusPending, SuggestionStatusAccepted, SuggestionStatusDismissed:
		return true
	}
	return false
}

// ResponsibleParty names which couple member carries a suggestion's
// responsibility. "both" means shared responsibility.
type ResponsibleParty string

const (
	ResponsibleUserA ResponsibleParty = "user_a"
	ResponsibleUserB ResponsibleParty = "user_b"
	ResponsibleBoth  ResponsibleParty = "both"
)

func (p ResponsibleParty) String() string { return string(p) }

func (p ResponsibleParty) IsValid() bool {
	switch p {
	case ResponsibleUserA, ResponsibleUserB, ResponsibleBoth:
		return true
	}
	return false
}

// CheckinStatus is the self-reported outcome of one check-in.
type CheckinStatus string

const (
	CheckinStatusGood        CheckinStatus = "good"
	CheckinStatusPartial     CheckinStatus = "partial"
	CheckinStatusDifficult   CheckinStatus = "difficult"
	CheckinStatusNeedsChange CheckinStatus = "needs_change"
)

func (s CheckinStatus) String() string { return string(s) }

func (s CheckinStatus) IsValid() bool {
	switch s {
	case CheckinStatusGood, CheckinStatusPartial, CheckinStatusDifficult, CheckinStatusNeedsChange:
		return true
	}
	return false
}

// IsNegative reports whether the outcome resets the success streak.
func (s CheckinStatus) IsNegative() bool {
	return s == CheckinStatusDifficult || s == CheckinStatusNeedsChange
}

// InviteStatus represents the state of a partner invite code.
type InviteStatus string

const (
	InviteStatusPending InviteStatus = "pending"
	InviteStatusUsed    InviteStatus = "used"
	InviteStatusRevoked InviteStatus = "revoked"
)

func (s InviteStatus) String() string { return string(s) }

func (s InviteStatus) IsValid() bool {
	switch s {
	case InviteStatusPending, InviteStatusUsed, InviteStatusRevoked:
		return true
	}
	return false
}
