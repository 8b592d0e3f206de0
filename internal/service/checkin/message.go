package checkin

import (
	"fmt"

	"github.com/tandemlab/tandem-backend/internal/domain"
)

// milestoneStreak is the streak length from which good check-ins get the
// milestone message instead of the per-status one.
const milestoneStreak = 4

var statusMessages = map[domain.CheckinStatus]string{
	domain.CheckinStatusGood:        "Great job! Keep the momentum going.",
	domain.CheckinStatusPartial:     "Progress counts. Small steps add up.",
	domain.CheckinStatusDifficult:   "That's okay. Hard stretches are part of the process.",
	domain.CheckinStatusNeedsChange: "Thanks for being honest. Consider adjusting this agreement together.",
}

// Message returns the supportive message for a check-in outcome, keyed on
// the resulting streak and status. Fixed English strings; localization
// happens in the presentation layer.
func Message(status domain.CheckinStatus, streak int) string {
	if status == domain.CheckinStatusGood && streak >= milestoneStreak {
		return fmt.Sprintf("Amazing! That's %d good check-ins in a row.", streak)
	}
	return statusMessages[status]
}
