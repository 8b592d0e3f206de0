package domain

import "time"

// experimentDurationDays is how long an experiment-type agreement runs
// before its end date.
const experimentDurationDays = 28

// NextCheckIn returns the next check-in instant: ref + frequencyDays days.
func NextCheckIn(ref time.Time, frequencyDays int) time.Time {
	return ref.AddDate(0, 0, frequencyDays)
}

// ExperimentEndDate returns the end date of an experiment started at ref,
// truncated to date granularity.
func ExperimentEndDate(ref time.Time) time.Time {
	end := ref.AddDate(0, 0, experimentDurationDays)
	return time.Date(end.Year(), end.Month(), end.Day(), 0, 0, 0, 0, end.Location())
}
