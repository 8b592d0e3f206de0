package domain

import "strings"

// Keyword groups for title classification. Groups are tested in order and
// the first match wins. Titles come from coaching sessions in German or
// English, so both vocabularies are covered.
var (
	communicationKeywords = []string{
		"zuhören", "zuhoren", "aussprechen", "ausreden", "kommunikation",
		"ich-botschaft", "feedback", "streit",
		"listen", "communicat", "argument", "interrupt",
	}
	ritualKeywords = []string{
		"jeden abend", "jeden morgen", "jede nacht", "gemeinsam", "ritual",
		"abendessen", "frühstück", "date",
		"every evening", "every morning", "every night", "together", "dinner",
	}
	experimentKeywords = []string{
		"experiment", "ausprobieren", "testen", "versuchen", "probe",
		"try", "trial", "test",
	}

	dailyKeywords = []string{
		"jeden tag", "täglich", "taglich", "jeden abend", "jeden morgen",
		"daily", "every day", "every evening", "every morning", "each day",
	}
	weeklyKeywords = []string{
		"jede woche", "wöchentlich", "wochentlich", "einmal pro woche",
		"weekly", "every week", "once a week",
	}
	onceKeywords = []string{
		"einmalig", "ein einziges mal", "once", "one time",
	}
)

// ClassifyTitle derives an agreement type and frequency from a free-text
// title using deterministic keyword rules. Pure and total: unknown input
// falls back to behavior/situational.
func ClassifyTitle(title string) (AgreementType, AgreementFrequency) {
	lower := strings.ToLower(title)

	typ := AgreementTypeBehavior
	switch {
	case containsAny(lower, communicationKeywords):
		typ = AgreementTypeCommunication
	case containsAny(lower, ritualKeywords):
		typ = AgreementTypeRitual
	case containsAny(lower, experimentKeywords):
		typ = AgreementTypeExperiment
	}

	freq := FrequencySituational
	switch {
	case containsAny(lower, dailyKeywords):
		freq = FrequencyDaily
	case containsAny(lower, weeklyKeywords):
		freq = FrequencyWeekly
	case containsAny(lower, onceKeywords):
		freq = FrequencyOnce
	}

	return typ, freq
}

func containsAny(s string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(s, kw) {
			return true
		}
	}
	return false
}
