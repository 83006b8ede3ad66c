package domain

// Mood is the feeling the author picked for a diary entry.
// Storage values are stable and must not be renumbered.
type Mood int

const (
	MoodJoy        Mood = 1
	MoodConfidence Mood = 2
	MoodCalm       Mood = 3
	MoodNormal     Mood = 4
	MoodDepressed  Mood = 5
	MoodAngry      Mood = 6
	MoodTired      Mood = 7
)

// AllMoods lists every mood in storage order.
var AllMoods = []Mood{MoodJoy, MoodConfidence, MoodCalm, MoodNormal, MoodDepressed, MoodAngry, MoodTired}

var moodNames = map[Mood]string{
	MoodJoy:        "JOY",
	MoodConfidence: "CONFIDENCE",
	MoodCalm:       "CALM",
	MoodNormal:     "NORMAL",
	MoodDepressed:  "DEPRESSED",
	MoodAngry:      "ANGRY",
	MoodTired:      "TIRED",
}

var moodLabels = map[Mood]string{
	MoodJoy:        "기쁨",
	MoodConfidence: "자신감",
	MoodCalm:       "평온",
	MoodNormal:     "보통",
	MoodDepressed:  "우울",
	MoodAngry:      "화남",
	MoodTired:      "피곤",
}

// MoodFromDB decodes a stored value. Unknown values fall back to MoodNormal.
func MoodFromDB(v int) Mood {
	m := Mood(v)
	if !m.IsValid() {
		return MoodNormal
	}
	return m
}

// ParseMood resolves a mood by its name (JOY, CALM, ...).
func ParseMood(name string) (Mood, bool) {
	for m, n := range moodNames {
		if n == name {
			return m, true
		}
	}
	return 0, false
}

func (m Mood) String() string {
	if n, ok := moodNames[m]; ok {
		return n
	}
	return "NORMAL"
}

// Label is the localized display name used in provider prompts.
func (m Mood) Label() string {
	if l, ok := moodLabels[m]; ok {
		return l
	}
	return moodLabels[MoodNormal]
}

func (m Mood) IsValid() bool {
	_, ok := moodNames[m]
	return ok
}

// RuleType identifies how a badge is earned.
type RuleType string

const (
	RuleEntryCountAtLeast   RuleType = "ENTRY_COUNT_AT_LEAST"
	RuleStreakAtLeast       RuleType = "STREAK_AT_LEAST"
	RuleDistinctMoodAtLeast RuleType = "DISTINCT_MOOD_AT_LEAST"
)

func (r RuleType) String() string { return string(r) }

func (r RuleType) IsValid() bool {
	switch r {
	case RuleEntryCountAtLeast, RuleStreakAtLeast, RuleDistinctMoodAtLeast:
		return true
	}
	return false
}
