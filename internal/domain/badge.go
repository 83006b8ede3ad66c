package domain

import "time"

// Badge is a catalog entry describing an achievement and the rule that earns it.
type Badge struct {
	ID          int64
	Name        string
	Description string
	RuleType    RuleType
	RuleValue   int
}

// BadgeGrant records that an owner earned a badge.
type BadgeGrant struct {
	OwnerID    OwnerID
	BadgeID    int64
	EarnedAt   time.Time
	IsSelected bool
}

// BadgeStatus is a catalog badge annotated with the owner's progress.
type BadgeStatus struct {
	Badge      Badge
	IsEarned   bool
	IsSelected bool
	EarnedAt   *time.Time
}

// BadgeStats are the aggregates badge rules are evaluated against.
type BadgeStats struct {
	EntryCount   int
	Streak       int
	DistinctMood int
}

// Satisfies reports whether stats meet the badge rule. Unknown rule types never match.
func (b Badge) Satisfies(stats BadgeStats) bool {
	switch b.RuleType {
	case RuleEntryCountAtLeast:
		return stats.EntryCount >= b.RuleValue
	case RuleStreakAtLeast:
		return stats.Streak >= b.RuleValue
	case RuleDistinctMoodAtLeast:
		return stats.DistinctMood >= b.RuleValue
	}
	return false
}

// Streak counts consecutive calendar days ending at the most recent date.
// dates must be YYYY-MM-DD strings sorted descending; duplicates are skipped,
// and an unparsable date stops the walk.
func Streak(datesDesc []string) int {
	if len(datesDesc) == 0 {
		return 0
	}

	prev, err := ParseDate(datesDesc[0])
	if err != nil {
		return 0
	}

	streak := 1
	for _, ymd := range datesDesc[1:] {
		cur, err := ParseDate(ymd)
		if err != nil {
			break
		}
		if cur.Equal(prev) {
			continue
		}
		if !cur.Equal(prev.AddDate(0, 0, -1)) {
			break
		}
		streak++
		prev = cur
	}
	return streak
}
