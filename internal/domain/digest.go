package domain

import "time"

// Fallbacks for blank monthly digest fields.
const (
	DefaultOneLineSummary = "이번 달을 한 문장으로 정리해볼게요."
	DefaultDetailSummary  = "이번 달 기록을 바탕으로 한 요약을 준비 중이에요."
	DefaultEmotionFlow    = "안정 → 변화 → 회복"

	MaxBriefEntries = 25
	MaxBriefContent = 200
)

// MonthlyDigest is the cached AI summary of one owner's month.
type MonthlyDigest struct {
	OwnerID        OwnerID
	YearMonth      string
	DominantMood   Mood
	OneLineSummary string
	DetailSummary  string
	EmotionFlow    string
	Keywords       []string
	UpdatedAt      time.Time
}

// DominantMood picks the most frequent mood. Ties go to the lower mood
// value. ok is false for empty stats.
func DominantMood(stats []MoodStat) (Mood, bool) {
	best := MoodStat{}
	for _, s := range stats {
		if s.Count <= 0 {
			continue
		}
		if s.Count > best.Count || (s.Count == best.Count && s.Mood < best.Mood) {
			best = s
		}
	}
	if best.Count == 0 {
		return 0, false
	}
	return best.Mood, true
}
