package domain

import (
	"strings"
	"time"
)

// Fallback phrases applied when the provider leaves fields empty.
const (
	FillerAction          = "숨 3번 길게 내쉬기"
	DefaultMissionSummary = "작게라도 몸과 마음을 돌보는 하루로 만들어봐요."
	DefaultMission        = "천천히 숨 고르기"
	DefaultComfort        = "아직 일기를 작성하지 않았어요. 이야기를 작성하고 마음 답장을 확인해요."

	ActionCount  = 3
	MaxHashtags  = 5
	MaxKeywords  = 3
	PreviewChars = 90
	PreviewLines = 2
)

// DefaultActions is used when the provider returned no actions at all.
var DefaultActions = []string{"물 한 잔 천천히 마시기", "5분 가볍게 걷기", FillerAction}

// Analysis is the cached AI reading of one entry.
type Analysis struct {
	ID             int64
	EntryID        int64
	Summary        string
	TriggerPattern string
	Actions        []string
	Hashtags       []string
	MissionSummary string
	FullText       string
	CreatedAt      time.Time
}

// MindCardPreview is the short card shown right after saving an entry.
type MindCardPreview struct {
	EntryID int64
	DateYmd string
	Title   string
	Mood    Mood
	Tags    []string
	Comfort string
	Mission string

	// AnalysisError is set when the card was built without an analysis.
	AnalysisError *AppError
}

// MindCardDetail is the full analysis view of an entry.
type MindCardDetail struct {
	EntryID        int64
	Summary        string
	TriggerPattern string
	Hashtags       []string
	Missions       []string
	MissionSummary string
	FullText       string
}

// NormalizeActions coerces the provider's action list to exactly ActionCount items.
func NormalizeActions(actions []string) []string {
	cleaned := make([]string, 0, len(actions))
	for _, a := range actions {
		if a = strings.TrimSpace(a); a != "" {
			cleaned = append(cleaned, a)
		}
	}

	if len(cleaned) == 0 {
		return append([]string(nil), DefaultActions...)
	}
	if len(cleaned) >= ActionCount {
		return cleaned[:ActionCount]
	}
	for len(cleaned) < ActionCount {
		cleaned = append(cleaned, FillerAction)
	}
	return cleaned
}

// NormalizeHashtags trims, drops blanks, forces a leading '#' and caps at MaxHashtags.
// The result is never nil.
func NormalizeHashtags(tags []string) []string {
	out := make([]string, 0, MaxHashtags)
	for _, t := range tags {
		t = strings.TrimSpace(t)
		if t == "" {
			continue
		}
		if !strings.HasPrefix(t, "#") {
			t = "#" + t
		}
		out = append(out, t)
		if len(out) == MaxHashtags {
			break
		}
	}
	return out
}

// NormalizeMissionSummary substitutes the default line for a blank summary.
func NormalizeMissionSummary(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return DefaultMissionSummary
	}
	return s
}

// FirstMission returns the first non-blank action or the default mission.
func (a *Analysis) FirstMission() string {
	if a != nil {
		for _, act := range a.Actions {
			if strings.TrimSpace(act) != "" {
				return act
			}
		}
	}
	return DefaultMission
}

// Comfort returns the short comfort text for a card.
func (a *Analysis) Comfort() string {
	if a == nil {
		return DefaultComfort
	}
	if p := BuildPreview(a.FullText, PreviewLines, PreviewChars); p != "" {
		return p
	}
	if s := strings.TrimSpace(a.Summary); s != "" {
		return s
	}
	return DefaultComfort
}
