package rest

import (
	"time"

	"github.com/heartmarshall/mooddiary-backend/internal/domain"
)

type entryResponse struct {
	ID          int64     `json:"id"`
	Date        string    `json:"date"`
	Title       string    `json:"title"`
	Content     string    `json:"content"`
	Mood        string    `json:"mood"`
	MoodLabel   string    `json:"moodLabel"`
	Tags        []string  `json:"tags"`
	IsFavorite  bool      `json:"isFavorite"`
	IsTemporary bool      `json:"isTemporary"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

func toEntryResponse(e domain.Entry) entryResponse {
	return entryResponse{
		ID:          e.ID,
		Date:        e.DateYmd,
		Title:       e.Title,
		Content:     e.Content,
		Mood:        e.Mood.String(),
		MoodLabel:   e.Mood.Label(),
		Tags:        nonNil(e.Tags),
		IsFavorite:  e.IsFavorite,
		IsTemporary: e.IsTemporary,
		CreatedAt:   e.CreatedAt,
		UpdatedAt:   e.UpdatedAt,
	}
}

func toEntryResponses(entries []domain.Entry) []entryResponse {
	out := make([]entryResponse, len(entries))
	for i, e := range entries {
		out[i] = toEntryResponse(e)
	}
	return out
}

type analysisResponse struct {
	EntryID        int64     `json:"entryId"`
	Summary        string    `json:"summary"`
	TriggerPattern string    `json:"triggerPattern"`
	Actions        []string  `json:"actions"`
	Hashtags       []string  `json:"hashtags"`
	MissionSummary string    `json:"missionSummary"`
	FullText       string    `json:"fullText"`
	CreatedAt      time.Time `json:"createdAt"`
}

func toAnalysisResponse(a domain.Analysis) analysisResponse {
	return analysisResponse{
		EntryID:        a.EntryID,
		Summary:        a.Summary,
		TriggerPattern: a.TriggerPattern,
		Actions:        nonNil(a.Actions),
		Hashtags:       nonNil(a.Hashtags),
		MissionSummary: a.MissionSummary,
		FullText:       a.FullText,
		CreatedAt:      a.CreatedAt,
	}
}

type previewResponse struct {
	EntryID       int64      `json:"entryId"`
	Date          string     `json:"date"`
	Title         string     `json:"title"`
	Mood          string     `json:"mood"`
	Tags          []string   `json:"tags"`
	Comfort       string     `json:"comfort"`
	Mission       string     `json:"mission"`
	AnalysisError *errorBody `json:"analysisError,omitempty"`
}

func toPreviewResponse(p *domain.MindCardPreview) previewResponse {
	resp := previewResponse{
		EntryID: p.EntryID,
		Date:    p.DateYmd,
		Title:   p.Title,
		Mood:    p.Mood.String(),
		Tags:    nonNil(p.Tags),
		Comfort: p.Comfort,
		Mission: p.Mission,
	}
	if p.AnalysisError != nil {
		resp.AnalysisError = &errorBody{
			Kind:    p.AnalysisError.Kind.String(),
			Message: p.AnalysisError.Message(),
		}
	}
	return resp
}

type detailResponse struct {
	EntryID        int64    `json:"entryId"`
	Summary        string   `json:"summary"`
	TriggerPattern string   `json:"triggerPattern"`
	Hashtags       []string `json:"hashtags"`
	Missions       []string `json:"missions"`
	MissionSummary string   `json:"missionSummary"`
	FullText       string   `json:"fullText"`
}

func toDetailResponse(d *domain.MindCardDetail) detailResponse {
	return detailResponse{
		EntryID:        d.EntryID,
		Summary:        d.Summary,
		TriggerPattern: d.TriggerPattern,
		Hashtags:       nonNil(d.Hashtags),
		Missions:       nonNil(d.Missions),
		MissionSummary: d.MissionSummary,
		FullText:       d.FullText,
	}
}

type favoriteResponse struct {
	Entry    entryResponse    `json:"entry"`
	Analysis analysisResponse `json:"analysis"`
}

type badgeResponse struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	RuleType    string `json:"ruleType"`
	RuleValue   int    `json:"ruleValue"`
}

func toBadgeResponse(b domain.Badge) badgeResponse {
	return badgeResponse{
		ID:          b.ID,
		Name:        b.Name,
		Description: b.Description,
		RuleType:    string(b.RuleType),
		RuleValue:   b.RuleValue,
	}
}

type badgeStatusResponse struct {
	badgeResponse
	IsEarned   bool       `json:"isEarned"`
	IsSelected bool       `json:"isSelected"`
	EarnedAt   *time.Time `json:"earnedAt,omitempty"`
}

type profileResponse struct {
	OwnerID         string         `json:"ownerId"`
	IsMember        bool           `json:"isMember"`
	Nickname        string         `json:"nickname"`
	Email           string         `json:"email,omitempty"`
	ProfileImageURI string         `json:"profileImageUri"`
	SelectedBadge   *badgeResponse `json:"selectedBadge,omitempty"`
	ServiceDays     int            `json:"serviceDays"`
}

type digestResponse struct {
	YearMonth      string    `json:"yearMonth"`
	DominantMood   string    `json:"dominantMood"`
	OneLineSummary string    `json:"oneLineSummary"`
	DetailSummary  string    `json:"detailSummary"`
	EmotionFlow    string    `json:"emotionFlow"`
	Keywords       []string  `json:"keywords"`
	UpdatedAt      time.Time `json:"updatedAt"`
}

func toDigestResponse(d domain.MonthlyDigest) digestResponse {
	return digestResponse{
		YearMonth:      d.YearMonth,
		DominantMood:   d.DominantMood.String(),
		OneLineSummary: d.OneLineSummary,
		DetailSummary:  d.DetailSummary,
		EmotionFlow:    d.EmotionFlow,
		Keywords:       nonNil(d.Keywords),
		UpdatedAt:      d.UpdatedAt,
	}
}

type moodCount struct {
	Mood  string `json:"mood"`
	Count int    `json:"count"`
}

type tagCount struct {
	Tag   string `json:"tag"`
	Count int    `json:"count"`
}

type monthStatsResponse struct {
	Month   string            `json:"month"`
	MoodMap map[string]string `json:"moodMap"`
	Moods   []moodCount       `json:"moods"`
	Tags    []tagCount        `json:"tags"`
	TopTag  string            `json:"topTag"`
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
