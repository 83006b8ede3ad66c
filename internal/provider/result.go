// Package provider defines the provider-neutral contract of the diary
// analysis backends: request shapes, prompts, and the strict parsing of the
// JSON documents the model is asked to return.
package provider

// AnalysisRequest is the input for analyzing one diary entry.
type AnalysisRequest struct {
	DiaryText string
	MoodLabel string
	Tags      []string
}

// AnalysisResult is the parsed, not yet normalized, answer for one entry.
type AnalysisResult struct {
	Summary        string
	TriggerPattern string
	Actions        []string
	Hashtags       []string
	MissionSummary string
	FullText       string
}

// MonthlyRequest is the input for summarizing one month of entries.
type MonthlyRequest struct {
	YearMonth         string
	DominantMoodLabel string
	EntriesBrief      string
}

// MonthlyResult is the parsed answer for a month. Blank fields are allowed;
// Keywords are distinct and capped.
type MonthlyResult struct {
	OneLineSummary string
	DetailSummary  string
	EmotionFlow    string
	Keywords       []string
}
