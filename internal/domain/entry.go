package domain

import (
	"fmt"
	"time"
)

// DateLayout is the civil-date format used for entry dates (YYYY-MM-DD).
const DateLayout = "2006-01-02"

// MonthLayout is the format used for year-month keys (YYYY-MM).
const MonthLayout = "2006-01"

// Entry is one diary page. There is at most one entry per owner and date.
type Entry struct {
	ID          int64
	OwnerID     OwnerID
	DateYmd     string
	Title       string
	Content     string
	Mood        Mood
	Tags        []string
	IsFavorite  bool
	IsTemporary bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// MoodStat is the number of entries recorded with a mood.
type MoodStat struct {
	Mood  Mood
	Count int
}

// FavoriteCard is a favorited entry together with its cached analysis.
type FavoriteCard struct {
	Entry    Entry
	Analysis Analysis
}

// ParseDate parses a YYYY-MM-DD date as a UTC midnight.
func ParseDate(ymd string) (time.Time, error) {
	t, err := time.ParseInLocation(DateLayout, ymd, time.UTC)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse date %q: %w", ymd, err)
	}
	return t, nil
}

// FormatDate renders the civil date of t (in t's own location).
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

// MonthBounds returns the inclusive date range covering ym (YYYY-MM).
// The upper bound is always ym-31: dates are compared as strings, so
// non-existent days never match anything.
func MonthBounds(ym string) (string, string, error) {
	if _, err := time.Parse(MonthLayout, ym); err != nil {
		return "", "", fmt.Errorf("parse month %q: %w", ym, err)
	}
	return ym + "-01", ym + "-31", nil
}

// PreviousMonth returns the YYYY-MM key of the month before now.
func PreviousMonth(now time.Time) string {
	first := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	return first.AddDate(0, -1, 0).Format(MonthLayout)
}

// DaysSince counts calendar days from start to now, inclusive of the first day.
func DaysSince(start, now time.Time) int {
	s := time.Date(start.Year(), start.Month(), start.Day(), 0, 0, 0, 0, time.UTC)
	n := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	if n.Before(s) {
		return 1
	}
	return int(n.Sub(s).Hours()/24) + 1
}

// TagCount is the number of entries carrying a tag.
type TagCount struct {
	Tag   string
	Count int
}
