package journal

import (
	"strings"
	"unicode/utf8"

	"github.com/heartmarshall/mooddiary-backend/internal/domain"
)

// Field limits for diary entries, counted in runes.
const (
	MaxTitleLen   = 100
	MaxContentLen = 10000
	MaxTags       = 10
)

// EntryInput holds the parameters for writing the entry of one day.
type EntryInput struct {
	DateYmd string
	Title   string
	Content string
	Mood    domain.Mood
	Tags    []string
}

func (i *EntryInput) normalize() {
	i.DateYmd = strings.TrimSpace(i.DateYmd)
	i.Title = strings.TrimSpace(i.Title)
	i.Content = strings.TrimSpace(i.Content)
	i.Tags = domain.NormalizeTags(i.Tags)
}

// Validate checks all fields and collects all errors. It expects a normalized input.
func (i EntryInput) Validate() error {
	var errs []domain.FieldError

	if _, err := domain.ParseDate(i.DateYmd); err != nil {
		errs = append(errs, domain.FieldError{Field: "date", Message: "must be YYYY-MM-DD"})
	}
	if i.Title == "" {
		errs = append(errs, domain.FieldError{Field: "title", Message: "required"})
	}
	if utf8.RuneCountInString(i.Title) > MaxTitleLen {
		errs = append(errs, domain.FieldError{Field: "title", Message: "max 100 characters"})
	}
	if i.Content == "" {
		errs = append(errs, domain.FieldError{Field: "content", Message: "required"})
	}
	if utf8.RuneCountInString(i.Content) > MaxContentLen {
		errs = append(errs, domain.FieldError{Field: "content", Message: "max 10000 characters"})
	}
	if !i.Mood.IsValid() {
		errs = append(errs, domain.FieldError{Field: "mood", Message: "unknown mood"})
	}
	if len(i.Tags) > MaxTags {
		errs = append(errs, domain.FieldError{Field: "tags", Message: "max 10 tags"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}
