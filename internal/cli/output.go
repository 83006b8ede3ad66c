package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/araddon/dateparse"
	"github.com/fatih/color"

	"github.com/heartmarshall/mooddiary-backend/internal/domain"
)

var (
	okColor    = color.New(color.FgGreen)
	warnColor  = color.New(color.FgYellow)
	titleColor = color.New(color.Bold)
	dimColor   = color.New(color.Faint)
)

func printJSON(w io.Writer, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal JSON: %w", err)
	}
	_, err = fmt.Fprintln(w, string(data))
	return err
}

// printAppError reports a classified failure the way the UI would show it.
func printAppError(w io.Writer, err *domain.AppError) {
	warnColor.Fprintf(w, "%s: %s\n", err.Kind, err.Message())
}

// parseDay resolves a user supplied day to YYYY-MM-DD. Empty means today;
// "yesterday" and anything dateparse understands are accepted too.
func parseDay(raw string, now time.Time) (string, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "", "today":
		return domain.FormatDate(now), nil
	case "yesterday":
		return domain.FormatDate(now.AddDate(0, 0, -1)), nil
	}
	t, err := dateparse.ParseIn(raw, now.Location())
	if err != nil {
		return "", fmt.Errorf("invalid date %q: %w", raw, err)
	}
	return domain.FormatDate(t), nil
}

// parseMonth resolves a user supplied month to YYYY-MM. Empty means the
// current month.
func parseMonth(raw string, now time.Time) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return now.Format(domain.MonthLayout), nil
	}
	if t, err := time.Parse(domain.MonthLayout, raw); err == nil {
		return t.Format(domain.MonthLayout), nil
	}
	t, err := dateparse.ParseIn(raw, now.Location())
	if err != nil {
		return "", fmt.Errorf("invalid month %q: %w", raw, err)
	}
	return t.Format(domain.MonthLayout), nil
}

func parseMood(raw string) (domain.Mood, error) {
	m, ok := domain.ParseMood(strings.ToUpper(strings.TrimSpace(raw)))
	if !ok {
		names := make([]string, len(domain.AllMoods))
		for i, m := range domain.AllMoods {
			names[i] = strings.ToLower(m.String())
		}
		return 0, fmt.Errorf("unknown mood %q (one of %s)", raw, strings.Join(names, ", "))
	}
	return m, nil
}

func printEntry(w io.Writer, e domain.Entry) {
	star := " "
	if e.IsFavorite {
		star = "*"
	}
	titleColor.Fprintf(w, "%s %d\t%s\t%s\t%s", star, e.ID, e.DateYmd, e.Mood.Label(), e.Title)
	if len(e.Tags) > 0 {
		dimColor.Fprintf(w, "\t#%s", strings.Join(e.Tags, " #"))
	}
	fmt.Fprintln(w)
}

func printPreview(w io.Writer, p *domain.MindCardPreview) {
	titleColor.Fprintf(w, "%s  %s (%s)\n", p.DateYmd, p.Title, p.Mood.Label())
	fmt.Fprintf(w, "  %s\n", p.Comfort)
	okColor.Fprintf(w, "  오늘의 미션: %s\n", p.Mission)
	if p.AnalysisError != nil {
		printAppError(w, p.AnalysisError)
	}
}

// Describe renders a command failure for the terminal. Classified failures
// use their user-facing message; validation failures list their fields.
func Describe(err error) string {
	var verr *domain.ValidationError
	if errors.As(err, &verr) {
		parts := make([]string, len(verr.Errors))
		for i, f := range verr.Errors {
			parts[i] = f.Field + ": " + f.Message
		}
		return strings.Join(parts, "; ")
	}
	var appErr *domain.AppError
	if errors.As(err, &appErr) || errors.Is(err, domain.ErrNotFound) || errors.Is(err, domain.ErrUnauthorized) {
		c := domain.Classify(err)
		return fmt.Sprintf("%s: %s", c.Kind, c.Message())
	}
	return err.Error()
}
