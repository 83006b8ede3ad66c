package journal

import (
	"context"
	"fmt"

	"github.com/heartmarshall/mooddiary-backend/internal/domain"
)

// MoodMap returns the mood recorded on each day of ym that has a non-temporary entry.
func (s *Service) MoodMap(ctx context.Context, ym string) (map[string]domain.Mood, error) {
	owner, err := ownerFrom(ctx)
	if err != nil {
		return nil, err
	}
	from, to, err := monthBounds(ym)
	if err != nil {
		return nil, err
	}

	m, err := s.entries.MoodMap(ctx, owner, from, to)
	if err != nil {
		return nil, fmt.Errorf("journal.MoodMap: %w", err)
	}
	return m, nil
}

// TagCounts counts tag usage in ym, most used first.
func (s *Service) TagCounts(ctx context.Context, ym string) ([]domain.TagCount, error) {
	owner, err := ownerFrom(ctx)
	if err != nil {
		return nil, err
	}
	from, to, err := monthBounds(ym)
	if err != nil {
		return nil, err
	}

	counts, err := s.entries.TagCounts(ctx, owner, from, to)
	if err != nil {
		return nil, fmt.Errorf("journal.TagCounts: %w", err)
	}
	return counts, nil
}

// MoodStats counts entries per mood in ym, most frequent first.
func (s *Service) MoodStats(ctx context.Context, ym string) ([]domain.MoodStat, error) {
	owner, err := ownerFrom(ctx)
	if err != nil {
		return nil, err
	}
	from, to, err := monthBounds(ym)
	if err != nil {
		return nil, err
	}

	stats, err := s.entries.MoodStats(ctx, owner, from, to)
	if err != nil {
		return nil, fmt.Errorf("journal.MoodStats: %w", err)
	}
	return stats, nil
}

// TopTag returns the most used tag of ym, or "" when no entry of the month has tags.
func (s *Service) TopTag(ctx context.Context, ym string) (string, error) {
	counts, err := s.TagCounts(ctx, ym)
	if err != nil {
		return "", err
	}
	if len(counts) == 0 {
		return "", nil
	}
	return counts[0].Tag, nil
}
