package analysis

import (
	"context"
	"fmt"

	"github.com/heartmarshall/mooddiary-backend/internal/domain"
)

// PreviewFor builds the short mind card of an entry. The analysis is
// attempted through AnalyzeSafe; when it fails the card falls back to the
// default texts and carries the classified error.
func (s *Service) PreviewFor(ctx context.Context, entryID int64) (*domain.MindCardPreview, error) {
	owner, err := ownerFrom(ctx)
	if err != nil {
		return nil, err
	}

	entry, err := s.entries.GetByID(ctx, owner, entryID)
	if err != nil {
		return nil, fmt.Errorf("analysis.PreviewFor: %w", err)
	}

	a, err := s.AnalyzeSafe(ctx, entryID)
	preview := &domain.MindCardPreview{
		EntryID: entry.ID,
		DateYmd: entry.DateYmd,
		Title:   entry.Title,
		Mood:    entry.Mood,
		Tags:    entry.Tags,
		Comfort: a.Comfort(),
		Mission: a.FirstMission(),
	}
	if err != nil {
		preview.AnalysisError = domain.Classify(err)
	}
	return preview, nil
}

// Detail returns the full mind card of an analyzed entry.
func (s *Service) Detail(ctx context.Context, entryID int64) (*domain.MindCardDetail, error) {
	owner, err := ownerFrom(ctx)
	if err != nil {
		return nil, err
	}

	if _, err := s.entries.GetByID(ctx, owner, entryID); err != nil {
		return nil, fmt.Errorf("analysis.Detail: %w", err)
	}

	a, err := s.analyses.GetByEntryID(ctx, owner, entryID)
	if err != nil {
		return nil, fmt.Errorf("analysis.Detail: %w", err)
	}

	return &domain.MindCardDetail{
		EntryID:        entryID,
		Summary:        a.Summary,
		TriggerPattern: a.TriggerPattern,
		Hashtags:       a.Hashtags,
		Missions:       domain.NormalizeActions(a.Actions),
		MissionSummary: domain.NormalizeMissionSummary(a.MissionSummary),
		FullText:       a.FullText,
	}, nil
}
