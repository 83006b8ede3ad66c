// Package mindcard composes writing an entry with its mind card: save,
// badge evaluation, analysis and preview in one call.
package mindcard

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/heartmarshall/mooddiary-backend/internal/domain"
	"github.com/heartmarshall/mooddiary-backend/internal/service/journal"
)

// entryWriter saves an entry and evaluates badges.
type entryWriter interface {
	UpsertEntry(ctx context.Context, input journal.EntryInput) (*domain.Entry, error)
}

// previewer builds the mind card of a saved entry.
type previewer interface {
	PreviewFor(ctx context.Context, entryID int64) (*domain.MindCardPreview, error)
}

// Service implements the save-and-prepare flow.
type Service struct {
	log      *slog.Logger
	journal  entryWriter
	previews previewer
	now      func() time.Time
}

// NewService creates a new mind card service instance.
func NewService(logger *slog.Logger, journal entryWriter, previews previewer) *Service {
	return &Service{
		log:      logger.With("service", "mindcard"),
		journal:  journal,
		previews: previews,
		now:      time.Now,
	}
}

// SaveAndPrepare saves the entry (dated today when input.DateYmd is blank)
// and returns its mind card. A failed analysis does not fail the call: the
// card then carries the default texts and Preview.AnalysisError.
func (s *Service) SaveAndPrepare(ctx context.Context, input journal.EntryInput) (*domain.MindCardPreview, error) {
	if strings.TrimSpace(input.DateYmd) == "" {
		input.DateYmd = domain.FormatDate(s.now())
	}

	saved, err := s.journal.UpsertEntry(ctx, input)
	if err != nil {
		return nil, fmt.Errorf("mindcard.SaveAndPrepare: %w", err)
	}

	preview, err := s.previews.PreviewFor(ctx, saved.ID)
	if err != nil {
		return nil, fmt.Errorf("mindcard.SaveAndPrepare preview: %w", err)
	}

	if preview.AnalysisError != nil {
		s.log.WarnContext(ctx, "mind card prepared without analysis",
			slog.Int64("entry_id", saved.ID),
			slog.String("kind", preview.AnalysisError.Kind.String()),
		)
	}
	return preview, nil
}
