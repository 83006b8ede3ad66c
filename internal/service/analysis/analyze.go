package analysis

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/heartmarshall/mooddiary-backend/internal/domain"
	"github.com/heartmarshall/mooddiary-backend/internal/provider"
)

// Analyze returns the analysis of an entry, asking the provider only when
// the cache has none. The provider is never called while a transaction is
// open. If another writer stored an analysis meanwhile, that row is returned.
// Errors keep their cause; see AnalyzeSafe for the classified variant.
func (s *Service) Analyze(ctx context.Context, entryID int64) (*domain.Analysis, error) {
	owner, err := ownerFrom(ctx)
	if err != nil {
		return nil, err
	}

	// 1. Cache, limited to the acting owner's entries.
	cached, err := s.analyses.GetByEntryID(ctx, owner, entryID)
	if err == nil {
		return cached, nil
	}
	if !errors.Is(err, domain.ErrNotFound) {
		return nil, fmt.Errorf("analysis.Analyze cache: %w", err)
	}

	// 2. Reachability, before any provider traffic.
	if !s.network.Available(ctx) {
		return nil, domain.ErrNetworkUnavailable
	}

	// 3. The entry must belong to the acting owner.
	entry, err := s.entries.GetByID(ctx, owner, entryID)
	if err != nil {
		return nil, fmt.Errorf("analysis.Analyze entry: %w", err)
	}

	// 4. Provider call (parsing happens in the adapter).
	result, err := s.analyzer.AnalyzeEntry(ctx, provider.AnalysisRequest{
		DiaryText: entry.Content,
		MoodLabel: entry.Mood.Label(),
		Tags:      entry.Tags,
	})
	if err != nil {
		s.log.ErrorContext(ctx, "analysis provider error",
			slog.Int64("entry_id", entryID),
			slog.String("error", err.Error()),
		)
		return nil, fmt.Errorf("analysis.Analyze provider: %w", err)
	}

	// 5. Normalize and store once.
	a := normalize(entryID, result)
	a.CreatedAt = s.now().UTC()

	var stored *domain.Analysis
	txErr := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		created, err := s.analyses.InsertIgnore(txCtx, a)
		if err != nil {
			return err
		}
		if !created {
			s.log.InfoContext(ctx, "analysis already cached by a concurrent writer",
				slog.Int64("entry_id", entryID))
		}
		stored, err = s.analyses.GetByEntryID(txCtx, owner, entryID)
		return err
	})
	if txErr != nil {
		return nil, fmt.Errorf("analysis.Analyze store: %w", txErr)
	}

	s.log.InfoContext(ctx, "entry analyzed",
		slog.String("owner_id", owner.String()),
		slog.Int64("entry_id", entryID),
	)
	return stored, nil
}

// AnalyzeSafe is Analyze with every failure converted to a *domain.AppError.
func (s *Service) AnalyzeSafe(ctx context.Context, entryID int64) (*domain.Analysis, error) {
	a, err := s.Analyze(ctx, entryID)
	if err != nil {
		return nil, domain.Classify(err)
	}
	return a, nil
}

// Get reads the cached analysis of one of the owner's entries without
// calling the provider.
func (s *Service) Get(ctx context.Context, entryID int64) (*domain.Analysis, error) {
	owner, err := ownerFrom(ctx)
	if err != nil {
		return nil, err
	}

	a, err := s.analyses.GetByEntryID(ctx, owner, entryID)
	if err != nil {
		return nil, fmt.Errorf("analysis.Get: %w", err)
	}
	return a, nil
}

func normalize(entryID int64, r *provider.AnalysisResult) *domain.Analysis {
	return &domain.Analysis{
		EntryID:        entryID,
		Summary:        strings.TrimSpace(r.Summary),
		TriggerPattern: strings.TrimSpace(r.TriggerPattern),
		Actions:        domain.NormalizeActions(r.Actions),
		Hashtags:       domain.NormalizeHashtags(r.Hashtags),
		MissionSummary: domain.NormalizeMissionSummary(r.MissionSummary),
		FullText:       strings.TrimSpace(r.FullText),
	}
}
