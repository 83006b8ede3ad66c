// Package digest builds and caches the AI summary of an owner's month.
package digest

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/heartmarshall/mooddiary-backend/internal/domain"
	"github.com/heartmarshall/mooddiary-backend/internal/provider"
	"github.com/heartmarshall/mooddiary-backend/pkg/ctxutil"
)

// digestRepo defines the digest repository interface needed by digest service.
type digestRepo interface {
	Get(ctx context.Context, owner domain.OwnerID, ym string) (*domain.MonthlyDigest, error)
	Upsert(ctx context.Context, d *domain.MonthlyDigest) error
	Year(ctx context.Context, owner domain.OwnerID, year int) ([]domain.MonthlyDigest, error)
}

// entryRepo defines the entry queries needed by digest service.
type entryRepo interface {
	MoodStats(ctx context.Context, owner domain.OwnerID, from, to string) ([]domain.MoodStat, error)
	List(ctx context.Context, owner domain.OwnerID, f domain.EntryFilter) ([]domain.Entry, error)
}

// monthSummarizer is the external provider writing the monthly summary.
type monthSummarizer interface {
	SummarizeMonth(ctx context.Context, req provider.MonthlyRequest) (*provider.MonthlyResult, error)
}

// reachability reports whether the provider can be reached at all.
type reachability interface {
	Available(ctx context.Context) bool
}

// txManager defines the transaction manager interface needed by digest service.
type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service implements the monthly digest.
type Service struct {
	log        *slog.Logger
	digests    digestRepo
	entries    entryRepo
	summarizer monthSummarizer
	network    reachability
	tx         txManager
	now        func() time.Time
}

// NewService creates a new digest service instance.
func NewService(
	logger *slog.Logger,
	digests digestRepo,
	entries entryRepo,
	summarizer monthSummarizer,
	network reachability,
	tx txManager,
) *Service {
	return &Service{
		log:        logger.With("service", "digest"),
		digests:    digests,
		entries:    entries,
		summarizer: summarizer,
		network:    network,
		tx:         tx,
		now:        time.Now,
	}
}

// EnsureMonthlyDigest returns the owner's digest of ym (YYYY-MM), asking the
// provider only when none is stored yet. A month without entries yields
// ErrNoEntries.
func (s *Service) EnsureMonthlyDigest(ctx context.Context, ym string) (*domain.MonthlyDigest, error) {
	owner, ok := ctxutil.OwnerFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	from, to, err := domain.MonthBounds(ym)
	if err != nil {
		return nil, domain.NewValidationError("month", "must be YYYY-MM")
	}

	cached, err := s.digests.Get(ctx, owner, ym)
	if err == nil {
		return cached, nil
	}
	if !errors.Is(err, domain.ErrNotFound) {
		return nil, fmt.Errorf("digest.EnsureMonthlyDigest cache: %w", err)
	}

	stats, err := s.entries.MoodStats(ctx, owner, from, to)
	if err != nil {
		return nil, fmt.Errorf("digest.EnsureMonthlyDigest stats: %w", err)
	}
	dominant, ok := domain.DominantMood(stats)
	if !ok {
		return nil, ErrNoEntries
	}

	if !s.network.Available(ctx) {
		return nil, domain.ErrNetworkUnavailable
	}

	entries, err := s.entries.List(ctx, owner, domain.EntryFilter{From: from, To: to, Limit: domain.MaxBriefEntries})
	if err != nil {
		return nil, fmt.Errorf("digest.EnsureMonthlyDigest entries: %w", err)
	}

	result, err := s.summarizer.SummarizeMonth(ctx, provider.MonthlyRequest{
		YearMonth:         ym,
		DominantMoodLabel: dominant.Label(),
		EntriesBrief:      provider.Brief(entries),
	})
	if err != nil {
		s.log.ErrorContext(ctx, "monthly provider error",
			slog.String("year_month", ym),
			slog.String("error", err.Error()),
		)
		return nil, fmt.Errorf("digest.EnsureMonthlyDigest provider: %w", err)
	}

	d := &domain.MonthlyDigest{
		OwnerID:        owner,
		YearMonth:      ym,
		DominantMood:   dominant,
		OneLineSummary: orDefault(result.OneLineSummary, domain.DefaultOneLineSummary),
		DetailSummary:  orDefault(result.DetailSummary, domain.DefaultDetailSummary),
		EmotionFlow:    orDefault(result.EmotionFlow, domain.DefaultEmotionFlow),
		Keywords:       provider.DistinctKeywords(result.Keywords, domain.MaxKeywords),
		UpdatedAt:      s.now().UTC(),
	}

	if err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		return s.digests.Upsert(txCtx, d)
	}); err != nil {
		return nil, fmt.Errorf("digest.EnsureMonthlyDigest store: %w", err)
	}

	s.log.InfoContext(ctx, "monthly digest created",
		slog.String("owner_id", owner.String()),
		slog.String("year_month", ym),
		slog.String("dominant_mood", dominant.String()),
	)
	return d, nil
}

// EnsureLastMonth is EnsureMonthlyDigest for the month before the current one.
func (s *Service) EnsureLastMonth(ctx context.Context) (*domain.MonthlyDigest, error) {
	return s.EnsureMonthlyDigest(ctx, domain.PreviousMonth(s.now()))
}

// Year lists the owner's stored digests of year, oldest month first.
func (s *Service) Year(ctx context.Context, year int) ([]domain.MonthlyDigest, error) {
	owner, ok := ctxutil.OwnerFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	if year < 1 || year > 9999 {
		return nil, domain.NewValidationError("year", "out of range")
	}

	list, err := s.digests.Year(ctx, owner, year)
	if err != nil {
		return nil, fmt.Errorf("digest.Year: %w", err)
	}
	return list, nil
}

func orDefault(s, def string) string {
	if s = strings.TrimSpace(s); s == "" {
		return def
	}
	return s
}
