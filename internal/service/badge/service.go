// Package badge evaluates achievement rules and manages the badges an owner shows.
package badge

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/heartmarshall/mooddiary-backend/internal/domain"
)

// StreakWindow is how many recent entry dates are inspected for a streak.
const StreakWindow = 400

// entryStats defines the entry aggregates needed by badge service.
type entryStats interface {
	Count(ctx context.Context, owner domain.OwnerID) (int, error)
	DistinctMoodCount(ctx context.Context, owner domain.OwnerID) (int, error)
	DatesDesc(ctx context.Context, owner domain.OwnerID, limit int) ([]string, error)
}

// badgeRepo defines the badge repository interface needed by badge service.
type badgeRepo interface {
	List(ctx context.Context) ([]domain.Badge, error)
	Grant(ctx context.Context, owner domain.OwnerID, badgeID int64, at time.Time) (bool, error)
	Statuses(ctx context.Context, owner domain.OwnerID) ([]domain.BadgeStatus, error)
	Selected(ctx context.Context, owner domain.OwnerID) (*domain.Badge, error)
	ClearSelection(ctx context.Context, owner domain.OwnerID) error
	Select(ctx context.Context, owner domain.OwnerID, badgeID int64) error
}

// txManager defines the transaction manager interface needed by badge service.
type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service implements the badge rule engine.
type Service struct {
	log     *slog.Logger
	entries entryStats
	badges  badgeRepo
	tx      txManager
	now     func() time.Time
}

// NewService creates a new badge service instance.
func NewService(logger *slog.Logger, entries entryStats, badges badgeRepo, tx txManager) *Service {
	return &Service{
		log:     logger.With("service", "badge"),
		entries: entries,
		badges:  badges,
		tx:      tx,
		now:     time.Now,
	}
}

// EvaluateAndGrant grants owner every catalog badge whose rule its current
// statistics satisfy and returns the ids granted by this call. Grants are
// never revoked.
func (s *Service) EvaluateAndGrant(ctx context.Context, owner domain.OwnerID) ([]int64, error) {
	var granted []int64

	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		stats, err := s.stats(txCtx, owner)
		if err != nil {
			return err
		}

		catalog, err := s.badges.List(txCtx)
		if err != nil {
			return fmt.Errorf("list badges: %w", err)
		}

		now := s.now().UTC()
		for _, b := range catalog {
			if !b.Satisfies(stats) {
				continue
			}
			created, err := s.badges.Grant(txCtx, owner, b.ID, now)
			if err != nil {
				return fmt.Errorf("grant badge %d: %w", b.ID, err)
			}
			if created {
				granted = append(granted, b.ID)
			}
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("badge.EvaluateAndGrant: %w", err)
	}

	if len(granted) > 0 {
		s.log.InfoContext(ctx, "badges earned",
			slog.String("owner_id", owner.String()),
			slog.Any("badge_ids", granted),
		)
	}
	return granted, nil
}

// Stats computes the aggregates badge rules are evaluated against.
func (s *Service) Stats(ctx context.Context, owner domain.OwnerID) (domain.BadgeStats, error) {
	stats, err := s.stats(ctx, owner)
	if err != nil {
		return domain.BadgeStats{}, fmt.Errorf("badge.Stats: %w", err)
	}
	return stats, nil
}

func (s *Service) stats(ctx context.Context, owner domain.OwnerID) (domain.BadgeStats, error) {
	count, err := s.entries.Count(ctx, owner)
	if err != nil {
		return domain.BadgeStats{}, fmt.Errorf("count entries: %w", err)
	}

	dates, err := s.entries.DatesDesc(ctx, owner, StreakWindow)
	if err != nil {
		return domain.BadgeStats{}, fmt.Errorf("entry dates: %w", err)
	}

	moods, err := s.entries.DistinctMoodCount(ctx, owner)
	if err != nil {
		return domain.BadgeStats{}, fmt.Errorf("distinct moods: %w", err)
	}

	return domain.BadgeStats{
		EntryCount:   count,
		Streak:       domain.Streak(dates),
		DistinctMood: moods,
	}, nil
}

// SelectBadge makes badgeID the owner's only selected badge. Selecting a
// badge the owner has not earned returns domain.ErrNotFound and keeps the
// previous selection.
func (s *Service) SelectBadge(ctx context.Context, owner domain.OwnerID, badgeID int64) error {
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if err := s.badges.ClearSelection(txCtx, owner); err != nil {
			return fmt.Errorf("clear selection: %w", err)
		}
		return s.badges.Select(txCtx, owner, badgeID)
	})
	if err != nil {
		return fmt.Errorf("badge.SelectBadge: %w", err)
	}

	s.log.InfoContext(ctx, "badge selected",
		slog.String("owner_id", owner.String()),
		slog.Int64("badge_id", badgeID),
	)
	return nil
}

// Statuses returns the whole catalog annotated with the owner's progress.
func (s *Service) Statuses(ctx context.Context, owner domain.OwnerID) ([]domain.BadgeStatus, error) {
	statuses, err := s.badges.Statuses(ctx, owner)
	if err != nil {
		return nil, fmt.Errorf("badge.Statuses: %w", err)
	}
	return statuses, nil
}

// Selected returns the owner's selected badge, or nil when none is selected.
func (s *Service) Selected(ctx context.Context, owner domain.OwnerID) (*domain.Badge, error) {
	b, err := s.badges.Selected(ctx, owner)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("badge.Selected: %w", err)
	}
	return b, nil
}
