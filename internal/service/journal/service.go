// Package journal implements diary entry writing, listing and calendar statistics.
package journal

import (
	"context"
	"log/slog"
	"time"

	"github.com/heartmarshall/mooddiary-backend/internal/domain"
	"github.com/heartmarshall/mooddiary-backend/pkg/ctxutil"
)

// entryRepo defines the entry repository interface needed by journal service.
type entryRepo interface {
	Upsert(ctx context.Context, e *domain.Entry) (*domain.Entry, error)
	GetByID(ctx context.Context, owner domain.OwnerID, id int64) (*domain.Entry, error)
	GetByDate(ctx context.Context, owner domain.OwnerID, ymd string) (*domain.Entry, error)
	Delete(ctx context.Context, owner domain.OwnerID, id int64) error
	SetFavorite(ctx context.Context, owner domain.OwnerID, id int64, favorite bool) error
	List(ctx context.Context, owner domain.OwnerID, f domain.EntryFilter) ([]domain.Entry, error)
	MoodStats(ctx context.Context, owner domain.OwnerID, from, to string) ([]domain.MoodStat, error)
	MoodMap(ctx context.Context, owner domain.OwnerID, from, to string) (map[string]domain.Mood, error)
	TagCounts(ctx context.Context, owner domain.OwnerID, from, to string) ([]domain.TagCount, error)
	Favorites(ctx context.Context, owner domain.OwnerID) ([]domain.FavoriteCard, error)
}

// badgeEvaluator grants the badges an owner has become eligible for.
type badgeEvaluator interface {
	EvaluateAndGrant(ctx context.Context, owner domain.OwnerID) ([]int64, error)
}

// Service provides diary entry operations for the owner carried in ctx.
type Service struct {
	log     *slog.Logger
	entries entryRepo
	badges  badgeEvaluator
	now     func() time.Time
}

// NewService creates a new journal service instance.
func NewService(logger *slog.Logger, entries entryRepo, badges badgeEvaluator) *Service {
	return &Service{
		log:     logger.With("service", "journal"),
		entries: entries,
		badges:  badges,
		now:     time.Now,
	}
}

func ownerFrom(ctx context.Context) (domain.OwnerID, error) {
	owner, ok := ctxutil.OwnerFromCtx(ctx)
	if !ok {
		return "", domain.ErrUnauthorized
	}
	return owner, nil
}
