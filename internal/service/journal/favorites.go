package journal

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/mooddiary-backend/internal/domain"
)

// SetFavorite flags or unflags one of the owner's entries.
func (s *Service) SetFavorite(ctx context.Context, id int64, favorite bool) error {
	owner, err := ownerFrom(ctx)
	if err != nil {
		return err
	}

	if err := s.entries.SetFavorite(ctx, owner, id, favorite); err != nil {
		return fmt.Errorf("journal.SetFavorite: %w", err)
	}

	s.log.InfoContext(ctx, "favorite changed",
		slog.String("owner_id", owner.String()),
		slog.Int64("entry_id", id),
		slog.Bool("favorite", favorite),
	)
	return nil
}

// ToggleFavorite flips the favorite flag of an entry and returns the new value.
func (s *Service) ToggleFavorite(ctx context.Context, id int64) (bool, error) {
	owner, err := ownerFrom(ctx)
	if err != nil {
		return false, err
	}

	e, err := s.entries.GetByID(ctx, owner, id)
	if err != nil {
		return false, fmt.Errorf("journal.ToggleFavorite: %w", err)
	}

	next := !e.IsFavorite
	if err := s.entries.SetFavorite(ctx, owner, id, next); err != nil {
		return false, fmt.Errorf("journal.ToggleFavorite: %w", err)
	}
	return next, nil
}

// Favorites returns the owner's favorited entries that have an analysis,
// most recently updated first.
func (s *Service) Favorites(ctx context.Context) ([]domain.FavoriteCard, error) {
	owner, err := ownerFrom(ctx)
	if err != nil {
		return nil, err
	}

	cards, err := s.entries.Favorites(ctx, owner)
	if err != nil {
		return nil, fmt.Errorf("journal.Favorites: %w", err)
	}
	return cards, nil
}
