// Package ownership moves an anonymous owner's data to a registered owner.
package ownership

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/mooddiary-backend/internal/domain"
)

// entryRepo defines the entry operations needed for a migration.
type entryRepo interface {
	ReassignOwner(ctx context.Context, from, to domain.OwnerID) (int64, error)
	PromoteTemporary(ctx context.Context, owner domain.OwnerID) (int64, error)
}

// reassigner re-keys one table's rows from one owner to another. Rows the
// target already holds under the same key win over the source's.
type reassigner interface {
	ReassignOwner(ctx context.Context, from, to domain.OwnerID) (int64, error)
}

// txManager defines the transaction manager interface needed by ownership service.
type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service implements ownership migration.
type Service struct {
	log      *slog.Logger
	entries  entryRepo
	digests  reassigner
	badges   reassigner
	settings reassigner
	tx       txManager
}

// NewService creates a new ownership service instance.
func NewService(
	logger *slog.Logger,
	entries entryRepo,
	digests reassigner,
	badges reassigner,
	settings reassigner,
	tx txManager,
) *Service {
	return &Service{
		log:      logger.With("service", "ownership"),
		entries:  entries,
		digests:  digests,
		badges:   badges,
		settings: settings,
		tx:       tx,
	}
}

// Migrate runs MigrateInTx in its own transaction.
func (s *Service) Migrate(ctx context.Context, from, to domain.OwnerID) error {
	return s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		return s.MigrateInTx(txCtx, from, to)
	})
}

// MigrateInTx re-keys entries, monthly digests, badge grants and settings
// from an anonymous owner to to, then marks to's entries permanent.
// ctx must carry the caller's transaction. It is a no-op unless from is
// anonymous and differs from to.
func (s *Service) MigrateInTx(ctx context.Context, from, to domain.OwnerID) error {
	if !from.IsAnonymous() || from == to {
		return nil
	}

	entries, err := s.entries.ReassignOwner(ctx, from, to)
	if err != nil {
		return fmt.Errorf("ownership.Migrate entries: %w", err)
	}
	digests, err := s.digests.ReassignOwner(ctx, from, to)
	if err != nil {
		return fmt.Errorf("ownership.Migrate digests: %w", err)
	}
	badges, err := s.badges.ReassignOwner(ctx, from, to)
	if err != nil {
		return fmt.Errorf("ownership.Migrate badges: %w", err)
	}
	settings, err := s.settings.ReassignOwner(ctx, from, to)
	if err != nil {
		return fmt.Errorf("ownership.Migrate settings: %w", err)
	}
	promoted, err := s.entries.PromoteTemporary(ctx, to)
	if err != nil {
		return fmt.Errorf("ownership.Migrate promote: %w", err)
	}

	s.log.InfoContext(ctx, "owner data migrated",
		slog.String("from", from.String()),
		slog.String("to", to.String()),
		slog.Int64("entries", entries),
		slog.Int64("digests", digests),
		slog.Int64("badges", badges),
		slog.Int64("settings", settings),
		slog.Int64("promoted", promoted),
	)
	return nil
}
