package account

import (
	"context"
	"fmt"
	"log/slog"
)

// Withdraw deletes the current account and everything it owns, then clears
// the session. It reports false on any failure, including when no
// registered owner is bound; failures are logged.
func (s *Service) Withdraw(ctx context.Context) bool {
	owner, accountID, err := s.currentMember(ctx)
	if err != nil {
		s.log.WarnContext(ctx, "withdraw rejected", slog.String("error", err.Error()))
		return false
	}

	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		steps := []struct {
			name string
			repo ownerPurger
		}{
			{"analyses", s.analyses},
			{"entries", s.entries},
			{"badges", s.badges},
			{"settings", s.settings},
			{"digests", s.digests},
		}
		for _, step := range steps {
			if _, err := step.repo.DeleteByOwner(txCtx, owner); err != nil {
				return fmt.Errorf("delete %s: %w", step.name, err)
			}
		}
		if err := s.users.Delete(txCtx, accountID); err != nil {
			return fmt.Errorf("delete account: %w", err)
		}
		return nil
	})
	if err != nil {
		s.log.ErrorContext(ctx, "withdraw failed",
			slog.Int64("account_id", accountID),
			slog.String("error", err.Error()),
		)
		return false
	}

	if err := s.session.ClearCurrentOwner(ctx); err != nil {
		s.log.ErrorContext(ctx, "withdraw: clear session failed",
			slog.Int64("account_id", accountID),
			slog.String("error", err.Error()),
		)
		return false
	}

	s.log.InfoContext(ctx, "account withdrawn", slog.Int64("account_id", accountID))
	return true
}
