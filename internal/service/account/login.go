package account

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/mooddiary-backend/internal/domain"
)

// Login verifies credentials, adopts the device's anonymous data and binds
// the account's owner. Unknown emails and wrong passwords both yield
// domain.ErrAuthFailed.
func (s *Service) Login(ctx context.Context, input LoginInput) (*domain.Account, error) {
	input.normalize()

	if err := input.Validate(); err != nil {
		return nil, err
	}

	acc, err := s.users.GetByEmail(ctx, input.Email)
	if err != nil {
		if isNotFound(err) {
			s.log.InfoContext(ctx, "login failed: unknown email")
			return nil, domain.ErrAuthFailed
		}
		return nil, fmt.Errorf("account.Login get account: %w", err)
	}

	if !s.hasher.Verify(input.Password, acc.PasswordHash) {
		s.log.InfoContext(ctx, "login failed: wrong password", slog.Int64("account_id", acc.ID))
		return nil, domain.ErrAuthFailed
	}

	prior, err := s.priorOwner(ctx)
	if err != nil {
		return nil, fmt.Errorf("account.Login current owner: %w", err)
	}

	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		return s.adoptInTx(txCtx, prior, acc.Owner())
	})
	if err != nil {
		return nil, fmt.Errorf("account.Login: %w", err)
	}

	if err := s.session.BindOwner(ctx, acc.Owner()); err != nil {
		return nil, fmt.Errorf("account.Login bind: %w", err)
	}
	if prior.IsAnonymous() {
		s.evaluateBadges(ctx, acc.Owner())
	}

	s.log.InfoContext(ctx, "account logged in", slog.Int64("account_id", acc.ID))
	return acc, nil
}

// Logout clears the current binding. The account and its data are untouched.
func (s *Service) Logout(ctx context.Context) error {
	if err := s.session.ClearCurrentOwner(ctx); err != nil {
		return fmt.Errorf("account.Logout: %w", err)
	}
	return nil
}
