package account

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/mooddiary-backend/internal/domain"
)

// Register creates an account, adopts the device's anonymous data and binds
// the new owner. Badges earned by the adopted entries are granted afterwards.
// It returns the new account id.
// Returns domain.ErrEmailAlreadyUsed if the email is taken.
func (s *Service) Register(ctx context.Context, input RegisterInput) (int64, error) {
	input.normalize()

	// Step 1: Validate input
	if err := input.Validate(); err != nil {
		return 0, err
	}

	// Step 2: Best-effort uniqueness pre-check; the UNIQUE constraint decides.
	exists, err := s.users.ExistsByEmail(ctx, input.Email)
	if err != nil {
		return 0, fmt.Errorf("account.Register check email: %w", err)
	}
	if exists {
		return 0, domain.ErrEmailAlreadyUsed
	}

	// Step 3: Hash password
	hash, err := s.hasher.Hash(input.Password)
	if err != nil {
		return 0, fmt.Errorf("account.Register hash password: %w", err)
	}

	prior, err := s.priorOwner(ctx)
	if err != nil {
		return 0, fmt.Errorf("account.Register current owner: %w", err)
	}

	// Step 4: Create account + migrate anonymous data + default settings in a transaction.
	var created *domain.Account
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		acc, err := s.users.Create(txCtx, &domain.Account{
			Nickname:     input.Nickname,
			Email:        input.Email,
			PasswordHash: hash,
			CreatedAt:    s.now(),
		})
		if err != nil {
			return fmt.Errorf("create account: %w", err)
		}

		if err := s.adoptInTx(txCtx, prior, acc.Owner()); err != nil {
			return err
		}

		created = acc
		return nil
	})
	if err != nil {
		if errors.Is(err, domain.ErrAlreadyExists) {
			return 0, domain.ErrEmailAlreadyUsed
		}
		return 0, fmt.Errorf("account.Register: %w", err)
	}

	// Step 5: Bind the new owner after commit.
	if err := s.session.BindOwner(ctx, created.Owner()); err != nil {
		return 0, fmt.Errorf("account.Register bind: %w", err)
	}
	s.evaluateBadges(ctx, created.Owner())

	s.log.InfoContext(ctx, "account registered",
		slog.Int64("account_id", created.ID),
		slog.String("migrated_from", prior.String()),
	)

	return created.ID, nil
}

// IsEmailAvailable reports whether email can still be used to register.
func (s *Service) IsEmailAvailable(ctx context.Context, email string) (bool, error) {
	email = domain.NormalizeEmail(email)
	switch {
	case email == "":
		return false, domain.ErrEmptyEmail
	case !domain.IsValidEmail(email):
		return false, domain.ErrInvalidEmail
	}

	exists, err := s.users.ExistsByEmail(ctx, email)
	if err != nil {
		return false, fmt.Errorf("account.IsEmailAvailable: %w", err)
	}
	return !exists, nil
}
