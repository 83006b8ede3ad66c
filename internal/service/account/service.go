// Package account implements registration, login and the account page.
package account

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/heartmarshall/mooddiary-backend/internal/domain"
)

// userRepo defines the account repository interface needed by account service.
type userRepo interface {
	Create(ctx context.Context, a *domain.Account) (*domain.Account, error)
	GetByID(ctx context.Context, id int64) (*domain.Account, error)
	GetByEmail(ctx context.Context, email string) (*domain.Account, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	UpdateNickname(ctx context.Context, id int64, nickname string) error
	Delete(ctx context.Context, id int64) error
}

// settingsRepo defines the settings repository interface needed by account service.
type settingsRepo interface {
	Get(ctx context.Context, owner domain.OwnerID, key string) (string, error)
	Upsert(ctx context.Context, s domain.Setting) error
	InsertIfAbsent(ctx context.Context, s domain.Setting) (bool, error)
	DeleteByOwner(ctx context.Context, owner domain.OwnerID) (int64, error)
}

// badgeRepo defines the badge repository interface needed by account service.
type badgeRepo interface {
	Selected(ctx context.Context, owner domain.OwnerID) (*domain.Badge, error)
	DeleteByOwner(ctx context.Context, owner domain.OwnerID) (int64, error)
}

// ownerPurger deletes every row one table holds for an owner.
type ownerPurger interface {
	DeleteByOwner(ctx context.Context, owner domain.OwnerID) (int64, error)
}

// migrator moves anonymous data to a registered owner inside a transaction.
type migrator interface {
	MigrateInTx(ctx context.Context, from, to domain.OwnerID) error
}

// badgeEvaluator grants the badges an owner's entries qualify for.
type badgeEvaluator interface {
	EvaluateAndGrant(ctx context.Context, owner domain.OwnerID) ([]int64, error)
}

// sessionManager defines the session operations needed by account service.
type sessionManager interface {
	CurrentOwner(ctx context.Context) (domain.OwnerID, bool, error)
	BindOwner(ctx context.Context, owner domain.OwnerID) error
	ClearCurrentOwner(ctx context.Context) error
	AnonymousSince(ctx context.Context) (time.Time, error)
}

// passwordHasher defines the credential hashing needed by account service.
type passwordHasher interface {
	Hash(password string) (string, error)
	Verify(password, encoded string) bool
}

// txManager defines the transaction manager interface needed by account service.
type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service implements the account lifecycle.
type Service struct {
	log       *slog.Logger
	users     userRepo
	settings  settingsRepo
	badges    badgeRepo
	entries   ownerPurger
	analyses  ownerPurger
	digests   ownerPurger
	ownership migrator
	grants    badgeEvaluator
	session   sessionManager
	hasher    passwordHasher
	tx        txManager
	now       func() time.Time
}

// NewService creates a new account service instance.
func NewService(
	logger *slog.Logger,
	users userRepo,
	settings settingsRepo,
	badges badgeRepo,
	entries ownerPurger,
	analyses ownerPurger,
	digests ownerPurger,
	ownership migrator,
	grants badgeEvaluator,
	session sessionManager,
	hasher passwordHasher,
	tx txManager,
) *Service {
	return &Service{
		log:       logger.With("service", "account"),
		users:     users,
		settings:  settings,
		badges:    badges,
		entries:   entries,
		analyses:  analyses,
		digests:   digests,
		ownership: ownership,
		grants:    grants,
		session:   session,
		hasher:    hasher,
		tx:        tx,
		now:       time.Now,
	}
}

// adoptInTx moves the device's anonymous data (if any) to owner and makes
// sure owner has a profile image setting. ctx must carry a transaction.
func (s *Service) adoptInTx(ctx context.Context, prior domain.OwnerID, owner domain.OwnerID) error {
	if prior.IsAnonymous() {
		if err := s.ownership.MigrateInTx(ctx, prior, owner); err != nil {
			return err
		}
	}

	_, err := s.settings.InsertIfAbsent(ctx, domain.Setting{
		OwnerID: owner,
		Key:     domain.SettingProfileImageURI,
		Value:   domain.DefaultProfileImageURI,
	})
	if err != nil {
		return fmt.Errorf("default profile image: %w", err)
	}
	return nil
}

// evaluateBadges grants what the adopted entries earned. A failure is
// logged; the next entry write evaluates again.
func (s *Service) evaluateBadges(ctx context.Context, owner domain.OwnerID) {
	if _, err := s.grants.EvaluateAndGrant(ctx, owner); err != nil {
		s.log.WarnContext(ctx, "badge evaluation failed",
			slog.String("owner_id", owner.String()),
			slog.String("error", err.Error()),
		)
	}
}

// priorOwner returns the currently bound owner, or "" when none is bound.
func (s *Service) priorOwner(ctx context.Context) (domain.OwnerID, error) {
	owner, ok, err := s.session.CurrentOwner(ctx)
	if err != nil {
		return "", err
	}
	if !ok {
		return "", nil
	}
	return owner, nil
}

// currentMember returns the bound owner and its account id. It fails with
// domain.ErrUnauthorized unless a registered owner is bound.
func (s *Service) currentMember(ctx context.Context) (domain.OwnerID, int64, error) {
	owner, ok, err := s.session.CurrentOwner(ctx)
	if err != nil {
		return "", 0, err
	}
	if !ok {
		return "", 0, domain.ErrUnauthorized
	}
	id, ok := owner.AccountID()
	if !ok {
		return "", 0, domain.ErrUnauthorized
	}
	return owner, id, nil
}

// isNotFound reports a missing row.
func isNotFound(err error) bool {
	return errors.Is(err, domain.ErrNotFound)
}
