// Package session tracks which owner the device is currently acting as and
// the long-lived anonymous identity used before sign-up.
package session

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"sync"
	"time"

	"github.com/heartmarshall/mooddiary-backend/internal/domain"
)

// Keys of the session_state table.
const (
	KeyCurrentOwner  = "current_owner_id"
	KeyAnonOwner     = "anon_owner_id"
	KeyAnonCreatedAt = "anon_created_at"
)

// stateRepo defines the key/value store needed by the session service.
type stateRepo interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
}

// Service implements the identity/session manager.
type Service struct {
	log   *slog.Logger
	state stateRepo
	now   func() time.Time

	// mu serializes read-modify-write sequences on the state rows.
	mu sync.Mutex
}

// NewService creates a new session service instance.
func NewService(logger *slog.Logger, state stateRepo) *Service {
	return &Service{
		log:   logger.With("service", "session"),
		state: state,
		now:   time.Now,
	}
}

// CurrentOwner returns the owner bound to the device. ok is false when no
// owner is bound.
func (s *Service) CurrentOwner(ctx context.Context) (domain.OwnerID, bool, error) {
	raw, err := s.state.Get(ctx, KeyCurrentOwner)
	if errors.Is(err, domain.ErrNotFound) || (err == nil && raw == "") {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("session.CurrentOwner: %w", err)
	}
	return domain.OwnerID(raw), true, nil
}

// StartAnonymousSession binds the device's anonymous identity, minting it
// on first use. Calling it repeatedly yields the same identity.
func (s *Service) StartAnonymousSession(ctx context.Context) (domain.OwnerID, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	owner, err := s.anonymousOwnerLocked(ctx)
	if err != nil {
		return "", fmt.Errorf("session.StartAnonymousSession: %w", err)
	}
	if _, err := s.anonymousSinceLocked(ctx); err != nil {
		return "", fmt.Errorf("session.StartAnonymousSession: %w", err)
	}
	if err := s.state.Set(ctx, KeyCurrentOwner, owner.String()); err != nil {
		return "", fmt.Errorf("session.StartAnonymousSession bind: %w", err)
	}

	s.log.DebugContext(ctx, "anonymous session started", slog.String("owner_id", owner.String()))
	return owner, nil
}

// BindOwner makes owner the current owner.
func (s *Service) BindOwner(ctx context.Context, owner domain.OwnerID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.state.Set(ctx, KeyCurrentOwner, owner.String()); err != nil {
		return fmt.Errorf("session.BindOwner: %w", err)
	}
	s.log.InfoContext(ctx, "owner bound", slog.String("owner_id", owner.String()))
	return nil
}

// ClearCurrentOwner removes the current binding. The anonymous identity is kept.
func (s *Service) ClearCurrentOwner(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.state.Delete(ctx, KeyCurrentOwner); err != nil {
		return fmt.Errorf("session.ClearCurrentOwner: %w", err)
	}
	return nil
}

// AnonymousSince returns when the anonymous identity was first seen,
// recording the current time if it never was.
func (s *Service) AnonymousSince(ctx context.Context) (time.Time, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	since, err := s.anonymousSinceLocked(ctx)
	if err != nil {
		return time.Time{}, fmt.Errorf("session.AnonymousSince: %w", err)
	}
	return since, nil
}

func (s *Service) anonymousOwnerLocked(ctx context.Context) (domain.OwnerID, error) {
	raw, err := s.state.Get(ctx, KeyAnonOwner)
	if err == nil && domain.OwnerID(raw).IsAnonymous() {
		return domain.OwnerID(raw), nil
	}
	if err != nil && !errors.Is(err, domain.ErrNotFound) {
		return "", fmt.Errorf("read anonymous owner: %w", err)
	}

	owner := domain.NewAnonymousOwner()
	if err := s.state.Set(ctx, KeyAnonOwner, owner.String()); err != nil {
		return "", fmt.Errorf("store anonymous owner: %w", err)
	}
	if err := s.state.Set(ctx, KeyAnonCreatedAt, formatMillis(s.now())); err != nil {
		return "", fmt.Errorf("store anonymous created_at: %w", err)
	}

	s.log.InfoContext(ctx, "anonymous owner created", slog.String("owner_id", owner.String()))
	return owner, nil
}

func (s *Service) anonymousSinceLocked(ctx context.Context) (time.Time, error) {
	raw, err := s.state.Get(ctx, KeyAnonCreatedAt)
	if err == nil {
		if ms, perr := strconv.ParseInt(raw, 10, 64); perr == nil && ms > 0 {
			return time.UnixMilli(ms).UTC(), nil
		}
	} else if !errors.Is(err, domain.ErrNotFound) {
		return time.Time{}, fmt.Errorf("read anonymous created_at: %w", err)
	}

	now := s.now().UTC()
	if err := s.state.Set(ctx, KeyAnonCreatedAt, formatMillis(now)); err != nil {
		return time.Time{}, fmt.Errorf("store anonymous created_at: %w", err)
	}
	return time.UnixMilli(now.UnixMilli()).UTC(), nil
}

func formatMillis(t time.Time) string {
	return strconv.FormatInt(t.UnixMilli(), 10)
}
