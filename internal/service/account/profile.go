package account

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/heartmarshall/mooddiary-backend/internal/domain"
)

// Profile returns the account page for the current owner. Anonymous owners
// get a profile without nickname or email.
func (s *Service) Profile(ctx context.Context) (*domain.Profile, error) {
	owner, ok, err := s.session.CurrentOwner(ctx)
	if err != nil {
		return nil, fmt.Errorf("account.Profile: %w", err)
	}
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	p := &domain.Profile{OwnerID: owner}

	if id, isUser := owner.AccountID(); isUser {
		acc, err := s.users.GetByID(ctx, id)
		if err != nil {
			return nil, fmt.Errorf("account.Profile get account: %w", err)
		}
		p.IsMember = true
		p.Nickname = acc.Nickname
		p.Email = acc.Email
	}

	p.ProfileImageURI, err = s.settings.Get(ctx, owner, domain.SettingProfileImageURI)
	switch {
	case isNotFound(err):
		p.ProfileImageURI = domain.DefaultProfileImageURI
	case err != nil:
		return nil, fmt.Errorf("account.Profile image: %w", err)
	}

	p.SelectedBadge, err = s.badges.Selected(ctx, owner)
	switch {
	case isNotFound(err):
		p.SelectedBadge = nil
	case err != nil:
		return nil, fmt.Errorf("account.Profile badge: %w", err)
	}

	return p, nil
}

// UpdateNickname renames the current account.
func (s *Service) UpdateNickname(ctx context.Context, nickname string) error {
	nickname = strings.TrimSpace(nickname)
	if nickname == "" {
		return domain.ErrEmptyNickname
	}

	_, accountID, err := s.currentMember(ctx)
	if err != nil {
		return err
	}

	if err := s.users.UpdateNickname(ctx, accountID, nickname); err != nil {
		return fmt.Errorf("account.UpdateNickname: %w", err)
	}
	return nil
}

// UpdateProfileImage stores the profile image of the current owner. A blank
// uri restores the default image.
func (s *Service) UpdateProfileImage(ctx context.Context, uri string) error {
	owner, ok, err := s.session.CurrentOwner(ctx)
	if err != nil {
		return fmt.Errorf("account.UpdateProfileImage: %w", err)
	}
	if !ok {
		return domain.ErrUnauthorized
	}

	uri = strings.TrimSpace(uri)
	if uri == "" {
		uri = domain.DefaultProfileImageURI
	}

	err = s.settings.Upsert(ctx, domain.Setting{OwnerID: owner, Key: domain.SettingProfileImageURI, Value: uri})
	if err != nil {
		return fmt.Errorf("account.UpdateProfileImage: %w", err)
	}
	return nil
}

// ServiceDays counts the days the current owner has used the diary,
// starting at 1 on the first day. Members count from account creation,
// everyone else from the first anonymous session.
func (s *Service) ServiceDays(ctx context.Context) (int, error) {
	owner, ok, err := s.session.CurrentOwner(ctx)
	if err != nil {
		return 0, fmt.Errorf("account.ServiceDays: %w", err)
	}

	var since time.Time
	if id, isUser := owner.AccountID(); ok && isUser {
		acc, err := s.users.GetByID(ctx, id)
		if err != nil {
			return 0, fmt.Errorf("account.ServiceDays get account: %w", err)
		}
		since = acc.CreatedAt
	} else {
		since, err = s.session.AnonymousSince(ctx)
		if err != nil {
			return 0, fmt.Errorf("account.ServiceDays: %w", err)
		}
	}

	return domain.DaysSince(since, s.now()), nil
}
