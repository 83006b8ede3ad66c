package account

import (
	"strings"

	"github.com/heartmarshall/mooddiary-backend/internal/domain"
)

// RegisterInput holds parameters for registration.
type RegisterInput struct {
	Email           string
	Nickname        string
	Password        string
	PasswordConfirm string
}

func (i *RegisterInput) normalize() {
	i.Email = domain.NormalizeEmail(i.Email)
	i.Nickname = strings.TrimSpace(i.Nickname)
}

// Validate returns the first failing rule, checked in a fixed order.
func (i RegisterInput) Validate() error {
	switch {
	case i.Email == "":
		return domain.ErrEmptyEmail
	case !domain.IsValidEmail(i.Email):
		return domain.ErrInvalidEmail
	case i.Nickname == "":
		return domain.ErrEmptyNickname
	case i.Password == "":
		return domain.ErrEmptyPassword
	case i.PasswordConfirm == "":
		return domain.ErrEmptyPasswordConfirm
	case i.Password != i.PasswordConfirm:
		return domain.ErrPasswordMismatch
	case !domain.IsStrongPassword(i.Password):
		return domain.ErrWeakPassword
	}
	return nil
}

// LoginInput holds parameters for login.
type LoginInput struct {
	Email    string
	Password string
}

func (i *LoginInput) normalize() {
	i.Email = domain.NormalizeEmail(i.Email)
}

// Validate returns the first failing rule.
func (i LoginInput) Validate() error {
	switch {
	case i.Email == "":
		return domain.ErrEmptyEmail
	case !domain.IsValidEmail(i.Email):
		return domain.ErrInvalidEmail
	case i.Password == "":
		return domain.ErrEmptyPassword
	}
	return nil
}
