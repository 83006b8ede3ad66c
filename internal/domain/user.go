package domain

import (
	"time"
)

// Account represents a registered user.
type Account struct {
	ID           int64
	Nickname     string
	Email        string
	PasswordHash string
	CreatedAt    time.Time
}

// Owner returns the owner identifier under which the account's data is stored.
func (a Account) Owner() OwnerID {
	return NewUserOwner(a.ID)
}

// Setting keys with a fixed meaning.
const (
	SettingProfileImageURI = "profile_image_uri"

	DefaultProfileImageURI = "default.png"
)

// Setting is a per-owner key/value pair.
type Setting struct {
	OwnerID OwnerID
	Key     string
	Value   string
}

// Profile is the read model shown on the account page.
type Profile struct {
	OwnerID         OwnerID
	IsMember        bool
	Nickname        string
	Email           string
	ProfileImageURI string
	SelectedBadge   *Badge
}
