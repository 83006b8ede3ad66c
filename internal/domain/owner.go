package domain

import (
	"strconv"
	"strings"

	"github.com/google/uuid"
)

const (
	anonymousPrefix = "ANON_"
	userPrefix      = "USER_"
)

// OwnerID is the opaque key that owns every per-user row.
// It is either ANON_<uuid> for a guest session or USER_<account id>.
type OwnerID string

// NewAnonymousOwner mints a fresh guest identifier.
func NewAnonymousOwner() OwnerID {
	return OwnerID(anonymousPrefix + uuid.NewString())
}

// NewUserOwner returns the identifier for an authenticated account.
func NewUserOwner(accountID int64) OwnerID {
	return OwnerID(userPrefix + strconv.FormatInt(accountID, 10))
}

func (o OwnerID) String() string { return string(o) }

// IsAnonymous reports whether the owner belongs to a guest session.
func (o OwnerID) IsAnonymous() bool {
	return strings.HasPrefix(string(o), anonymousPrefix) && len(o) > len(anonymousPrefix)
}

// IsUser reports whether the owner is an authenticated account.
func (o OwnerID) IsUser() bool {
	_, ok := o.AccountID()
	return ok
}

// AccountID extracts the numeric account id of a USER_ owner.
func (o OwnerID) AccountID() (int64, bool) {
	rest, ok := strings.CutPrefix(string(o), userPrefix)
	if !ok {
		return 0, false
	}
	id, err := strconv.ParseInt(rest, 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}
