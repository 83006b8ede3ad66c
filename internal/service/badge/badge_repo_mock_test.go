package badge

import (
	"context"
	"sync"
	"time"

	"github.com/heartmarshall/mooddiary-backend/internal/domain"
)

var _ badgeRepo = &badgeRepoMock{}

type badgeRepoMock struct {
	ClearSelectionFunc func(ctx context.Context, owner domain.OwnerID) error
	GrantFunc          func(ctx context.Context, owner domain.OwnerID, badgeID int64, at time.Time) (bool, error)
	ListFunc           func(ctx context.Context) ([]domain.Badge, error)
	SelectFunc         func(ctx context.Context, owner domain.OwnerID, badgeID int64) error
	SelectedFunc       func(ctx context.Context, owner domain.OwnerID) (*domain.Badge, error)
	StatusesFunc       func(ctx context.Context, owner domain.OwnerID) ([]domain.BadgeStatus, error)

	calls struct {
		ClearSelection []struct {
			Ctx   context.Context
			Owner domain.OwnerID
		}
		Grant []struct {
			Ctx     context.Context
			Owner   domain.OwnerID
			BadgeID int64
			At      time.Time
		}
		List []struct {
			Ctx context.Context
		}
		Select []struct {
			Ctx     context.Context
			Owner   domain.OwnerID
			BadgeID int64
		}
		Selected []struct {
			Ctx   context.Context
			Owner domain.OwnerID
		}
		Statuses []struct {
			Ctx   context.Context
			Owner domain.OwnerID
		}
	}
	lockClearSelection sync.RWMutex
	lockGrant          sync.RWMutex
	lockList           sync.RWMutex
	lockSelect         sync.RWMutex
	lockSelected       sync.RWMutex
	lockStatuses       sync.RWMutex
}

func (mock *badgeRepoMock) ClearSelection(ctx context.Context, owner domain.OwnerID) error {
	if mock.ClearSelectionFunc == nil {
		panic("badgeRepoMock.ClearSelectionFunc: method is nil but badgeRepo.ClearSelection was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Owner domain.OwnerID
	}{
		Ctx:   ctx,
		Owner: owner,
	}
	mock.lockClearSelection.Lock()
	mock.calls.ClearSelection = append(mock.calls.ClearSelection, callInfo)
	mock.lockClearSelection.Unlock()
	return mock.ClearSelectionFunc(ctx, owner)
}

func (mock *badgeRepoMock) ClearSelectionCalls() []struct {
	Ctx   context.Context
	Owner domain.OwnerID
} {
	mock.lockClearSelection.RLock()
	calls := mock.calls.ClearSelection
	mock.lockClearSelection.RUnlock()
	return calls
}

func (mock *badgeRepoMock) Grant(ctx context.Context, owner domain.OwnerID, badgeID int64, at time.Time) (bool, error) {
	if mock.GrantFunc == nil {
		panic("badgeRepoMock.GrantFunc: method is nil but badgeRepo.Grant was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		Owner   domain.OwnerID
		BadgeID int64
		At      time.Time
	}{
		Ctx:     ctx,
		Owner:   owner,
		BadgeID: badgeID,
		At:      at,
	}
	mock.lockGrant.Lock()
	mock.calls.Grant = append(mock.calls.Grant, callInfo)
	mock.lockGrant.Unlock()
	return mock.GrantFunc(ctx, owner, badgeID, at)
}

func (mock *badgeRepoMock) GrantCalls() []struct {
	Ctx     context.Context
	Owner   domain.OwnerID
	BadgeID int64
	At      time.Time
} {
	mock.lockGrant.RLock()
	calls := mock.calls.Grant
	mock.lockGrant.RUnlock()
	return calls
}

func (mock *badgeRepoMock) List(ctx context.Context) ([]domain.Badge, error) {
	if mock.ListFunc == nil {
		panic("badgeRepoMock.ListFunc: method is nil but badgeRepo.List was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{
		Ctx: ctx,
	}
	mock.lockList.Lock()
	mock.calls.List = append(mock.calls.List, callInfo)
	mock.lockList.Unlock()
	return mock.ListFunc(ctx)
}

func (mock *badgeRepoMock) ListCalls() []struct {
	Ctx context.Context
} {
	mock.lockList.RLock()
	calls := mock.calls.List
	mock.lockList.RUnlock()
	return calls
}

func (mock *badgeRepoMock) Select(ctx context.Context, owner domain.OwnerID, badgeID int64) error {
	if mock.SelectFunc == nil {
		panic("badgeRepoMock.SelectFunc: method is nil but badgeRepo.Select was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		Owner   domain.OwnerID
		BadgeID int64
	}{
		Ctx:     ctx,
		Owner:   owner,
		BadgeID: badgeID,
	}
	mock.lockSelect.Lock()
	mock.calls.Select = append(mock.calls.Select, callInfo)
	mock.lockSelect.Unlock()
	return mock.SelectFunc(ctx, owner, badgeID)
}

func (mock *badgeRepoMock) SelectCalls() []struct {
	Ctx     context.Context
	Owner   domain.OwnerID
	BadgeID int64
} {
	mock.lockSelect.RLock()
	calls := mock.calls.Select
	mock.lockSelect.RUnlock()
	return calls
}

func (mock *badgeRepoMock) Selected(ctx context.Context, owner domain.OwnerID) (*domain.Badge, error) {
	if mock.SelectedFunc == nil {
		panic("badgeRepoMock.SelectedFunc: method is nil but badgeRepo.Selected was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Owner domain.OwnerID
	}{
		Ctx:   ctx,
		Owner: owner,
	}
	mock.lockSelected.Lock()
	mock.calls.Selected = append(mock.calls.Selected, callInfo)
	mock.lockSelected.Unlock()
	return mock.SelectedFunc(ctx, owner)
}

func (mock *badgeRepoMock) SelectedCalls() []struct {
	Ctx   context.Context
	Owner domain.OwnerID
} {
	mock.lockSelected.RLock()
	calls := mock.calls.Selected
	mock.lockSelected.RUnlock()
	return calls
}

func (mock *badgeRepoMock) Statuses(ctx context.Context, owner domain.OwnerID) ([]domain.BadgeStatus, error) {
	if mock.StatusesFunc == nil {
		panic("badgeRepoMock.StatusesFunc: method is nil but badgeRepo.Statuses was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Owner domain.OwnerID
	}{
		Ctx:   ctx,
		Owner: owner,
	}
	mock.lockStatuses.Lock()
	mock.calls.Statuses = append(mock.calls.Statuses, callInfo)
	mock.lockStatuses.Unlock()
	return mock.StatusesFunc(ctx, owner)
}

func (mock *badgeRepoMock) StatusesCalls() []struct {
	Ctx   context.Context
	Owner domain.OwnerID
} {
	mock.lockStatuses.RLock()
	calls := mock.calls.Statuses
	mock.lockStatuses.RUnlock()
	return calls
}
