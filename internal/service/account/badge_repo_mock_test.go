package account

import (
	"context"
	"sync"

	"github.com/heartmarshall/mooddiary-backend/internal/domain"
)

var _ badgeRepo = &badgeRepoMock{}

type badgeRepoMock struct {
	DeleteByOwnerFunc func(ctx context.Context, owner domain.OwnerID) (int64, error)
	SelectedFunc      func(ctx context.Context, owner domain.OwnerID) (*domain.Badge, error)

	calls struct {
		DeleteByOwner []struct {
			Ctx   context.Context
			Owner domain.OwnerID
		}
		Selected []struct {
			Ctx   context.Context
			Owner domain.OwnerID
		}
	}
	lockDeleteByOwner sync.RWMutex
	lockSelected      sync.RWMutex
}

func (mock *badgeRepoMock) DeleteByOwner(ctx context.Context, owner domain.OwnerID) (int64, error) {
	if mock.DeleteByOwnerFunc == nil {
		panic("badgeRepoMock.DeleteByOwnerFunc: method is nil but badgeRepo.DeleteByOwner was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Owner domain.OwnerID
	}{
		Ctx:   ctx,
		Owner: owner,
	}
	mock.lockDeleteByOwner.Lock()
	mock.calls.DeleteByOwner = append(mock.calls.DeleteByOwner, callInfo)
	mock.lockDeleteByOwner.Unlock()
	return mock.DeleteByOwnerFunc(ctx, owner)
}

func (mock *badgeRepoMock) DeleteByOwnerCalls() []struct {
	Ctx   context.Context
	Owner domain.OwnerID
} {
	mock.lockDeleteByOwner.RLock()
	calls := mock.calls.DeleteByOwner
	mock.lockDeleteByOwner.RUnlock()
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
