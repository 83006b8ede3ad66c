package account

import (
	"context"
	"sync"

	"github.com/heartmarshall/mooddiary-backend/internal/domain"
)

var _ ownerPurger = &ownerPurgerMock{}

type ownerPurgerMock struct {
	DeleteByOwnerFunc func(ctx context.Context, owner domain.OwnerID) (int64, error)

	calls struct {
		DeleteByOwner []struct {
			Ctx   context.Context
			Owner domain.OwnerID
		}
	}
	lockDeleteByOwner sync.RWMutex
}

func (mock *ownerPurgerMock) DeleteByOwner(ctx context.Context, owner domain.OwnerID) (int64, error) {
	if mock.DeleteByOwnerFunc == nil {
		panic("ownerPurgerMock.DeleteByOwnerFunc: method is nil but ownerPurger.DeleteByOwner was just called")
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

func (mock *ownerPurgerMock) DeleteByOwnerCalls() []struct {
	Ctx   context.Context
	Owner domain.OwnerID
} {
	mock.lockDeleteByOwner.RLock()
	calls := mock.calls.DeleteByOwner
	mock.lockDeleteByOwner.RUnlock()
	return calls
}
