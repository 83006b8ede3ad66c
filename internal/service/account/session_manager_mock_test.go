package account

import (
	"context"
	"sync"
	"time"

	"github.com/heartmarshall/mooddiary-backend/internal/domain"
)

var _ sessionManager = &sessionManagerMock{}

type sessionManagerMock struct {
	AnonymousSinceFunc    func(ctx context.Context) (time.Time, error)
	BindOwnerFunc         func(ctx context.Context, owner domain.OwnerID) error
	ClearCurrentOwnerFunc func(ctx context.Context) error
	CurrentOwnerFunc      func(ctx context.Context) (domain.OwnerID, bool, error)

	calls struct {
		AnonymousSince []struct {
			Ctx context.Context
		}
		BindOwner []struct {
			Ctx   context.Context
			Owner domain.OwnerID
		}
		ClearCurrentOwner []struct {
			Ctx context.Context
		}
		CurrentOwner []struct {
			Ctx context.Context
		}
	}
	lockAnonymousSince    sync.RWMutex
	lockBindOwner         sync.RWMutex
	lockClearCurrentOwner sync.RWMutex
	lockCurrentOwner      sync.RWMutex
}

func (mock *sessionManagerMock) AnonymousSince(ctx context.Context) (time.Time, error) {
	if mock.AnonymousSinceFunc == nil {
		panic("sessionManagerMock.AnonymousSinceFunc: method is nil but sessionManager.AnonymousSince was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{
		Ctx: ctx,
	}
	mock.lockAnonymousSince.Lock()
	mock.calls.AnonymousSince = append(mock.calls.AnonymousSince, callInfo)
	mock.lockAnonymousSince.Unlock()
	return mock.AnonymousSinceFunc(ctx)
}

func (mock *sessionManagerMock) AnonymousSinceCalls() []struct {
	Ctx context.Context
} {
	mock.lockAnonymousSince.RLock()
	calls := mock.calls.AnonymousSince
	mock.lockAnonymousSince.RUnlock()
	return calls
}

func (mock *sessionManagerMock) BindOwner(ctx context.Context, owner domain.OwnerID) error {
	if mock.BindOwnerFunc == nil {
		panic("sessionManagerMock.BindOwnerFunc: method is nil but sessionManager.BindOwner was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Owner domain.OwnerID
	}{
		Ctx:   ctx,
		Owner: owner,
	}
	mock.lockBindOwner.Lock()
	mock.calls.BindOwner = append(mock.calls.BindOwner, callInfo)
	mock.lockBindOwner.Unlock()
	return mock.BindOwnerFunc(ctx, owner)
}

func (mock *sessionManagerMock) BindOwnerCalls() []struct {
	Ctx   context.Context
	Owner domain.OwnerID
} {
	mock.lockBindOwner.RLock()
	calls := mock.calls.BindOwner
	mock.lockBindOwner.RUnlock()
	return calls
}

func (mock *sessionManagerMock) ClearCurrentOwner(ctx context.Context) error {
	if mock.ClearCurrentOwnerFunc == nil {
		panic("sessionManagerMock.ClearCurrentOwnerFunc: method is nil but sessionManager.ClearCurrentOwner was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{
		Ctx: ctx,
	}
	mock.lockClearCurrentOwner.Lock()
	mock.calls.ClearCurrentOwner = append(mock.calls.ClearCurrentOwner, callInfo)
	mock.lockClearCurrentOwner.Unlock()
	return mock.ClearCurrentOwnerFunc(ctx)
}

func (mock *sessionManagerMock) ClearCurrentOwnerCalls() []struct {
	Ctx context.Context
} {
	mock.lockClearCurrentOwner.RLock()
	calls := mock.calls.ClearCurrentOwner
	mock.lockClearCurrentOwner.RUnlock()
	return calls
}

func (mock *sessionManagerMock) CurrentOwner(ctx context.Context) (domain.OwnerID, bool, error) {
	if mock.CurrentOwnerFunc == nil {
		panic("sessionManagerMock.CurrentOwnerFunc: method is nil but sessionManager.CurrentOwner was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{
		Ctx: ctx,
	}
	mock.lockCurrentOwner.Lock()
	mock.calls.CurrentOwner = append(mock.calls.CurrentOwner, callInfo)
	mock.lockCurrentOwner.Unlock()
	return mock.CurrentOwnerFunc(ctx)
}

func (mock *sessionManagerMock) CurrentOwnerCalls() []struct {
	Ctx context.Context
} {
	mock.lockCurrentOwner.RLock()
	calls := mock.calls.CurrentOwner
	mock.lockCurrentOwner.RUnlock()
	return calls
}
