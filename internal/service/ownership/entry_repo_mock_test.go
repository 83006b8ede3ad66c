package ownership

import (
	"context"
	"sync"

	"github.com/heartmarshall/mooddiary-backend/internal/domain"
)

var _ entryRepo = &entryRepoMock{}

type entryRepoMock struct {
	PromoteTemporaryFunc func(ctx context.Context, owner domain.OwnerID) (int64, error)
	ReassignOwnerFunc    func(ctx context.Context, from domain.OwnerID, to domain.OwnerID) (int64, error)

	calls struct {
		PromoteTemporary []struct {
			Ctx   context.Context
			Owner domain.OwnerID
		}
		ReassignOwner []struct {
			Ctx  context.Context
			From domain.OwnerID
			To   domain.OwnerID
		}
	}
	lockPromoteTemporary sync.RWMutex
	lockReassignOwner    sync.RWMutex
}

func (mock *entryRepoMock) PromoteTemporary(ctx context.Context, owner domain.OwnerID) (int64, error) {
	if mock.PromoteTemporaryFunc == nil {
		panic("entryRepoMock.PromoteTemporaryFunc: method is nil but entryRepo.PromoteTemporary was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Owner domain.OwnerID
	}{
		Ctx:   ctx,
		Owner: owner,
	}
	mock.lockPromoteTemporary.Lock()
	mock.calls.PromoteTemporary = append(mock.calls.PromoteTemporary, callInfo)
	mock.lockPromoteTemporary.Unlock()
	return mock.PromoteTemporaryFunc(ctx, owner)
}

func (mock *entryRepoMock) PromoteTemporaryCalls() []struct {
	Ctx   context.Context
	Owner domain.OwnerID
} {
	mock.lockPromoteTemporary.RLock()
	calls := mock.calls.PromoteTemporary
	mock.lockPromoteTemporary.RUnlock()
	return calls
}

func (mock *entryRepoMock) ReassignOwner(ctx context.Context, from domain.OwnerID, to domain.OwnerID) (int64, error) {
	if mock.ReassignOwnerFunc == nil {
		panic("entryRepoMock.ReassignOwnerFunc: method is nil but entryRepo.ReassignOwner was just called")
	}
	callInfo := struct {
		Ctx  context.Context
		From domain.OwnerID
		To   domain.OwnerID
	}{
		Ctx:  ctx,
		From: from,
		To:   to,
	}
	mock.lockReassignOwner.Lock()
	mock.calls.ReassignOwner = append(mock.calls.ReassignOwner, callInfo)
	mock.lockReassignOwner.Unlock()
	return mock.ReassignOwnerFunc(ctx, from, to)
}

func (mock *entryRepoMock) ReassignOwnerCalls() []struct {
	Ctx  context.Context
	From domain.OwnerID
	To   domain.OwnerID
} {
	mock.lockReassignOwner.RLock()
	calls := mock.calls.ReassignOwner
	mock.lockReassignOwner.RUnlock()
	return calls
}
