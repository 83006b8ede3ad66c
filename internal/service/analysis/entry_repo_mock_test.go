package analysis

import (
	"context"
	"sync"

	"github.com/heartmarshall/mooddiary-backend/internal/domain"
)

var _ entryRepo = &entryRepoMock{}

type entryRepoMock struct {
	GetByIDFunc func(ctx context.Context, owner domain.OwnerID, id int64) (*domain.Entry, error)

	calls struct {
		GetByID []struct {
			Ctx   context.Context
			Owner domain.OwnerID
			ID    int64
		}
	}
	lockGetByID sync.RWMutex
}

func (mock *entryRepoMock) GetByID(ctx context.Context, owner domain.OwnerID, id int64) (*domain.Entry, error) {
	if mock.GetByIDFunc == nil {
		panic("entryRepoMock.GetByIDFunc: method is nil but entryRepo.GetByID was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Owner domain.OwnerID
		ID    int64
	}{
		Ctx:   ctx,
		Owner: owner,
		ID:    id,
	}
	mock.lockGetByID.Lock()
	mock.calls.GetByID = append(mock.calls.GetByID, callInfo)
	mock.lockGetByID.Unlock()
	return mock.GetByIDFunc(ctx, owner, id)
}

func (mock *entryRepoMock) GetByIDCalls() []struct {
	Ctx   context.Context
	Owner domain.OwnerID
	ID    int64
} {
	mock.lockGetByID.RLock()
	calls := mock.calls.GetByID
	mock.lockGetByID.RUnlock()
	return calls
}
