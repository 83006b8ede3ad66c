package analysis

import (
	"context"
	"sync"

	"github.com/heartmarshall/mooddiary-backend/internal/domain"
)

var _ analysisRepo = &analysisRepoMock{}

type analysisRepoMock struct {
	GetByEntryIDFunc func(ctx context.Context, owner domain.OwnerID, entryID int64) (*domain.Analysis, error)
	InsertIgnoreFunc func(ctx context.Context, a *domain.Analysis) (bool, error)

	calls struct {
		GetByEntryID []struct {
			Ctx     context.Context
			Owner   domain.OwnerID
			EntryID int64
		}
		InsertIgnore []struct {
			Ctx context.Context
			A   *domain.Analysis
		}
	}
	lockGetByEntryID sync.RWMutex
	lockInsertIgnore sync.RWMutex
}

func (mock *analysisRepoMock) GetByEntryID(ctx context.Context, owner domain.OwnerID, entryID int64) (*domain.Analysis, error) {
	if mock.GetByEntryIDFunc == nil {
		panic("analysisRepoMock.GetByEntryIDFunc: method is nil but analysisRepo.GetByEntryID was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		Owner   domain.OwnerID
		EntryID int64
	}{
		Ctx:     ctx,
		Owner:   owner,
		EntryID: entryID,
	}
	mock.lockGetByEntryID.Lock()
	mock.calls.GetByEntryID = append(mock.calls.GetByEntryID, callInfo)
	mock.lockGetByEntryID.Unlock()
	return mock.GetByEntryIDFunc(ctx, owner, entryID)
}

func (mock *analysisRepoMock) GetByEntryIDCalls() []struct {
	Ctx     context.Context
	Owner   domain.OwnerID
	EntryID int64
} {
	mock.lockGetByEntryID.RLock()
	calls := mock.calls.GetByEntryID
	mock.lockGetByEntryID.RUnlock()
	return calls
}

func (mock *analysisRepoMock) InsertIgnore(ctx context.Context, a *domain.Analysis) (bool, error) {
	if mock.InsertIgnoreFunc == nil {
		panic("analysisRepoMock.InsertIgnoreFunc: method is nil but analysisRepo.InsertIgnore was just called")
	}
	callInfo := struct {
		Ctx context.Context
		A   *domain.Analysis
	}{
		Ctx: ctx,
		A:   a,
	}
	mock.lockInsertIgnore.Lock()
	mock.calls.InsertIgnore = append(mock.calls.InsertIgnore, callInfo)
	mock.lockInsertIgnore.Unlock()
	return mock.InsertIgnoreFunc(ctx, a)
}

func (mock *analysisRepoMock) InsertIgnoreCalls() []struct {
	Ctx context.Context
	A   *domain.Analysis
} {
	mock.lockInsertIgnore.RLock()
	calls := mock.calls.InsertIgnore
	mock.lockInsertIgnore.RUnlock()
	return calls
}
