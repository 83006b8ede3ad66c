package digest

import (
	"context"
	"sync"

	"github.com/heartmarshall/mooddiary-backend/internal/domain"
)

var _ entryRepo = &entryRepoMock{}

type entryRepoMock struct {
	ListFunc      func(ctx context.Context, owner domain.OwnerID, f domain.EntryFilter) ([]domain.Entry, error)
	MoodStatsFunc func(ctx context.Context, owner domain.OwnerID, from string, to string) ([]domain.MoodStat, error)

	calls struct {
		List []struct {
			Ctx   context.Context
			Owner domain.OwnerID
			F     domain.EntryFilter
		}
		MoodStats []struct {
			Ctx   context.Context
			Owner domain.OwnerID
			From  string
			To    string
		}
	}
	lockList      sync.RWMutex
	lockMoodStats sync.RWMutex
}

func (mock *entryRepoMock) List(ctx context.Context, owner domain.OwnerID, f domain.EntryFilter) ([]domain.Entry, error) {
	if mock.ListFunc == nil {
		panic("entryRepoMock.ListFunc: method is nil but entryRepo.List was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Owner domain.OwnerID
		F     domain.EntryFilter
	}{
		Ctx:   ctx,
		Owner: owner,
		F:     f,
	}
	mock.lockList.Lock()
	mock.calls.List = append(mock.calls.List, callInfo)
	mock.lockList.Unlock()
	return mock.ListFunc(ctx, owner, f)
}

func (mock *entryRepoMock) ListCalls() []struct {
	Ctx   context.Context
	Owner domain.OwnerID
	F     domain.EntryFilter
} {
	mock.lockList.RLock()
	calls := mock.calls.List
	mock.lockList.RUnlock()
	return calls
}

func (mock *entryRepoMock) MoodStats(ctx context.Context, owner domain.OwnerID, from string, to string) ([]domain.MoodStat, error) {
	if mock.MoodStatsFunc == nil {
		panic("entryRepoMock.MoodStatsFunc: method is nil but entryRepo.MoodStats was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Owner domain.OwnerID
		From  string
		To    string
	}{
		Ctx:   ctx,
		Owner: owner,
		From:  from,
		To:    to,
	}
	mock.lockMoodStats.Lock()
	mock.calls.MoodStats = append(mock.calls.MoodStats, callInfo)
	mock.lockMoodStats.Unlock()
	return mock.MoodStatsFunc(ctx, owner, from, to)
}

func (mock *entryRepoMock) MoodStatsCalls() []struct {
	Ctx   context.Context
	Owner domain.OwnerID
	From  string
	To    string
} {
	mock.lockMoodStats.RLock()
	calls := mock.calls.MoodStats
	mock.lockMoodStats.RUnlock()
	return calls
}
