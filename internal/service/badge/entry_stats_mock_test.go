package badge

import (
	"context"
	"sync"

	"github.com/heartmarshall/mooddiary-backend/internal/domain"
)

var _ entryStats = &entryStatsMock{}

type entryStatsMock struct {
	CountFunc             func(ctx context.Context, owner domain.OwnerID) (int, error)
	DatesDescFunc         func(ctx context.Context, owner domain.OwnerID, limit int) ([]string, error)
	DistinctMoodCountFunc func(ctx context.Context, owner domain.OwnerID) (int, error)

	calls struct {
		Count []struct {
			Ctx   context.Context
			Owner domain.OwnerID
		}
		DatesDesc []struct {
			Ctx   context.Context
			Owner domain.OwnerID
			Limit int
		}
		DistinctMoodCount []struct {
			Ctx   context.Context
			Owner domain.OwnerID
		}
	}
	lockCount             sync.RWMutex
	lockDatesDesc         sync.RWMutex
	lockDistinctMoodCount sync.RWMutex
}

func (mock *entryStatsMock) Count(ctx context.Context, owner domain.OwnerID) (int, error) {
	if mock.CountFunc == nil {
		panic("entryStatsMock.CountFunc: method is nil but entryStats.Count was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Owner domain.OwnerID
	}{
		Ctx:   ctx,
		Owner: owner,
	}
	mock.lockCount.Lock()
	mock.calls.Count = append(mock.calls.Count, callInfo)
	mock.lockCount.Unlock()
	return mock.CountFunc(ctx, owner)
}

func (mock *entryStatsMock) CountCalls() []struct {
	Ctx   context.Context
	Owner domain.OwnerID
} {
	mock.lockCount.RLock()
	calls := mock.calls.Count
	mock.lockCount.RUnlock()
	return calls
}

func (mock *entryStatsMock) DatesDesc(ctx context.Context, owner domain.OwnerID, limit int) ([]string, error) {
	if mock.DatesDescFunc == nil {
		panic("entryStatsMock.DatesDescFunc: method is nil but entryStats.DatesDesc was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Owner domain.OwnerID
		Limit int
	}{
		Ctx:   ctx,
		Owner: owner,
		Limit: limit,
	}
	mock.lockDatesDesc.Lock()
	mock.calls.DatesDesc = append(mock.calls.DatesDesc, callInfo)
	mock.lockDatesDesc.Unlock()
	return mock.DatesDescFunc(ctx, owner, limit)
}

func (mock *entryStatsMock) DatesDescCalls() []struct {
	Ctx   context.Context
	Owner domain.OwnerID
	Limit int
} {
	mock.lockDatesDesc.RLock()
	calls := mock.calls.DatesDesc
	mock.lockDatesDesc.RUnlock()
	return calls
}

func (mock *entryStatsMock) DistinctMoodCount(ctx context.Context, owner domain.OwnerID) (int, error) {
	if mock.DistinctMoodCountFunc == nil {
		panic("entryStatsMock.DistinctMoodCountFunc: method is nil but entryStats.DistinctMoodCount was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Owner domain.OwnerID
	}{
		Ctx:   ctx,
		Owner: owner,
	}
	mock.lockDistinctMoodCount.Lock()
	mock.calls.DistinctMoodCount = append(mock.calls.DistinctMoodCount, callInfo)
	mock.lockDistinctMoodCount.Unlock()
	return mock.DistinctMoodCountFunc(ctx, owner)
}

func (mock *entryStatsMock) DistinctMoodCountCalls() []struct {
	Ctx   context.Context
	Owner domain.OwnerID
} {
	mock.lockDistinctMoodCount.RLock()
	calls := mock.calls.DistinctMoodCount
	mock.lockDistinctMoodCount.RUnlock()
	return calls
}
