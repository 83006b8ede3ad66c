package digest

import (
	"context"
	"sync"
)

var _ reachability = &reachabilityMock{}

type reachabilityMock struct {
	AvailableFunc func(ctx context.Context) bool

	calls struct {
		Available []struct {
			Ctx context.Context
		}
	}
	lockAvailable sync.RWMutex
}

func (mock *reachabilityMock) Available(ctx context.Context) bool {
	if mock.AvailableFunc == nil {
		panic("reachabilityMock.AvailableFunc: method is nil but reachability.Available was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{
		Ctx: ctx,
	}
	mock.lockAvailable.Lock()
	mock.calls.Available = append(mock.calls.Available, callInfo)
	mock.lockAvailable.Unlock()
	return mock.AvailableFunc(ctx)
}

func (mock *reachabilityMock) AvailableCalls() []struct {
	Ctx context.Context
} {
	mock.lockAvailable.RLock()
	calls := mock.calls.Available
	mock.lockAvailable.RUnlock()
	return calls
}
