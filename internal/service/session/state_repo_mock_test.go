package session

import (
	"context"
	"sync"
)

var _ stateRepo = &stateRepoMock{}

type stateRepoMock struct {
	DeleteFunc func(ctx context.Context, key string) error
	GetFunc    func(ctx context.Context, key string) (string, error)
	SetFunc    func(ctx context.Context, key string, value string) error

	calls struct {
		Delete []struct {
			Ctx context.Context
			Key string
		}
		Get []struct {
			Ctx context.Context
			Key string
		}
		Set []struct {
			Ctx   context.Context
			Key   string
			Value string
		}
	}
	lockDelete sync.RWMutex
	lockGet    sync.RWMutex
	lockSet    sync.RWMutex
}

func (mock *stateRepoMock) Delete(ctx context.Context, key string) error {
	if mock.DeleteFunc == nil {
		panic("stateRepoMock.DeleteFunc: method is nil but stateRepo.Delete was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Key string
	}{
		Ctx: ctx,
		Key: key,
	}
	mock.lockDelete.Lock()
	mock.calls.Delete = append(mock.calls.Delete, callInfo)
	mock.lockDelete.Unlock()
	return mock.DeleteFunc(ctx, key)
}

func (mock *stateRepoMock) DeleteCalls() []struct {
	Ctx context.Context
	Key string
} {
	mock.lockDelete.RLock()
	calls := mock.calls.Delete
	mock.lockDelete.RUnlock()
	return calls
}

func (mock *stateRepoMock) Get(ctx context.Context, key string) (string, error) {
	if mock.GetFunc == nil {
		panic("stateRepoMock.GetFunc: method is nil but stateRepo.Get was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Key string
	}{
		Ctx: ctx,
		Key: key,
	}
	mock.lockGet.Lock()
	mock.calls.Get = append(mock.calls.Get, callInfo)
	mock.lockGet.Unlock()
	return mock.GetFunc(ctx, key)
}

func (mock *stateRepoMock) GetCalls() []struct {
	Ctx context.Context
	Key string
} {
	mock.lockGet.RLock()
	calls := mock.calls.Get
	mock.lockGet.RUnlock()
	return calls
}

func (mock *stateRepoMock) Set(ctx context.Context, key string, value string) error {
	if mock.SetFunc == nil {
		panic("stateRepoMock.SetFunc: method is nil but stateRepo.Set was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Key   string
		Value string
	}{
		Ctx:   ctx,
		Key:   key,
		Value: value,
	}
	mock.lockSet.Lock()
	mock.calls.Set = append(mock.calls.Set, callInfo)
	mock.lockSet.Unlock()
	return mock.SetFunc(ctx, key, value)
}

func (mock *stateRepoMock) SetCalls() []struct {
	Ctx   context.Context
	Key   string
	Value string
} {
	mock.lockSet.RLock()
	calls := mock.calls.Set
	mock.lockSet.RUnlock()
	return calls
}
